// Package logging prints and writes log messages for the program.
package logging

import (
	"log"
	"path/filepath"
	"regexp"
	"strings"
	"sync"
	"time"

	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	Loggable bool
	Logger   *log.Logger

	errArray   []error
	muErrArray sync.Mutex
)

// Regular expression to match ANSI escape codes
var ansiEscape = regexp.MustCompile(`\x1b\[[0-9;]*m`)

// SetupLogging creates and/or opens the log file.
func SetupLogging(targetDir string) error {
	logFile := &lumberjack.Logger{
		Filename:   filepath.Join(targetDir, "entefix.log"),
		MaxSize:    1, // Max size in MB before rotation
		MaxBackups: 3,
		Compress:   true,
	}

	Logger = log.New(logFile, "", log.LstdFlags)
	Loggable = true

	Logger.Printf(":\n=========== %v ===========\n\n", time.Now().Format(time.RFC1123Z))
	return nil
}

// Write writes log information to the log file, stripped of terminal colors.
func Write(tag, msg string) {
	// Do not add mutex, only called by callers which themselves use mutex
	if Loggable {
		if !strings.HasSuffix(msg, "\n") {
			msg += "\n"
		}
		Logger.Print(tag + ansiEscape.ReplaceAllString(msg, ""))
	}
}

// AddToErrorArray stores an error for the end-of-run report.
func AddToErrorArray(err error) {
	if err == nil {
		return
	}
	muErrArray.Lock()
	errArray = append(errArray, err)
	muErrArray.Unlock()
}

// GetErrorArray returns the errors collected during this run.
func GetErrorArray() []error {
	muErrArray.Lock()
	defer muErrArray.Unlock()
	return errArray
}
