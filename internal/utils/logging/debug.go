package logging

import (
	"fmt"
	"sync"

	"github.com/gabrielfortuny/ente-icloud-migration/internal/domain/consts"
	"github.com/gabrielfortuny/ente-icloud-migration/internal/domain/keys"

	"github.com/spf13/viper"
)

var (
	Level = -1 // Pre initialization
	mu    sync.Mutex
)

// E prints and logs an error message.
func E(format string, args ...interface{}) {
	mu.Lock()
	defer mu.Unlock()

	msg := fmt.Sprintf(consts.RedError+format+"\n", args...)
	fmt.Print(msg)
	Write(consts.LogError, msg)
}

// W prints and logs a warning message.
func W(format string, args ...interface{}) {
	mu.Lock()
	defer mu.Unlock()

	msg := fmt.Sprintf(consts.YellowWarning+format+"\n", args...)
	fmt.Print(msg)
	Write(consts.LogWarning, msg)
}

// S prints and logs a success message at the given debug level.
func S(l int, format string, args ...interface{}) {
	mu.Lock()
	defer mu.Unlock()

	if Level < 0 {
		Level = viper.GetInt(keys.DebugLevel)
	}
	if l <= Level {
		msg := fmt.Sprintf(consts.GreenSuccess+format+"\n", args...)
		fmt.Print(msg)
		Write(consts.LogSuccess, msg)
	}
}

// D prints and logs a debug message at the given debug level.
//
// Debug messages don't appear by default (level 0).
func D(l int, format string, args ...interface{}) {
	mu.Lock()
	defer mu.Unlock()

	if Level < 0 {
		Level = viper.GetInt(keys.DebugLevel)
	}
	if l <= Level && l != 0 {
		msg := fmt.Sprintf(consts.YellowDebug+format+"\n", args...)
		fmt.Print(msg)
		Write(consts.LogDebug, msg)
	}
}

// I prints and logs an info message.
func I(format string, args ...interface{}) {
	mu.Lock()
	defer mu.Unlock()

	msg := fmt.Sprintf(consts.BlueInfo+format+"\n", args...)
	fmt.Print(msg)
	Write(consts.LogInfo, msg)
}

// P prints and logs a plain message without a tag.
func P(format string, args ...interface{}) {
	mu.Lock()
	defer mu.Unlock()

	msg := fmt.Sprintf(format+"\n", args...)
	fmt.Print(msg)
	Write(consts.LogBasic, msg)
}
