package cfg

import (
	"fmt"
	"os"
	"strings"

	"github.com/gabrielfortuny/ente-icloud-migration/internal/domain/keys"
	"github.com/gabrielfortuny/ente-icloud-migration/internal/validation"

	"github.com/spf13/viper"
)

// init sets the initial Viper settings.
func init() {
	// Env vars.
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer("_", "-")) // Convert "input_dir" to "input-dir"

	// Config file.
	rootCmd.PersistentFlags().String(keys.ConfigPath, "", "Specify a path to your preset configuration file")
	if err := viper.BindPFlag(keys.ConfigPath, rootCmd.PersistentFlags().Lookup(keys.ConfigPath)); err != nil {
		fmt.Fprintf(os.Stderr, "config file path setting failure: %v\n", err)
		os.Exit(1)
	}

	// Files and directories.
	initOrExit(initFilesDirs(),
		"files & dirs initialization failure")

	// Filtering.
	initOrExit(initFiltering(),
		"config filtering initialization failure")

	// Timestamp and filename handling.
	initOrExit(initTransformers(),
		"config transformer initialization failure")

	// System resource related.
	initOrExit(initResourceRelated(),
		"config resource element initialization failure")

	// Special functions.
	initOrExit(initProgramFunctions(),
		"config program function initialization failure")
}

// execute more thoroughly handles settings created in the Viper init.
func execute() (err error) {
	// Input directory is required and must exist.
	if _, err := validation.ValidateDirectory(viper.GetString(keys.InputDir), false); err != nil {
		return fmt.Errorf("input directory: %w", err)
	}

	// Output directory is required (created later unless dry-run).
	if strings.TrimSpace(viper.GetString(keys.OutputDir)) == "" {
		return fmt.Errorf("output directory must be entered (use --%s)", keys.OutputDir)
	}

	// Timestamp source.
	if err := validation.ValidateAndSetTimestampSource(viper.GetString(keys.TimestampSourceInput)); err != nil {
		return err
	}

	// Rename style.
	validation.ValidateAndSetRenameFlag(viper.GetString(keys.RenameStyle))

	// File filter settings.
	if viper.IsSet(keys.FilePrefixes) {
		validation.ValidateAndSetFileFilters(keys.FilePrefixes, viper.GetStringSlice(keys.FilePrefixes))
	}
	if viper.IsSet(keys.FileSuffixes) {
		validation.ValidateAndSetFileFilters(keys.FileSuffixes, viper.GetStringSlice(keys.FileSuffixes))
	}
	if viper.IsSet(keys.FileContains) {
		validation.ValidateAndSetFileFilters(keys.FileContains, viper.GetStringSlice(keys.FileContains))
	}
	if viper.IsSet(keys.FileOmits) {
		validation.ValidateAndSetFileFilters(keys.FileOmits, viper.GetStringSlice(keys.FileOmits))
	}

	// Free space requirement for the output volume.
	validation.ValidateAndSetMinFreeSpace(viper.GetString(keys.MinFreeSpace))

	return nil
}

// initOrExit attempts to run the function and exits the program on failure.
func initOrExit(err error, failMsg string) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", failMsg, err)
		os.Exit(1)
	}
}
