package cfg

import (
	"github.com/gabrielfortuny/ente-icloud-migration/internal/domain/keys"

	"github.com/spf13/viper"
)

// initFilesDirs initializes user flag settings for input and output directories.
func initFilesDirs() error {
	// Export directory containing album folders.
	rootCmd.PersistentFlags().StringP(keys.InputDir, "i", "", "Ente export directory containing albums")
	if err := viper.BindPFlag(keys.InputDir, rootCmd.PersistentFlags().Lookup(keys.InputDir)); err != nil {
		return err
	}

	// Destination for repaired files.
	rootCmd.PersistentFlags().StringP(keys.OutputDir, "o", "", "Output directory for processed files")
	if err := viper.BindPFlag(keys.OutputDir, rootCmd.PersistentFlags().Lookup(keys.OutputDir)); err != nil {
		return err
	}
	return nil
}

// initFiltering initializes user flag settings for filtering files to work with.
func initFiltering() error {
	rootCmd.PersistentFlags().StringSlice(keys.FilePrefixes, nil, "Filters media files to process by prefixes")
	if err := viper.BindPFlag(keys.FilePrefixes, rootCmd.PersistentFlags().Lookup(keys.FilePrefixes)); err != nil {
		return err
	}

	rootCmd.PersistentFlags().StringSlice(keys.FileSuffixes, nil, "Filters media files to process by suffixes")
	if err := viper.BindPFlag(keys.FileSuffixes, rootCmd.PersistentFlags().Lookup(keys.FileSuffixes)); err != nil {
		return err
	}

	rootCmd.PersistentFlags().StringSlice(keys.FileContains, nil, "Filters media files to process by strings contained")
	if err := viper.BindPFlag(keys.FileContains, rootCmd.PersistentFlags().Lookup(keys.FileContains)); err != nil {
		return err
	}

	rootCmd.PersistentFlags().StringSlice(keys.FileOmits, nil, "Filters media files to process by strings omitted")
	if err := viper.BindPFlag(keys.FileOmits, rootCmd.PersistentFlags().Lookup(keys.FileOmits)); err != nil {
		return err
	}
	return nil
}

// initTransformers initializes user flag settings for timestamp and filename handling.
func initTransformers() error {
	// Which sidecar timestamp wins.
	rootCmd.PersistentFlags().StringP(keys.TimestampSourceInput, "t", "auto", "Timestamp source (auto, taken, or creation)")
	if err := viper.BindPFlag(keys.TimestampSourceInput, rootCmd.PersistentFlags().Lookup(keys.TimestampSourceInput)); err != nil {
		return err
	}

	// Rename convention.
	rootCmd.PersistentFlags().StringP(keys.RenameStyle, "r", "skip", "Rename flag (spaces, underscores, title, or skip)")
	if err := viper.BindPFlag(keys.RenameStyle, rootCmd.PersistentFlags().Lookup(keys.RenameStyle)); err != nil {
		return err
	}

	// Backup files by renaming existing destination files.
	rootCmd.PersistentFlags().BoolP(keys.NoFileOverwrite, "n", false, "Renames existing destination files to avoid overwriting")
	if err := viper.BindPFlag(keys.NoFileOverwrite, rootCmd.PersistentFlags().Lookup(keys.NoFileOverwrite)); err != nil {
		return err
	}
	return nil
}

// initResourceRelated initializes user flag settings for parameters related to system resources.
func initResourceRelated() error {
	// Free disk space on the output volume.
	rootCmd.PersistentFlags().String(keys.MinFreeSpace, "0", "Minimum free disk space on the output volume to start copying")
	if err := viper.BindPFlag(keys.MinFreeSpace, rootCmd.PersistentFlags().Lookup(keys.MinFreeSpace)); err != nil {
		return err
	}
	return nil
}

// initProgramFunctions initializes user flag settings for miscellaneous program features such as debug level.
func initProgramFunctions() error {
	// Debugging level.
	rootCmd.PersistentFlags().Int(keys.DebugLevel, 0, "Level of debugging (0 - 5)")
	if err := viper.BindPFlag(keys.DebugLevel, rootCmd.PersistentFlags().Lookup(keys.DebugLevel)); err != nil {
		return err
	}

	// Show what would be done without making changes.
	rootCmd.PersistentFlags().Bool(keys.DryRun, false, "Show what would be done without making changes")
	if err := viper.BindPFlag(keys.DryRun, rootCmd.PersistentFlags().Lookup(keys.DryRun)); err != nil {
		return err
	}

	// Skip the confirmation prompt.
	rootCmd.PersistentFlags().BoolP(keys.AssumeYes, "y", false, "Skip the confirmation prompt when the output directory is not empty")
	if err := viper.BindPFlag(keys.AssumeYes, rootCmd.PersistentFlags().Lookup(keys.AssumeYes)); err != nil {
		return err
	}

	// Custom exiftool binary.
	rootCmd.PersistentFlags().String(keys.ExiftoolPath, "exiftool", "Path to the exiftool binary")
	if err := viper.BindPFlag(keys.ExiftoolPath, rootCmd.PersistentFlags().Lookup(keys.ExiftoolPath)); err != nil {
		return err
	}
	return nil
}
