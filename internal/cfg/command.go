// Package cfg initializes Viper, Cobra, etc.
package cfg

import (
	"fmt"
	"os"

	"github.com/gabrielfortuny/ente-icloud-migration/internal/domain/keys"
	"github.com/gabrielfortuny/ente-icloud-migration/internal/utils/logging"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "entefix",
	Short: "Entefix repairs timestamps and extensions in Ente Photos exports for iCloud import.",
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		// Set logging level
		logging.Level = min(max(viper.GetInt(keys.DebugLevel), 0), 5)

		// Setup flags from config file
		if viper.IsSet(keys.ConfigPath) {
			configFile := viper.GetString(keys.ConfigPath)

			cInfo, err := os.Stat(configFile)
			if err != nil {
				fmt.Fprintf(os.Stderr, "failed check for entered config file path %q: %v\n", configFile, err)
				os.Exit(1)
			} else if cInfo.IsDir() {
				fmt.Fprintf(os.Stderr, "config file entered (%s) is a directory, should be a file\n", configFile)
				os.Exit(1)
			}

			if configFile != "" {
				if err := loadConfigFile(configFile); err != nil {
					fmt.Fprintf(os.Stderr, "failed loading config file: %v\n", err)
					os.Exit(1)
				}
			}
		}
	},
	RunE: func(cmd *cobra.Command, _ []string) error {
		if cmd.Flags().Lookup("help").Changed {
			return nil
		}
		viper.Set("execute", true)
		return execute()
	},
}

// Execute is the primary initializer of Viper.
func Execute() error {
	fmt.Println()
	if err := rootCmd.Execute(); err != nil {
		logging.E("Failed to execute cobra")
		return err
	}
	return nil
}

// loadConfigFile loads in the preset configuration file.
func loadConfigFile(file string) error {
	logging.I("Using configuration file %q", file)
	viper.SetConfigFile(file)
	if err := viper.ReadInConfig(); err != nil {
		return err
	}
	return nil
}
