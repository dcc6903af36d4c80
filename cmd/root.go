package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Global flags
	verbose    bool
	configFile string

	// Logger instance
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "cheatdeck",
	Short: "Cheatdeck - cheat code manager for Game Boy emulators",
	Long: `Cheatdeck manages per-ROM cheat code lists for Game Boy emulators.

It keeps one cheat file per ROM in your library, lets you toggle cheats
on and off, and can launch your emulator with the selected ROM.

Run without arguments to open the interactive panel, or use the
subcommands to manage cheats from scripts:
  - list, add, toggle, remove: edit a ROM's cheat list
  - roms: scan the configured library directory
  - config: write a sample configuration file

Use "cheatdeck [command] --help" for more information about a command.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initLogger()
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTUI()
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "Config file (default: cheatdeck.yaml)")
}

func initLogger() error {
	var config zap.Config

	if verbose {
		config = zap.NewDevelopmentConfig()
		config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		config = zap.NewProductionConfig()
		config.EncoderConfig.TimeKey = "time"
		config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	}

	config.OutputPaths = []string{"stdout"}
	config.ErrorOutputPaths = []string{"stderr"}

	var err error
	logger, err = config.Build()
	if err != nil {
		return err
	}

	zap.ReplaceGlobals(logger)
	return nil
}

// GetLogger returns the global logger instance
func GetLogger() *zap.Logger {
	if logger == nil {
		// Return a no-op logger if not initialized
		return zap.NewNop()
	}
	return logger
}

// GetConfigFile returns the config file path from global flag
func GetConfigFile() string {
	return configFile
}

// SetConfigFileForTest allows tests to set the config file
func SetConfigFileForTest(path string) {
	configFile = path
}
