package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/rivergale/cheatdeck/internal/config"
)

var (
	outputFile string
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Generate sample configuration file",
	Long: `Generate a YAML configuration file with the default options.

Edit the generated file to point at your ROM library and emulator.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runConfig()
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.Flags().StringVarP(&outputFile, "output", "o", "cheatdeck.yaml", "Output file path")
}

func runConfig() error {
	log := GetLogger()

	// Check if file exists
	if _, err := os.Stat(outputFile); err == nil {
		return fmt.Errorf("file %s already exists, use a different name or remove it first", outputFile)
	}

	data, err := yaml.Marshal(config.Default())
	if err != nil {
		return err
	}
	if err := os.WriteFile(outputFile, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	log.Info("Sample configuration written", zap.String("file", outputFile))
	fmt.Printf("Sample configuration written to %s\n", outputFile)
	fmt.Println("Edit this file with your settings, then run:")
	fmt.Printf("  cheatdeck --config %s\n", outputFile)

	return nil
}
