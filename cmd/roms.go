package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rivergale/cheatdeck/internal/config"
	"github.com/rivergale/cheatdeck/internal/library"
)

var romsCmd = &cobra.Command{
	Use:   "roms",
	Short: "List ROMs in the configured library",
	Long:  `Scan the configured library directory for .gb/.gbc files and print their titles.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(GetConfigFile())
		if err != nil {
			return err
		}
		if err := cfg.Validate(); err != nil {
			return err
		}

		roms, err := library.Scan(cfg.Library.ROMsDir)
		if err != nil {
			return err
		}
		if len(roms) == 0 {
			fmt.Println("No ROMs found in", cfg.Library.ROMsDir)
			return nil
		}
		for _, rom := range roms {
			fmt.Printf("%-20s  %s\n", rom.Title, rom.Path)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(romsCmd)
}
