package cmd

import (
	"github.com/spf13/cobra"

	"github.com/rivergale/cheatdeck/internal/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Open the interactive cheat panel",
	Long:  `Open the interactive panel set: root menu, ROM picker, cheat list.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTUI()
	},
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI() error {
	tui.Run()
	return nil
}
