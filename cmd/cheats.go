package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/rivergale/cheatdeck/internal/cheat"
	"github.com/rivergale/cheatdeck/internal/config"
	"github.com/rivergale/cheatdeck/internal/store"
)

var listCmd = &cobra.Command{
	Use:   "list <rom>",
	Short: "Print the cheat list for a ROM",
	Long: `Print the persisted cheat list for a ROM.

The ROM may be a path or a bare name; only its base name selects the
cheat file inside the configured cheats directory.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore()
		if err != nil {
			return err
		}
		cheats, err := st.Load(args[0])
		if err != nil {
			return err
		}
		if cheats.Len() == 0 {
			fmt.Println("No cheats recorded for", args[0])
			return nil
		}
		for i, e := range cheats.Entries() {
			box := " "
			if e.Enabled {
				box = "x"
			}
			perm := ""
			if e.Permanent {
				perm = "  (permanent)"
			}
			fmt.Printf("%2d  [%s]  %-8s  %-30s  %s%s\n", i, box, shortID(e), e.Description, e.Code, perm)
		}
		return nil
	},
}

var addCmd = &cobra.Command{
	Use:   "add <rom> <code> <description>",
	Short: "Add a cheat to a ROM's list",
	Long: `Append a disabled cheat to a ROM's persisted list.

The code is stored as given; it is validated by the cheat engine when the
entry is first enabled in the panel.`,
	Args: cobra.MinimumNArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		log := GetLogger()

		st, err := openStore()
		if err != nil {
			return err
		}
		cheats, err := st.Load(args[0])
		if err != nil {
			return err
		}
		description := joinArgs(args[2:])
		e := cheats.Add(description, args[1])
		if err := st.Persist(args[0], cheats); err != nil {
			return err
		}
		log.Info("Cheat added",
			zap.String("rom", args[0]),
			zap.String("id", shortID(e)),
			zap.String("code", e.Code),
		)
		fmt.Printf("Added %q as %s\n", description, shortID(e))
		return nil
	},
}

var toggleCmd = &cobra.Command{
	Use:   "toggle <rom> <id>",
	Short: "Flip a cheat's enabled state",
	Long: `Flip a cheat's enabled state in the persisted list.

The id may be any unambiguous prefix of the cheat's ID as shown by list.
The new state takes effect the next time the panel opens, which re-asserts
every entry with the engine.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore()
		if err != nil {
			return err
		}
		cheats, err := st.Load(args[0])
		if err != nil {
			return err
		}
		e, err := cheats.FindByPrefix(args[1])
		if err != nil {
			return err
		}
		e, err = cheats.Toggle(e.ID)
		if err != nil {
			return err
		}
		if err := st.Persist(args[0], cheats); err != nil {
			return err
		}
		state := "disabled"
		if e.Enabled {
			state = "enabled"
		}
		fmt.Printf("%q is now %s\n", e.Description, state)
		return nil
	},
}

var removeCmd = &cobra.Command{
	Use:   "remove <rom> <id>",
	Short: "Remove a non-permanent cheat",
	Long:  `Delete a cheat from a ROM's persisted list. Permanent cheats are refused.`,
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore()
		if err != nil {
			return err
		}
		cheats, err := st.Load(args[0])
		if err != nil {
			return err
		}
		e, err := cheats.FindByPrefix(args[1])
		if err != nil {
			return err
		}
		if _, err := cheats.Remove(e.ID); err != nil {
			return err
		}
		if err := st.Persist(args[0], cheats); err != nil {
			return err
		}
		fmt.Printf("Removed %q\n", e.Description)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(toggleCmd)
	rootCmd.AddCommand(removeCmd)
}

func openStore() (*store.Store, error) {
	cfg, err := config.Load(GetConfigFile())
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return store.New(cfg.Library.CheatsDir), nil
}

func shortID(e cheat.Entry) string {
	if len(e.ID) > 8 {
		return e.ID[:8]
	}
	return e.ID
}

func joinArgs(args []string) string {
	out := args[0]
	for _, a := range args[1:] {
		out += " " + a
	}
	return out
}
