package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/grovetools/gmux/editor"
	"github.com/grovetools/gmux/util/pathutil"
)

func NewOpenCmd() *cobra.Command {
	var override string

	cmd := &cobra.Command{
		Use:   "open <index|path>",
		Short: "Open a registered directory in its editor",
		Long: `Open a registered directory in its editor.

The editor is resolved from the entry's override, then the session-wide
default, then GMUX_EDITOR, QUICKSWITCH_EDITOR, EDITOR, and VISUAL. A
--editor flag overrides all of these for this launch only.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openStore(cmd)
			if err != nil {
				return err
			}

			idx, err := store.Resolve(args[0])
			if err != nil {
				return err
			}

			entry := store.Entries()[idx]
			if cmd.Flags().Changed("editor") {
				// One-shot override, never persisted.
				entry.Editor = override
			}

			if err := editor.NewLauncher().Launch(entry, store.DefaultEditor()); err != nil {
				return err
			}

			fmt.Printf("Opened %s\n", pathutil.Display(entry.Path))
			return nil
		},
	}

	cmd.Flags().StringVarP(&override, "editor", "e", "", "Editor command for this launch only")
	return cmd
}
