package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func NewEditorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "editor [command]",
		Short: "Show or set the default editor command",
		Long: `Show or set the session-wide default editor command.

With no argument, prints the current default. With an argument, stores it
as the new default; an empty string clears it so the environment fallback
applies again.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openStore(cmd)
			if err != nil {
				return err
			}

			if len(args) == 0 {
				if def := store.DefaultEditor(); def != "" {
					fmt.Println(def)
				} else {
					fmt.Println("(none)")
				}
				return nil
			}

			if err := store.SetDefaultEditor(args[0]); err != nil {
				return err
			}
			if args[0] == "" {
				fmt.Println("Default editor cleared")
			} else {
				fmt.Printf("Default editor set to %s\n", args[0])
			}
			return nil
		},
	}
}
