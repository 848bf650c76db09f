package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/grovetools/gmux/registry"
	"github.com/grovetools/gmux/util/pathutil"
)

func NewAddCmd() *cobra.Command {
	var editor string

	cmd := &cobra.Command{
		Use:   "add <path>",
		Short: "Register a directory",
		Long: `Register a directory in the switcher list.

The path must exist and be a directory. A non-empty --editor becomes the
entry's editor override and the new session-wide default.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openStore(cmd)
			if err != nil {
				return err
			}

			resolved, err := registry.ResolveDirectory(args[0])
			if err != nil {
				return err
			}

			entry, replaced, err := store.Add(resolved, editor)
			if err != nil {
				return err
			}

			if replaced {
				fmt.Printf("Updated %s\n", pathutil.Display(entry.Path))
			} else {
				fmt.Printf("Registered %s\n", pathutil.Display(entry.Path))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&editor, "editor", "e", "", "Editor command for this entry")
	return cmd
}
