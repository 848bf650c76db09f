package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/grovetools/gmux/util/pathutil"
)

func NewRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "remove <index|path>",
		Aliases: []string{"rm"},
		Short:   "Remove a registered directory",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openStore(cmd)
			if err != nil {
				return err
			}

			idx, err := store.Resolve(args[0])
			if err != nil {
				return err
			}

			removed, err := store.RemoveAt(idx)
			if err != nil {
				return err
			}

			fmt.Printf("Removed %s\n", pathutil.Display(removed.Path))
			return nil
		},
	}
}
