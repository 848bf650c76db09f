package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/grovetools/gmux/errors"
	"github.com/grovetools/gmux/registry"
	"github.com/grovetools/gmux/util/pathutil"
)

func NewEditCmd() *cobra.Command {
	var newPath string
	var newEditor string

	cmd := &cobra.Command{
		Use:   "edit <index|path>",
		Short: "Change a registered entry's path or editor",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openStore(cmd)
			if err != nil {
				return err
			}

			idx, err := store.Resolve(args[0])
			if err != nil {
				return err
			}

			if !cmd.Flags().Changed("path") && !cmd.Flags().Changed("editor") {
				return errors.Validation("nothing to update: provide --path or --editor")
			}

			entry := store.Entries()[idx]
			path := entry.Path
			editor := entry.Editor

			if cmd.Flags().Changed("path") {
				path, err = registry.ResolveDirectory(newPath)
				if err != nil {
					return err
				}
			}
			if cmd.Flags().Changed("editor") {
				editor = newEditor
			}

			updated, err := store.UpdateAt(idx, path, editor)
			if err != nil {
				return err
			}

			fmt.Printf("Updated %s\n", pathutil.Display(updated.Path))
			return nil
		},
	}

	cmd.Flags().StringVarP(&newPath, "path", "p", "", "New directory path")
	cmd.Flags().StringVarP(&newEditor, "editor", "e", "", "New editor command (empty clears the override)")
	return cmd
}
