package main

import (
	stderrors "errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/grovetools/gmux/cli"
	"github.com/grovetools/gmux/cmd"
	"github.com/grovetools/gmux/errors"
	"github.com/grovetools/gmux/registry"
	"github.com/grovetools/gmux/tui"
	"github.com/grovetools/gmux/version"
)

func main() {
	rootCmd := cli.NewStandardCommand(
		"gmux",
		"Fast directory switcher with live git branch status",
	)
	rootCmd.Version = version.Version

	// Running gmux with no subcommand starts the interactive switcher.
	rootCmd.RunE = func(c *cobra.Command, args []string) error {
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			return fmt.Errorf("interactive mode requires a terminal; try 'gmux list'")
		}

		store, err := registry.Open(cli.GetOptions(c).ConfigFile)
		if err != nil {
			return err
		}
		return tui.Run(store)
	}

	rootCmd.AddCommand(cmd.NewListCmd())
	rootCmd.AddCommand(cmd.NewAddCmd())
	rootCmd.AddCommand(cmd.NewEditCmd())
	rootCmd.AddCommand(cmd.NewRemoveCmd())
	rootCmd.AddCommand(cmd.NewOpenCmd())
	rootCmd.AddCommand(cmd.NewEditorCmd())
	rootCmd.AddCommand(cmd.NewVersionCmd())

	if err := rootCmd.Execute(); err != nil {
		var gmuxErr *errors.GmuxError
		if stderrors.As(err, &gmuxErr) {
			verbose, _ := rootCmd.Flags().GetBool("verbose")
			cli.NewErrorHandler(verbose).Handle(err)
		} else {
			// Usage and flag-parse errors get the styled hint instead.
			cli.PrintError(rootCmd, err)
		}
		os.Exit(1)
	}
}
