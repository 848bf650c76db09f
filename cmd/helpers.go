// Package cmd contains the gmux subcommands. Each constructor returns a
// cobra command wired against the registry store.
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/grovetools/gmux/cli"
	"github.com/grovetools/gmux/registry"
)

// openStore opens the registry at the configured location, honoring the
// --config flag when set.
func openStore(cmd *cobra.Command) (*registry.Store, error) {
	opts := cli.GetOptions(cmd)
	return registry.Open(opts.ConfigFile)
}
