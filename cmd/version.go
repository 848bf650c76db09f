package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/grovetools/gmux/version"
)

func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the gmux version",
		Run: func(cmd *cobra.Command, args []string) {
			info := version.GetInfo()
			fmt.Printf("gmux %s\n", info.Version)
			fmt.Printf("  Commit:  %s\n", info.Commit)
			fmt.Printf("  Built:   %s\n", info.BuildDate)
		},
	}
}
