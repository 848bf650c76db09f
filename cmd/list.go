package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/grovetools/gmux/cli"
	"github.com/grovetools/gmux/git"
	"github.com/grovetools/gmux/util/pathutil"
)

// listEntry is the JSON shape of one registered directory.
type listEntry struct {
	Index     int    `json:"index"`
	Path      string `json:"path"`
	Display   string `json:"display"`
	Editor    string `json:"editor,omitempty"`
	Branch    string `json:"branch,omitempty"`
	Additions int    `json:"additions"`
	Deletions int    `json:"deletions"`
	Status    string `json:"status"`
}

func NewListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List registered directories with their branch status",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openStore(cmd)
			if err != nil {
				return err
			}

			log := cli.GetLogger(cmd)
			prober := git.NewProber()
			entries := store.Entries()
			log.WithField("entries", len(entries)).Debug("probing registered directories")

			if cli.GetOptions(cmd).JSONOutput {
				out := make([]listEntry, len(entries))
				for i, entry := range entries {
					st := prober.ProbeStatus(entry.Path)
					out[i] = listEntry{
						Index:     i + 1,
						Path:      entry.Path,
						Display:   pathutil.Display(entry.Path),
						Editor:    entry.Editor,
						Branch:    st.Branch,
						Additions: st.Additions,
						Deletions: st.Deletions,
						Status:    statusName(st),
					}
				}
				data, err := json.MarshalIndent(out, "", "  ")
				if err != nil {
					return fmt.Errorf("failed to marshal entries to JSON: %w", err)
				}
				fmt.Println(string(data))
				return nil
			}

			if len(entries) == 0 {
				fmt.Println("No directories registered.")
				return nil
			}

			for i, entry := range entries {
				st := prober.ProbeStatus(entry.Path)
				line := fmt.Sprintf("%2d  %-40s %s", i+1, pathutil.Display(entry.Path), st.Text())
				if entry.Editor != "" {
					line += fmt.Sprintf("  [%s]", entry.Editor)
				}
				fmt.Println(line)
			}
			return nil
		},
	}
}

func statusName(st git.BranchStatus) string {
	switch st.Kind {
	case git.StatusReady:
		return "ready"
	case git.StatusMissing:
		return "missing"
	case git.StatusNotGit:
		return "not_git"
	case git.StatusError:
		return "error"
	default:
		return "unknown"
	}
}
