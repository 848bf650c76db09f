package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/grovetools/gmux/tui/theme"
)

const maxHelpWidth = 72
const minHelpWidth = 40

var (
	helpSectionStyle = lipgloss.NewStyle().Bold(true).Foreground(theme.DefaultColors.Yellow)
	helpCommandStyle = lipgloss.NewStyle().Bold(true).Foreground(theme.DefaultColors.Cyan)
	helpFlagStyle    = lipgloss.NewStyle().Foreground(theme.DefaultColors.Cyan)
	helpMutedStyle   = lipgloss.NewStyle().Foreground(theme.DefaultColors.MutedText)
	helpErrorStyle   = lipgloss.NewStyle().Bold(true).Foreground(theme.DefaultColors.Red)
)

// SetStyledHelp applies consistent gmux styling to a command's help output.
// Call this on the root command before Execute().
func SetStyledHelp(cmd *cobra.Command) {
	cmd.SetHelpFunc(styledHelpFunc)
}

// PrintError prints a styled error message to stderr with a help hint.
func PrintError(cmd *cobra.Command, err error) {
	fmt.Fprintf(cmd.ErrOrStderr(), "%s %s\n", helpErrorStyle.Render("Error:"), err.Error())
	fmt.Fprintf(cmd.ErrOrStderr(), "%s\n",
		helpMutedStyle.Render(fmt.Sprintf("Run '%s --help' for usage.", cmd.CommandPath())))
}

func helpWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width < minHelpWidth {
		return maxHelpWidth
	}
	if width > maxHelpWidth {
		return maxHelpWidth
	}
	return width
}

func styledHelpFunc(cmd *cobra.Command, args []string) {
	width := helpWidth()

	desc := cmd.Long
	if desc == "" {
		desc = cmd.Short
	}
	if desc != "" {
		fmt.Println(wrapText(desc, width))
		fmt.Println()
	}

	fmt.Println(helpSectionStyle.Render("USAGE"))
	fmt.Printf("  %s\n\n", cmd.UseLine())

	if cmd.HasAvailableSubCommands() {
		fmt.Println(helpSectionStyle.Render("COMMANDS"))
		nameWidth := 0
		for _, sub := range cmd.Commands() {
			if sub.IsAvailableCommand() && len(sub.Name()) > nameWidth {
				nameWidth = len(sub.Name())
			}
		}
		for _, sub := range cmd.Commands() {
			if !sub.IsAvailableCommand() {
				continue
			}
			fmt.Printf("  %s  %s\n",
				helpCommandStyle.Render(fmt.Sprintf("%-*s", nameWidth, sub.Name())),
				sub.Short)
		}
		fmt.Println()
	}

	if cmd.HasAvailableLocalFlags() || cmd.HasAvailableInheritedFlags() {
		fmt.Println(helpSectionStyle.Render("FLAGS"))
		printFlags(cmd.LocalFlags())
		printFlags(cmd.InheritedFlags())
		fmt.Println()
	}

	if cmd.HasAvailableSubCommands() {
		fmt.Println(helpMutedStyle.Render(
			fmt.Sprintf("Use \"%s [command] --help\" for more information about a command.",
				cmd.CommandPath())))
	}
}

func printFlags(flags *pflag.FlagSet) {
	flags.VisitAll(func(f *pflag.Flag) {
		if f.Hidden {
			return
		}
		label := "    --" + f.Name
		if f.Shorthand != "" {
			label = fmt.Sprintf("-%s, --%s", f.Shorthand, f.Name)
		}
		fmt.Printf("  %s  %s\n", helpFlagStyle.Render(fmt.Sprintf("%-16s", label)), f.Usage)
	})
}

// wrapText wraps text to the specified width, preserving existing line
// breaks.
func wrapText(text string, width int) string {
	if width <= 0 {
		width = maxHelpWidth
	}

	var result []string
	for _, paragraph := range strings.Split(text, "\n") {
		if len(paragraph) <= width {
			result = append(result, paragraph)
			continue
		}

		var line string
		for _, word := range strings.Fields(paragraph) {
			switch {
			case line == "":
				line = word
			case len(line)+1+len(word) <= width:
				line += " " + word
			default:
				result = append(result, line)
				line = word
			}
		}
		if line != "" {
			result = append(result, line)
		}
	}
	return strings.Join(result, "\n")
}
