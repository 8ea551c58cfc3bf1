// cmd/cursorbench/list_commands.go
package cursorbench

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// commandsCmd implements 'list commands', which prints every available command
// with its local flags.
var commandsCmd = &cobra.Command{
	Use:   "commands",
	Short: "List all commands with their flags",
	Long:  `The 'commands' subcommand prints the command tree, one command per line with its short description, followed by the local flags each command accepts.`,
	Run: func(cmd *cobra.Command, args []string) {
		printCommandTree(cmd.OutOrStdout(), rootCmd)
	},
}

func init() {
	listCmd.AddCommand(commandsCmd)
}

// commandEntry is one line of the command tree.
type commandEntry struct {
	depth int
	path  string
	short string
	flags []string
}

// walkCommands flattens the available commands under cmd, depth first.
// Hidden commands and cobra's help command are skipped.
func walkCommands(cmd *cobra.Command, depth int) []commandEntry {
	e := commandEntry{depth: depth, path: cmd.CommandPath(), short: cmd.Short}
	cmd.LocalNonPersistentFlags().VisitAll(func(f *pflag.Flag) {
		if f.Hidden || f.Name == "help" {
			return
		}
		name := "--" + f.Name
		if f.Shorthand != "" {
			name = "-" + f.Shorthand + ", " + name
		}
		e.flags = append(e.flags, name)
	})

	out := []commandEntry{e}
	for _, sub := range cmd.Commands() {
		if sub.IsAvailableCommand() {
			out = append(out, walkCommands(sub, depth+1)...)
		}
	}
	return out
}

func printCommandTree(w io.Writer, root *cobra.Command) {
	entries := walkCommands(root, 0)

	width := 0
	for _, e := range entries {
		width = max(width, 2*e.depth+len(e.path))
	}
	pathStyle := lipgloss.NewStyle().Width(width + 2).Bold(true)
	flagStyle := lipgloss.NewStyle().Faint(true)

	fmt.Fprintln(w, "Commands:")
	for _, e := range entries {
		indent := strings.Repeat("  ", e.depth)
		fmt.Fprintf(w, "  %s%s\n", pathStyle.Render(indent+e.path), e.short)
		if len(e.flags) > 0 {
			fmt.Fprintf(w, "  %s%s\n", strings.Repeat(" ", width+2), flagStyle.Render(strings.Join(e.flags, "  ")))
		}
	}
}
