// cmd/cursorbench/list_params.go
package cursorbench

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/mwiater/cursorbench/internal/completion"
)

// listParamsCmd implements 'list params', which prints the generation
// parameters sent for each completion length.
var listParamsCmd = &cobra.Command{
	Use:   "params",
	Short: "List generation parameters for each completion length",
	Long:  `The 'params' subcommand prints the max/min new tokens, stop markers and length penalty used for each completion length, together with the shared sampling settings.`,
	Run: func(cmd *cobra.Command, args []string) {
		listParams(cmd.OutOrStdout(), completion.DefaultParams())
	},
}

func init() {
	listCmd.AddCommand(listParamsCmd)
}

func listParams(w io.Writer, base completion.Params) {
	lengthStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true)

	fmt.Fprintf(w, "Sampling: temperature=%.2f top_p=%.2f repetition_penalty=%.2f do_sample=%t\n\n",
		base.Temperature, base.TopP, base.RepetitionPenalty, base.DoSample)
	for _, l := range completion.CompletionLengths {
		p, _ := completion.ParamsFor(base, l)
		stop := "(none)"
		if len(p.Stop) > 0 {
			stop = strings.Join(p.Stop, " ")
		}
		fmt.Fprintln(w, lengthStyle.Render(string(l)+":"))
		fmt.Fprintf(w, "  max_new_tokens: %d\n", p.MaxNewTokens)
		fmt.Fprintf(w, "  min_new_tokens: %d\n", p.MinNewTokens)
		fmt.Fprintf(w, "  stop:           %s\n", stop)
		fmt.Fprintf(w, "  length_penalty: %.1f\n", p.LengthPenalty)
	}
}
