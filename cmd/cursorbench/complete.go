// cmd/cursorbench/complete.go
package cursorbench

import (
	"context"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mwiater/cursorbench/internal/completion"
	"github.com/mwiater/cursorbench/internal/harness"
)

var completionLength string

// completeCmd implements 'complete', a single demo completion over built-in
// history documents and cursor text.
var completeCmd = &cobra.Command{
	Use:   "complete",
	Short: "Run one demo completion",
	Long: `The 'complete' command requests a single completion for built-in history documents
and before/after cursor text, and prints the generated text between them.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		length, err := completion.ParseCompletionLength(completionLength)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		cfg, err := loadConfig(out)
		if err != nil {
			return err
		}
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}

		client := completion.NewClient(cfg.ModelURL, cfg.HFAPIToken, cfg.RequestTimeout)
		defer client.Close()
		c := completion.NewCompleter(client, cfg.PromptBuilder(), cfg.BaseParams(), logger)

		res := c.Complete(ctx, completion.Request{
			Before:  harness.DemoBefore,
			After:   harness.DemoAfter,
			History: harness.DemoHistory,
			Length:  length,
		})
		logger.Debug("demo completion",
			zap.String("completion_length", string(length)),
			zap.Duration("latency", res.Latency),
			zap.Bool("failed", res.Failed()))

		harness.PrintDemo(out, harness.DemoHistory, harness.DemoBefore, harness.DemoAfter, res.Text)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(completeCmd)
	completeCmd.Flags().StringVarP(&completionLength, "completion-length", "l", string(completion.LengthMedium),
		"completion length (short, medium, long)")
}
