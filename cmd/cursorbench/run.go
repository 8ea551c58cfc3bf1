// cmd/cursorbench/run.go
package cursorbench

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/mwiater/cursorbench/internal/completion"
	"github.com/mwiater/cursorbench/internal/dataset"
	"github.com/mwiater/cursorbench/internal/harness"
	"github.com/mwiater/cursorbench/internal/textproc"
)

var (
	nBatches     int
	showProgress bool
)

// runCmd implements 'run', which executes every combination of context
// length, cursor position, completion length and history for each batch.
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run text completion experiments",
	Long: `The 'run' command samples one test article and three history articles per batch,
requests a completion for every context length, cursor position, completion length and
history setting, and appends one row per trial to the output CSV file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if nBatches < 1 {
			return fmt.Errorf("n-batches must be at least 1, got %d", nBatches)
		}
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		return runExperiments(ctx, cmd)
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().IntVarP(&nBatches, "n-batches", "n", 1, "number of batches to run")
	runCmd.Flags().StringP("output", "o", "experiments.csv", "CSV file the results are written to")
	runCmd.Flags().Uint64("seed", 0, "random seed for window and cursor selection (0 = unseeded)")
	runCmd.Flags().BoolVar(&showProgress, "progress", true, "print a progress bar after every trial")

	viper.BindPFlag("output", runCmd.Flags().Lookup("output"))
	viper.BindPFlag("seed", runCmd.Flags().Lookup("seed"))
}

func runExperiments(ctx context.Context, cmd *cobra.Command) error {
	out := cmd.OutOrStdout()
	cfg, err := loadConfig(out)
	if err != nil {
		return err
	}

	runID := uuid.NewString()
	log := logger.With(zap.String("run_id", runID))

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	client := completion.NewClient(cfg.ModelURL, cfg.HFAPIToken, cfg.RequestTimeout)
	defer client.Close()

	writer, err := harness.CreateRecordFile(cfg.Output)
	if err != nil {
		return err
	}

	log.Info("starting experiments",
		zap.Int("batches", nBatches),
		zap.String("output", cfg.Output),
		zap.String("model_url", cfg.ModelURL),
		zap.String("dataset", cfg.Dataset.Name))

	res, runErr := harness.RunExperiments(ctx, harness.ExperimentConfig{
		Batches:      nBatches,
		Source:       dataset.NewHFSource(cfg.DatasetOptions()),
		Completer:    completion.NewCompleter(client, cfg.PromptBuilder(), cfg.BaseParams(), log),
		Writer:       writer,
		Rand:         textproc.NewRand(cfg.Seed),
		Console:      out,
		ShowProgress: showProgress,
		RunID:        runID,
		Logger:       log,
	})
	if err := writer.Close(); err != nil && runErr == nil {
		runErr = fmt.Errorf("close %s: %w", cfg.Output, err)
	}

	harness.PrintSummary(out, res)
	log.Info("experiments finished",
		zap.Int("trials", len(res.Trials)),
		zap.Int("skipped_batches", res.SkippedBatches))

	if errors.Is(runErr, context.Canceled) {
		log.Warn("run interrupted, partial results kept", zap.String("output", cfg.Output))
		return nil
	}
	return runErr
}
