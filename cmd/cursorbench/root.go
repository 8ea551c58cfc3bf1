// cmd/cursorbench/root.go
package cursorbench

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/k0kubun/pp"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/mwiater/cursorbench/internal/config"
	"github.com/mwiater/cursorbench/internal/logging"
)

// dotenvPath is loaded into the environment before configuration is resolved.
const dotenvPath = ".env"

var (
	cfgFile string
	debug   bool

	// logger is replaced in PersistentPreRunE; commands may log before that in tests.
	logger = zap.NewNop()
)

// rootCmd is the base Cobra command for the cursorbench application.
// All subcommands are attached to this root to form the complete CLI.
var rootCmd = &cobra.Command{
	Use:   "cursorbench",
	Short: "Cursor text-completion experiment harness",
	Long: `cursorbench samples news articles, hides the text after a simulated cursor,
asks a hosted language model to predict it and records the results as CSV.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		l, err := logging.New(viper.GetBool("verbose"))
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		logger = l
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

// Execute runs the root Cobra command and all registered subcommands.
// It prints any returned error and exits the process with a non-zero
// status code on failure.
func Execute() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.SetGlobalNormalizationFunc(dashFlags)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (YAML or JSON)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "print the resolved configuration")

	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
}

// dashFlags accepts underscores in flag names, so --n_batches and
// --n-batches are the same flag.
func dashFlags(f *pflag.FlagSet, name string) pflag.NormalizedName {
	return pflag.NormalizedName(strings.ReplaceAll(name, "_", "-"))
}

// loadConfig resolves and validates the configuration. A missing API token is
// reported here, before any work starts.
func loadConfig(out io.Writer) (config.Config, error) {
	cfg, err := config.Load(viper.GetViper(), dotenvPath, cfgFile)
	if err != nil {
		return cfg, err
	}
	if debug {
		shown := cfg
		if shown.HFAPIToken != "" {
			shown.HFAPIToken = "****"
		}
		pp.Fprintln(out, shown)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}
