package main

import (
	"fmt"
	"os"
	"path/filepath"

	"eratos/internal/config"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Global flags
	verbose    bool
	configPath string
	format     string
	workers    int
	parallel   bool

	cfg    *config.Config
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "eratos",
	Short: "eratos - Sieve of Eratosthenes toolkit",
	Long: `eratos computes prime numbers with the Sieve of Eratosthenes.

It lists or counts primes up to a bound, sieves arbitrary windows with a
segmented sieve, and can split large bounds across a parallel worker pool.
A Tower of Hanoi move generator rounds out the discrete-math toolkit.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		// Flags win over file and environment.
		if format != "" {
			cfg.Output.Format = format
		}
		if workers != 0 {
			cfg.Sieve.Workers = workers
		}
		if err := cfg.Validate(); err != nil {
			return err
		}

		// Initialize logger
		zcfg := zap.NewProductionConfig()
		level, err := zapcore.ParseLevel(cfg.Logging.Level)
		if err != nil {
			return fmt.Errorf("parse log level: %w", err)
		}
		zcfg.Level = zap.NewAtomicLevelAt(level)
		if verbose {
			zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		logger, err = zcfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", defaultConfigPath(), "path to the config file")
	rootCmd.PersistentFlags().StringVar(&format, "format", "", "output format (text, json)")
	rootCmd.PersistentFlags().IntVar(&workers, "workers", 0, "parallel sieve workers (0 = GOMAXPROCS)")
	rootCmd.PersistentFlags().BoolVar(&parallel, "parallel", false, "sieve with the parallel segmented worker pool")

	rootCmd.AddCommand(primesCmd)
	rootCmd.AddCommand(countCmd)
	rootCmd.AddCommand(rangeCmd)
	rootCmd.AddCommand(hanoiCmd)
}

func defaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".eratos.yaml"
	}
	return filepath.Join(home, ".eratos", "config.yaml")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
