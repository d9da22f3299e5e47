package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Version is set at build time.
var Version = "0.1.0"

var (
	configPath string
	logLevel   string
	logFormat  string
)

var rootCmd = &cobra.Command{
	Use:   "fokker",
	Short: "Estimate forward Kolmogorov coefficients from stochastic ensembles",
	Long: `fokker drives an ensemble of boundary-forced diffusion realizations and
estimates the drift and diffusion coefficients of the forward Kolmogorov
equation obeyed by the density of the simulated field.

Commands:
  run        - full estimation: ensemble, densities, coefficients, report
  spacetime  - export the space-time field of one fully captured realization

Example:
  fokker run -o report.json
  FOKKER_PATHS=1000 FOKKER_SEED=7 fokker run
  fokker spacetime --steps 1000 --total-time 10 -o field.json`,
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: false,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default fokker.yaml in the working directory)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "console", "log format: console or json")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(spacetimeCmd)
}

// newLogger builds the process logger from the persistent flags.
func newLogger() (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(logLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", logLevel, err)
	}

	var cfg zap.Config
	switch logFormat {
	case "json":
		cfg = zap.NewProductionConfig()
	case "console":
		cfg = zap.NewDevelopmentConfig()
	default:
		return nil, fmt.Errorf("invalid log format %q: want console or json", logFormat)
	}
	cfg.Level = zap.NewAtomicLevelAt(lvl)

	return cfg.Build()
}
