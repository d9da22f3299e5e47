package main

import (
	"encoding/json"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/fokker/diffusion"
	"github.com/katalvlaran/fokker/pipeline"
)

var runOutput string

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the full estimation: ensemble, densities, coefficients, report",
	Long: `run simulates the configured ensemble of boundary-forced diffusion
realizations, pools the captured samples, estimates the density, drift,
diffusion, and balance profiles, and writes the JSON report.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(configPath)
		if err != nil {
			return err
		}
		logger, err := newLogger()
		if err != nil {
			return err
		}
		defer func() { _ = logger.Sync() }()

		factory := diffusion.Factory(cfg.solver(logger))
		rep, err := pipeline.Run(cmd.Context(), factory, cfg.estimation(logger))
		if err != nil {
			return err
		}

		logger.Info("report ready",
			zap.String("runID", rep.RunID.String()),
			zap.String("samples", humanize.Comma(int64(rep.Samples))),
			zap.Int("succeeded", rep.Succeeded),
			zap.Int("failed", rep.Failed),
			zap.String("elapsed", rep.Elapsed.Round(time.Millisecond).String()),
		)

		return writeJSON(runOutput, rep)
	},
}

func init() {
	runCmd.Flags().StringVarP(&runOutput, "output", "o", "", "report destination (default stdout)")
}

// writeJSON renders v with indentation to the named file, or to stdout when
// path is empty or "-".
func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')

	if path == "" || path == "-" {
		_, err = os.Stdout.Write(data)

		return err
	}

	return os.WriteFile(path, data, 0o644)
}
