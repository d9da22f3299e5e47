package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/fokker/diffusion"
	"github.com/katalvlaran/fokker/ensemble"
	"github.com/katalvlaran/fokker/pipeline"
)

var (
	spacetimeSteps  int
	spacetimeTotal  float64
	spacetimeOutput string
)

// spaceTimeField is the export shape of one captured realization: the full
// field on the uniform grid, one row per captured step.
type spaceTimeField struct {
	Times  pipeline.Series   `json:"times"`
	Grid   pipeline.Series   `json:"grid"`
	Values []pipeline.Series `json:"values"`
}

var spacetimeCmd = &cobra.Command{
	Use:   "spacetime",
	Short: "Export the space-time field of one fully captured realization",
	Long: `spacetime runs a single realization with every step captured and writes
the resampled field as JSON: the captured times, the uniform grid, and one
row of field values per step. Boundary parameters, solver resolution, and
the seed come from the regular configuration; the longer default horizon
(1000 steps over 10 time units) shows the boundary forcing wandering
through many reversion times.`,
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

		cfg.Steps = spacetimeSteps
		cfg.TotalTime = spacetimeTotal

		opts := cfg.ensembleOptions(logger)
		opts.Paths = 1
		opts.CaptureLast = 0 // capture every step
		opts.Workers = 1

		res, err := ensemble.Run(cmd.Context(), diffusion.Factory(cfg.solver(logger)), opts)
		if err != nil {
			return err
		}

		times := res.Times()
		values := make([]pipeline.Series, len(times))
		for t := range times {
			row, err := res.FieldSamplesAt(t)
			if err != nil {
				return err
			}
			values[t] = row
		}

		grid := res.Grid()
		logger.Info("field captured",
			zap.Int("times", len(times)),
			zap.Int("grid", len(grid)),
		)

		return writeJSON(spacetimeOutput, &spaceTimeField{
			Times:  times,
			Grid:   grid,
			Values: values,
		})
	},
}

func init() {
	spacetimeCmd.Flags().IntVar(&spacetimeSteps, "steps", 1000, "time steps of the single realization")
	spacetimeCmd.Flags().Float64Var(&spacetimeTotal, "total-time", 10, "simulated time span")
	spacetimeCmd.Flags().StringVarP(&spacetimeOutput, "output", "o", "", "field destination (default stdout)")
}
