package main

import (
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/katalvlaran/fokker/diffusion"
	"github.com/katalvlaran/fokker/ensemble"
	"github.com/katalvlaran/fokker/histogram"
	"github.com/katalvlaran/fokker/ou"
	"github.com/katalvlaran/fokker/pipeline"
)

// config carries the numeric surface of an estimation run. Every field has
// a default, can come from a fokker.yaml file, and can be overridden with a
// FOKKER_-prefixed environment variable (FOKKER_PATHS, FOKKER_SEED, ...).
type config struct {
	Steps      int     // time steps per realization
	TotalTime  float64 // simulated time span; dt = TotalTime/Steps
	Points     int     // collocation points of the spectral solver
	Rate       float64 // OU reversion rate, both boundaries
	Volatility float64 // OU volatility, both boundaries
	MeanLower  float64 // OU long-run mean at z = 0
	MeanUpper  float64 // OU long-run mean at z = 1
	Paths      int     // ensemble realizations
	Bins       int     // histogram partition resolution
	Seed       uint64  // base RNG seed
	Capture    int     // snapshot window; 0 captures every step
	Workers    int     // pool width; 0 means GOMAXPROCS
	Cadence    int     // solver flow-property log cadence; 0 disables

	// Explicit histogram ranges. Min == Max (the default) leaves the range
	// data-driven; anything else is handed to the estimator as-is.
	FieldMin    float64
	FieldMax    float64
	GradientMin float64
	GradientMax float64
}

// loadConfig resolves the configuration: defaults, then an optional config
// file, then environment overrides. An explicitly named file must exist; a
// missing default fokker.yaml is fine.
func loadConfig(path string) (config, error) {
	v := viper.New()

	v.SetDefault("steps", 100)
	v.SetDefault("total_time", 1.0)
	v.SetDefault("points", 24)
	v.SetDefault("rate", 10.0)
	v.SetDefault("volatility", 0.25)
	v.SetDefault("mean_lower", 0.0)
	v.SetDefault("mean_upper", 1.0)
	v.SetDefault("paths", 500)
	v.SetDefault("bins", 64)
	v.SetDefault("seed", 42)
	v.SetDefault("capture", 5)
	v.SetDefault("workers", 0)
	v.SetDefault("cadence", 0)
	v.SetDefault("field_min", 0.0)
	v.SetDefault("field_max", 0.0)
	v.SetDefault("gradient_min", 0.0)
	v.SetDefault("gradient_max", 0.0)

	v.SetEnvPrefix("fokker")
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return config{}, err
		}
	} else {
		v.SetConfigName("fokker")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		_ = v.ReadInConfig() // a missing default file is not an error
	}

	return config{
		Steps:       v.GetInt("steps"),
		TotalTime:   v.GetFloat64("total_time"),
		Points:      v.GetInt("points"),
		Rate:        v.GetFloat64("rate"),
		Volatility:  v.GetFloat64("volatility"),
		MeanLower:   v.GetFloat64("mean_lower"),
		MeanUpper:   v.GetFloat64("mean_upper"),
		Paths:       v.GetInt("paths"),
		Bins:        v.GetInt("bins"),
		Seed:        v.GetUint64("seed"),
		Capture:     v.GetInt("capture"),
		Workers:     v.GetInt("workers"),
		Cadence:     v.GetInt("cadence"),
		FieldMin:    v.GetFloat64("field_min"),
		FieldMax:    v.GetFloat64("field_max"),
		GradientMin: v.GetFloat64("gradient_min"),
		GradientMax: v.GetFloat64("gradient_max"),
	}, nil
}

// dt returns the time step implied by the configured span and step count.
// Degenerate values flow into the option validators downstream, which own
// the rejection.
func (c config) dt() float64 {
	return c.TotalTime / float64(c.Steps)
}

// solver maps the configuration onto the spectral solver.
func (c config) solver(logger *zap.Logger) diffusion.Config {
	return diffusion.Config{
		Points:  c.Points,
		Dt:      c.dt(),
		Cadence: c.Cadence,
		Logger:  logger,
	}
}

// ensembleOptions maps the configuration onto the orchestrator.
func (c config) ensembleOptions(logger *zap.Logger) ensemble.Options {
	opts := ensemble.DefaultOptions()
	opts.Steps = c.Steps
	opts.Dt = c.dt()
	opts.Paths = c.Paths
	opts.CaptureLast = c.Capture
	opts.Lower = ou.Params{Rate: c.Rate, Volatility: c.Volatility, Mean: c.MeanLower}
	opts.Upper = ou.Params{Rate: c.Rate, Volatility: c.Volatility, Mean: c.MeanUpper}
	opts.Seed = c.Seed
	opts.Workers = c.Workers
	opts.Logger = logger

	return opts
}

// estimation maps the configuration onto the full pipeline. Ranges are
// forwarded only when configured (Min < Max); otherwise they stay
// data-driven.
func (c config) estimation(logger *zap.Logger) pipeline.Config {
	cfg := pipeline.Config{
		Ensemble: c.ensembleOptions(logger),
		Bins:     c.Bins,
	}
	if c.FieldMin < c.FieldMax {
		cfg.FieldRange = &histogram.Range{Min: c.FieldMin, Max: c.FieldMax}
	}
	if c.GradientMin < c.GradientMax {
		cfg.GradientRange = &histogram.Range{Min: c.GradientMin, Max: c.GradientMax}
	}

	return cfg
}
