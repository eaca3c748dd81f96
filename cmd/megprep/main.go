package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"gonum.org/v1/gonum/mat"

	"github.com/antisocialites/Deep-Learning/internal/config"
	"github.com/antisocialites/Deep-Learning/internal/infrastructure"
	"github.com/antisocialites/Deep-Learning/internal/recording"
	"github.com/antisocialites/Deep-Learning/internal/transform"
)

func main() {
	participant := flag.String("participant", "", "participant ID to load (required)")
	dir := flag.String("dir", "", "recordings directory (defaults to the configured paths.recordings_dir)")
	scale := flag.String("scale", "none", "scaling applied per node: none, minmax, or zscore")
	factor := flag.Int("factor", 0, "integer downsampling factor (0 disables)")
	targetRate := flag.Float64("target-rate", 0, "target sampling rate in Hz (alternative to -factor)")
	method := flag.String("method", "", "downsampling method: subsample or decimate (defaults to the configured method)")
	flag.Parse()

	if *participant == "" {
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	if err := cfg.EnsureDirectories(); err != nil {
		slog.Error("Failed to prepare directories", "error", err)
		os.Exit(1)
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		slog.Error("Failed to initialize logger", "error", err)
		os.Exit(1)
	}
	defer infrastructure.CloseLogFile()

	ctx := infrastructure.ContextWithTraceID(context.Background())

	recordingsDir := cfg.GetRecordingsDir()
	if *dir != "" {
		recordingsDir = *dir
	}

	logger.InfoContext(ctx, "Loading participant recordings",
		slog.String("participant", *participant),
		slog.String("dir", recordingsDir))

	loader := recording.NewLoader(logger, recordingsDir)
	data, err := loader.LoadParticipant(ctx, *participant)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to load participant", "error", err)
		os.Exit(1)
	}

	downsampleMethod := cfg.Signal.DownsampleMethod
	if *method != "" {
		downsampleMethod = *method
	}

	for _, task := range recording.Tasks {
		m := data.ByTask(task)
		if m == nil {
			logger.InfoContext(ctx, "No recording for task", slog.String("task", task))
			continue
		}

		switch *scale {
		case "minmax":
			m = transform.MinMaxScale(m, transform.AlongTime)
		case "zscore":
			m = transform.ZScore(m, transform.AlongTime)
		}

		if *factor > 0 || *targetRate > 0 {
			m, err = transform.Downsample(m, transform.DownsampleOptions{
				Factor:     *factor,
				OrigRate:   cfg.Signal.SamplingRate,
				TargetRate: *targetRate,
				Method:     downsampleMethod,
			})
			if err != nil {
				logger.ErrorContext(ctx, "Downsampling failed",
					slog.String("task", task), "error", err)
				os.Exit(1)
			}
		}

		rows, cols := m.Dims()
		logger.InfoContext(ctx, "Prepared task recording",
			slog.String("task", task),
			slog.Int("nodes", rows),
			slog.Int("timepoints", cols),
			slog.Float64("first_value", m.At(0, 0)),
			slog.Float64("frobenius_norm", mat.Norm(m, 2)))
	}
}
