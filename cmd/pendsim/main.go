package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/san-kum/pendsim/internal/config"
	"github.com/san-kum/pendsim/internal/export"
	"github.com/san-kum/pendsim/internal/integrators"
	"github.com/san-kum/pendsim/internal/metrics"
	"github.com/san-kum/pendsim/internal/sim"
)

// main runs the wall hop simulation with the compiled-in release condition
// and prints one position line per step. Arguments are ignored.
func main() {
	logger := newLogger(os.Stderr)
	defer logger.Sync() //nolint:errcheck

	rootCmd := &cobra.Command{
		Use:           "pendsim",
		Short:         "simple pendulum wall hop simulation",
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.OutOrStdout(), logger)
		},
	}
	rootCmd.DisableFlagParsing = true

	if err := rootCmd.Execute(); err != nil {
		logger.Error("simulation failed", zap.Error(err))
		os.Exit(1)
	}
}

func run(out io.Writer, logger *zap.Logger) error {
	cfg := config.Default()
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if data, err := cfg.Marshal(); err == nil {
		logger.Debug("loaded config", zap.ByteString("yaml", data))
	}

	params := cfg.Params()
	integ := integrators.NewEuler(params, cfg.SimConfig())

	s := sim.New(integ)
	text := export.NewTextWriter(out)
	s.AddObserver(text)
	s.AddMetric(metrics.NewEnergyDrift(params))
	s.AddMetric(metrics.NewHeight(params.Length))

	result, err := s.Run()
	if err != nil {
		return err
	}
	if err := text.Err(); err != nil {
		return fmt.Errorf("write output: %w", err)
	}

	fields := []zap.Field{
		zap.Int("steps", result.Steps),
		zap.Int("samples", result.Samples),
		zap.Float64("final_time", result.FinalTime),
		zap.Float64("final_velocity", result.Final.Vel),
		zap.Stringer("reason", result.Reason),
	}
	for name, val := range result.Metrics {
		fields = append(fields, zap.Float64(name, val))
	}
	logger.Info("simulation complete", fields...)
	return nil
}

func newLogger(w io.Writer) *zap.Logger {
	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encCfg),
		zapcore.AddSync(w),
		zap.NewAtomicLevelAt(zap.InfoLevel),
	)
	return zap.New(core)
}
