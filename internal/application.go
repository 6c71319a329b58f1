package application

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/rocketscienceinc/rockpaperscissors-backend/internal/config"
	"github.com/rocketscienceinc/rockpaperscissors-backend/internal/metrics"
	"github.com/rocketscienceinc/rockpaperscissors-backend/internal/rps"
	"github.com/rocketscienceinc/rockpaperscissors-backend/internal/usecase"
	"github.com/rocketscienceinc/rockpaperscissors-backend/transport/console"
)

// RunApp - runs the application on stdin/stdout until the player quits or a signal arrives.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)

	go func() {
		select {
		case sig := <-sigs:
			logger.With("component", "app").Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	return Run(ctx, logger, conf, os.Stdin, os.Stdout)
}

// Run - wires the game and plays it over in and out.
func Run(ctx context.Context, logger *slog.Logger, conf *config.Config, in io.Reader, out io.Writer) error {
	log := logger.With("component", "app")

	registry := prometheus.NewRegistry()

	gameMetrics, err := metrics.New(registry)
	if err != nil {
		return fmt.Errorf("could not create metrics: %w", err)
	}

	var opts []rps.Option
	if conf.StrictFinish {
		opts = append(opts, rps.WithStrictFinish())
	}

	engine := rps.NewEngine(opts...)
	match := usecase.NewMatch(logger, engine, gameMetrics)

	log.Info("Starting match", "match_id", match.ID(), "strict_finish", conf.StrictFinish)

	if err = console.New(logger, match, conf.PlayerName).Run(ctx, in, out); err != nil {
		return fmt.Errorf("console error: %w", err)
	}

	if conf.MetricsTextfile != "" {
		if err = metrics.WriteTextfile(conf.MetricsTextfile, registry); err != nil {
			log.Error("could not write metrics", "error", err)
		}
	}

	log.Info("Application stopped")

	return nil
}
