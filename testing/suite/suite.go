package suite

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/rockpaperscissors-backend/internal/metrics"
)

const maxWaitDuration = 10 * time.Second

type Suite struct {
	*testing.T
	Logger *slog.Logger

	Registry *prometheus.Registry
	Metrics  *metrics.Metrics
}

// New - builds the shared test fixture: a bounded context, a silent logger and fresh metrics.
func New(t *testing.T) (context.Context, *Suite) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), maxWaitDuration)
	t.Cleanup(func() {
		cancel()
	})

	logger := slog.New(slog.NewJSONHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	registry := prometheus.NewRegistry()
	gameMetrics, err := metrics.New(registry)
	require.NoError(t, err)

	return ctx, &Suite{
		T:        t,
		Logger:   logger,
		Registry: registry,
		Metrics:  gameMetrics,
	}
}
