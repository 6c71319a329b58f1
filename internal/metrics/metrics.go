package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/rocketscienceinc/rockpaperscissors-backend/internal/entity"
)

const namespace = "rps"

// Metrics holds the game counters.
type Metrics struct {
	rounds       *prometheus.CounterVec
	moves        *prometheus.CounterVec
	matches      *prometheus.CounterVec
	invalidMoves prometheus.Counter
}

// New - creates the counters and registers them on reg.
func New(reg prometheus.Registerer) (*Metrics, error) {
	that := &Metrics{
		rounds: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rounds_total",
			Help:      "Resolved rounds by result.",
		}, []string{"result"}),
		moves: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "moves_total",
			Help:      "Moves played by side and move.",
		}, []string{"side", "move"}),
		matches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "matches_total",
			Help:      "Concluded matches by winner.",
		}, []string{"winner"}),
		invalidMoves: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "invalid_moves_total",
			Help:      "Rejected moves.",
		}),
	}

	for _, collector := range []prometheus.Collector{that.rounds, that.moves, that.matches, that.invalidMoves} {
		if err := reg.Register(collector); err != nil {
			return nil, fmt.Errorf("failed to register collector: %w", err)
		}
	}

	return that, nil
}

func (that *Metrics) RoundResolved(outcome entity.RoundOutcome) {
	that.rounds.WithLabelValues(string(outcome.Result)).Inc()
	that.moves.WithLabelValues(string(entity.SidePlayer), outcome.PlayerMove.String()).Inc()
	that.moves.WithLabelValues(string(entity.SideComputer), outcome.ComputerMove.String()).Inc()
}

func (that *Metrics) MatchConcluded(winner entity.Side) {
	that.matches.WithLabelValues(string(winner)).Inc()
}

func (that *Metrics) MoveRejected() {
	that.invalidMoves.Inc()
}

// WriteTextfile - dumps every metric gathered by g into path in the text exposition format.
func WriteTextfile(path string, g prometheus.Gatherer) error {
	if err := prometheus.WriteToTextfile(path, g); err != nil {
		return fmt.Errorf("failed to write metrics textfile: %w", err)
	}

	return nil
}
