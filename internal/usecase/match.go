package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/rockpaperscissors-backend/internal/apperror"
	"github.com/rocketscienceinc/rockpaperscissors-backend/internal/entity"
)

type roundEngine interface {
	ResolveRound(playerMove entity.Move) (entity.RoundOutcome, error)
	Scores() entity.Scores
	IsGameOver() bool
	Reset()
}

type recorder interface {
	RoundResolved(outcome entity.RoundOutcome)
	MatchConcluded(winner entity.Side)
	MoveRejected()
}

// Match is a single player session against the computer.
type Match struct {
	logger   *slog.Logger
	engine   roundEngine
	recorder recorder

	id     string
	rounds int
	winner entity.Side
}

func NewMatch(logger *slog.Logger, engine roundEngine, recorder recorder) *Match {
	return &Match{
		logger:   logger.With("component", "match"),
		engine:   engine,
		recorder: recorder,

		id: newMatchID(),
	}
}

func (that *Match) ID() string {
	return that.id
}

// PlayInput - parses raw user input and plays it as a round.
func (that *Match) PlayInput(ctx context.Context, input string) (entity.RoundOutcome, error) {
	move, err := entity.ParseMove(input)
	if err != nil {
		that.rejected(ctx, err)
		return entity.RoundOutcome{}, err
	}

	return that.Play(ctx, move)
}

// Play - resolves one round and records the winner when it concludes the match.
func (that *Match) Play(ctx context.Context, move entity.Move) (entity.RoundOutcome, error) {
	log := that.logger.With("method", "Play", "match_id", that.id)

	wasOver := that.engine.IsGameOver()

	outcome, err := that.engine.ResolveRound(move)
	if err != nil {
		if errors.Is(err, apperror.ErrInvalidMove) {
			that.rejected(ctx, err)
		}

		return entity.RoundOutcome{}, fmt.Errorf("failed to resolve round: %w", err)
	}

	that.rounds++
	that.recorder.RoundResolved(outcome)

	scores := that.engine.Scores()
	log.DebugContext(ctx, "round resolved",
		"round", that.rounds,
		"player_move", outcome.PlayerMove.String(),
		"computer_move", outcome.ComputerMove.String(),
		"result", outcome.Result,
		"player_score", scores.Player,
		"computer_score", scores.Computer,
	)

	if !wasOver && that.engine.IsGameOver() && that.winner == entity.SideNone {
		that.winner = scores.Leader()
		that.recorder.MatchConcluded(that.winner)

		log.InfoContext(ctx, "match concluded", "winner", that.winner, "rounds", that.rounds)
	}

	return outcome, nil
}

func (that *Match) Scores() entity.Scores {
	return that.engine.Scores()
}

func (that *Match) IsGameOver() bool {
	return that.engine.IsGameOver()
}

// Winner - returns the first side that concluded the match, or entity.SideNone until then.
func (that *Match) Winner() entity.Side {
	return that.winner
}

func (that *Match) Rounds() int {
	return that.rounds
}

// Reset - zeroes the score and starts a new match with a fresh ID.
func (that *Match) Reset(ctx context.Context) {
	previous := that.id

	that.engine.Reset()
	that.rounds = 0
	that.winner = entity.SideNone
	that.id = newMatchID()

	that.logger.InfoContext(ctx, "match reset", "previous_match_id", previous, "match_id", that.id)
}

func (that *Match) rejected(ctx context.Context, err error) {
	that.recorder.MoveRejected()
	that.logger.WarnContext(ctx, "move rejected", "match_id", that.id, "error", err)
}

func newMatchID() string {
	return uuid.New().String()[:8]
}
