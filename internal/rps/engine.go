package rps

import (
	"fmt"

	"github.com/rocketscienceinc/rockpaperscissors-backend/internal/apperror"
	"github.com/rocketscienceinc/rockpaperscissors-backend/internal/entity"
)

// Engine resolves rounds against a random opponent and keeps the score of one match.
// It does no locking: every session owns its own Engine.
type Engine struct {
	chooser      Chooser
	strictFinish bool

	scores entity.Scores
}

type Option func(*Engine)

// WithChooser - replaces the random source used for the computer move.
func WithChooser(chooser Chooser) Option {
	return func(engine *Engine) {
		engine.chooser = chooser
	}
}

// WithStrictFinish - makes ResolveRound refuse rounds once the match is over.
func WithStrictFinish() Option {
	return func(engine *Engine) {
		engine.strictFinish = true
	}
}

func NewEngine(opts ...Option) *Engine {
	engine := &Engine{
		chooser: NewRandomChooser(),
	}

	for _, opt := range opts {
		opt(engine)
	}

	return engine
}

// ResolveRound - plays one round for the given player move and updates the score.
// On error the score is left untouched.
func (that *Engine) ResolveRound(playerMove entity.Move) (entity.RoundOutcome, error) {
	if err := that.validateMove(playerMove); err != nil {
		return entity.RoundOutcome{}, err
	}

	computerMove := that.computerMove()

	outcome := entity.RoundOutcome{
		PlayerMove:   playerMove,
		ComputerMove: computerMove,
		Result:       decide(playerMove, computerMove),
	}

	that.updateScores(outcome.Result)

	return outcome, nil
}

func (that *Engine) Scores() entity.Scores {
	return that.scores
}

// IsGameOver - reports whether either score equals entity.WinningScore.
// A lenient engine that keeps playing past it reports false again.
func (that *Engine) IsGameOver() bool {
	return that.scores.Leader() != entity.SideNone
}

func (that *Engine) Reset() {
	that.scores = entity.Scores{}
}

// validateMove - checks the move before any state is touched.
func (that *Engine) validateMove(move entity.Move) error {
	if !move.Valid() {
		return fmt.Errorf("%w: %s", apperror.ErrInvalidMove, move)
	}

	if that.strictFinish && that.IsGameOver() {
		return apperror.ErrGameFinished
	}

	return nil
}

func (that *Engine) computerMove() entity.Move {
	return entity.Moves[that.chooser.IntN(len(entity.Moves))]
}

func (that *Engine) updateScores(result entity.Result) {
	switch result {
	case entity.PlayerWin:
		that.scores.Player++
	case entity.ComputerWin:
		that.scores.Computer++
	case entity.Tie:
	}
}

func decide(player, computer entity.Move) entity.Result {
	switch {
	case player.Beats(computer):
		return entity.PlayerWin
	case player == computer:
		return entity.Tie
	default:
		return entity.ComputerWin
	}
}
