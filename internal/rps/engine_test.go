package rps

import (
	"testing"

	"github.com/rocketscienceinc/rockpaperscissors-backend/internal/apperror"
	"github.com/rocketscienceinc/rockpaperscissors-backend/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockChooser struct {
	mock.Mock
}

func (that *mockChooser) IntN(n int) int {
	args := that.Called(n)
	return args.Int(0)
}

// indexOf - position of the move in entity.Moves, used to script the computer draw.
func indexOf(t *testing.T, move entity.Move) int {
	t.Helper()

	for i, m := range entity.Moves {
		if m == move {
			return i
		}
	}

	t.Fatalf("move %s is not in the move set", move)
	return -1
}

func TestEngine_ResolveRound_DominanceTable(t *testing.T) {
	cases := []struct {
		player   entity.Move
		computer entity.Move
		result   entity.Result
	}{
		{entity.Rock, entity.Rock, entity.Tie},
		{entity.Rock, entity.Paper, entity.ComputerWin},
		{entity.Rock, entity.Scissors, entity.PlayerWin},
		{entity.Paper, entity.Rock, entity.PlayerWin},
		{entity.Paper, entity.Paper, entity.Tie},
		{entity.Paper, entity.Scissors, entity.ComputerWin},
		{entity.Scissors, entity.Rock, entity.ComputerWin},
		{entity.Scissors, entity.Paper, entity.PlayerWin},
		{entity.Scissors, entity.Scissors, entity.Tie},
	}

	for _, tc := range cases {
		t.Run(tc.player.String()+" vs "+tc.computer.String(), func(t *testing.T) {
			// Given: an engine whose next computer draw is known
			engine := NewEngine(WithChooser(NewScriptedChooser(indexOf(t, tc.computer))))

			// When: the player makes a move
			outcome, err := engine.ResolveRound(tc.player)
			require.NoError(t, err)

			// Then: the outcome should follow the dominance relation
			assert.Equal(t, entity.RoundOutcome{
				PlayerMove:   tc.player,
				ComputerMove: tc.computer,
				Result:       tc.result,
			}, outcome)

			// And: only the winning side should have scored
			expected := entity.Scores{}
			switch tc.result {
			case entity.PlayerWin:
				expected.Player = 1
			case entity.ComputerWin:
				expected.Computer = 1
			case entity.Tie:
			}
			assert.Equal(t, expected, engine.Scores())
		})
	}
}

func TestEngine_ResolveRound_DrawsFromWholeMoveSet(t *testing.T) {
	// Given: a chooser expecting to be asked for an index over three moves
	chooser := &mockChooser{}
	chooser.On("IntN", len(entity.Moves)).Return(2).Once()

	engine := NewEngine(WithChooser(chooser))

	// When: a round is resolved
	outcome, err := engine.ResolveRound(entity.Paper)
	require.NoError(t, err)

	// Then: the draw should be taken over the full move set
	chooser.AssertExpectations(t)
	assert.Equal(t, entity.Scissors, outcome.ComputerMove)
	assert.Equal(t, entity.ComputerWin, outcome.Result)
}

func TestEngine_ResolveRound_InvalidMove(t *testing.T) {
	// Given: an engine with some score already accumulated
	engine := NewEngine(WithChooser(NewScriptedChooser(2)))
	_, err := engine.ResolveRound(entity.Rock)
	require.NoError(t, err)

	before := engine.Scores()

	for _, move := range []entity.Move{0, -1, 4, 99} {
		// When: an out-of-range move is passed
		outcome, err := engine.ResolveRound(move)

		// Then: ErrInvalidMove should be returned
		require.ErrorIs(t, err, apperror.ErrInvalidMove)
		assert.Equal(t, entity.RoundOutcome{}, outcome)

		// And: the score should stay exactly as it was
		assert.Equal(t, before, engine.Scores())
	}
}

func TestEngine_ResolveRound_InvalidMoveSkipsDraw(t *testing.T) {
	// Given: a chooser that must not be called
	chooser := &mockChooser{}
	engine := NewEngine(WithChooser(chooser))

	// When: resolving an invalid move
	_, err := engine.ResolveRound(entity.Move(0))

	// Then: the computer should not have drawn
	require.ErrorIs(t, err, apperror.ErrInvalidMove)
	chooser.AssertNotCalled(t, "IntN", mock.Anything)
}

func TestEngine_Scores_IsIdempotent(t *testing.T) {
	// Given: an engine after a few rounds
	engine := NewEngine(WithChooser(NewScriptedChooser(2, 0, 1)))
	for range 3 {
		_, err := engine.ResolveRound(entity.Rock)
		require.NoError(t, err)
	}

	// When: reading the score twice
	first := engine.Scores()
	second := engine.Scores()

	// Then: both reads should match
	assert.Equal(t, first, second)
	assert.Equal(t, entity.Scores{Player: 1, Computer: 1}, first)
}

func TestEngine_IsGameOver(t *testing.T) {
	t.Run("False while both scores are at most two", func(t *testing.T) {
		for player := 0; player < entity.WinningScore; player++ {
			for computer := 0; computer < entity.WinningScore; computer++ {
				engine := NewEngine()
				engine.scores = entity.Scores{Player: player, Computer: computer}

				assert.False(t, engine.IsGameOver(), "scores %d:%d", player, computer)
			}
		}
	})

	t.Run("True once a side reaches three", func(t *testing.T) {
		engine := NewEngine()

		engine.scores = entity.Scores{Player: 3, Computer: 1}
		assert.True(t, engine.IsGameOver())

		engine.scores = entity.Scores{Player: 2, Computer: 3}
		assert.True(t, engine.IsGameOver())
	})

	t.Run("False once a score has gone past three", func(t *testing.T) {
		// Given: a lenient match played beyond the winning score
		engine := NewEngine()
		engine.scores = entity.Scores{Player: 4, Computer: 1}

		// Then: only an exact three counts as game over
		assert.False(t, engine.IsGameOver())
	})

	t.Run("Player reaches three by winning rounds", func(t *testing.T) {
		// Given: the computer always plays Scissors
		engine := NewEngine(WithChooser(NewScriptedChooser(2)))

		// When: the player plays Rock three times
		for i := 0; i < entity.WinningScore; i++ {
			assert.False(t, engine.IsGameOver())
			_, err := engine.ResolveRound(entity.Rock)
			require.NoError(t, err)
		}

		// Then: the match is over with the player on three
		assert.True(t, engine.IsGameOver())
		assert.Equal(t, entity.Scores{Player: 3, Computer: 0}, engine.Scores())
	})
}

func TestEngine_Reset(t *testing.T) {
	// Given: a finished match
	engine := NewEngine(WithChooser(NewScriptedChooser(0)))
	for range entity.WinningScore {
		_, err := engine.ResolveRound(entity.Scissors)
		require.NoError(t, err)
	}
	require.True(t, engine.IsGameOver())

	// When: resetting
	engine.Reset()

	// Then: both scores are zero and the match is in progress again
	assert.Equal(t, entity.Scores{}, engine.Scores())
	assert.False(t, engine.IsGameOver())

	// And: a fresh engine resets to the same state
	fresh := NewEngine()
	fresh.Reset()
	assert.Equal(t, entity.Scores{}, fresh.Scores())
}

func TestEngine_RoundsAfterGameOver(t *testing.T) {
	t.Run("Lenient engine keeps resolving rounds", func(t *testing.T) {
		// Given: a match the computer has already won
		engine := NewEngine(WithChooser(NewScriptedChooser(1)))
		for range entity.WinningScore {
			_, err := engine.ResolveRound(entity.Rock)
			require.NoError(t, err)
		}
		require.True(t, engine.IsGameOver())

		// When: another round is played
		outcome, err := engine.ResolveRound(entity.Scissors)

		// Then: it is resolved as usual
		require.NoError(t, err)
		assert.Equal(t, entity.PlayerWin, outcome.Result)
		assert.Equal(t, entity.Scores{Player: 1, Computer: 3}, engine.Scores())
		assert.True(t, engine.IsGameOver())

		// When: the computer scores past three
		_, err = engine.ResolveRound(entity.Rock)
		require.NoError(t, err)

		// Then: the game is no longer reported as over
		assert.Equal(t, entity.Scores{Player: 1, Computer: 4}, engine.Scores())
		assert.False(t, engine.IsGameOver())
	})

	t.Run("Strict engine rejects rounds until reset", func(t *testing.T) {
		// Given: a strict engine where the player has already won
		engine := NewEngine(WithChooser(NewScriptedChooser(2)), WithStrictFinish())
		for range entity.WinningScore {
			_, err := engine.ResolveRound(entity.Rock)
			require.NoError(t, err)
		}

		// When: another round is played
		_, err := engine.ResolveRound(entity.Rock)

		// Then: ErrGameFinished is returned and the score is unchanged
		require.ErrorIs(t, err, apperror.ErrGameFinished)
		assert.Equal(t, entity.Scores{Player: 3, Computer: 0}, engine.Scores())

		// And: play resumes after reset
		engine.Reset()
		_, err = engine.ResolveRound(entity.Rock)
		require.NoError(t, err)
	})
}

func TestEngine_ComputerMoveIsUniform(t *testing.T) {
	const draws = 30000

	// Given: an engine with the default random chooser
	engine := NewEngine()
	counts := make(map[entity.Move]int, len(entity.Moves))

	// When: resolving many rounds with a fixed player move
	for range draws {
		outcome, err := engine.ResolveRound(entity.Rock)
		require.NoError(t, err)
		counts[outcome.ComputerMove]++
		engine.Reset()
	}

	// Then: every move should be drawn about a third of the time
	expected := draws / len(entity.Moves)
	for _, move := range entity.Moves {
		assert.InDelta(t, expected, counts[move], 600, "move %s", move)
	}
}

func TestScriptedChooser(t *testing.T) {
	chooser := NewScriptedChooser(0, 4, -1)

	assert.Equal(t, 0, chooser.IntN(3))
	assert.Equal(t, 1, chooser.IntN(3))
	assert.Equal(t, 2, chooser.IntN(3))
	assert.Equal(t, 0, chooser.IntN(3))

	assert.Equal(t, 0, NewScriptedChooser().IntN(3))
}
