package entity

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/rockpaperscissors-backend/internal/apperror"
)

// Move is one of the three hand shapes. The zero value is not a valid move.
type Move int

const (
	Rock Move = iota + 1
	Paper
	Scissors
)

// Moves is the fixed, ordered move set the computer draws from.
var Moves = [3]Move{Rock, Paper, Scissors}

// beats maps each move to the one it dominates.
var beats = map[Move]Move{
	Rock:     Scissors,
	Scissors: Paper,
	Paper:    Rock,
}

var moveNames = map[Move]string{
	Rock:     "Rock",
	Paper:    "Paper",
	Scissors: "Scissors",
}

// aliases accepted by ParseMove, lower-cased.
var moveAliases = map[string]Move{
	"rock":     Rock,
	"r":        Rock,
	"paper":    Paper,
	"p":        Paper,
	"scissors": Scissors,
	"s":        Scissors,
}

// ParseMove - converts user input into a Move.
func ParseMove(input string) (Move, error) {
	move, ok := moveAliases[strings.ToLower(strings.TrimSpace(input))]
	if !ok {
		return 0, fmt.Errorf("%w: %q", apperror.ErrInvalidMove, input)
	}

	return move, nil
}

func (that Move) Valid() bool {
	_, ok := moveNames[that]
	return ok
}

// Beats - reports whether the move dominates other.
func (that Move) Beats(other Move) bool {
	defeated, ok := beats[that]
	return ok && defeated == other
}

func (that Move) String() string {
	if name, ok := moveNames[that]; ok {
		return name
	}

	return fmt.Sprintf("Move(%d)", int(that))
}
