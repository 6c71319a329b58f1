package rps

import "math/rand/v2"

// Chooser is the uniform random source the engine draws the computer move from.
type Chooser interface {
	// IntN returns a uniformly distributed int in [0, n). n > 0.
	IntN(n int) int
}

type randomChooser struct{}

// NewRandomChooser - returns a Chooser backed by the runtime's shared generator.
func NewRandomChooser() Chooser {
	return randomChooser{}
}

func (randomChooser) IntN(n int) int {
	return rand.IntN(n) //nolint: gosec // game randomness, not security sensitive
}

// ScriptedChooser replays fixed indexes in order and wraps around at the end.
type ScriptedChooser struct {
	indexes []int
	next    int
}

func NewScriptedChooser(indexes ...int) *ScriptedChooser {
	return &ScriptedChooser{indexes: indexes}
}

func (that *ScriptedChooser) IntN(n int) int {
	if len(that.indexes) == 0 {
		return 0
	}

	idx := that.indexes[that.next%len(that.indexes)]
	that.next++

	return ((idx % n) + n) % n
}
