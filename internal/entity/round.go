package entity

const WinningScore = 3

const (
	PlayerWin   Result = "player_win"
	ComputerWin Result = "computer_win"
	Tie         Result = "tie"
)

// Result tags the outcome of a single round.
type Result string

// RoundOutcome describes one resolved round.
type RoundOutcome struct {
	PlayerMove   Move   `json:"player_move"`
	ComputerMove Move   `json:"computer_move"`
	Result       Result `json:"result"`
}

type Scores struct {
	Player   int `json:"player_score"`
	Computer int `json:"computer_score"`
}

// Side names a participant of the match.
type Side string

const (
	SidePlayer   Side = "player"
	SideComputer Side = "computer"
	SideNone     Side = ""
)

// Leader - returns the side whose score equals WinningScore, or SideNone otherwise.
func (that Scores) Leader() Side {
	switch {
	case that.Player == WinningScore:
		return SidePlayer
	case that.Computer == WinningScore:
		return SideComputer
	default:
		return SideNone
	}
}
