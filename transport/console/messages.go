package console

import (
	"fmt"

	"github.com/rocketscienceinc/rockpaperscissors-backend/internal/entity"
)

const (
	helpMessage = "Choose rock, paper or scissors (r, p, s). Other commands: score, reset, help, quit."
	overMessage = "Game over. Type reset to play again or quit to leave."
)

// RoundMessage - human readable description of a resolved round.
func RoundMessage(outcome entity.RoundOutcome) string {
	switch outcome.Result {
	case entity.PlayerWin:
		return fmt.Sprintf("You win! %s beats %s", outcome.PlayerMove, outcome.ComputerMove)
	case entity.Tie:
		return fmt.Sprintf("It's a tie! Both chose %s", outcome.PlayerMove)
	case entity.ComputerWin:
		return fmt.Sprintf("Computer wins! %s beats %s", outcome.ComputerMove, outcome.PlayerMove)
	default:
		return ""
	}
}

func WinnerMessage(winner entity.Side) string {
	switch winner {
	case entity.SidePlayer:
		return "You have won the game!"
	case entity.SideComputer:
		return "Computer has won the game!"
	case entity.SideNone:
	}

	return ""
}

func scoreLine(playerName string, scores entity.Scores) string {
	return fmt.Sprintf("%s: %d | Computer: %d", playerName, scores.Player, scores.Computer)
}
