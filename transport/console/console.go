package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/rocketscienceinc/rockpaperscissors-backend/internal/apperror"
	"github.com/rocketscienceinc/rockpaperscissors-backend/internal/entity"
)

type match interface {
	PlayInput(ctx context.Context, input string) (entity.RoundOutcome, error)
	Scores() entity.Scores
	IsGameOver() bool
	Winner() entity.Side
	Reset(ctx context.Context)
}

var errQuit = errors.New("quit")

// Console is the line based front end of a match: one command or move per line.
type Console struct {
	logger     *slog.Logger
	match      match
	playerName string

	out      io.Writer
	handlers map[string]func(ctx context.Context) error
}

func New(logger *slog.Logger, match match, playerName string) *Console {
	console := &Console{
		logger:     logger.With("component", "console"),
		match:      match,
		playerName: playerName,
	}

	console.handlers = map[string]func(context.Context) error{
		"help":  console.handleHelp,
		"score": console.handleScore,
		"reset": console.handleReset,
		"quit":  console.handleQuit,
		"exit":  console.handleQuit,
	}

	return console
}

// Run - reads lines from in until it is exhausted, the player quits or ctx is done.
func (that *Console) Run(ctx context.Context, in io.Reader, out io.Writer) error {
	log := that.logger.With("method", "Run")

	that.out = out

	lines := make(chan string)
	readErr := make(chan error, 1)

	// the reader sends exactly one value on readErr before lines is closed.
	go func() {
		defer close(lines)

		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				readErr <- ctx.Err()
				return
			}
		}

		readErr <- scanner.Err()
	}()

	that.println(helpMessage)

	for {
		that.print("> ")

		select {
		case <-ctx.Done():
			that.stopped(log, ctx.Err())
			return nil
		case line, ok := <-lines:
			if !ok {
				err := <-readErr
				if ctx.Err() != nil {
					that.stopped(log, ctx.Err())
					return nil
				}

				if err != nil {
					return fmt.Errorf("failed to read input: %w", err)
				}

				that.println("")
				return nil
			}

			if err := that.handleLine(ctx, line); err != nil {
				if errors.Is(err, errQuit) {
					return nil
				}

				return err
			}
		}
	}
}

func (that *Console) stopped(log *slog.Logger, reason error) {
	that.println("")
	log.Info("console stopped", "reason", reason)
}

func (that *Console) handleLine(ctx context.Context, line string) error {
	command := strings.ToLower(strings.TrimSpace(line))
	if command == "" {
		return nil
	}

	if handler, ok := that.handlers[command]; ok {
		return handler(ctx)
	}

	return that.handleMove(ctx, command)
}

func (that *Console) handleMove(ctx context.Context, input string) error {
	if that.match.IsGameOver() {
		that.println(overMessage)
		return nil
	}

	outcome, err := that.match.PlayInput(ctx, input)
	if err != nil {
		if errors.Is(err, apperror.ErrInvalidMove) {
			that.printf("Invalid move %q. %s\n", input, helpMessage)
			return nil
		}

		return fmt.Errorf("failed to play round: %w", err)
	}

	that.println(RoundMessage(outcome))
	that.println(scoreLine(that.playerName, that.match.Scores()))

	if that.match.IsGameOver() {
		that.println(WinnerMessage(that.match.Winner()))
		that.println(overMessage)
	}

	return nil
}

func (that *Console) handleHelp(_ context.Context) error {
	that.println(helpMessage)
	return nil
}

func (that *Console) handleScore(_ context.Context) error {
	that.println(scoreLine(that.playerName, that.match.Scores()))
	return nil
}

func (that *Console) handleReset(ctx context.Context) error {
	that.match.Reset(ctx)
	that.println("New game started.")
	that.println(scoreLine(that.playerName, that.match.Scores()))
	return nil
}

func (that *Console) handleQuit(_ context.Context) error {
	that.println("Bye!")
	return errQuit
}

func (that *Console) print(s string) {
	_, _ = io.WriteString(that.out, s)
}

func (that *Console) println(s string) {
	that.print(s + "\n")
}

func (that *Console) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(that.out, format, args...)
}
