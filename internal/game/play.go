package game

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	chesserrors "github.com/lgbarn/chess-rules-go/internal/errors"
)

// Messages written by Play.
const (
	msgInvalidFormat = "Invalid move format. Use 'start end' format."
	msgInvalidSquare = "Invalid move. Ensure you use valid coordinates (e.g., e2 e4)."
	msgGoodbye       = "Thank you for playing! The game has ended."
)

// Play runs the interactive loop: before each move it writes the board,
// a check warning and a prompt to out, then reads one line from in.
// "quit" ends the game. Malformed or rejected input is reported and the
// same colour is prompted again.
//
// Play returns nil when the game ends or in is exhausted, and the
// context's error if ctx is cancelled between moves.
func (g *Game) Play(ctx context.Context, in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)

	for !g.ended {
		if err := ctx.Err(); err != nil {
			return err
		}

		fmt.Fprint(out, g.board)
		if g.InCheck() {
			fmt.Fprintf(out, "%s is in check!\n", g.toMove)
		}
		fmt.Fprintf(out, "%s's turn. Enter move (e.g., e2 e4) or 'quit' to exit: \n", g.toMove)

		if !scanner.Scan() {
			return scanner.Err()
		}
		line := strings.TrimSpace(scanner.Text())

		if fields := strings.Fields(line); len(fields) > 0 && strings.EqualFold(fields[0], "quit") {
			g.Quit()
			fmt.Fprintln(out, msgGoodbye)
			return nil
		}

		result, err := g.MoveText(line)
		switch {
		case errors.Is(err, chesserrors.ErrInvalidInput):
			fmt.Fprintln(out, msgInvalidFormat)
			continue
		case errors.Is(err, chesserrors.ErrInvalidSquare):
			fmt.Fprintln(out, msgInvalidSquare)
			continue
		case err != nil:
			fmt.Fprintf(out, "Move rejected: %v\n", err)
			continue
		}

		if result.Captured != nil {
			fmt.Fprintf(out, "%s captures %s.\n", result.Piece, result.Captured)
		}
		if result.Checkmate {
			fmt.Fprintf(out, "Checkmate! %s loses!\n", result.Loser)
		}
	}
	return nil
}
