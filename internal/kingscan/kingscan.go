// Package kingscan answers a simplified "is the king attacked" question on
// a square text board, independent of the turn-based engine.
//
// The board is one row per line. 'K' marks the king, 'P', 'B', 'R' and 'Q'
// are attackers, '.' is empty and any other character blocks a line. Every
// attacker slides without limit along its directions, pawns included, and
// pawns only move towards the first line.
package kingscan

import (
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

const (
	king  = 'K'
	empty = '.'
)

// Direction is a (row, col) step.
type Direction struct {
	DRow, DCol int
}

var (
	diagonals   = []Direction{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	orthogonals = []Direction{{0, 1}, {0, -1}, {1, 0}, {-1, 0}}
)

// Directions returns the steps an attacker of the given kind slides along.
// Unknown kinds have none.
func Directions(kind byte) []Direction {
	switch kind {
	case 'P':
		return diagonals[:2]
	case 'B':
		return diagonals
	case 'R':
		return orthogonals
	case 'Q':
		return append(append([]Direction{}, diagonals...), orthogonals...)
	}
	return nil
}

// Parse splits a text board into rows, checking that it is non-empty and
// square. Trailing blank lines are ignored.
func Parse(board string) ([][]byte, error) {
	lines := strings.Split(strings.TrimRight(board, "\n"), "\n")
	if len(lines) == 0 || lines[0] == "" {
		return nil, &errors.ParseError{Err: errors.ErrInvalidBoard, Expected: "at least one row"}
	}

	rows := make([][]byte, len(lines))
	for i, line := range lines {
		line = strings.TrimSuffix(line, "\r")
		if len(line) != len(lines) {
			return nil, &errors.ParseError{
				Err:      errors.ErrInvalidBoard,
				Input:    line,
				Line:     i + 1,
				Expected: "square board",
			}
		}
		rows[i] = []byte(line)
	}
	return rows, nil
}

// Scan reports whether any attacker on the board reaches the king before
// hitting another occupied square. It fails with ErrNoKing when the board
// has no king and with ErrInvalidBoard when it is empty or not square.
func Scan(board string) (bool, error) {
	rows, err := Parse(board)
	if err != nil {
		return false, err
	}
	if !hasKing(rows) {
		return false, errors.ErrNoKing
	}

	for r, row := range rows {
		for c, piece := range row {
			for _, d := range Directions(piece) {
				if reachesKing(rows, r, c, d) {
					return true, nil
				}
			}
		}
	}
	return false, nil
}

// hasKing reports whether any square holds the king.
func hasKing(rows [][]byte) bool {
	for _, row := range rows {
		for _, sq := range row {
			if sq == king {
				return true
			}
		}
	}
	return false
}

// reachesKing steps from (r, c) along d until it leaves the board, meets
// the king or meets any other non-empty square.
func reachesKing(rows [][]byte, r, c int, d Direction) bool {
	n := len(rows)
	for {
		r, c = r+d.DRow, c+d.DCol
		if r < 0 || r >= n || c < 0 || c >= n {
			return false
		}
		switch rows[r][c] {
		case king:
			return true
		case empty:
			continue
		default:
			return false
		}
	}
}
