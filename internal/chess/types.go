// Package chess provides core chess types and operations.
package chess

import (
	"fmt"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Colour represents the colour of a piece or player.
type Colour int

const (
	White Colour = iota
	Black
)

// String returns the lowercase name of a colour.
func (c Colour) String() string {
	if c == White {
		return "white"
	}
	return "black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// ColourOffset returns +1 for White, -1 for Black (for pawn direction).
func ColourOffset(colour Colour) int {
	if colour == White {
		return 1
	}
	return -1
}

// PawnHomeRow returns the row a pawn of the given colour starts on.
func PawnHomeRow(colour Colour) int {
	if colour == White {
		return 1
	}
	return BoardSize - 2
}

// BackRow returns the row holding the given colour's pieces at setup.
func BackRow(colour Colour) int {
	if colour == White {
		return 0
	}
	return BoardSize - 1
}

// PieceKind represents a chess piece type.
type PieceKind int

const (
	Pawn PieceKind = iota
	Rook
	Knight
	Bishop
	Queen
	King
)

// String returns the string representation of a piece kind.
func (k PieceKind) String() string {
	names := []string{"pawn", "rook", "knight", "bishop", "queen", "king"}
	if k >= 0 && int(k) < len(names) {
		return names[k]
	}
	return "unknown"
}

// Letter returns the single letter representation of a piece kind (uppercase).
// Knight is 'N' so it does not clash with the king.
func (k PieceKind) Letter() byte {
	letters := []byte{'P', 'R', 'N', 'B', 'Q', 'K'}
	if k >= 0 && int(k) < len(letters) {
		return letters[k]
	}
	return '?'
}

// KindFromLetter converts a piece letter in either case to its kind.
func KindFromLetter(c byte) (PieceKind, bool) {
	switch c {
	case 'P', 'p':
		return Pawn, true
	case 'R', 'r':
		return Rook, true
	case 'N', 'n':
		return Knight, true
	case 'B', 'b':
		return Bishop, true
	case 'Q', 'q':
		return Queen, true
	case 'K', 'k':
		return King, true
	}
	return 0, false
}

// Piece is a chess piece. Boards hold *Piece so a piece keeps its
// identity as it moves from square to square.
type Piece struct {
	Colour Colour
	Kind   PieceKind
}

// NewPiece creates a piece of the given colour and kind.
func NewPiece(colour Colour, kind PieceKind) *Piece {
	return &Piece{Colour: colour, Kind: kind}
}

// W creates a white piece.
func W(kind PieceKind) *Piece {
	return NewPiece(White, kind)
}

// B creates a black piece.
func B(kind PieceKind) *Piece {
	return NewPiece(Black, kind)
}

// Symbol returns the display character: uppercase for white, lowercase for black.
func (p *Piece) Symbol() byte {
	letter := p.Kind.Letter()
	if p.Colour == Black {
		return letter + ('a' - 'A')
	}
	return letter
}

// String returns the display character as a string.
func (p *Piece) String() string {
	if p == nil {
		return "."
	}
	return string(p.Symbol())
}

// PieceFromSymbol converts a display character to a new piece.
func PieceFromSymbol(c byte) (*Piece, bool) {
	kind, ok := KindFromLetter(c)
	if !ok {
		return nil, false
	}
	colour := White
	if c >= 'a' && c <= 'z' {
		colour = Black
	}
	return NewPiece(colour, kind), true
}

// Constants for board dimensions and algebraic notation.
const (
	BoardSize = 8

	FileBase = 'a'
	RankBase = '1'
)

// Square addresses a board cell. Row 0 is white's first rank, column 0 is the a-file.
type Square struct {
	Row int
	Col int
}

// Sq is shorthand for Square{Row: row, Col: col}.
func Sq(row, col int) Square {
	return Square{Row: row, Col: col}
}

// Valid reports whether the square lies on the board.
func (s Square) Valid() bool {
	return s.Row >= 0 && s.Row < BoardSize && s.Col >= 0 && s.Col < BoardSize
}

// String returns the algebraic name of the square, e.g. "e2".
// Off-board squares are shown as row/column pairs.
func (s Square) String() string {
	if !s.Valid() {
		return fmt.Sprintf("(%d,%d)", s.Row, s.Col)
	}
	return string([]byte{byte(FileBase + s.Col), byte(RankBase + s.Row)})
}

// Offset returns the square dr rows and dc columns away.
func (s Square) Offset(dr, dc int) Square {
	return Square{Row: s.Row + dr, Col: s.Col + dc}
}

// ParseSquare converts algebraic notation ("a1".."h8") to a Square.
func ParseSquare(text string) (Square, error) {
	if len(text) != 2 {
		return Square{}, &errors.ParseError{
			Err:      errors.ErrInvalidSquare,
			Input:    text,
			Expected: "file and rank",
		}
	}
	file, rank := text[0], text[1]
	if file >= 'A' && file <= 'H' {
		file += 'a' - 'A'
	}
	sq := Square{Row: int(rank) - RankBase, Col: int(file) - FileBase}
	if !sq.Valid() {
		return Square{}, &errors.ParseError{
			Err:   errors.ErrInvalidSquare,
			Input: text,
			Got:   "square off the board",
		}
	}
	return sq, nil
}

// MustParseSquare is like ParseSquare but panics on error.
// It is intended for constants and tests.
func MustParseSquare(text string) Square {
	sq, err := ParseSquare(text)
	if err != nil {
		panic(err)
	}
	return sq
}

// Move is a source-destination square pair.
type Move struct {
	From Square
	To   Square
}

// String returns the move in long algebraic form, e.g. "e2e4".
func (m Move) String() string {
	return m.From.String() + m.To.String()
}
