// Package game runs a two-player chess game: it tracks whose turn it is,
// applies validated moves and ends the game on checkmate or quit.
package game

import (
	"io"
	"log"
	"strings"

	"github.com/google/uuid"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// State is the turn controller's state.
type State int

const (
	WhiteToMove State = iota
	BlackToMove
	Ended
)

// String returns a readable name for the state.
func (s State) String() string {
	switch s {
	case WhiteToMove:
		return "white to move"
	case BlackToMove:
		return "black to move"
	case Ended:
		return "ended"
	}
	return "unknown"
}

// Game is a single game between two players sharing one board.
type Game struct {
	ID uuid.UUID

	board    *chess.Board
	toMove   chess.Colour
	ended    bool
	analyzer *engine.Analyzer
	logger   *log.Logger
}

// Option configures a Game.
type Option func(*Game)

// WithBoard starts the game from the given board with toMove to play.
// The game takes ownership of the board.
func WithBoard(board *chess.Board, toMove chess.Colour) Option {
	return func(g *Game) {
		g.board = board
		g.toMove = toMove
	}
}

// WithLogger sends a line per accepted move and per game end to logger.
func WithLogger(logger *log.Logger) Option {
	return func(g *Game) {
		g.logger = logger
	}
}

// New creates a game in the standard starting position with white to move.
func New(opts ...Option) *Game {
	g := &Game{
		ID:     uuid.New(),
		toMove: chess.White,
		logger: log.New(io.Discard, "", 0),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.board == nil {
		g.board = chess.NewInitialBoard()
	}
	g.analyzer = engine.NewAnalyzer(nil)
	return g
}

// Board returns the game's board. Callers must not modify it.
func (g *Game) Board() *chess.Board {
	return g.board
}

// ToMove returns the colour whose turn it is, or the colour that made
// the last move once the game has ended.
func (g *Game) ToMove() chess.Colour {
	return g.toMove
}

// State returns the current state.
func (g *Game) State() State {
	switch {
	case g.ended:
		return Ended
	case g.toMove == chess.White:
		return WhiteToMove
	default:
		return BlackToMove
	}
}

// InCheck reports whether the colour to move is in check.
func (g *Game) InCheck() bool {
	return g.analyzer.IsInCheck(g.board, g.toMove)
}

// Quit ends the game without a result.
func (g *Game) Quit() {
	if !g.ended {
		g.ended = true
		g.logger.Printf("game %s: quit with %s to move", g.ID, g.toMove)
	}
}

// MoveResult describes an accepted move.
type MoveResult struct {
	Move      chess.Move
	Piece     *chess.Piece
	Captured  *chess.Piece
	Checkmate bool
	// Loser is the checkmated colour when Checkmate is set.
	Loser chess.Colour
}

// Move plays from to for the colour to move. The move is rejected, with
// the state unchanged, if the game is over, from does not hold a piece of
// the colour to move, or the piece may not make the move.
//
// After an accepted move the mover's own colour is tested for checkmate;
// if it holds the game ends with the mover as loser, otherwise the turn
// passes to the other colour.
func (g *Game) Move(from, to chess.Square) (MoveResult, error) {
	if g.ended {
		return MoveResult{}, errors.ErrGameOver
	}
	if !from.Valid() || !to.Valid() {
		return MoveResult{}, &errors.MoveError{Err: errors.ErrInvalidSquare, From: from.String(), To: to.String()}
	}

	mover := g.toMove
	piece := g.board.Get(from)
	if piece == nil {
		return MoveResult{}, &errors.MoveError{Err: errors.ErrNoPiece, From: from.String()}
	}
	if piece.Colour != mover {
		return MoveResult{}, &errors.MoveError{
			Err:   errors.ErrWrongTurn,
			From:  from.String(),
			To:    to.String(),
			Piece: piece.String(),
		}
	}

	captured, err := engine.MovePiece(g.board, from, to, g.analyzer)
	if err != nil {
		return MoveResult{}, err
	}

	result := MoveResult{
		Move:     chess.Move{From: from, To: to},
		Piece:    piece,
		Captured: captured,
	}
	g.logger.Printf("game %s: %s %s %s", g.ID, mover, piece, result.Move)

	if g.analyzer.IsCheckmate(g.board, mover) {
		g.ended = true
		result.Checkmate = true
		result.Loser = mover
		g.logger.Printf("game %s: checkmate, %s loses", g.ID, mover)
		return result, nil
	}

	g.toMove = mover.Opposite()
	return result, nil
}

// MoveText parses a move written as two algebraic squares separated by
// whitespace, such as "e2 e4", and plays it.
func (g *Game) MoveText(text string) (MoveResult, error) {
	from, to, err := ParseMove(text)
	if err != nil {
		return MoveResult{}, err
	}
	return g.Move(from, to)
}

// ParseMove splits "e2 e4" into its two squares. Text that is not two
// two-character words fails with ErrInvalidInput; a word that is not a
// square fails with ErrInvalidSquare.
func ParseMove(text string) (chess.Square, chess.Square, error) {
	fields := strings.Fields(text)
	if len(fields) != 2 || len(fields[0]) != 2 || len(fields[1]) != 2 {
		return chess.Square{}, chess.Square{}, &errors.ParseError{
			Err:      errors.ErrInvalidInput,
			Input:    text,
			Expected: "two squares such as \"e2 e4\"",
		}
	}

	from, err := chess.ParseSquare(fields[0])
	if err != nil {
		return chess.Square{}, chess.Square{}, err
	}
	to, err := chess.ParseSquare(fields[1])
	if err != nil {
		return chess.Square{}, chess.Square{}, err
	}
	return from, to, nil
}
