// Package processing provides position analysis and batch auditing.
package processing

import (
	"log"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/engine"
)

// Report holds the analysis of one position.
type Report struct {
	Index     int
	FEN       string
	Board     *chess.Board
	ToMove    chess.Colour
	InCheck   bool
	Checkmate bool
	Escapes   []chess.Move

	// Reference is the cross-check verdict, nil when not cross-checked.
	Reference *Reference
	Err       error
}

// Reference holds the verdict of the reference move generator.
type Reference struct {
	Checkmate bool
	Agree     bool
	Skipped   string // reason the cross-check did not run
}

// Disagrees reports whether a cross-check ran and reached a different verdict.
func (r *Report) Disagrees() bool {
	return r.Reference != nil && r.Reference.Skipped == "" && !r.Reference.Agree
}

// Matches reports whether the report passes the check, checkmate and
// disagreement filters. Reports that failed to parse only pass when no
// filter is active. Material is matched by the Processor.
func (r *Report) Matches(filter config.FilterConfig) bool {
	if !filter.Active() {
		return true
	}
	if r.Err != nil {
		return false
	}
	switch {
	case filter.MatchCheck && !r.InCheck:
		return false
	case filter.MatchCheckmate && !r.Checkmate:
		return false
	case filter.MatchDisagreement && !r.Disagrees():
		return false
	}
	return true
}

// Options controls a single analysis.
type Options struct {
	CrossCheck bool
	Logger     *log.Logger // trace output, may be nil
}

// AnalyzePosition parses a FEN and analyses it for the side to move.
func AnalyzePosition(fen string, opts Options) *Report {
	board, toMove, err := engine.NewBoardFromFEN(fen)
	if err != nil {
		return &Report{FEN: fen, Err: err}
	}
	return AnalyzeBoard(fen, board, toMove, opts)
}

// AnalyzeBoard analyses a parsed position for the side to move. The board is
// left as it was found.
func AnalyzeBoard(fen string, board *chess.Board, toMove chess.Colour, opts Options) *Report {
	report := &Report{
		FEN:    fen,
		Board:  board,
		ToMove: toMove,
	}

	analyzer := engine.NewAnalyzer(opts.Logger)
	report.InCheck = analyzer.IsInCheck(board, toMove)
	if report.InCheck {
		report.Escapes = analyzer.Escapes(board, toMove)
		report.Checkmate = len(report.Escapes) == 0
	}

	if opts.CrossCheck {
		report.Reference = crossCheck(board, toMove, report.Checkmate)
	}
	if opts.Logger != nil {
		opts.Logger.Printf("%s: check=%t checkmate=%t escapes=%d", fen, report.InCheck, report.Checkmate, len(report.Escapes))
	}
	return report
}
