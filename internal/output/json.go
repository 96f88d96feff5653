package output

import (
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/processing"
)

// JSONReport represents a position report in JSON format.
type JSONReport struct {
	Position  int            `json:"position"`
	FEN       string         `json:"fen"`
	ToMove    string         `json:"toMove,omitempty"`
	InCheck   bool           `json:"inCheck"`
	Checkmate bool           `json:"checkmate"`
	Escapes   []string       `json:"escapes,omitempty"`
	Reference *JSONReference `json:"reference,omitempty"`
	Board     []string       `json:"board,omitempty"`
	Error     string         `json:"error,omitempty"`
}

// JSONReference is the cross-check verdict in JSON format.
type JSONReference struct {
	Checkmate bool   `json:"checkmate"`
	Agree     bool   `json:"agree"`
	Skipped   string `json:"skipped,omitempty"`
}

// JSONOutput holds multiple reports for array output.
type JSONOutput struct {
	Positions []*JSONReport `json:"positions"`
}

// ReportToJSON converts a report to JSON format. Board rows are listed
// from the first rank up, matching the text diagram.
func ReportToJSON(report *processing.Report, cfg config.OutputConfig) *JSONReport {
	jr := &JSONReport{
		Position: report.Index + 1,
		FEN:      report.FEN,
	}
	if report.Err != nil {
		jr.Error = report.Err.Error()
		return jr
	}

	jr.ToMove = report.ToMove.String()
	jr.InCheck = report.InCheck
	jr.Checkmate = report.Checkmate
	if cfg.ShowEscapes {
		for _, m := range report.Escapes {
			jr.Escapes = append(jr.Escapes, m.String())
		}
	}
	if ref := report.Reference; ref != nil {
		jr.Reference = &JSONReference{
			Checkmate: ref.Checkmate,
			Agree:     ref.Agree,
			Skipped:   ref.Skipped,
		}
	}
	if cfg.ShowBoard && report.Board != nil {
		jr.Board = strings.Split(strings.TrimRight(report.Board.String(), "\n"), "\n")
	}
	return jr
}
