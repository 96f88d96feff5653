// Package output provides report formatting as tagged text or JSON.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/processing"
)

// OutputWriter handles formatted output with line length control.
type OutputWriter struct {
	w             io.Writer
	lineLength    int
	maxLineLength int
	needsSpace    bool
}

// NewOutputWriter creates a new output writer.
func NewOutputWriter(w io.Writer, maxLineLength int) *OutputWriter {
	if maxLineLength <= 0 {
		maxLineLength = 80
	}
	return &OutputWriter{
		w:             w,
		maxLineLength: maxLineLength,
	}
}

// Write writes a string, adding a space separator if needed.
func (o *OutputWriter) Write(s string) {
	if o.needsSpace && len(s) > 0 {
		if o.lineLength+1+len(s) > o.maxLineLength {
			fmt.Fprintln(o.w)
			o.lineLength = 0
			o.needsSpace = false
		} else {
			fmt.Fprint(o.w, " ")
			o.lineLength++
		}
	}

	fmt.Fprint(o.w, s)
	o.lineLength += len(s)
	o.needsSpace = true
}

// NewLine starts a new line.
func (o *OutputWriter) NewLine() {
	fmt.Fprintln(o.w)
	o.lineLength = 0
	o.needsSpace = false
}

// FormatReport renders a report as tag pairs, an optional wrapped escape
// list and an optional board diagram, followed by a blank line.
func FormatReport(report *processing.Report, cfg config.OutputConfig) string {
	var sb strings.Builder

	writeTag(&sb, "Position", fmt.Sprint(report.Index+1))
	writeTag(&sb, "FEN", report.FEN)
	if report.Err != nil {
		writeTag(&sb, "Error", report.Err.Error())
		sb.WriteString("\n")
		return sb.String()
	}

	writeTag(&sb, "ToMove", report.ToMove.String())
	writeTag(&sb, "Status", status(report))
	if ref := report.Reference; ref != nil {
		writeTag(&sb, "Reference", referenceText(ref))
	}

	if cfg.ShowEscapes && len(report.Escapes) > 0 {
		ow := NewOutputWriter(&sb, 80)
		ow.Write("Escapes:")
		for _, m := range report.Escapes {
			ow.Write(m.String())
		}
		ow.NewLine()
	}
	if cfg.ShowBoard && report.Board != nil {
		sb.WriteString(report.Board.String())
		return sb.String()
	}
	sb.WriteString("\n")
	return sb.String()
}

// status names the outcome for the side to move.
func status(report *processing.Report) string {
	switch {
	case report.Checkmate:
		return "checkmate"
	case report.InCheck:
		return "check"
	}
	return "none"
}

func referenceText(ref *processing.Reference) string {
	if ref.Skipped != "" {
		return "skipped: " + ref.Skipped
	}
	verdict := "not checkmate"
	if ref.Checkmate {
		verdict = "checkmate"
	}
	if ref.Agree {
		return verdict + ", agrees"
	}
	return verdict + ", disagrees"
}

// writeTag writes one [Name "value"] line.
func writeTag(sb *strings.Builder, name, value string) {
	fmt.Fprintf(sb, "[%s \"%s\"]\n", name, escapeTagValue(value))
}

// escapeTagValue escapes special characters in tag values.
func escapeTagValue(s string) string {
	// Fast path: if no escaping needed, return original string
	if !strings.ContainsAny(s, "\\\"") {
		return s
	}
	var sb strings.Builder
	sb.Grow(len(s) + 4)
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' || s[i] == '"' {
			sb.WriteByte('\\')
		}
		sb.WriteByte(s[i])
	}
	return sb.String()
}
