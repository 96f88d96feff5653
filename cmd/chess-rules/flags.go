// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"

	"github.com/lgbarn/chess-rules-go/internal/config"
)

var (
	// Modes
	fenPosition = flag.String("fen", "", "Analyse one position given as FEN")
	auditFile   = flag.String("audit", "", "Analyse a file of FEN positions, one per line (- for stdin)")
	scanFile    = flag.String("scan", "", "Run the king scan on a square text board (- for stdin)")

	// Output options
	outputFile   = flag.String("o", "", "Output file (default: stdout)")
	appendOutput = flag.Bool("a", false, "Append to output file instead of overwrite")
	jsonOutput   = flag.Bool("json", false, "Output reports in JSON format")
	showBoard    = flag.Bool("board", false, "Include the board diagram in reports")
	noEscapes    = flag.Bool("noescapes", false, "Don't list the moves that escape check")

	// Duplicate detection
	suppressDuplicates = flag.Bool("dedupe", false, "Skip positions already seen in the batch")
	duplicateFile      = flag.String("d", "", "Write skipped duplicate positions to this file")

	// Filtering options
	checkFilter     = flag.Bool("check", false, "Only report positions where the side to move is in check")
	checkmateFilter = flag.Bool("checkmate", false, "Only report checkmated positions")
	disagreeFilter  = flag.Bool("disagree", false, "Only report positions where the cross-check disagrees")
	stopAfter       = flag.Int("stopafter", 0, "Stop after reporting N positions")

	// Material matching
	materialMatch      = flag.String("z", "", "Material balance to match (e.g., 'KRR:k')")
	materialMatchExact = flag.String("y", "", "Exact material balance to match")

	// Reference comparison
	crossCheck = flag.Bool("crosscheck", false, "Compare checkmate verdicts with the reference move generator")

	// Logging
	logFile   = flag.String("l", "", "Write diagnostics to log file")
	appendLog = flag.String("L", "", "Append diagnostics to log file")
	verbosity = flag.Int("v", config.Summary, "Verbosity: 0=quiet, 1=summary, 2=trace")

	// Other options
	quiet   = flag.Bool("s", false, "Silent mode (no summary)")
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")

	// Performance options
	workers      = flag.Int("workers", 0, "Number of worker goroutines (0 = auto-detect based on CPU cores)")
	showProgress = flag.Bool("progress", false, "Show a progress bar on the log stream during an audit")
	profileDir   = flag.String("profile", "", "Write a CPU profile into this directory")
)

// applyFlags applies command-line flags to the configuration builder.
func applyFlags(b *config.ConfigBuilder) {
	applyOutputFlags(b)
	applyFilterFlags(b)
	applyDuplicateFlags(b)
	applyPerformanceFlags(b)

	b.WithCrossCheck(*crossCheck)
	if *quiet {
		b.WithVerbosity(config.Quiet)
	} else {
		b.WithVerbosity(*verbosity)
	}
}

// applyOutputFlags configures report formatting.
func applyOutputFlags(b *config.ConfigBuilder) {
	b.WithJSONOutput(*jsonOutput).
		WithBoard(*showBoard).
		WithEscapes(!*noEscapes)
}

// applyFilterFlags configures which positions are reported.
func applyFilterFlags(b *config.ConfigBuilder) {
	b.WithCheckFilter(*checkFilter).
		WithCheckmateFilter(*checkmateFilter).
		WithDisagreementFilter(*disagreeFilter)
	switch {
	case *materialMatchExact != "":
		b.WithMaterialFilter(*materialMatchExact, true)
	case *materialMatch != "":
		b.WithMaterialFilter(*materialMatch, false)
	}
	if *stopAfter > 0 {
		b.WithMaxPositions(uint(*stopAfter))
	}
}

// applyDuplicateFlags configures duplicate detection settings.
func applyDuplicateFlags(b *config.ConfigBuilder) {
	b.WithDuplicateSuppression(*suppressDuplicates || *duplicateFile != "")
}

// applyPerformanceFlags configures the worker count and progress display.
func applyPerformanceFlags(b *config.ConfigBuilder) {
	n := *workers
	if n == 0 {
		n = config.DefaultWorkers()
	}
	b.WithWorkers(n).WithProgress(*showProgress)
}
