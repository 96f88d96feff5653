package processing

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/schollz/progressbar/v3"

	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/hashing"
	"github.com/lgbarn/chess-rules-go/internal/matching"
	"github.com/lgbarn/chess-rules-go/internal/worker"
)

// Stats summarises a batch.
type Stats struct {
	Positions     int
	Reported      int
	Checks        int
	Checkmates    int
	Duplicates    int
	Errors        int
	Disagreements int
}

// String returns the one-line batch summary.
func (s Stats) String() string {
	return fmt.Sprintf("%d positions: %d in check, %d checkmate, %d duplicates, %d errors, %d disagreements, %d reported",
		s.Positions, s.Checks, s.Checkmates, s.Duplicates, s.Errors, s.Disagreements, s.Reported)
}

// Processor audits batches of positions.
type Processor struct {
	cfg      *config.Config
	logger   *log.Logger
	trace    *log.Logger
	detector *hashing.ThreadSafeDuplicateDetector
	material *matching.MaterialMatcher
}

// NewProcessor creates a processor for the given configuration. Duplicate
// detection, when enabled, spans every batch the processor runs.
func NewProcessor(cfg *config.Config) *Processor {
	p := &Processor{
		cfg:    cfg,
		logger: cfg.Logger(config.Summary),
		trace:  cfg.Logger(config.Trace),
	}
	if cfg.Duplicate.Suppress {
		p.detector = hashing.NewThreadSafeDuplicateDetector(0)
	}
	if cfg.Filter.Material != "" {
		p.material = matching.NewMaterialMatcher(cfg.Filter.Material, cfg.Filter.MaterialExact)
	}
	return p
}

// ReadPositions reads one FEN per line, skipping blank lines and lines
// starting with '#'.
func ReadPositions(r io.Reader) ([]string, error) {
	var fens []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fens = append(fens, line)
	}
	return fens, scanner.Err()
}

// Run analyses every position and returns the reports that pass the filter,
// in input order. When ctx is cancelled the positions analysed so far are
// returned with ctx.Err().
func (p *Processor) Run(ctx context.Context, fens []string) ([]*Report, Stats, error) {
	var bar *progressbar.ProgressBar
	if p.cfg.ShowProgress {
		bar = progressbar.NewOptions(len(fens),
			progressbar.OptionSetWriter(p.cfg.LogFile),
			progressbar.OptionSetDescription("auditing"),
		)
	}

	pool := worker.New(p.processFunc(bar),
		worker.WithWorkers(p.cfg.Workers),
		worker.WithBufferSize(2*p.cfg.Workers),
	)
	pool.Start()

	var duplicates []string
	go func() {
		defer pool.Close()
		for i, fen := range fens {
			item := worker.WorkItem{Index: i, FEN: fen}
			if board, toMove, err := engine.NewBoardFromFEN(fen); err == nil {
				if p.detector != nil && p.detector.CheckAndAdd(board, toMove) {
					duplicates = append(duplicates, fen)
					if bar != nil {
						_ = bar.Add(1)
					}
					continue
				}
				item.Board, item.ToMove = board, toMove
			}
			if err := pool.Submit(ctx, item); err != nil {
				pool.Stop()
				return
			}
		}
	}()

	results := pool.Ordered()
	if bar != nil {
		_ = bar.Finish()
	}

	stats := Stats{Positions: len(fens), Duplicates: len(duplicates)}
	if w := p.cfg.Duplicate.DuplicateFile; w != nil {
		for _, fen := range duplicates {
			fmt.Fprintln(w, fen)
		}
	}

	var reports []*Report
	for _, r := range results {
		report := r.report
		stats.add(report)
		if !r.matched {
			continue
		}
		if limit := p.cfg.Filter.MaxPositions; limit > 0 && uint(len(reports)) >= limit {
			continue
		}
		reports = append(reports, report)
	}
	stats.Reported = len(reports)

	p.logger.Printf("audited %s", stats)
	return reports, stats, ctx.Err()
}

func (s *Stats) add(r *Report) {
	switch {
	case r.Err != nil:
		s.Errors++
	case r.Checkmate:
		s.Checks++
		s.Checkmates++
	case r.InCheck:
		s.Checks++
	}
	if r.Disagrees() {
		s.Disagreements++
	}
}

// analysed is one worker's output: the report and whether it passed the filters.
type analysed struct {
	report  *Report
	matched bool
}

// processFunc returns the worker function analysing one position.
func (p *Processor) processFunc(bar *progressbar.ProgressBar) worker.ProcessFunc[analysed] {
	opts := Options{CrossCheck: p.cfg.CrossCheck}
	if p.cfg.Verbosity >= config.Trace {
		opts.Logger = p.trace
	}

	return func(item worker.WorkItem) analysed {
		if bar != nil {
			defer func() { _ = bar.Add(1) }()
		}

		var report *Report
		if item.Board == nil {
			report = AnalyzePosition(item.FEN, opts)
		} else {
			report = AnalyzeBoard(item.FEN, item.Board, item.ToMove, opts)
		}
		report.Index = item.Index

		matched := report.Matches(p.cfg.Filter)
		if matched && p.material != nil {
			matched = p.material.MatchBoard(report.Board)
		}
		return analysed{report: report, matched: matched}
	}
}
