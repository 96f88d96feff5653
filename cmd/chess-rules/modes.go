package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/lgbarn/chess-rules-go/internal/config"
	chesserrors "github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/game"
	"github.com/lgbarn/chess-rules-go/internal/kingscan"
	"github.com/lgbarn/chess-rules-go/internal/output"
	"github.com/lgbarn/chess-rules-go/internal/processing"
)

// run dispatches to the mode selected by the flags. in is read by the
// interactive game and by "-" file arguments.
func run(ctx context.Context, cfg *config.Config, in io.Reader) error {
	switch {
	case *fenPosition != "":
		return analyseFEN(cfg, *fenPosition)
	case *auditFile != "":
		return audit(ctx, cfg, *auditFile, in)
	case *scanFile != "":
		return scan(cfg, *scanFile, in)
	}
	return play(ctx, cfg, in)
}

// analyseFEN reports on a single position. A position that fails to parse
// is still reported before its error is returned.
func analyseFEN(cfg *config.Config, fen string) error {
	opts := processing.Options{CrossCheck: cfg.CrossCheck}
	if cfg.Verbosity >= config.Trace {
		opts.Logger = cfg.Logger(config.Trace)
	}

	report := processing.AnalyzePosition(fen, opts)
	if err := output.WriteReports(output.NewWriter(cfg.OutputFile, cfg), []*processing.Report{report}); err != nil {
		return err
	}
	return report.Err
}

// audit reports on every position in path.
func audit(ctx context.Context, cfg *config.Config, path string, in io.Reader) error {
	r, closeFn, err := openInput(path, in)
	if err != nil {
		return err
	}
	defer closeFn()

	fens, err := processing.ReadPositions(r)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	reports, _, runErr := processing.NewProcessor(cfg).Run(ctx, fens)
	if err := output.WriteReports(output.NewWriter(cfg.OutputFile, cfg), reports); err != nil {
		return err
	}
	return runErr
}

// scan runs the king scan on the board in path.
func scan(cfg *config.Config, path string, in io.Reader) error {
	r, closeFn, err := openInput(path, in)
	if err != nil {
		return err
	}
	defer closeFn()

	data, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	found, err := kingscan.Scan(string(data))
	switch {
	case errors.Is(err, chesserrors.ErrNoKing):
		fmt.Fprintln(cfg.OutputFile, "Error: King not found.")
		return nil
	case err != nil:
		return err
	case found:
		fmt.Fprintln(cfg.OutputFile, "Success")
	default:
		fmt.Fprintln(cfg.OutputFile, "Fail")
	}
	return nil
}

// play runs the interactive game.
func play(ctx context.Context, cfg *config.Config, in io.Reader) error {
	g := game.New(game.WithLogger(cfg.Logger(config.Trace)))
	cfg.Logger(config.Summary).Printf("game %s started", g.ID)
	return g.Play(ctx, in, cfg.OutputFile)
}

// openInput opens path, or returns in when path is "-".
func openInput(path string, in io.Reader) (io.Reader, func(), error) {
	if path == "-" {
		return in, func() {}, nil
	}
	file, err := os.Open(path) //nolint:gosec // G304: path comes from the command line
	if err != nil {
		return nil, nil, err
	}
	return file, func() { _ = file.Close() }, nil
}
