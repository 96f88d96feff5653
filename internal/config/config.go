// Package config provides configuration for chess-rules.
package config

import (
	"fmt"
	"io"
	"log"
	"os"
	"runtime"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Verbosity levels.
const (
	Quiet   = 0 // nothing on the log
	Summary = 1 // one line per batch
	Trace   = 2 // one line per position, move and escape
)

// Config holds all program configuration.
type Config struct {
	Verbosity int // 0=nothing, 1=summary, 2=running commentary

	// Workers is the number of goroutines analysing positions in a batch.
	Workers int

	// CrossCheck compares checkmate verdicts with the reference move generator.
	CrossCheck bool

	// ShowProgress draws a progress bar on the log stream during a batch.
	ShowProgress bool

	Output    OutputConfig
	Filter    FilterConfig
	Duplicate DuplicateConfig

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Verbosity:  Summary,
		Workers:    1,
		Output:     *NewOutputConfig(),
		Filter:     *NewFilterConfig(),
		Duplicate:  *NewDuplicateConfig(),
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// SetOutput sets the stream reports are written to.
func (c *Config) SetOutput(w io.Writer) {
	c.OutputFile = w
}

// SetLog sets the stream diagnostics are written to.
func (c *Config) SetLog(w io.Writer) {
	c.LogFile = w
}

// DefaultWorkers returns the worker count used when none is requested.
func DefaultWorkers() int {
	return runtime.NumCPU()
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if c.Workers < 1 {
		return fmt.Errorf("workers must be at least 1, got %d: %w", c.Workers, errors.ErrInvalidConfig)
	}
	if c.Verbosity < Quiet {
		return fmt.Errorf("verbosity must not be negative, got %d: %w", c.Verbosity, errors.ErrInvalidConfig)
	}
	if c.OutputFile == nil || c.LogFile == nil {
		return fmt.Errorf("output and log streams must be set: %w", errors.ErrInvalidConfig)
	}
	if c.Filter.MatchDisagreement && !c.CrossCheck {
		return fmt.Errorf("disagreement filter needs cross-checking: %w", errors.ErrInvalidConfig)
	}
	return c.Filter.Validate()
}

// Logger returns a logger writing to LogFile when Verbosity is at least
// level, and a logger that discards everything otherwise.
func (c *Config) Logger(level int) *log.Logger {
	if c.Verbosity < level || c.LogFile == nil {
		return log.New(io.Discard, "", 0)
	}
	return log.New(c.LogFile, "", 0)
}
