package config

import (
	"fmt"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// FilterConfig selects which analysed positions are reported.
type FilterConfig struct {
	// MatchCheck reports only positions where the side to move is in check
	MatchCheck bool

	// MatchCheckmate reports only checkmated positions
	MatchCheckmate bool

	// MatchDisagreement reports only positions where the cross-check disagrees
	MatchDisagreement bool

	// Material reports only positions with this material balance, e.g. "KRR:k"
	Material string

	// MaterialExact requires exactly the pieces in Material rather than at least them
	MaterialExact bool

	// MaxPositions stops after this many reported positions (0 = no limit)
	MaxPositions uint
}

// NewFilterConfig creates a FilterConfig with default values.
// All filters are disabled by default.
func NewFilterConfig() *FilterConfig {
	return &FilterConfig{}
}

// Active reports whether any match condition is set.
func (f *FilterConfig) Active() bool {
	return f.MatchCheck || f.MatchCheckmate || f.MatchDisagreement || f.Material != ""
}

// Validate checks that the filter configuration is valid.
func (f *FilterConfig) Validate() error {
	if f.MatchCheck && f.MatchCheckmate {
		return fmt.Errorf("check and checkmate filters are mutually exclusive: %w", errors.ErrInvalidConfig)
	}
	if f.MaterialExact && f.Material == "" {
		return fmt.Errorf("exact material match needs a pattern: %w", errors.ErrInvalidConfig)
	}
	return nil
}
