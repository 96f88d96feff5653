package config

import "io"

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithWorkers sets the number of analysis goroutines.
func (b *ConfigBuilder) WithWorkers(n int) *ConfigBuilder {
	b.cfg.Workers = n
	return b
}

// WithJSONOutput enables JSON output.
func (b *ConfigBuilder) WithJSONOutput(enabled bool) *ConfigBuilder {
	b.cfg.Output.JSONFormat = enabled
	return b
}

// WithBoard includes rendered boards in text output.
func (b *ConfigBuilder) WithBoard(enabled bool) *ConfigBuilder {
	b.cfg.Output.ShowBoard = enabled
	return b
}

// WithEscapes lists the moves that resolve a check in text output.
func (b *ConfigBuilder) WithEscapes(enabled bool) *ConfigBuilder {
	b.cfg.Output.ShowEscapes = enabled
	return b
}

// WithDuplicateSuppression enables duplicate suppression.
func (b *ConfigBuilder) WithDuplicateSuppression(enabled bool) *ConfigBuilder {
	b.cfg.Duplicate.Suppress = enabled
	return b
}

// WithCrossCheck enables comparison with the reference move generator.
func (b *ConfigBuilder) WithCrossCheck(enabled bool) *ConfigBuilder {
	b.cfg.CrossCheck = enabled
	return b
}

// WithCheckFilter reports only positions in check.
func (b *ConfigBuilder) WithCheckFilter(enabled bool) *ConfigBuilder {
	b.cfg.Filter.MatchCheck = enabled
	return b
}

// WithCheckmateFilter reports only checkmated positions.
func (b *ConfigBuilder) WithCheckmateFilter(enabled bool) *ConfigBuilder {
	b.cfg.Filter.MatchCheckmate = enabled
	return b
}

// WithDisagreementFilter reports only positions where the cross-check disagrees.
func (b *ConfigBuilder) WithDisagreementFilter(enabled bool) *ConfigBuilder {
	b.cfg.Filter.MatchDisagreement = enabled
	return b
}

// WithMaxPositions stops reporting after n positions. Zero means no limit.
func (b *ConfigBuilder) WithMaxPositions(n uint) *ConfigBuilder {
	b.cfg.Filter.MaxPositions = n
	return b
}

// WithProgress draws a progress bar on the log stream during a batch.
func (b *ConfigBuilder) WithProgress(enabled bool) *ConfigBuilder {
	b.cfg.ShowProgress = enabled
	return b
}

// WithMaterialFilter reports only positions matching a material pattern.
func (b *ConfigBuilder) WithMaterialFilter(pattern string, exact bool) *ConfigBuilder {
	b.cfg.Filter.Material = pattern
	b.cfg.Filter.MaterialExact = exact
	return b
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.OutputFile = w
	return b
}

// WithLog sets the log writer.
func (b *ConfigBuilder) WithLog(w io.Writer) *ConfigBuilder {
	b.cfg.LogFile = w
	return b
}

// WithVerbosity sets the verbosity level.
func (b *ConfigBuilder) WithVerbosity(level int) *ConfigBuilder {
	b.cfg.Verbosity = level
	return b
}
