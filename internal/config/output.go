package config

// OutputConfig holds settings related to report formatting.
type OutputConfig struct {
	// JSONFormat writes reports as JSON instead of text
	JSONFormat bool

	// ShowBoard includes the rendered board in text reports
	ShowBoard bool

	// ShowEscapes lists the moves that resolve a check
	ShowEscapes bool
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{
		ShowEscapes: true,
	}
}
