package config

// OutputConfig holds settings related to output formatting.
type OutputConfig struct {
	// JSONFormat writes game records as JSON instead of text
	JSONFormat bool

	// ShowBoard prints the board after every ply
	ShowBoard bool

	// ShowAnalysis prints every root move with its score
	ShowAnalysis bool

	// ShowNotation adds the final position in board notation to text records
	ShowNotation bool
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{
		ShowNotation: true,
	}
}
