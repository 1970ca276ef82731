package llm

// DefaultModel is the model used when none is configured.
const DefaultModel = "gemini-2.5-flash"

// DefaultTemperature trades a little determinism for variety in coaching
// output. Callers needing reproducible reports should pin this near 0.
const DefaultTemperature float32 = 0.6

// Config holds the model configuration for LLM calls
type Config struct {
	Model       string
	Temperature float32
}

// DefaultConfig returns the default Gemini configuration
func DefaultConfig() *Config {
	return &Config{
		Model:       DefaultModel,
		Temperature: DefaultTemperature,
	}
}

// WithTemperature returns a copy of the config with the given temperature
func (c *Config) WithTemperature(t float32) *Config {
	return &Config{
		Model:       c.Model,
		Temperature: t,
	}
}
