package ollama

import "time"

// Defaults applied by New when the corresponding Config field is zero.
const (
	DefaultBaseURL     = "http://localhost:11434"
	DefaultModel       = "gemma3:12b"
	DefaultTemperature = 0.7
	DefaultMaxTokens   = 2048
	DefaultTimeout     = 120 * time.Second
	DefaultPullGrace   = 2 * time.Second
)

// Config holds the parameters governing every call made by a Client.
type Config struct {
	// BaseURL is the Ollama API base URL, no trailing slash.
	BaseURL string
	// Model is the model identifier, e.g. "gemma3:12b".
	Model string
	// Temperature is the sampling temperature in [0.0, 1.0].
	Temperature float64
	// MaxTokens caps the length of a generated response.
	MaxTokens int
	// Timeout bounds synchronous generation and registry calls. Streaming
	// calls are exempt.
	Timeout time.Duration
	// PullGrace is how long PullModel waits after requesting an install
	// before re-checking availability. Installation is asynchronous on the
	// service side.
	PullGrace time.Duration
}

// DefaultConfig returns a Config with every field set to its default.
func DefaultConfig() Config {
	return Config{
		BaseURL:     DefaultBaseURL,
		Model:       DefaultModel,
		Temperature: DefaultTemperature,
		MaxTokens:   DefaultMaxTokens,
		Timeout:     DefaultTimeout,
		PullGrace:   DefaultPullGrace,
	}
}

// withDefaults fills zero-valued fields from the defaults.
func (c Config) withDefaults() Config {
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	if c.Model == "" {
		c.Model = DefaultModel
	}
	if c.Temperature == 0 {
		c.Temperature = DefaultTemperature
	}
	if c.MaxTokens == 0 {
		c.MaxTokens = DefaultMaxTokens
	}
	if c.Timeout == 0 {
		c.Timeout = DefaultTimeout
	}
	if c.PullGrace == 0 {
		c.PullGrace = DefaultPullGrace
	}

	return c
}
