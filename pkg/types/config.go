package types

import "time"

// HTTPConfig holds shared HTTP settings used by stages that make network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout. Zero disables the timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout" mapstructure:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "paper-assistant/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent" mapstructure:"user_agent"`
}

// Provider identifies an LLM API.
type Provider string

const (
	ProviderTogether  Provider = "together"
	ProviderOpenAI    Provider = "openai"
	ProviderAnthropic Provider = "anthropic"
)

// LLMConfig holds settings for the model backend.
type LLMConfig struct {
	// Provider selects the API: together, openai, or anthropic.
	Provider Provider `json:"provider" yaml:"provider" mapstructure:"provider"`

	// Model is the model identifier (e.g. "mistralai/Mistral-7B-Instruct-v0.2").
	// Empty selects the provider default.
	Model string `json:"model" yaml:"model" mapstructure:"model"`

	// BaseURL overrides the provider endpoint. Empty selects the provider default.
	BaseURL string `json:"base_url,omitempty" yaml:"base_url,omitempty" mapstructure:"base_url"`

	// APIKey is the authentication key for the API.
	APIKey string `json:"-" yaml:"-" mapstructure:"api_key"`
}

// LogConfig holds logger settings.
type LogConfig struct {
	// Level is one of trace, debug, info, warn, error.
	Level string `json:"level" yaml:"level" mapstructure:"level"`

	// Format is "console" or "json".
	Format string `json:"format" yaml:"format" mapstructure:"format"`
}

// PDFConfig holds settings for text extraction.
type PDFConfig struct {
	// Validate runs a structural validation pass before extracting text.
	Validate bool `json:"validate" yaml:"validate" mapstructure:"validate"`
}

// OutputFormat selects how a Result is printed.
type OutputFormat string

const (
	OutputText OutputFormat = "text"
	OutputYAML OutputFormat = "yaml"
	OutputJSON OutputFormat = "json"
)

// OutputConfig holds settings for printing results.
type OutputConfig struct {
	Format OutputFormat `json:"format" yaml:"format" mapstructure:"format"`
}

// AppConfig groups all settings for a run.
type AppConfig struct {
	HTTP   HTTPConfig   `json:"http" yaml:"http" mapstructure:"http"`
	LLM    LLMConfig    `json:"llm" yaml:"llm" mapstructure:"llm"`
	Log    LogConfig    `json:"log" yaml:"log" mapstructure:"log"`
	PDF    PDFConfig    `json:"pdf" yaml:"pdf" mapstructure:"pdf"`
	Output OutputConfig `json:"output" yaml:"output" mapstructure:"output"`
}

// DefaultConfig returns the settings used when nothing is configured.
func DefaultConfig() AppConfig {
	return AppConfig{
		HTTP: HTTPConfig{
			Timeout:   60 * time.Second,
			UserAgent: "paper-assistant/0.1",
		},
		LLM: LLMConfig{
			Provider: ProviderTogether,
		},
		Log: LogConfig{
			Level:  "warn",
			Format: "console",
		},
		PDF: PDFConfig{
			Validate: true,
		},
		Output: OutputConfig{
			Format: OutputText,
		},
	}
}
