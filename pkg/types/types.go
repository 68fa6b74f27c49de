package types

import "time"

// Config represents the application configuration
type Config struct {
	LLM      LLMConfig      `yaml:"llm"`
	Pipeline PipelineConfig `yaml:"pipeline"`
	Log      LogConfig      `yaml:"log"`
}

// LLMConfig defines which model is used and how its provider is reached
type LLMConfig struct {
	Model string `yaml:"model"` // e.g., "gpt-4", "gpt-3.5-turbo", "claude"

	// Provider-specific configurations
	OpenAI OpenAIConfig `yaml:"openai"`
}

// OpenAIConfig for GPT models
type OpenAIConfig struct {
	APIKey       string            `yaml:"api_key"`
	BaseURL      string            `yaml:"base_url"`     // Optional, any OpenAI-compatible endpoint
	Organization string            `yaml:"organization"` // Optional
	Timeout      time.Duration     `yaml:"timeout"`      // 0 disables the per-call deadline
	Headers      map[string]string `yaml:"headers,omitempty"`
}

// PipelineConfig defines prompt pipeline behaviour
type PipelineConfig struct {
	Mode       string `yaml:"mode"`        // "normal" or "master"
	RepairJSON bool   `yaml:"repair_json"` // try jsonrepair before the fallback record
}

// LogConfig defines logger settings
type LogConfig struct {
	Level      string `yaml:"level"`    // debug, info, warn, error
	Encoding   string `yaml:"encoding"` // console or json
	OutputPath string `yaml:"output_path,omitempty"`
}

// Defaults returns the configuration used when no config file exists
func Defaults() Config {
	return Config{
		LLM: LLMConfig{
			Model: "gpt-4",
		},
		Pipeline: PipelineConfig{
			Mode: "normal",
		},
		Log: LogConfig{
			Level:    "info",
			Encoding: "console",
		},
	}
}

// OutputFormat selects how the generated prompt is written
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
)
