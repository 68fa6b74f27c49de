package llm

import (
	"context"
	"errors"
)

// Generator is the text completion capability every model provider exposes
type Generator interface {
	// Generate sends one system/user prompt pair and returns the model's text reply
	Generate(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

// GeneratorFunc adapts a plain function to Generator
type GeneratorFunc func(ctx context.Context, systemPrompt, userPrompt string) (string, error)

// Generate calls f
func (f GeneratorFunc) Generate(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	return f(ctx, systemPrompt, userPrompt)
}

var (
	// ErrModelNotSupported is returned for models that are known but not implemented
	ErrModelNotSupported = errors.New("model not supported")

	// ErrUnknownModel is returned for models no provider is registered for
	ErrUnknownModel = errors.New("unknown model")

	// ErrGenerationFailed wraps transport and API failures
	ErrGenerationFailed = errors.New("generation failed")

	// ErrEmptyResponse is returned when the API answers without any choice
	ErrEmptyResponse = errors.New("empty response from model")

	// ErrMissingAPIKey is returned when a provider has no credentials
	ErrMissingAPIKey = errors.New("missing API key")
)
