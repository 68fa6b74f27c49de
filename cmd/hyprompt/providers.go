package main

import (
	"go.uber.org/zap"

	"github.com/zhe.chen/hyprompt/internal/llm"
	"github.com/zhe.chen/hyprompt/internal/llm/providers/openai"
	"github.com/zhe.chen/hyprompt/pkg/types"
)

// newRegistry binds model names to providers. It lives here rather than in
// internal/llm because the provider packages import llm.
func newRegistry(logger *zap.Logger) *llm.Registry {
	openaiFactory := func(model string, config types.LLMConfig) (llm.Generator, error) {
		gen, err := openai.NewGenerator(model, config.OpenAI, openai.WithLogger(logger))
		if err != nil {
			return nil, err
		}
		return gen, nil
	}

	r := llm.NewRegistry()
	r.Register("gpt-4", openaiFactory)
	r.Register("gpt-3.5-turbo", openaiFactory)
	r.RegisterPrefix("gpt", openaiFactory)
	r.RegisterUnsupported("claude", "Claude support coming soon")
	return r
}
