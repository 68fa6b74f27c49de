package llm

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zhe.chen/hyprompt/pkg/types"
)

func namedFactory(name string) Factory {
	return func(model string, config types.LLMConfig) (Generator, error) {
		return GeneratorFunc(func(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
			return name + ":" + model, nil
		}), nil
	}
}

func testRegistry() *Registry {
	r := NewRegistry()
	r.RegisterPrefix("gpt", namedFactory("openai"))
	r.RegisterPrefix("gpt-4o", namedFactory("openai-omni"))
	r.Register("gpt-4", namedFactory("openai-exact"))
	r.RegisterUnsupported("claude", "Claude support coming soon")
	return r
}

func TestRegistry_New(t *testing.T) {
	tests := []struct {
		name    string
		model   string
		want    string
		wantErr error
	}{
		{name: "exact match wins", model: "gpt-4", want: "openai-exact:gpt-4"},
		{name: "prefix match", model: "gpt-3.5-turbo", want: "openai:gpt-3.5-turbo"},
		{name: "longest prefix wins", model: "gpt-4o-mini", want: "openai-omni:gpt-4o-mini"},
		{name: "unsupported model", model: "claude", wantErr: ErrModelNotSupported},
		{name: "unknown model", model: "llama3", wantErr: ErrUnknownModel},
		{name: "empty model", model: "", wantErr: ErrUnknownModel},
	}

	r := testRegistry()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen, err := r.New(tt.model, types.LLMConfig{})
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tt.wantErr), "got %v, want %v", err, tt.wantErr)
				assert.Nil(t, gen)
				return
			}
			require.NoError(t, err)

			out, err := gen.Generate(context.Background(), "sys", "user")
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestRegistry_UnsupportedReason(t *testing.T) {
	_, err := testRegistry().New("claude", types.LLMConfig{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Claude support coming soon")
}

func TestRegistry_FactoryError(t *testing.T) {
	r := NewRegistry()
	r.RegisterPrefix("gpt", func(model string, config types.LLMConfig) (Generator, error) {
		return nil, ErrMissingAPIKey
	})

	_, err := r.New("gpt-4", types.LLMConfig{})
	assert.ErrorIs(t, err, ErrMissingAPIKey)
}

func TestRegistry_Models(t *testing.T) {
	assert.Equal(t, []string{"claude", "gpt-4"}, testRegistry().Models())
}
