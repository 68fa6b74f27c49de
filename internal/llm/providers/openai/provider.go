package openai

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"github.com/zhe.chen/hyprompt/internal/llm"
	"github.com/zhe.chen/hyprompt/pkg/types"
)

// APIKeyEnv is consulted when the config carries no API key
const APIKeyEnv = "OPENAI_API_KEY"

// Generator implements llm.Generator for OpenAI chat completions
type Generator struct {
	client  *openai.Client
	model   string
	timeout time.Duration
	logger  *zap.Logger
}

// Option customises a Generator
type Option func(*options)

type options struct {
	logger     *zap.Logger
	httpClient *http.Client
}

// WithLogger sets the logger used for request tracing
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) { o.logger = logger }
}

// WithHTTPClient replaces the base HTTP client (headers are still injected)
func WithHTTPClient(client *http.Client) Option {
	return func(o *options) { o.httpClient = client }
}

// NewGenerator creates a new OpenAI generator for model
func NewGenerator(model string, config types.OpenAIConfig, opts ...Option) (*Generator, error) {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = zap.NewNop()
	}

	apiKey := config.APIKey
	if apiKey == "" {
		apiKey = os.Getenv(APIKeyEnv)
	}
	if apiKey == "" {
		return nil, fmt.Errorf("%w: set llm.openai.api_key or %s", llm.ErrMissingAPIKey, APIKeyEnv)
	}

	clientConfig := openai.DefaultConfig(apiKey)
	if config.BaseURL != "" {
		clientConfig.BaseURL = config.BaseURL
	}
	if config.Organization != "" {
		clientConfig.OrgID = config.Organization
	}

	httpClient := o.httpClient
	if len(config.Headers) > 0 {
		base := http.DefaultTransport
		if httpClient != nil && httpClient.Transport != nil {
			base = httpClient.Transport
		}
		wrapped := &http.Client{
			Transport: &headerTransport{Base: base, Headers: config.Headers},
		}
		if httpClient != nil {
			wrapped.Timeout = httpClient.Timeout
		}
		httpClient = wrapped
	}
	if httpClient != nil {
		clientConfig.HTTPClient = httpClient
	}

	return &Generator{
		client:  openai.NewClientWithConfig(clientConfig),
		model:   model,
		timeout: config.Timeout,
		logger:  o.logger.With(zap.String("provider", "openai"), zap.String("model", model)),
	}, nil
}

// Model returns the model name requests are sent to
func (g *Generator) Model() string {
	return g.model
}

// Generate sends a system and a user message and returns the first choice
func (g *Generator) Generate(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	messages := []openai.ChatCompletionMessage{
		{
			Role:    openai.ChatMessageRoleSystem,
			Content: systemPrompt,
		},
		{
			Role:    openai.ChatMessageRoleUser,
			Content: userPrompt,
		},
	}

	startTime := time.Now()
	g.logger.Debug("sending chat completion",
		zap.Int("system_prompt_bytes", len(systemPrompt)),
		zap.Int("user_prompt_bytes", len(userPrompt)))

	resp, err := g.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:    g.model,
		Messages: messages,
	})
	duration := time.Since(startTime)
	if err != nil {
		g.logger.Error("chat completion failed", zap.Duration("duration", duration), zap.Error(err))
		return "", fmt.Errorf("%w: %v", llm.ErrGenerationFailed, err)
	}

	if len(resp.Choices) == 0 {
		g.logger.Error("chat completion returned no choices", zap.Duration("duration", duration))
		return "", llm.ErrEmptyResponse
	}

	g.logger.Debug("chat completion done",
		zap.Duration("duration", duration),
		zap.Int("prompt_tokens", resp.Usage.PromptTokens),
		zap.Int("completion_tokens", resp.Usage.CompletionTokens),
		zap.String("finish_reason", string(resp.Choices[0].FinishReason)))

	return resp.Choices[0].Message.Content, nil
}

// headerTransport adds custom headers to HTTP requests
type headerTransport struct {
	Base    http.RoundTripper
	Headers map[string]string
}

func (t *headerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())
	for k, v := range t.Headers {
		req.Header.Set(k, v)
	}
	return t.Base.RoundTrip(req)
}
