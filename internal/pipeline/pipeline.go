package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/zhe.chen/hyprompt/internal/catalog"
	"github.com/zhe.chen/hyprompt/internal/llm"
)

// Stage names one model call of the pipeline
type Stage string

const (
	StageStructuredDescription Stage = "structured_description"
	StageAssemblePrompt        Stage = "assemble_prompt"
)

// Emulator turns text or images into video generation prompts with two
// sequential model calls.
type Emulator struct {
	generator  llm.Generator
	describer  llm.ImageDescriber
	logger     *zap.Logger
	repairJSON bool
}

// Option configures an Emulator
type Option func(*Emulator)

// WithImageDescriber replaces the stub image describer
func WithImageDescriber(d llm.ImageDescriber) Option {
	return func(e *Emulator) { e.describer = d }
}

// WithLogger sets the logger
func WithLogger(logger *zap.Logger) Option {
	return func(e *Emulator) { e.logger = logger }
}

// WithJSONRepair tries to repair malformed JSON replies before falling back
func WithJSONRepair(enabled bool) Option {
	return func(e *Emulator) { e.repairJSON = enabled }
}

// NewEmulator creates a new prompt emulator around generator
func NewEmulator(generator llm.Generator, opts ...Option) *Emulator {
	e := &Emulator{
		generator: generator,
		describer: llm.StubDescriber{},
		logger:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.logger == nil {
		e.logger = zap.NewNop()
	}
	if e.describer == nil {
		e.describer = llm.StubDescriber{}
	}
	return e
}

// Result is the outcome of one prompt generation
type Result struct {
	Prompt     string                `json:"prompt"`
	Components StructuredDescription `json:"components"`
	Mode       catalog.Mode          `json:"mode"`
	Fallback   bool                  `json:"fallback"` // components came from FallbackDescription
	RequestID  string                `json:"request_id"`
}

// GeneratePrompt returns only the final prompt text
func (e *Emulator) GeneratePrompt(ctx context.Context, in Input, mode catalog.Mode) (string, error) {
	result, err := e.Generate(ctx, in, mode)
	if err != nil {
		return "", err
	}
	return result.Prompt, nil
}

// Generate runs both stages. The mode is validated before any model call;
// model failures propagate unchanged apart from stage context.
func (e *Emulator) Generate(ctx context.Context, in Input, mode catalog.Mode) (*Result, error) {
	systemPrompt, err := catalog.Render(mode)
	if err != nil {
		return nil, err
	}

	requestID := uuid.NewString()
	logger := e.logger.With(zap.String("request_id", requestID), zap.String("mode", string(mode)))
	startTime := time.Now()
	logger.Info("generating prompt", zap.Bool("image", in.IsImage()))

	components, fallback, err := e.structuredDescription(ctx, in, logger)
	if err != nil {
		return nil, err
	}

	userPrompt, err := json.Marshal(components)
	if err != nil {
		return nil, fmt.Errorf("failed to encode structured description: %w", err)
	}

	logger.Debug("assembling prompt", zap.String("stage", string(StageAssemblePrompt)))
	reply, err := e.generator.Generate(ctx, systemPrompt, string(userPrompt))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", StageAssemblePrompt, err)
	}

	logger.Info("prompt generated", zap.Duration("duration", time.Since(startTime)), zap.Bool("fallback", fallback))
	return &Result{
		Prompt:     strings.TrimSpace(reply),
		Components: components,
		Mode:       mode,
		Fallback:   fallback,
		RequestID:  requestID,
	}, nil
}
