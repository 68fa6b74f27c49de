package pipeline

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/kaptinlin/jsonrepair"
	"go.uber.org/zap"

	"github.com/zhe.chen/hyprompt/internal/catalog"
	"github.com/zhe.chen/hyprompt/internal/llm"
)

// ImageUserPrompt replaces the user prompt when the input is an image
const ImageUserPrompt = "Analyze the provided image"

// Fallback values used when the model does not answer with JSON
const (
	FallbackCameraMovement = "tracking shot"
	FallbackStyle          = "cinematic"
	FallbackLighting       = "natural lighting"
	FallbackAtmosphere     = "professional"
)

// StructuredDescription is the scene record produced by the first model call.
// It holds whatever object the model returned; keys are not validated.
type StructuredDescription map[string]any

// FallbackDescription builds the record used when reply is not a JSON object.
// The raw reply becomes both descriptions; the rest are fixed defaults.
func FallbackDescription(reply string) StructuredDescription {
	return StructuredDescription{
		"short_description": reply,
		"dense_description": reply,
		"camera_movement":   FallbackCameraMovement,
		"style":             FallbackStyle,
		"lighting":          FallbackLighting,
		"atmosphere":        FallbackAtmosphere,
	}
}

// StructuredDescription runs the first stage: one model call asking for the
// scene record, decoded verbatim or replaced wholesale by the fallback.
func (e *Emulator) StructuredDescription(ctx context.Context, in Input) (StructuredDescription, error) {
	desc, _, err := e.structuredDescription(ctx, in, e.logger)
	return desc, err
}

func (e *Emulator) structuredDescription(ctx context.Context, in Input, logger *zap.Logger) (StructuredDescription, bool, error) {
	systemPrompt := catalog.StructuredPromptHeader
	userPrompt := in.Text

	if in.IsImage() {
		description, err := e.describeImage(ctx, in, logger)
		if err != nil {
			return nil, false, err
		}
		systemPrompt += "\nAnalyze this image description: " + description
	} else {
		systemPrompt += "\nAnalyze this text: " + in.Text
	}
	if userPrompt == "" {
		userPrompt = ImageUserPrompt
	}

	logger.Debug("requesting structured description", zap.String("stage", string(StageStructuredDescription)))
	reply, err := e.generator.Generate(ctx, systemPrompt, userPrompt)
	if err != nil {
		return nil, false, fmt.Errorf("%s: %w", StageStructuredDescription, err)
	}

	if desc, ok := e.decode(reply, logger); ok {
		return desc, false, nil
	}

	logger.Info("model reply is not JSON, using fallback description", zap.Int("reply_bytes", len(reply)))
	return FallbackDescription(reply), true, nil
}

func (e *Emulator) describeImage(ctx context.Context, in Input, logger *zap.Logger) (string, error) {
	data := in.Image
	if data == nil {
		var mediaType string
		var err error
		data, mediaType, err = llm.ReadImage(in.ImagePath)
		if err != nil {
			return "", err
		}
		logger.Debug("read image", zap.String("path", in.ImagePath), zap.String("media_type", mediaType), zap.Int("bytes", len(data)))
	}

	description, err := e.describer.DescribeImage(ctx, data)
	if err != nil {
		return "", fmt.Errorf("failed to describe image: %w", err)
	}
	return description, nil
}

// decode parses the reply as a JSON object, optionally repairing it first.
func (e *Emulator) decode(reply string, logger *zap.Logger) (StructuredDescription, bool) {
	var desc StructuredDescription
	err := json.Unmarshal([]byte(reply), &desc)
	if err == nil && desc != nil {
		return desc, true
	}
	if !e.repairJSON {
		return nil, false
	}

	fixed, err := jsonrepair.JSONRepair(reply)
	if err != nil {
		logger.Debug("json repair failed", zap.Error(err))
		return nil, false
	}
	desc = nil
	if err := json.Unmarshal([]byte(fixed), &desc); err != nil || desc == nil {
		return nil, false
	}
	logger.Debug("repaired model reply into JSON")
	return desc, true
}
