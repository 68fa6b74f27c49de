package llm

import (
	"context"
	"fmt"
	"os"
	"strings"
)

// ImagePlaceholderDescription is what StubDescriber reports for every image
const ImagePlaceholderDescription = "Not done yet - soon, maybe"

// ImageDescriber turns raw image bytes into a textual description
type ImageDescriber interface {
	DescribeImage(ctx context.Context, data []byte) (string, error)
}

// StubDescriber stands in for a captioning model until one is wired in.
// It ignores the image content.
type StubDescriber struct{}

// DescribeImage returns ImagePlaceholderDescription
func (StubDescriber) DescribeImage(ctx context.Context, data []byte) (string, error) {
	return ImagePlaceholderDescription, nil
}

// ReadImage reads an image file and reports its media type
func ReadImage(imagePath string) ([]byte, string, error) {
	data, err := os.ReadFile(imagePath)
	if err != nil {
		return nil, "", fmt.Errorf("failed to read image: %w", err)
	}
	return data, DetectMediaType(imagePath), nil
}

// DetectMediaType returns the media type based on file extension
func DetectMediaType(path string) string {
	lower := strings.ToLower(path)

	if strings.HasSuffix(lower, ".png") {
		return "image/png"
	}
	if strings.HasSuffix(lower, ".jpg") || strings.HasSuffix(lower, ".jpeg") {
		return "image/jpeg"
	}
	if strings.HasSuffix(lower, ".gif") {
		return "image/gif"
	}
	if strings.HasSuffix(lower, ".webp") {
		return "image/webp"
	}

	// Default to JPEG
	return "image/jpeg"
}
