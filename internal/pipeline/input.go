package pipeline

import (
	"errors"
	"strings"
)

// imageExtensions mark a string input as an image path
var imageExtensions = []string{".jpg", ".png", ".jpeg"}

// ErrEmptyInput is returned when neither text nor image data is present
var ErrEmptyInput = errors.New("input has neither text nor image")

// Input is the raw material for one prompt: text, an image path, or image bytes.
// At most one of the fields is meaningful.
type Input struct {
	Text      string
	ImagePath string
	Image     []byte
}

// ParseInput classifies a string by extension only. Any string whose lowercase
// form ends in .jpg, .png or .jpeg is an image path, even if it is prose.
func ParseInput(s string) Input {
	if LooksLikeImagePath(s) {
		return Input{ImagePath: s}
	}
	return Input{Text: s}
}

// ImageInput wraps raw image bytes; bytes are always an image.
func ImageInput(data []byte) Input {
	if data == nil {
		data = []byte{}
	}
	return Input{Image: data}
}

// LooksLikeImagePath reports whether s ends in a known image extension
func LooksLikeImagePath(s string) bool {
	lower := strings.ToLower(s)
	for _, ext := range imageExtensions {
		if strings.HasSuffix(lower, ext) {
			return true
		}
	}
	return false
}

// IsImage reports whether the input must go through the image describer
func (in Input) IsImage() bool {
	return in.Image != nil || in.ImagePath != ""
}

// ValidateInput checks that exactly one kind of input is present
func ValidateInput(in Input) error {
	kinds := 0
	if in.Text != "" {
		kinds++
	}
	if in.ImagePath != "" {
		kinds++
	}
	if in.Image != nil {
		kinds++
	}

	switch kinds {
	case 0:
		return ErrEmptyInput
	case 1:
		return nil
	default:
		return errors.New("input must be either text or an image, not both")
	}
}
