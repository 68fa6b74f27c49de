package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/zhe.chen/hyprompt/pkg/types"
)

// separator frames the prompt in text mode
var separator = strings.Repeat("-", 50)

// TimestampLayout is the ISO-8601 local time written to JSON files
const TimestampLayout = "2006-01-02T15:04:05.000000"

// Options configures where and how the prompt is written
type Options struct {
	// Path is the output file path (empty for stdout)
	Path string

	// Format is text or json
	Format types.OutputFormat

	// Components is the structured description, written as null when nil
	Components any

	// Stdout receives console output and the confirmation line
	Stdout io.Writer

	// Now overrides the clock used for the file timestamp
	Now func() time.Time
}

type fileDocument struct {
	Prompt     string `json:"prompt"`
	Timestamp  string `json:"timestamp"`
	Components any    `json:"components"`
}

type consoleDocument struct {
	Prompt     string `json:"prompt"`
	Components any    `json:"components"`
}

// Save writes the prompt to a file when a path is given, otherwise to Stdout
func Save(prompt string, opts Options) error {
	stdout := opts.Stdout
	if stdout == nil {
		stdout = os.Stdout
	}

	switch opts.Format {
	case types.FormatText, types.FormatJSON, "":
	default:
		return fmt.Errorf("unsupported output format: %s", opts.Format)
	}

	if opts.Path == "" {
		return printConsole(stdout, prompt, opts)
	}

	if err := os.MkdirAll(filepath.Dir(opts.Path), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	var data []byte
	if opts.Format == types.FormatJSON {
		now := time.Now
		if opts.Now != nil {
			now = opts.Now
		}
		encoded, err := json.MarshalIndent(fileDocument{
			Prompt:     prompt,
			Timestamp:  now().Format(TimestampLayout),
			Components: opts.Components,
		}, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode output: %w", err)
		}
		data = encoded
	} else {
		data = []byte(prompt)
	}

	if err := os.WriteFile(opts.Path, data, 0644); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	_, err := fmt.Fprintf(stdout, "Output saved to: %s\n", opts.Path)
	return err
}

func printConsole(w io.Writer, prompt string, opts Options) error {
	if opts.Format == types.FormatJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(consoleDocument{Prompt: prompt, Components: opts.Components})
	}

	_, err := fmt.Fprintf(w, "\nGenerated Prompt:\n%s\n%s\n%s\n", separator, prompt, separator)
	return err
}
