package catalog

import (
	"errors"
	"fmt"
	"strings"
	"text/template"
)

// Mode selects the template and the level of descriptive detail.
type Mode string

const (
	ModeNormal Mode = "normal"
	ModeMaster Mode = "master"
)

// ErrInvalidMode is returned for any mode other than normal or master.
var ErrInvalidMode = errors.New("invalid mode")

// Modes lists the valid modes in display order.
func Modes() []Mode {
	return []Mode{ModeNormal, ModeMaster}
}

// ParseMode validates a user supplied mode name.
func ParseMode(s string) (Mode, error) {
	m := Mode(s)
	if _, ok := templates[m]; !ok {
		return "", fmt.Errorf("%w: %q (valid: normal, master)", ErrInvalidMode, s)
	}
	return m, nil
}

// StructuredPromptHeader asks the model for the seven-field scene record.
const StructuredPromptHeader = `
        Create a structured video description with these components:
        {
            "short_description": "Core action and subject",
            "dense_description": "Detailed scene description with motion",
            "camera_movement": "Primary camera movement",
            "style": "Visual style",
            "lighting": "Lighting conditions",
            "atmosphere": "Mood and feeling",
            "technical_details": "Professional production elements"
        }
        `

const normalTemplate = `Convert this input into clear, accurate video instructions.

Required components:
1. Main subject and action
2. Camera movement (choose from: {{.CameraMovements}})
3. Visual style (choose from: {{.VisualStyles}})
4. Lighting (choose from: {{.LightingConditions}})
5. Scene atmosphere

Format the output as:
[Main Action], [Camera Movement]. [Style] with [Lighting]. [Atmosphere]

Focus on accuracy and clarity over stylistic elements.
`

const masterTemplate = `Convert this input into professional cinematic video instructions.

Required components:
1. Main subject and action with technical details
2. Advanced camera movement (choose from: {{.CameraMovements}})
3. Professional style (choose from: {{.VisualStyles}})
4. Complex lighting setup (choose from: {{.LightingConditions}})
5. Composition details
6. Motion dynamics

Format the output as:
[Detailed Action] with [Technical Details]. [Advanced Camera Movement] with [Professional Lighting]. [Composition Details]

Emphasize cinematic quality and professional production value.
`

// Parsed once; template.Must panics at init on a malformed template.
var templates = map[Mode]*template.Template{
	ModeNormal: template.Must(template.New("normal").Parse(normalTemplate)),
	ModeMaster: template.Must(template.New("master").Parse(masterTemplate)),
}

type templateData struct {
	CameraMovements    string
	VisualStyles       string
	LightingConditions string
}

// Render fills the mode template with the catalog vocabularies.
func Render(mode Mode) (string, error) {
	tmpl, ok := templates[mode]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrInvalidMode, string(mode))
	}

	data := templateData{
		CameraMovements:    strings.Join(cameraMovements, ", "),
		VisualStyles:       strings.Join(visualStyles, ", "),
		LightingConditions: strings.Join(lightingConditions, ", "),
	}

	var sb strings.Builder
	if err := tmpl.Execute(&sb, data); err != nil {
		return "", fmt.Errorf("failed to render %s template: %w", mode, err)
	}
	return sb.String(), nil
}
