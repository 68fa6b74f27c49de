package catalog

var cameraMovements = []string{
	"static shot",
	"pan up", "pan down", "pan left", "pan right",
	"tilt up", "tilt down", "tilt left", "tilt right",
	"zoom in", "zoom out",
	"dolly tracking",
	"around left", "around right",
	"handheld shot",
}

var visualStyles = []string{
	"cinematic",
	"documentary",
	"realistic",
	"professional",
	"high-end film",
}

var lightingConditions = []string{
	"natural daylight",
	"golden hour",
	"blue hour",
	"studio lighting",
	"practical lights",
	"dramatic lighting",
	"soft diffused light",
	"high contrast",
	"volumetric lighting",
}

// CameraMovements returns a copy of the camera movement vocabulary.
func CameraMovements() []string {
	return clone(cameraMovements)
}

// VisualStyles returns a copy of the visual style vocabulary.
func VisualStyles() []string {
	return clone(visualStyles)
}

// LightingConditions returns a copy of the lighting vocabulary.
func LightingConditions() []string {
	return clone(lightingConditions)
}

func clone(in []string) []string {
	out := make([]string, len(in))
	copy(out, in)
	return out
}
