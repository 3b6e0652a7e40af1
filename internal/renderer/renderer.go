package renderer

import (
	"Seascape/internal/motion"
)

// Debug switches the GL renderer to wireframe.
var Debug bool = false

// Render is the drawing backend the engine talks to. The only implementation
// today is OpenGL; the seam mostly keeps the loop testable and the GL calls
// in one place.
type Render interface {
	// Init acquires the GL context state. On failure the renderer stays
	// unavailable and every other method is a no-op.
	Init(width, height int32)
	// Draw renders one frame: the ocean quad plus every parallax layer.
	Draw(elapsed float64, frame motion.Frame)
	UpdateViewport(width, height int32)
	Available() bool
	Cleanup()
}
