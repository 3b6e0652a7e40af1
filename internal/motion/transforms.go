package motion

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Rise maps a scroll offset to the percentage the ocean quad is still
// lowered by. At scroll 0 the quad sits offset percent down; it rises
// linearly and is fully up once scroll reaches rng pixels.
func Rise(scroll, rng, offset float64) float64 {
	if rng <= 0 {
		return 0
	}
	return math.Max(0, offset*(1-mgl64.Clamp(scroll, 0, rng)/rng))
}

// LayerOffset is the parallax displacement in pixels for one layer with
// depth coefficient depth. Scroll shifts the layer at full depth scale;
// the smoothed pointer contributes amplitude-scaled shift, halved on the
// vertical axis. Depth 0 pins the layer.
func LayerOffset(f Frame, depth, amplitude float64) mgl64.Vec2 {
	return mgl64.Vec2{
		f.Pointer.X() * amplitude * depth,
		f.Scroll*depth + f.Pointer.Y()*amplitude*depth*0.5,
	}
}
