// Package motion holds the per-session input state and the per-frame maths
// that turn raw scroll/pointer input into the values the renderer consumes.
// It is deliberately free of any GL or windowing dependency.
package motion

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Params are the smoothing and mapping constants, fixed for the session.
type Params struct {
	Sensitivity      float64 // scroll pixels per frame that map to full speed
	SpeedSmoothing   float64 // in (0,1], fraction of the gap covered per frame
	PointerSmoothing float64 // in (0,1]
	TiltDivisor      float64 // tilt degrees that map to a full-scale offset
	RiseOffset       float64 // percent the quad starts lowered by
	RiseRangeFactor  float64 // rise range as a multiple of viewport height
	PageFactor       float64 // scrollable range as a multiple of viewport height
}

// State is the bundle of mutable scalars shared between the input callbacks
// and the render loop. Callbacks only touch the setters; the loop snapshots
// everything once per Step. Single-threaded by construction (GLFW callbacks
// fire inside PollEvents on the loop's own thread), so no locking.
type State struct {
	params Params

	width, height float64

	// Latest external input, written by the callbacks.
	scroll  float64
	pointer mgl64.Vec2

	// Owned by the loop, advanced once per Step.
	prevScroll    float64
	speed         float64
	smoothPointer mgl64.Vec2
}

// Frame is the per-frame snapshot the renderer consumes.
type Frame struct {
	Width, Height float64
	Scroll        float64
	Speed         float64    // smoothed, in [0,1]
	Rise          float64    // percent of viewport height the quad is lowered by
	Pointer       mgl64.Vec2 // smoothed, each axis in [-1,1]
}

func NewState(params Params) *State {
	return &State{params: params}
}

// SetViewport records the window's pixel dimensions. Called once at startup
// and from the resize callback.
func (s *State) SetViewport(width, height float64) {
	s.width = width
	s.height = height
}

// AddScroll advances the virtual page scroll by delta pixels, clamped to the
// scrollable range. Wheel callbacks call this with their tick delta already
// converted to pixels.
func (s *State) AddScroll(delta float64) {
	s.scroll = mgl64.Clamp(s.scroll+delta, 0, s.height*s.params.PageFactor)
}

// SetScroll overwrites the scroll offset outright, clamped the same way.
func (s *State) SetScroll(offset float64) {
	s.scroll = mgl64.Clamp(offset, 0, s.height*s.params.PageFactor)
}

// SetPointer records a pointer position in window pixels, normalized to
// [-1,1] per axis. Last writer wins against SetTilt.
func (s *State) SetPointer(x, y float64) {
	if s.width <= 0 || s.height <= 0 {
		return
	}
	s.pointer = mgl64.Vec2{
		mgl64.Clamp(x/s.width*2-1, -1, 1),
		mgl64.Clamp(y/s.height*2-1, -1, 1),
	}
}

// SetTilt records a device tilt reading in degrees, mapped through the tilt
// divisor and clamped to [-1,1]. Callers must not invoke this when no
// reading is available, so the last valid value is preserved.
func (s *State) SetTilt(gamma, beta float64) {
	s.pointer = mgl64.Vec2{
		mgl64.Clamp(gamma/s.params.TiltDivisor, -1, 1),
		mgl64.Clamp(beta/s.params.TiltDivisor, -1, 1),
	}
}

// ResetBaseline snaps the previous-scroll snapshot to the current offset so
// the next Step sees a raw delta of 0. Called when the loop resumes after
// being paused, to avoid a false speed spike.
func (s *State) ResetBaseline() {
	s.prevScroll = s.scroll
}

// Step advances the smoothed signals by one frame and returns the snapshot.
// The raw scroll delta is always measured against exactly the previous
// frame's offset, no matter how many input events fired in between.
func (s *State) Step() Frame {
	raw := math.Abs(s.scroll - s.prevScroll)
	s.prevScroll = s.scroll

	target := mgl64.Clamp(raw/s.params.Sensitivity, 0, 1)
	s.speed = Smooth(s.speed, target, s.params.SpeedSmoothing)

	s.smoothPointer = mgl64.Vec2{
		Smooth(s.smoothPointer.X(), s.pointer.X(), s.params.PointerSmoothing),
		Smooth(s.smoothPointer.Y(), s.pointer.Y(), s.params.PointerSmoothing),
	}

	return Frame{
		Width:   s.width,
		Height:  s.height,
		Scroll:  s.scroll,
		Speed:   s.speed,
		Rise:    Rise(s.scroll, s.height*s.params.RiseRangeFactor, s.params.RiseOffset),
		Pointer: s.smoothPointer,
	}
}
