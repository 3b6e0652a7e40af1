package engine

import (
	"fmt"
	"runtime"

	"Seascape/internal/config"
	"Seascape/internal/logger"
	"Seascape/internal/motion"
	"Seascape/internal/renderer"

	"github.com/go-gl/glfw/v3.3/glfw"
	"go.uber.org/zap"
)

// Ocean owns the window, the input state and the render loop. The loop has
// two states, running and paused: iconifying the window cancels frame work
// entirely, restoring it resets the scroll baseline and resumes.
type Ocean struct {
	Width  int32
	Height int32

	cfg    *config.Config
	rend   renderer.Render
	state  *motion.State
	window *glfw.Window

	paused    bool
	startTime float64

	// Last joystick reading, to only take tilt when a new event arrives.
	lastTilt    [2]float32
	hasTiltRead bool
}

func NewOcean(cfg *config.Config) *Ocean {
	logger.Init()
	logger.Log.Info("Seascape initializing...")

	return &Ocean{
		Width:  int32(cfg.Window.Width),
		Height: int32(cfg.Window.Height),
		cfg:    cfg,
		rend:   renderer.NewOceanRenderer(cfg.Layers, cfg.Pointer.Amplitude),
		state: motion.NewState(motion.Params{
			Sensitivity:      cfg.Ocean.Sensitivity,
			SpeedSmoothing:   cfg.Ocean.SpeedSmoothing,
			PointerSmoothing: cfg.Pointer.Smoothing,
			TiltDivisor:      cfg.Pointer.TiltDivisor,
			RiseOffset:       cfg.Ocean.RiseOffset,
			RiseRangeFactor:  cfg.Ocean.RiseRangeFactor,
			PageFactor:       cfg.Scroll.PageFactor,
		}),
	}
}

// Run opens the window and drives the render loop until the window closes.
func (ocean *Ocean) Run() error {
	runtime.LockOSThread()

	if err := glfw.Init(); err != nil {
		logger.Log.Error("Could not initialize glfw", zap.Error(err))
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.Decorated, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.True)
	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(int(ocean.Width), int(ocean.Height), ocean.cfg.Window.Title, nil, nil)
	if err != nil {
		logger.Log.Error("Could not create glfw window", zap.Error(err))
		return fmt.Errorf("create window: %w", err)
	}
	ocean.window = window

	window.MakeContextCurrent()
	glfw.SwapInterval(1)
	SetDarkTitleBar(window)

	// The framebuffer can differ from the requested size (HiDPI).
	fbWidth, fbHeight := window.GetFramebufferSize()
	ocean.Width, ocean.Height = int32(fbWidth), int32(fbHeight)

	ocean.rend.Init(ocean.Width, ocean.Height)
	ocean.state.SetViewport(float64(ocean.Width), float64(ocean.Height))

	ocean.installCallbacks()

	ocean.startTime = glfw.GetTime()
	ocean.renderLoop()
	ocean.rend.Cleanup()
	return nil
}

// installCallbacks wires every input source. Callbacks only write into the
// motion state through its setters; all derived computation happens in the
// loop's own frame step.
func (ocean *Ocean) installCallbacks() {
	ocean.window.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		ocean.Width, ocean.Height = int32(width), int32(height)
		ocean.rend.UpdateViewport(ocean.Width, ocean.Height)
		ocean.state.SetViewport(float64(width), float64(height))
	})

	ocean.window.SetScrollCallback(func(_ *glfw.Window, _, yoff float64) {
		// Wheel down scrolls the virtual page down, like a browser.
		ocean.state.AddScroll(-yoff * ocean.cfg.Scroll.Step)
	})

	ocean.window.SetCursorPosCallback(func(_ *glfw.Window, xpos, ypos float64) {
		ocean.state.SetPointer(xpos, ypos)
	})

	ocean.window.SetIconifyCallback(func(_ *glfw.Window, iconified bool) {
		ocean.setVisible(!iconified)
	})
}

// setVisible drives the running/paused state machine. Going visible again
// resets the scroll baseline so the first delta after the pause is 0 and no
// false speed spike leaks into the smoothing.
func (ocean *Ocean) setVisible(visible bool) {
	if visible == !ocean.paused {
		return
	}
	ocean.paused = !visible
	if visible {
		ocean.state.ResetBaseline()
		logger.Log.Info("Window restored, resuming frames")
	} else {
		logger.Log.Info("Window hidden, pausing frames")
	}
}

func (ocean *Ocean) renderLoop() {
	for !ocean.window.ShouldClose() {
		if ocean.paused {
			// No frame is scheduled while hidden; block until an event
			// (restore, close) arrives.
			glfw.WaitEvents()
			continue
		}

		ocean.pollTilt()
		ocean.frame(glfw.GetTime() - ocean.startTime)

		ocean.window.SwapBuffers()
		glfw.PollEvents()
	}
}

// frame is one scheduled tick: snapshot and advance the motion state, then
// hand the snapshot to the renderer. Kept free of any scheduling or window
// calls so the loop's behavior is testable with a stub renderer.
func (ocean *Ocean) frame(elapsed float64) {
	if ocean.paused {
		return
	}
	frame := ocean.state.Step()
	ocean.rend.Draw(elapsed, frame)
}

// pollTilt is the device-orientation fallback: when a joystick is present
// its first two axes are read as gamma/beta tilt. The reading is only taken
// when it changes, and an absent joystick leaves the last pointer value
// untouched.
func (ocean *Ocean) pollTilt() {
	joy := glfw.Joystick1
	if !joy.Present() {
		return
	}
	axes := joy.GetAxes()
	if len(axes) < 2 {
		return
	}
	current := [2]float32{axes[0], axes[1]}
	if ocean.hasTiltRead && current == ocean.lastTilt {
		return
	}
	ocean.lastTilt = current
	ocean.hasTiltRead = true
	divisor := ocean.cfg.Pointer.TiltDivisor
	ocean.state.SetTilt(float64(current[0])*divisor, float64(current[1])*divisor)
}
