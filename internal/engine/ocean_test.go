package engine

import (
	"testing"

	"Seascape/internal/config"
	"Seascape/internal/motion"
)

// recordingRender stands in for the GL renderer so the loop's frame logic
// can be exercised without a window.
type recordingRender struct {
	inited bool
	draws  int
	last   motion.Frame
}

func (r *recordingRender) Init(width, height int32) { r.inited = true }

func (r *recordingRender) Draw(elapsed float64, frame motion.Frame) {
	r.draws++
	r.last = frame
}

func (r *recordingRender) UpdateViewport(width, height int32) {}
func (r *recordingRender) Available() bool                    { return r.inited }
func (r *recordingRender) Cleanup()                           {}

func newTestOcean(t *testing.T) (*Ocean, *recordingRender) {
	t.Helper()
	cfg, _, err := config.Load("")
	if err != nil {
		t.Fatalf("loading default config: %v", err)
	}
	ocean := NewOcean(cfg)
	rend := &recordingRender{}
	ocean.rend = rend
	ocean.state.SetViewport(1280, 1000)
	return ocean, rend
}

func TestFrameDrawsWhileRunning(t *testing.T) {
	ocean, rend := newTestOcean(t)

	ocean.frame(0.016)
	if rend.draws != 1 {
		t.Fatalf("expected one draw, got %d", rend.draws)
	}
	if rend.last.Width != 1280 || rend.last.Height != 1000 {
		t.Errorf("frame should carry the viewport, got %vx%v", rend.last.Width, rend.last.Height)
	}
}

func TestHiddenWindowStopsDraws(t *testing.T) {
	ocean, rend := newTestOcean(t)

	ocean.frame(0.016)
	ocean.setVisible(false)
	ocean.frame(0.032)
	ocean.frame(0.048)

	if rend.draws != 1 {
		t.Errorf("no draw may happen while hidden, got %d draws", rend.draws)
	}
}

func TestRestoreResetsVelocityBaseline(t *testing.T) {
	ocean, rend := newTestOcean(t)

	ocean.setVisible(false)
	// Scroll input keeps arriving while the window is hidden.
	ocean.state.AddScroll(800)
	ocean.setVisible(true)

	ocean.frame(1.0)
	if rend.last.Speed != 0 {
		t.Errorf("the first raw delta after a restore must be 0, got speed %v", rend.last.Speed)
	}
}

func TestSetVisibleIsIdempotent(t *testing.T) {
	ocean, _ := newTestOcean(t)

	ocean.setVisible(true)
	if ocean.paused {
		t.Error("visible on an already-running loop should be a no-op")
	}

	ocean.setVisible(false)
	ocean.setVisible(false)
	if !ocean.paused {
		t.Error("hidden twice should stay paused")
	}

	ocean.setVisible(true)
	if ocean.paused {
		t.Error("restore should resume the loop")
	}
}

func TestScrollWhileHiddenStillClamped(t *testing.T) {
	ocean, rend := newTestOcean(t)

	ocean.setVisible(false)
	ocean.state.AddScroll(1e9)
	ocean.setVisible(true)
	ocean.frame(1.0)

	max := 1000.0 * ocean.cfg.Scroll.PageFactor
	if rend.last.Scroll != max {
		t.Errorf("scroll should clamp to %v, got %v", max, rend.last.Scroll)
	}
}
