package viewer

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestScrollZoom(t *testing.T) {
	nav := NewNavigation(DefaultOptions())
	if nav.Zoom != -3.0 {
		t.Fatalf("expected initial zoom -3, got %v", nav.Zoom)
	}

	if !nav.Scroll(1) {
		t.Error("Scroll should request a redraw")
	}
	if math.Abs(nav.Zoom-(-2.8)) > 1e-9 {
		t.Errorf("Scroll failed: expected -2.8, got %v", nav.Zoom)
	}

	nav.Scroll(-3)
	if math.Abs(nav.Zoom-(-3.4)) > 1e-9 {
		t.Errorf("Scroll failed: expected -3.4, got %v", nav.Zoom)
	}
}

func TestScrollUnitsPerNotch(t *testing.T) {
	opts := DefaultOptions()
	opts.ScrollUnitsPerNotch = 120
	nav := NewNavigation(opts)

	nav.Scroll(240)
	if math.Abs(nav.Zoom-(-2.6)) > 1e-9 {
		t.Errorf("expected two notches to give -2.6, got %v", nav.Zoom)
	}

	nav.UnitsPerNotch = 0
	nav.Scroll(1)
	if math.Abs(nav.Zoom-(-2.4)) > 1e-9 {
		t.Errorf("zero units per notch should count as 1, got %v", nav.Zoom)
	}
}

func TestScrollUnbounded(t *testing.T) {
	nav := NewNavigation(DefaultOptions())
	for i := 0; i < 100; i++ {
		nav.Scroll(1)
	}
	if math.Abs(nav.Zoom-17.0) > 1e-9 {
		t.Errorf("expected unbounded zoom to reach 17, got %v", nav.Zoom)
	}
}

func TestScrollZoomLimits(t *testing.T) {
	opts := DefaultOptions()
	opts.ZoomLimits = &ZoomLimits{Min: -10, Max: -1}
	nav := NewNavigation(opts)

	for i := 0; i < 50; i++ {
		nav.Scroll(1)
	}
	if nav.Zoom != -1 {
		t.Errorf("expected zoom clamped to -1, got %v", nav.Zoom)
	}

	for i := 0; i < 100; i++ {
		nav.Scroll(-1)
	}
	if nav.Zoom != -10 {
		t.Errorf("expected zoom clamped to -10, got %v", nav.Zoom)
	}
}

func TestDragRotates(t *testing.T) {
	nav := NewNavigation(DefaultOptions())

	nav.Press(100, 100)
	if nav.Yaw != 0 || nav.Pitch != 0 {
		t.Fatalf("Press must not rotate, got yaw %v pitch %v", nav.Yaw, nav.Pitch)
	}

	if !nav.Move(110, 95) {
		t.Error("Move while dragging should request a redraw")
	}
	if nav.Yaw != 10 || nav.Pitch != -5 {
		t.Errorf("expected yaw 10 pitch -5, got yaw %v pitch %v", nav.Yaw, nav.Pitch)
	}

	nav.Move(112, 105)
	if nav.Yaw != 12 || nav.Pitch != 5 {
		t.Errorf("deltas should be taken from the last position, got yaw %v pitch %v", nav.Yaw, nav.Pitch)
	}
}

func TestMoveWithoutDrag(t *testing.T) {
	nav := NewNavigation(DefaultOptions())

	if nav.Move(50, 50) {
		t.Error("Move without press should not request a redraw")
	}

	nav.Press(0, 0)
	nav.Release()
	if nav.Move(30, 40) {
		t.Error("Move after release should not request a redraw")
	}
	if nav.Yaw != 0 || nav.Pitch != 0 {
		t.Errorf("expected no rotation, got yaw %v pitch %v", nav.Yaw, nav.Pitch)
	}

	nav.Press(30, 40)
	nav.Move(31, 40)
	if nav.Yaw != 1 {
		t.Errorf("a new drag must anchor at its own press, got yaw %v", nav.Yaw)
	}
}

func TestAnglesAreNotWrapped(t *testing.T) {
	nav := NewNavigation(DefaultOptions())
	nav.Press(0, 0)
	nav.Move(500, 0)
	nav.Move(900, 0)
	if nav.Yaw != 900 {
		t.Errorf("expected accumulated yaw 900, got %v", nav.Yaw)
	}
}

func TestReset(t *testing.T) {
	nav := NewNavigation(DefaultOptions())
	nav.Press(0, 0)
	nav.Move(10, 10)
	nav.Scroll(4)

	nav.Reset()
	if nav.Yaw != 0 || nav.Pitch != 0 || nav.Zoom != -3 || nav.Dragging() {
		t.Errorf("Reset failed: got %+v", nav)
	}
}

func TestViewMatrixOrder(t *testing.T) {
	nav := NewNavigation(DefaultOptions())
	nav.Yaw = 90
	nav.Pitch = 90

	// yaw first: +X -> -Z, then pitch: -Z -> +Y, then translate by zoom
	got := nav.ViewMatrix().Mul4x1(mgl64.Vec4{1, 0, 0, 1}).Vec3()
	expected := mgl64.Vec3{0, 1, -3}
	if !got.ApproxEqualThreshold(expected, 1e-9) {
		t.Errorf("expected %v, got %v", expected, got)
	}
}

func TestProjectionAspect(t *testing.T) {
	proj := NewProjection(DefaultOptions())

	proj.Resize(800, 400)
	if proj.Aspect() != 2 {
		t.Errorf("expected aspect 2, got %v", proj.Aspect())
	}

	proj.Resize(640, 0)
	if proj.Aspect() != 1 {
		t.Errorf("zero height should give aspect 1, got %v", proj.Aspect())
	}

	for i, v := range proj.Matrix() {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Errorf("projection entry %d is not finite: %v", i, v)
		}
	}
}

func TestProjectionMatchesPerspective(t *testing.T) {
	proj := NewProjection(DefaultOptions())
	proj.Resize(1000, 500)

	expected := mgl64.Perspective(mgl64.DegToRad(45), 2, 0.1, 100)
	if !proj.Matrix().ApproxEqualThreshold(expected, 1e-12) {
		t.Errorf("expected %v, got %v", expected, proj.Matrix())
	}
}
