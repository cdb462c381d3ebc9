package viewer

import (
	"github.com/go-gl/mathgl/mgl64"
)

// ZoomLimits bounds the camera distance. A nil *ZoomLimits leaves zoom
// unbounded.
type ZoomLimits struct {
	Min float64
	Max float64
}

// Navigation is the orbit camera state: yaw and pitch in degrees and a
// signed distance along the view axis. It is only mutated by input
// handlers.
type Navigation struct {
	Yaw   float64
	Pitch float64
	Zoom  float64

	ZoomStep      float64 // zoom change per wheel notch
	UnitsPerNotch float64 // raw scroll units that make one notch
	Limits        *ZoomLimits

	defaultZoom float64
	dragging    bool
	lastX       float64
	lastY       float64
}

// NewNavigation creates the navigation state for the given options
func NewNavigation(opts Options) *Navigation {
	return &Navigation{
		Zoom:          opts.DefaultZoom,
		ZoomStep:      opts.ZoomStep,
		UnitsPerNotch: opts.ScrollUnitsPerNotch,
		Limits:        opts.ZoomLimits,
		defaultZoom:   opts.DefaultZoom,
	}
}

// Press anchors a drag gesture at the pointer position
func (n *Navigation) Press(x, y float64) {
	n.dragging = true
	n.lastX = x
	n.lastY = y
}

// Move rotates by the pointer delta since the last event while a drag
// is active. Deltas are raw pixels added as degrees, so rotation speed
// follows screen resolution. Reports whether a redraw is needed.
func (n *Navigation) Move(x, y float64) bool {
	if !n.dragging {
		return false
	}
	dx := x - n.lastX
	dy := y - n.lastY
	n.lastX = x
	n.lastY = y
	if dx == 0 && dy == 0 {
		return false
	}
	n.Pitch += dy
	n.Yaw += dx
	return true
}

// Release ends the drag gesture
func (n *Navigation) Release() {
	n.dragging = false
}

// Dragging reports whether a drag gesture is in progress
func (n *Navigation) Dragging() bool {
	return n.dragging
}

// Scroll moves the camera by delta/UnitsPerNotch notches
func (n *Navigation) Scroll(delta float64) bool {
	if delta == 0 {
		return false
	}
	units := n.UnitsPerNotch
	if units <= 0 {
		units = 1
	}
	n.Zoom += delta / units * n.ZoomStep
	if n.Limits != nil {
		n.Zoom = mgl64.Clamp(n.Zoom, n.Limits.Min, n.Limits.Max)
	}
	return true
}

// Reset restores the initial orbit angles and zoom
func (n *Navigation) Reset() {
	n.Yaw = 0
	n.Pitch = 0
	n.Zoom = n.defaultZoom
	n.dragging = false
}

// ViewMatrix is translate(0,0,zoom) * rotX(pitch) * rotY(yaw), so yaw
// spins the model about its own vertical axis before pitch tilts it.
func (n *Navigation) ViewMatrix() mgl64.Mat4 {
	return mgl64.Translate3D(0, 0, n.Zoom).
		Mul4(mgl64.HomogRotate3DX(mgl64.DegToRad(n.Pitch))).
		Mul4(mgl64.HomogRotate3DY(mgl64.DegToRad(n.Yaw)))
}

// Projection is a perspective projection for a viewport
type Projection struct {
	FOV    float64 // vertical field of view in degrees
	Near   float64
	Far    float64
	Width  int
	Height int
}

// NewProjection creates a projection from the options with an empty viewport
func NewProjection(opts Options) Projection {
	return Projection{FOV: opts.FOV, Near: opts.Near, Far: opts.Far}
}

// Resize updates the viewport size
func (p *Projection) Resize(width, height int) {
	p.Width = width
	p.Height = height
}

// Aspect returns width/height, or 1 for a viewport without area
func (p Projection) Aspect() float64 {
	if p.Height <= 0 || p.Width <= 0 {
		return 1
	}
	return float64(p.Width) / float64(p.Height)
}

// Matrix returns the perspective matrix for the current viewport
func (p Projection) Matrix() mgl64.Mat4 {
	return mgl64.Perspective(mgl64.DegToRad(p.FOV), p.Aspect(), p.Near, p.Far)
}
