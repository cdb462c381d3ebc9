package viewer

import "image/color"

// Options holds the camera and style parameters of a viewer session
type Options struct {
	DefaultZoom         float64
	ZoomStep            float64
	ScrollUnitsPerNotch float64
	ZoomLimits          *ZoomLimits

	FOV  float64
	Near float64
	Far  float64

	Style Style
}

// DefaultOptions returns the reference camera: 3 units back from a
// normalized model, 0.2 units per wheel notch, 45 degree field of view.
func DefaultOptions() Options {
	return Options{
		DefaultZoom:         -3.0,
		ZoomStep:            0.2,
		ScrollUnitsPerNotch: 1,
		FOV:                 45,
		Near:                0.1,
		Far:                 100,
		Style:               DefaultStyle(),
	}
}

// Style holds the colors of the shaded+outlined look
type Style struct {
	Background   color.RGBA
	Fill         color.RGBA
	Outline      color.RGBA
	OutlineWidth float32
	Axes         [3]color.RGBA
	AxisLength   float64
}

// DefaultStyle is light gray faces with 2 unit black edges on a dark
// background, and red/green/blue axes.
func DefaultStyle() Style {
	return Style{
		Background:   color.RGBA{R: 26, G: 26, B: 26, A: 255},
		Fill:         color.RGBA{R: 204, G: 204, B: 204, A: 255},
		Outline:      color.RGBA{A: 255},
		OutlineWidth: 2,
		Axes: [3]color.RGBA{
			{R: 255, A: 255},
			{G: 255, A: 255},
			{B: 255, A: 255},
		},
		AxisLength: 1,
	}
}
