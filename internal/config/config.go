// Package config reads the objview settings file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"image/color"
	"io"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"time"

	"github.com/philipparndt/objview/pkg/viewer"
	"gopkg.in/yaml.v3"
)

// FileName is the settings file looked up in the user config directory
const FileName = "objview.yaml"

// Config holds every tunable of the viewer
type Config struct {
	Window Window `yaml:"window"`
	Camera Camera `yaml:"camera"`
	Style  Style  `yaml:"style"`
	Watch  Watch  `yaml:"watch"`
	Unfold Unfold `yaml:"unfold"`
}

type Window struct {
	Width     int  `yaml:"width"`
	Height    int  `yaml:"height"`
	TargetFPS int  `yaml:"target_fps"`
	MSAA      bool `yaml:"msaa"`
}

type Camera struct {
	DefaultZoom float64 `yaml:"default_zoom"`
	ZoomStep    float64 `yaml:"zoom_step"`
	// 0 keeps the host's own scroll scale
	ScrollUnitsPerNotch float64  `yaml:"scroll_units_per_notch"`
	ZoomMin             *float64 `yaml:"zoom_min,omitempty"`
	ZoomMax             *float64 `yaml:"zoom_max,omitempty"`

	FOV  float64 `yaml:"fov"`
	Near float64 `yaml:"near"`
	Far  float64 `yaml:"far"`
}

type Style struct {
	Background   Color   `yaml:"background"`
	Fill         Color   `yaml:"fill"`
	Outline      Color   `yaml:"outline"`
	OutlineWidth float32 `yaml:"outline_width"`
	AxisX        Color   `yaml:"axis_x"`
	AxisY        Color   `yaml:"axis_y"`
	AxisZ        Color   `yaml:"axis_z"`
	AxisLength   float64 `yaml:"axis_length"`
}

type Watch struct {
	Enabled  bool          `yaml:"enabled"`
	Debounce time.Duration `yaml:"debounce"`
}

// Unfold configures the external paper-model exporter
type Unfold struct {
	Blender string        `yaml:"blender"`
	Script  string        `yaml:"script"`
	Timeout time.Duration `yaml:"timeout"`

	// Rasterizer renders the first page for the preview pane
	Rasterizer string `yaml:"rasterizer"`
	PreviewDPI int    `yaml:"preview_dpi"`
}

// Default returns the built-in settings
func Default() Config {
	opts := viewer.DefaultOptions()
	style := opts.Style

	return Config{
		Window: Window{
			Width:     1024,
			Height:    768,
			TargetFPS: 60,
			MSAA:      true,
		},
		Camera: Camera{
			DefaultZoom: opts.DefaultZoom,
			ZoomStep:    opts.ZoomStep,
			FOV:         opts.FOV,
			Near:        opts.Near,
			Far:         opts.Far,
		},
		Style: Style{
			Background:   Color(style.Background),
			Fill:         Color(style.Fill),
			Outline:      Color(style.Outline),
			OutlineWidth: style.OutlineWidth,
			AxisX:        Color(style.Axes[0]),
			AxisY:        Color(style.Axes[1]),
			AxisZ:        Color(style.Axes[2]),
			AxisLength:   style.AxisLength,
		},
		Watch: Watch{
			Enabled:  true,
			Debounce: 500 * time.Millisecond,
		},
		Unfold: Unfold{
			Blender: "blender",
			Script:  "unfold.py",
			Timeout: 5 * time.Minute,

			Rasterizer: "pdftoppm",
			PreviewDPI: 150,
		},
	}
}

// DefaultPath returns objview.yaml in the user config directory
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return FileName
	}
	return filepath.Join(dir, "objview", FileName)
}

// Load reads the settings file on top of the defaults. A missing file
// yields the defaults; a malformed or invalid one is an error.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}

	if err := Decode(data, &cfg); err != nil {
		return Default(), fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Decode unmarshals YAML into cfg and validates the result. Unknown
// keys are rejected.
func Decode(data []byte, cfg *Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return cfg.Validate()
}

// Validate checks ranges the renderer relies on
func (c Config) Validate() error {
	var errs []error

	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height))
	}
	if c.Window.TargetFPS < 0 {
		errs = append(errs, fmt.Errorf("target_fps must not be negative"))
	}
	if c.Camera.ZoomStep == 0 {
		errs = append(errs, fmt.Errorf("zoom_step must not be zero"))
	}
	if c.Camera.ScrollUnitsPerNotch < 0 {
		errs = append(errs, fmt.Errorf("scroll_units_per_notch must not be negative"))
	}
	if c.Camera.ZoomMin != nil && c.Camera.ZoomMax != nil && *c.Camera.ZoomMin > *c.Camera.ZoomMax {
		errs = append(errs, fmt.Errorf("zoom_min %v is above zoom_max %v", *c.Camera.ZoomMin, *c.Camera.ZoomMax))
	}
	if c.Camera.ZoomMin != nil && c.Camera.DefaultZoom < *c.Camera.ZoomMin {
		errs = append(errs, fmt.Errorf("default_zoom %v is below zoom_min %v", c.Camera.DefaultZoom, *c.Camera.ZoomMin))
	}
	if c.Camera.ZoomMax != nil && c.Camera.DefaultZoom > *c.Camera.ZoomMax {
		errs = append(errs, fmt.Errorf("default_zoom %v is above zoom_max %v", c.Camera.DefaultZoom, *c.Camera.ZoomMax))
	}
	if c.Camera.FOV <= 0 || c.Camera.FOV >= 180 {
		errs = append(errs, fmt.Errorf("fov must be between 0 and 180 degrees, got %v", c.Camera.FOV))
	}
	if c.Camera.Near <= 0 || c.Camera.Far <= c.Camera.Near {
		errs = append(errs, fmt.Errorf("clip planes need 0 < near < far, got near %v far %v", c.Camera.Near, c.Camera.Far))
	}
	if c.Style.OutlineWidth <= 0 {
		errs = append(errs, fmt.Errorf("outline_width must be positive"))
	}
	if c.Watch.Debounce < 0 {
		errs = append(errs, fmt.Errorf("watch debounce must not be negative"))
	}
	if c.Unfold.Timeout <= 0 {
		errs = append(errs, fmt.Errorf("unfold timeout must be positive"))
	}
	if c.Unfold.PreviewDPI <= 0 {
		errs = append(errs, fmt.Errorf("preview_dpi must be positive, got %d", c.Unfold.PreviewDPI))
	}

	return errors.Join(errs...)
}

// ViewerOptions converts the camera and style sections for a session.
// hostUnitsPerNotch is used when the file leaves the scroll scale at 0.
func (c Config) ViewerOptions(hostUnitsPerNotch float64) viewer.Options {
	opts := viewer.Options{
		DefaultZoom:         c.Camera.DefaultZoom,
		ZoomStep:            c.Camera.ZoomStep,
		ScrollUnitsPerNotch: c.Camera.ScrollUnitsPerNotch,
		FOV:                 c.Camera.FOV,
		Near:                c.Camera.Near,
		Far:                 c.Camera.Far,
		Style: viewer.Style{
			Background:   c.Style.Background.ToRGBA(),
			Fill:         c.Style.Fill.ToRGBA(),
			Outline:      c.Style.Outline.ToRGBA(),
			OutlineWidth: c.Style.OutlineWidth,
			Axes: [3]color.RGBA{
				c.Style.AxisX.ToRGBA(),
				c.Style.AxisY.ToRGBA(),
				c.Style.AxisZ.ToRGBA(),
			},
			AxisLength: c.Style.AxisLength,
		},
	}
	if opts.ScrollUnitsPerNotch == 0 {
		opts.ScrollUnitsPerNotch = hostUnitsPerNotch
	}

	if c.Camera.ZoomMin != nil || c.Camera.ZoomMax != nil {
		limits := &viewer.ZoomLimits{Min: math.Inf(-1), Max: math.Inf(1)}
		if c.Camera.ZoomMin != nil {
			limits.Min = *c.Camera.ZoomMin
		}
		if c.Camera.ZoomMax != nil {
			limits.Max = *c.Camera.ZoomMax
		}
		opts.ZoomLimits = limits
	}
	return opts
}
