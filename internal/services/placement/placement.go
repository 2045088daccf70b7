// Package placement computes where an overlay is drawn on a canvas.
//
// All functions are pure. Coordinates are returned as floats and may fall
// outside the canvas; clipping is left to whoever draws the overlay.
package placement

import (
	"image"
	"math"
)

const (
	DefaultPadding         = 40
	DefaultLogoSizePercent = 10
	DefaultMinPadding      = 25
)

type Size struct {
	Width  float64
	Height float64
}

func SizeOf(r image.Rectangle) Size {
	return Size{Width: float64(r.Dx()), Height: float64(r.Dy())}
}

// Padding is the inward distance from the anchored edges, per axis.
type Padding struct {
	X float64
	Y float64
}

// Point is the top-left corner of the overlay on the canvas.
type Point struct {
	X float64
	Y float64
}

// Round returns the nearest pixel.
func (p Point) Round() image.Point {
	return image.Pt(int(math.Round(p.X)), int(math.Round(p.Y)))
}

// Defaults holds the values applied when a request leaves a field out.
type Defaults struct {
	Anchor            Anchor
	Padding           float64
	LogoSizePercent   float64
	MinPadding        float64
	EnforceMinPadding bool
}

func DefaultDefaults() Defaults {
	return Defaults{
		Anchor:          BottomRight,
		Padding:         DefaultPadding,
		LogoSizePercent: DefaultLogoSizePercent,
		MinPadding:      DefaultMinPadding,
	}
}

type Calculator struct {
	defaults Defaults
}

func NewCalculator(defaults Defaults) *Calculator {
	if defaults.LogoSizePercent <= 0 {
		defaults.LogoSizePercent = DefaultLogoSizePercent
	}
	if defaults.Anchor == None {
		defaults.Anchor = BottomRight
	}
	return &Calculator{defaults: defaults}
}

func (c *Calculator) Defaults() Defaults {
	return c.defaults
}

// Anchor parses position, falling back to the default anchor.
func (c *Calculator) Anchor(position string) Anchor {
	return ParseAnchor(position, c.defaults.Anchor)
}

// OverlaySize scales the overlay to logoSizePercent of the canvas width while
// keeping the native aspect ratio. A non-positive percent uses the default.
func (c *Calculator) OverlaySize(canvas, native Size, logoSizePercent float64) Size {
	if logoSizePercent <= 0 || math.IsNaN(logoSizePercent) || math.IsInf(logoSizePercent, 0) {
		logoSizePercent = c.defaults.LogoSizePercent
	}
	if native.Width <= 0 || native.Height <= 0 {
		return Size{}
	}

	width := canvas.Width * (logoSizePercent / 100)
	return Size{
		Width:  width,
		Height: native.Height / native.Width * width,
	}
}

// ResolvePadding picks the per-axis value, then the unified one, then the
// default. The minimum floor only applies when enabled.
func (c *Calculator) ResolvePadding(padding, paddingX, paddingY *float64) Padding {
	base := c.defaults.Padding
	if padding != nil {
		base = *padding
	}

	p := Padding{X: base, Y: base}
	if paddingX != nil {
		p.X = *paddingX
	}
	if paddingY != nil {
		p.Y = *paddingY
	}

	if c.defaults.EnforceMinPadding {
		p.X = math.Max(p.X, c.defaults.MinPadding)
		p.Y = math.Max(p.Y, c.defaults.MinPadding)
	}
	return p
}

// Place returns the overlay's top-left corner. ok is false for None, meaning
// nothing should be drawn.
func (c *Calculator) Place(canvas, overlay Size, anchor Anchor, padding Padding) (Point, bool) {
	return Place(canvas, overlay, anchor, padding)
}

// Place is the stateless form of Calculator.Place.
func Place(canvas, overlay Size, anchor Anchor, padding Padding) (Point, bool) {
	if anchor == None {
		return Point{}, false
	}

	v, h := anchor.axes()

	var pt Point
	switch h {
	case hLeft:
		pt.X = padding.X
	case hRight:
		pt.X = canvas.Width - overlay.Width - padding.X
	default:
		pt.X = (canvas.Width - overlay.Width) / 2
	}

	switch v {
	case vTop:
		pt.Y = padding.Y
	case vBottom:
		pt.Y = canvas.Height - overlay.Height - padding.Y
	default:
		pt.Y = (canvas.Height - overlay.Height) / 2
	}

	return pt, true
}
