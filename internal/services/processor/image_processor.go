package processor

import (
	"image"
	"math"

	"github.com/disintegration/imaging"
	"github.com/phambaophuc/logo-compositor/internal/services/placement"
)

const (
	DefaultOpacity = 1.0
	minOverlaySide = 1
)

type ImageProcessor struct {
	maxFileSize int64
}

func NewImageProcessor(maxFileSize int64) *ImageProcessor {
	return &ImageProcessor{maxFileSize: maxFileSize}
}

// Composite draws logo onto a copy of base, scaled to size, with its top-left
// corner at pt. The overlay is clipped at the canvas edge. base is not
// modified.
func (p *ImageProcessor) Composite(base, logo image.Image, size placement.Size, pt placement.Point, opacity float64) *image.NRGBA {
	canvas := imaging.Clone(base)

	width := max(minOverlaySide, int(math.Round(size.Width)))
	height := max(minOverlaySide, int(math.Round(size.Height)))
	scaled := imaging.Resize(logo, width, height, imaging.Lanczos)

	return imaging.Overlay(canvas, scaled, pt.Round(), clampOpacity(opacity))
}

func clampOpacity(opacity float64) float64 {
	if math.IsNaN(opacity) {
		return DefaultOpacity
	}
	return min(1.0, max(0.0, opacity))
}
