package placement

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	canvas  = Size{Width: 1000, Height: 800}
	overlay = Size{Width: 100, Height: 80}
)

func even(v float64) Padding { return Padding{X: v, Y: v} }

func TestPlace_Corners(t *testing.T) {
	tests := []struct {
		anchor Anchor
		want   Point
	}{
		{TopLeft, Point{20, 20}},
		{TopRight, Point{880, 20}},
		{BottomLeft, Point{20, 700}},
		{BottomRight, Point{880, 700}},
		{TopCenter, Point{450, 20}},
		{BottomCenter, Point{450, 700}},
		{MiddleLeft, Point{20, 360}},
		{MiddleRight, Point{880, 360}},
		{Center, Point{450, 360}},
	}

	for _, tt := range tests {
		t.Run(tt.anchor.String(), func(t *testing.T) {
			got, ok := Place(canvas, overlay, tt.anchor, even(20))
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPlace_CenterIgnoresPadding(t *testing.T) {
	for _, pad := range []float64{0, 20, -35, 1e6} {
		got, ok := Place(canvas, overlay, Center, even(pad))
		require.True(t, ok)
		assert.Equal(t, Point{450, 360}, got)
	}
}

func TestPlace_None(t *testing.T) {
	got, ok := Place(canvas, overlay, None, even(20))
	assert.False(t, ok)
	assert.Equal(t, Point{}, got)
}

func TestPlace_NegativePaddingNotClamped(t *testing.T) {
	got, _ := Place(canvas, overlay, TopLeft, even(-10))
	assert.Equal(t, Point{-10, -10}, got)

	got, _ = Place(canvas, overlay, BottomRight, even(-10))
	assert.Equal(t, Point{910, 730}, got)
}

func TestPlace_OverlayLargerThanCanvas(t *testing.T) {
	got, _ := Place(Size{100, 100}, Size{300, 200}, Center, even(0))
	assert.Equal(t, Point{-100, -50}, got)
}

func TestPlace_PerAxisPadding(t *testing.T) {
	got, _ := Place(canvas, overlay, BottomRight, Padding{X: 10, Y: 30})
	assert.Equal(t, Point{890, 690}, got)
}

func TestPlace_Idempotent(t *testing.T) {
	calc := NewCalculator(DefaultDefaults())
	a, okA := calc.Place(canvas, overlay, calc.Anchor("top-right"), even(15))
	b, okB := calc.Place(canvas, overlay, calc.Anchor("top-right"), even(15))
	assert.Equal(t, okA, okB)
	assert.Equal(t, a, b)
}

func TestCalculator_UnrecognizedPositionUsesDefault(t *testing.T) {
	calc := NewCalculator(DefaultDefaults())
	got, ok := calc.Place(canvas, overlay, calc.Anchor("nowhere"), even(20))
	require.True(t, ok)
	assert.Equal(t, Point{880, 700}, got)
}

func TestNewCalculator_NormalizesDefaults(t *testing.T) {
	calc := NewCalculator(Defaults{Anchor: None, LogoSizePercent: -5})
	assert.Equal(t, BottomRight, calc.Defaults().Anchor)
	assert.Equal(t, float64(DefaultLogoSizePercent), calc.Defaults().LogoSizePercent)
}

func TestOverlaySize(t *testing.T) {
	calc := NewCalculator(DefaultDefaults())

	got := calc.OverlaySize(canvas, Size{Width: 400, Height: 200}, 10)
	assert.Equal(t, Size{Width: 100, Height: 50}, got)

	got = calc.OverlaySize(canvas, Size{Width: 400, Height: 200}, 25)
	assert.Equal(t, Size{Width: 250, Height: 125}, got)
}

func TestOverlaySize_InvalidPercentUsesDefault(t *testing.T) {
	calc := NewCalculator(DefaultDefaults())
	for _, pct := range []float64{0, -20} {
		got := calc.OverlaySize(canvas, Size{Width: 50, Height: 50}, pct)
		assert.Equal(t, Size{Width: 100, Height: 100}, got)
	}
}

func TestOverlaySize_ZeroNative(t *testing.T) {
	calc := NewCalculator(DefaultDefaults())
	assert.Equal(t, Size{}, calc.OverlaySize(canvas, Size{}, 10))
}

func TestResolvePadding(t *testing.T) {
	calc := NewCalculator(DefaultDefaults())
	f := func(v float64) *float64 { return &v }

	assert.Equal(t, even(DefaultPadding), calc.ResolvePadding(nil, nil, nil))
	assert.Equal(t, even(12), calc.ResolvePadding(f(12), nil, nil))
	assert.Equal(t, Padding{X: 5, Y: 12}, calc.ResolvePadding(f(12), f(5), nil))
	assert.Equal(t, Padding{X: 40, Y: 0}, calc.ResolvePadding(nil, nil, f(0)))
	assert.Equal(t, even(-10), calc.ResolvePadding(f(-10), nil, nil))
}

func TestResolvePadding_MinimumFloor(t *testing.T) {
	d := DefaultDefaults()
	d.EnforceMinPadding = true
	calc := NewCalculator(d)
	f := func(v float64) *float64 { return &v }

	assert.Equal(t, even(DefaultMinPadding), calc.ResolvePadding(f(-10), nil, nil))
	assert.Equal(t, Padding{X: 30, Y: 25}, calc.ResolvePadding(nil, f(30), f(3)))
}

func TestPointRound(t *testing.T) {
	assert.Equal(t, image.Pt(880, 701), Point{879.6, 700.5}.Round())
	assert.Equal(t, image.Pt(-10, -11), Point{-10.2, -10.5}.Round())
}

func TestSizeOf(t *testing.T) {
	assert.Equal(t, Size{Width: 30, Height: 20}, SizeOf(image.Rect(10, 10, 40, 30)))
}
