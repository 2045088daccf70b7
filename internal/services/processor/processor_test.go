package processor

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/phambaophuc/logo-compositor/internal/services/placement"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	white = color.NRGBA{255, 255, 255, 255}
	red   = color.NRGBA{255, 0, 0, 255}
)

func encodePNG(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestComposite_BottomRight(t *testing.T) {
	p := NewImageProcessor(0)
	base := imaging.New(100, 80, white)
	logo := imaging.New(20, 10, red)

	size := placement.Size{Width: 10, Height: 5}
	pt, ok := placement.Place(placement.SizeOf(base.Bounds()), size, placement.BottomRight, placement.Padding{X: 4, Y: 4})
	require.True(t, ok)

	out := p.Composite(base, logo, size, pt, 1)

	assert.Equal(t, base.Bounds(), out.Bounds())
	assert.Equal(t, red, out.NRGBAAt(86, 71))
	assert.Equal(t, red, out.NRGBAAt(95, 75))
	assert.Equal(t, white, out.NRGBAAt(96, 76))
	assert.Equal(t, white, out.NRGBAAt(85, 70))
	assert.Equal(t, white, base.NRGBAAt(90, 73), "base must not be modified")
}

func TestComposite_ClipsOutsideCanvas(t *testing.T) {
	p := NewImageProcessor(0)
	base := imaging.New(50, 50, white)
	logo := imaging.New(10, 10, red)

	out := p.Composite(base, logo, placement.Size{Width: 10, Height: 10}, placement.Point{X: -5, Y: -5}, 1)

	assert.Equal(t, base.Bounds(), out.Bounds())
	assert.Equal(t, red, out.NRGBAAt(0, 0))
	assert.Equal(t, red, out.NRGBAAt(4, 4))
	assert.Equal(t, white, out.NRGBAAt(5, 5))
}

func TestComposite_TinyOverlayKeepsOnePixel(t *testing.T) {
	p := NewImageProcessor(0)
	base := imaging.New(10, 10, white)
	logo := imaging.New(10, 10, red)

	out := p.Composite(base, logo, placement.Size{Width: 0.2, Height: 0.1}, placement.Point{}, 1)
	assert.Equal(t, red, out.NRGBAAt(0, 0))
	assert.Equal(t, white, out.NRGBAAt(1, 1))
}

func TestComposite_ZeroOpacityLeavesCanvas(t *testing.T) {
	p := NewImageProcessor(0)
	base := imaging.New(20, 20, white)
	logo := imaging.New(20, 20, red)

	out := p.Composite(base, logo, placement.Size{Width: 20, Height: 20}, placement.Point{}, 0)
	assert.Equal(t, white, out.NRGBAAt(10, 10))
}

func TestClampOpacity(t *testing.T) {
	assert.Equal(t, 1.0, clampOpacity(3))
	assert.Equal(t, 0.0, clampOpacity(-1))
	assert.Equal(t, 0.5, clampOpacity(0.5))
}

func encodeAs(t *testing.T, img image.Image, format imaging.Format) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, imaging.Encode(&buf, img, format))
	return buf.Bytes()
}

// withOrientation inserts an EXIF APP1 segment carrying the given
// orientation right after the JPEG SOI marker.
func withOrientation(jpegData []byte, orientation byte) []byte {
	app1 := []byte{
		0xFF, 0xE1, 0x00, 0x22, // APP1, length 34
		'E', 'x', 'i', 'f', 0x00, 0x00,
		'I', 'I', 0x2A, 0x00, 0x08, 0x00, 0x00, 0x00, // little-endian TIFF header, IFD at 8
		0x01, 0x00, // one entry
		0x12, 0x01, 0x03, 0x00, 0x01, 0x00, 0x00, 0x00, orientation, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, // no next IFD
	}
	out := append([]byte{}, jpegData[:2]...)
	out = append(out, app1...)
	return append(out, jpegData[2:]...)
}

func TestDecodeBase64(t *testing.T) {
	p := NewImageProcessor(1 << 20)
	data := encodePNG(t, imaging.New(7, 3, red))
	tiffData := encodeAs(t, imaging.New(7, 3, red), imaging.TIFF)
	bmpData := encodeAs(t, imaging.New(7, 3, red), imaging.BMP)
	jpegData := encodeAs(t, imaging.New(7, 3, red), imaging.JPEG)

	tests := []struct {
		name    string
		payload string
	}{
		{"std", base64.StdEncoding.EncodeToString(data)},
		{"raw", base64.RawStdEncoding.EncodeToString(data)},
		{"data uri", "data:image/png;base64," + base64.StdEncoding.EncodeToString(data)},
		{"wrapped", strings.Join(chunk(base64.StdEncoding.EncodeToString(data), 60), "\n")},
		{"tiff", base64.StdEncoding.EncodeToString(tiffData)},
		{"bmp", base64.StdEncoding.EncodeToString(bmpData)},
		{"jpeg", base64.StdEncoding.EncodeToString(jpegData)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img, err := p.DecodeBase64(tt.payload)
			require.NoError(t, err)
			assert.Equal(t, 7, img.Bounds().Dx())
			assert.Equal(t, 3, img.Bounds().Dy())
		})
	}
}

func TestDecode_IgnoresEXIFOrientation(t *testing.T) {
	p := NewImageProcessor(1 << 20)
	rotated := withOrientation(encodeAs(t, imaging.New(8, 4, red), imaging.JPEG), 6)

	img, err := p.Decode(rotated)
	require.NoError(t, err)
	assert.Equal(t, 8, img.Bounds().Dx())
	assert.Equal(t, 4, img.Bounds().Dy())
}

func TestDecode_ZeroMaxFileSizeMeansUnlimited(t *testing.T) {
	big := encodePNG(t, imaging.New(64, 64, red))

	img, err := NewImageProcessor(0).Decode(big)
	require.NoError(t, err)
	assert.Equal(t, 64, img.Bounds().Dx())
}

func TestDecodeBase64_Errors(t *testing.T) {
	p := NewImageProcessor(32)

	_, err := p.DecodeBase64("!!!not base64!!!")
	assert.ErrorContains(t, err, "invalid base64")

	_, err = p.DecodeBase64(base64.StdEncoding.EncodeToString([]byte("plain text payload")))
	assert.ErrorContains(t, err, "invalid image format")

	big := encodePNG(t, imaging.New(64, 64, red))
	_, err = p.DecodeBase64(base64.StdEncoding.EncodeToString(big))
	assert.ErrorContains(t, err, "exceeds maximum")

	_, err = p.DecodeBase64("")
	assert.ErrorContains(t, err, "empty image data")
}

func TestEncodeBase64PNG_RoundTripsPixels(t *testing.T) {
	p := NewImageProcessor(0)
	src := imaging.New(5, 5, red)

	buf, encoded, err := p.EncodeBase64PNG(src)
	require.NoError(t, err)
	assert.Equal(t, base64.StdEncoding.EncodeToString(buf.Bytes()), encoded)

	decoded, err := p.DecodeBase64(encoded)
	require.NoError(t, err)
	assert.Equal(t, src.Pix, imaging.Clone(decoded).Pix)
}

func chunk(s string, n int) []string {
	var out []string
	for len(s) > n {
		out = append(out, s[:n])
		s = s[n:]
	}
	return append(out, s)
}
