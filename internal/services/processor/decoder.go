package processor

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/phambaophuc/logo-compositor/pkg/utils"

	// Extra input formats beyond the stdlib decoders imaging registers.
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// DecodeBase64 decodes an inline image payload. A data URI prefix is
// accepted, as is unpadded base64.
func (p *ImageProcessor) DecodeBase64(payload string) (image.Image, error) {
	data, err := decodeBase64(utils.StripDataURI(payload))
	if err != nil {
		return nil, fmt.Errorf("invalid base64 image data: %w", err)
	}
	return p.Decode(data)
}

// Decode validates and decodes raw image bytes. EXIF orientation is not
// applied, so pixels come back as stored.
func (p *ImageProcessor) Decode(data []byte) (image.Image, error) {
	if err := p.ValidateImageData(data); err != nil {
		return nil, err
	}

	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}
	return img, nil
}

func decodeBase64(s string) ([]byte, error) {
	s = strings.Map(func(r rune) rune {
		switch r {
		case '\n', '\r', ' ', '\t':
			return -1
		}
		return r
	}, s)

	if strings.HasSuffix(s, "=") || len(s)%4 == 0 {
		return base64.StdEncoding.DecodeString(s)
	}
	return base64.RawStdEncoding.DecodeString(s)
}
