package processor

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"io"

	"github.com/disintegration/imaging"
)

func (p *ImageProcessor) EncodePNG(w io.Writer, img image.Image) error {
	return imaging.Encode(w, img, imaging.PNG)
}

// EncodeBase64PNG returns the PNG bytes of img and their base64 form.
func (p *ImageProcessor) EncodeBase64PNG(img image.Image) (*bytes.Buffer, string, error) {
	buffer := &bytes.Buffer{}
	if err := p.EncodePNG(buffer, img); err != nil {
		return nil, "", fmt.Errorf("failed to encode image: %w", err)
	}
	return buffer, base64.StdEncoding.EncodeToString(buffer.Bytes()), nil
}
