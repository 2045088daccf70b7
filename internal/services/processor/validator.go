package processor

import (
	"fmt"

	"github.com/phambaophuc/logo-compositor/pkg/utils"
)

// ValidateImageData checks size limits and sniffs the content type.
func (p *ImageProcessor) ValidateImageData(data []byte) error {
	if len(data) == 0 {
		return fmt.Errorf("empty image data")
	}

	if p.maxFileSize > 0 && int64(len(data)) > p.maxFileSize {
		return fmt.Errorf("image size %d exceeds maximum allowed size %d", len(data), p.maxFileSize)
	}

	if contentType := utils.DetectContentType(data); !utils.IsValidImageType(contentType) {
		return fmt.Errorf("invalid image format: %s", contentType)
	}

	return nil
}
