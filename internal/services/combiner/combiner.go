// Package combiner turns a combine request into a composited PNG.
package combiner

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"image"
	"time"

	"github.com/google/uuid"
	"github.com/phambaophuc/logo-compositor/internal/models"
	"github.com/phambaophuc/logo-compositor/internal/services/placement"
	"github.com/phambaophuc/logo-compositor/internal/services/processor"
	"github.com/phambaophuc/logo-compositor/internal/services/storage"
	"github.com/phambaophuc/logo-compositor/pkg/utils"
	"go.uber.org/zap"
)

// ErrMissingInput is returned when an image has neither inline data nor a URL.
var ErrMissingInput = errors.New("missing required image input")

type Cache interface {
	GetFromCache(ctx context.Context, cacheKey string) ([]byte, error)
	SetCache(ctx context.Context, cacheKey string, data []byte) error
}

type Uploader interface {
	Upload(ctx context.Context, buffer *bytes.Buffer, filename, contentType string) (string, error)
}

// FetchFunc downloads an image by URL.
type FetchFunc func(ctx context.Context, url string) ([]byte, error)

type Result struct {
	Image  string `json:"image"`
	URL    string `json:"url,omitempty"`
	Cached bool   `json:"-"`
}

type Service struct {
	calc      *placement.Calculator
	processor *processor.ImageProcessor
	fetch     FetchFunc
	cache     Cache
	uploader  Uploader
	logger    *zap.Logger
}

type Option func(*Service)

func WithCache(cache Cache) Option {
	return func(s *Service) { s.cache = cache }
}

func WithUploader(uploader Uploader) Option {
	return func(s *Service) { s.uploader = uploader }
}

func WithFetcher(fetch FetchFunc) Option {
	return func(s *Service) { s.fetch = fetch }
}

// HTTPFetcher downloads with utils.DownloadImage.
func HTTPFetcher(maxSize int64, timeout time.Duration) FetchFunc {
	return func(ctx context.Context, url string) ([]byte, error) {
		data, _, err := utils.DownloadImage(ctx, url, maxSize, timeout)
		return data, err
	}
}

func NewService(
	calc *placement.Calculator,
	processor *processor.ImageProcessor,
	logger *zap.Logger,
	opts ...Option,
) *Service {
	s := &Service{
		calc:      calc,
		processor: processor,
		logger:    logger,
		fetch:     HTTPFetcher(10*1024*1024, 30*time.Second),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Validate reports ErrMissingInput before any work is done.
func Validate(req *models.CombineRequest) error {
	if req.BaseImage == "" && req.BaseImageURL == "" {
		return fmt.Errorf("%w: baseImage or baseImageUrl is required", ErrMissingInput)
	}
	if req.LogoImage == "" && req.LogoImageURL == "" {
		return fmt.Errorf("%w: logoImage or logoImageUrl is required", ErrMissingInput)
	}
	return nil
}

func (s *Service) Combine(ctx context.Context, req *models.CombineRequest) (*Result, error) {
	if err := Validate(req); err != nil {
		return nil, err
	}

	cacheKey := storage.GenerateCacheKey(req)
	if result, ok := s.fromCache(ctx, cacheKey); ok {
		if req.Upload {
			if data, err := base64.StdEncoding.DecodeString(result.Image); err == nil {
				result.URL = s.upload(ctx, bytes.NewBuffer(data))
			}
		}
		return result, nil
	}

	buffer, encoded, err := s.render(ctx, req)
	if err != nil {
		return nil, err
	}

	result := &Result{Image: encoded}
	s.toCache(ctx, cacheKey, result)

	if req.Upload {
		result.URL = s.upload(ctx, buffer)
	}
	return result, nil
}

func (s *Service) render(ctx context.Context, req *models.CombineRequest) (*bytes.Buffer, string, error) {
	base, err := s.loadImage(ctx, req.BaseImage, req.BaseImageURL)
	if err != nil {
		return nil, "", fmt.Errorf("base image: %w", err)
	}

	anchor := s.calc.Anchor(req.Position)
	if anchor == placement.None {
		return s.processor.EncodeBase64PNG(base)
	}

	logo, err := s.loadImage(ctx, req.LogoImage, req.LogoImageURL)
	if err != nil {
		return nil, "", fmt.Errorf("logo image: %w", err)
	}

	canvasSize := placement.SizeOf(base.Bounds())
	overlaySize := s.calc.OverlaySize(canvasSize, placement.SizeOf(logo.Bounds()), req.LogoSize)
	padding := s.calc.ResolvePadding(req.Padding, req.PaddingX, req.PaddingY)
	pt, _ := s.calc.Place(canvasSize, overlaySize, anchor, padding)

	opacity := processor.DefaultOpacity
	if req.Opacity != nil {
		opacity = *req.Opacity
	}

	s.logger.Debug("Compositing logo",
		zap.Stringer("anchor", anchor),
		zap.Float64("x", pt.X),
		zap.Float64("y", pt.Y),
		zap.Float64("overlay_width", overlaySize.Width),
		zap.Float64("overlay_height", overlaySize.Height),
	)

	combined := s.processor.Composite(base, logo, overlaySize, pt, opacity)
	return s.processor.EncodeBase64PNG(combined)
}

func (s *Service) loadImage(ctx context.Context, inline, url string) (image.Image, error) {
	if inline != "" {
		return s.processor.DecodeBase64(inline)
	}

	data, err := s.fetch(ctx, url)
	if err != nil {
		return nil, err
	}
	return s.processor.Decode(data)
}

func (s *Service) fromCache(ctx context.Context, cacheKey string) (*Result, bool) {
	if s.cache == nil {
		return nil, false
	}

	data, err := s.cache.GetFromCache(ctx, cacheKey)
	if err != nil || data == nil {
		if err != nil {
			s.logger.Warn("Cache lookup failed", zap.String("cache_key", cacheKey), zap.Error(err))
		}
		return nil, false
	}

	var result Result
	if err := json.Unmarshal(data, &result); err != nil || result.Image == "" {
		s.logger.Warn("Failed to unmarshal cached data", zap.String("cache_key", cacheKey), zap.Error(err))
		return nil, false
	}

	s.logger.Info("Cache hit", zap.String("cache_key", cacheKey))
	result.Cached = true
	return &result, true
}

func (s *Service) toCache(ctx context.Context, cacheKey string, result *Result) {
	if s.cache == nil {
		return
	}

	data, err := json.Marshal(result)
	if err != nil {
		return
	}
	if err := s.cache.SetCache(ctx, cacheKey, data); err != nil {
		s.logger.Warn("Failed to cache result", zap.String("cache_key", cacheKey), zap.Error(err))
	}
}

func (s *Service) upload(ctx context.Context, buffer *bytes.Buffer) string {
	if s.uploader == nil {
		return ""
	}

	filename := utils.GenerateFilename(uuid.New().String(), "png")
	url, err := s.uploader.Upload(ctx, buffer, filename, "image/png")
	if err != nil {
		s.logger.Warn("Failed to upload to storage", zap.Error(err))
		return ""
	}
	return url
}
