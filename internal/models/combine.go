package models

// CombineRequest is the JSON body of POST /combine. Each image is supplied
// either inline (base64, optionally as a data URI) or by URL.
type CombineRequest struct {
	BaseImage    string   `json:"baseImage,omitempty"`
	BaseImageURL string   `json:"baseImageUrl,omitempty"`
	LogoImage    string   `json:"logoImage,omitempty"`
	LogoImageURL string   `json:"logoImageUrl,omitempty"`
	LogoSize     float64  `json:"logoSize,omitempty"`
	Padding      *float64 `json:"padding,omitempty"`
	PaddingX     *float64 `json:"paddingX,omitempty"`
	PaddingY     *float64 `json:"paddingY,omitempty"`
	Position     string   `json:"position,omitempty"`
	Opacity      *float64 `json:"opacity,omitempty"`
	Upload       bool     `json:"upload,omitempty"`
}

type CombineResponse struct {
	Success bool   `json:"success"`
	Image   string `json:"image"`
	URL     string `json:"url,omitempty"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
