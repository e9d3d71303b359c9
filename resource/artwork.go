package resource

import (
	"strconv"
	"strings"
)

// Artwork describes a resource's image. URL is a template with {w}, {h}
// and {f} placeholders; use ImageURL to expand it.
type Artwork struct {
	Width      int    `json:"width"`
	Height     int    `json:"height"`
	URL        string `json:"url"`
	BgColor    string `json:"bgColor,omitempty"`
	TextColor1 string `json:"textColor1,omitempty"`
	TextColor2 string `json:"textColor2,omitempty"`
	TextColor3 string `json:"textColor3,omitempty"`
	TextColor4 string `json:"textColor4,omitempty"`
}

// ImageFormat selects the file format of a rendered artwork image.
type ImageFormat string

// Supported artwork image formats.
const (
	ImagePNG  ImageFormat = "png"
	ImageWebP ImageFormat = "webp"
	ImageJPEG ImageFormat = "jpg"
)

// ImageURL expands the artwork URL template to a fetchable image URL of
// the given dimensions and format.
func (a Artwork) ImageURL(width, height int, format ImageFormat) string {
	return strings.NewReplacer(
		"{w}", strconv.Itoa(width),
		"{h}", strconv.Itoa(height),
		"{f}", string(format),
	).Replace(a.URL)
}
