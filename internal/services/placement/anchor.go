package placement

import (
	"strings"
	"unicode"
)

// Anchor is the edge, corner or center an overlay is attached to.
type Anchor int

const (
	BottomRight Anchor = iota
	BottomCenter
	BottomLeft
	MiddleRight
	Center
	MiddleLeft
	TopRight
	TopCenter
	TopLeft
	None
)

type vAlign int

const (
	vUnset vAlign = iota
	vTop
	vMiddle
	vBottom
)

type hAlign int

const (
	hUnset hAlign = iota
	hLeft
	hCenter
	hRight
)

var anchorNames = map[Anchor]string{
	TopLeft:      "top-left",
	TopCenter:    "top-center",
	TopRight:     "top-right",
	MiddleLeft:   "middle-left",
	Center:       "center",
	MiddleRight:  "middle-right",
	BottomLeft:   "bottom-left",
	BottomCenter: "bottom-center",
	BottomRight:  "bottom-right",
	None:         "none",
}

func (a Anchor) String() string {
	if name, ok := anchorNames[a]; ok {
		return name
	}
	return "unknown"
}

// ParseAnchor normalizes a free-form position string and resolves it to an
// Anchor. Vertical and horizontal keywords are matched independently. When
// nothing matches, fallback is returned. When only one axis matches, the
// other axis is centered.
func ParseAnchor(position string, fallback Anchor) Anchor {
	p := normalize(position)
	if p == "none" {
		return None
	}

	centered := strings.Contains(p, "center") || strings.Contains(p, "middle")

	v := vUnset
	switch {
	case strings.Contains(p, "top"):
		v = vTop
	case strings.Contains(p, "bottom"):
		v = vBottom
	case centered:
		v = vMiddle
	}

	h := hUnset
	switch {
	case strings.Contains(p, "left"):
		h = hLeft
	case strings.Contains(p, "right"):
		h = hRight
	case centered:
		h = hCenter
	}

	if v == vUnset && h == hUnset {
		return fallback
	}
	if v == vUnset {
		v = vMiddle
	}
	if h == hUnset {
		h = hCenter
	}
	return fromAxes(v, h)
}

func normalize(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return unicode.ToLower(r)
	}, s)
}

func fromAxes(v vAlign, h hAlign) Anchor {
	switch v {
	case vTop:
		switch h {
		case hLeft:
			return TopLeft
		case hRight:
			return TopRight
		}
		return TopCenter
	case vBottom:
		switch h {
		case hLeft:
			return BottomLeft
		case hRight:
			return BottomRight
		}
		return BottomCenter
	}
	switch h {
	case hLeft:
		return MiddleLeft
	case hRight:
		return MiddleRight
	}
	return Center
}

func (a Anchor) axes() (vAlign, hAlign) {
	switch a {
	case TopLeft:
		return vTop, hLeft
	case TopCenter:
		return vTop, hCenter
	case TopRight:
		return vTop, hRight
	case MiddleLeft:
		return vMiddle, hLeft
	case MiddleRight:
		return vMiddle, hRight
	case BottomLeft:
		return vBottom, hLeft
	case BottomCenter:
		return vBottom, hCenter
	case BottomRight:
		return vBottom, hRight
	}
	return vMiddle, hCenter
}
