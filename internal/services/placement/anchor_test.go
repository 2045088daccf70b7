package placement

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseAnchor(t *testing.T) {
	tests := []struct {
		in   string
		want Anchor
	}{
		{"top-left", TopLeft},
		{"top-right", TopRight},
		{"bottom-left", BottomLeft},
		{"bottom-right", BottomRight},
		{"center", Center},
		{"middle", Center},
		{"top-center", TopCenter},
		{"bottom middle", BottomCenter},
		{"middle-left", MiddleLeft},
		{"center-right", MiddleRight},
		{"  TOP  LEFT ", TopLeft},
		{"Bottom-Right", BottomRight},
		{"top", TopCenter},
		{"bottom", BottomCenter},
		{"left", MiddleLeft},
		{"right", MiddleRight},
		{"none", None},
		{" NONE ", None},
		{"", BottomRight},
		{"garbage", BottomRight},
		{"upper-corner", BottomRight},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseAnchor(tt.in, BottomRight))
		})
	}
}

func TestParseAnchor_Fallback(t *testing.T) {
	assert.Equal(t, TopLeft, ParseAnchor("", TopLeft))
	assert.Equal(t, Center, ParseAnchor("???", Center))
	assert.Equal(t, TopRight, ParseAnchor("top-right", TopLeft))
}

func TestAnchorString(t *testing.T) {
	for anchor, name := range anchorNames {
		assert.Equal(t, name, anchor.String())
		assert.Equal(t, anchor, ParseAnchor(name, None))
	}
	assert.Equal(t, "unknown", Anchor(42).String())
}
