package widgets

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDisplayKey(t *testing.T) {
	assert.Equal(t, "space", DisplayKey(" "))
	assert.Equal(t, "←", DisplayKey("left"))
	assert.Equal(t, "a", DisplayKey("a"))
}

func TestRgbToHex(t *testing.T) {
	assert.Equal(t, "#ff00a0", rgbToHex([3]uint8{255, 0, 160}))
	assert.Contains(t, RenderLegendItem([3]uint8{1, 2, 3}, "Cells", "tap to toggle"), "Cells - tap to toggle")
}
