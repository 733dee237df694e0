package export

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pinboard/internal/entity"
)

func TestRenderPNG(t *testing.T) {
	data, err := RenderPNG([]entity.Note{
		{ID: "1", Text: "# plan", X: 40, Y: 40},
		{ID: "2", Text: "[] first step", X: 40, Y: 80},
		{ID: "3", Text: "~dropped~", X: 200, Y: 120},
	})
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Greater(t, img.Bounds().Dx(), 100)
	assert.Greater(t, img.Bounds().Dy(), 100)
}

func TestRenderPNGEmpty(t *testing.T) {
	_, err := RenderPNG(nil)
	assert.Error(t, err)
}
