package share

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pinboard/internal/entity"
)

func TestRender(t *testing.T) {
	html, err := Render("groceries", []entity.Note{
		{ID: "1", Text: "# shopping", X: 40, Y: 40},
		{ID: "2", Text: "[x] milk", X: 40, Y: 80},
		{ID: "3", Text: "[recipe](https://example.com/r)", X: 40, Y: 120},
		{ID: "4", Text: "~skipped~", X: 40, Y: 160},
	})
	require.NoError(t, err)

	assert.Contains(t, html, "<title>groceries</title>")
	assert.Contains(t, html, `class="note header"`)
	assert.Contains(t, html, "☑ milk")
	assert.Contains(t, html, `href="https://example.com/r"`)
	assert.Contains(t, html, `class="note strike"`)
	assert.Contains(t, html, "left:40px;top:120px")
	assert.NotContains(t, html, "<script")
}

func TestRenderEscapes(t *testing.T) {
	html, err := Render("x", []entity.Note{
		{ID: "1", Text: "<script>alert(1)</script>"},
	})
	require.NoError(t, err)
	assert.NotContains(t, html, "<script>alert")
}
