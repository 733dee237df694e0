package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectRTF(t *testing.T) {
	assert.True(t, isRTF(`{\rtf1\ansi hello}`))
	assert.False(t, isRTF("plain text"))
}

func TestDetectHTML(t *testing.T) {
	assert.True(t, isHTML("<html><body>hi</body></html>"))
	assert.True(t, isHTML(`  <div class="x">hi</div>`))
	assert.False(t, isHTML("a < b and b > c"))
}

func TestStripRTF(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"paragraph break", `{\rtf1\ansi first\par second}`, "first\nsecond"},
		{"tab", `{\rtf1 a\tab b}`, "a\tb"},
		{"escaped braces", `{\rtf1 a\{b\}c}`, "a{b}c"},
		{"not rtf passes through", "plain", "plain"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, stripRTF(tt.in))
		})
	}
}

func TestExtractHTMLText(t *testing.T) {
	got := extractHTMLText("<div><b>bold</b> &amp; plain &lt;tag&gt;</div>")
	assert.Equal(t, "bold & plain <tag>", got)
}

func TestCleanClipboardText(t *testing.T) {
	assert.Equal(t, "a\nb", cleanClipboardText("a\r\nb"))
	assert.Equal(t, "first\nsecond", cleanClipboardText(`{\rtf1 first\par second}`))
	assert.Equal(t, "hi", cleanClipboardText("<html><body>hi</body></html>"))
}

func TestSplitPasteLines(t *testing.T) {
	got := splitPasteLines("  one  \n\n two\n\n\nthree\n")
	assert.Equal(t, []string{"one", "two", "three"}, got)
}

func TestImagePathDetection(t *testing.T) {
	_, ok := imagePath("not a path")
	assert.False(t, ok)
	_, ok = imagePath("/tmp/nope-missing.png")
	assert.False(t, ok)
	_, ok = imagePath("line one\n/tmp/x.png")
	assert.False(t, ok)
}
