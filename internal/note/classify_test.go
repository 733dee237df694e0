package note

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyKinds(t *testing.T) {
	tests := []struct {
		name string
		text string
		want Classification
	}{
		{
			name: "plain",
			text: "hello world",
			want: Classification{Kind: KindPlain, Display: "hello world"},
		},
		{
			name: "image",
			text: "![alt](http://example.com/a.png)",
			want: Classification{Kind: KindImage, URL: "http://example.com/a.png"},
		},
		{
			name: "link",
			text: "[docs](https://example.com)",
			want: Classification{Kind: KindLink, Display: "docs", URL: "https://example.com"},
		},
		{
			name: "bare url wraps into a link",
			text: "https://example.com/page",
			want: Classification{Kind: KindLink, Display: "https://example.com/page", URL: "https://example.com/page"},
		},
		{
			name: "tag",
			text: "#groceries",
			want: Classification{Kind: KindTag, Display: "#groceries", URL: "/tag/groceries"},
		},
		{
			name: "header is not a tag when multi-word",
			text: "# big heading",
			want: Classification{Kind: KindPlain, Header: true, Display: "# big heading"},
		},
		{
			name: "strikethrough",
			text: "~done with this~",
			want: Classification{Kind: KindStrikethrough, Display: "done with this"},
		},
		{
			name: "unchecked checkbox",
			text: "[] buy milk",
			want: Classification{Kind: KindPlain, Checkbox: true, List: true, Bullet: "[]", Display: "buy milk"},
		},
		{
			name: "checked checkbox",
			text: "[x] buy milk",
			want: Classification{Kind: KindPlain, Checkbox: true, List: true, Checked: true, Bullet: "[]", Display: "buy milk"},
		},
		{
			name: "bullet list",
			text: "• first",
			want: Classification{Kind: KindPlain, List: true, Bullet: "•", Display: "• first"},
		},
		{
			name: "dash list",
			text: "- first",
			want: Classification{Kind: KindPlain, List: true, Bullet: "-", Display: "- first"},
		},
		{
			name: "numbered list keeps the whole marker",
			text: "3. third",
			want: Classification{Kind: KindPlain, List: true, Bullet: "3. ", Display: "3. third"},
		},
		{
			name: "link beats checkbox",
			text: "[x](https://example.com)",
			want: Classification{Kind: KindLink, Display: "x", URL: "https://example.com"},
		},
		{
			name: "image beats link",
			text: "![x](https://example.com/x.png)",
			want: Classification{Kind: KindImage, URL: "https://example.com/x.png"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.text))
		})
	}
}

// Classifying already-normalized text must be a fixed point.
func TestClassifyIdempotent(t *testing.T) {
	for _, text := range []string{
		"hello", "# heading", "#tag", "[] task", "[x] task",
		"• item", "- item", "7. item", "~gone~",
		"[label](https://example.com)", "https://example.com",
		"![i](https://example.com/i.png)",
	} {
		first := Classify(text)
		again := Classify(Normalize(text))
		assert.Equal(t, first, again, "input %q", text)
	}
}

func TestIsMeaningless(t *testing.T) {
	for _, text := range []string{"", "   ", "*", "-", "•", "[]", "[x]", "[X]", "3.", "3. "} {
		assert.True(t, IsMeaningless(text), "%q should be meaningless", text)
	}
	for _, text := range []string{"3. buy milk", "x", "[] task", "• item", "# h"} {
		assert.False(t, IsMeaningless(text), "%q should be kept", text)
	}
}

func TestNextBullet(t *testing.T) {
	assert.Equal(t, "4. ", NextBullet("3. "))
	assert.Equal(t, "10. ", NextBullet("9."))
	assert.Equal(t, "•  ", NextBullet("• "))
	assert.Equal(t, "• ", NextBullet("•"))
	assert.Equal(t, "[] ", NextBullet("[]"))
}

func TestToggleCheckbox(t *testing.T) {
	assert.Equal(t, "[x] buy milk", ToggleCheckbox("[] buy milk"))
	assert.Equal(t, "[] buy milk", ToggleCheckbox("[x] buy milk"))
	assert.Equal(t, "plain", ToggleCheckbox("plain"))
	// round trip is exact
	orig := "[] buy milk"
	assert.Equal(t, orig, ToggleCheckbox(ToggleCheckbox(orig)))
}

func TestMarkerCycle(t *testing.T) {
	assert.Equal(t, MarkerBullet, NextMarker(MarkerCheckbox))
	assert.Equal(t, MarkerDash, NextMarker(MarkerBullet))
	assert.Equal(t, MarkerNone, NextMarker(MarkerDash))
	assert.Equal(t, MarkerCheckbox, NextMarker(MarkerNone))

	assert.Equal(t, "• task", ApplyMarker("[x] task", MarkerBullet))
	assert.Equal(t, "- task", ApplyMarker("• task", MarkerDash))
	assert.Equal(t, "task", ApplyMarker("- task", MarkerNone))
	assert.Equal(t, "[] task", ApplyMarker("task", MarkerCheckbox))
}
