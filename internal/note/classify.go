package note

import (
	"regexp"
	"strconv"
	"strings"
)

// Kind is the display type of a note, computed once per content change.
type Kind int

const (
	KindPlain Kind = iota
	KindImage
	KindLink
	KindTag
	KindStrikethrough
)

// Classification is everything the view needs to render a note. Header, List
// and Checkbox are independent flags that can combine with a plain kind.
type Classification struct {
	Kind     Kind
	Header   bool
	List     bool
	Checkbox bool
	Checked  bool

	// Display is the text to show, with checkbox/strikethrough markers
	// stripped and link labels extracted.
	Display string
	// URL is the image source, link target, or tag path.
	URL string
	// Bullet is the literal list marker ("•", "-", "3. ", "[]"), used to
	// seed the note created on Enter.
	Bullet string
}

var (
	imageRe          = regexp.MustCompile(`!\[.*?\]\((.*?)\)`)
	linkRe           = regexp.MustCompile(`\[(.*?)\]\((.*?)\)`)
	tagRe            = regexp.MustCompile(`^#\w+$`)
	strikeRe         = regexp.MustCompile(`^~(.*)~$`)
	checkboxRe       = regexp.MustCompile(`^\[([xX ]?)\]`)
	checkedRe        = regexp.MustCompile(`^\[[xX]\]`)
	checkboxPrefixRe = regexp.MustCompile(`^\[[xX ]?\]\s*`)
	numberedRe       = regexp.MustCompile(`^\d+\.\s+`)
	bareNumberRe     = regexp.MustCompile(`^\d+\.\s*$`)
	bareURLRe        = regexp.MustCompile(`^https?://\S+$`)
	numberMarkerRe   = regexp.MustCompile(`^(\d+)\.\s*$`)
)

// Normalize rewrites shorthand forms before classification. A bare absolute
// URL becomes link markdown so it classifies and renders as a link.
func Normalize(text string) string {
	if bareURLRe.MatchString(strings.TrimSpace(text)) {
		u := strings.TrimSpace(text)
		return "[" + u + "](" + u + ")"
	}
	return text
}

// Classify maps raw note text to its rendering classification. Pure; the
// precedence order is fixed: image, link, tag, strikethrough, then plain with
// header/checkbox/list flags.
func Classify(text string) Classification {
	text = Normalize(text)
	c := Classification{Kind: KindPlain, Display: text}

	switch {
	case imageRe.MatchString(text):
		c.Kind = KindImage
		c.URL = imageRe.FindStringSubmatch(text)[1]
		c.Display = ""
		return c
	case linkRe.MatchString(text):
		c.Kind = KindLink
		m := linkRe.FindStringSubmatch(text)
		c.Display = m[1]
		c.URL = m[2]
		return c
	case tagRe.MatchString(strings.TrimSpace(text)):
		c.Kind = KindTag
		c.Display = strings.TrimSpace(text)
		c.URL = "/tag/" + strings.TrimPrefix(c.Display, "#")
		return c
	case strikeRe.MatchString(text):
		c.Kind = KindStrikethrough
		c.Display = strikeRe.FindStringSubmatch(text)[1]
		return c
	}

	if strings.HasPrefix(text, "#") {
		c.Header = true
	}
	switch {
	case checkboxRe.MatchString(text):
		c.Checkbox = true
		c.List = true
		c.Checked = checkedRe.MatchString(text)
		c.Bullet = "[]"
		c.Display = checkboxPrefixRe.ReplaceAllString(text, "")
	case strings.HasPrefix(text, "• ") || text == "•":
		c.List = true
		c.Bullet = "•"
	case strings.HasPrefix(text, "- ") || text == "-":
		c.List = true
		c.Bullet = "-"
	default:
		if m := numberedRe.FindString(text); m != "" {
			c.List = true
			c.Bullet = m
		}
	}
	return c
}

// IsMeaningless reports whether text is a placeholder the system deletes
// instead of saving: empty, a lone list marker, an empty checkbox, or a bare
// numbered marker with no content.
func IsMeaningless(text string) bool {
	t := strings.TrimSpace(text)
	switch t {
	case "", "*", "-", "•", "[]":
		return true
	}
	if strings.EqualFold(t, "[x]") {
		return true
	}
	return bareNumberRe.MatchString(t)
}

// NextBullet computes the marker that seeds the next note in a list. Numeric
// markers increment ("3. " becomes "4. "); everything else repeats with a
// trailing space appended.
func NextBullet(marker string) string {
	if m := numberMarkerRe.FindStringSubmatch(marker); m != nil {
		n, _ := strconv.Atoi(m[1])
		return strconv.Itoa(n+1) + ". "
	}
	return marker + " "
}

// ToggleCheckbox flips the checked state in the stored text. Non-checkbox
// text is returned unchanged.
func ToggleCheckbox(text string) string {
	rest := checkboxPrefixRe.ReplaceAllString(text, "")
	switch {
	case checkedRe.MatchString(text):
		return "[] " + rest
	case checkboxRe.MatchString(text):
		return "[x] " + rest
	}
	return text
}

// Marker is a bullet style in the ctrl+L rotation cycle.
type Marker int

const (
	MarkerNone Marker = iota
	MarkerCheckbox
	MarkerBullet
	MarkerDash
)

// MarkerOf identifies which cycle marker text currently carries.
func MarkerOf(text string) Marker {
	switch {
	case checkboxRe.MatchString(text):
		return MarkerCheckbox
	case strings.HasPrefix(text, "• ") || text == "•":
		return MarkerBullet
	case strings.HasPrefix(text, "- ") || text == "-":
		return MarkerDash
	}
	return MarkerNone
}

// NextMarker rotates checkbox → bullet → dash → none → checkbox.
func NextMarker(m Marker) Marker {
	switch m {
	case MarkerCheckbox:
		return MarkerBullet
	case MarkerBullet:
		return MarkerDash
	case MarkerDash:
		return MarkerNone
	default:
		return MarkerCheckbox
	}
}

// StripMarker removes a leading cycle marker from text, if any.
func StripMarker(text string) string {
	if checkboxRe.MatchString(text) {
		return checkboxPrefixRe.ReplaceAllString(text, "")
	}
	for _, p := range []string{"• ", "- "} {
		if strings.HasPrefix(text, p) {
			return strings.TrimPrefix(text, p)
		}
	}
	if text == "•" || text == "-" {
		return ""
	}
	return text
}

// ApplyMarker replaces any existing cycle marker on text with m.
func ApplyMarker(text string, m Marker) string {
	rest := StripMarker(text)
	switch m {
	case MarkerCheckbox:
		return "[] " + rest
	case MarkerBullet:
		return "• " + rest
	case MarkerDash:
		return "- " + rest
	}
	return rest
}
