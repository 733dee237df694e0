package ui

import (
	"os/exec"
	"runtime"
	"strings"

	"github.com/atotto/clipboard"
)

// Clipboard format negotiation. Terminals hand us whatever the source app
// put on the pasteboard, so pasted text may arrive as RTF or HTML; both are
// reduced to plain text before note creation.

func readClipboardText() (string, error) {
	if runtime.GOOS == "darwin" {
		if output, err := exec.Command("pbpaste", "-Prefer", "txt").Output(); err == nil {
			return string(output), nil
		}
	}
	return clipboard.ReadAll()
}

func writeClipboardText(text string) error {
	return clipboard.WriteAll(text)
}

func isRTF(text string) bool {
	return strings.HasPrefix(text, `{\rtf`) || strings.Contains(text, `\rtf1`)
}

func isHTML(text string) bool {
	t := strings.TrimSpace(text)
	return strings.HasPrefix(t, "<") &&
		(strings.Contains(t, "<html") || strings.Contains(t, "<body") || strings.Contains(t, "<div"))
}

// extractHTMLText drops tags and decodes the handful of entities that show
// up in pasteboard HTML.
func extractHTMLText(html string) string {
	var b strings.Builder
	b.Grow(len(html))
	inTag := false
	for _, r := range html {
		switch {
		case r == '<':
			inTag = true
		case r == '>':
			inTag = false
		case !inTag:
			b.WriteRune(r)
		}
	}
	text := b.String()
	for entity, plain := range map[string]string{
		"&lt;": "<", "&gt;": ">", "&amp;": "&",
		"&quot;": `"`, "&#39;": "'", "&nbsp;": " ",
	} {
		text = strings.ReplaceAll(text, entity, plain)
	}
	return text
}

// stripRTF removes RTF control words and group braces, keeping literal text
// and the \par/\line paragraph breaks as newlines.
func stripRTF(text string) string {
	if !isRTF(text) {
		return text
	}
	var b strings.Builder
	b.Grow(len(text))
	runes := []rune(text)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		switch r {
		case '{', '}':
			continue
		case '\\':
			if i+1 >= len(runes) {
				continue
			}
			next := runes[i+1]
			switch {
			case next == '\\' || next == '{' || next == '}':
				b.WriteRune(next)
				i++
			case next >= 'a' && next <= 'z' || next >= 'A' && next <= 'Z':
				start := i + 1
				i++
				for i+1 < len(runes) && isControlWordRune(runes[i+1]) {
					i++
				}
				word := strings.TrimRight(string(runes[start:i+1]), "-0123456789")
				if word == "par" || word == "line" {
					b.WriteRune('\n')
				} else if word == "tab" {
					b.WriteRune('\t')
				}
				// a single space terminates the control word
				if i+1 < len(runes) && runes[i+1] == ' ' {
					i++
				}
			}
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

func isControlWordRune(r rune) bool {
	return r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9' || r == '-'
}

// cleanClipboardText reduces any pasteboard payload to plain text with
// normalized newlines.
func cleanClipboardText(text string) string {
	if text == "" {
		return text
	}
	if isRTF(text) {
		text = stripRTF(text)
	} else if isHTML(text) {
		text = extractHTMLText(text)
	}
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if r == '\n' || r == '\r' || r == '\t' || r >= 32 {
			b.WriteRune(r)
		}
	}
	text = strings.ReplaceAll(b.String(), "\r\n", "\n")
	return strings.ReplaceAll(text, "\r", "\n")
}

// splitPasteLines breaks a paste into note-sized lines: trimmed, empties
// dropped.
func splitPasteLines(text string) []string {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			out = append(out, line)
		}
	}
	return out
}
