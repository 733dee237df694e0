// Package share renders readonly HTML snapshots of a canvas. The snapshot
// is self-contained: absolutely positioned notes, classifier-aware styling,
// no scripts.
package share

import (
	"html/template"
	"sort"
	"strings"

	"pinboard/internal/entity"
	"pinboard/internal/note"
)

var snapshotTmpl = template.Must(template.New("snapshot").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Name}}</title>
<style>
body { font-family: sans-serif; background: #fafafa; margin: 0; }
.canvas { position: relative; width: {{.Width}}px; height: {{.Height}}px; }
.note { position: absolute; padding: 2px 6px; background: #fff; border: 1px solid #ddd; border-radius: 3px; white-space: nowrap; }
.note.header { font-weight: bold; }
.note.strike { text-decoration: line-through; }
.note img { max-width: 300px; }
h1 { font-size: 16px; padding: 8px 12px; margin: 0; color: #666; }
</style>
</head>
<body>
<h1>{{.Name}}</h1>
<div class="canvas">
{{- range .Notes}}
<div class="note{{if .Header}} header{{end}}{{if .Strike}} strike{{end}}" style="left:{{.X}}px;top:{{.Y}}px">{{if .ImageURL}}<img src="{{.ImageURL}}" alt="">{{else if .LinkURL}}<a href="{{.LinkURL}}">{{.Text}}</a>{{else}}{{.Text}}{{end}}</div>
{{- end}}
</div>
</body>
</html>
`))

type snapshotNote struct {
	X, Y     int
	Text     string
	Header   bool
	Strike   bool
	ImageURL string
	LinkURL  string
}

type snapshotData struct {
	Name          string
	Width, Height int
	Notes         []snapshotNote
}

// Render produces the snapshot HTML for a canvas's notes.
func Render(canvasName string, notes []entity.Note) (string, error) {
	data := snapshotData{Name: canvasName, Width: 800, Height: 600}
	sort.Slice(notes, func(i, j int) bool { return notes[i].ID < notes[j].ID })

	for _, n := range notes {
		c := note.Classify(n.Text)
		sn := snapshotNote{X: n.X, Y: n.Y, Text: c.Display}
		switch c.Kind {
		case note.KindImage:
			sn.ImageURL = c.URL
		case note.KindLink, note.KindTag:
			sn.LinkURL = c.URL
		case note.KindStrikethrough:
			sn.Strike = true
		}
		sn.Header = c.Header
		if c.Checkbox {
			mark := "☐ "
			if c.Checked {
				mark = "☑ "
			}
			sn.Text = mark + sn.Text
		}
		if n.X+400 > data.Width {
			data.Width = n.X + 400
		}
		if n.Y+100 > data.Height {
			data.Height = n.Y + 100
		}
		data.Notes = append(data.Notes, sn)
	}

	var b strings.Builder
	if err := snapshotTmpl.Execute(&b, data); err != nil {
		return "", err
	}
	return b.String(), nil
}
