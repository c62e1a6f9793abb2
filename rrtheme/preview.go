package rrtheme

import (
	"bytes"
	"fmt"
	"html/template"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/railroad-think/rrtheme/lib/color"
	"github.com/railroad-think/rrtheme/rrcontract"
	"github.com/railroad-think/rrtheme/rrpalette"
)

var previewTmpl = template.Must(template.New("preview").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
{{.CSS}}
body { font-family: sans-serif; margin: 2rem; }
.row { display: flex; margin-bottom: 1rem; }
.row h2 { width: 8rem; font-size: 1rem; margin: 0; }
.swatch { width: 7rem; height: 4rem; padding: .25rem; font-size: .7rem; box-sizing: border-box; }
.scale { height: .5rem; margin-bottom: 1.5rem; }
</style>
</head>
<body class="{{.BodyClass}}">
{{- range .Rows}}
<div class="row">
  <h2>{{.Title}}</h2>
  {{- range .Swatches}}
  <div class="swatch" style="background: {{.Var}}; color: {{.Text}}" title="{{.Value}}">{{.Key}}<br>{{.Value}}</div>
  {{- end}}
</div>
<div class="scale" style="background: {{.Scale}}"></div>
{{- end}}
</body>
</html>
`))

type previewPage struct {
	Title     string
	CSS       template.CSS
	BodyClass string
	Rows      []previewRow
}

type previewRow struct {
	Title    string
	Swatches []previewSwatch
	Scale    template.CSS
}

type previewSwatch struct {
	Key   string
	Var   template.CSS
	Value string
	Text  template.CSS
}

// RenderPreview renders an HTML page with one row of swatches per palette, lightest
// tone first. Swatches are painted through the contract's CSS variables.
func RenderPreview(cfg Config, names []string, palettes map[string]*rrpalette.Palette) ([]byte, error) {
	css, err := RenderCSS(cfg)
	if err != nil {
		return nil, err
	}

	title := cases.Title(language.Und)
	page := previewPage{
		Title: "Theme preview",
		CSS:   template.CSS(css),
	}
	if len(cfg.Selector) > 1 && cfg.Selector[0] == '.' {
		page.BodyClass = cfg.Selector[1:]
	}

	for _, name := range names {
		p, ok := palettes[name]
		if !ok {
			return nil, fmt.Errorf("no palette derived for %q", name)
		}
		row := previewRow{
			Title: title.String(name),
			Scale: template.CSS(color.Scale("to right", p.Tones()).CSS()),
		}

		ordered := make([]rrcontract.Field, 0, len(p.Tint)+1+len(p.Shade))
		for r := len(p.Tint); r >= 1; r-- {
			ordered = append(ordered, rrcontract.TintField(r))
		}
		ordered = append(ordered, rrcontract.BaseField())
		for r := 1; r <= len(p.Shade); r++ {
			ordered = append(ordered, rrcontract.ShadeField(r))
		}

		for _, f := range ordered {
			key := rrcontract.PathOf(name, f)
			value := cfg.Values.Values[key]
			text, err := color.TextOn(value)
			if err != nil {
				text = "inherit"
			}
			row.Swatches = append(row.Swatches, previewSwatch{
				Key:   key,
				Var:   template.CSS(cfg.Contract.Placeholder(key)),
				Value: value,
				Text:  template.CSS(text),
			})
		}
		page.Rows = append(page.Rows, row)
	}

	var b bytes.Buffer
	if err := previewTmpl.Execute(&b, page); err != nil {
		return nil, err
	}
	return b.Bytes(), nil
}
