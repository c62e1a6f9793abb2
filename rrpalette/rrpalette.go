// Package rrpalette splits a hue's tones into a base tone, tints and shades.
//
// Tint and shade ranks are counted from the base outward starting at 1, so
// tint 1 is the tone just lighter than the base and shade 1 the tone just darker.
// No color math happens here: values are reordered, never computed.
package rrpalette

import (
	"fmt"

	"oss.terrastruct.com/util-go/xdefer"

	"github.com/railroad-think/rrtheme/rrcolors"
)

type Palette struct {
	Hue  string `json:"hue"`
	Base string `json:"base"`
	// Tint[i] is rank i+1.
	Tint []string `json:"tint"`
	// Shade[i] is rank i+1.
	Shade []string `json:"shade"`
}

func Derive(tones []string, base string, h rrcolors.Hue) (*Palette, error) {
	bi := -1
	for i, t := range tones {
		if t == base {
			bi = i
			break
		}
	}
	if bi == -1 {
		return nil, &rrcolors.ConfigurationError{
			Kind:    rrcolors.MissingBase,
			Hue:     h.Name,
			Message: fmt.Sprintf("base tone %q is not one of the tone labels %v", base, tones),
		}
	}
	if len(h.Colors) != len(tones) {
		return nil, &rrcolors.DataShapeError{Hue: h.Name, Got: len(h.Colors), Want: len(tones)}
	}

	p := &Palette{
		Hue:   h.Name,
		Base:  h.Colors[bi],
		Tint:  make([]string, 0, bi),
		Shade: make([]string, 0, len(h.Colors)-bi-1),
	}
	for i := bi - 1; i >= 0; i-- {
		p.Tint = append(p.Tint, h.Colors[i])
	}
	p.Shade = append(p.Shade, h.Colors[bi+1:]...)
	return p, nil
}

// DeriveAll validates src and derives a palette for every hue and alias.
// names lists hues in table order followed by aliases.
func DeriveAll(src *rrcolors.Source) (_ map[string]*Palette, names []string, err error) {
	defer xdefer.Errorf(&err, "failed to derive palettes")

	if err := src.Validate(); err != nil {
		return nil, nil, err
	}

	base := src.BaseLabel()
	palettes := make(map[string]*Palette, len(src.Hues)+len(src.Aliases))
	for _, h := range src.Hues {
		p, err := Derive(src.Tones, base, h)
		if err != nil {
			return nil, nil, err
		}
		palettes[h.Name] = p
		names = append(names, h.Name)
	}
	for _, a := range src.Aliases {
		p := *palettes[a.Hue]
		p.Hue = a.Name
		palettes[a.Name] = &p
		names = append(names, a.Name)
	}
	return palettes, names, nil
}

func (p *Palette) TintAt(rank int) (string, bool) {
	return at(p.Tint, rank)
}

func (p *Palette) ShadeAt(rank int) (string, bool) {
	return at(p.Shade, rank)
}

func at(scale []string, rank int) (string, bool) {
	if rank < 1 || rank > len(scale) {
		return "", false
	}
	return scale[rank-1], true
}

// Tones reassembles the source's lightest -> darkest sequence.
func (p *Palette) Tones() []string {
	out := make([]string, 0, len(p.Tint)+1+len(p.Shade))
	for i := len(p.Tint) - 1; i >= 0; i-- {
		out = append(out, p.Tint[i])
	}
	out = append(out, p.Base)
	out = append(out, p.Shade...)
	return out
}
