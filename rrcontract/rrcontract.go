// Package rrcontract flattens palettes into theme tokens.
//
// Every token is named by PathOf. The base tone of a hue is named after the hue
// alone ("blue"), other tones get a kind and rank suffix ("blue-tint-2").
// A Contract maps token names to CSS variable references and a Bound maps the
// same names to concrete colors. Both are produced by a single walk so their
// key sets are always identical.
package rrcontract

import (
	"fmt"
	"strconv"
	"strings"

	"oss.terrastruct.com/util-go/xdefer"

	"github.com/railroad-think/rrtheme/rrcolors"
	"github.com/railroad-think/rrtheme/rrpalette"
)

const Separator = "-"

type FieldKind int

const (
	Base FieldKind = iota
	Tint
	Shade
)

func (k FieldKind) String() string {
	switch k {
	case Base:
		return "base"
	case Tint:
		return "tint"
	case Shade:
		return "shade"
	default:
		return "FieldKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Field identifies one tone of a palette. Rank is unused for Base.
type Field struct {
	Kind FieldKind
	Rank int
}

func BaseField() Field {
	return Field{Kind: Base}
}

func TintField(rank int) Field {
	return Field{Kind: Tint, Rank: rank}
}

func ShadeField(rank int) Field {
	return Field{Kind: Shade, Rank: rank}
}

func (f Field) String() string {
	if f.Kind == Base {
		return f.Kind.String()
	}
	return f.Kind.String() + "[" + strconv.Itoa(f.Rank) + "]"
}

// PathOf is the only place token names are built.
func PathOf(hue string, f Field) string {
	if f.Kind == Base {
		return hue
	}
	return strings.Join([]string{hue, f.Kind.String(), strconv.Itoa(f.Rank)}, Separator)
}

// Fields lists the fields of p: base, tints nearest first, shades nearest first.
func Fields(p *rrpalette.Palette) []Field {
	fields := make([]Field, 0, 1+len(p.Tint)+len(p.Shade))
	fields = append(fields, BaseField())
	for r := 1; r <= len(p.Tint); r++ {
		fields = append(fields, TintField(r))
	}
	for r := 1; r <= len(p.Shade); r++ {
		fields = append(fields, ShadeField(r))
	}
	return fields
}

// Value returns the color p holds for f.
func Value(p *rrpalette.Palette, f Field) (string, bool) {
	switch f.Kind {
	case Base:
		return p.Base, true
	case Tint:
		return p.TintAt(f.Rank)
	case Shade:
		return p.ShadeAt(f.Rank)
	default:
		return "", false
	}
}

type Options struct {
	// Prefix is prepended to every CSS variable name, e.g. "rr-" gives --rr-blue.
	Prefix string
}

type Contract struct {
	Prefix string
	// Keys holds token names in build order.
	Keys []string
	Vars map[string]string
}

// VarName returns the CSS custom property declared for key.
func (c *Contract) VarName(key string) string {
	return "--" + c.Prefix + key
}

func (c *Contract) Placeholder(key string) string {
	return "var(" + c.VarName(key) + ")"
}

func (c *Contract) Len() int {
	return len(c.Keys)
}

type Bound struct {
	Keys   []string
	Values map[string]string
}

func (b *Bound) Len() int {
	return len(b.Keys)
}

type origin struct {
	hue   string
	field Field
}

// Build walks palettes in names order and emits one contract entry and one
// bound value per field.
func Build(names []string, palettes map[string]*rrpalette.Palette, opts *Options) (_ *Contract, _ *Bound, err error) {
	defer xdefer.Errorf(&err, "failed to build theme contract")

	if opts == nil {
		opts = &Options{}
	}

	c := &Contract{
		Prefix: opts.Prefix,
		Vars:   make(map[string]string),
	}
	b := &Bound{
		Values: make(map[string]string),
	}
	seen := make(map[string]origin)

	for _, name := range names {
		p, ok := palettes[name]
		if !ok {
			return nil, nil, fmt.Errorf("no palette derived for %q", name)
		}
		for _, f := range Fields(p) {
			key := PathOf(name, f)
			if prev, ok := seen[key]; ok {
				return nil, nil, &rrcolors.ConfigurationError{
					Kind: rrcolors.PathCollision,
					Hue:  name,
					Message: fmt.Sprintf("%s of %q and %s of %q both flatten to %q",
						prev.field, prev.hue, f, name, key),
				}
			}
			seen[key] = origin{hue: name, field: f}

			v, _ := Value(p, f)
			c.Keys = append(c.Keys, key)
			c.Vars[key] = c.Placeholder(key)
			b.Keys = append(b.Keys, key)
			b.Values[key] = v
		}
	}

	if err := CheckParity(c, b); err != nil {
		return nil, nil, err
	}
	return c, b, nil
}
