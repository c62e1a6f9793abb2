package rrcolorscatalog

import (
	"fmt"
	"strings"

	"github.com/railroad-think/rrtheme/rrcolors"
)

var Catalog = []rrcolors.Source{
	Railroad,
}

// Find returns a copy of the named source so callers cannot mutate the catalog.
func Find(name string) (*rrcolors.Source, bool) {
	for _, src := range Catalog {
		if src.Name == name {
			return clone(src), true
		}
	}
	return nil, false
}

func CLIString() string {
	var s strings.Builder
	for _, src := range Catalog {
		s.WriteString(fmt.Sprintf("- %s: %d hues, tones %s (base %s)\n", src.Name, len(src.Hues), strings.Join(src.Tones, ","), src.BaseLabel()))
	}
	return s.String()
}

func clone(src rrcolors.Source) *rrcolors.Source {
	out := src
	out.Tones = append([]string(nil), src.Tones...)
	out.Hues = make([]rrcolors.Hue, len(src.Hues))
	for i, h := range src.Hues {
		out.Hues[i] = rrcolors.Hue{Name: h.Name, Colors: append([]string(nil), h.Colors...)}
	}
	out.Aliases = append([]rrcolors.Alias(nil), src.Aliases...)
	return &out
}
