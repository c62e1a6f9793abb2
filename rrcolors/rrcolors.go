// rrcolors defines the color source table the railroad theme is derived from.
// Tones are listed lightest -> darkest.
package rrcolors

import (
	"fmt"
	"strings"

	"github.com/mazznoer/csscolorparser"
)

// DefaultBase is the tone label of the canonical tone of every hue.
const DefaultBase = "500"

// cssBreakers end a declaration, a rule or the enclosing style element.
const cssBreakers = ";{}<>\r\n"

// SafeValue reports whether s can be written as a custom property value without
// ending the declaration it is written into.
func SafeValue(s string) bool {
	return !strings.ContainsAny(s, cssBreakers)
}

// SafeName reports whether s can be part of a custom property name.
func SafeName(s string) bool {
	return SafeValue(s) && !strings.ContainsAny(s, " \t:()\"'\\")
}

type Hue struct {
	Name string `json:"name" yaml:"name"`
	// Colors is positionally paired with Source.Tones.
	Colors []string `json:"colors" yaml:"colors"`
}

// Alias re-exports the palette of Hue under Name.
type Alias struct {
	Name string `json:"name" yaml:"name"`
	Hue  string `json:"hue" yaml:"hue"`
}

type Source struct {
	Name    string   `json:"name,omitempty" yaml:"name,omitempty"`
	Tones   []string `json:"tones" yaml:"tones"`
	Base    string   `json:"base,omitempty" yaml:"base,omitempty"`
	Hues    []Hue    `json:"hues" yaml:"hues"`
	Aliases []Alias  `json:"aliases,omitempty" yaml:"aliases,omitempty"`
}

// BaseLabel returns the configured base label or DefaultBase.
func (s *Source) BaseLabel() string {
	if s.Base == "" {
		return DefaultBase
	}
	return s.Base
}

// BaseIndex returns the position of the base label within Tones.
func (s *Source) BaseIndex() (int, error) {
	base := s.BaseLabel()
	for i, t := range s.Tones {
		if t == base {
			return i, nil
		}
	}
	return -1, &ConfigurationError{
		Kind:    MissingBase,
		Message: fmt.Sprintf("base tone %q is not one of the tone labels %v", base, s.Tones),
	}
}

// Validate checks the table's shape. It stops at the first problem found.
func (s *Source) Validate() error {
	if len(s.Tones) == 0 {
		return &ConfigurationError{Kind: EmptyName, Message: "no tone labels configured"}
	}
	seenTones := make(map[string]struct{}, len(s.Tones))
	for _, t := range s.Tones {
		if t == "" {
			return &ConfigurationError{Kind: EmptyName, Message: "empty tone label"}
		}
		if _, ok := seenTones[t]; ok {
			return &ConfigurationError{Kind: DuplicateTone, Message: fmt.Sprintf("tone label %q listed twice", t)}
		}
		seenTones[t] = struct{}{}
	}
	if _, err := s.BaseIndex(); err != nil {
		return err
	}

	names := make(map[string]struct{}, len(s.Hues)+len(s.Aliases))
	for _, h := range s.Hues {
		if h.Name == "" {
			return &ConfigurationError{Kind: EmptyName, Message: "hue without a name"}
		}
		if !SafeName(h.Name) {
			return &ConfigurationError{Kind: InvalidName, Hue: h.Name, Message: "name cannot be used in a CSS variable"}
		}
		if _, ok := names[h.Name]; ok {
			return &ConfigurationError{Kind: DuplicateHue, Hue: h.Name, Message: "defined more than once"}
		}
		names[h.Name] = struct{}{}
		if len(h.Colors) != len(s.Tones) {
			return &DataShapeError{Hue: h.Name, Got: len(h.Colors), Want: len(s.Tones)}
		}
		for i, c := range h.Colors {
			if !SafeValue(c) {
				return &DataShapeError{
					Hue:     h.Name,
					Got:     len(h.Colors),
					Want:    len(s.Tones),
					Message: fmt.Sprintf("tone %s: %q cannot be written as a CSS value", s.Tones[i], c),
				}
			}
		}
	}

	for _, a := range s.Aliases {
		if a.Name == "" {
			return &ConfigurationError{Kind: EmptyName, Message: "alias without a name"}
		}
		if !SafeName(a.Name) {
			return &ConfigurationError{Kind: InvalidName, Hue: a.Name, Message: "name cannot be used in a CSS variable"}
		}
		if _, ok := names[a.Name]; ok {
			return &ConfigurationError{Kind: DuplicateHue, Hue: a.Name, Message: "alias shadows an existing name"}
		}
		if s.Hue(a.Hue) == nil {
			return &ConfigurationError{Kind: UnknownAlias, Hue: a.Name, Message: fmt.Sprintf("aliases unknown hue %q", a.Hue)}
		}
		names[a.Name] = struct{}{}
	}
	return nil
}

// ValidateCSS checks that every color value parses as a CSS color.
func (s *Source) ValidateCSS() error {
	for _, h := range s.Hues {
		for i, c := range h.Colors {
			if _, err := csscolorparser.Parse(c); err != nil {
				label := ""
				if i < len(s.Tones) {
					label = s.Tones[i]
				}
				return &DataShapeError{
					Hue:     h.Name,
					Message: fmt.Sprintf("tone %s: %q is not a CSS color: %v", label, c, err),
				}
			}
		}
	}
	return nil
}

func (s *Source) Hue(name string) *Hue {
	for i := range s.Hues {
		if s.Hues[i].Name == name {
			return &s.Hues[i]
		}
	}
	return nil
}
