package rrcolors_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/railroad-think/rrtheme/rrcolors"
	"github.com/railroad-think/rrtheme/rrcolors/rrcolorscatalog"
)

func TestValidate(t *testing.T) {
	t.Parallel()

	tones := []string{"100", "300", "500", "700", "900"}
	colors := []string{"#eee", "#ccc", "#999", "#666", "#333"}

	testCases := []struct {
		name      string
		src       rrcolors.Source
		kind      rrcolors.ConfigKind
		shapeHue  string
		expectErr bool
	}{
		{
			name: "ok",
			src: rrcolors.Source{
				Tones: tones,
				Hues:  []rrcolors.Hue{{Name: "gray", Colors: colors}},
			},
		},
		{
			name: "missing_base",
			src: rrcolors.Source{
				Tones: []string{"100", "300", "700", "900"},
				Hues:  []rrcolors.Hue{{Name: "gray", Colors: colors[:4]}},
			},
			kind:      rrcolors.MissingBase,
			expectErr: true,
		},
		{
			name: "custom_base_missing",
			src: rrcolors.Source{
				Tones: tones,
				Base:  "600",
				Hues:  []rrcolors.Hue{{Name: "gray", Colors: colors}},
			},
			kind:      rrcolors.MissingBase,
			expectErr: true,
		},
		{
			name: "duplicate_hue",
			src: rrcolors.Source{
				Tones: tones,
				Hues: []rrcolors.Hue{
					{Name: "gray", Colors: colors},
					{Name: "gray", Colors: colors},
				},
			},
			kind:      rrcolors.DuplicateHue,
			expectErr: true,
		},
		{
			name: "duplicate_tone",
			src: rrcolors.Source{
				Tones: []string{"100", "500", "500"},
			},
			kind:      rrcolors.DuplicateTone,
			expectErr: true,
		},
		{
			name: "no_tones",
			src: rrcolors.Source{
				Hues: []rrcolors.Hue{{Name: "gray"}},
			},
			kind:      rrcolors.EmptyName,
			expectErr: true,
		},
		{
			name: "short_hue",
			src: rrcolors.Source{
				Tones: tones,
				Hues:  []rrcolors.Hue{{Name: "gray", Colors: colors[:3]}},
			},
			shapeHue:  "gray",
			expectErr: true,
		},
		{
			name: "unknown_alias",
			src: rrcolors.Source{
				Tones:   tones,
				Hues:    []rrcolors.Hue{{Name: "gray", Colors: colors}},
				Aliases: []rrcolors.Alias{{Name: "muted", Hue: "grey"}},
			},
			kind:      rrcolors.UnknownAlias,
			expectErr: true,
		},
		{
			name: "alias_shadows_hue",
			src: rrcolors.Source{
				Tones:   tones,
				Hues:    []rrcolors.Hue{{Name: "gray", Colors: colors}},
				Aliases: []rrcolors.Alias{{Name: "gray", Hue: "gray"}},
			},
			kind:      rrcolors.DuplicateHue,
			expectErr: true,
		},
		{
			name: "value_closes_rule",
			src: rrcolors.Source{
				Tones: tones,
				Hues:  []rrcolors.Hue{{Name: "gray", Colors: []string{"#eee", "#ccc", "#000; } body { display: none", "#666", "#333"}}},
			},
			shapeHue:  "gray",
			expectErr: true,
		},
		{
			name: "value_closes_style",
			src: rrcolors.Source{
				Tones: tones,
				Hues:  []rrcolors.Hue{{Name: "gray", Colors: []string{"#eee", "#ccc", "#111</style><script>alert(1)</script>", "#666", "#333"}}},
			},
			shapeHue:  "gray",
			expectErr: true,
		},
		{
			name: "value_newline",
			src: rrcolors.Source{
				Tones: tones,
				Hues:  []rrcolors.Hue{{Name: "gray", Colors: []string{"#eee", "#ccc", "#999\n--x: 1", "#666", "#333"}}},
			},
			shapeHue:  "gray",
			expectErr: true,
		},
		{
			name: "hue_name_unsafe",
			src: rrcolors.Source{
				Tones: tones,
				Hues:  []rrcolors.Hue{{Name: "gray:x", Colors: colors}},
			},
			kind:      rrcolors.InvalidName,
			expectErr: true,
		},
		{
			name: "alias_name_unsafe",
			src: rrcolors.Source{
				Tones:   tones,
				Hues:    []rrcolors.Hue{{Name: "gray", Colors: colors}},
				Aliases: []rrcolors.Alias{{Name: "muted }", Hue: "gray"}},
			},
			kind:      rrcolors.InvalidName,
			expectErr: true,
		},
		{
			name: "functional_notation_ok",
			src: rrcolors.Source{
				Tones: tones,
				Hues:  []rrcolors.Hue{{Name: "gray", Colors: []string{"rgb(238 238 238)", "hsl(0, 0%, 80%)", "#999", "#666", "#333"}}},
			},
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			err := tc.src.Validate()
			if !tc.expectErr {
				assert.NoError(t, err)
				return
			}
			assert.Error(t, err)
			if tc.shapeHue != "" {
				var serr *rrcolors.DataShapeError
				if assert.True(t, errors.As(err, &serr)) {
					assert.Equal(t, tc.shapeHue, serr.Hue)
					assert.Equal(t, len(tc.src.Tones), serr.Want)
				}
				return
			}
			var cerr *rrcolors.ConfigurationError
			if assert.True(t, errors.As(err, &cerr)) {
				assert.Equal(t, tc.kind, cerr.Kind)
			}
		})
	}
}

func TestValidateCSS(t *testing.T) {
	t.Parallel()

	src := rrcolors.Source{
		Tones: []string{"400", "500", "600"},
		Hues: []rrcolors.Hue{
			{Name: "ok", Colors: []string{"#fff", "rgb(10, 20, 30)", "navy"}},
		},
	}
	assert.NoError(t, src.ValidateCSS())

	src.Hues = append(src.Hues, rrcolors.Hue{Name: "bad", Colors: []string{"#fff", "notacolor", "#000"}})
	err := src.ValidateCSS()
	var serr *rrcolors.DataShapeError
	if assert.True(t, errors.As(err, &serr)) {
		assert.Equal(t, "bad", serr.Hue)
		assert.Contains(t, serr.Error(), "tone 500")
	}
}

func TestCatalog(t *testing.T) {
	t.Parallel()

	src, ok := rrcolorscatalog.Find("railroad")
	assert.True(t, ok)
	assert.NoError(t, src.Validate())
	assert.NoError(t, src.ValidateCSS())

	src.Hues[0].Colors[0] = "#000000"
	again, _ := rrcolorscatalog.Find("railroad")
	assert.Equal(t, "#e3f4ff", again.Hues[0].Colors[0])

	_, ok = rrcolorscatalog.Find("nope")
	assert.False(t, ok)

	assert.Contains(t, rrcolorscatalog.CLIString(), "- railroad: 4 hues")
}

func TestParse(t *testing.T) {
	t.Parallel()

	const yamlSrc = `
tones: ["50", "500", "900"]
hues:
  - name: blue
    colors: ["#eef", "#00f", "#002"]
aliases:
  - name: info
    hue: blue
`
	src, err := rrcolors.Parse("brand.yaml", strings.NewReader(yamlSrc))
	assert.NoError(t, err)
	assert.Equal(t, "brand", src.Name)
	assert.Equal(t, rrcolors.DefaultBase, src.BaseLabel())
	assert.Equal(t, []string{"#eef", "#00f", "#002"}, src.Hue("blue").Colors)
	assert.Equal(t, "blue", src.Aliases[0].Hue)
	assert.NoError(t, src.Validate())

	const jsonSrc = `{"name": "x", "tones": ["500"], "base": "500", "hues": [{"name": "red", "colors": ["#f00"]}]}`
	src, err = rrcolors.Parse("x.json", strings.NewReader(jsonSrc))
	assert.NoError(t, err)
	assert.Equal(t, "x", src.Name)
	assert.Nil(t, src.Hue("blue"))

	_, err = rrcolors.Parse("x.json", strings.NewReader(`{"tones": [], "colours": []}`))
	assert.Error(t, err)

	_, err = rrcolors.Parse("x.toml", strings.NewReader(``))
	assert.ErrorContains(t, err, "unsupported extension")

	_, err = rrcolors.Parse("empty.yml", strings.NewReader(``))
	assert.ErrorContains(t, err, "empty document")
}
