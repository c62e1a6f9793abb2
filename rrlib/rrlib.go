package rrlib

import (
	"context"
	"fmt"

	"cdr.dev/slog"
	"oss.terrastruct.com/util-go/xdefer"

	"github.com/railroad-think/rrtheme/lib/color"
	"github.com/railroad-think/rrtheme/lib/env"
	"github.com/railroad-think/rrtheme/lib/log"
	"github.com/railroad-think/rrtheme/rrcolors"
	"github.com/railroad-think/rrtheme/rrcolors/rrcolorscatalog"
	"github.com/railroad-think/rrtheme/rrcontract"
	"github.com/railroad-think/rrtheme/rrpalette"
	"github.com/railroad-think/rrtheme/rrtheme"
)

type InitOptions struct {
	// Source defaults to the railroad catalog table.
	Source   *rrcolors.Source
	Selector string
	Prefix   string
	// StrictColors also requires every value to parse as a CSS color.
	// RR_STRICT=1 turns it on as well.
	StrictColors bool
}

// Theme is immutable once returned by Init.
type Theme struct {
	Names    []string
	Palettes map[string]*rrpalette.Palette
	Config   rrtheme.Config
}

func Init(ctx context.Context, opts *InitOptions) (_ *Theme, err error) {
	defer xdefer.Errorf(&err, "failed to initialize theme")

	if opts == nil {
		opts = &InitOptions{}
	}
	src := opts.Source
	if src == nil {
		src, _ = rrcolorscatalog.Find(rrcolorscatalog.Railroad.Name)
	}
	selector := opts.Selector
	if selector == "" {
		selector = rrtheme.DefaultSelector
	}

	ctx = log.Named(ctx, "init")
	ctx = log.WithFields(ctx, slog.F("source", src.Name))
	log.Debug(ctx, "deriving palettes",
		slog.F("hues", len(src.Hues)),
		slog.F("tones", src.Tones),
	)

	palettes, names, err := rrpalette.DeriveAll(src)
	if err != nil {
		log.Error(ctx, "invalid color source", slog.Error(err))
		return nil, err
	}
	if opts.StrictColors || env.Strict() {
		if err := src.ValidateCSS(); err != nil {
			log.Error(ctx, "invalid color value", slog.Error(err))
			return nil, err
		}
		for _, h := range src.Hues {
			if err := color.CheckOrder(h.Colors); err != nil {
				log.Warn(ctx, "tones are not ordered lightest to darkest", slog.F("hue", h.Name), slog.Error(err))
			}
		}
	}

	c, b, err := rrcontract.Build(names, palettes, &rrcontract.Options{Prefix: opts.Prefix})
	if err != nil {
		log.Error(ctx, "invalid theme contract", slog.Error(err))
		return nil, err
	}
	log.Debug(ctx, "built theme contract", slog.F("tokens", c.Len()), slog.F("selector", selector))

	t := &Theme{
		Names:    names,
		Palettes: palettes,
		Config: rrtheme.Config{
			Selector: selector,
			Contract: c,
			Values:   b,
		},
	}
	if _, err := rrtheme.RenderCSS(t.Config); err != nil {
		return nil, err
	}
	return t, nil
}

// MustInit is Init for package level variables.
func MustInit(ctx context.Context, opts *InitOptions) *Theme {
	t, err := Init(ctx, opts)
	if err != nil {
		panic(fmt.Sprintf("rrlib: %v", err))
	}
	return t
}

func (t *Theme) CSS() ([]byte, error) {
	return rrtheme.RenderCSS(t.Config)
}

func (t *Theme) JSON() ([]byte, error) {
	return rrtheme.RenderJSON(t.Config)
}

func (t *Theme) TS() ([]byte, error) {
	return rrtheme.RenderTS(t.Config.Contract)
}

func (t *Theme) Preview() ([]byte, error) {
	return rrtheme.RenderPreview(t.Config, t.Names, t.Palettes)
}
