package color

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/mazznoer/csscolorparser"
)

func parse(colorString string) (colorful.Color, error) {
	c, err := csscolorparser.Parse(colorString)
	if err != nil {
		return colorful.Color{}, err
	}
	return colorful.Color{R: c.R, G: c.G, B: c.B}, nil
}

func LuminanceCategory(colorString string) (string, error) {
	l, err := Luminance(colorString)
	if err != nil {
		return "", err
	}

	switch {
	case l >= .88:
		return "bright", nil
	case l >= .55:
		return "normal", nil
	case l >= .30:
		return "dark", nil
	default:
		return "darker", nil
	}
}

func Luminance(colorString string) (float64, error) {
	c, err := csscolorparser.Parse(colorString)
	if err != nil {
		return 0, err
	}

	l := float64(
		float64(0.299)*float64(c.R) +
			float64(0.587)*float64(c.G) +
			float64(0.114)*float64(c.B),
	)
	return l, nil
}

// Lightness is the CIE L*a*b* L component in [0, 1].
func Lightness(colorString string) (float64, error) {
	c, err := parse(colorString)
	if err != nil {
		return 0, err
	}
	l, _, _ := c.Lab()
	return l, nil
}

// TextOn picks a label color readable on top of background.
func TextOn(background string) (string, error) {
	cat, err := LuminanceCategory(background)
	if err != nil {
		return "", err
	}
	switch cat {
	case "bright", "normal":
		return "#000000", nil
	default:
		return "#ffffff", nil
	}
}

// CheckOrder reports the first adjacent pair in tones (lightest -> darkest) whose
// lightness goes the wrong way.
func CheckOrder(tones []string) error {
	prev := -1.
	for i, t := range tones {
		l, err := Lightness(t)
		if err != nil {
			return fmt.Errorf("tone %d: %w", i, err)
		}
		if prev >= 0 && l > prev {
			return fmt.Errorf("tone %d (%s) is lighter than tone %d (%s)", i, t, i-1, tones[i-1])
		}
		prev = l
	}
	return nil
}
