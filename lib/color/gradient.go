package color

import (
	"fmt"
	"strings"
)

type Gradient struct {
	Direction  string
	ColorStops []ColorStop
}

type ColorStop struct {
	Color    string
	Position string
}

// Scale spreads colors evenly along a linear gradient.
func Scale(direction string, colors []string) Gradient {
	g := Gradient{Direction: direction}
	for i, c := range colors {
		pos := "0%"
		if len(colors) > 1 {
			pos = fmt.Sprintf("%.4g%%", float64(i)*100/float64(len(colors)-1))
		}
		g.ColorStops = append(g.ColorStops, ColorStop{Color: c, Position: pos})
	}
	return g
}

func (g Gradient) CSS() string {
	var b strings.Builder
	b.WriteString("linear-gradient(")
	if g.Direction != "" {
		b.WriteString(g.Direction)
	}
	for i, cs := range g.ColorStops {
		if i > 0 || g.Direction != "" {
			b.WriteString(", ")
		}
		b.WriteString(cs.Color)
		if cs.Position != "" {
			b.WriteString(" " + cs.Position)
		}
	}
	b.WriteString(")")
	return b.String()
}
