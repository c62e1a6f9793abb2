package rrcolorscatalog

import "github.com/railroad-think/rrtheme/rrcolors"

// Railroad is the table the widget ships with: four tints and four shades around
// each base.
var Railroad = rrcolors.Source{
	Name:  "railroad",
	Tones: []string{"100", "200", "300", "400", "500", "600", "700", "800", "900"},
	Base:  rrcolors.DefaultBase,
	Hues: []rrcolors.Hue{
		{
			Name: "blue",
			Colors: []string{
				"#e3f4ff", "#aadeff", "#67c8ff", "#00aff5",
				"#0094d0",
				"#0077a8", "#005b81", "#003f5c", "#002437",
			},
		},
		{
			Name: "red",
			Colors: []string{
				"#feedeb", "#fcc6c1", "#fa9e96", "#f5716b",
				"#e44646",
				"#bd3033", "#932224", "#6a1517", "#41090a",
			},
		},
		{
			Name: "gray",
			Colors: []string{
				"#f1f1f1", "#d8d8d8", "#c0c0c0", "#a8a8a8",
				"#919191",
				"#747474", "#575757", "#3c3c3c", "#212121",
			},
		},
		{
			Name: "green",
			Colors: []string{
				"#cfffe0", "#5ffeaa", "#21ea90", "#1dd281",
				"#1bba72",
				"#15945a", "#0e6f42", "#074b2c", "#022915",
			},
		},
	},
	Aliases: []rrcolors.Alias{
		{Name: "info", Hue: "blue"},
		{Name: "success", Hue: "green"},
		{Name: "error", Hue: "red"},
	},
}
