package rrcolors

import "fmt"

type ConfigKind string

const (
	MissingBase   ConfigKind = "missing_base"
	DuplicateHue  ConfigKind = "duplicate_hue"
	DuplicateTone ConfigKind = "duplicate_tone"
	PathCollision ConfigKind = "path_collision"
	UnknownAlias  ConfigKind = "unknown_alias"
	EmptyName     ConfigKind = "empty_name"
	InvalidName   ConfigKind = "invalid_name"
)

// ConfigurationError reports a table that cannot produce a valid theme.
type ConfigurationError struct {
	Kind    ConfigKind `json:"kind"`
	Hue     string     `json:"hue,omitempty"`
	Message string     `json:"message"`
}

func (e *ConfigurationError) Error() string {
	if e.Hue != "" {
		return fmt.Sprintf("configuration error (%s): hue %q: %s", e.Kind, e.Hue, e.Message)
	}
	return fmt.Sprintf("configuration error (%s): %s", e.Kind, e.Message)
}

// DataShapeError reports a hue whose values do not line up with the tone labels.
type DataShapeError struct {
	Hue     string `json:"hue"`
	Got     int    `json:"got"`
	Want    int    `json:"want"`
	Message string `json:"message,omitempty"`
}

func (e *DataShapeError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("data shape error: hue %q: %s", e.Hue, e.Message)
	}
	return fmt.Sprintf("data shape error: hue %q has %d colors for %d tone labels", e.Hue, e.Got, e.Want)
}
