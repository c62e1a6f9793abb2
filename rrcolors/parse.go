package rrcolors

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
	"oss.terrastruct.com/util-go/xdefer"
)

// Parse reads a color table. The format is chosen by the extension of path:
// .json, or .yaml/.yml. An empty path is read as YAML, which accepts JSON too.
func Parse(path string, r io.Reader) (_ *Source, err error) {
	defer xdefer.Errorf(&err, "failed to parse color source %s", path)

	b, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	src := &Source{}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		dec := json.NewDecoder(bytes.NewReader(b))
		dec.DisallowUnknownFields()
		err = dec.Decode(src)
	case ".yaml", ".yml", "":
		dec := yaml.NewDecoder(bytes.NewReader(b))
		dec.KnownFields(true)
		err = dec.Decode(src)
		if err == io.EOF {
			err = fmt.Errorf("empty document")
		}
	default:
		return nil, fmt.Errorf("unsupported extension %q: expected .json, .yaml or .yml", ext)
	}
	if err != nil {
		return nil, err
	}
	if src.Name == "" && path != "" {
		src.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return src, nil
}
