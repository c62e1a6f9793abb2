// Package rrtheme binds a theme contract to a selector and renders it for the
// widget's stylesheet and style authoring code.
package rrtheme

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/railroad-think/rrtheme/rrcolors"
	"github.com/railroad-think/rrtheme/rrcontract"
)

const DefaultSelector = ".railroad-think"

type Config struct {
	Selector string
	Contract *rrcontract.Contract
	Values   *rrcontract.Bound
}

func (cfg Config) validate() error {
	if strings.TrimSpace(cfg.Selector) == "" {
		return fmt.Errorf("theme selector is empty")
	}
	if strings.ContainsAny(cfg.Selector, "{};<\r\n") {
		return fmt.Errorf("invalid theme selector %q", cfg.Selector)
	}
	if err := rrcontract.CheckParity(cfg.Contract, cfg.Values); err != nil {
		return err
	}
	if !rrcolors.SafeName(cfg.Contract.Prefix) {
		return fmt.Errorf("invalid CSS variable prefix %q", cfg.Contract.Prefix)
	}
	for _, key := range cfg.Contract.Keys {
		if !rrcolors.SafeName(key) {
			return fmt.Errorf("invalid theme key %q", key)
		}
		if v := cfg.Values.Values[key]; !rrcolors.SafeValue(v) {
			return fmt.Errorf("theme value %q of %s cannot be written as a CSS value", v, key)
		}
	}
	return nil
}

// Apply writes the bound theme as a single CSS rule on cfg.Selector.
func Apply(w io.Writer, cfg Config) error {
	if err := cfg.validate(); err != nil {
		return err
	}

	var b bytes.Buffer
	fmt.Fprintf(&b, "%s {\n", cfg.Selector)
	for _, key := range cfg.Contract.Keys {
		fmt.Fprintf(&b, "  %s: %s;\n", cfg.Contract.VarName(key), cfg.Values.Values[key])
	}
	b.WriteString("}\n")

	_, err := w.Write(b.Bytes())
	return err
}

func RenderCSS(cfg Config) ([]byte, error) {
	var b bytes.Buffer
	if err := Apply(&b, cfg); err != nil {
		return nil, err
	}
	return b.Bytes(), nil
}

// RenderJSON writes {"selector": ..., "contract": {...}, "values": {...}} with keys in
// contract order.
func RenderJSON(cfg Config) ([]byte, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	var b bytes.Buffer
	sel, err := json.Marshal(cfg.Selector)
	if err != nil {
		return nil, err
	}
	fmt.Fprintf(&b, "{\n  \"selector\": %s,\n", sel)
	if err := writeObject(&b, "contract", cfg.Contract.Keys, cfg.Contract.Vars); err != nil {
		return nil, err
	}
	b.WriteString(",\n")
	if err := writeObject(&b, "values", cfg.Contract.Keys, cfg.Values.Values); err != nil {
		return nil, err
	}
	b.WriteString("\n}\n")
	return b.Bytes(), nil
}

func writeObject(b *bytes.Buffer, name string, keys []string, m map[string]string) error {
	fmt.Fprintf(b, "  %q: {", name)
	for i, k := range keys {
		kb, err := json.Marshal(k)
		if err != nil {
			return err
		}
		vb, err := json.Marshal(m[k])
		if err != nil {
			return err
		}
		if i > 0 {
			b.WriteByte(',')
		}
		fmt.Fprintf(b, "\n    %s: %s", kb, vb)
	}
	if len(keys) > 0 {
		b.WriteString("\n  ")
	}
	b.WriteString("}")
	return nil
}

// RenderTS writes a module exporting the contract placeholders as `vars`.
func RenderTS(c *rrcontract.Contract) ([]byte, error) {
	if c == nil {
		return nil, fmt.Errorf("no theme contract")
	}

	var b bytes.Buffer
	b.WriteString("export const vars = {\n")
	for _, k := range c.Keys {
		kb, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		vb, err := json.Marshal(c.Vars[k])
		if err != nil {
			return nil, err
		}
		fmt.Fprintf(&b, "  %s: %s,\n", kb, vb)
	}
	b.WriteString("} as const;\n\nexport type Token = keyof typeof vars;\n")
	return b.Bytes(), nil
}
