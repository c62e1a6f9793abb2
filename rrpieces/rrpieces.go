// Package rrpieces loads the board piece table: display names and the hex codes
// the solver uses. Pieces whose name starts with X are special pieces that can
// only be placed, never rolled.
package rrpieces

import (
	"bytes"
	_ "embed"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/exp/slices"
	"oss.terrastruct.com/util-go/xdefer"
)

//go:embed pieces.csv
var piecesCSV []byte

type Piece struct {
	Name string `json:"name"`
	Code string `json:"code"`
}

func (p Piece) Placeable() bool {
	return strings.HasPrefix(p.Name, "X")
}

type Table struct {
	pieces []Piece
	codes  map[string]string
	names  map[string]string
}

// Default returns the table bundled with the widget.
func Default() *Table {
	t, err := Load(bytes.NewReader(piecesCSV))
	if err != nil {
		panic(err)
	}
	return t
}

// Load reads a CSV with a name,code header. Column order may vary.
func Load(r io.Reader) (_ *Table, err error) {
	defer xdefer.Errorf(&err, "failed to load pieces")

	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, errors.New("missing header")
	}
	if err != nil {
		return nil, err
	}
	nameCol := slices.Index(header, "name")
	codeCol := slices.Index(header, "code")
	if nameCol == -1 || codeCol == -1 {
		return nil, fmt.Errorf("header %v must contain name and code", header)
	}

	t := &Table{
		codes: make(map[string]string),
		names: make(map[string]string),
	}
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		line, _ := cr.FieldPos(0)
		p := Piece{Name: rec[nameCol], Code: strings.ToUpper(rec[codeCol])}
		if p.Name == "" || p.Code == "" {
			return nil, fmt.Errorf("line %d: empty name or code", line)
		}
		if _, ok := t.codes[p.Name]; ok {
			return nil, fmt.Errorf("line %d: duplicate name %q", line, p.Name)
		}
		if _, ok := t.names[p.Code]; ok {
			return nil, fmt.Errorf("line %d: duplicate code %q", line, p.Code)
		}
		t.pieces = append(t.pieces, p)
		t.codes[p.Name] = p.Code
		t.names[p.Code] = p.Name
	}
	return t, nil
}

func (t *Table) Pieces() []Piece {
	return slices.Clone(t.pieces)
}

// All returns the piece names in table order.
func (t *Table) All() []string {
	return t.filter(func(Piece) bool { return true })
}

func (t *Table) Rollable() []string {
	return t.filter(func(p Piece) bool { return !p.Placeable() })
}

func (t *Table) Placeable() []string {
	return t.filter(Piece.Placeable)
}

func (t *Table) filter(fn func(Piece) bool) []string {
	var out []string
	for _, p := range t.pieces {
		if fn(p) {
			out = append(out, p.Name)
		}
	}
	return out
}

func (t *Table) Code(name string) (string, bool) {
	c, ok := t.codes[name]
	return c, ok
}

func (t *Table) Name(code string) (string, bool) {
	n, ok := t.names[strings.ToUpper(code)]
	return n, ok
}
