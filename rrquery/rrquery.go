// Package rrquery parses the query parameters handed to the widget's mount point.
package rrquery

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	timelib "github.com/railroad-think/rrtheme/lib/time"
)

// Value is either a string or, for a parameter given without a value, a bare flag.
type Value struct {
	Str  string `json:"str,omitempty"`
	Flag bool   `json:"flag,omitempty"`
}

func (v Value) String() string {
	if v.Flag {
		return "true"
	}
	return v.Str
}

type Query map[string]Value

// Parse reads a raw query string without the leading '?'. Keys and values are
// percent-decoded; "+" is kept literally. The data parameter is decoded twice since
// hosts embed it already encoded.
func Parse(raw string) Query {
	q := make(Query)
	for _, pair := range strings.Split(raw, "&") {
		if pair == "" {
			continue
		}
		k, v, _ := strings.Cut(pair, "=")
		k = unescape(k)
		v = unescape(v)
		if v == "" {
			q[k] = Value{Flag: true}
		} else {
			q[k] = Value{Str: v}
		}
	}
	if d, ok := q["data"]; ok && !d.Flag {
		q["data"] = Value{Str: unescape(d.Str)}
	}
	return q
}

func unescape(s string) string {
	u, err := url.PathUnescape(s)
	if err != nil {
		return s
	}
	return u
}

// Mount describes where the widget was mounted.
type Mount struct {
	// Origin is the data-origin attribute of the mount's parent, if present.
	Origin    string
	HasOrigin bool
	// Search is the page's location.search.
	Search string
}

// FromMount picks the URL to read parameters from: the parent's data-origin when set,
// otherwise the page's own search string. ok is false when there is nothing to parse.
func FromMount(m Mount) (_ Query, ok bool) {
	u := m.Search
	if m.HasOrigin {
		u = m.Origin
	}
	if u == "" {
		return nil, false
	}
	parts := strings.Split(u, "?")
	if len(parts) < 2 {
		return nil, false
	}
	return Parse(parts[1]), true
}

func (q Query) Get(key string) (string, bool) {
	v, ok := q[key]
	if !ok || v.Flag {
		return "", false
	}
	return v.Str, true
}

// Has reports whether key was given at all, with or without a value.
func (q Query) Has(key string) bool {
	_, ok := q[key]
	return ok
}

// Date parses key as an ISO date.
func (q Query) Date(key string) (time.Time, error) {
	s, ok := q.Get(key)
	if !ok {
		return time.Time{}, fmt.Errorf("query parameter %q has no value", key)
	}
	return timelib.ParseISODate(s)
}
