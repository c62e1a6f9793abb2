// Package rrpage prepares a host article page for the widget: it detects the
// publisher's paywall and hides the article content around the mount point so the
// widget takes over that part of the page.
package rrpage

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
	"oss.terrastruct.com/util-go/xdefer"
)

const (
	stateMarker     = "__PRELOADED_STATE__"
	salesposterMark = "salesposter"
)

var loginRe = regexp.MustCompile(`(?i)logg inn`)

type preloadedState struct {
	Page struct {
		Compositions []json.RawMessage `json:"compositions"`
	} `json:"page"`
	Location struct {
		Pathname string `json:"pathname"`
	} `json:"location"`
}

// IsPaywalled reports whether the article is behind the paywall. search is the page's
// location.search; a salesposter parameter forces the paywall on.
func IsPaywalled(doc *goquery.Document, search string) bool {
	if strings.Contains(search, salesposterMark) {
		return true
	}
	state, ok := findState(doc)
	if !ok {
		return false
	}
	if len(state.Page.Compositions) > 0 && bytes.Contains(state.Page.Compositions[0], []byte(salesposterMark)) {
		return true
	}
	return strings.Contains(state.Location.Pathname, salesposterMark)
}

func findState(doc *goquery.Document) (*preloadedState, bool) {
	var state *preloadedState
	doc.Find("script").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		text := s.Text()
		i := strings.Index(text, stateMarker)
		if i == -1 {
			return true
		}
		j := strings.IndexByte(text[i:], '{')
		if j == -1 {
			return true
		}
		st := &preloadedState{}
		if err := json.NewDecoder(strings.NewReader(text[i+j:])).Decode(st); err != nil {
			return true
		}
		state = st
		return false
	})
	return state, state != nil
}

// HideSiblings hides every element next to the mount's parent except the parent
// itself and login prompts. On a paywalled page headings and divs are hidden too
// unless they hold a login prompt or the sales poster. It returns the number of
// elements hidden.
func HideSiblings(doc *goquery.Document, mountSelector string, paywalled bool) (int, error) {
	mount := doc.Find(mountSelector).First()
	if mount.Length() == 0 {
		return 0, fmt.Errorf("mount %q not found", mountSelector)
	}
	parent := mount.Parent()
	if parent.Length() == 0 || parent.Parent().Length() == 0 {
		return 0, nil
	}

	isSelf := func(s *goquery.Selection) bool { return s.Nodes[0] == parent.Nodes[0] }
	isLogin := func(s *goquery.Selection) bool { return loginRe.MatchString(s.Text()) }
	isSalesposter := func(s *goquery.Selection) bool { return s.Children().First().Is("iframe") }

	hidden := make(map[*html.Node]struct{})
	siblings := parent.Parent().Children()
	siblings.Each(func(_ int, s *goquery.Selection) {
		if !isSelf(s) && !isLogin(s) {
			hide(s, hidden)
		}
	})
	if paywalled {
		siblings.Each(func(_ int, s *goquery.Selection) {
			if s.Is("h1, div") && !(isLogin(s) || isSalesposter(s) || isSelf(s)) {
				hide(s, hidden)
			}
		})
	}
	return len(hidden), nil
}

func hide(s *goquery.Selection, hidden map[*html.Node]struct{}) {
	if _, ok := hidden[s.Nodes[0]]; ok {
		return
	}
	hidden[s.Nodes[0]] = struct{}{}

	style := strings.TrimSpace(s.AttrOr("style", ""))
	if style != "" && !strings.HasSuffix(style, ";") {
		style += ";"
	}
	if style != "" {
		style += " "
	}
	s.SetAttr("style", style+"display: none;")
}

type EmbedOptions struct {
	// Mount selects the element the widget mounts to.
	Mount string
	// CSS is injected into the page head.
	CSS string
	// Search is the page's location.search.
	Search string
}

type EmbedResult struct {
	HTML      []byte
	Paywalled bool
	Hidden    int
}

// Embed rewrites an article page so that it shows the widget in place of the article.
func Embed(r io.Reader, opts EmbedOptions) (_ *EmbedResult, err error) {
	defer xdefer.Errorf(&err, "failed to embed into page")

	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, err
	}

	res := &EmbedResult{
		Paywalled: IsPaywalled(doc, opts.Search),
	}
	res.Hidden, err = HideSiblings(doc, opts.Mount, res.Paywalled)
	if err != nil {
		return nil, err
	}

	if opts.CSS != "" {
		if strings.Contains(strings.ToLower(opts.CSS), "</style") {
			return nil, fmt.Errorf("stylesheet would close its style element")
		}
		style := &html.Node{Type: html.ElementNode, Data: "style"}
		style.AppendChild(&html.Node{Type: html.TextNode, Data: opts.CSS})
		head := doc.Find("head").First()
		if head.Length() == 0 {
			return nil, fmt.Errorf("page has no head")
		}
		head.AppendNodes(style)
	}

	var b bytes.Buffer
	for _, n := range doc.Nodes {
		if err := html.Render(&b, n); err != nil {
			return nil, err
		}
	}
	res.HTML = b.Bytes()
	return res, nil
}
