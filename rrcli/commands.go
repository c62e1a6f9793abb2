package rrcli

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"sort"
	"text/tabwriter"

	"oss.terrastruct.com/util-go/xbrowser"
	"oss.terrastruct.com/util-go/xdefer"
	"oss.terrastruct.com/util-go/xmain"

	"github.com/railroad-think/rrtheme/rrpage"
	"github.com/railroad-think/rrtheme/rrpieces"
	"github.com/railroad-think/rrtheme/rrquery"
)

func tokensCmd(ctx context.Context, ms *xmain.State, opts options) error {
	t, err := initTheme(ctx, ms, opts)
	if err != nil {
		return err
	}
	tw := tabwriter.NewWriter(ms.Stdout, 0, 4, 2, ' ', 0)
	for _, k := range t.Config.Contract.Keys {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", k, t.Config.Contract.Vars[k], t.Config.Values.Values[k])
	}
	return tw.Flush()
}

func previewCmd(ctx context.Context, ms *xmain.State, opts options, args []string) (err error) {
	defer xdefer.Errorf(&err, "failed to preview")

	if len(args) > 1 {
		return xmain.UsageErrorf("preview accepts at most one output path")
	}
	outputPath := "theme-preview.html"
	if len(args) == 1 {
		outputPath = args[0]
	}
	if outputPath != "-" {
		outputPath = ms.AbsPath(outputPath)
	}

	t, err := initTheme(ctx, ms, opts)
	if err != nil {
		return err
	}
	b, err := t.Preview()
	if err != nil {
		return err
	}
	if err := ms.WritePath(outputPath, b); err != nil {
		return err
	}
	if outputPath == "-" {
		return nil
	}
	ms.Log.Success.Printf("wrote preview to %s", ms.HumanPath(outputPath))

	if ms.Env.Getenv("BROWSER") == "0" {
		return nil
	}
	url := "file://" + filepath.ToSlash(outputPath)
	if err := xbrowser.Open(ctx, ms.Env, url); err != nil {
		ms.Log.Warn.Printf("failed to open browser to %v: %v", url, err)
	}
	return nil
}

func embedCmd(ctx context.Context, ms *xmain.State, opts options, args []string) (err error) {
	defer xdefer.Errorf(&err, "failed to embed")

	if len(args) == 0 || len(args) > 2 {
		return xmain.UsageErrorf("embed must be passed the page and optionally an output path")
	}
	inputPath := args[0]
	if inputPath != "-" {
		inputPath = ms.AbsPath(inputPath)
	}
	outputPath := "-"
	if len(args) == 2 && args[1] != "-" {
		outputPath = ms.AbsPath(args[1])
	}

	t, err := initTheme(ctx, ms, opts)
	if err != nil {
		return err
	}
	css, err := t.CSS()
	if err != nil {
		return err
	}
	page, err := ms.ReadPath(inputPath)
	if err != nil {
		return err
	}
	res, err := rrpage.Embed(bytes.NewReader(page), rrpage.EmbedOptions{
		Mount:  opts.mount,
		CSS:    string(css),
		Search: opts.search,
	})
	if err != nil {
		return err
	}
	ms.Log.Info.Printf("hid %d elements (paywalled: %t)", res.Hidden, res.Paywalled)
	return ms.WritePath(outputPath, res.HTML)
}

func piecesCmd(ctx context.Context, ms *xmain.State, args []string) error {
	var tbl *rrpieces.Table
	switch len(args) {
	case 0:
		tbl = rrpieces.Default()
	case 1:
		inputPath := args[0]
		if inputPath != "-" {
			inputPath = ms.AbsPath(inputPath)
		}
		b, err := ms.ReadPath(inputPath)
		if err != nil {
			return err
		}
		tbl, err = rrpieces.Load(bytes.NewReader(b))
		if err != nil {
			return err
		}
	default:
		return xmain.UsageErrorf("pieces accepts at most one CSV path")
	}

	tw := tabwriter.NewWriter(ms.Stdout, 0, 4, 2, ' ', 0)
	for _, p := range tbl.Pieces() {
		kind := "rollable"
		if p.Placeable() {
			kind = "placeable"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", p.Code, p.Name, kind)
	}
	return tw.Flush()
}

func queryCmd(ctx context.Context, ms *xmain.State, args []string) error {
	if len(args) != 1 {
		return xmain.UsageErrorf("query must be passed exactly one URL or query string")
	}
	q, ok := rrquery.FromMount(rrquery.Mount{Search: args[0]})
	if !ok {
		q = rrquery.Parse(args[0])
	}

	keys := make([]string, 0, len(q))
	for k := range q {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(ms.Stdout, "%s=%s\n", k, q[k])
	}
	return nil
}
