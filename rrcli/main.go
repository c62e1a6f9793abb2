package rrcli

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"cdr.dev/slog"
	"github.com/spf13/pflag"

	"oss.terrastruct.com/util-go/xdefer"
	"oss.terrastruct.com/util-go/xmain"

	"github.com/railroad-think/rrtheme/lib/log"
	timelib "github.com/railroad-think/rrtheme/lib/time"
	"github.com/railroad-think/rrtheme/lib/version"
	"github.com/railroad-think/rrtheme/rrcolors"
	"github.com/railroad-think/rrtheme/rrcolors/rrcolorscatalog"
	"github.com/railroad-think/rrtheme/rrlib"
)

type options struct {
	source   string
	catalog  string
	selector string
	prefix   string
	strict   bool
	format   string
	mount    string
	search   string
}

func Run(ctx context.Context, ms *xmain.State) (err error) {
	sourceFlag := ms.Opts.String("RR_SOURCE", "source", "s", "", "path to a .json or .yaml color table. When unset the built-in --catalog table is used.")
	catalogFlag := ms.Opts.String("RR_CATALOG", "catalog", "", rrcolorscatalog.Railroad.Name, "built-in color table to use when no --source is given")
	selectorFlag := ms.Opts.String("RR_SELECTOR", "selector", "", "", "CSS selector the theme is bound to (default .railroad-think)")
	prefixFlag := ms.Opts.String("RR_PREFIX", "prefix", "", "", "prefix for every CSS variable name, e.g. rr- gives --rr-blue")
	strictFlag, err := ms.Opts.Bool("RR_STRICT", "strict", "", false, "require every color to be a valid CSS color and warn about tones out of order")
	if err != nil {
		return err
	}
	formatFlag := ms.Opts.String("RR_FORMAT", "format", "f", "", "output format: css, json or ts. Defaults to the output file extension, or css.")
	watchFlag, err := ms.Opts.Bool("RR_WATCH", "watch", "w", false, "watch --source for changes and regenerate the output")
	if err != nil {
		return err
	}
	mountFlag := ms.Opts.String("RR_MOUNT", "mount", "m", "#railroad-think", "selector of the element embed mounts the widget to")
	searchFlag := ms.Opts.String("", "search", "", "", "location.search of the page given to embed, e.g. ?salesposter")
	browserFlag := ms.Opts.String("BROWSER", "browser", "", "", "browser executable that preview opens. Setting to 0 opens no browser.")
	debugFlag, err := ms.Opts.Bool("DEBUG", "debug", "d", false, "print debug logs.")
	if err != nil {
		return err
	}
	timeoutFlag, err := ms.Opts.Int64("RR_TIMEOUT", "timeout", "", 30, "the maximum number of seconds a single generation may take")
	if err != nil {
		return err
	}
	versionFlag, err := ms.Opts.Bool("", "version", "v", false, "get the version")
	if err != nil {
		return err
	}

	err = ms.Opts.Flags.Parse(ms.Opts.Args)
	if !errors.Is(err, pflag.ErrHelp) && err != nil {
		return xmain.UsageErrorf("failed to parse flags: %v", err)
	}
	if errors.Is(err, pflag.ErrHelp) {
		help(ms)
		return nil
	}

	if *debugFlag {
		ctx = log.Leveled(ctx, slog.LevelDebug)
		ms.Env.Setenv("DEBUG", "1")
	}
	if *browserFlag != "" {
		ms.Env.Setenv("BROWSER", *browserFlag)
	}
	if *versionFlag {
		fmt.Fprintln(ms.Stdout, version.Version)
		return nil
	}

	opts := options{
		source:   *sourceFlag,
		catalog:  *catalogFlag,
		selector: *selectorFlag,
		prefix:   *prefixFlag,
		strict:   *strictFlag,
		format:   *formatFlag,
		mount:    *mountFlag,
		search:   *searchFlag,
	}

	args := ms.Opts.Flags.Args()
	if len(args) > 0 {
		switch args[0] {
		case "version":
			if len(args) > 1 {
				return xmain.UsageErrorf("version subcommand accepts no arguments")
			}
			fmt.Fprintln(ms.Stdout, version.Version)
			return nil
		case "catalog":
			fmt.Fprint(ms.Stdout, rrcolorscatalog.CLIString())
			return nil
		case "tokens":
			return tokensCmd(ctx, ms, opts)
		case "preview":
			return previewCmd(ctx, ms, opts, args[1:])
		case "embed":
			return embedCmd(ctx, ms, opts, args[1:])
		case "pieces":
			return piecesCmd(ctx, ms, args[1:])
		case "query":
			return queryCmd(ctx, ms, args[1:])
		case "help":
			help(ms)
			return nil
		}
	}

	if len(args) > 1 {
		return xmain.UsageErrorf("too many arguments passed")
	}
	outputPath := "-"
	if len(args) == 1 {
		outputPath = args[0]
	}
	if outputPath != "-" {
		outputPath = ms.AbsPath(outputPath)
	}
	if opts.source != "" && opts.source != "-" {
		opts.source = ms.AbsPath(opts.source)
	}
	if opts.format == "" {
		opts.format = formatFromPath(outputPath)
	}
	if !validFormat(opts.format) {
		return xmain.UsageErrorf("unknown --format %q: expected css, json or ts", opts.format)
	}

	if *watchFlag {
		if opts.source == "" || opts.source == "-" {
			return xmain.UsageErrorf("-w[atch] requires a --source file")
		}
		if outputPath == "-" {
			return xmain.UsageErrorf("-w[atch] cannot be combined with writing to stdout")
		}
		w, err := newWatcher(ctx, ms, watcherOpts{
			options:    opts,
			outputPath: outputPath,
		})
		if err != nil {
			return err
		}
		return w.run()
	}

	ctx, cancel := timelib.WithTimeout(ctx, time.Duration(*timeoutFlag)*time.Second)
	defer cancel()

	start := time.Now()
	if err := generate(ctx, ms, opts, outputPath); err != nil {
		return err
	}
	if outputPath != "-" {
		ms.Log.Success.Printf("successfully generated %s in %s", ms.HumanPath(outputPath), time.Since(start))
	}
	return nil
}

func formatFromPath(p string) string {
	switch strings.ToLower(filepath.Ext(p)) {
	case ".json":
		return "json"
	case ".ts":
		return "ts"
	default:
		return "css"
	}
}

func validFormat(f string) bool {
	switch f {
	case "css", "json", "ts":
		return true
	}
	return false
}

func loadSource(ms *xmain.State, opts options) (*rrcolors.Source, error) {
	if opts.source == "" {
		src, ok := rrcolorscatalog.Find(opts.catalog)
		if !ok {
			return nil, xmain.UsageErrorf("--catalog %q could not be found. The available options are:\n%s", opts.catalog, rrcolorscatalog.CLIString())
		}
		return src, nil
	}
	sourcePath := opts.source
	if sourcePath != "-" {
		sourcePath = ms.AbsPath(sourcePath)
	}
	b, err := ms.ReadPath(sourcePath)
	if err != nil {
		return nil, err
	}
	return rrcolors.Parse(sourcePath, bytes.NewReader(b))
}

func initTheme(ctx context.Context, ms *xmain.State, opts options) (*rrlib.Theme, error) {
	src, err := loadSource(ms, opts)
	if err != nil {
		return nil, err
	}
	ms.Log.Debug.Printf("using color table %s (%d hues)", src.Name, len(src.Hues))
	return rrlib.Init(ctx, &rrlib.InitOptions{
		Source:       src,
		Selector:     opts.selector,
		Prefix:       opts.prefix,
		StrictColors: opts.strict,
	})
}

func render(t *rrlib.Theme, format string) ([]byte, error) {
	switch format {
	case "json":
		return t.JSON()
	case "ts":
		return t.TS()
	default:
		return t.CSS()
	}
}

func generate(ctx context.Context, ms *xmain.State, opts options, outputPath string) (err error) {
	defer xdefer.Errorf(&err, "failed to generate theme")

	t, err := initTheme(ctx, ms, opts)
	if err != nil {
		return err
	}
	out, err := render(t, opts.format)
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	return ms.WritePath(outputPath, out)
}
