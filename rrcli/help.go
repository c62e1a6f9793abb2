package rrcli

import (
	"fmt"
	"path/filepath"

	"oss.terrastruct.com/util-go/xmain"

	"github.com/railroad-think/rrtheme/lib/version"
)

func help(ms *xmain.State) {
	fmt.Fprintf(ms.Stdout, `%[1]s %[2]s
Usage:
  %[1]s [--source=colors.yaml] [--selector=.railroad-think] [--watch=false] [theme.css | theme.json | theme.ts]
  %[1]s tokens
  %[1]s preview [preview.html]
  %[1]s embed [--mount=#railroad-think] page.html [out.html]
  %[1]s pieces [pieces.csv]
  %[1]s query '?game=daily&debug'

%[1]s derives tint and shade scales from a color table and writes them as CSS custom
properties bound to --selector, as JSON, or as a TypeScript token module.
It writes to stdout if an output path is not provided.

Use - to have %[1]s read from stdin or write to stdout.

Flags:
%[3]s

Subcommands:
  %[1]s catalog - Lists built-in color tables
  %[1]s tokens - Lists every token with its CSS variable and value
  %[1]s preview - Writes an HTML swatch page and opens it in the browser
  %[1]s embed page.html - Hides the article around the mount point and injects the theme
  %[1]s pieces - Prints the board piece table
  %[1]s query - Parses a mount point query string
  %[1]s version - Prints the version
`, filepath.Base(ms.Name), version.Version, ms.Opts.Defaults())
}
