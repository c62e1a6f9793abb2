package main

import (
	"context"

	"oss.terrastruct.com/util-go/xmain"

	"github.com/railroad-think/rrtheme/lib/log"
	"github.com/railroad-think/rrtheme/rrcli"
)

func main() {
	xmain.Main(func(ctx context.Context, ms *xmain.State) error {
		return rrcli.Run(log.Stderr(ctx), ms)
	})
}
