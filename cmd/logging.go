package cmd

import (
	"github.com/Erdk/luxor/log"
	"github.com/urfave/cli"
)

var logger = log.New("luxor")

func setupLogging(ctx *cli.Context) {
	if ctx.GlobalBool("v") {
		log.SetLevel(log.Info)
	}

	if ctx.GlobalBool("vv") {
		log.SetLevel(log.Debug)
	}
}
