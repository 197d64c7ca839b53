package cmd

import (
	"github.com/achilleasa/octocam/log"
	"github.com/urfave/cli"
)

var logger = log.New("octocam")

// Apply the configured log level; the -v and -vv flags take precedence.
func setupLogging(ctx *cli.Context, configLevel string) {
	if configLevel != "" {
		level, err := log.ParseLevel(configLevel)
		if err != nil {
			logger.Warningf("%v; using %s", err, log.GetLevel())
		} else {
			log.SetLevel(level)
		}
	}

	if ctx.GlobalBool("v") {
		log.SetLevel(log.Info)
	}

	if ctx.GlobalBool("vv") {
		log.SetLevel(log.Debug)
	}
}
