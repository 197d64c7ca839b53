package cmd

import (
	"github.com/urfave/cli"
)

// NewApp assembles the command line application.
func NewApp() *cli.App {
	app := cli.NewApp()
	app.Name = "octocam"
	app.Usage = "cull octree indexed scenes against a free camera frustum"
	app.Version = "0.1.0"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "vv",
			Usage: "enable even more verbose logging",
		},
		cli.StringFlag{
			Name:  "config, c",
			Usage: "load scene config from a YAML file or http(s) URL",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:  "cull",
			Usage: "list the objects visible from the camera",
			Description: `
Build the scene described by the config, position the camera and print the
objects that lie inside its view frustum. Configured lights are culled as
additional views.`,
			Flags: append([]cli.Flag{
				cli.BoolFlag{
					Name:  "json",
					Usage: "emit the report as JSON",
				},
			}, sceneFlags...),
			Action: Cull,
		},
		{
			Name:  "fly",
			Usage: "fly the camera through the scene",
			Description: `
Drive the camera with a scripted sequence of input events, one event per
frame, and report the culling statistics of each frame.

Script tokens: w s a d (move), [ ] (down/up), q esc (quit),
look:dx:dy (rotate), press, release, move:x:y (cursor). Any token
can be repeated with a *N suffix, e.g. "w*20,look:100:0,d*5".`,
			Flags: append([]cli.Flag{
				cli.StringFlag{
					Name:  "script, s",
					Usage: "comma separated input script",
				},
				cli.IntFlag{
					Name:  "frames, f",
					Usage: "number of frames to render; defaults to one frame per script event",
				},
				cli.DurationFlag{
					Name:  "interval",
					Usage: "delay between frames",
				},
				cli.BoolFlag{
					Name:  "labels",
					Usage: "log the screen position of visible objects",
				},
				cli.StringFlag{
					Name:  "metrics-addr",
					Usage: "expose prometheus metrics on this address while flying",
				},
			}, sceneFlags...),
			Action: Fly,
		},
		{
			Name:  "tree",
			Usage: "dump the octree nodes of the scene",
			Flags: append([]cli.Flag{
				cli.BoolFlag{
					Name:  "leaves",
					Usage: "only list leaf nodes",
				},
				cli.IntFlag{
					Name:  "limit",
					Usage: "maximum number of nodes to list",
				},
			}, sceneFlags...),
			Action: Tree,
		},
	}

	return app
}
