package main

import (
	"os"

	"github.com/urfave/cli"

	"github.com/Erdk/luxor/cmd"
	"github.com/Erdk/luxor/log"
)

func main() {
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}

	app := cli.NewApp()
	app.Name = "luxor"
	app.Usage = "compile scene descriptions into renderer input files"
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
	}
	app.Commands = []cli.Command{
		{
			Name:  "export",
			Usage: "compile a scene description into linked renderer files",
			Description: `
Parse a YAML scene description, build the scene graph and compile it into the
renderer's statement grammar. The output is a manifest file plus optional
companion files for materials, geometry and volumes, written either as loose
files or packaged into a single compressed archive.`,
			ArgsUsage: "scene.yaml",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "out, o",
					Usage: "base name for the generated files (defaults to the scene file name)",
				},
				cli.StringFlag{
					Name:  "dir, d",
					Usage: "destination directory for loose file output",
				},
				cli.BoolFlag{
					Name:  "split",
					Usage: "write materials, geometry and volumes as separate linked files",
				},
				cli.BoolFlag{
					Name:  "archive",
					Usage: "package all output files into a single zip archive",
				},
				cli.BoolFlag{
					Name:  "radians",
					Usage: "interpret angle fields in the scene description as radians",
				},
			},
			Action: cmd.ExportScene,
		},
		{
			Name:      "info",
			Usage:     "display a summary of a scene description",
			ArgsUsage: "scene.yaml",
			Flags: []cli.Flag{
				cli.BoolFlag{
					Name:  "radians",
					Usage: "interpret angle fields in the scene description as radians",
				},
			},
			Action: cmd.SceneInfo,
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.New("luxor").Errorf("%v", err)
		os.Exit(1)
	}
}
