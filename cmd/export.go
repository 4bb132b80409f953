package cmd

import (
	"errors"
	"path/filepath"
	"strings"

	"github.com/urfave/cli"

	"github.com/Erdk/luxor/builder"
	"github.com/Erdk/luxor/reader"
	"github.com/Erdk/luxor/scene"
	"github.com/Erdk/luxor/writer"
)

// Compile a scene description into the renderer's linked text files.
func ExportScene(ctx *cli.Context) error {
	setupLogging(ctx)

	if ctx.NArg() != 1 {
		return errors.New("missing scene description file")
	}
	sceneFile := ctx.Args().First()

	graph, err := reader.LoadFile(sceneFile, builderOptions(ctx))
	if err != nil {
		return err
	}

	// Collect mesh payloads in memory so they flow through the export
	// mapping together with the manifest and its companion files.
	registry := scene.NewMemRegistry()
	graph.Config.MeshStreamer = registry.Streamer()
	graph.Config.MeshStreamed = registry.Probe()
	graph.Config.MeshCollector = registry.Collector()

	base := ctx.String("out")
	if base == "" {
		base = strings.TrimSuffix(filepath.Base(sceneFile), filepath.Ext(sceneFile))
	}

	mapping, err := writer.Build(graph, writer.Options{
		BaseName: base,
		Split:    ctx.Bool("split"),
	})
	if err != nil {
		return err
	}

	if ctx.Bool("archive") {
		return writer.WriteArchive(mapping, base+".zip")
	}
	return writer.WriteFiles(mapping, ctx.String("dir"))
}

func builderOptions(ctx *cli.Context) builder.Options {
	opts := builder.Options{AngleUnit: builder.Degrees}
	if ctx.Bool("radians") {
		opts.AngleUnit = builder.Radians
	}
	return opts
}
