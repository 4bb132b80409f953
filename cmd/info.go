package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"

	"github.com/Erdk/luxor/reader"
	"github.com/Erdk/luxor/scene"
)

// Display a summary of a scene description's entity groups.
func SceneInfo(ctx *cli.Context) error {
	setupLogging(ctx)

	if ctx.NArg() != 1 {
		return errors.New("missing scene description file")
	}

	graph, err := reader.LoadFile(ctx.Args().First(), builderOptions(ctx))
	if err != nil {
		return err
	}

	logger.Noticef("scene information:\n%s", sceneStats(graph))
	return nil
}

// Build a tabular representation of graph statistics.
func sceneStats(graph *scene.Graph) string {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetAutoFormatHeaders(false)
	table.SetHeader([]string{"Group", "Entities", "Variants"})

	total := 0
	for _, group := range scene.SingletonGroups {
		variant := "---"
		if e := graph.Singleton(group); e != nil {
			variant = e.Type
			total++
		}
		table.Append([]string{group.String(), fmt.Sprintf("%d", graph.Len(group)), variant})
	}
	for _, group := range scene.MultiGroups {
		variants := make(map[string]struct{})
		for _, id := range graph.IDs(group) {
			e, _ := graph.Entity(group, id)
			variants[e.Type] = struct{}{}
		}
		names := make([]string, 0, len(variants))
		for name := range variants {
			names = append(names, name)
		}
		sort.Strings(names)
		summary := "---"
		if len(names) > 0 {
			summary = strings.Join(names, ", ")
		}
		table.Append([]string{group.String(), fmt.Sprintf("%d", graph.Len(group)), summary})
		total += graph.Len(group)
	}
	table.SetFooter([]string{"Total", fmt.Sprintf("%d", total), " "})

	table.Render()
	return buf.String()
}
