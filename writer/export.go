package writer

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/Erdk/luxor/compiler"
	"github.com/Erdk/luxor/log"
	"github.com/Erdk/luxor/scene"
)

// Logical ids of the well-known export mapping entries. Streamed meshes are
// added under their own entity ids.
const (
	ManifestID  = "manifest"
	MaterialsID = "materials"
	GeometryID  = "geometry"
	VolumesID   = "volumes"
)

// Options controls export assembly.
type Options struct {
	// Base output name without extension; file paths derive from it.
	BaseName string

	// In split mode materials, geometry and volumes compile to their own
	// companion files and the manifest references them with include
	// directives. Inline mode embeds them directly.
	Split bool
}

// Compile a scene graph into an export mapping: a manifest entry, companion
// section entries in split mode, and one entry per streamed mesh payload.
func Build(g *scene.Graph, opts Options) (*Mapping, error) {
	logger := log.New("writer")
	start := time.Now()

	base := opts.BaseName
	if base == "" {
		base = "scene"
	}

	c := compiler.New(g)

	sections := map[string]string{}
	for _, section := range []struct {
		id    string
		group scene.Group
	}{
		{MaterialsID, scene.GroupMaterials},
		{GeometryID, scene.GroupGeometry},
		{VolumesID, scene.GroupVolumes},
	} {
		body, err := c.CompileGroup(section.group)
		if err != nil {
			return nil, err
		}
		sections[section.id] = body
	}

	manifest, err := buildManifest(g, c, base, opts.Split, sections)
	if err != nil {
		return nil, err
	}

	mapping := NewMapping()
	mapping.Add(ManifestID, base+".lxs", StringBody(manifest))
	if opts.Split {
		for _, id := range []string{MaterialsID, GeometryID, VolumesID} {
			if sections[id] == "" {
				continue
			}
			mapping.Add(id, sectionPath(base, id), StringBody(sections[id]))
		}
	}

	// Fold streamed mesh payloads collected after all writers completed.
	if g.Config.MeshCollector != nil {
		artifacts := g.Config.MeshCollector(g)
		ids := make([]string, 0, len(artifacts))
		for id := range artifacts {
			ids = append(ids, id)
		}
		sort.Strings(ids)
		for _, id := range ids {
			art := artifacts[id]
			mapping.Add(id, art.Path, BytesBody(art.Body))
		}
	}

	logger.Noticef("assembled %d export entries in %d ms", mapping.Len(), time.Since(start).Nanoseconds()/1e6)
	return mapping, nil
}

var sectionExtensions = map[string]string{
	MaterialsID: ".lxm",
	GeometryID:  ".lxo",
	VolumesID:   ".lxv",
}

func sectionPath(base, id string) string {
	return base + sectionExtensions[id]
}

// Assemble the primary manifest: comments, include headers, the singleton
// blocks in their fixed order, then the world block. Lights always compile
// directly into the world block.
func buildManifest(g *scene.Graph, c *compiler.Compiler, base string, split bool, sections map[string]string) (string, error) {
	var buf strings.Builder

	for _, comment := range g.Comments {
		fmt.Fprintf(&buf, "# %s\n", comment)
	}
	for _, header := range g.Includes.Headers {
		fmt.Fprintf(&buf, "Include \"%s\"\n", header)
	}

	for _, group := range scene.SingletonGroups {
		block, err := c.CompileGroup(group)
		if err != nil {
			return "", err
		}
		buf.WriteString(block)
	}

	buf.WriteString("WorldBegin\n")
	for _, partial := range g.Includes.Partials {
		fmt.Fprintf(&buf, "Include \"%s\"\n", partial)
	}

	lightGroups, err := c.CompileGroup(scene.GroupLightGroups)
	if err != nil {
		return "", err
	}
	buf.WriteString(lightGroups)

	textures, err := c.CompileGroup(scene.GroupTextures)
	if err != nil {
		return "", err
	}
	buf.WriteString(textures)

	for _, id := range []string{VolumesID, MaterialsID, GeometryID} {
		if sections[id] == "" {
			continue
		}
		if split {
			fmt.Fprintf(&buf, "Include \"%s\"\n", sectionPath(base, id))
		} else {
			buf.WriteString(sections[id])
		}
	}

	lights, err := c.CompileGroup(scene.GroupLights)
	if err != nil {
		return "", err
	}
	buf.WriteString(lights)
	buf.WriteString("WorldEnd\n")

	return buf.String(), nil
}
