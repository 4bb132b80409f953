package compiler

import (
	"fmt"
	"strings"

	"github.com/Erdk/luxor/log"
	"github.com/Erdk/luxor/scene"
)

var singletonKeywords = map[scene.Group]string{
	scene.GroupRenderer:          "Renderer",
	scene.GroupAccelerator:       "Accelerator",
	scene.GroupSampler:           "Sampler",
	scene.GroupSurfaceIntegrator: "SurfaceIntegrator",
	scene.GroupVolumeIntegrator:  "VolumeIntegrator",
	scene.GroupPixelFilter:       "PixelFilter",
	scene.GroupFilm:              "Film",
	scene.GroupCamera:            "Camera",
}

// Compiler translates a fully populated scene graph into the renderer's
// statement grammar. Compilation never mutates the graph.
type Compiler struct {
	graph  *scene.Graph
	logger log.Logger
}

// Create a compiler for the given graph.
func New(graph *scene.Graph) *Compiler {
	return &Compiler{
		graph:  graph,
		logger: log.New("scene compiler"),
	}
}

// Compile one group into its statement block sequence. Groups with no
// entities compile to an empty string.
func (c *Compiler) CompileGroup(group scene.Group) (string, error) {
	if group.IsSingleton() {
		return c.compileSingleton(group)
	}

	switch group {
	case scene.GroupLights:
		return c.compileLights()
	case scene.GroupLightGroups:
		return c.compileLightGroups()
	case scene.GroupMaterials:
		return c.compileMaterials()
	case scene.GroupGeometry:
		return c.compileGeometry()
	case scene.GroupVolumes:
		return c.compileVolumes()
	case scene.GroupTextures:
		return c.compileTextures()
	}
	return "", scene.NewValidationError(group.String(), "unsupported group")
}

func (c *Compiler) compileSingleton(group scene.Group) (string, error) {
	e := c.graph.Singleton(group)
	if e == nil {
		return "", nil
	}

	var buf strings.Builder
	writeTransform(&buf, e.Meta.Transform)
	if err := c.writeBlock(&buf, singletonKeywords[group], e); err != nil {
		return "", fmt.Errorf("%s: %v", group, err)
	}
	return buf.String(), nil
}

// Emit a statement block: a header identifying the category and variant
// followed by one formatted line per parameter. Metadata fields are not
// parameters and never appear here.
func (c *Compiler) writeBlock(buf *strings.Builder, keyword string, e *scene.Entity) error {
	fmt.Fprintf(buf, "%s \"%s\"\n", keyword, e.Type)
	return c.writeParams(buf, e)
}

func (c *Compiler) writeParams(buf *strings.Builder, e *scene.Entity) error {
	for _, param := range e.Params {
		line, err := paramLine(param)
		if err != nil {
			return err
		}
		buf.WriteString(line)
		buf.WriteByte('\n')
	}
	return nil
}

func (c *Compiler) compileLightGroups() (string, error) {
	var buf strings.Builder
	for _, id := range c.graph.IDs(scene.GroupLightGroups) {
		fmt.Fprintf(&buf, "LightGroup \"%s\"\n", id)
	}
	return buf.String(), nil
}

func (c *Compiler) compileLights() (string, error) {
	var buf strings.Builder
	for _, id := range c.graph.IDs(scene.GroupLights) {
		e, _ := c.graph.Entity(scene.GroupLights, id)
		c.logger.Infof("compiling light %q", id)

		fmt.Fprintf(&buf, "AttributeBegin # %s\n", id)
		writeTransform(&buf, e.Meta.Transform)
		if e.Meta.Material != "" {
			fmt.Fprintf(&buf, "NamedMaterial \"%s\"\n", e.Meta.Material)
		}

		if e.Meta.Mesh != nil {
			// Area light: emission statement plus its companion mesh.
			if err := c.writeBlock(&buf, "AreaLightSource", e); err != nil {
				return "", fmt.Errorf("light %q: %v", id, err)
			}
			if err := c.writeMeshShape(&buf, id, e); err != nil {
				return "", err
			}
		} else {
			if err := c.writeBlock(&buf, "LightSource", e); err != nil {
				return "", fmt.Errorf("light %q: %v", id, err)
			}
		}
		buf.WriteString("AttributeEnd\n")
	}
	return buf.String(), nil
}

// Materials are emitted in dependency order: every material appears after
// all materials it references. Cycles are fatal.
func (c *Compiler) compileMaterials() (string, error) {
	order, err := dependencyOrder(c.graph, scene.GroupMaterials)
	if err != nil {
		return "", err
	}

	var buf strings.Builder
	for _, id := range order {
		e, _ := c.graph.Entity(scene.GroupMaterials, id)
		c.logger.Infof("compiling material %q", id)

		fmt.Fprintf(&buf, "MakeNamedMaterial \"%s\"\n", id)
		fmt.Fprintf(&buf, "\t\"string type\" [\"%s\"]\n", e.Type)
		if err := c.writeParams(&buf, e); err != nil {
			return "", fmt.Errorf("material %q: %v", id, err)
		}
	}
	return buf.String(), nil
}

func (c *Compiler) compileGeometry() (string, error) {
	var buf strings.Builder
	for _, id := range c.graph.IDs(scene.GroupGeometry) {
		e, _ := c.graph.Entity(scene.GroupGeometry, id)
		c.logger.Infof("compiling shape %q", id)

		fmt.Fprintf(&buf, "AttributeBegin # %s\n", id)
		writeTransform(&buf, e.Meta.Transform)
		if e.Meta.Material != "" {
			fmt.Fprintf(&buf, "NamedMaterial \"%s\"\n", e.Meta.Material)
		}
		interior, exterior := c.volumeRefs(e)
		if interior != "" {
			fmt.Fprintf(&buf, "Interior \"%s\"\n", interior)
		}
		if exterior != "" {
			fmt.Fprintf(&buf, "Exterior \"%s\"\n", exterior)
		}

		if e.Meta.Mesh != nil {
			if err := c.writeMeshShape(&buf, id, e); err != nil {
				return "", err
			}
		} else {
			if err := c.writeBlock(&buf, "Shape", e); err != nil {
				return "", fmt.Errorf("shape %q: %v", id, err)
			}
		}
		buf.WriteString("AttributeEnd\n")
	}
	return buf.String(), nil
}

// Resolve a geometry entity's interior/exterior volume references. The
// entity's own references win; unset ones fall back to the references carried
// by its named material.
func (c *Compiler) volumeRefs(e *scene.Entity) (string, string) {
	interior, exterior := e.Meta.Interior, e.Meta.Exterior
	if e.Meta.Material == "" || (interior != "" && exterior != "") {
		return interior, exterior
	}
	mat, exists := c.graph.Entity(scene.GroupMaterials, e.Meta.Material)
	if !exists {
		return interior, exterior
	}
	if interior == "" {
		interior = mat.Meta.Interior
	}
	if exterior == "" {
		exterior = mat.Meta.Exterior
	}
	return interior, exterior
}

func (c *Compiler) compileVolumes() (string, error) {
	var buf strings.Builder
	for _, id := range c.graph.IDs(scene.GroupVolumes) {
		e, _ := c.graph.Entity(scene.GroupVolumes, id)
		c.logger.Infof("compiling volume %q", id)

		fmt.Fprintf(&buf, "MakeNamedVolume \"%s\" \"%s\"\n", id, e.Type)
		if err := c.writeParams(&buf, e); err != nil {
			return "", fmt.Errorf("volume %q: %v", id, err)
		}
	}
	return buf.String(), nil
}

func (c *Compiler) compileTextures() (string, error) {
	var buf strings.Builder
	for _, id := range c.graph.IDs(scene.GroupTextures) {
		e, _ := c.graph.Entity(scene.GroupTextures, id)
		c.logger.Infof("compiling texture %q", id)

		fmt.Fprintf(&buf, "Texture \"%s\" \"color\" \"%s\"\n", id, e.Type)
		if err := c.writeParams(&buf, e); err != nil {
			return "", fmt.Errorf("texture %q: %v", id, err)
		}
	}
	return buf.String(), nil
}

// Emit a shape statement referencing the entity's companion mesh export and
// stream the mesh payload through the graph's configured streamer.
func (c *Compiler) writeMeshShape(buf *strings.Builder, id string, e *scene.Entity) error {
	if err := c.streamMesh(id, e); err != nil {
		return err
	}
	fmt.Fprintf(buf, "Shape \"mesh\"\n\t\"string filename\" [\"%s\"]\n", e.Meta.MeshPath)
	return nil
}

func (c *Compiler) streamMesh(id string, e *scene.Entity) error {
	if probe := c.graph.Config.MeshStreamed; probe != nil && probe(id, e.Meta.MeshPath) {
		c.logger.Debugf("mesh payload for %q already streamed to %q", id, e.Meta.MeshPath)
		return nil
	}

	streamer := c.graph.Config.MeshStreamer
	if streamer == nil {
		return scene.NewValidationError("mesh streamer", "no mesh streamer configured for entity %q", id)
	}

	sink, err := streamer(id, e.Meta.MeshPath)
	if err != nil {
		return fmt.Errorf("mesh %q: %v", id, err)
	}
	if err = writeMesh(sink, e.Meta.Mesh); err != nil {
		sink.Close()
		return fmt.Errorf("mesh %q: %v", id, err)
	}
	if err = sink.Close(); err != nil {
		return fmt.Errorf("mesh %q: %v", id, err)
	}

	c.logger.Infof("streamed mesh payload for %q to %q", id, e.Meta.MeshPath)
	return nil
}
