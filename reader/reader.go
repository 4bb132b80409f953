package reader

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Erdk/luxor/builder"
	"github.com/Erdk/luxor/scene"
)

// Load a scene description document and build the scene graph it describes.
// The document's angle_unit field, when present, overrides the supplied
// builder options.
func Load(r io.Reader, opts builder.Options) (*scene.Graph, error) {
	var doc sceneDoc
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("scene description: %v", err)
	}

	switch doc.AngleUnit {
	case "":
	case "degrees":
		opts.AngleUnit = builder.Degrees
	case "radians":
		opts.AngleUnit = builder.Radians
	default:
		return nil, scene.NewOptionError("angle_unit", doc.AngleUnit, []string{"degrees", "radians"})
	}

	graph := scene.NewGraph()
	b := builder.New(graph, opts)
	if err := doc.apply(b); err != nil {
		return nil, err
	}
	return graph, nil
}

// Load a scene description from a file.
func LoadFile(path string, opts builder.Options) (*scene.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	graph, err := Load(f, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %v", path, err)
	}
	return graph, nil
}
