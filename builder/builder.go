package builder

import (
	"math"

	"github.com/Erdk/luxor/log"
	"github.com/Erdk/luxor/scene"
)

// AngleUnit selects how angle fields in caller-supplied configuration are
// interpreted.
type AngleUnit int

const (
	Degrees AngleUnit = iota
	Radians
)

// Options configures a builder. The angle unit is threaded explicitly
// through every constructor rather than held as process-wide state.
type Options struct {
	AngleUnit AngleUnit
}

// Builder is the entity catalog: typed constructors that validate caller
// configuration against the supported option sets and insert entities into
// the scene graph it owns.
type Builder struct {
	graph  *scene.Graph
	opts   Options
	logger log.Logger
}

// Create a builder targeting the given graph.
func New(graph *scene.Graph, opts Options) *Builder {
	return &Builder{
		graph:  graph,
		opts:   opts,
		logger: log.New("builder"),
	}
}

// Return the graph being built.
func (b *Builder) Graph() *scene.Graph {
	return b.graph
}

// Convert a caller-supplied angle to the degrees the grammar expects.
func (b *Builder) angle(v float64) float64 {
	if b.opts.AngleUnit == Radians {
		return v * 180.0 / math.Pi
	}
	return v
}

// Validate that a numeric field is not negative.
func nonNegative(field string, v float64) error {
	if v < 0 {
		return scene.NewValidationError(field, "value must be a non-negative number")
	}
	return nil
}

// Validate a value against an enumerated option set.
func oneOf(field, got string, allowed []string) error {
	for _, a := range allowed {
		if a == got {
			return nil
		}
	}
	return scene.NewOptionError(field, got, allowed)
}
