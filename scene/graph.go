package scene

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Group identifies a slot in the scene graph. Singleton groups hold at most
// one entity; multi groups hold an ordered, id-keyed collection.
type Group int

const (
	GroupRenderer Group = iota
	GroupAccelerator
	GroupSampler
	GroupSurfaceIntegrator
	GroupVolumeIntegrator
	GroupPixelFilter
	GroupFilm
	GroupCamera

	GroupLights
	GroupLightGroups
	GroupMaterials
	GroupGeometry
	GroupVolumes
	GroupTextures
)

// SingletonGroups lists all singleton slots in manifest emission order.
var SingletonGroups = []Group{
	GroupRenderer,
	GroupAccelerator,
	GroupSampler,
	GroupSurfaceIntegrator,
	GroupVolumeIntegrator,
	GroupPixelFilter,
	GroupFilm,
	GroupCamera,
}

// MultiGroups lists all multi-entity groups.
var MultiGroups = []Group{
	GroupLights,
	GroupLightGroups,
	GroupMaterials,
	GroupGeometry,
	GroupVolumes,
	GroupTextures,
}

var groupNames = map[Group]string{
	GroupRenderer:          "renderer",
	GroupAccelerator:       "accelerator",
	GroupSampler:           "sampler",
	GroupSurfaceIntegrator: "surface integrator",
	GroupVolumeIntegrator:  "volume integrator",
	GroupPixelFilter:       "pixel filter",
	GroupFilm:              "film",
	GroupCamera:            "camera",
	GroupLights:            "lights",
	GroupLightGroups:       "light groups",
	GroupMaterials:         "materials",
	GroupGeometry:          "geometry",
	GroupVolumes:           "volumes",
	GroupTextures:          "textures",
}

func (g Group) String() string {
	if name, exists := groupNames[g]; exists {
		return name
	}
	return fmt.Sprintf("group(%d)", int(g))
}

// Reports whether the group holds at most one entity.
func (g Group) IsSingleton() bool {
	return g <= GroupCamera
}

// Includes lists free-form paths referenced from the compiled output.
// Headers are emitted before the singleton blocks, partials inside the world
// block.
type Includes struct {
	Headers  []string
	Partials []string
}

// MeshStreamer provides a writable sink for a mesh payload keyed by id and
// destination path.
type MeshStreamer func(id, path string) (io.WriteCloser, error)

// MeshArtifact is a completed mesh payload and its destination path.
type MeshArtifact struct {
	Path string
	Body []byte
}

// MeshCollector retrieves completed mesh payloads after all streaming writers
// have finished. Optional; when unset, streamed meshes are assumed to have
// been written to their final destination by the streamer itself.
type MeshCollector func(g *Graph) map[string]MeshArtifact

// MeshProbe reports whether a mesh payload was already streamed to the given
// destination. Optional; lets repeated compilation of one graph skip streaming
// instead of writing the same payload twice.
type MeshProbe func(id, path string) bool

// Config holds the graph's external collaborators.
type Config struct {
	MeshStreamer  MeshStreamer
	MeshStreamed  MeshProbe
	MeshCollector MeshCollector
}

// entityList is an id-keyed collection that preserves insertion order.
type entityList struct {
	ids  []string
	byID map[string]*Entity
}

func newEntityList() *entityList {
	return &entityList{byID: make(map[string]*Entity)}
}

func (l *entityList) upsert(id string, e *Entity) {
	if _, exists := l.byID[id]; !exists {
		l.ids = append(l.ids, id)
	}
	l.byID[id] = e
}

// Graph is the top-level scene description. It begins empty, entity
// constructors insert or replace entries and the compiler reads it without
// mutating it.
type Graph struct {
	Comments []string
	Includes Includes
	Config   Config

	singletons map[Group]*Entity
	multi      map[Group]*entityList
}

// Create an empty scene graph with the default filesystem mesh streamer.
func NewGraph() *Graph {
	g := &Graph{
		singletons: make(map[Group]*Entity),
		multi:      make(map[Group]*entityList),
	}
	g.Config.MeshStreamer = FileStreamer
	for _, group := range MultiGroups {
		g.multi[group] = newEntityList()
	}
	return g
}

// Append a free-form comment emitted at the top of the manifest.
func (g *Graph) AddComment(comment string) {
	g.Comments = append(g.Comments, comment)
}

// Replace the sole entity of a singleton group. Last write wins; no merging
// with any prior entity takes place.
func (g *Graph) SetSingleton(group Group, e *Entity) error {
	if !group.IsSingleton() {
		return NewValidationError(group.String(), "not a singleton group")
	}
	g.singletons[group] = e
	return nil
}

// Return the entity held by a singleton group, or nil when unset.
func (g *Graph) Singleton(group Group) *Entity {
	return g.singletons[group]
}

// Insert or replace an entity in a multi group. A replace at an existing id
// keeps that id's original position in iteration order; a fresh id is
// appended.
func (g *Graph) Upsert(group Group, id string, e *Entity) error {
	if group.IsSingleton() {
		return NewValidationError(group.String(), "not a multi-entity group")
	}
	if id == "" {
		return NewValidationError(group.String(), "entity id cannot be empty")
	}
	list, exists := g.multi[group]
	if !exists {
		return NewValidationError(group.String(), "unknown entity group")
	}
	list.upsert(id, e)
	return nil
}

// GroupItem pairs an id with an entity for batch insertion.
type GroupItem struct {
	ID     string
	Entity *Entity
}

// Apply Upsert once per item, left to right. Later items win on id collision
// within the same batch.
func (g *Graph) BatchUpsert(group Group, items []GroupItem) error {
	for _, item := range items {
		if err := g.Upsert(group, item.ID, item.Entity); err != nil {
			return err
		}
	}
	return nil
}

// Look up an entity in a multi group.
func (g *Graph) Entity(group Group, id string) (*Entity, bool) {
	list, exists := g.multi[group]
	if !exists {
		return nil, false
	}
	e, exists := list.byID[id]
	return e, exists
}

// Reports whether a multi group contains the given id.
func (g *Graph) Has(group Group, id string) bool {
	_, exists := g.Entity(group, id)
	return exists
}

// Return the ids of a multi group in iteration order.
func (g *Graph) IDs(group Group) []string {
	list, exists := g.multi[group]
	if !exists {
		return nil
	}
	return append([]string(nil), list.ids...)
}

// Return the number of entities in a group.
func (g *Graph) Len(group Group) int {
	if group.IsSingleton() {
		if g.singletons[group] != nil {
			return 1
		}
		return 0
	}
	if list, exists := g.multi[group]; exists {
		return len(list.ids)
	}
	return 0
}

// FileStreamer is the default mesh streamer: it opens a filesystem stream at
// the destination path, creating parent directories as needed.
func FileStreamer(id, path string) (io.WriteCloser, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, err
		}
	}
	return os.Create(path)
}
