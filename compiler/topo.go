package compiler

import (
	"strings"

	"github.com/Erdk/luxor/scene"
)

// Order ids so that every entity appears after all entities it depends on.
// Ids without dependencies keep their relative insertion order. A cycle or a
// reference to an id missing from the group is a validation error.
func dependencyOrder(g *scene.Graph, group scene.Group) ([]string, error) {
	ids := g.IDs(group)

	const (
		unvisited = iota
		visiting
		done
	)
	state := make(map[string]int, len(ids))
	order := make([]string, 0, len(ids))

	var visit func(id string, path []string) error
	visit = func(id string, path []string) error {
		switch state[id] {
		case done:
			return nil
		case visiting:
			cycle := append(path, id)
			return scene.NewValidationError(group.String(),
				"dependency cycle: %s", strings.Join(cycle, " -> "))
		}
		state[id] = visiting

		e, exists := g.Entity(group, id)
		if !exists {
			return scene.NewValidationError(group.String(), "reference to unknown entity %q", id)
		}
		for _, dep := range e.Meta.Dependencies {
			if err := visit(dep, append(path, id)); err != nil {
				return err
			}
		}

		state[id] = done
		order = append(order, id)
		return nil
	}

	for _, id := range ids {
		if err := visit(id, nil); err != nil {
			return nil, err
		}
	}
	return order, nil
}
