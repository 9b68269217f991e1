package exercise

import (
	"errors"
	"fmt"
)

// ErrUnknownExercise is returned by Get for ids outside the catalog.
var ErrUnknownExercise = errors.New("unknown exercise")

// catalog holds the exercises in display order with an id index.
type catalog struct {
	exercises []Exercise
	byID      map[string]int
}

// c is the package-level catalog, set by init() in seed.go.
var c *catalog

func buildCatalog(exercises []Exercise) *catalog {
	cat := &catalog{
		exercises: exercises,
		byID:      make(map[string]int, len(exercises)),
	}
	for i, e := range exercises {
		cat.byID[e.ID] = i
	}
	return cat
}

// Lookup returns the exercise with the given id. The boolean is false
// for unknown ids; callers should disable evaluation in that case.
func Lookup(id string) (Exercise, bool) {
	i, ok := c.byID[id]
	if !ok {
		return Exercise{}, false
	}
	return c.exercises[i], true
}

// Get is Lookup for callers that want an error.
func Get(id string) (Exercise, error) {
	e, ok := Lookup(id)
	if !ok {
		return Exercise{}, fmt.Errorf("%w: %q", ErrUnknownExercise, id)
	}
	return e, nil
}

// All returns every exercise in display order.
func All() []Exercise {
	out := make([]Exercise, len(c.exercises))
	copy(out, c.exercises)
	return out
}

// IDs returns the exercise ids in display order.
func IDs() []string {
	ids := make([]string, len(c.exercises))
	for i, e := range c.exercises {
		ids[i] = e.ID
	}
	return ids
}

// Index returns the display position of id, or -1.
func Index(id string) int {
	i, ok := c.byID[id]
	if !ok {
		return -1
	}
	return i
}
