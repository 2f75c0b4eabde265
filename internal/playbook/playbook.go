// Package playbook provides the catalog of selectable plays.
// Plays register themselves in init(), allowing the platform to list them
// without hardcoded dependencies. A selected play is stored on the match but
// does not influence the simulation.
package playbook

import (
	"errors"
	"fmt"
	"sync"
)

// ErrUnknownPlay is returned when looking up a play that was never registered.
var ErrUnknownPlay = errors.New("playbook: unknown play")

// ID identifies a play (e.g., "run_left").
type ID string

// Side tells which unit a play is drawn up for.
type Side int

const (
	Offense Side = iota
	Defense
)

// String returns a human-readable name for the side.
func (s Side) String() string {
	switch s {
	case Offense:
		return "Offense"
	case Defense:
		return "Defense"
	default:
		return "Unknown"
	}
}

// Play describes a selectable play.
type Play struct {
	ID   ID
	Name string
	Side Side
}

var (
	plays = make(map[ID]Play)
	order []ID
	mu    sync.RWMutex
)

// Register adds a play to the catalog.
// Panics if a play with the same ID is already registered.
func Register(p Play) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := plays[p.ID]; exists {
		panic(fmt.Sprintf("playbook: play %q already registered", p.ID))
	}

	plays[p.ID] = p
	order = append(order, p.ID)
}

// List returns all registered plays in registration order.
func List() []Play {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Play, 0, len(order))
	for _, id := range order {
		result = append(result, plays[id])
	}
	return result
}

// Lookup returns the play with the given ID.
func Lookup(id ID) (Play, error) {
	mu.RLock()
	defer mu.RUnlock()

	p, ok := plays[id]
	if !ok {
		return Play{}, fmt.Errorf("%w %q", ErrUnknownPlay, id)
	}
	return p, nil
}

// Exists checks if a play with the given ID is registered.
func Exists(id ID) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := plays[id]
	return ok
}
