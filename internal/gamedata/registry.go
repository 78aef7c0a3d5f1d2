package gamedata

import (
	"errors"
	"fmt"
	"math/rand"
	"sort"
)

// ErrNoEnemies is returned when enemies.yaml defines no enemies.
var ErrNoEnemies = errors.New("no enemies defined")

// EnemyRegistry picks encounter opponents by spawn weight.
type EnemyRegistry struct {
	defs []EnemyDef

	// cumulative[i] is the summed weight of defs[:i+1]; entries with a
	// non-positive weight are never picked.
	cumulative []int
}

// NewEnemyRegistry builds a registry over defs.
func NewEnemyRegistry(defs []EnemyDef) *EnemyRegistry {
	r := &EnemyRegistry{
		defs:       defs,
		cumulative: make([]int, len(defs)),
	}
	sum := 0
	for i, d := range defs {
		if d.SpawnWeight > 0 {
			sum += d.SpawnWeight
		}
		r.cumulative[i] = sum
	}
	return r
}

// LoadEnemyRegistry builds a registry from the embedded enemies.yaml.
func LoadEnemyRegistry() (*EnemyRegistry, error) {
	defs, err := LoadEnemies()
	if err != nil {
		return nil, err
	}
	if len(defs) == 0 {
		return nil, fmt.Errorf("enemies.yaml: %w", ErrNoEnemies)
	}
	return NewEnemyRegistry(defs), nil
}

// SpawnRandom returns a weighted random definition, or nil if nothing can
// spawn.
func (r *EnemyRegistry) SpawnRandom(rng *rand.Rand) *EnemyDef {
	n := len(r.cumulative)
	if n == 0 || r.cumulative[n-1] == 0 {
		return nil
	}
	roll := rng.Intn(r.cumulative[n-1])
	return &r.defs[sort.SearchInts(r.cumulative, roll+1)]
}

// Count returns the number of enemy types.
func (r *EnemyRegistry) Count() int {
	return len(r.defs)
}
