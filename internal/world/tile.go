// Package world provides the static map layer: obstacle and encounter cells
// and the queries the movement and encounter systems run against them.
package world

// Tile represents a single map tile in a text layout.
type Tile rune

const (
	// TileWall represents an impassable obstacle tile.
	TileWall Tile = '#'
	// TileFloor represents a passable floor tile.
	TileFloor Tile = '.'
	// TileGrass represents a passable tile that can start an encounter.
	TileGrass Tile = '~'
	// TileSpawn marks the actor's starting position. It is floor otherwise.
	TileSpawn Tile = '@'
)

// IsPassable returns true if the tile can be walked on.
func (t Tile) IsPassable() bool {
	return t != TileWall
}

// IsEncounter returns true if moving on the tile can trigger an encounter.
func (t Tile) IsEncounter() bool {
	return t == TileGrass
}

// Rune returns the tile's display character.
func (t Tile) Rune() rune {
	return rune(t)
}
