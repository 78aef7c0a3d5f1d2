package world

import (
	"errors"
	"math"

	"github.com/samdwyer/overworld/internal/geom"
)

var (
	// ErrInvalidTileSize is returned when a map is built with a non-positive tile size.
	ErrInvalidTileSize = errors.New("world: tile size must be positive")
	// ErrEmptyLayout is returned when a text layout has no rows.
	ErrEmptyLayout = errors.New("world: layout has no rows")
)

// Kind distinguishes obstacle cells from encounter zone cells.
type Kind int

const (
	// KindObstacle blocks movement.
	KindObstacle Kind = iota
	// KindEncounter can start an encounter while the actor moves across it.
	KindEncounter
)

// String returns a human-readable kind name.
func (k Kind) String() string {
	switch k {
	case KindObstacle:
		return "obstacle"
	case KindEncounter:
		return "encounter"
	default:
		return "unknown"
	}
}

// Cell is one tile-sized square of static map geometry.
type Cell struct {
	Pos  geom.Vec2
	Kind Kind
}

// Map holds the immovable obstacle and encounter zone cells of a level.
// A Map is never mutated after NewMap returns.
type Map struct {
	TileSize float64

	obstacles []Cell
	zones     []Cell

	// Cells bucketed by nearest grid coordinate.
	obstacleIndex map[bucket][]int
	zoneIndex     map[bucket][]int
}

type bucket struct {
	x, y int
}

// NewMap creates a map from obstacle and encounter zone positions in world
// coordinates. Every cell is a full tile in size.
func NewMap(tileSize float64, obstacles, zones []geom.Vec2) (*Map, error) {
	if tileSize <= 0 || math.IsNaN(tileSize) {
		return nil, ErrInvalidTileSize
	}

	m := &Map{
		TileSize:      tileSize,
		obstacles:     make([]Cell, 0, len(obstacles)),
		zones:         make([]Cell, 0, len(zones)),
		obstacleIndex: make(map[bucket][]int),
		zoneIndex:     make(map[bucket][]int),
	}
	for _, pos := range obstacles {
		b := m.bucketOf(pos)
		m.obstacleIndex[b] = append(m.obstacleIndex[b], len(m.obstacles))
		m.obstacles = append(m.obstacles, Cell{Pos: pos, Kind: KindObstacle})
	}
	for _, pos := range zones {
		b := m.bucketOf(pos)
		m.zoneIndex[b] = append(m.zoneIndex[b], len(m.zones))
		m.zones = append(m.zones, Cell{Pos: pos, Kind: KindEncounter})
	}
	return m, nil
}

// Blocked returns true if any obstacle cell overlaps the box.
func (m *Map) Blocked(box geom.Box) bool {
	return m.anyOverlap(box, m.obstacles, m.obstacleIndex)
}

// InEncounterZone returns true if any encounter zone cell overlaps the box.
func (m *Map) InEncounterZone(box geom.Box) bool {
	return m.anyOverlap(box, m.zones, m.zoneIndex)
}

// Obstacles returns the obstacle cells. The slice must not be modified.
func (m *Map) Obstacles() []Cell {
	return m.obstacles
}

// Zones returns the encounter zone cells. The slice must not be modified.
func (m *Map) Zones() []Cell {
	return m.zones
}

// CellBox returns the collision box of a cell.
func (m *Map) CellBox(c Cell) geom.Box {
	return geom.NewBox(c.Pos, m.TileSize)
}

// anyOverlap checks only the buckets the box can reach. Cells are placed in
// the bucket nearest their center, so one extra bucket of margin on every side
// covers cells that are not exactly grid aligned.
func (m *Map) anyOverlap(box geom.Box, cells []Cell, index map[bucket][]int) bool {
	if len(cells) == 0 {
		return false
	}

	lo, hi := box.Min(), box.Max()
	minX := int(math.Floor(lo.X/m.TileSize)) - 1
	maxX := int(math.Ceil(hi.X/m.TileSize)) + 1
	minY := int(math.Floor(lo.Y/m.TileSize)) - 1
	maxY := int(math.Ceil(hi.Y/m.TileSize)) + 1

	half := geom.Splat(m.TileSize / 2)
	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			for _, i := range index[bucket{x, y}] {
				if geom.Overlaps(box.Center, box.Half, cells[i].Pos, half) {
					return true
				}
			}
		}
	}
	return false
}

func (m *Map) bucketOf(pos geom.Vec2) bucket {
	return bucket{
		x: int(math.Round(pos.X / m.TileSize)),
		y: int(math.Round(pos.Y / m.TileSize)),
	}
}

// Layout is the result of parsing a text map.
type Layout struct {
	Map      *Map
	Spawn    geom.Vec2
	HasSpawn bool
	Width    int // Columns of the widest row
	Height   int // Number of rows
}

// ParseLayout converts text rows into a map. Column c of row r is placed at
// world position (c*tileSize, -r*tileSize), so the first row is the top of
// the map and y grows upward.
func ParseLayout(rows []string, tileSize float64) (*Layout, error) {
	if len(rows) == 0 {
		return nil, ErrEmptyLayout
	}

	var obstacles, zones []geom.Vec2
	layout := &Layout{Height: len(rows)}

	for r, row := range rows {
		c := 0
		for _, ch := range row {
			pos := GridPos(c, r, tileSize)
			switch tile := Tile(ch); {
			case !tile.IsPassable():
				obstacles = append(obstacles, pos)
			case tile.IsEncounter():
				zones = append(zones, pos)
			case tile == TileSpawn:
				layout.Spawn = pos
				layout.HasSpawn = true
			}
			c++
		}
		if c > layout.Width {
			layout.Width = c
		}
	}

	m, err := NewMap(tileSize, obstacles, zones)
	if err != nil {
		return nil, err
	}
	layout.Map = m
	return layout, nil
}

// TileAt returns the tile at grid column x and row y of a parsed layout, using
// world coordinates as produced by ParseLayout.
func (m *Map) TileAt(x, y int) Tile {
	center := GridPos(x, y, m.TileSize)
	cell := geom.Box{Center: center, Half: geom.Splat(m.TileSize / 4)}
	switch {
	case m.Blocked(cell):
		return TileWall
	case m.InEncounterZone(cell):
		return TileGrass
	default:
		return TileFloor
	}
}

// GridPos returns the world position of grid column x, row y.
func GridPos(x, y int, tileSize float64) geom.Vec2 {
	return geom.Vec2{X: float64(x) * tileSize, Y: -float64(y) * tileSize}
}
