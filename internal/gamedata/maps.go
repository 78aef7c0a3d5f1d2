package gamedata

import (
	"fmt"

	"github.com/samdwyer/overworld/data"
	"github.com/samdwyer/overworld/internal/world"
)

// MapDef defines a level layout loaded from YAML.
type MapDef struct {
	Name     string   `yaml:"name"`
	TileSize float64  `yaml:"tile_size"` // World units per tile
	Rows     []string `yaml:"rows"`      // Text rows, see world.Tile for the legend
}

// LoadMap loads the named level from the embedded data directory.
func LoadMap(name string) (*MapDef, error) {
	def, err := LoadFrom[MapDef](data.FS(), name+".yaml")
	if err != nil {
		return nil, err
	}
	if def.TileSize <= 0 {
		return nil, fmt.Errorf("map %s: %w", name, world.ErrInvalidTileSize)
	}
	return &def, nil
}

// Layout parses the map rows into world geometry.
func (m *MapDef) Layout() (*world.Layout, error) {
	layout, err := world.ParseLayout(m.Rows, m.TileSize)
	if err != nil {
		return nil, fmt.Errorf("map %s: %w", m.Name, err)
	}
	return layout, nil
}
