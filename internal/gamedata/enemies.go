package gamedata

import "github.com/gdamore/tcell/v2"

// EnemyDef defines an enemy type loaded from YAML.
type EnemyDef struct {
	ID          string `yaml:"id"`           // Unique identifier (e.g., "bat")
	Name        string `yaml:"name"`         // Display name (e.g., "Bat")
	Glyph       string `yaml:"glyph"`        // Single character for rendering (e.g., "b")
	Color       string `yaml:"color"`        // Hex color code (e.g., "#00FF00")
	Health      int    `yaml:"health"`       // Base hit points
	Attack      int    `yaml:"attack"`       // Base attack power
	Defence     int    `yaml:"defence"`      // Base defence value
	Exp         int    `yaml:"exp"`          // Experience awarded when defeated
	SpawnWeight int    `yaml:"spawn_weight"` // Relative spawn frequency (higher = more common)
}

// GlyphRune returns the glyph as a rune for rendering.
func (e *EnemyDef) GlyphRune() rune {
	if len(e.Glyph) == 0 {
		return '?'
	}
	return rune(e.Glyph[0])
}

// TCellColor returns the color as a tcell.Color.
func (e *EnemyDef) TCellColor() tcell.Color {
	color, err := ParseHexColor(e.Color)
	if err != nil {
		return tcell.ColorWhite // fallback
	}
	return color
}

// EnemiesFile represents the structure of enemies.yaml.
type EnemiesFile struct {
	Enemies []EnemyDef `yaml:"enemies"`
}

// LoadEnemies loads enemy definitions from the embedded enemies.yaml file.
func LoadEnemies() ([]EnemyDef, error) {
	file, err := Load[EnemiesFile]("enemies.yaml")
	if err != nil {
		return nil, err
	}
	return file.Enemies, nil
}
