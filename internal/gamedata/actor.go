package gamedata

// StatsDef holds starting combat stats.
type StatsDef struct {
	Health    int `yaml:"health"`
	MaxHealth int `yaml:"max_health"`
	Attack    int `yaml:"attack"`
	Defence   int `yaml:"defence"`
}

// ActorDef defines the player-controlled actor loaded from YAML.
type ActorDef struct {
	Name             string   `yaml:"name"`
	Glyph            string   `yaml:"glyph"`
	Speed            float64  `yaml:"speed"`             // Tiles per second
	CollisionScale   float64  `yaml:"collision_scale"`   // Collision box size as a fraction of a tile
	EncounterSeconds float64  `yaml:"encounter_seconds"` // Moving time inside an encounter zone before combat
	Stats            StatsDef `yaml:"stats"`
	Children         []string `yaml:"children"` // Presentation entities hidden and shown with the actor
}

// GlyphRune returns the glyph as a rune for rendering.
func (a *ActorDef) GlyphRune() rune {
	if len(a.Glyph) == 0 {
		return '?'
	}
	return rune(a.Glyph[0])
}

// LoadActor loads the actor definition from the embedded actor.yaml file.
func LoadActor() (*ActorDef, error) {
	def, err := Load[ActorDef]("actor.yaml")
	if err != nil {
		return nil, err
	}
	return &def, nil
}
