package gamedata

// PlaceDef defines one place on a board. Every field is optional.
type PlaceDef struct {
	Effect     *EffectDef     `json:"effect,omitempty"`
	Persistent *PersistentDef `json:"persistent,omitempty"`
	Message    string         `json:"message,omitempty"` // Annotation shown in move events
}

// BoardDef defines a board loaded from JSON. Places are in track order.
type BoardDef struct {
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Places      []PlaceDef `json:"places"`
}

// LoadBoard loads a board definition from an embedded <name>.json file.
func LoadBoard(name string) (BoardDef, error) {
	return Load[BoardDef](name + ".json")
}

// MustLoadBoard loads a board definition, panicking on error.
func MustLoadBoard(name string) BoardDef {
	board, err := LoadBoard(name)
	if err != nil {
		panic(err)
	}
	return board
}
