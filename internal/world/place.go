// Package world provides the board track and its places.
package world

import "github.com/samdwyer/dogboard/internal/gamedata"

// Place is a single position on the board track.
type Place struct {
	ID         int                     // Index on the board
	Effect     *gamedata.EffectDef     // Fires when a move ends here, may be nil
	Persistent *gamedata.PersistentDef // Checked against every roll while occupied, may be nil
	Message    string                  // Annotation for move events, may be empty
}

// HasEffect returns true if the place carries a landing effect.
func (p *Place) HasEffect() bool {
	return p.Effect != nil
}

// HasPersistentEffect returns true if the place carries a persistent effect.
func (p *Place) HasPersistentEffect() bool {
	return p.Persistent != nil
}

// HasMessage returns true if the place carries an annotation.
func (p *Place) HasMessage() bool {
	return p.Message != ""
}
