package entity

import "slices"

// Roster tracks every player of a game and the active turn order.
//
// The offset always points at the player whose turn is next while any player
// is active. Eliminated players leave the turn order but stay in All.
type Roster struct {
	all    []*Player // Indexed by PlayerID
	active []*Player // Turn order
	lost   []*Player // Elimination order
	offset int
}

// NewRoster creates players with sequential IDs in the given order.
func NewRoster(names []string) *Roster {
	all := make([]*Player, len(names))
	for i, name := range names {
		all[i] = NewPlayer(PlayerID(i), name)
	}
	return &Roster{
		all:    all,
		active: slices.Clone(all),
	}
}

// Current returns the player whose turn it is, or nil if nobody is left.
func (r *Roster) Current() *Player {
	if len(r.active) == 0 {
		return nil
	}
	return r.active[r.offset]
}

// Offset returns the index of the current player in the turn order.
func (r *Roster) Offset() int {
	return r.offset
}

// Advance passes the turn to the next active player.
func (r *Roster) Advance() {
	if len(r.active) == 0 {
		return
	}
	r.offset = (r.offset + 1) % len(r.active)
}

// Remove takes a player out of the turn order, keeping the offset on the
// right player: removing the current player hands the turn back to the
// previous one, so the next Advance lands on the player after the removed
// one. It returns false if the player was not active.
func (r *Roster) Remove(id PlayerID) bool {
	idx := slices.IndexFunc(r.active, func(p *Player) bool { return p.ID == id })
	if idx < 0 {
		return false
	}

	n := len(r.active)
	removed := r.active[idx]
	r.active = slices.Delete(r.active, idx, idx+1)
	r.lost = append(r.lost, removed)

	switch {
	case len(r.active) == 0:
		r.offset = 0
	case idx == r.offset:
		// Rewind to the previous player; index 0 wraps to the new last slot.
		r.offset = (idx - 1 + n) % n
		if r.offset > idx {
			r.offset--
		}
	case idx < r.offset:
		r.offset--
	}
	return true
}

// IsActive returns true if the player is still in the turn order.
func (r *Roster) IsActive(id PlayerID) bool {
	return slices.ContainsFunc(r.active, func(p *Player) bool { return p.ID == id })
}

// Get returns the player with the given ID, active or not, or nil.
func (r *Roster) Get(id PlayerID) *Player {
	if id < 0 || int(id) >= len(r.all) {
		return nil
	}
	return r.all[id]
}

// Active returns the active players in turn order.
// The slice is a copy; the players are shared.
func (r *Roster) Active() []*Player {
	return slices.Clone(r.active)
}

// All returns every player ever registered, in ID order.
func (r *Roster) All() []*Player {
	return slices.Clone(r.all)
}

// Lost returns the eliminated players in elimination order.
func (r *Roster) Lost() []*Player {
	return slices.Clone(r.lost)
}

// Len returns the number of active players.
func (r *Roster) Len() int {
	return len(r.active)
}

// Empty returns true once every player has been eliminated.
func (r *Roster) Empty() bool {
	return len(r.active) == 0
}
