package models

import "fmt"

// RosterEntry is one (unit, quantity) pair of a roster
type RosterEntry struct {
	UnitID   UnitID `json:"unit"     yaml:"unit"`
	Quantity int64  `json:"quantity" yaml:"quantity"`
}

// Roster is the ordered multiset of units one side sends or holds.
// The order is kept in reports.
type Roster []RosterEntry

// Get returns the quantity for a unit
func (r Roster) Get(id UnitID) int64 {
	for _, e := range r {
		if e.UnitID == id {
			return e.Quantity
		}
	}
	return 0
}

// Set sets the quantity for a unit, appending it if missing
func (r *Roster) Set(id UnitID, qty int64) {
	for i := range *r {
		if (*r)[i].UnitID == id {
			(*r)[i].Quantity = qty
			return
		}
	}
	*r = append(*r, RosterEntry{UnitID: id, Quantity: qty})
}

// Add adds units of a type
func (r *Roster) Add(id UnitID, qty int64) {
	r.Set(id, r.Get(id)+qty)
}

// Remove removes units of a type (floors at 0)
func (r *Roster) Remove(id UnitID, qty int64) {
	n := r.Get(id) - qty
	if n < 0 {
		n = 0
	}
	r.Set(id, n)
}

// Total returns the total count of all units
func (r Roster) Total() int64 {
	var total int64
	for _, e := range r {
		total += e.Quantity
	}
	return total
}

// IsEmpty returns true if the roster has no units
func (r Roster) IsEmpty() bool {
	return r.Total() == 0
}

// Clone returns a copy of the roster
func (r Roster) Clone() Roster {
	if r == nil {
		return nil
	}
	out := make(Roster, len(r))
	copy(out, r)
	return out
}

// NonZero returns a copy without entries of quantity 0
func (r Roster) NonZero() Roster {
	out := make(Roster, 0, len(r))
	for _, e := range r {
		if e.Quantity > 0 {
			out = append(out, e)
		}
	}
	return out
}

// Validate rejects unknown units, duplicate entries and negative quantities
func (r Roster) Validate(cfg *Config) error {
	seen := make(map[UnitID]bool, len(r))
	for _, e := range r {
		if cfg.Unit(e.UnitID) == nil {
			return fmt.Errorf("%w: %s", ErrUnknownUnit, e.UnitID)
		}
		if e.Quantity < 0 {
			return fmt.Errorf("%w: %s has %d", ErrNegativeQuantity, e.UnitID, e.Quantity)
		}
		if seen[e.UnitID] {
			return fmt.Errorf("%w: %s", ErrDuplicateUnit, e.UnitID)
		}
		seen[e.UnitID] = true
	}
	return nil
}

// Resolved holds a unit's stats after training bonuses
type Resolved struct {
	Attack   int64 `json:"attack"`
	Defense  int64 `json:"defense"`
	Capacity int64 `json:"capacity"`
	Speed    int64 `json:"speed"`
	Salary   int64 `json:"salary"`
}

// ArmyUnit is a resolved combat participant. It lives for one engine call.
type ArmyUnit struct {
	UnitID   UnitID
	Name     string
	Quantity int64
	Stats    Resolved
	Config   *UnitConfig // read-only
}

// Army is an ordered list of resolved participants
type Army []ArmyUnit

// Total returns the total count of all units
func (a Army) Total() int64 {
	var total int64
	for _, u := range a {
		total += u.Quantity
	}
	return total
}

// Clone returns a copy of the army; Config pointers are shared
func (a Army) Clone() Army {
	out := make(Army, len(a))
	copy(out, a)
	return out
}

// Roster converts the army back to (unit, quantity) pairs
func (a Army) Roster() Roster {
	out := make(Roster, 0, len(a))
	for _, u := range a {
		out = append(out, RosterEntry{UnitID: u.UnitID, Quantity: u.Quantity})
	}
	return out
}
