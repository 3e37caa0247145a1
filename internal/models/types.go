package models

import "slices"

// ResourceKind represents the different resource kinds in the game
type ResourceKind string

const (
	Weapons    ResourceKind = "weapons"
	Ammunition ResourceKind = "ammunition"
	Currency   ResourceKind = "currency"
	Alcohol    ResourceKind = "alcohol"
)

// AllResourceKinds returns all resource kinds in deterministic order
func AllResourceKinds() []ResourceKind {
	return []ResourceKind{Weapons, Ammunition, Currency, Alcohol}
}

// ResourceBundle holds an amount for each resource kind (no maps)
type ResourceBundle struct {
	Weapons    int64 `json:"weapons"    yaml:"weapons"`
	Ammunition int64 `json:"ammunition" yaml:"ammunition"`
	Currency   int64 `json:"currency"   yaml:"currency"`
	Alcohol    int64 `json:"alcohol"    yaml:"alcohol"`
}

// Get returns the amount for a specific resource kind
func (r ResourceBundle) Get(kind ResourceKind) int64 {
	switch kind {
	case Weapons:
		return r.Weapons
	case Ammunition:
		return r.Ammunition
	case Currency:
		return r.Currency
	case Alcohol:
		return r.Alcohol
	}
	return 0
}

// Set sets the amount for a specific resource kind
func (r *ResourceBundle) Set(kind ResourceKind, amount int64) {
	switch kind {
	case Weapons:
		r.Weapons = amount
	case Ammunition:
		r.Ammunition = amount
	case Currency:
		r.Currency = amount
	case Alcohol:
		r.Alcohol = amount
	}
}

// Add returns the element-wise sum of two bundles
func (r ResourceBundle) Add(o ResourceBundle) ResourceBundle {
	return ResourceBundle{
		Weapons:    r.Weapons + o.Weapons,
		Ammunition: r.Ammunition + o.Ammunition,
		Currency:   r.Currency + o.Currency,
		Alcohol:    r.Alcohol + o.Alcohol,
	}
}

// Scale multiplies every amount by n
func (r ResourceBundle) Scale(n int64) ResourceBundle {
	return ResourceBundle{
		Weapons:    r.Weapons * n,
		Ammunition: r.Ammunition * n,
		Currency:   r.Currency * n,
		Alcohol:    r.Alcohol * n,
	}
}

// Total returns the sum over all kinds
func (r ResourceBundle) Total() int64 {
	return r.Weapons + r.Ammunition + r.Currency + r.Alcohol
}

// IsZero reports whether every amount is zero
func (r ResourceBundle) IsZero() bool {
	return r == ResourceBundle{}
}

// Each iterates over all kinds in deterministic order
func (r ResourceBundle) Each(fn func(ResourceKind, int64)) {
	fn(Weapons, r.Weapons)
	fn(Ammunition, r.Ammunition)
	fn(Currency, r.Currency)
	fn(Alcohol, r.Alcohol)
}

// UnitType classifies a unit template
type UnitType string

const (
	UnitAttack    UnitType = "attack"
	UnitDefense   UnitType = "defense"
	UnitTransport UnitType = "transport"
	UnitSpy       UnitType = "spy"
	UnitSupport   UnitType = "support"
)

// AllUnitTypes returns all unit types in deterministic order
func AllUnitTypes() []UnitType {
	return []UnitType{UnitAttack, UnitDefense, UnitTransport, UnitSpy, UnitSupport}
}

// Valid reports whether t is a known unit type
func (t UnitType) Valid() bool {
	return slices.Contains(AllUnitTypes(), t)
}

// UnitID identifies a unit template
type UnitID string

// TrainingID identifies a training (research) line
type TrainingID string

// TrainingLevels maps training ids to the level a player has unlocked.
// A missing entry means level 0.
type TrainingLevels map[TrainingID]int

// Level returns the level for a training, 0 if missing or negative
func (t TrainingLevels) Level(id TrainingID) int {
	if lvl, ok := t[id]; ok && lvl > 0 {
		return lvl
	}
	return 0
}

// Clone returns a copy of the levels
func (t TrainingLevels) Clone() TrainingLevels {
	out := make(TrainingLevels, len(t))
	for k, v := range t {
		out[k] = v
	}
	return out
}

// Coordinates locate a building on the board: city, quarter and building number
type Coordinates struct {
	City     int `json:"city"     yaml:"city"`
	Quarter  int `json:"quarter"  yaml:"quarter"`
	Building int `json:"building" yaml:"building"`
}
