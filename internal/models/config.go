package models

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidConfig    = errors.New("invalid config")
	ErrUnknownUnit      = errors.New("unknown unit")
	ErrNegativeQuantity = errors.New("negative quantity")
	ErrDuplicateUnit    = errors.New("duplicate unit")
)

// SpeedClass groups units whose speed scales with a single training
type SpeedClass struct {
	Name     string     `json:"name"`
	Training TrainingID `json:"training"`
	Units    []UnitID   `json:"units"`
}

// Config is a read-only snapshot of the game configuration the engine needs.
// Callers build one per configuration revision and share it between calls.
type Config struct {
	Units             map[UnitID]*UnitConfig
	Order             []UnitID // display order of Units
	SpeedClasses      []SpeedClass
	SmugglingTraining TrainingID
	HonorTraining     TrainingID
}

// NewConfig builds a snapshot from a unit list, keeping the list order
func NewConfig(units []*UnitConfig) (*Config, error) {
	return NewConfigWithClasses(units, DefaultSpeedClasses())
}

// NewConfigWithClasses builds a snapshot with custom speed classes
func NewConfigWithClasses(units []*UnitConfig, classes []SpeedClass) (*Config, error) {
	c := &Config{
		Units:             make(map[UnitID]*UnitConfig, len(units)),
		Order:             make([]UnitID, 0, len(units)),
		SpeedClasses:      classes,
		SmugglingTraining: TrainingSmuggling,
		HonorTraining:     TrainingHonor,
	}
	for _, u := range units {
		if u == nil {
			return nil, fmt.Errorf("%w: nil unit", ErrInvalidConfig)
		}
		if _, ok := c.Units[u.ID]; ok {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateUnit, u.ID)
		}
		c.Units[u.ID] = u
		c.Order = append(c.Order, u.ID)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// DefaultConfig returns the snapshot for the built-in catalog
func DefaultConfig() *Config {
	c, err := NewConfig(DefaultUnits())
	if err != nil {
		panic(err)
	}
	return c
}

// DefaultSpeedClasses returns the route and contract speed classes
func DefaultSpeedClasses() []SpeedClass {
	return []SpeedClass{
		{Name: "route", Training: TrainingRoutes, Units: RouteUnits()},
		{Name: "contract", Training: TrainingContracts, Units: ContractUnits()},
	}
}

// Validate checks that every unit is usable and that speed classes reference known units
func (c *Config) Validate() error {
	if c == nil {
		return fmt.Errorf("%w: config is nil", ErrInvalidConfig)
	}
	if len(c.Units) == 0 {
		return fmt.Errorf("%w: no units", ErrInvalidConfig)
	}
	if len(c.Order) != len(c.Units) {
		return fmt.Errorf("%w: order lists %d units, catalog has %d", ErrInvalidConfig, len(c.Order), len(c.Units))
	}
	for _, id := range c.Order {
		u, ok := c.Units[id]
		if !ok {
			return fmt.Errorf("%w: %s", ErrUnknownUnit, id)
		}
		if u.ID != id {
			return fmt.Errorf("%w: unit keyed %s has id %s", ErrInvalidConfig, id, u.ID)
		}
		if err := u.Validate(); err != nil {
			return err
		}
	}
	seen := make(map[UnitID]string)
	for _, sc := range c.SpeedClasses {
		if sc.Training == "" {
			return fmt.Errorf("%w: speed class %q without training", ErrInvalidConfig, sc.Name)
		}
		for _, id := range sc.Units {
			if _, ok := c.Units[id]; !ok {
				return fmt.Errorf("%w: speed class %q: %s", ErrUnknownUnit, sc.Name, id)
			}
			if other, ok := seen[id]; ok {
				return fmt.Errorf("%w: unit %s in speed classes %q and %q", ErrInvalidConfig, id, other, sc.Name)
			}
			seen[id] = sc.Name
		}
	}
	return nil
}

// Unit returns the template for an id, nil if unknown
func (c *Config) Unit(id UnitID) *UnitConfig {
	return c.Units[id]
}

// Each iterates over the units in display order
func (c *Config) Each(fn func(*UnitConfig)) {
	for _, id := range c.Order {
		fn(c.Units[id])
	}
}
