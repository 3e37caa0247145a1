package models

import "fmt"

// UnitConfig contains static unit data. Read-only to the engine.
type UnitConfig struct {
	ID           UnitID         `json:"id"`
	Name         string         `json:"name"`
	Type         UnitType       `json:"type"`
	Attack       int64          `json:"attack"`
	Defense      int64          `json:"defense"`
	Capacity     int64          `json:"capacity"`
	Speed        int64          `json:"speed"`
	Salary       int64          `json:"salary"`
	Cost         ResourceBundle `json:"cost"`
	BuildSeconds int            `json:"build_seconds"`
	Points       int64          `json:"points"`

	// Trainings whose levels stack multiplicatively on attack / defense
	BonusAttack  []TrainingID `json:"bonus_attack,omitempty"`
	BonusDefense []TrainingID `json:"bonus_defense,omitempty"`
}

// Validate checks the template for values the engine cannot work with
func (u *UnitConfig) Validate() error {
	if u.ID == "" {
		return fmt.Errorf("%w: unit without id", ErrInvalidConfig)
	}
	if !u.Type.Valid() {
		return fmt.Errorf("%w: unit %s: unknown type %q", ErrInvalidConfig, u.ID, u.Type)
	}
	if u.Attack < 0 || u.Defense < 0 || u.Capacity < 0 || u.Speed < 0 || u.Salary < 0 || u.Points < 0 {
		return fmt.Errorf("%w: unit %s: negative stat", ErrInvalidConfig, u.ID)
	}
	bad := false
	u.Cost.Each(func(_ ResourceKind, amount int64) {
		if amount < 0 {
			bad = true
		}
	})
	if bad {
		return fmt.Errorf("%w: unit %s: negative cost", ErrInvalidConfig, u.ID)
	}
	return nil
}

// Training ids used by the built-in rules
const (
	TrainingRoutes      TrainingID = "route_planning"
	TrainingContracts   TrainingID = "contracts"
	TrainingSmuggling   TrainingID = "smuggling"
	TrainingHonor       TrainingID = "honor"
	TrainingFirearms    TrainingID = "firearms"
	TrainingMelee       TrainingID = "melee"
	TrainingExplosives  TrainingID = "explosives"
	TrainingShielding   TrainingID = "shielding"
	TrainingGuardDuty   TrainingID = "guard_duty"
	TrainingEspionage   TrainingID = "espionage"
	TrainingSecurity    TrainingID = "security"
	TrainingArmoredCars TrainingID = "armored_cars"
)

// DefaultUnits returns the built-in unit catalog, in display order.
// data/units.json carries the same values.
func DefaultUnits() []*UnitConfig {
	return []*UnitConfig{
		{
			ID:           "thug",
			Name:         "Thug",
			Type:         UnitAttack,
			Attack:       10,
			Defense:      8,
			Capacity:     20,
			Speed:        1200,
			Salary:       2,
			Cost:         ResourceBundle{Weapons: 50, Ammunition: 100, Currency: 300},
			BuildSeconds: 300,
			Points:       1,
			BonusAttack:  []TrainingID{TrainingMelee},
			BonusDefense: []TrainingID{TrainingShielding},
		},
		{
			ID:           "gunman",
			Name:         "Gunman",
			Type:         UnitAttack,
			Attack:       40,
			Defense:      20,
			Capacity:     40,
			Speed:        1500,
			Salary:       6,
			Cost:         ResourceBundle{Weapons: 250, Ammunition: 400, Currency: 900},
			BuildSeconds: 900,
			Points:       4,
			BonusAttack:  []TrainingID{TrainingFirearms},
			BonusDefense: []TrainingID{TrainingShielding},
		},
		{
			ID:           "hitman",
			Name:         "Hitman",
			Type:         UnitAttack,
			Attack:       120,
			Defense:      40,
			Capacity:     30,
			Speed:        2000,
			Salary:       20,
			Cost:         ResourceBundle{Weapons: 800, Ammunition: 1000, Currency: 4000, Alcohol: 200},
			BuildSeconds: 2400,
			Points:       12,
			BonusAttack:  []TrainingID{TrainingFirearms, TrainingExplosives},
			BonusDefense: []TrainingID{TrainingShielding},
		},
		{
			ID:           "bodyguard",
			Name:         "Bodyguard",
			Type:         UnitDefense,
			Attack:       15,
			Defense:      60,
			Capacity:     0,
			Speed:        1000,
			Salary:       5,
			Cost:         ResourceBundle{Weapons: 150, Ammunition: 300, Currency: 700},
			BuildSeconds: 700,
			Points:       3,
			BonusAttack:  []TrainingID{TrainingFirearms},
			BonusDefense: []TrainingID{TrainingGuardDuty, TrainingShielding},
		},
		{
			ID:           "sniper",
			Name:         "Sniper",
			Type:         UnitDefense,
			Attack:       60,
			Defense:      90,
			Capacity:     0,
			Speed:        900,
			Salary:       15,
			Cost:         ResourceBundle{Weapons: 600, Ammunition: 900, Currency: 2500},
			BuildSeconds: 1800,
			Points:       9,
			BonusAttack:  []TrainingID{TrainingFirearms},
			BonusDefense: []TrainingID{TrainingGuardDuty},
		},
		{
			ID:           "smuggler",
			Name:         "Smuggler",
			Type:         UnitTransport,
			Attack:       2,
			Defense:      4,
			Capacity:     500,
			Speed:        1800,
			Salary:       4,
			Cost:         ResourceBundle{Weapons: 20, Ammunition: 20, Currency: 600, Alcohol: 100},
			BuildSeconds: 600,
			Points:       2,
		},
		{
			ID:           "truck",
			Name:         "Truck",
			Type:         UnitTransport,
			Attack:       0,
			Defense:      12,
			Capacity:     2500,
			Speed:        2400,
			Salary:       12,
			Cost:         ResourceBundle{Weapons: 100, Ammunition: 50, Currency: 2000, Alcohol: 400},
			BuildSeconds: 1500,
			Points:       6,
			BonusDefense: []TrainingID{TrainingArmoredCars},
		},
		{
			ID:           "informant",
			Name:         "Informant",
			Type:         UnitSpy,
			Attack:       1,
			Defense:      1,
			Capacity:     0,
			Speed:        3000,
			Salary:       1,
			Cost:         ResourceBundle{Currency: 400, Alcohol: 50},
			BuildSeconds: 240,
			Points:       1,
			BonusAttack:  []TrainingID{TrainingEspionage},
			BonusDefense: []TrainingID{TrainingEspionage},
		},
		{
			ID:           "lookout",
			Name:         "Lookout",
			Type:         UnitDefense,
			Attack:       1,
			Defense:      3,
			Capacity:     0,
			Speed:        1000,
			Salary:       1,
			Cost:         ResourceBundle{Weapons: 10, Currency: 250},
			BuildSeconds: 200,
			Points:       1,
			BonusDefense: []TrainingID{TrainingSecurity},
		},
	}
}

// RouteUnits are the units whose speed scales with route planning
func RouteUnits() []UnitID {
	return []UnitID{"smuggler", "truck"}
}

// ContractUnits are the units whose speed scales with contracts
func ContractUnits() []UnitID {
	return []UnitID{"thug", "gunman", "hitman", "informant"}
}
