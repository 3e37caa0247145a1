package stats

import (
	"fmt"
	"math"

	"github.com/toolsVendettaHispanos/AutoAuth-sub000/internal/models"
)

// Factor returns the bonus multiplier for a training level: 1 + sqrt(L)/10.
// Levels <= 0 give 1.
func Factor(level int) float64 {
	if level <= 0 {
		return 1
	}
	return 1 + math.Sqrt(float64(level))/10
}

// Resolver applies training bonuses to unit templates
type Resolver struct {
	SpeedClasses      []models.SpeedClass
	SmugglingTraining models.TrainingID

	speedTraining map[models.UnitID]models.TrainingID
}

// NewResolver creates a resolver with the default rules
func NewResolver() *Resolver {
	return newResolver(models.DefaultSpeedClasses(), models.TrainingSmuggling)
}

// NewResolverWithConfig creates a resolver from a config snapshot
func NewResolverWithConfig(cfg *models.Config) *Resolver {
	if cfg == nil {
		return NewResolver()
	}
	smuggling := cfg.SmugglingTraining
	if smuggling == "" {
		smuggling = models.TrainingSmuggling
	}
	return newResolver(cfg.SpeedClasses, smuggling)
}

func newResolver(classes []models.SpeedClass, smuggling models.TrainingID) *Resolver {
	r := &Resolver{
		SpeedClasses:      classes,
		SmugglingTraining: smuggling,
		speedTraining:     make(map[models.UnitID]models.TrainingID),
	}
	for _, sc := range classes {
		for _, id := range sc.Units {
			r.speedTraining[id] = sc.Training
		}
	}
	return r
}

var defaultResolver = NewResolver()

// Resolve computes a unit's stats using the default rules
func Resolve(cfg *models.UnitConfig, levels models.TrainingLevels) models.Resolved {
	return defaultResolver.Resolve(cfg, levels)
}

// Resolve computes a unit's effective stats for the given training levels.
// Attack and defense factors stack multiplicatively over the unit's bonus
// lists; capacity and speed take a single factor; salary is divided by the
// smuggling factor. Every value is floored.
func (r *Resolver) Resolve(cfg *models.UnitConfig, levels models.TrainingLevels) models.Resolved {
	if cfg == nil {
		return models.Resolved{}
	}

	attackFactor := 1.0
	for _, id := range cfg.BonusAttack {
		attackFactor *= Factor(levels.Level(id))
	}
	defenseFactor := 1.0
	for _, id := range cfg.BonusDefense {
		defenseFactor *= Factor(levels.Level(id))
	}

	smuggling := levels.Level(r.SmugglingTraining)

	capacity := float64(cfg.Capacity)
	if cfg.Type != models.UnitDefense && cfg.Capacity > 0 && smuggling > 0 {
		capacity *= Factor(smuggling)
	}

	speed := float64(cfg.Speed)
	if training, ok := r.speedTraining[cfg.ID]; ok {
		speed *= Factor(levels.Level(training))
	}

	salary := float64(cfg.Salary)
	if smuggling > 0 {
		salary /= Factor(smuggling)
	}

	return models.Resolved{
		Attack:   floor(float64(cfg.Attack) * attackFactor),
		Defense:  floor(float64(cfg.Defense) * defenseFactor),
		Capacity: floor(capacity),
		Speed:    floor(speed),
		Salary:   floor(salary),
	}
}

// Army resolves a roster against a config snapshot. Entries keep the roster
// order, zero quantities included.
func (r *Resolver) Army(cfg *models.Config, roster models.Roster, levels models.TrainingLevels) (models.Army, error) {
	if err := roster.Validate(cfg); err != nil {
		return nil, err
	}
	army := make(models.Army, 0, len(roster))
	for _, e := range roster {
		u := cfg.Unit(e.UnitID)
		if u == nil {
			return nil, fmt.Errorf("%w: %s", models.ErrUnknownUnit, e.UnitID)
		}
		army = append(army, models.ArmyUnit{
			UnitID:   u.ID,
			Name:     u.Name,
			Quantity: e.Quantity,
			Stats:    r.Resolve(u, levels),
			Config:   u,
		})
	}
	return army, nil
}

func floor(v float64) int64 {
	return int64(math.Floor(v))
}
