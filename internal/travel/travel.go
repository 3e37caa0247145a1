package travel

import (
	"errors"
	"fmt"
	"math"

	"github.com/toolsVendettaHispanos/AutoAuth-sub000/internal/models"
	"github.com/toolsVendettaHispanos/AutoAuth-sub000/internal/stats"
)

// Board geometry
const (
	QuartersPerCity    = 15
	BuildingsPerRow    = 17
	FallbackSpeed      = 1000
	FallbackDuration   = 30 * 24 * 3600 // seconds, used when speed <= 0
	MinDurationSeconds = 10
	durationDays       = 0.21989
	secondsPerDay      = 86400
)

var (
	ErrEmptyFleet        = errors.New("fleet has no units")
	ErrInsufficientFunds = errors.New("insufficient currency for travel")
)

// Plan is the result of a travel computation
type Plan struct {
	Distance        float64 `json:"distance"`
	DurationSeconds int64   `json:"duration_seconds"`
	Cost            int64   `json:"cost"`
	Speed           int64   `json:"speed"`
}

// VirtualCoords maps board coordinates to a 2D grid: each city is a band of
// 15 quarter rows, each row holds 17 buildings.
func VirtualCoords(c models.Coordinates) (height, width int) {
	height = (c.City-1)*QuartersPerCity + (c.Quarter - 1)
	width = c.Building - 1
	return height, width
}

// Distance returns the Euclidean distance between two buildings
func Distance(a, b models.Coordinates) float64 {
	ah, aw := VirtualCoords(a)
	bh, bw := VirtualCoords(b)
	dh := float64(ah - bh)
	dw := float64(aw - bw)
	return math.Sqrt(dh*dh + dw*dw)
}

// FleetSpeed returns the speed of the slowest unit with quantity > 0.
// An empty fleet reports FallbackSpeed; callers guard with CheckFleet.
func FleetSpeed(army models.Army) int64 {
	speed := int64(-1)
	for _, u := range army {
		if u.Quantity <= 0 {
			continue
		}
		if speed < 0 || u.Stats.Speed < speed {
			speed = u.Stats.Speed
		}
	}
	if speed < 0 {
		return FallbackSpeed
	}
	return speed
}

// DurationSeconds returns the travel time for a distance at a fleet speed
func DurationSeconds(distance float64, speed int64) int64 {
	if speed <= 0 {
		return FallbackDuration
	}
	days := durationDays * math.Pow(float64(speed), -0.2) * math.Pow(math.Ceil(distance), 0.2)
	seconds := int64(math.Round(days * secondsPerDay))
	if seconds < MinDurationSeconds {
		return MinDurationSeconds
	}
	return seconds
}

// Cost returns the currency a fleet costs to send over a distance
func Cost(army models.Army, distance float64) int64 {
	scale := math.Pow(math.Ceil(distance), 0.8)
	var total float64
	for _, u := range army {
		total += float64(u.Quantity) * float64(u.Stats.Salary) / 10 * scale
	}
	return int64(math.Floor(total))
}

// CheckFleet rejects rosters without any unit to send
func CheckFleet(roster models.Roster) error {
	if roster.IsEmpty() {
		return ErrEmptyFleet
	}
	return nil
}

// CheckAffordable rejects plans costing more than the available currency
func CheckAffordable(plan Plan, available int64) error {
	if plan.Cost > available {
		return fmt.Errorf("%w: need %d, have %d", ErrInsufficientFunds, plan.Cost, available)
	}
	return nil
}

// Calculator computes travel plans against a config snapshot
type Calculator struct {
	Config   *models.Config
	Resolver *stats.Resolver
}

// NewCalculator creates a calculator for a config snapshot
func NewCalculator(cfg *models.Config) *Calculator {
	return &Calculator{Config: cfg, Resolver: stats.NewResolverWithConfig(cfg)}
}

// Compute returns distance, duration, cost and speed for sending roster
// from origin to destination. It fails only on malformed rosters.
func (c *Calculator) Compute(origin, destination models.Coordinates, roster models.Roster, levels models.TrainingLevels) (Plan, error) {
	army, err := c.Resolver.Army(c.Config, roster, levels)
	if err != nil {
		return Plan{}, fmt.Errorf("failed to resolve fleet: %w", err)
	}
	distance := Distance(origin, destination)
	speed := FleetSpeed(army)
	return Plan{
		Distance:        distance,
		DurationSeconds: DurationSeconds(distance, speed),
		Cost:            Cost(army, distance),
		Speed:           speed,
	}, nil
}
