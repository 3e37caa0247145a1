package travel

import (
	"errors"
	"math"
	"testing"

	"github.com/toolsVendettaHispanos/AutoAuth-sub000/internal/models"
)

func TestVirtualCoords(t *testing.T) {
	tests := []struct {
		c            models.Coordinates
		wantH, wantW int
	}{
		{models.Coordinates{City: 1, Quarter: 1, Building: 1}, 0, 0},
		{models.Coordinates{City: 1, Quarter: 15, Building: 17}, 14, 16},
		{models.Coordinates{City: 2, Quarter: 1, Building: 5}, 15, 4},
		{models.Coordinates{City: 3, Quarter: 4, Building: 9}, 33, 8},
	}
	for _, tt := range tests {
		h, w := VirtualCoords(tt.c)
		if h != tt.wantH || w != tt.wantW {
			t.Errorf("VirtualCoords(%+v) = (%d, %d), want (%d, %d)", tt.c, h, w, tt.wantH, tt.wantW)
		}
	}
}

func TestDistance(t *testing.T) {
	a := models.Coordinates{City: 1, Quarter: 1, Building: 1}
	b := models.Coordinates{City: 1, Quarter: 4, Building: 5}
	if got := Distance(a, b); got != 5 {
		t.Errorf("Distance = %v, want 5", got)
	}
	if Distance(a, b) != Distance(b, a) {
		t.Error("distance is not symmetric")
	}
	if Distance(a, a) != 0 {
		t.Error("distance to self is not 0")
	}
}

func TestDurationLiteralFormula(t *testing.T) {
	want := int64(math.Round(0.21989 * math.Pow(1000, -0.2) * math.Pow(100, 0.2) * 86400))
	if got := DurationSeconds(100, 1000); got != want {
		t.Errorf("DurationSeconds(100, 1000) = %d, want %d", got, want)
	}
	// roughly 0.139 days
	if want < 11900 || want > 12100 {
		t.Errorf("formula value %d out of expected range", want)
	}
}

func TestDurationCeilsDistance(t *testing.T) {
	if DurationSeconds(99.2, 1000) != DurationSeconds(100, 1000) {
		t.Error("distance should be rounded up before scaling")
	}
}

func TestDurationFallbacks(t *testing.T) {
	if got := DurationSeconds(50, 0); got != FallbackDuration {
		t.Errorf("zero speed: got %d, want %d", got, FallbackDuration)
	}
	if got := DurationSeconds(50, -20); got != FallbackDuration {
		t.Errorf("negative speed: got %d, want %d", got, FallbackDuration)
	}
	if got := DurationSeconds(0, 1000); got != MinDurationSeconds {
		t.Errorf("zero distance: got %d, want %d", got, MinDurationSeconds)
	}
}

func TestFleetSpeed(t *testing.T) {
	army := models.Army{
		{UnitID: "truck", Quantity: 2, Stats: models.Resolved{Speed: 2400}},
		{UnitID: "sniper", Quantity: 0, Stats: models.Resolved{Speed: 900}},
		{UnitID: "thug", Quantity: 5, Stats: models.Resolved{Speed: 1200}},
	}
	if got := FleetSpeed(army); got != 1200 {
		t.Errorf("FleetSpeed = %d, want 1200 (zero-quantity sniper ignored)", got)
	}
	if got := FleetSpeed(nil); got != FallbackSpeed {
		t.Errorf("empty fleet speed = %d, want %d", got, FallbackSpeed)
	}
}

func TestCost(t *testing.T) {
	army := models.Army{
		{UnitID: "thug", Quantity: 10, Stats: models.Resolved{Salary: 2}},
		{UnitID: "truck", Quantity: 1, Stats: models.Resolved{Salary: 12}},
	}
	// (10*2/10 + 1*12/10) * 1^0.8 = 3.2
	if got := Cost(army, 1); got != 3 {
		t.Errorf("Cost = %d, want 3", got)
	}
	want := int64(math.Floor(2*math.Pow(32, 0.8) + 1.2*math.Pow(32, 0.8)))
	if got := Cost(army, 31.5); got != want {
		t.Errorf("Cost = %d, want %d", got, want)
	}
	if Cost(nil, 100) != 0 {
		t.Error("empty fleet should cost nothing")
	}
}

func TestCalculatorCompute(t *testing.T) {
	calc := NewCalculator(models.DefaultConfig())
	origin := models.Coordinates{City: 1, Quarter: 1, Building: 1}
	dest := models.Coordinates{City: 1, Quarter: 4, Building: 5}
	roster := models.Roster{{UnitID: "thug", Quantity: 10}, {UnitID: "truck", Quantity: 1}}

	plan, err := calc.Compute(origin, dest, roster, nil)
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	if plan.Distance != 5 {
		t.Errorf("Distance = %v, want 5", plan.Distance)
	}
	if plan.Speed != 1200 {
		t.Errorf("Speed = %d, want 1200", plan.Speed)
	}
	if plan.DurationSeconds != DurationSeconds(5, 1200) {
		t.Errorf("Duration = %d, want %d", plan.DurationSeconds, DurationSeconds(5, 1200))
	}
	if want := int64(math.Floor(3.2 * math.Pow(5, 0.8))); plan.Cost != want {
		t.Errorf("Cost = %d, want %d", plan.Cost, want)
	}
}

func TestCalculatorAppliesTraining(t *testing.T) {
	calc := NewCalculator(models.DefaultConfig())
	roster := models.Roster{{UnitID: "truck", Quantity: 1}}
	here := models.Coordinates{City: 1, Quarter: 1, Building: 1}

	plan, err := calc.Compute(here, here, roster, models.TrainingLevels{models.TrainingRoutes: 25})
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	if plan.Speed != 3600 {
		t.Errorf("Speed = %d, want 3600", plan.Speed)
	}
}

func TestCalculatorRejectsMalformedRoster(t *testing.T) {
	calc := NewCalculator(models.DefaultConfig())
	here := models.Coordinates{City: 1, Quarter: 1, Building: 1}

	_, err := calc.Compute(here, here, models.Roster{{UnitID: "thug", Quantity: -1}}, nil)
	if !errors.Is(err, models.ErrNegativeQuantity) {
		t.Errorf("expected ErrNegativeQuantity, got %v", err)
	}
}

func TestGuards(t *testing.T) {
	if err := CheckFleet(models.Roster{{UnitID: "thug", Quantity: 0}}); !errors.Is(err, ErrEmptyFleet) {
		t.Errorf("expected ErrEmptyFleet, got %v", err)
	}
	if err := CheckFleet(models.Roster{{UnitID: "thug", Quantity: 1}}); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	plan := Plan{Cost: 500}
	if err := CheckAffordable(plan, 499); !errors.Is(err, ErrInsufficientFunds) {
		t.Errorf("expected ErrInsufficientFunds, got %v", err)
	}
	if err := CheckAffordable(plan, 500); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}
