package loot

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/toolsVendettaHispanos/AutoAuth-sub000/internal/models"
)

func carriers(qty, capacity int64) models.Army {
	return models.Army{{UnitID: "truck", Quantity: qty, Stats: models.Resolved{Capacity: capacity}}}
}

func TestCompute(t *testing.T) {
	tests := []struct {
		name      string
		stored    models.ResourceBundle
		safe      models.ResourceBundle
		survivors models.Army
		want      models.ResourceBundle
	}{
		{
			name:      "capacity bound, even split",
			stored:    models.ResourceBundle{Weapons: 1000, Ammunition: 1000, Currency: 1000, Alcohol: 1000},
			survivors: carriers(4, 100),
			want:      models.ResourceBundle{Weapons: 100, Ammunition: 100, Currency: 100, Alcohol: 100},
		},
		{
			name:      "zero surplus kinds get nothing",
			stored:    models.ResourceBundle{Weapons: 500, Ammunition: 100, Currency: 900},
			safe:      models.ResourceBundle{Ammunition: 200},
			survivors: carriers(1, 300),
			want:      models.ResourceBundle{Weapons: 150, Currency: 150},
		},
		{
			name:      "capped share is not redistributed",
			stored:    models.ResourceBundle{Weapons: 10, Currency: 1000},
			survivors: carriers(1, 400),
			want:      models.ResourceBundle{Weapons: 10, Currency: 200},
		},
		{
			name:      "everything fits",
			stored:    models.ResourceBundle{Weapons: 30, Alcohol: 30},
			survivors: carriers(10, 100),
			want:      models.ResourceBundle{Weapons: 30, Alcohol: 30},
		},
		{
			name:      "floor division",
			stored:    models.ResourceBundle{Weapons: 100, Ammunition: 100, Currency: 100},
			survivors: carriers(1, 10),
			want:      models.ResourceBundle{Weapons: 3, Ammunition: 3, Currency: 3},
		},
		{
			name:      "no surplus",
			stored:    models.ResourceBundle{Weapons: 100},
			safe:      models.ResourceBundle{Weapons: 100},
			survivors: carriers(1, 10),
		},
		{
			name:      "no capacity",
			stored:    models.ResourceBundle{Weapons: 100},
			survivors: carriers(5, 0),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Compute(tt.stored, tt.safe, tt.survivors)
			assert.Equal(t, tt.want, got.Looted)
		})
	}
}

func TestComputeBounds(t *testing.T) {
	stored := models.ResourceBundle{Weapons: 7000, Ammunition: 50, Currency: 123456, Alcohol: 0}
	safe := models.ResourceBundle{Weapons: 2000, Ammunition: 100, Currency: 3000, Alcohol: 10}

	for _, capacity := range []int64{0, 1, 99, 1000, 5001, 10000, 1_000_000} {
		got := Compute(stored, safe, carriers(1, capacity))

		assert.LessOrEqual(t, got.Looted.Total(), got.Capacity)
		assert.LessOrEqual(t, got.Looted.Total(), got.Lootable.Total())
		assert.Zero(t, got.Looted.Ammunition, "ammunition is below the safe floor")
		assert.Zero(t, got.Looted.Alcohol, "alcohol is below the safe floor")
		got.Looted.Each(func(k models.ResourceKind, v int64) {
			assert.GreaterOrEqual(t, v, int64(0), k)
			assert.LessOrEqual(t, v, got.Lootable.Get(k), k)
		})
	}
}

func TestLootableAndCapacity(t *testing.T) {
	l := Lootable(
		models.ResourceBundle{Weapons: 10, Ammunition: 5, Currency: 0, Alcohol: 7},
		models.ResourceBundle{Weapons: 3, Ammunition: 9},
	)
	assert.Equal(t, models.ResourceBundle{Weapons: 7, Alcohol: 7}, l)

	army := models.Army{
		{UnitID: "thug", Quantity: 3, Stats: models.Resolved{Capacity: 20}},
		{UnitID: "truck", Quantity: 0, Stats: models.Resolved{Capacity: 2500}},
		{UnitID: "gunman", Quantity: 2, Stats: models.Resolved{Capacity: 40}},
	}
	assert.Equal(t, int64(140), Capacity(army))
}
