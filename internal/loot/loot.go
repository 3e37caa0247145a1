package loot

import "github.com/toolsVendettaHispanos/AutoAuth-sub000/internal/models"

// Result holds the figures behind a loot computation
type Result struct {
	Lootable models.ResourceBundle `json:"lootable"`
	Capacity int64                 `json:"capacity"`
	Looted   models.ResourceBundle `json:"looted"`
}

// Lootable returns the part of stored above the safe floor, per kind
func Lootable(stored, safe models.ResourceBundle) models.ResourceBundle {
	var out models.ResourceBundle
	stored.Each(func(k models.ResourceKind, amount int64) {
		if surplus := amount - safe.Get(k); surplus > 0 {
			out.Set(k, surplus)
		}
	})
	return out
}

// Capacity returns what the surviving units can carry
func Capacity(survivors models.Army) int64 {
	var total int64
	for _, u := range survivors {
		if u.Quantity > 0 {
			total += u.Quantity * u.Stats.Capacity
		}
	}
	return total
}

// Compute splits what the attackers can carry evenly across the kinds with
// a surplus. Each share is floored and capped at the kind's own surplus; the
// part a cap cuts off is not handed to other kinds.
func Compute(stored, safe models.ResourceBundle, survivors models.Army) Result {
	res := Result{
		Lootable: Lootable(stored, safe),
		Capacity: Capacity(survivors),
	}

	var kinds int64
	res.Lootable.Each(func(_ models.ResourceKind, amount int64) {
		if amount > 0 {
			kinds++
		}
	})
	if kinds == 0 || res.Capacity <= 0 {
		return res
	}

	budget := min(res.Capacity, res.Lootable.Total())
	share := budget / kinds
	res.Lootable.Each(func(k models.ResourceKind, amount int64) {
		if amount > 0 {
			res.Looted.Set(k, min(share, amount))
		}
	})
	return res
}
