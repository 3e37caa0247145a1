package combat

import (
	"math"

	"github.com/toolsVendettaHispanos/AutoAuth-sub000/internal/models"
)

// MaxRounds bounds every battle
const MaxRounds = 5

// Side is one participant of a battle: its resolved army and the power
// percentage (0..100) applied to its attack and defense totals.
type Side struct {
	Army         models.Army
	PowerPercent float64
}

// Result is the outcome of a battle
type Result struct {
	Rounds   []models.RoundReport
	Outcome  models.Outcome
	Winner   models.Winner
	Message  string
	Attacker models.SideStats
	Defender models.SideStats

	// Final quantities, in the order of the input armies
	AttackerFinal models.Army
	DefenderFinal models.Army
}

// Resolve runs the battle between attacker and defender. The input armies
// are not modified.
func Resolve(attacker, defender Side) Result {
	att := attacker.Army.Clone()
	def := defender.Army.Clone()

	var rounds []models.RoundReport
	if att.Total() == 0 || def.Total() == 0 {
		rounds = append(rounds, models.RoundReport{
			Number:   0,
			Attacker: snapshot(att, attacker.PowerPercent),
			Defender: snapshot(def, defender.PowerPercent),
		})
	} else {
		for n := 1; n <= MaxRounds; n++ {
			rounds = append(rounds, fight(n, att, def, attacker.PowerPercent, defender.PowerPercent))
			if att.Total() == 0 || def.Total() == 0 {
				break
			}
		}
	}

	outcome := decide(attacker.Army.Total(), defender.Army.Total(), att.Total(), def.Total())
	return Result{
		Rounds:        rounds,
		Outcome:       outcome,
		Winner:        outcome.Winner(),
		Message:       outcome.Message(),
		Attacker:      aggregate(attacker.Army, att),
		Defender:      aggregate(defender.Army, def),
		AttackerFinal: att,
		DefenderFinal: def,
	}
}

// fight plays one round. Losses on both sides are computed from the
// quantities at the start of the round, then applied together.
func fight(n int, att, def models.Army, attPower, defPower float64) models.RoundReport {
	report := models.RoundReport{
		Number:   n,
		Attacker: snapshot(att, attPower),
		Defender: snapshot(def, defPower),
	}

	attRatio := Ratio(report.Defender.PowerAttack, report.Attacker.PowerDefense)
	defRatio := Ratio(report.Attacker.PowerAttack, report.Defender.PowerDefense)

	applyLosses(att, report.Attacker.Units, attRatio)
	applyLosses(def, report.Defender.Units, defRatio)
	return report
}

// Ratio returns the share of a side lost in a round: opposing attack over own
// defense, capped at 1. A side without defense is wiped out.
func Ratio(opposingAttack, ownDefense float64) float64 {
	if ownDefense <= 0 {
		return 1
	}
	r := opposingAttack / ownDefense
	if r > 1 {
		return 1
	}
	if r < 0 {
		return 0
	}
	return r
}

func applyLosses(army models.Army, lines []models.UnitLoss, ratio float64) {
	for i := range army {
		lost := int64(math.Floor(float64(army[i].Quantity) * ratio))
		if lost > army[i].Quantity {
			lost = army[i].Quantity
		}
		army[i].Quantity -= lost
		lines[i].Lost = lost
	}
}

// snapshot captures the quantities and totals of a side before losses
func snapshot(army models.Army, power float64) models.RoundSide {
	side := models.RoundSide{
		Units:        make([]models.UnitLoss, len(army)),
		PowerPercent: power,
	}
	for i, u := range army {
		side.Units[i] = models.UnitLoss{UnitID: u.UnitID, Name: u.Name, Initial: u.Quantity}
		side.RawAttack += u.Stats.Attack * u.Quantity
		side.RawDefense += u.Stats.Defense * u.Quantity
	}
	side.PowerAttack = float64(side.RawAttack) * power / 100
	side.PowerDefense = float64(side.RawDefense) * power / 100
	return side
}

func decide(attStart, defStart, attEnd, defEnd int64) models.Outcome {
	switch {
	case attStart == 0 && defStart == 0:
		return models.OutcomeBothAbsent
	case attStart == 0:
		return models.OutcomeAttackerAbsent
	case defStart == 0:
		return models.OutcomeDefenderAbsent
	case attEnd > 0 && defEnd == 0:
		return models.OutcomeAttackerWins
	case attEnd == 0 && defEnd > 0:
		return models.OutcomeDefenderWins
	case attEnd == 0 && defEnd == 0:
		return models.OutcomeMutualAnnihilation
	}
	return models.OutcomeTimeLimit
}

// aggregate values a side's losses at replacement cost
func aggregate(initial, final models.Army) models.SideStats {
	s := models.SideStats{
		InitialTroops: initial.Total(),
		FinalTroops:   final.Total(),
	}
	s.TroopsLost = s.InitialTroops - s.FinalTroops
	for i, u := range initial {
		lost := u.Quantity - final[i].Quantity
		if lost <= 0 || u.Config == nil {
			continue
		}
		s.PointsLost += u.Config.Points * lost
		s.ResourcesLost = s.ResourcesLost.Add(u.Config.Cost.Scale(lost))
	}
	return s
}
