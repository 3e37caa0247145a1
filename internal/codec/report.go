package codec

import (
	"fmt"

	"github.com/toolsVendettaHispanos/AutoAuth-sub000/internal/models"
)

// Field numbers. Never reuse a number once released.
//
//	BattleReport: 1 id, 2 winner, 3 outcome, 4 message, 5 rounds,
//	              6 attacker, 7 defender, 8 attacker_survivors, 9 defender_survivors
//	RoundReport:  1 number, 2 attacker, 3 defender
//	RoundSide:    1 units, 2 raw_attack, 3 power_attack, 4 power_percent,
//	              5 raw_defense, 6 power_defense
//	UnitLoss:     1 unit, 2 name, 3 initial, 4 lost
//	SideStats:    1 initial, 2 final, 3 troops_lost, 4 points_lost,
//	              5 resources_lost, 6 looted
//	Resources:    1 weapons, 2 ammunition, 3 currency, 4 alcohol
//	RosterEntry:  1 unit, 2 quantity

// EncodeBattleReport serializes a report. The output is deterministic.
func EncodeBattleReport(r *models.BattleReport) []byte {
	var b []byte
	b = appendString(b, 1, r.ID)
	b = appendUint(b, 2, winnerToWire(r.Winner))
	b = appendUint(b, 3, outcomeToWire(r.Outcome))
	b = appendString(b, 4, r.Message)
	for _, round := range r.Rounds {
		b = appendMessage(b, 5, encodeRound(round))
	}
	b = appendMessage(b, 6, encodeSideStats(r.Attacker))
	b = appendMessage(b, 7, encodeSideStats(r.Defender))
	for _, e := range r.AttackerSurvivors {
		b = appendMessage(b, 8, encodeRosterEntry(e))
	}
	for _, e := range r.DefenderSurvivors {
		b = appendMessage(b, 9, encodeRosterEntry(e))
	}
	return b
}

// DecodeBattleReport parses a report written by EncodeBattleReport.
// Unknown fields are ignored.
func DecodeBattleReport(b []byte) (*models.BattleReport, error) {
	r := &models.BattleReport{}
	err := fields(b, func(f field) error {
		switch f.num {
		case 1:
			r.ID = f.str()
		case 2:
			r.Winner = wireToWinner(f.u64())
		case 3:
			r.Outcome = wireToOutcome(f.u64())
		case 4:
			r.Message = f.str()
		case 5:
			msg, ok := f.message()
			if !ok {
				return nil
			}
			round, err := decodeRound(msg)
			if err != nil {
				return fmt.Errorf("round %d: %w", len(r.Rounds), err)
			}
			r.Rounds = append(r.Rounds, round)
		case 6, 7:
			msg, ok := f.message()
			if !ok {
				return nil
			}
			s, err := decodeSideStats(msg)
			if err != nil {
				return err
			}
			if f.num == 6 {
				r.Attacker = s
			} else {
				r.Defender = s
			}
		case 8, 9:
			msg, ok := f.message()
			if !ok {
				return nil
			}
			e, err := decodeRosterEntry(msg)
			if err != nil {
				return err
			}
			if f.num == 8 {
				r.AttackerSurvivors = append(r.AttackerSurvivors, e)
			} else {
				r.DefenderSurvivors = append(r.DefenderSurvivors, e)
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to decode battle report: %w", err)
	}
	return r, nil
}

func encodeRound(r models.RoundReport) []byte {
	var b []byte
	b = appendInt(b, 1, int64(r.Number))
	b = appendMessage(b, 2, encodeRoundSide(r.Attacker))
	b = appendMessage(b, 3, encodeRoundSide(r.Defender))
	return b
}

func decodeRound(b []byte) (models.RoundReport, error) {
	var r models.RoundReport
	err := fields(b, func(f field) error {
		switch f.num {
		case 1:
			r.Number = int(f.i64())
		case 2, 3:
			msg, ok := f.message()
			if !ok {
				return nil
			}
			s, err := decodeRoundSide(msg)
			if err != nil {
				return err
			}
			if f.num == 2 {
				r.Attacker = s
			} else {
				r.Defender = s
			}
		}
		return nil
	})
	return r, err
}

func encodeRoundSide(s models.RoundSide) []byte {
	var b []byte
	for _, u := range s.Units {
		b = appendMessage(b, 1, encodeUnitLoss(u))
	}
	b = appendInt(b, 2, s.RawAttack)
	b = appendFloat(b, 3, s.PowerAttack)
	b = appendFloat(b, 4, s.PowerPercent)
	b = appendInt(b, 5, s.RawDefense)
	b = appendFloat(b, 6, s.PowerDefense)
	return b
}

func decodeRoundSide(b []byte) (models.RoundSide, error) {
	var s models.RoundSide
	err := fields(b, func(f field) error {
		switch f.num {
		case 1:
			msg, ok := f.message()
			if !ok {
				return nil
			}
			u, err := decodeUnitLoss(msg)
			if err != nil {
				return err
			}
			s.Units = append(s.Units, u)
		case 2:
			s.RawAttack = f.i64()
		case 3:
			s.PowerAttack = f.f64()
		case 4:
			s.PowerPercent = f.f64()
		case 5:
			s.RawDefense = f.i64()
		case 6:
			s.PowerDefense = f.f64()
		}
		return nil
	})
	return s, err
}

func encodeUnitLoss(u models.UnitLoss) []byte {
	var b []byte
	b = appendString(b, 1, string(u.UnitID))
	b = appendString(b, 2, u.Name)
	b = appendInt(b, 3, u.Initial)
	b = appendInt(b, 4, u.Lost)
	return b
}

func decodeUnitLoss(b []byte) (models.UnitLoss, error) {
	var u models.UnitLoss
	err := fields(b, func(f field) error {
		switch f.num {
		case 1:
			u.UnitID = models.UnitID(f.str())
		case 2:
			u.Name = f.str()
		case 3:
			u.Initial = f.i64()
		case 4:
			u.Lost = f.i64()
		}
		return nil
	})
	return u, err
}

func encodeSideStats(s models.SideStats) []byte {
	var b []byte
	b = appendInt(b, 1, s.InitialTroops)
	b = appendInt(b, 2, s.FinalTroops)
	b = appendInt(b, 3, s.TroopsLost)
	b = appendInt(b, 4, s.PointsLost)
	b = appendMessage(b, 5, encodeResources(s.ResourcesLost))
	if s.Looted != nil {
		b = appendMessage(b, 6, encodeResources(*s.Looted))
	}
	return b
}

func decodeSideStats(b []byte) (models.SideStats, error) {
	var s models.SideStats
	err := fields(b, func(f field) error {
		switch f.num {
		case 1:
			s.InitialTroops = f.i64()
		case 2:
			s.FinalTroops = f.i64()
		case 3:
			s.TroopsLost = f.i64()
		case 4:
			s.PointsLost = f.i64()
		case 5, 6:
			msg, ok := f.message()
			if !ok {
				return nil
			}
			res, err := decodeResources(msg)
			if err != nil {
				return err
			}
			if f.num == 5 {
				s.ResourcesLost = res
			} else {
				s.Looted = &res
			}
		}
		return nil
	})
	return s, err
}

func encodeResources(r models.ResourceBundle) []byte {
	var b []byte
	b = appendInt(b, 1, r.Weapons)
	b = appendInt(b, 2, r.Ammunition)
	b = appendInt(b, 3, r.Currency)
	b = appendInt(b, 4, r.Alcohol)
	return b
}

func decodeResources(b []byte) (models.ResourceBundle, error) {
	var r models.ResourceBundle
	err := fields(b, func(f field) error {
		switch f.num {
		case 1:
			r.Weapons = f.i64()
		case 2:
			r.Ammunition = f.i64()
		case 3:
			r.Currency = f.i64()
		case 4:
			r.Alcohol = f.i64()
		}
		return nil
	})
	return r, err
}

func encodeRosterEntry(e models.RosterEntry) []byte {
	var b []byte
	b = appendString(b, 1, string(e.UnitID))
	b = appendInt(b, 2, e.Quantity)
	return b
}

func decodeRosterEntry(b []byte) (models.RosterEntry, error) {
	var e models.RosterEntry
	err := fields(b, func(f field) error {
		switch f.num {
		case 1:
			e.UnitID = models.UnitID(f.str())
		case 2:
			e.Quantity = f.i64()
		}
		return nil
	})
	return e, err
}
