package models

// Winner tags the side that won a battle
type Winner string

const (
	WinnerAttacker Winner = "attacker"
	WinnerDefender Winner = "defender"
	WinnerDraw     Winner = "draw"
)

// Outcome tells how a battle ended. Each outcome has its own message.
type Outcome string

const (
	OutcomeAttackerWins       Outcome = "attacker_wins"
	OutcomeDefenderWins       Outcome = "defender_wins"
	OutcomeMutualAnnihilation Outcome = "mutual_annihilation"
	OutcomeTimeLimit          Outcome = "time_limit"
	OutcomeAttackerAbsent     Outcome = "attacker_absent"
	OutcomeDefenderAbsent     Outcome = "defender_absent"
	OutcomeBothAbsent         Outcome = "both_absent"
)

// Message returns the human-readable text for an outcome
func (o Outcome) Message() string {
	switch o {
	case OutcomeAttackerWins:
		return "The attackers wiped out the defense and took the building."
	case OutcomeDefenderWins:
		return "The defenders held the building; the attacking troops were wiped out."
	case OutcomeMutualAnnihilation:
		return "Draw: both sides were annihilated."
	case OutcomeTimeLimit:
		return "Draw: neither side broke the other before the fighting ended."
	case OutcomeAttackerAbsent:
		return "The attackers arrived without troops; the defenders keep the building."
	case OutcomeDefenderAbsent:
		return "The building was undefended; the attackers took it without a fight."
	case OutcomeBothAbsent:
		return "Draw: there were no troops on either side."
	}
	return ""
}

// Winner returns the winner tag implied by an outcome
func (o Outcome) Winner() Winner {
	switch o {
	case OutcomeAttackerWins, OutcomeDefenderAbsent:
		return WinnerAttacker
	case OutcomeDefenderWins, OutcomeAttackerAbsent:
		return WinnerDefender
	}
	return WinnerDraw
}

// UnitLoss is one unit line of a round report
type UnitLoss struct {
	UnitID  UnitID `json:"unit"`
	Name    string `json:"name"`
	Initial int64  `json:"initial"`
	Lost    int64  `json:"lost"`
}

// Remaining returns the quantity left after the round
func (u UnitLoss) Remaining() int64 {
	return u.Initial - u.Lost
}

// RoundSide is one side's view of a round
type RoundSide struct {
	Units        []UnitLoss `json:"units"`
	RawAttack    int64      `json:"raw_attack"`
	PowerAttack  float64    `json:"power_attack"`
	PowerPercent float64    `json:"power_percent"`
	RawDefense   int64      `json:"raw_defense"`
	PowerDefense float64    `json:"power_defense"`
}

// Initial returns the side's troop count at the start of the round
func (s RoundSide) Initial() int64 {
	var n int64
	for _, u := range s.Units {
		n += u.Initial
	}
	return n
}

// Lost returns the side's losses during the round
func (s RoundSide) Lost() int64 {
	var n int64
	for _, u := range s.Units {
		n += u.Lost
	}
	return n
}

// After returns the quantities left at the end of the round
func (s RoundSide) After() Roster {
	out := make(Roster, 0, len(s.Units))
	for _, u := range s.Units {
		out = append(out, RosterEntry{UnitID: u.UnitID, Quantity: u.Remaining()})
	}
	return out
}

// RoundReport is a per-round snapshot. Number 0 marks the synthetic
// round emitted when a side started without troops.
type RoundReport struct {
	Number   int       `json:"number"`
	Attacker RoundSide `json:"attacker"`
	Defender RoundSide `json:"defender"`
}

// SideStats aggregates one side's result over the whole battle
type SideStats struct {
	InitialTroops int64           `json:"initial_troops"`
	FinalTroops   int64           `json:"final_troops"`
	TroopsLost    int64           `json:"troops_lost"`
	PointsLost    int64           `json:"points_lost"`
	ResourcesLost ResourceBundle  `json:"resources_lost"`
	Looted        *ResourceBundle `json:"looted,omitempty"`
}

// BattleReport is the immutable result of one battle
type BattleReport struct {
	ID                string        `json:"id"`
	Winner            Winner        `json:"winner"`
	Outcome           Outcome       `json:"outcome"`
	Message           string        `json:"message"`
	Rounds            []RoundReport `json:"rounds"`
	Attacker          SideStats     `json:"attacker"`
	Defender          SideStats     `json:"defender"`
	AttackerSurvivors Roster        `json:"attacker_survivors"`
	DefenderSurvivors Roster        `json:"defender_survivors"`
}

// RoundsFought returns the number of real rounds (synthetic round 0 excluded)
func (b *BattleReport) RoundsFought() int {
	n := 0
	for _, r := range b.Rounds {
		if r.Number > 0 {
			n++
		}
	}
	return n
}

// LastRound returns the last round report, nil if there is none
func (b *BattleReport) LastRound() *RoundReport {
	if len(b.Rounds) == 0 {
		return nil
	}
	return &b.Rounds[len(b.Rounds)-1]
}
