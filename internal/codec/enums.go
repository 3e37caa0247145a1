// Package codec encodes battle reports in protobuf wire format
package codec

import "github.com/toolsVendettaHispanos/AutoAuth-sub000/internal/models"

// Wire values of the report enums. 0 is reserved for unknown values.
const (
	winnerUnknown uint64 = iota
	winnerAttacker
	winnerDefender
	winnerDraw
)

const (
	outcomeUnknown uint64 = iota
	outcomeAttackerWins
	outcomeDefenderWins
	outcomeMutualAnnihilation
	outcomeTimeLimit
	outcomeAttackerAbsent
	outcomeDefenderAbsent
	outcomeBothAbsent
)

// winnerToWire converts a model Winner to its wire value
func winnerToWire(w models.Winner) uint64 {
	switch w {
	case models.WinnerAttacker:
		return winnerAttacker
	case models.WinnerDefender:
		return winnerDefender
	case models.WinnerDraw:
		return winnerDraw
	default:
		return winnerUnknown
	}
}

// wireToWinner converts a wire value to a model Winner
func wireToWinner(v uint64) models.Winner {
	switch v {
	case winnerAttacker:
		return models.WinnerAttacker
	case winnerDefender:
		return models.WinnerDefender
	case winnerDraw:
		return models.WinnerDraw
	default:
		return ""
	}
}

// outcomeToWire converts a model Outcome to its wire value
func outcomeToWire(o models.Outcome) uint64 {
	switch o {
	case models.OutcomeAttackerWins:
		return outcomeAttackerWins
	case models.OutcomeDefenderWins:
		return outcomeDefenderWins
	case models.OutcomeMutualAnnihilation:
		return outcomeMutualAnnihilation
	case models.OutcomeTimeLimit:
		return outcomeTimeLimit
	case models.OutcomeAttackerAbsent:
		return outcomeAttackerAbsent
	case models.OutcomeDefenderAbsent:
		return outcomeDefenderAbsent
	case models.OutcomeBothAbsent:
		return outcomeBothAbsent
	default:
		return outcomeUnknown
	}
}

// wireToOutcome converts a wire value to a model Outcome
func wireToOutcome(v uint64) models.Outcome {
	switch v {
	case outcomeAttackerWins:
		return models.OutcomeAttackerWins
	case outcomeDefenderWins:
		return models.OutcomeDefenderWins
	case outcomeMutualAnnihilation:
		return models.OutcomeMutualAnnihilation
	case outcomeTimeLimit:
		return models.OutcomeTimeLimit
	case outcomeAttackerAbsent:
		return models.OutcomeAttackerAbsent
	case outcomeDefenderAbsent:
		return models.OutcomeDefenderAbsent
	case outcomeBothAbsent:
		return models.OutcomeBothAbsent
	default:
		return ""
	}
}
