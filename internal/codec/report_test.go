package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/encoding/protowire"

	"github.com/toolsVendettaHispanos/AutoAuth-sub000/internal/models"
)

func sampleReport() *models.BattleReport {
	looted := models.ResourceBundle{Weapons: 120, Currency: 120}
	return &models.BattleReport{
		ID:      "4f9c2d8e-0000-5000-8000-000000000000",
		Winner:  models.WinnerAttacker,
		Outcome: models.OutcomeAttackerWins,
		Message: models.OutcomeAttackerWins.Message(),
		Rounds: []models.RoundReport{
			{
				Number: 1,
				Attacker: models.RoundSide{
					Units:        []models.UnitLoss{{UnitID: "gunman", Name: "Gunman", Initial: 30, Lost: 6}},
					RawAttack:    1200,
					PowerAttack:  1051.25,
					PowerPercent: 87.6041666,
					RawDefense:   600,
					PowerDefense: 525.625,
				},
				Defender: models.RoundSide{
					Units: []models.UnitLoss{
						{UnitID: "bodyguard", Name: "Bodyguard", Initial: 10, Lost: 10},
						{UnitID: "lookout", Name: "Lookout", Initial: 0, Lost: 0},
					},
					RawAttack:    150,
					PowerAttack:  150,
					PowerPercent: 100,
					RawDefense:   600,
					PowerDefense: 600,
				},
			},
		},
		Attacker: models.SideStats{
			InitialTroops: 30,
			FinalTroops:   24,
			TroopsLost:    6,
			PointsLost:    24,
			ResourcesLost: models.ResourceBundle{Weapons: 1500, Ammunition: 2400, Currency: 5400},
			Looted:        &looted,
		},
		Defender: models.SideStats{
			InitialTroops: 10,
			TroopsLost:    10,
			PointsLost:    30,
			ResourcesLost: models.ResourceBundle{Weapons: 1500, Ammunition: 3000, Currency: 7000},
		},
		AttackerSurvivors: models.Roster{{UnitID: "gunman", Quantity: 24}},
		DefenderSurvivors: models.Roster{{UnitID: "lookout", Quantity: 0}},
	}
}

func TestBattleReportRoundTrip(t *testing.T) {
	want := sampleReport()

	got, err := DecodeBattleReport(EncodeBattleReport(want))
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestEncodeDeterministic(t *testing.T) {
	a := EncodeBattleReport(sampleReport())
	b := EncodeBattleReport(sampleReport())
	assert.Equal(t, a, b)
}

func TestLootPresenceKept(t *testing.T) {
	r := sampleReport()
	zero := models.ResourceBundle{}
	r.Attacker.Looted = &zero

	got, err := DecodeBattleReport(EncodeBattleReport(r))
	require.NoError(t, err)
	require.NotNil(t, got.Attacker.Looted, "an empty loot is still a loot")
	assert.True(t, got.Attacker.Looted.IsZero())
	assert.Nil(t, got.Defender.Looted)
}

func TestSyntheticRoundZero(t *testing.T) {
	r := &models.BattleReport{
		Winner:  models.WinnerDefender,
		Outcome: models.OutcomeAttackerAbsent,
		Rounds: []models.RoundReport{{
			Number:   0,
			Attacker: models.RoundSide{PowerPercent: 100},
			Defender: models.RoundSide{
				Units:        []models.UnitLoss{{UnitID: "sniper", Name: "Sniper", Initial: 4}},
				RawAttack:    240,
				PowerAttack:  240,
				PowerPercent: 100,
				RawDefense:   360,
				PowerDefense: 360,
			},
		}},
	}

	got, err := DecodeBattleReport(EncodeBattleReport(r))
	require.NoError(t, err)
	require.Len(t, got.Rounds, 1)
	assert.Equal(t, 0, got.Rounds[0].Number)
	assert.Equal(t, r.Rounds[0].Defender, got.Rounds[0].Defender)
	assert.Equal(t, 0, got.RoundsFought())
}

func TestDecodeSkipsUnknownFields(t *testing.T) {
	b := EncodeBattleReport(sampleReport())
	b = protowire.AppendTag(b, 42, protowire.BytesType)
	b = protowire.AppendString(b, "future field")
	b = protowire.AppendTag(b, 43, protowire.Fixed32Type)
	b = protowire.AppendFixed32(b, 7)

	got, err := DecodeBattleReport(b)
	require.NoError(t, err)
	assert.Equal(t, sampleReport(), got)
}

func TestDecodeMalformed(t *testing.T) {
	b := EncodeBattleReport(sampleReport())

	_, err := DecodeBattleReport(b[:len(b)-3])
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMalformed)

	_, err = DecodeBattleReport([]byte{0xff})
	assert.ErrorIs(t, err, ErrMalformed)
}

func TestEnumMapping(t *testing.T) {
	for _, w := range []models.Winner{models.WinnerAttacker, models.WinnerDefender, models.WinnerDraw} {
		assert.Equal(t, w, wireToWinner(winnerToWire(w)))
	}
	for _, o := range []models.Outcome{
		models.OutcomeAttackerWins, models.OutcomeDefenderWins, models.OutcomeMutualAnnihilation,
		models.OutcomeTimeLimit, models.OutcomeAttackerAbsent, models.OutcomeDefenderAbsent,
		models.OutcomeBothAbsent,
	} {
		assert.Equal(t, o, wireToOutcome(outcomeToWire(o)))
	}
	assert.Equal(t, winnerUnknown, winnerToWire("nobody"))
	assert.Equal(t, models.Outcome(""), wireToOutcome(99))
}
