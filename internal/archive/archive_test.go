package archive

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/toolsVendettaHispanos/AutoAuth-sub000/internal/codec"
	"github.com/toolsVendettaHispanos/AutoAuth-sub000/internal/mission"
	"github.com/toolsVendettaHispanos/AutoAuth-sub000/internal/models"
)

func openTest(t *testing.T) *Store {
	t.Helper()
	s, err := Open("", nil)
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func battle(t *testing.T, gunmen int64) *models.BattleReport {
	t.Helper()
	engine := mission.NewEngine(models.DefaultConfig())
	report, err := engine.RunBattle(mission.BattleInput{
		Attacker: mission.Participant{Roster: models.Roster{{UnitID: "gunman", Quantity: gunmen}}, Power: 100},
		Defender: mission.Participant{Roster: models.Roster{{UnitID: "lookout", Quantity: 4}}, Power: 100},
		Stored:   models.ResourceBundle{Currency: 5000},
	})
	require.NoError(t, err)
	return report
}

func TestSaveAndGet(t *testing.T) {
	s := openTest(t)
	ctx := context.Background()
	fixed := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return fixed }

	report := battle(t, 20)
	created, err := s.SaveBattle(ctx, report)
	require.NoError(t, err)
	assert.True(t, created)

	got, err := s.Get(ctx, report.ID)
	require.NoError(t, err)
	assert.Equal(t, models.MissionAttack, got.Mission)
	assert.Equal(t, report.Winner, got.Winner)
	assert.Equal(t, report.Outcome, got.Outcome)
	assert.Equal(t, report.RoundsFought(), got.Rounds)
	assert.True(t, fixed.Equal(got.CreatedAt))
	assert.NotEmpty(t, got.EngineVersion)
	assert.Nil(t, got.Intel)
	assert.Equal(t, codec.EncodeBattleReport(report), codec.EncodeBattleReport(got.Report))
}

func TestSaveIsIdempotent(t *testing.T) {
	s := openTest(t)
	ctx := context.Background()
	report := battle(t, 20)

	_, err := s.SaveBattle(ctx, report)
	require.NoError(t, err)
	created, err := s.SaveBattle(ctx, report)
	require.NoError(t, err)
	assert.False(t, created)

	list, err := s.List(ctx, "", 0)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestSaveRequiresID(t *testing.T) {
	s := openTest(t)
	_, err := s.SaveBattle(context.Background(), &models.BattleReport{})
	assert.ErrorIs(t, err, ErrMissingID)
	_, err = s.SaveEspionage(context.Background(), nil)
	assert.ErrorIs(t, err, ErrMissingID)
}

func TestEspionageIntel(t *testing.T) {
	s := openTest(t)
	ctx := context.Background()
	engine := mission.NewEngine(models.DefaultConfig())
	report, err := engine.RunEspionage(mission.EspionageInput{
		Attacker: mission.Participant{Roster: models.Roster{{UnitID: "informant", Quantity: 30}}},
		Intel: models.Intel{
			Resources: models.ResourceBundle{Alcohol: 77},
			Buildings: []models.BuildingLevel{{Building: "brewery", Level: 2}},
		},
	})
	require.NoError(t, err)
	require.NotNil(t, report.Intel)

	_, err = s.SaveEspionage(ctx, report)
	require.NoError(t, err)

	got, err := s.Get(ctx, report.Battle.ID)
	require.NoError(t, err)
	assert.Equal(t, models.MissionEspionage, got.Mission)
	require.NotNil(t, got.Intel)
	assert.Equal(t, *report.Intel, *got.Intel)

	require.NoError(t, s.Delete(ctx, report.Battle.ID))
	_, err = s.Get(ctx, report.Battle.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, s.Delete(ctx, report.Battle.ID), ErrNotFound)
}

func TestEspionageKeepsEachIntel(t *testing.T) {
	s := openTest(t)
	ctx := context.Background()
	engine := mission.NewEngine(models.DefaultConfig())

	spy := func(currency int64) *models.EspionageReport {
		report, err := engine.RunEspionage(mission.EspionageInput{
			Attacker: mission.Participant{Roster: models.Roster{{UnitID: "informant", Quantity: 10}}},
			Defender: mission.Participant{Roster: models.Roster{{UnitID: "lookout", Quantity: 1}}},
			Intel:    models.Intel{Resources: models.ResourceBundle{Currency: currency}},
		})
		require.NoError(t, err)
		require.NotNil(t, report.Intel)
		return report
	}
	older, newer := spy(1000), spy(99999)
	require.NotEqual(t, older.Battle.ID, newer.Battle.ID)

	for _, r := range []*models.EspionageReport{older, newer} {
		created, err := s.SaveEspionage(ctx, r)
		require.NoError(t, err)
		assert.True(t, created)
	}

	got, err := s.Get(ctx, older.Battle.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1000), got.Intel.Resources.Currency)

	got, err = s.Get(ctx, newer.Battle.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(99999), got.Intel.Resources.Currency)
}

func TestListNewestFirst(t *testing.T) {
	s := openTest(t)
	ctx := context.Background()

	var ids []string
	for _, n := range []int64{10, 11, 12} {
		r := battle(t, n)
		_, err := s.SaveBattle(ctx, r)
		require.NoError(t, err)
		ids = append(ids, r.ID)
	}

	list, err := s.List(ctx, "", 0)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, ids[2], list[0].ID)
	assert.Equal(t, ids[0], list[2].ID)

	limited, err := s.List(ctx, models.MissionAttack, 2)
	require.NoError(t, err)
	assert.Len(t, limited, 2)

	none, err := s.List(ctx, models.MissionEspionage, 0)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestFileDatabase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reports.db")
	ctx := context.Background()
	report := battle(t, 20)

	s, err := Open(path, nil)
	require.NoError(t, err)
	_, err = s.SaveBattle(ctx, report)
	require.NoError(t, err)
	require.NoError(t, s.Close())

	s, err = Open(path, nil)
	require.NoError(t, err)
	defer s.Close()
	got, err := s.Get(ctx, report.ID)
	require.NoError(t, err)
	assert.Equal(t, report.ID, got.Report.ID)
}
