package mission

import (
	"testing"

	"github.com/toolsVendettaHispanos/AutoAuth-sub000/internal/models"
)

func spyMission(informants int64) EspionageInput {
	return EspionageInput{
		Attacker: Participant{
			Roster: models.Roster{
				{UnitID: "thug", Quantity: 5},
				{UnitID: "informant", Quantity: informants},
				{UnitID: "truck", Quantity: 1},
			},
			Power: 12.5, // ignored: spies always fight at full power
		},
		Defender: Participant{
			Roster: models.Roster{{UnitID: "lookout", Quantity: 2}},
			Power:  100,
		},
		Intel: models.Intel{
			Resources: models.ResourceBundle{Weapons: 900, Currency: 12000},
			Buildings: []models.BuildingLevel{{Building: "warehouse", Level: 7}, {Building: "safe", Level: 3}},
		},
	}
}

func TestEspionageSpiesWin(t *testing.T) {
	engine := NewEngine(models.DefaultConfig())
	in := spyMission(50)

	report, err := engine.RunEspionage(in)
	if err != nil {
		t.Fatalf("RunEspionage: %v", err)
	}
	if report.Battle.Winner != models.WinnerAttacker {
		t.Fatalf("winner %s, want attacker", report.Battle.Winner)
	}
	if report.Intel == nil || report.Intel.Resources.Currency != 12000 || len(report.Intel.Buildings) != 2 {
		t.Fatalf("unexpected intel %+v", report.Intel)
	}

	// Only spies fought
	units := report.Battle.Rounds[0].Attacker.Units
	if len(units) != 1 || units[0].UnitID != "informant" {
		t.Errorf("non-spy units in combat: %+v", units)
	}
	if got := report.Battle.Rounds[0].Attacker.PowerPercent; got != 100 {
		t.Errorf("spy power %v, want 100", got)
	}

	if report.Returning.Get("thug") != 5 || report.Returning.Get("truck") != 1 {
		t.Errorf("non-spy units must return: %+v", report.Returning)
	}
	if report.Returning.Get("informant") == 0 {
		t.Errorf("surviving spies must return: %+v", report.Returning)
	}
	if report.Battle.Attacker.Looted != nil {
		t.Error("espionage never loots")
	}

	// Intel is a copy
	in.Intel.Buildings[0].Level = 99
	if report.Intel.Buildings[0].Level != 7 {
		t.Error("intel shares storage with the input")
	}
}

func TestEspionageSpiesLose(t *testing.T) {
	engine := NewEngine(models.DefaultConfig())
	in := spyMission(3)
	in.Defender.Roster = models.Roster{{UnitID: "sniper", Quantity: 10}}

	report, err := engine.RunEspionage(in)
	if err != nil {
		t.Fatalf("RunEspionage: %v", err)
	}
	if report.Battle.Winner == models.WinnerAttacker {
		t.Fatalf("spies should not win against snipers")
	}
	if report.Intel != nil {
		t.Error("intel attached on a failed mission")
	}
	if report.Returning.Get("informant") != 0 {
		t.Errorf("dead spies returned: %+v", report.Returning)
	}
	if report.Returning.Get("thug") != 5 || report.Returning.Get("truck") != 1 {
		t.Errorf("non-spy units must return: %+v", report.Returning)
	}
}

func TestEspionageWithoutSpies(t *testing.T) {
	engine := NewEngine(models.DefaultConfig())
	in := spyMission(0)

	report, err := engine.RunEspionage(in)
	if err != nil {
		t.Fatalf("RunEspionage: %v", err)
	}
	if report.Battle.Outcome != models.OutcomeAttackerAbsent {
		t.Errorf("outcome %s, want attacker absent", report.Battle.Outcome)
	}
	if report.Intel != nil {
		t.Error("intel without spies")
	}
	want := models.Roster{{UnitID: "thug", Quantity: 5}, {UnitID: "truck", Quantity: 1}}
	if len(report.Returning) != len(want) {
		t.Fatalf("returning %+v, want %+v", report.Returning, want)
	}
	for i := range want {
		if report.Returning[i] != want[i] {
			t.Errorf("returning[%d] = %+v, want %+v", i, report.Returning[i], want[i])
		}
	}
}

func TestEspionageUndefended(t *testing.T) {
	engine := NewEngine(models.DefaultConfig())
	in := spyMission(1)
	in.Defender.Roster = nil

	report, err := engine.RunEspionage(in)
	if err != nil {
		t.Fatalf("RunEspionage: %v", err)
	}
	if report.Battle.Outcome != models.OutcomeDefenderAbsent || report.Intel == nil {
		t.Errorf("outcome %s intel %v; want defender absent with intel", report.Battle.Outcome, report.Intel)
	}
	if report.Returning.Get("informant") != 1 {
		t.Errorf("spy should return: %+v", report.Returning)
	}
}

func TestEspionageIDCoversIntel(t *testing.T) {
	engine := NewEngine(models.DefaultConfig())

	first, err := engine.RunEspionage(spyMission(50))
	if err != nil {
		t.Fatalf("RunEspionage: %v", err)
	}
	again, _ := engine.RunEspionage(spyMission(50))
	if again.Battle.ID != first.Battle.ID {
		t.Fatalf("same mission: id %s, want %s", again.Battle.ID, first.Battle.ID)
	}

	richer := spyMission(50)
	richer.Intel.Resources.Currency = 99999
	second, err := engine.RunEspionage(richer)
	if err != nil {
		t.Fatalf("RunEspionage: %v", err)
	}
	if second.Battle.ID == first.Battle.ID {
		t.Error("different intel shares an id")
	}
	if second.Battle.ID != EspionageReportID(second) {
		t.Error("id does not match the report content")
	}

	// An attack with the same combat is a different report
	if first.Battle.ID == ReportID(&first.Battle) {
		t.Error("espionage and battle ids collide")
	}
}
