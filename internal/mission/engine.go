package mission

import (
	"errors"
	"fmt"
	"math"

	"github.com/google/uuid"

	"github.com/toolsVendettaHispanos/AutoAuth-sub000/internal/codec"
	"github.com/toolsVendettaHispanos/AutoAuth-sub000/internal/combat"
	"github.com/toolsVendettaHispanos/AutoAuth-sub000/internal/loot"
	"github.com/toolsVendettaHispanos/AutoAuth-sub000/internal/models"
	"github.com/toolsVendettaHispanos/AutoAuth-sub000/internal/stats"
	"github.com/toolsVendettaHispanos/AutoAuth-sub000/internal/travel"
)

var ErrInvalidPower = errors.New("power percentage must be within [0, 100]")

// Namespaces of the name-based report ids, one per mission kind
var (
	reportNamespace    = uuid.NewSHA1(uuid.NameSpaceOID, []byte("vendetta.battle-report"))
	espionageNamespace = uuid.NewSHA1(uuid.NameSpaceOID, []byte("vendetta.espionage-report"))
)

// Participant is one side of a mission as the caller knows it
type Participant struct {
	Roster    models.Roster         `json:"roster"    yaml:"roster"`
	Trainings models.TrainingLevels `json:"trainings" yaml:"trainings"`
	Power     float64               `json:"power"     yaml:"power"`
}

// BattleInput carries everything a standard attack needs
type BattleInput struct {
	Attacker Participant
	Defender Participant

	// Defender storage, used for loot on an attacker win
	Stored models.ResourceBundle
	Safe   models.ResourceBundle
}

// EspionageInput carries everything an espionage mission needs.
// Attacker.Roster is the whole mission roster; only spies fight.
type EspionageInput struct {
	Attacker Participant
	Defender Participant
	Intel    models.Intel
}

// Engine assembles mission outcomes against one config snapshot. It holds
// no mutable state and is safe for concurrent use.
type Engine struct {
	Config   *models.Config
	Resolver *stats.Resolver
}

// NewEngine creates an engine for a config snapshot
func NewEngine(cfg *models.Config) *Engine {
	return &Engine{Config: cfg, Resolver: stats.NewResolverWithConfig(cfg)}
}

// NewParticipant builds a participant whose power comes from its property
// count and honor training.
func (e *Engine) NewParticipant(roster models.Roster, trainings models.TrainingLevels, properties int) Participant {
	return Participant{
		Roster:    roster,
		Trainings: trainings,
		Power:     stats.Power(properties, trainings.Level(e.Config.HonorTraining)),
	}
}

// RunBattle resolves a standard attack: combat, then loot if the attacker won
func (e *Engine) RunBattle(in BattleInput) (*models.BattleReport, error) {
	att, err := e.side("attacker", in.Attacker, in.Attacker.Roster)
	if err != nil {
		return nil, err
	}
	def, err := e.side("defender", in.Defender, in.Defender.Roster)
	if err != nil {
		return nil, err
	}

	res := combat.Resolve(att, def)
	report := assemble(res, in.Attacker.Roster, in.Defender.Roster)

	if res.Winner == models.WinnerAttacker {
		l := loot.Compute(in.Stored, in.Safe, res.AttackerFinal)
		report.Attacker.Looted = &l.Looted
	}

	report.ID = ReportID(report)
	return report, nil
}

// RunEspionage resolves an espionage mission. Spies fight the whole defense
// at full power; the other units stay out of combat and always return.
// Intel is attached only when the spies win.
func (e *Engine) RunEspionage(in EspionageInput) (*models.EspionageReport, error) {
	if err := e.validate(in.Attacker.Roster); err != nil {
		return nil, fmt.Errorf("attacker: %w", err)
	}
	spies, others := e.SplitSpies(in.Attacker.Roster)

	attacker := in.Attacker
	attacker.Power = stats.FullPower
	defender := in.Defender
	defender.Power = stats.FullPower

	att, err := e.side("attacker", attacker, spies)
	if err != nil {
		return nil, err
	}
	def, err := e.side("defender", defender, in.Defender.Roster)
	if err != nil {
		return nil, err
	}

	res := combat.Resolve(att, def)
	battle := assemble(res, spies, in.Defender.Roster)

	out := &models.EspionageReport{Battle: *battle}
	if res.Winner == models.WinnerAttacker {
		out.Intel = in.Intel.Clone()
	}

	// Returning units keep the mission roster order
	survivors := battle.AttackerSurvivors
	for _, entry := range in.Attacker.Roster {
		qty := others.Get(entry.UnitID) + survivors.Get(entry.UnitID)
		if qty > 0 {
			out.Returning = append(out.Returning, models.RosterEntry{UnitID: entry.UnitID, Quantity: qty})
		}
	}
	out.Battle.ID = EspionageReportID(out)
	return out, nil
}

// ComputeTravel returns the travel plan for a fleet
func (e *Engine) ComputeTravel(origin, destination models.Coordinates, roster models.Roster, levels models.TrainingLevels) (travel.Plan, error) {
	calc := &travel.Calculator{Config: e.Config, Resolver: e.Resolver}
	return calc.Compute(origin, destination, roster, levels)
}

func (e *Engine) validate(roster models.Roster) error {
	if e.Config == nil {
		return fmt.Errorf("%w: config is nil", models.ErrInvalidConfig)
	}
	return roster.Validate(e.Config)
}

// side resolves one participant's roster into a combat side
func (e *Engine) side(name string, p Participant, roster models.Roster) (combat.Side, error) {
	if err := e.validate(roster); err != nil {
		return combat.Side{}, fmt.Errorf("%s: %w", name, err)
	}
	if math.IsNaN(p.Power) || p.Power < 0 || p.Power > 100 {
		return combat.Side{}, fmt.Errorf("%s: %w: %v", name, ErrInvalidPower, p.Power)
	}
	army, err := e.Resolver.Army(e.Config, roster, p.Trainings)
	if err != nil {
		return combat.Side{}, fmt.Errorf("%s: %w", name, err)
	}
	return combat.Side{Army: army, PowerPercent: p.Power}, nil
}

// SplitSpies separates spy units from the rest of a roster. Both results
// keep the roster order.
func (e *Engine) SplitSpies(roster models.Roster) (spies, others models.Roster) {
	spies = models.Roster{}
	others = models.Roster{}
	for _, entry := range roster {
		if u := e.Config.Unit(entry.UnitID); u != nil && u.Type == models.UnitSpy {
			spies = append(spies, entry)
		} else {
			others = append(others, entry)
		}
	}
	return spies, others
}

// assemble builds the report body from a combat result
func assemble(res combat.Result, attRoster, defRoster models.Roster) *models.BattleReport {
	report := &models.BattleReport{
		Winner:   res.Winner,
		Outcome:  res.Outcome,
		Message:  res.Message,
		Rounds:   res.Rounds,
		Attacker: res.Attacker,
		Defender: res.Defender,
	}
	report.AttackerSurvivors = Survivors(report, attRoster, true)
	report.DefenderSurvivors = Survivors(report, defRoster, false)
	return report
}

// Survivors returns what is left of one side: the last round's quantities
// above zero, or the original roster when no round was fought.
func Survivors(report *models.BattleReport, original models.Roster, attacker bool) models.Roster {
	if report.RoundsFought() == 0 {
		return original.Clone()
	}
	last := report.LastRound()
	if attacker {
		return last.Attacker.After().NonZero()
	}
	return last.Defender.After().NonZero()
}

// ReportID derives a name-based id from the report content, so identical
// battles get identical ids.
func ReportID(report *models.BattleReport) string {
	body := *report
	body.ID = ""
	return uuid.NewSHA1(reportNamespace, codec.EncodeBattleReport(&body)).String()
}

// EspionageReportID is ReportID for espionage missions. The intel and the
// returning units are part of the name, so spying twice on a changed
// property gives two ids.
func EspionageReportID(report *models.EspionageReport) string {
	body := *report
	body.Battle.ID = ""
	return uuid.NewSHA1(espionageNamespace, codec.EncodeEspionageReport(&body)).String()
}
