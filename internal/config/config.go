package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/toolsVendettaHispanos/AutoAuth-sub000/internal/mission"
	"github.com/toolsVendettaHispanos/AutoAuth-sub000/internal/models"
	"github.com/toolsVendettaHispanos/AutoAuth-sub000/internal/travel"
)

// Scenario is the on-disk description of one mission (YAML).
type Scenario struct {
	Mission models.MissionKind `yaml:"mission"`
	// Optional: directory holding units.json. Relative paths are resolved
	// against the scenario file; empty means the built-in catalog.
	DataDir  string       `yaml:"data_dir"`
	Attacker PlayerConfig `yaml:"attacker"`
	Defender PlayerConfig `yaml:"defender"`
}

// PlayerConfig describes one side. Profile fields can come from a separate
// file (profile_file); explicit fields override it.
type PlayerConfig struct {
	ProfileFile string                `yaml:"profile_file"`
	Name        string                `yaml:"name"`
	Properties  int                   `yaml:"properties"`
	Power       *float64              `yaml:"power"` // nil: derived from properties and honor
	Trainings   models.TrainingLevels `yaml:"trainings"`
	Coordinates models.Coordinates    `yaml:"coordinates"`
	Roster      models.Roster         `yaml:"roster"`

	// Stored resources. For the attacker, currency pays for travel.
	Resources models.ResourceBundle  `yaml:"resources"`
	Safe      models.ResourceBundle  `yaml:"safe"`
	Buildings []models.BuildingLevel `yaml:"buildings"`
}

func Load(path string) (*Scenario, error) {
	s, err := LoadUnchecked(path)
	if err != nil {
		return nil, err
	}
	if s.Mission == "" {
		s.Mission = models.MissionAttack
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// LoadUnchecked loads and merges a scenario, but does not validate it.
func LoadUnchecked(path string) (*Scenario, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario: %w", err)
	}
	var s Scenario
	if err := yaml.Unmarshal(raw, &s); err != nil {
		return nil, fmt.Errorf("failed to parse scenario %s: %w", path, err)
	}
	dir := filepath.Dir(path)
	for _, p := range []*PlayerConfig{&s.Attacker, &s.Defender} {
		if p.ProfileFile == "" {
			continue
		}
		loaded, err := loadProfile(resolve(dir, p.ProfileFile))
		if err != nil {
			return nil, err
		}
		*p = MergePlayer(loaded, *p)
	}
	if s.DataDir != "" {
		s.DataDir = resolve(dir, s.DataDir)
	}
	return &s, nil
}

// resolve interprets relative paths against the scenario directory, falling
// back to the path as given when that does not exist.
func resolve(dir, path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	cand := filepath.Join(dir, path)
	if _, err := os.Stat(cand); err == nil {
		return cand
	}
	return path
}

func (s *Scenario) Validate() error {
	if s == nil {
		return errors.New("scenario is nil")
	}
	switch s.Mission {
	case models.MissionAttack, models.MissionEspionage:
	default:
		return fmt.Errorf("unknown mission %q", s.Mission)
	}
	if err := s.Attacker.validate(); err != nil {
		return fmt.Errorf("attacker: %w", err)
	}
	if err := s.Defender.validate(); err != nil {
		return fmt.Errorf("defender: %w", err)
	}
	return nil
}

func (p *PlayerConfig) validate() error {
	if p.Properties < 0 {
		return errors.New("properties must be >= 0")
	}
	if p.Power != nil && (*p.Power < 0 || *p.Power > 100) {
		return fmt.Errorf("power %v outside [0, 100]", *p.Power)
	}
	for id, lvl := range p.Trainings {
		if lvl < 0 {
			return fmt.Errorf("training %s has negative level %d", id, lvl)
		}
	}
	for _, e := range p.Roster {
		if e.Quantity < 0 {
			return fmt.Errorf("%w: %s has %d", models.ErrNegativeQuantity, e.UnitID, e.Quantity)
		}
	}
	if p.HasCoordinates() {
		c := p.Coordinates
		if c.City < 1 || c.Quarter < 1 || c.Quarter > travel.QuartersPerCity || c.Building < 1 || c.Building > travel.BuildingsPerRow {
			return fmt.Errorf("coordinates %d:%d:%d off the board", c.City, c.Quarter, c.Building)
		}
	}
	return nil
}

// HasCoordinates reports whether the player's location was given
func (p *PlayerConfig) HasCoordinates() bool {
	return p.Coordinates != (models.Coordinates{})
}

// Participant converts the player into an engine participant
func (p *PlayerConfig) Participant(e *mission.Engine) mission.Participant {
	part := e.NewParticipant(p.Roster, p.Trainings, p.Properties)
	if p.Power != nil {
		part.Power = *p.Power
	}
	return part
}

// BattleInput builds the engine input for an attack
func (s *Scenario) BattleInput(e *mission.Engine) mission.BattleInput {
	return mission.BattleInput{
		Attacker: s.Attacker.Participant(e),
		Defender: s.Defender.Participant(e),
		Stored:   s.Defender.Resources,
		Safe:     s.Defender.Safe,
	}
}

// EspionageInput builds the engine input for an espionage mission
func (s *Scenario) EspionageInput(e *mission.Engine) mission.EspionageInput {
	return mission.EspionageInput{
		Attacker: s.Attacker.Participant(e),
		Defender: s.Defender.Participant(e),
		Intel: models.Intel{
			Resources: s.Defender.Resources,
			Buildings: s.Defender.Buildings,
		},
	}
}

type profileFileWrapper struct {
	Player PlayerConfig `yaml:"player"`
}

func loadProfile(path string) (PlayerConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return PlayerConfig{}, fmt.Errorf("failed to read profile: %w", err)
	}
	var w profileFileWrapper
	if err := yaml.Unmarshal(raw, &w); err != nil {
		return PlayerConfig{}, fmt.Errorf("failed to parse profile %s: %w", path, err)
	}
	return w.Player, nil
}

// MergePlayer overlays non-zero fields from override onto base. Trainings
// are merged per id.
func MergePlayer(base, override PlayerConfig) PlayerConfig {
	out := base
	out.ProfileFile = override.ProfileFile
	if override.Name != "" {
		out.Name = override.Name
	}
	if override.Properties != 0 {
		out.Properties = override.Properties
	}
	if override.Power != nil {
		out.Power = override.Power
	}
	if len(override.Trainings) > 0 {
		merged := base.Trainings.Clone()
		for id, lvl := range override.Trainings {
			merged[id] = lvl
		}
		out.Trainings = merged
	}
	if override.HasCoordinates() {
		out.Coordinates = override.Coordinates
	}
	if len(override.Roster) > 0 {
		out.Roster = override.Roster
	}
	if !override.Resources.IsZero() {
		out.Resources = override.Resources
	}
	if !override.Safe.IsZero() {
		out.Safe = override.Safe
	}
	if len(override.Buildings) > 0 {
		out.Buildings = override.Buildings
	}
	return out
}
