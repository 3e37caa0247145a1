package loader

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"maps"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/toolsVendettaHispanos/AutoAuth-sub000/internal/models"
)

// UnitsFile is the catalog file name inside a data directory
const UnitsFile = "units.json"

var timeFormatRegex = regexp.MustCompile(`^\d{2}:\d{2}:\d{2}$`)

// catalogJSON represents the JSON structure of units.json
type catalogJSON struct {
	SmugglingTraining string           `json:"smuggling_training"`
	HonorTraining     string           `json:"honor_training"`
	SpeedClasses      []speedClassJSON `json:"speed_classes"`
	Units             []unitJSON       `json:"units"`
}

type speedClassJSON struct {
	Name     string   `json:"name"`
	Training string   `json:"training"`
	Units    []string `json:"units"`
}

// unitJSON represents the JSON structure for a unit
type unitJSON struct {
	ID           string           `json:"id"`
	Name         string           `json:"name"`
	Type         string           `json:"type"`
	Attack       int64            `json:"attack"`
	Defense      int64            `json:"defense"`
	Capacity     int64            `json:"capacity"`
	Speed        int64            `json:"speed"`
	Salary       int64            `json:"salary"`
	Cost         map[string]int64 `json:"cost"`
	BuildTime    string           `json:"build_time"`
	Points       int64            `json:"points"`
	BonusAttack  []string         `json:"bonus_attack"`
	BonusDefense []string         `json:"bonus_defense"`
}

// LoadConfig loads the unit catalog from dataDir/units.json and returns a
// validated config snapshot. A nil logger discards warnings.
func LoadConfig(dataDir string, log *zap.Logger) (*models.Config, error) {
	if log == nil {
		log = zap.NewNop()
	}

	filePath := filepath.Join(dataDir, UnitsFile)
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", UnitsFile, err)
	}

	var raw catalogJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", UnitsFile, err)
	}

	units := make([]*models.UnitConfig, 0, len(raw.Units))
	for _, ru := range raw.Units {
		units = append(units, convertUnit(ru, log))
	}

	classes := models.DefaultSpeedClasses()
	if len(raw.SpeedClasses) > 0 {
		classes = convertSpeedClasses(raw.SpeedClasses)
	} else {
		log.Warn("no speed classes in catalog, using defaults", zap.String("file", filePath))
	}

	cfg, err := models.NewConfigWithClasses(units, classes)
	if err != nil {
		return nil, fmt.Errorf("invalid catalog %s: %w", filePath, err)
	}
	if raw.SmugglingTraining != "" {
		cfg.SmugglingTraining = models.TrainingID(raw.SmugglingTraining)
	}
	if raw.HonorTraining != "" {
		cfg.HonorTraining = models.TrainingID(raw.HonorTraining)
	}

	log.Debug("loaded unit catalog",
		zap.String("file", filePath),
		zap.Int("units", len(cfg.Order)),
		zap.Int("speed_classes", len(cfg.SpeedClasses)))
	return cfg, nil
}

// LoadConfigOrDefault loads the catalog, falling back to the built-in one
// when dataDir has no units.json. Other errors are returned.
func LoadConfigOrDefault(dataDir string, log *zap.Logger) (*models.Config, error) {
	if log == nil {
		log = zap.NewNop()
	}
	cfg, err := LoadConfig(dataDir, log)
	if errors.Is(err, fs.ErrNotExist) {
		log.Warn("unit catalog not found, using built-in catalog", zap.String("dir", dataDir))
		return models.DefaultConfig(), nil
	}
	return cfg, err
}

func convertUnit(ru unitJSON, log *zap.Logger) *models.UnitConfig {
	u := &models.UnitConfig{
		ID:       models.UnitID(ru.ID),
		Name:     ru.Name,
		Type:     models.UnitType(ru.Type),
		Attack:   ru.Attack,
		Defense:  ru.Defense,
		Capacity: ru.Capacity,
		Speed:    ru.Speed,
		Salary:   ru.Salary,
		Points:   ru.Points,
	}
	if u.Name == "" {
		u.Name = ru.ID
	}

	// Build the cost bundle from the map, in key order so warnings are stable
	for _, res := range slices.Sorted(maps.Keys(ru.Cost)) {
		amount := ru.Cost[res]
		switch models.ResourceKind(res) {
		case models.Weapons, models.Ammunition, models.Currency, models.Alcohol:
			u.Cost.Set(models.ResourceKind(res), amount)
		default:
			log.Warn("ignoring unknown resource in unit cost",
				zap.String("unit", ru.ID), zap.String("resource", res))
		}
	}

	if ru.BuildTime != "" {
		seconds, err := parseDuration(ru.BuildTime)
		if err != nil {
			log.Warn("invalid build time", zap.String("unit", ru.ID), zap.Error(err))
		}
		u.BuildSeconds = seconds
	}

	for _, id := range ru.BonusAttack {
		u.BonusAttack = append(u.BonusAttack, models.TrainingID(id))
	}
	for _, id := range ru.BonusDefense {
		u.BonusDefense = append(u.BonusDefense, models.TrainingID(id))
	}
	return u
}

func convertSpeedClasses(raw []speedClassJSON) []models.SpeedClass {
	out := make([]models.SpeedClass, 0, len(raw))
	for _, rc := range raw {
		sc := models.SpeedClass{Name: rc.Name, Training: models.TrainingID(rc.Training)}
		for _, id := range rc.Units {
			sc.Units = append(sc.Units, models.UnitID(id))
		}
		out = append(out, sc)
	}
	return out
}

// parseDuration parses HH:MM:SS into seconds
func parseDuration(s string) (int, error) {
	if !timeFormatRegex.MatchString(s) {
		return 0, fmt.Errorf("expected HH:MM:SS, got %q", s)
	}
	parts := strings.Split(s, ":")
	hours, _ := strconv.Atoi(parts[0])
	minutes, _ := strconv.Atoi(parts[1])
	seconds, _ := strconv.Atoi(parts[2])
	return hours*3600 + minutes*60 + seconds, nil
}
