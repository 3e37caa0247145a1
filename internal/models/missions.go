package models

// MissionKind is the purpose of a fleet sent from one property to another
type MissionKind string

const (
	MissionAttack    MissionKind = "attack"
	MissionEspionage MissionKind = "espionage"
)

// BuildingLevel is one building of the spied property
type BuildingLevel struct {
	Building string `json:"building" yaml:"building"`
	Level    int    `json:"level"    yaml:"level"`
}

// Intel is what surviving spies bring back
type Intel struct {
	Resources ResourceBundle  `json:"resources"`
	Buildings []BuildingLevel `json:"buildings"`
}

// Clone returns a deep copy of the intel
func (i *Intel) Clone() *Intel {
	if i == nil {
		return nil
	}
	out := &Intel{Resources: i.Resources}
	if i.Buildings != nil {
		out.Buildings = make([]BuildingLevel, len(i.Buildings))
		copy(out.Buildings, i.Buildings)
	}
	return out
}

// EspionageReport is the outcome of an espionage mission.
// Intel is nil unless the spies won.
type EspionageReport struct {
	Battle    BattleReport `json:"battle"`
	Intel     *Intel       `json:"intel"`
	Returning Roster       `json:"returning"`
}
