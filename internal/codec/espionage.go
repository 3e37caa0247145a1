package codec

import (
	"fmt"

	"github.com/toolsVendettaHispanos/AutoAuth-sub000/internal/models"
)

// Field numbers.
//
//	EspionageReport: 1 battle, 2 intel, 3 returning
//	Intel:           1 resources, 2 buildings
//	BuildingLevel:   1 building, 2 level

// EncodeEspionageReport serializes an espionage report. A nil intel is
// omitted, so failed missions encode differently from empty intel.
func EncodeEspionageReport(r *models.EspionageReport) []byte {
	var b []byte
	b = appendMessage(b, 1, EncodeBattleReport(&r.Battle))
	if r.Intel != nil {
		b = appendMessage(b, 2, EncodeIntel(r.Intel))
	}
	for _, e := range r.Returning {
		b = appendMessage(b, 3, encodeRosterEntry(e))
	}
	return b
}

// DecodeEspionageReport parses a report written by EncodeEspionageReport.
func DecodeEspionageReport(b []byte) (*models.EspionageReport, error) {
	r := &models.EspionageReport{}
	err := fields(b, func(f field) error {
		msg, ok := f.message()
		if !ok {
			return nil
		}
		switch f.num {
		case 1:
			battle, err := DecodeBattleReport(msg)
			if err != nil {
				return err
			}
			r.Battle = *battle
		case 2:
			intel, err := DecodeIntel(msg)
			if err != nil {
				return err
			}
			r.Intel = intel
		case 3:
			e, err := decodeRosterEntry(msg)
			if err != nil {
				return err
			}
			r.Returning = append(r.Returning, e)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to decode espionage report: %w", err)
	}
	return r, nil
}

// EncodeIntel serializes spy intel. Buildings keep their order.
func EncodeIntel(i *models.Intel) []byte {
	var b []byte
	b = appendMessage(b, 1, encodeResources(i.Resources))
	for _, bl := range i.Buildings {
		var m []byte
		m = appendString(m, 1, bl.Building)
		m = appendInt(m, 2, int64(bl.Level))
		b = appendMessage(b, 2, m)
	}
	return b
}

func DecodeIntel(b []byte) (*models.Intel, error) {
	i := &models.Intel{}
	err := fields(b, func(f field) error {
		msg, ok := f.message()
		if !ok {
			return nil
		}
		switch f.num {
		case 1:
			res, err := decodeResources(msg)
			if err != nil {
				return err
			}
			i.Resources = res
		case 2:
			var bl models.BuildingLevel
			err := fields(msg, func(f field) error {
				switch f.num {
				case 1:
					bl.Building = f.str()
				case 2:
					bl.Level = int(f.i64())
				}
				return nil
			})
			if err != nil {
				return err
			}
			i.Buildings = append(i.Buildings, bl)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to decode intel: %w", err)
	}
	return i, nil
}
