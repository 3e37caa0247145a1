package stats

import "math"

// FullPower is the percentage applied when no penalty is in effect
const FullPower = 100.0

// Power returns the combat power percentage of a player owning propertyCount
// properties with the given honor training level. Players with many
// properties lose power; honor slows the decay.
func Power(propertyCount, honorLevel int) float64 {
	p := max(propertyCount, 1)
	h := max(honorLevel, 0)
	exp := 4.5 - float64(h)/10
	if p == 1 && exp < 0 {
		// 0^exp is +Inf once honor pushes exp below zero
		return FullPower
	}
	return 100 / (1 + math.Pow(float64(p-1), exp)/1e7)
}
