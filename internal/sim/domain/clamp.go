package domain

// Bounds applied at every numeric write site.
const (
	AbilityMin = 1
	AbilityMax = 200

	AttributeMin = 1
	AttributeMax = 20

	PercentMin = 0
	PercentMax = 100

	FormMin = -3
	FormMax = 3
)

// ClampAbility bounds an ability value into [1, 200].
func ClampAbility(v int) int {
	return clampInt(v, AbilityMin, AbilityMax)
}

// ClampAttribute bounds an attribute value into [1, 20].
func ClampAttribute(v int) int {
	return clampInt(v, AttributeMin, AttributeMax)
}

// ClampPercent bounds fatigue/reputation style values into [0, 100].
func ClampPercent(v float64) float64 {
	if v < PercentMin {
		return PercentMin
	}
	if v > PercentMax {
		return PercentMax
	}
	return v
}

// ClampForm bounds a form value into [-3, 3].
func ClampForm(v int) int {
	return clampInt(v, FormMin, FormMax)
}

func clampInt(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
