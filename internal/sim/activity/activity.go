// Package activity resolves the quality tier of a scout's weekly activity
// from skill- and fatigue-shifted weights, producing reward and discovery
// modifiers.
package activity

import (
	"github.com/louisbranch/touchline/internal/sim/domain"
	"github.com/louisbranch/touchline/internal/sim/narrative"
	"github.com/louisbranch/touchline/internal/sim/rng"
)

// Quality is one of the five ordered outcome tiers.
type Quality int

// Quality tiers, worst first.
const (
	QualityPoor Quality = iota
	QualityAverage
	QualityGood
	QualityExcellent
	QualityExceptional
)

// Qualities lists every tier in ascending order.
var Qualities = []Quality{
	QualityPoor,
	QualityAverage,
	QualityGood,
	QualityExcellent,
	QualityExceptional,
}

func (q Quality) String() string {
	switch q {
	case QualityPoor:
		return "poor"
	case QualityAverage:
		return "average"
	case QualityGood:
		return "good"
	case QualityExcellent:
		return "excellent"
	case QualityExceptional:
		return "exceptional"
	default:
		return "unknown"
	}
}

// baseWeight returns the tier's base weight; the five sum to 100.
func (q Quality) baseWeight() float64 {
	switch q {
	case QualityPoor:
		return 10
	case QualityAverage:
		return 35
	case QualityGood:
		return 30
	case QualityExcellent:
		return 20
	case QualityExceptional:
		return 5
	default:
		return 0
	}
}

// shiftMultiplier returns how strongly the skill/fatigue shift moves the
// tier's weight: negative tiers shrink as the shift grows.
func (q Quality) shiftMultiplier() float64 {
	switch q {
	case QualityPoor:
		return -2
	case QualityAverage:
		return -1
	case QualityGood:
		return 0
	case QualityExcellent:
		return 1
	case QualityExceptional:
		return 2
	default:
		return 0
	}
}

// RewardMultiplier scales the activity's base reward.
func (q Quality) RewardMultiplier() float64 {
	switch q {
	case QualityPoor:
		return 0.4
	case QualityAverage:
		return 0.7
	case QualityGood:
		return 1.0
	case QualityExcellent:
		return 1.4
	case QualityExceptional:
		return 2.0
	default:
		return 1.0
	}
}

// DiscoveryModifier shifts discovery checks made during the activity.
func (q Quality) DiscoveryModifier() int {
	switch q {
	case QualityPoor:
		return -1
	case QualityAverage:
		return 0
	case QualityGood:
		return 0
	case QualityExcellent:
		return 1
	case QualityExceptional:
		return 2
	default:
		return 0
	}
}

// Outcome is the resolved quality of one activity.
type Outcome struct {
	Activity  domain.Activity
	Quality   Quality
	Reward    float64
	Discovery int
	Narrative string
}

// ShiftFactor computes the weight shift from the relevant skill and the
// scout's current fatigue. Skill 8 is neutral; fatigue always drags the
// shift down.
func ShiftFactor(skill int, fatigue float64) float64 {
	return float64(skill-8)/24 - (fatigue/100)*0.4
}

// Resolve rolls the quality tier for one activity. The skill is looked up
// through the activity's fixed skill binding; tiers keep a minimum weight
// of 1 so no tier is ever impossible.
func Resolve(r *rng.Rand, act domain.Activity, scout domain.Scout) Outcome {
	skill := scout.Skills.Get(act.Type.Skill())
	if skill == 0 {
		skill = 10
	}
	shift := ShiftFactor(skill, scout.Fatigue)

	weighted := make([]rng.Weighted[Quality], 0, len(Qualities))
	for _, q := range Qualities {
		w := q.baseWeight() * (1 + shift*q.shiftMultiplier())
		if w < 1 {
			w = 1
		}
		weighted = append(weighted, rng.Weighted[Quality]{Value: q, Weight: w})
	}
	quality := rng.PickWeighted(r, weighted)

	return Outcome{
		Activity:  act,
		Quality:   quality,
		Reward:    quality.RewardMultiplier(),
		Discovery: quality.DiscoveryModifier(),
		Narrative: narrative.Line(r, act.Type, int(quality)),
	}
}
