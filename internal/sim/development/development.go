// Package development implements weekly probabilistic attribute and
// ability drift, rare breakthrough events and injury-driven setbacks.
// Everything here returns delta objects; application to state happens only
// in the tick commit, clamped to the same bounds.
package development

import (
	"github.com/louisbranch/touchline/internal/sim/domain"
	"github.com/louisbranch/touchline/internal/sim/injury"
	"github.com/louisbranch/touchline/internal/sim/rng"
)

// Gate model constants.
const (
	GateBase       = 0.15
	GatePerForm    = 0.015
	GateEnvFactor  = 1.15
	GateTrendShift = 0.02
	GateFloor      = 0.01
	GateCeiling    = 0.50
)

// Breakthrough model constants.
const (
	BreakthroughChance  = 0.015
	BreakthroughMinAge  = 17
	BreakthroughMaxAge  = 25
	BreakthroughMinForm = 1
)

// MaxEligibleAge is the oldest age at which weekly development runs.
const MaxEligibleAge = 35

// AttributeChange is one attribute's signed delta.
type AttributeChange struct {
	ID    domain.AttributeID
	Delta int
}

// Delta is the pure change-set for one player's weekly development.
type Delta struct {
	PlayerID     string
	Attributes   []AttributeChange
	AbilityDelta int
	Breakthrough bool
}

// Empty reports whether the delta changes nothing.
func (d Delta) Empty() bool {
	return len(d.Attributes) == 0 && d.AbilityDelta == 0
}

// PeakAge returns the profile's peak age. Volatile has no fixed peak bias
// and uses the steady peak as its noise center.
func PeakAge(profile domain.DevelopmentProfile) int {
	switch profile {
	case domain.ProfileEarlyBloomer:
		return 22
	case domain.ProfileLateBloomer:
		return 29
	default:
		return 26
	}
}

// Bias computes the player's development bias in [-1, 1]: positive favors
// growth, negative favors decline. Distance from the profile peak decays
// it; earlyBloomer amplifies magnitude, lateBloomer halves pre-peak growth
// and dampens post-peak decline, volatile replaces the age curve with
// Gaussian noise.
func Bias(r *rng.Rand, p domain.Player) float64 {
	if p.Profile == domain.ProfileVolatile {
		return clampBias(r.Gaussian(0, 0.25))
	}

	peak := PeakAge(p.Profile)
	bias := float64(peak-p.Age) / 10
	switch p.Profile {
	case domain.ProfileEarlyBloomer:
		bias *= 1.3
	case domain.ProfileLateBloomer:
		if bias > 0 {
			bias *= 0.5
		} else {
			bias *= 0.8
		}
	}
	return clampBias(bias)
}

func clampBias(v float64) float64 {
	if v < -1 {
		return -1
	}
	if v > 1 {
		return 1
	}
	return v
}

// GateChance returns the probability that anything happens to the player
// this week: base rate shifted by form, boosted in high-reputation
// environments, nudged by the momentum trend and floored so development is
// never impossible.
func GateChance(p domain.Player, club domain.Club) float64 {
	chance := GateBase + float64(p.Form)*GatePerForm
	if club.HighReputation() {
		chance *= GateEnvFactor
	}
	switch p.Momentum.Trend {
	case domain.TrendRising:
		chance += GateTrendShift
	case domain.TrendFalling:
		chance -= GateTrendShift
	}
	if chance < GateFloor {
		return GateFloor
	}
	if chance > GateCeiling {
		return GateCeiling
	}
	return chance
}

// Eligible reports whether the player develops at all this week.
func Eligible(p domain.Player) bool {
	return p.Age <= MaxEligibleAge && !p.LongTermInjured()
}

// developable lists the attributes routine development may touch. Injury
// proneness is a liability trait and moves only through injuries.
var developable = []domain.AttributeID{
	domain.AttrPace,
	domain.AttrStamina,
	domain.AttrStrength,
	domain.AttrTechnique,
	domain.AttrPassing,
	domain.AttrFinishing,
	domain.AttrDefending,
	domain.AttrAwareness,
	domain.AttrComposure,
}

// Develop computes the player's weekly development delta. The RNG is
// consumed in a fixed order: breakthrough check, gate check, then
// per-attribute rolls.
func Develop(r *rng.Rand, p domain.Player, club domain.Club) Delta {
	delta := Delta{PlayerID: p.ID}
	if !Eligible(p) {
		return delta
	}

	if p.Age >= BreakthroughMinAge && p.Age <= BreakthroughMaxAge &&
		p.Form >= BreakthroughMinForm && r.Chance(BreakthroughChance) {
		return breakthrough(r, p)
	}

	if !r.Chance(GateChance(p, club)) {
		return delta
	}

	bias := Bias(r, p)
	growChance := 0.20 + 0.20*bias
	if growChance > 0.40 {
		growChance = 0.40
	}
	if growChance < 0 {
		growChance = 0
	}
	declineChance := 0.08 - 0.17*bias
	if declineChance > 0.25 {
		declineChance = 0.25
	}
	if declineChance < 0 {
		declineChance = 0
	}

	ceiling := p.AttributeCeiling()
	count := r.IntBetween(1, 3)
	picked := pickDistinct(r, developable, count)
	net := 0
	for _, id := range picked {
		value := p.Attributes.Get(id)
		switch {
		case r.Chance(growChance):
			if value < ceiling && value < domain.AttributeMax {
				delta.Attributes = append(delta.Attributes, AttributeChange{ID: id, Delta: 1})
				net++
			}
		case r.Chance(declineChance):
			if value > domain.AttributeMin {
				delta.Attributes = append(delta.Attributes, AttributeChange{ID: id, Delta: -1})
				net--
			}
		}
	}

	switch {
	case net > 0 && p.CurrentAbility < p.PotentialAbility:
		delta.AbilityDelta = 1
	case net < 0 && p.CurrentAbility > domain.AbilityMin:
		delta.AbilityDelta = -1
	}
	return delta
}

// breakthrough grants a rare wonder week: 2-3 attributes jump +2/+3 each,
// allowed past the potential-derived ceiling (never past 20), and current
// ability jumps +3..+5 toward potential.
func breakthrough(r *rng.Rand, p domain.Player) Delta {
	delta := Delta{PlayerID: p.ID, Breakthrough: true}
	count := r.IntBetween(2, 3)
	for _, id := range pickDistinct(r, developable, count) {
		jump := r.IntBetween(2, 3)
		value := p.Attributes.Get(id)
		if value+jump > domain.AttributeMax {
			jump = domain.AttributeMax - value
		}
		if jump > 0 {
			delta.Attributes = append(delta.Attributes, AttributeChange{ID: id, Delta: jump})
		}
	}
	gain := r.IntBetween(3, 5)
	if p.CurrentAbility+gain > p.PotentialAbility {
		gain = p.PotentialAbility - p.CurrentAbility
	}
	if gain > 0 {
		delta.AbilityDelta = gain
	}
	return delta
}

// Setback returns the permanent physical-attribute drops caused by a newly
// incurred serious injury, or nil when the injury is below the threshold.
func Setback(r *rng.Rand, p domain.Player, newInjury domain.Injury) []AttributeChange {
	if newInjury.RecoveryWeeks <= injury.SeriousThresholdWeeks {
		return nil
	}
	count := r.IntBetween(1, 2)
	var changes []AttributeChange
	for _, id := range pickDistinct(r, domain.PhysicalAttributeIDs, count) {
		if p.Attributes.Get(id) > domain.AttributeMin {
			changes = append(changes, AttributeChange{ID: id, Delta: -1})
		}
	}
	return changes
}

// pickDistinct draws count distinct ids, preserving the shuffled order.
func pickDistinct(r *rng.Rand, ids []domain.AttributeID, count int) []domain.AttributeID {
	if count > len(ids) {
		count = len(ids)
	}
	return rng.Shuffle(r, ids)[:count]
}
