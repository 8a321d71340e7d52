// Package injury implements injury incidence, type/severity/duration
// generation, proneness accumulation and reinjury risk, plus the card
// probability model used for simulated fixtures.
package injury

import (
	"fmt"

	"github.com/louisbranch/touchline/internal/sim/domain"
	"github.com/louisbranch/touchline/internal/sim/rng"
)

// Incidence model constants.
const (
	BaseIncidence  = 0.02
	ReinjuryFactor = 2.0
)

// typeWeights is the fixed draw table for injury types.
var typeWeights = []rng.Weighted[domain.InjuryType]{
	{Value: domain.InjuryMuscle, Weight: 40},
	{Value: domain.InjuryKnock, Weight: 25},
	{Value: domain.InjuryLigament, Weight: 15},
	{Value: domain.InjuryFatigue, Weight: 10},
	{Value: domain.InjuryFracture, Weight: 7},
	{Value: domain.InjuryConcussion, Weight: 3},
}

// PronenessFactor maps the 1-20 injury-proneness attribute onto the
// [0.5, 2.5] incidence multiplier.
func PronenessFactor(attribute int) float64 {
	attribute = domain.ClampAttribute(attribute)
	return 0.5 + float64(attribute-1)/19*2.0
}

// Incidence returns a fit player's probability of a new injury this week:
// base rate scaled by attribute proneness, accumulated history proneness
// and the post-recovery reinjury window.
func Incidence(p domain.Player) float64 {
	chance := BaseIncidence
	chance *= PronenessFactor(p.Attributes.InjuryProneness)
	chance *= 1 + p.InjuryHistory.Proneness
	if p.InjuryHistory.InReinjuryWindow() {
		chance *= ReinjuryFactor
	}
	return chance
}

// Roll draws a new injury for the player: type from the fixed weighted
// set, recovery weeks uniform within the type's range, severity from the
// recovery-length bands. The id is derived from the player and week so
// computing a tick twice yields identical records.
func Roll(r *rng.Rand, playerID string, season, week int) domain.Injury {
	injuryType := rng.PickWeighted(r, typeWeights)
	minWeeks, maxWeeks := injuryType.RecoveryRange()
	weeks := r.IntBetween(minWeeks, maxWeeks)
	return domain.Injury{
		ID:            fmt.Sprintf("%s-s%d-w%d", playerID, season, week),
		Type:          injuryType,
		Severity:      domain.SeverityForWeeks(weeks),
		RecoveryWeeks: weeks,
		WeeksLeft:     weeks,
	}
}

// SeriousThresholdWeeks is the recovery length beyond which a new injury
// triggers a permanent development setback.
const SeriousThresholdWeeks = 4
