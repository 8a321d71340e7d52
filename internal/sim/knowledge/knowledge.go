// Package knowledge implements graduated country-level knowledge
// accumulation, the scouting-efficiency curve derived from it, and the
// one-shot unlocks (insights, contacts, hidden leagues) gated by crossing
// fixed thresholds.
package knowledge

import (
	"fmt"

	"github.com/louisbranch/touchline/internal/sim/domain"
	"github.com/louisbranch/touchline/internal/sim/rng"
)

// Weekly accumulation constants.
const (
	PresenceBonus         = 2.0
	ContactFamiliarity    = 0.5
	ContactFamiliarityCap = 2.0
	SpecializationBonus   = 1.0
)

// InsightThresholds lists the knowledge levels that each unlock one
// cultural insight, ascending.
var InsightThresholds = []float64{10, 25, 45, 70}

// ContactThresholds lists the knowledge levels that each unlock one local
// contact, ascending.
var ContactThresholds = []float64{15, 30, 50, 70, 90}

// Hidden-league discovery parameters.
const (
	hiddenLeagueMinLevel   = 50.0
	hiddenLeagueBaseChance = 0.02
)

// Efficiency returns the fraction of baseline observation error that
// remains at the given knowledge level: a 4-segment piecewise-linear
// curve from 1.00 at level 0 down to 0.30 at level 100, continuous at
// every segment join.
func Efficiency(level float64) float64 {
	if level <= 0 {
		return 1.0
	}
	if level >= 100 {
		return 0.30
	}
	switch {
	case level < 25:
		return 1.00 - (level/25)*0.15
	case level < 50:
		return 0.85 - ((level-25)/25)*0.15
	case level < 75:
		return 0.70 - ((level-50)/25)*0.20
	default:
		return 0.50 - ((level-75)/25)*0.20
	}
}

// Inputs describes one country's weekly accumulation sources.
type Inputs struct {
	// Present is true when the scout was active in the country this week.
	Present bool
	// Specialized is true when the scout's primary focus is regional and
	// this is the current country.
	Specialized bool
	// EquipmentBonus is any external flat bonus.
	EquipmentBonus float64
	// DiscoveryModifier shifts the hidden-league check, from the week's
	// activity quality.
	DiscoveryModifier int
	// HiddenLeagueCandidates lists ids of this country's not-yet-discovered
	// hidden leagues.
	HiddenLeagueCandidates []string
	// InsightPool lists this country's insight ids; the default pool is
	// used when empty.
	InsightPool []string
}

// Delta is the change-set for one country's knowledge this week.
type Delta struct {
	Country          string
	Gain             float64
	NewLevel         float64
	NewInsights      []string
	InsightCrossed   []float64
	NewContacts      []string
	ContactCrossed   []float64
	DiscoveredLeague string
}

// defaultInsights is the fallback insight pool for countries without a
// dedicated one.
var defaultInsights = []string{
	"youth-system-structure",
	"agent-landscape",
	"playing-style-identity",
	"club-politics",
	"media-pressure",
	"matchday-culture",
}

// Update accumulates one week of knowledge for a country and resolves any
// unlocks. It is pure over its inputs plus the RNG stream.
func Update(r *rng.Rand, current domain.RegionalKnowledge, in Inputs) Delta {
	gain := 0.0
	if in.Present {
		gain += PresenceBonus
	}
	familiarity := float64(len(current.Contacts)) * ContactFamiliarity
	if familiarity > ContactFamiliarityCap {
		familiarity = ContactFamiliarityCap
	}
	gain += familiarity
	if in.Specialized {
		gain += SpecializationBonus
	}
	gain += in.EquipmentBonus

	newLevel := domain.ClampPercent(current.Level + gain)
	delta := Delta{
		Country:  current.Country,
		Gain:     newLevel - current.Level,
		NewLevel: newLevel,
	}

	pool := in.InsightPool
	if len(pool) == 0 {
		pool = defaultInsights
	}
	for _, threshold := range InsightThresholds {
		if newLevel < threshold || current.CrossedInsight(threshold) {
			continue
		}
		delta.InsightCrossed = append(delta.InsightCrossed, threshold)
		if insight, ok := pickUnseen(r, pool, current.Insights, delta.NewInsights); ok {
			delta.NewInsights = append(delta.NewInsights, insight)
		}
	}

	for _, threshold := range ContactThresholds {
		if newLevel < threshold || current.CrossedContact(threshold) {
			continue
		}
		delta.ContactCrossed = append(delta.ContactCrossed, threshold)
		id := fmt.Sprintf("%s-contact-%d", current.Country, len(current.Contacts)+len(delta.NewContacts)+1)
		delta.NewContacts = append(delta.NewContacts, id)
	}

	if newLevel >= hiddenLeagueMinLevel && len(in.HiddenLeagueCandidates) > 0 {
		chance := hiddenLeagueBaseChance * (1 + 0.25*float64(in.DiscoveryModifier))
		if chance > 0 && r.Chance(chance) {
			delta.DiscoveredLeague = rng.Pick(r, in.HiddenLeagueCandidates)
		}
	}

	return delta
}

// pickUnseen draws one pool entry not already unlocked or pending. The
// second return is false when the pool is exhausted.
func pickUnseen(r *rng.Rand, pool, unlocked, pending []string) (string, bool) {
	seen := make(map[string]bool, len(unlocked)+len(pending))
	for _, v := range unlocked {
		seen[v] = true
	}
	for _, v := range pending {
		seen[v] = true
	}
	candidates := make([]string, 0, len(pool))
	for _, v := range pool {
		if !seen[v] {
			candidates = append(candidates, v)
		}
	}
	if len(candidates) == 0 {
		return "", false
	}
	return rng.Pick(r, candidates), true
}

// Apply folds a delta into a knowledge record, recording crossed
// thresholds so each unlock fires at most once.
func Apply(current domain.RegionalKnowledge, delta Delta) domain.RegionalKnowledge {
	current.Level = domain.ClampPercent(delta.NewLevel)
	current.Insights = append(current.Insights, delta.NewInsights...)
	current.InsightCrossed = append(current.InsightCrossed, delta.InsightCrossed...)
	current.Contacts = append(current.Contacts, delta.NewContacts...)
	current.ContactCrossed = append(current.ContactCrossed, delta.ContactCrossed...)
	if delta.DiscoveredLeague != "" && !current.HasHiddenLeague(delta.DiscoveredLeague) {
		current.HiddenLeagues = append(current.HiddenLeagues, delta.DiscoveredLeague)
	}
	return current
}
