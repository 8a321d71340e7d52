// Package tick orchestrates the weekly simulation step. ComputeTick
// derives a pure change-set from an immutable snapshot and a seeded RNG;
// CommitTick folds that change-set into the next snapshot without
// drawing any further randomness. Identical snapshot and seed always
// produce identical results.
package tick

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/louisbranch/touchline/internal/sim/activity"
	"github.com/louisbranch/touchline/internal/sim/calendar"
	"github.com/louisbranch/touchline/internal/sim/development"
	"github.com/louisbranch/touchline/internal/sim/domain"
	"github.com/louisbranch/touchline/internal/sim/fixture"
	"github.com/louisbranch/touchline/internal/sim/injury"
	"github.com/louisbranch/touchline/internal/sim/knowledge"
	"github.com/louisbranch/touchline/internal/sim/rng"
	"github.com/louisbranch/touchline/internal/sim/transfer"
	"github.com/louisbranch/touchline/internal/worldgen"
)

// ErrNoRand is returned when ComputeTick is called without an RNG.
var ErrNoRand = errors.New("tick: rng is required")

// Reputation swings from weekly activity outcomes.
const (
	reputationPoor        = -0.3
	reputationExcellent   = 0.3
	reputationExceptional = 0.8
	reputationDiscovery   = 1.5
)

// ComputeTick simulates one week against the given snapshot. It never
// mutates state. The RNG is consumed in a fixed subsystem order:
// suspension decrements (no RNG), schedule processing and activity
// quality, fixtures, injuries, development, regional knowledge,
// transfers, youth intake, then the season rollover on the final week.
// Within each subsystem, map-keyed entities are visited in sorted id
// order so the draw sequence is reproducible.
func ComputeTick(state domain.GameState, r *rng.Rand) (Result, error) {
	if r == nil {
		return Result{}, ErrNoRand
	}

	result := Result{
		Week:                 state.Week,
		Season:               state.Season,
		SuspensionDecrements: make(map[string]int),
		SkillXP:              make(map[domain.SkillID]int),
	}

	// 1. Suspensions count down before any match. The decrement is the
	// ban being served, so availability is judged on the pre-decrement
	// value and a 1-match ban sits out this week's fixture.
	banned := make(map[string]int)
	for id, rec := range state.Discipline {
		if rec.SuspensionWeeks <= 0 {
			continue
		}
		banned[id] = rec.SuspensionWeeks
		result.SuspensionDecrements[id] = rec.SuspensionWeeks - 1
	}

	// 2. Weekly schedule and activity quality.
	effect, completed := calendar.Process(state.Schedule, state.Scout)
	result.ScheduleEffect = effect
	result.Schedule = completed
	for id, xp := range effect.SkillXP {
		result.SkillXP[id] = xp
	}
	result.ScoutXP = effect.XP
	discoveryMod := 0
	for _, act := range effect.Activities {
		outcome := activity.Resolve(r, act, state.Scout)
		result.Outcomes = append(result.Outcomes, outcome)
		discoveryMod += outcome.Discovery
		result.ScoutXP += qualityBonusXP(act.Type, outcome, state.Scout.Fatigue)
		switch outcome.Quality {
		case activity.QualityPoor:
			result.ReputationDelta += reputationPoor
		case activity.QualityExcellent:
			result.ReputationDelta += reputationExcellent
		case activity.QualityExceptional:
			result.ReputationDelta += reputationExceptional
		}
	}

	// 3. Fixtures, with cards rolled inside the simulator.
	for _, fx := range state.Fixtures {
		if fx.Played || fx.Week != state.Week || fx.Season != state.Season {
			continue
		}
		played := fixture.Simulate(r, fx, state, banned)
		result.PlayedFixtures = append(result.PlayedFixtures, played)
	}
	result.Suspensions = suspensionEvents(state, result.PlayedFixtures)
	for _, ev := range result.Suspensions {
		if ev.AddedWeeks == 0 {
			continue
		}
		result.Messages = append(result.Messages, message(state, domain.MessageDiscipline,
			fmt.Sprintf("%s suspended", playerName(state, ev.PlayerID)),
			fmt.Sprintf("%s picked up a ban of %d match(es).", playerName(state, ev.PlayerID), ev.AddedWeeks)))
	}

	// 4. Recoveries resolve before new incidence; an injured player is
	// never rolled for a fresh injury in the same week.
	for _, id := range sortedPlayerIDs(state) {
		p := state.Players[id]
		if p.Injured && p.InjuryWeeks <= 1 {
			result.Recoveries = append(result.Recoveries, id)
		}
	}
	for _, id := range sortedPlayerIDs(state) {
		p := state.Players[id]
		if p.Injured {
			continue
		}
		if !r.Chance(injury.Incidence(p)) {
			continue
		}
		inj := injury.Roll(r, id, state.Season, state.Week)
		result.Injuries = append(result.Injuries, InjuryEvent{PlayerID: id, Injury: inj})
		if inj.RecoveryWeeks > injury.SeriousThresholdWeeks {
			result.Messages = append(result.Messages, message(state, domain.MessageInjury,
				fmt.Sprintf("%s injured", playerName(state, id)),
				fmt.Sprintf("%s is out for %d weeks with a %s injury.", playerName(state, id), inj.RecoveryWeeks, inj.Type)))
		}
	}

	// 5. Development, then setbacks from this week's serious injuries.
	for _, id := range sortedPlayerIDs(state) {
		p := state.Players[id]
		if !development.Eligible(p) {
			continue
		}
		delta := development.Develop(r, p, state.Clubs[p.ClubID])
		if delta.Empty() {
			continue
		}
		result.Development = append(result.Development, delta)
	}
	for _, ev := range result.Injuries {
		if ev.Injury.RecoveryWeeks <= injury.SeriousThresholdWeeks {
			continue
		}
		changes := development.Setback(r, state.Players[ev.PlayerID], ev.Injury)
		if len(changes) == 0 {
			continue
		}
		result.Setbacks = append(result.Setbacks, SetbackEvent{PlayerID: ev.PlayerID, Changes: changes})
	}

	// 6. Regional knowledge, every known country in sorted order.
	for _, country := range sortedCountries(state) {
		current := state.Knowledge[country]
		present := country == state.Scout.CurrentCountry
		in := knowledge.Inputs{
			Present:                present,
			Specialized:            present && state.Scout.Focus == domain.FocusRegional,
			HiddenLeagueCandidates: hiddenLeagueCandidates(state, country),
		}
		if present {
			in.EquipmentBonus = state.Scout.EquipmentBonus
			in.DiscoveryModifier = discoveryMod
		}
		delta := knowledge.Update(r, current, in)
		result.Knowledge = append(result.Knowledge, delta)
		for _, insight := range delta.NewInsights {
			result.Messages = append(result.Messages, message(state, domain.MessageKnowledge,
				fmt.Sprintf("New insight in %s", country),
				fmt.Sprintf("Your understanding of %s deepened: %s.", country, insight)))
		}
		for _, contact := range delta.NewContacts {
			result.Messages = append(result.Messages, message(state, domain.MessageKnowledge,
				fmt.Sprintf("New contact in %s", country),
				fmt.Sprintf("A local contact (%s) is now feeding you information.", contact)))
		}
		if delta.DiscoveredLeague != "" {
			result.ReputationDelta += reputationDiscovery
			result.Messages = append(result.Messages, message(state, domain.MessageDiscovery,
				fmt.Sprintf("Hidden league uncovered in %s", country),
				fmt.Sprintf("You have learned of %s, a competition unknown to your rivals.", leagueName(state, delta.DiscoveredLeague))))
		}
	}

	// 7. Transfer market, only inside a window.
	if transfer.WindowOpen(state.Week) {
		result.Transfers = transfer.Resolve(r, state)
		for _, t := range result.Transfers {
			result.Messages = append(result.Messages, message(state, domain.MessageTransfer,
				fmt.Sprintf("%s transferred", playerName(state, t.PlayerID)),
				fmt.Sprintf("%s moved from %s to %s for %d.", playerName(state, t.PlayerID), clubName(state, t.FromClubID), clubName(state, t.ToClubID), t.Fee)))
		}
	}

	// 8. Youth intake in the scout's current country.
	if prospect, ok := worldgen.YouthProspect(r, state); ok {
		result.Youth = &prospect
		result.Messages = append(result.Messages, message(state, domain.MessageDiscovery,
			"Unsigned youth spotted",
			fmt.Sprintf("%s, age %d, is training unattached in %s.", prospect.Name, prospect.Age, prospect.Nationality)))
	}

	// 9. Season rollover on the final week.
	if state.Week >= domain.WeeksPerSeason {
		summary := computeRollover(state, result.PlayedFixtures, r)
		result.Rollover = &summary
		result.Messages = append(result.Messages, rolloverMessages(state, summary)...)
	}

	return result, nil
}

// qualityBonusXP converts an activity's quality tier into extra (or
// docked) experience on top of the base schedule yield.
func qualityBonusXP(t domain.ActivityType, outcome activity.Outcome, fatigue float64) int {
	bonus := float64(t.XPYield()) * (outcome.Quality.RewardMultiplier() - 1)
	if fatigue > domain.HighFatigueThreshold {
		bonus *= 0.7
	}
	return int(math.Round(bonus))
}

// suspensionEvents aggregates this week's cards per player and derives
// the suspension weeks they add, ordered by first card appearance.
func suspensionEvents(state domain.GameState, played []domain.Fixture) []SuspensionEvent {
	var order []string
	cards := make(map[string][]domain.Card)
	for _, fx := range played {
		if fx.Result == nil {
			continue
		}
		for _, ev := range fx.Result.Cards {
			if _, seen := cards[ev.PlayerID]; !seen {
				order = append(order, ev.PlayerID)
			}
			cards[ev.PlayerID] = append(cards[ev.PlayerID], ev.Card)
		}
	}

	events := make([]SuspensionEvent, 0, len(order))
	for _, id := range order {
		events = append(events, SuspensionEvent{
			PlayerID:   id,
			Cards:      cards[id],
			AddedWeeks: injury.SuspensionForCards(state.Discipline[id], cards[id]),
		})
	}
	return events
}

// hiddenLeagueCandidates lists the country's hidden leagues the scout has
// not yet discovered, sorted by id.
func hiddenLeagueCandidates(state domain.GameState, country string) []string {
	known := state.Knowledge[country]
	var ids []string
	for id, league := range state.Leagues {
		if !league.Hidden || league.Country != country {
			continue
		}
		if known.HasHiddenLeague(id) {
			continue
		}
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func sortedPlayerIDs(state domain.GameState) []string {
	ids := make([]string, 0, len(state.Players))
	for id := range state.Players {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func sortedCountries(state domain.GameState) []string {
	countries := make([]string, 0, len(state.Knowledge))
	for c := range state.Knowledge {
		countries = append(countries, c)
	}
	sort.Strings(countries)
	return countries
}

func message(state domain.GameState, cat domain.MessageCategory, subject, body string) domain.Message {
	return domain.Message{
		Week:     state.Week,
		Season:   state.Season,
		Category: cat,
		Subject:  subject,
		Body:     body,
	}
}

func playerName(state domain.GameState, id string) string {
	if p, ok := state.Players[id]; ok {
		return p.Name
	}
	return id
}

func clubName(state domain.GameState, id string) string {
	if c, ok := state.Clubs[id]; ok {
		return c.Name
	}
	return id
}

func leagueName(state domain.GameState, id string) string {
	if l, ok := state.Leagues[id]; ok {
		return l.Name
	}
	return id
}
