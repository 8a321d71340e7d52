package tick

import (
	"fmt"
	"sort"

	"github.com/louisbranch/touchline/internal/sim/domain"
	"github.com/louisbranch/touchline/internal/sim/rng"
	"github.com/louisbranch/touchline/internal/worldgen"
)

// Retirement parameters. Players roll from age 34 with steeply rising
// odds and always retire at 38.
const (
	RetirementMinAge    = 34
	RetirementForcedAge = 38
)

func retirementChance(age int) float64 {
	if age >= RetirementForcedAge {
		return 1
	}
	if age < RetirementMinAge {
		return 0
	}
	return 0.15 + 0.25*float64(age-RetirementMinAge)
}

// computeRollover builds the end-of-season summary: final tables with
// this week's results folded in, the champion of every league, the top
// scorer, retirement rolls on next season's ages, and the full fixture
// list for the following season.
func computeRollover(state domain.GameState, played []domain.Fixture, r *rng.Rand) SeasonSummary {
	summary := SeasonSummary{
		Season:         state.Season,
		Champions:      make(map[string]string),
		FinalStandings: make(map[string][]domain.Standing),
	}

	byLeague := make(map[string][]domain.Fixture)
	for _, fx := range played {
		byLeague[fx.LeagueID] = append(byLeague[fx.LeagueID], fx)
	}
	for id, league := range state.Leagues {
		table := append([]domain.Standing(nil), league.Standings...)
		for _, fx := range byLeague[id] {
			table = foldFixture(table, fx)
		}
		sortTable(table)
		summary.FinalStandings[id] = table
		if len(table) > 0 {
			summary.Champions[id] = table[0].ClubID
		}
	}

	weekGoals := make(map[string]int)
	for _, fx := range played {
		if fx.Result == nil {
			continue
		}
		for _, goal := range fx.Result.Scorers {
			weekGoals[goal.PlayerID]++
		}
	}
	for _, id := range sortedPlayerIDs(state) {
		goals := state.Players[id].SeasonGoals + weekGoals[id]
		if goals > summary.TopScorerGoals {
			summary.TopScorerGoals = goals
			summary.TopScorerID = id
		}
	}

	for _, id := range sortedPlayerIDs(state) {
		age := state.Players[id].Age + 1
		if age >= RetirementForcedAge || (age >= RetirementMinAge && r.Chance(retirementChance(age))) {
			summary.Retirements = append(summary.Retirements, id)
		}
	}

	summary.NextFixtures = worldgen.SeasonFixtures(state, state.Season+1)
	return summary
}

func rolloverMessages(state domain.GameState, summary SeasonSummary) []domain.Message {
	var msgs []domain.Message
	for _, leagueID := range sortedLeagueIDs(summary.Champions) {
		league := state.Leagues[leagueID]
		if league.Hidden {
			continue
		}
		msgs = append(msgs, message(state, domain.MessageSeason,
			fmt.Sprintf("%s decided", league.Name),
			fmt.Sprintf("%s are champions of %s.", clubName(state, summary.Champions[leagueID]), league.Name)))
	}
	if summary.TopScorerID != "" {
		msgs = append(msgs, message(state, domain.MessageSeason,
			"Golden boot",
			fmt.Sprintf("%s finished as top scorer with %d goals.", playerName(state, summary.TopScorerID), summary.TopScorerGoals)))
	}
	if len(summary.Retirements) > 0 {
		msgs = append(msgs, message(state, domain.MessageSeason,
			"Retirements",
			fmt.Sprintf("%d players hung up their boots at season's end.", len(summary.Retirements))))
	}
	return msgs
}

func sortedLeagueIDs(champions map[string]string) []string {
	ids := make([]string, 0, len(champions))
	for id := range champions {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// foldFixture applies one played fixture to a standings table copy,
// ignoring results whose clubs are not in the table.
func foldFixture(table []domain.Standing, fx domain.Fixture) []domain.Standing {
	if fx.Result == nil {
		return table
	}
	home, away := fx.Result.HomeGoals, fx.Result.AwayGoals
	for i := range table {
		switch table[i].ClubID {
		case fx.HomeID:
			table[i] = foldRow(table[i], home, away)
		case fx.AwayID:
			table[i] = foldRow(table[i], away, home)
		}
	}
	return table
}

func foldRow(row domain.Standing, scored, conceded int) domain.Standing {
	row.Played++
	row.GoalsFor += scored
	row.GoalsAgainst += conceded
	switch {
	case scored > conceded:
		row.Won++
		row.Points += 3
	case scored == conceded:
		row.Drawn++
		row.Points++
	default:
		row.Lost++
	}
	return row
}

// sortTable orders a league table by points, goal difference, goals
// scored, then club id for a stable tie-break.
func sortTable(table []domain.Standing) {
	sort.SliceStable(table, func(i, j int) bool {
		a, b := table[i], table[j]
		if a.Points != b.Points {
			return a.Points > b.Points
		}
		gdA, gdB := a.GoalsFor-a.GoalsAgainst, b.GoalsFor-b.GoalsAgainst
		if gdA != gdB {
			return gdA > gdB
		}
		if a.GoalsFor != b.GoalsFor {
			return a.GoalsFor > b.GoalsFor
		}
		return a.ClubID < b.ClubID
	})
}
