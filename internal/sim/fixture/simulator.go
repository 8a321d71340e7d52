// Package fixture converts two opposing squads' aggregate ability into a
// scoreline, weather, attendance, scorers and per-player match ratings for
// one simulated match.
package fixture

import (
	"math"
	"sort"

	"github.com/louisbranch/touchline/internal/sim/domain"
	"github.com/louisbranch/touchline/internal/sim/injury"
	"github.com/louisbranch/touchline/internal/sim/rng"
)

// Expected-goals model constants.
const (
	BaseGoals      = 2.6
	HomeAdvantage  = 0.3
	DefaultAbility = 100.0

	AttendanceMin = 500
	AttendanceMax = 90000
)

// weatherTable is the fixed weighted draw for match-day conditions.
var weatherTable = []rng.Weighted[domain.Weather]{
	{Value: domain.WeatherClear, Weight: 40},
	{Value: domain.WeatherCloudy, Weight: 25},
	{Value: domain.WeatherRain, Weight: 20},
	{Value: domain.WeatherWind, Weight: 8},
	{Value: domain.WeatherFog, Weight: 4},
	{Value: domain.WeatherSnow, Weight: 3},
}

// tacticalModifier returns the asymmetric expected-goals factor for a side
// playing its style against the opponent's. Unlisted pairings are neutral.
func tacticalModifier(mine, theirs domain.TacticalStyle) float64 {
	switch {
	case mine == domain.StyleAttacking && theirs == domain.StyleDefensive:
		return 0.93
	case mine == domain.StyleDefensive && theirs == domain.StyleAttacking:
		return 0.90
	case mine == domain.StyleCounter && theirs == domain.StyleAttacking:
		return 1.10
	case mine == domain.StyleCounter && theirs == domain.StylePossession:
		return 1.06
	case mine == domain.StylePossession && theirs == domain.StyleDefensive:
		return 0.95
	case mine == domain.StyleDefensive && theirs == domain.StylePossession:
		return 0.92
	default:
		return 1.0
	}
}

// SquadOf returns a club's players sorted by id. Sorting pins the RNG
// consumption order regardless of map iteration.
func SquadOf(state domain.GameState, clubID string) []domain.Player {
	var squad []domain.Player
	for _, p := range state.Players {
		if p.ClubID == clubID {
			squad = append(squad, p)
		}
	}
	sort.Slice(squad, func(i, j int) bool { return squad[i].ID < squad[j].ID })
	return squad
}

// available filters a squad to players neither injured nor suspended for
// this week. suspensions holds the week's effective suspension weeks.
func available(squad []domain.Player, suspensions map[string]int) []domain.Player {
	var out []domain.Player
	for _, p := range squad {
		if p.Available(suspensions[p.ID]) {
			out = append(out, p)
		}
	}
	return out
}

// averageAbility returns the mean current ability of the squad, or the
// neutral default for an empty one.
func averageAbility(squad []domain.Player) float64 {
	if len(squad) == 0 {
		return DefaultAbility
	}
	total := 0
	for _, p := range squad {
		total += p.CurrentAbility
	}
	return float64(total) / float64(len(squad))
}

// Simulate plays one fixture and returns a played copy. Inputs are never
// mutated; dangling club references yield a defaulted squad rather than a
// failure.
//
// The RNG is consumed in a fixed order: weather, home goals, away goals,
// attendance, home scorers, away scorers, home ratings, away ratings,
// home cards, away cards.
func Simulate(r *rng.Rand, fx domain.Fixture, state domain.GameState, suspensions map[string]int) domain.Fixture {
	homeSquad := available(SquadOf(state, fx.HomeID), suspensions)
	awaySquad := available(SquadOf(state, fx.AwayID), suspensions)
	homeClub := state.Clubs[fx.HomeID]
	awayClub := state.Clubs[fx.AwayID]

	weather := rng.PickWeighted(r, weatherTable)
	factor := weather.AbilityFactor()
	homeAbility := averageAbility(homeSquad) * factor
	awayAbility := averageAbility(awaySquad) * factor
	total := homeAbility + awayAbility

	homeXG := homeAbility/total*BaseGoals*tacticalModifier(homeClub.Style, awayClub.Style) + HomeAdvantage
	awayXG := awayAbility / total * BaseGoals * tacticalModifier(awayClub.Style, homeClub.Style)

	homeGoals := drawGoals(r, homeXG)
	awayGoals := drawGoals(r, awayXG)

	attendance := int(math.Round(r.Gaussian(homeClub.Reputation*400, homeClub.Reputation*60)))
	if attendance < AttendanceMin {
		attendance = AttendanceMin
	}
	if attendance > AttendanceMax {
		attendance = AttendanceMax
	}

	result := &domain.FixtureResult{
		HomeGoals:  homeGoals,
		AwayGoals:  awayGoals,
		Weather:    weather,
		Attendance: attendance,
		Ratings:    make(map[string]float64, len(homeSquad)+len(awaySquad)),
	}

	result.Scorers = append(result.Scorers, drawScorers(r, homeSquad, fx.HomeID, homeGoals)...)
	result.Scorers = append(result.Scorers, drawScorers(r, awaySquad, fx.AwayID, awayGoals)...)

	goalsBy := make(map[string]int)
	for _, goal := range result.Scorers {
		goalsBy[goal.PlayerID]++
	}
	rate(r, result, homeSquad, goalsBy, awayGoals == 0)
	rate(r, result, awaySquad, goalsBy, homeGoals == 0)

	for _, p := range homeSquad {
		for _, card := range injury.RollMatchCards(r, p, fx.Week) {
			result.Cards = append(result.Cards, domain.CardEvent{PlayerID: p.ID, ClubID: fx.HomeID, Card: card})
		}
	}
	for _, p := range awaySquad {
		for _, card := range injury.RollMatchCards(r, p, fx.Week) {
			result.Cards = append(result.Cards, domain.CardEvent{PlayerID: p.ID, ClubID: fx.AwayID, Card: card})
		}
	}

	played := fx
	played.Played = true
	played.Result = result
	return played
}

// drawGoals approximates a Poisson draw with a Gaussian of matching mean
// and variance, floored at zero.
func drawGoals(r *rng.Rand, xg float64) int {
	if xg < 0 {
		xg = 0
	}
	goals := r.Gaussian(xg, math.Sqrt(xg))
	if goals < 0 {
		return 0
	}
	return int(math.Round(goals))
}

// drawScorers picks a scorer per goal, weighted by attacking ability, and
// re-rolls minutes that collide with the previous goal's minute.
func drawScorers(r *rng.Rand, squad []domain.Player, clubID string, goals int) []domain.Goal {
	if goals == 0 || len(squad) == 0 {
		return nil
	}
	weighted := make([]rng.Weighted[domain.Player], 0, len(squad))
	for _, p := range squad {
		weighted = append(weighted, rng.Weighted[domain.Player]{
			Value:  p,
			Weight: scoringWeight(p),
		})
	}
	out := make([]domain.Goal, 0, goals)
	lastMinute := -1
	for i := 0; i < goals; i++ {
		scorer := rng.PickWeighted(r, weighted)
		minute := r.IntBetween(1, 90)
		for minute == lastMinute {
			minute = r.IntBetween(1, 90)
		}
		lastMinute = minute
		out = append(out, domain.Goal{PlayerID: scorer.ID, ClubID: clubID, Minute: minute})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Minute < out[j].Minute })
	return out
}

// scoringWeight biases scorer selection toward finishers in advanced
// positions.
func scoringWeight(p domain.Player) float64 {
	weight := float64(p.CurrentAbility) * (0.5 + float64(p.Attributes.Finishing)/20)
	switch p.Position {
	case domain.PositionStriker:
		weight *= 2.0
	case domain.PositionWinger, domain.PositionAttackingMid:
		weight *= 1.5
	case domain.PositionGoalkeeper:
		weight *= 0.02
	}
	return weight
}

// rate produces each player's match rating from the lighter synthetic
// model used for non-attended fixtures: an ability baseline, Gaussian
// noise, a scorer bonus and a position-specific bonus.
func rate(r *rng.Rand, result *domain.FixtureResult, squad []domain.Player, goalsBy map[string]int, cleanSheet bool) {
	for _, p := range squad {
		rating := 4.5 + float64(p.CurrentAbility)/200*3.0
		rating += r.Gaussian(0, 0.8)
		rating += 0.8 * float64(goalsBy[p.ID])
		rating += positionBonus(p, cleanSheet)
		if rating < 1 {
			rating = 1
		}
		if rating > 10 {
			rating = 10
		}
		result.Ratings[p.ID] = math.Round(rating*10) / 10
	}
}

// positionBonus rewards the stat line a position is judged on: keepers and
// defenders on shutouts, creators on passing, forwards on finishing.
func positionBonus(p domain.Player, cleanSheet bool) float64 {
	switch p.Position {
	case domain.PositionGoalkeeper:
		if cleanSheet {
			return 0.8
		}
		return 0
	case domain.PositionCentreBack, domain.PositionFullBack:
		if cleanSheet {
			return 0.5
		}
		return 0
	case domain.PositionDefensiveMid, domain.PositionCentralMid:
		return float64(p.Attributes.Passing) / 20 * 0.4
	case domain.PositionAttackingMid, domain.PositionWinger:
		return float64(p.Attributes.Technique) / 20 * 0.4
	case domain.PositionStriker:
		return float64(p.Attributes.Finishing) / 20 * 0.4
	default:
		return 0
	}
}
