// Package transfer implements the weekly transfer-market pass: during
// window weeks, clubs attempt to sign players that improve their squad and
// fit their budget. Results are pure change objects; money and club moves
// apply in the tick commit.
package transfer

import (
	"math"
	"sort"

	"github.com/louisbranch/touchline/internal/sim/domain"
	"github.com/louisbranch/touchline/internal/sim/rng"
)

// Market constants.
const (
	AttemptsPerWeek  = 3
	CompletionChance = 0.35
	FeePerAbility    = 12000
)

// Transfer is one completed move.
type Transfer struct {
	PlayerID   string
	FromClubID string
	ToClubID   string
	Fee        int64
}

// WindowOpen reports whether the transfer market is active in the given
// week of the season.
func WindowOpen(week int) bool {
	return (week >= 1 && week <= 4) || (week >= 20 && week <= 24)
}

// ageFactor discounts fees for veterans and adds a premium for prospects.
func ageFactor(age int) float64 {
	switch {
	case age <= 21:
		return 1.4
	case age <= 26:
		return 1.2
	case age <= 30:
		return 1.0
	case age <= 33:
		return 0.6
	default:
		return 0.3
	}
}

// Fee returns the asking price for a player.
func Fee(p domain.Player) int64 {
	return int64(math.Round(float64(p.CurrentAbility) * ageFactor(p.Age) * FeePerAbility))
}

// Resolve runs one window week of market activity. Clubs are considered in
// id order and drawn weighted by reputation; each attempt completes with a
// fixed probability. A player moves at most once per week.
func Resolve(r *rng.Rand, state domain.GameState) []Transfer {
	if !WindowOpen(state.Week) {
		return nil
	}

	clubs := make([]domain.Club, 0, len(state.Clubs))
	for _, c := range state.Clubs {
		clubs = append(clubs, c)
	}
	sort.Slice(clubs, func(i, j int) bool { return clubs[i].ID < clubs[j].ID })
	if len(clubs) < 2 {
		return nil
	}

	weighted := make([]rng.Weighted[domain.Club], 0, len(clubs))
	for _, c := range clubs {
		weighted = append(weighted, rng.Weighted[domain.Club]{Value: c, Weight: c.Reputation + 1})
	}

	squadAvg := squadAverages(state)
	moved := map[string]bool{}
	spent := map[string]int64{}

	var transfers []Transfer
	for attempt := 0; attempt < AttemptsPerWeek; attempt++ {
		buyer := rng.PickWeighted(r, weighted)
		budget := buyer.Budget - spent[buyer.ID]

		candidates := targetsFor(state, buyer, squadAvg[buyer.ID], budget, moved)
		if len(candidates) == 0 {
			continue
		}
		target := rng.PickWeighted(r, candidates)
		if !r.Chance(CompletionChance) {
			continue
		}

		fee := Fee(target)
		moved[target.ID] = true
		spent[buyer.ID] += fee
		transfers = append(transfers, Transfer{
			PlayerID:   target.ID,
			FromClubID: target.ClubID,
			ToClubID:   buyer.ID,
			Fee:        fee,
		})
	}
	return transfers
}

// squadAverages precomputes each club's mean current ability.
func squadAverages(state domain.GameState) map[string]float64 {
	totals := map[string]int{}
	counts := map[string]int{}
	for _, p := range state.Players {
		totals[p.ClubID] += p.CurrentAbility
		counts[p.ClubID]++
	}
	out := make(map[string]float64, len(totals))
	for id, total := range totals {
		out[id] = float64(total) / float64(counts[id])
	}
	return out
}

// targetsFor lists affordable players at other clubs who would improve the
// buyer, weighted by ability. Iteration is id-sorted for determinism.
func targetsFor(state domain.GameState, buyer domain.Club, squadAvg float64, budget int64, moved map[string]bool) []rng.Weighted[domain.Player] {
	ids := make([]string, 0, len(state.Players))
	for id := range state.Players {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	var out []rng.Weighted[domain.Player]
	for _, id := range ids {
		p := state.Players[id]
		if p.ClubID == "" || p.ClubID == buyer.ID || moved[p.ID] || p.Injured {
			continue
		}
		if float64(p.CurrentAbility) <= squadAvg {
			continue
		}
		if Fee(p) > budget {
			continue
		}
		out = append(out, rng.Weighted[domain.Player]{Value: p, Weight: float64(p.CurrentAbility)})
	}
	return out
}
