package transfer

import (
	"fmt"
	"testing"

	"github.com/louisbranch/touchline/internal/sim/domain"
	"github.com/louisbranch/touchline/internal/sim/rng"
)

func marketState(week int) domain.GameState {
	state := domain.GameState{
		Week:    week,
		Players: map[string]domain.Player{},
		Clubs: map[string]domain.Club{
			"rich": {ID: "rich", Reputation: 90, Budget: 50_000_000},
			"poor": {ID: "poor", Reputation: 30, Budget: 100_000},
		},
	}
	for i := 0; i < 10; i++ {
		for _, club := range []string{"rich", "poor"} {
			ability := 90
			if club == "poor" && i < 3 {
				ability = 150 // stars worth buying
			}
			id := fmt.Sprintf("%s-%d", club, i)
			state.Players[id] = domain.Player{
				ID: id, ClubID: club, Age: 24, CurrentAbility: ability,
				PotentialAbility: ability + 10,
			}
		}
	}
	return state
}

// TestWindowWeeks pins the open windows.
func TestWindowWeeks(t *testing.T) {
	open := []int{1, 2, 3, 4, 20, 22, 24}
	closed := []int{0, 5, 10, 19, 25, 38}
	for _, w := range open {
		if !WindowOpen(w) {
			t.Fatalf("week %d should be open", w)
		}
	}
	for _, w := range closed {
		if WindowOpen(w) {
			t.Fatalf("week %d should be closed", w)
		}
	}
}

// TestResolveClosedWindow ensures no market activity outside windows.
func TestResolveClosedWindow(t *testing.T) {
	if got := Resolve(rng.New(1), marketState(12)); got != nil {
		t.Fatalf("transfers outside window: %+v", got)
	}
}

// TestResolveDeterministic ensures identical seeds resolve identical
// windows.
func TestResolveDeterministic(t *testing.T) {
	state := marketState(2)
	a := Resolve(rng.New(44), state)
	b := Resolve(rng.New(44), state)
	if len(a) != len(b) {
		t.Fatalf("lengths diverged: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("transfer %d diverged: %+v vs %+v", i, a[i], b[i])
		}
	}
}

// TestTransfersRespectBudgetAndDirection ensures every completed move is
// affordable, improves the buyer, and never repeats a player.
func TestTransfersRespectBudgetAndDirection(t *testing.T) {
	state := marketState(1)
	for seed := int64(0); seed < 200; seed++ {
		seen := map[string]bool{}
		spent := map[string]int64{}
		for _, tr := range Resolve(rng.New(seed), state) {
			if seen[tr.PlayerID] {
				t.Fatalf("player %s moved twice", tr.PlayerID)
			}
			seen[tr.PlayerID] = true
			spent[tr.ToClubID] += tr.Fee
			if spent[tr.ToClubID] > state.Clubs[tr.ToClubID].Budget {
				t.Fatalf("club %s overspent", tr.ToClubID)
			}
			if tr.FromClubID == tr.ToClubID {
				t.Fatal("self-transfer")
			}
			p := state.Players[tr.PlayerID]
			if p.ClubID != tr.FromClubID {
				t.Fatal("transfer from wrong club")
			}
		}
	}
}

// TestFeeAgeCurve ensures prospects cost more than veterans of equal
// ability.
func TestFeeAgeCurve(t *testing.T) {
	young := domain.Player{Age: 19, CurrentAbility: 120}
	old := domain.Player{Age: 34, CurrentAbility: 120}
	if Fee(young) <= Fee(old) {
		t.Fatalf("fee curve inverted: young %d <= old %d", Fee(young), Fee(old))
	}
}

// TestEventuallyCompletes ensures the market does move players given
// enough window weeks.
func TestEventuallyCompletes(t *testing.T) {
	state := marketState(1)
	r := rng.New(7)
	for i := 0; i < 200; i++ {
		if len(Resolve(r, state)) > 0 {
			return
		}
	}
	t.Fatal("no transfer completed across 200 window weeks")
}
