// Package worldgen builds fresh game worlds and the weekly youth intake
// from a seeded random source. Generation is deterministic: the same seed
// produces the same world, entity ids included.
package worldgen

import (
	"fmt"
	"sort"

	"github.com/google/uuid"

	"github.com/louisbranch/touchline/internal/sim/domain"
	"github.com/louisbranch/touchline/internal/sim/rng"
)

// Options sizes a generated world. Zero values fall back to defaults.
type Options struct {
	Countries      int
	ClubsPerLeague int
	PlayersPerClub int
	ScoutName      string
}

// Default world dimensions.
const (
	DefaultCountries      = 4
	DefaultClubsPerLeague = 12
	DefaultPlayersPerClub = 18

	hiddenClubsPerLeague   = 8
	hiddenPlayersPerClub   = 14
	hiddenLeagueAbilityCap = 110
)

// Youth intake parameters.
const (
	YouthIntakeChance = 0.12
	YouthCap          = 30
)

func (o Options) withDefaults() Options {
	if o.Countries <= 0 {
		o.Countries = DefaultCountries
	}
	if o.Countries > len(countries) {
		o.Countries = len(countries)
	}
	if o.ClubsPerLeague <= 1 {
		o.ClubsPerLeague = DefaultClubsPerLeague
	}
	if o.PlayersPerClub <= 0 {
		o.PlayersPerClub = DefaultPlayersPerClub
	}
	return o
}

// rngReader adapts the simulation RNG to io.Reader so uuid generation
// draws from the deterministic stream instead of crypto/rand.
type rngReader struct {
	r *rng.Rand
}

func (rr rngReader) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = byte(rr.r.IntBetween(0, 255))
	}
	return len(p), nil
}

// newID returns a deterministic UUID drawn from the RNG stream.
func newID(r *rng.Rand) string {
	id, err := uuid.NewRandomFromReader(rngReader{r: r})
	if err != nil {
		// The reader never fails; this is unreachable but keeps the
		// contract explicit.
		panic(fmt.Sprintf("worldgen: uuid generation failed: %v", err))
	}
	return id.String()
}

// Build generates a complete season-1 world: one visible league per
// country plus one hidden lower league, clubs with styles, budgets and
// squads, a scout, and the full fixture schedule.
func Build(r *rng.Rand, opts Options) domain.GameState {
	opts = opts.withDefaults()

	state := domain.GameState{
		Players:    map[string]domain.Player{},
		Clubs:      map[string]domain.Club{},
		Leagues:    map[string]domain.League{},
		Discipline: map[string]domain.DisciplinaryRecord{},
		Knowledge:  map[string]domain.RegionalKnowledge{},
		Week:       1,
		Season:     1,
	}

	for i := 0; i < opts.Countries; i++ {
		country := countries[i]
		state.Knowledge[country] = domain.RegionalKnowledge{Country: country}

		visible := domain.League{
			ID:      newID(r),
			Name:    fmt.Sprintf("%s %s League", country, rng.Pick(r, leagueAdjectives)),
			Country: country,
			Tier:    1,
		}
		buildLeague(r, &state, &visible, opts.ClubsPerLeague, opts.PlayersPerClub, 0)
		state.Leagues[visible.ID] = visible

		hidden := domain.League{
			ID:      newID(r),
			Name:    fmt.Sprintf("%s %s", country, rng.Pick(r, hiddenLeagueNames)),
			Country: country,
			Tier:    2,
			Hidden:  true,
		}
		buildLeague(r, &state, &hidden, hiddenClubsPerLeague, hiddenPlayersPerClub, hiddenLeagueAbilityCap)
		state.Leagues[hidden.ID] = hidden
	}

	name := opts.ScoutName
	if name == "" {
		name = rng.Pick(r, scoutNames)
	}
	state.Scout = domain.Scout{
		Name: name,
		Skills: domain.Skills{
			JudgingAbility:   r.IntBetween(8, 14),
			JudgingPotential: r.IntBetween(8, 14),
			Networking:       r.IntBetween(6, 12),
			Negotiation:      r.IntBetween(6, 12),
			Adaptability:     r.IntBetween(6, 12),
			Endurance:        r.IntBetween(8, 14),
		},
		Reputation:     20,
		CurrentCountry: countries[0],
		Focus:          domain.Focus(r.IntBetween(0, 2)),
	}

	state.Fixtures = SeasonFixtures(state, 1)
	return state
}

// buildLeague fills one league with clubs and squads. abilityCap, when
// positive, bounds player ability so hidden leagues stay modest.
func buildLeague(r *rng.Rand, state *domain.GameState, league *domain.League, clubCount, squadSize, abilityCap int) {
	for i := 0; i < clubCount; i++ {
		club := domain.Club{
			ID:         newID(r),
			Name:       clubName(r),
			LeagueID:   league.ID,
			Country:    league.Country,
			Reputation: float64(r.IntBetween(20, 90)),
			Style:      rng.Pick(r, domain.TacticalStyles),
			Budget:     int64(r.IntBetween(500, 20000)) * 1000,
		}
		if league.Hidden {
			club.Reputation = float64(r.IntBetween(5, 35))
		}
		state.Clubs[club.ID] = club
		league.Standings = append(league.Standings, domain.Standing{ClubID: club.ID})

		for j := 0; j < squadSize; j++ {
			p := generatePlayer(r, league.Country, positionFor(j), abilityCap)
			p.ClubID = club.ID
			state.Players[p.ID] = p
		}
	}
}

// positionFor shapes a squad: keepers first, then defenders, midfielders
// and forwards in rough formation proportions.
func positionFor(slot int) domain.Position {
	switch {
	case slot < 2:
		return domain.PositionGoalkeeper
	case slot < 5:
		return domain.PositionCentreBack
	case slot < 7:
		return domain.PositionFullBack
	case slot < 9:
		return domain.PositionDefensiveMid
	case slot < 11:
		return domain.PositionCentralMid
	case slot < 13:
		return domain.PositionAttackingMid
	case slot < 15:
		return domain.PositionWinger
	default:
		return domain.PositionStriker
	}
}

// generatePlayer creates one player with a coherent ability/attribute
// shape for the position.
func generatePlayer(r *rng.Rand, country string, pos domain.Position, abilityCap int) domain.Player {
	age := r.IntBetween(18, 33)
	current := r.IntBetween(60, 160)
	if abilityCap > 0 && current > abilityCap {
		current = abilityCap
	}
	potential := current + r.IntBetween(0, 40)
	if potential > domain.AbilityMax {
		potential = domain.AbilityMax
	}

	base := current / 10
	attr := func(bonus int) int {
		return domain.ClampAttribute(base + bonus + r.IntBetween(-2, 2))
	}

	attrs := domain.Attributes{
		Pace:            attr(0),
		Stamina:         attr(0),
		Strength:        attr(0),
		Technique:       attr(0),
		Passing:         attr(0),
		Finishing:       attr(-2),
		Defending:       attr(-2),
		Awareness:       attr(0),
		Composure:       attr(0),
		InjuryProneness: r.IntBetween(3, 14),
	}
	switch pos {
	case domain.PositionGoalkeeper:
		attrs.Awareness = attr(2)
		attrs.Composure = attr(2)
	case domain.PositionCentreBack, domain.PositionFullBack, domain.PositionDefensiveMid:
		attrs.Defending = attr(3)
		attrs.Strength = attr(2)
		attrs.Awareness = attr(1)
	case domain.PositionCentralMid, domain.PositionAttackingMid:
		attrs.Passing = attr(3)
		attrs.Technique = attr(2)
	case domain.PositionWinger:
		attrs.Pace = attr(3)
		attrs.Technique = attr(2)
	case domain.PositionStriker:
		attrs.Finishing = attr(4)
		attrs.Composure = attr(1)
	}

	return domain.Player{
		ID:               newID(r),
		Name:             fmt.Sprintf("%s %s", rng.Pick(r, firstNames), rng.Pick(r, lastNames)),
		Age:              age,
		Nationality:      country,
		Position:         pos,
		CurrentAbility:   domain.ClampAbility(current),
		PotentialAbility: domain.ClampAbility(potential),
		Attributes:       attrs,
		Profile:          rng.Pick(r, domain.DevelopmentProfiles),
		Personality:      rng.Pick(r, domain.Personalities),
	}
}

func clubName(r *rng.Rand) string {
	core := rng.Pick(r, clubCores)
	switch r.IntBetween(0, 2) {
	case 0:
		return fmt.Sprintf("%s %s", rng.Pick(r, clubPrefixes), core)
	case 1:
		return fmt.Sprintf("%s %s", core, rng.Pick(r, clubSuffixes))
	default:
		return fmt.Sprintf("%s %s %s", rng.Pick(r, clubPrefixes), core, rng.Pick(r, clubSuffixes))
	}
}

// YouthProspect rolls the weekly youth intake for the scout's current
// country. The second return is false when no prospect appears, either by
// chance or because the unsigned pool is full.
func YouthProspect(r *rng.Rand, state domain.GameState) (domain.Player, bool) {
	if len(state.UnsignedYouth) >= YouthCap {
		return domain.Player{}, false
	}
	if !r.Chance(YouthIntakeChance) {
		return domain.Player{}, false
	}

	country := state.Scout.CurrentCountry
	if country == "" {
		country = countries[0]
	}
	pos := rng.Pick(r, domain.Positions)
	p := generatePlayer(r, country, pos, 0)
	p.ClubID = ""
	p.Age = r.IntBetween(15, 18)
	p.CurrentAbility = domain.ClampAbility(r.IntBetween(40, 90))
	// Unsigned kids worth tracking: potential runs hot.
	p.PotentialAbility = domain.ClampAbility(p.CurrentAbility + r.IntBetween(30, 100))
	return p, true
}

// SeasonFixtures builds the double round-robin schedule for every league
// in the state for the given season, using the circle method. Fixture ids
// are derived from league, season and pairing so regeneration is
// deterministic without consuming randomness.
func SeasonFixtures(state domain.GameState, season int) []domain.Fixture {
	leagueIDs := sortedLeagueIDs(state)

	var fixtures []domain.Fixture
	for _, leagueID := range leagueIDs {
		league := state.Leagues[leagueID]
		clubIDs := make([]string, 0, len(league.Standings))
		for _, standing := range league.Standings {
			clubIDs = append(clubIDs, standing.ClubID)
		}
		if len(clubIDs) < 2 {
			continue
		}
		if len(clubIDs)%2 == 1 {
			clubIDs = append(clubIDs, "") // bye
		}

		n := len(clubIDs)
		rounds := n - 1
		half := n / 2
		rotation := append([]string(nil), clubIDs...)
		for round := 0; round < rounds; round++ {
			for i := 0; i < half; i++ {
				home, away := rotation[i], rotation[n-1-i]
				if home == "" || away == "" {
					continue
				}
				if round%2 == 1 {
					home, away = away, home
				}
				fixtures = append(fixtures,
					domain.Fixture{
						ID:       fmt.Sprintf("%s-s%d-w%d-%s-%s", leagueID, season, round+1, home, away),
						LeagueID: leagueID,
						HomeID:   home,
						AwayID:   away,
						Week:     round + 1,
						Season:   season,
					},
					domain.Fixture{
						ID:       fmt.Sprintf("%s-s%d-w%d-%s-%s", leagueID, season, round+1+rounds, away, home),
						LeagueID: leagueID,
						HomeID:   away,
						AwayID:   home,
						Week:     round + 1 + rounds,
						Season:   season,
					},
				)
			}
			// Circle method: fix the first club, rotate the rest.
			last := rotation[n-1]
			copy(rotation[2:], rotation[1:n-1])
			rotation[1] = last
		}
	}
	return fixtures
}

func sortedLeagueIDs(state domain.GameState) []string {
	ids := make([]string, 0, len(state.Leagues))
	for id := range state.Leagues {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
