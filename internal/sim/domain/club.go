package domain

// TacticalStyle declares how a club sets up.
type TacticalStyle int

// Closed set of tactical styles.
const (
	StyleBalanced TacticalStyle = iota
	StyleAttacking
	StyleDefensive
	StyleCounter
	StylePossession
)

// TacticalStyles lists every style in a fixed order.
var TacticalStyles = []TacticalStyle{
	StyleBalanced,
	StyleAttacking,
	StyleDefensive,
	StyleCounter,
	StylePossession,
}

func (s TacticalStyle) String() string {
	switch s {
	case StyleBalanced:
		return "balanced"
	case StyleAttacking:
		return "attacking"
	case StyleDefensive:
		return "defensive"
	case StyleCounter:
		return "counter"
	case StylePossession:
		return "possession"
	default:
		return "unknown"
	}
}

// Club is a football club.
type Club struct {
	ID         string
	Name       string
	LeagueID   string
	Country    string
	Reputation float64
	Style      TacticalStyle
	Budget     int64
}

// HighReputation reports whether the club's environment boosts player
// development.
func (c Club) HighReputation() bool {
	return c.Reputation >= 75
}

// Standing is one club's row in a league table.
type Standing struct {
	ClubID       string
	Played       int
	Won          int
	Drawn        int
	Lost         int
	GoalsFor     int
	GoalsAgainst int
	Points       int
}

// League groups clubs into a competition.
type League struct {
	ID        string
	Name      string
	Country   string
	Tier      int
	Hidden    bool
	Standings []Standing
}
