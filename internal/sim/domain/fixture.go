package domain

// Weather is the match-day condition drawn for a fixture.
type Weather int

// Closed set of weather conditions.
const (
	WeatherClear Weather = iota
	WeatherCloudy
	WeatherRain
	WeatherWind
	WeatherFog
	WeatherSnow
)

func (w Weather) String() string {
	switch w {
	case WeatherClear:
		return "clear"
	case WeatherCloudy:
		return "cloudy"
	case WeatherRain:
		return "rain"
	case WeatherWind:
		return "windy"
	case WeatherFog:
		return "fog"
	case WeatherSnow:
		return "snow"
	default:
		return "unknown"
	}
}

// AbilityFactor returns the multiplicative penalty the weather applies to
// both sides' aggregate ability.
func (w Weather) AbilityFactor() float64 {
	switch w {
	case WeatherClear:
		return 1.0
	case WeatherCloudy:
		return 0.98
	case WeatherRain:
		return 0.92
	case WeatherWind:
		return 0.90
	case WeatherFog:
		return 0.85
	case WeatherSnow:
		return 0.80
	default:
		return 1.0
	}
}

// Goal records one scored goal.
type Goal struct {
	PlayerID string
	ClubID   string
	Minute   int
}

// CardEvent records a card shown during a fixture.
type CardEvent struct {
	PlayerID string
	ClubID   string
	Card     Card
}

// FixtureResult holds everything a simulated match produced.
type FixtureResult struct {
	HomeGoals  int
	AwayGoals  int
	Weather    Weather
	Attendance int
	Scorers    []Goal
	Ratings    map[string]float64
	Cards      []CardEvent
}

// Fixture is one scheduled (and possibly played) match.
type Fixture struct {
	ID       string
	LeagueID string
	HomeID   string
	AwayID   string
	Week     int
	Season   int
	Played   bool
	Result   *FixtureResult
}
