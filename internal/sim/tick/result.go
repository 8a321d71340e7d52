package tick

import (
	"github.com/louisbranch/touchline/internal/sim/activity"
	"github.com/louisbranch/touchline/internal/sim/calendar"
	"github.com/louisbranch/touchline/internal/sim/development"
	"github.com/louisbranch/touchline/internal/sim/domain"
	"github.com/louisbranch/touchline/internal/sim/knowledge"
	"github.com/louisbranch/touchline/internal/sim/transfer"
)

// InjuryEvent is one player picking up a new injury this week.
type InjuryEvent struct {
	PlayerID string
	Injury   domain.Injury
}

// SuspensionEvent is one player earning new suspension weeks from this
// week's cards.
type SuspensionEvent struct {
	PlayerID   string
	Cards      []domain.Card
	AddedWeeks int
}

// SetbackEvent is a permanent attribute loss from a serious new injury.
type SetbackEvent struct {
	PlayerID string
	Changes  []development.AttributeChange
}

// Result is the pure change-set for one weekly tick. ComputeTick fills
// it from the input snapshot and the RNG stream; CommitTick folds it
// into a new snapshot without drawing any further randomness. A Result
// is never persisted.
type Result struct {
	Week   int
	Season int

	// SuspensionDecrements maps player id to the suspension weeks
	// remaining after the start-of-week decrement.
	SuspensionDecrements map[string]int

	ScheduleEffect calendar.Effect
	Schedule       domain.Schedule
	Outcomes       []activity.Outcome

	PlayedFixtures []domain.Fixture
	Suspensions    []SuspensionEvent

	Injuries []InjuryEvent
	// Recoveries lists players whose injury clears this week; the
	// committer recovers exactly these ids.
	Recoveries []string

	Development []development.Delta
	Setbacks    []SetbackEvent

	Transfers []transfer.Transfer
	Knowledge []knowledge.Delta

	Youth *domain.Player

	ScoutXP         int
	SkillXP         map[domain.SkillID]int
	ReputationDelta float64

	Messages []domain.Message

	// Rollover is nil except on the final week of a season.
	Rollover *SeasonSummary
}

// SeasonSummary captures the end-of-season bookkeeping computed during
// the final tick of a season.
type SeasonSummary struct {
	Season int
	// Champions maps league id to the champion club id, final-week
	// results included.
	Champions map[string]string
	// FinalStandings maps league id to its sorted final table.
	FinalStandings map[string][]domain.Standing

	TopScorerID    string
	TopScorerGoals int

	// Retirements lists players leaving the game, sorted by id.
	Retirements []string

	// NextFixtures is the full fixture list for the following season.
	NextFixtures []domain.Fixture
}
