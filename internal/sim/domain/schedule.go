package domain

// ActivityType identifies one of the closed set of weekly activities.
type ActivityType int

// Closed set of scout activities.
const (
	ActivityMatchScouting ActivityType = iota
	ActivityYouthTournament
	ActivityRegionalSurvey
	ActivityNetworking
	ActivityTraining
	ActivityTravel
	ActivityRest
)

// ActivityTypes lists every activity in a fixed order.
var ActivityTypes = []ActivityType{
	ActivityMatchScouting,
	ActivityYouthTournament,
	ActivityRegionalSurvey,
	ActivityNetworking,
	ActivityTraining,
	ActivityTravel,
	ActivityRest,
}

func (a ActivityType) String() string {
	switch a {
	case ActivityMatchScouting:
		return "match scouting"
	case ActivityYouthTournament:
		return "youth tournament"
	case ActivityRegionalSurvey:
		return "regional survey"
	case ActivityNetworking:
		return "networking"
	case ActivityTraining:
		return "training"
	case ActivityTravel:
		return "travel"
	case ActivityRest:
		return "rest"
	default:
		return "unknown"
	}
}

// SlotCost returns how many contiguous day slots the activity occupies.
func (a ActivityType) SlotCost() int {
	switch a {
	case ActivityYouthTournament, ActivityRegionalSurvey:
		return 2
	default:
		return 1
	}
}

// FatigueCost returns the base fatigue the activity adds, before the
// endurance discount. Rest is negative: it recovers fatigue.
func (a ActivityType) FatigueCost() float64 {
	switch a {
	case ActivityMatchScouting:
		return 8
	case ActivityYouthTournament:
		return 14
	case ActivityRegionalSurvey:
		return 12
	case ActivityNetworking:
		return 6
	case ActivityTraining:
		return 5
	case ActivityTravel:
		return 10
	case ActivityRest:
		return -15
	default:
		return 0
	}
}

// XPYield returns the base experience the activity grants when processed.
func (a ActivityType) XPYield() int {
	switch a {
	case ActivityMatchScouting:
		return 12
	case ActivityYouthTournament:
		return 18
	case ActivityRegionalSurvey:
		return 14
	case ActivityNetworking:
		return 8
	case ActivityTraining:
		return 10
	case ActivityTravel:
		return 2
	case ActivityRest:
		return 0
	default:
		return 0
	}
}

// Skill returns the scout skill that shifts the activity's quality roll.
func (a ActivityType) Skill() SkillID {
	switch a {
	case ActivityMatchScouting:
		return SkillJudgingAbility
	case ActivityYouthTournament:
		return SkillJudgingPotential
	case ActivityRegionalSurvey:
		return SkillAdaptability
	case ActivityNetworking:
		return SkillNetworking
	case ActivityTraining:
		return SkillEndurance
	case ActivityTravel:
		return SkillAdaptability
	case ActivityRest:
		return SkillEndurance
	default:
		return SkillJudgingAbility
	}
}

// Activity is one planned entry in the weekly schedule. Target names a
// country, club or player depending on the activity type.
type Activity struct {
	Type        ActivityType
	Target      string
	Description string
}

// Equal reports logical equality. Reloaded schedules are reconstructed as
// distinct instances, so removal matches by value rather than identity.
func (a Activity) Equal(other Activity) bool {
	return a.Type == other.Type && a.Target == other.Target && a.Description == other.Description
}

// SlotsPerWeek is the number of day slots in one weekly schedule.
const SlotsPerWeek = 7

// Schedule is the scout's plan for one week: seven ordered slots, each
// empty or holding exactly one activity. Multi-slot activities repeat
// their value across the slots they occupy.
type Schedule struct {
	Slots     [SlotsPerWeek]*Activity
	Finalized bool
	Completed bool
}
