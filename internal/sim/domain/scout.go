package domain

// SkillID identifies one of the scout's closed set of skills.
type SkillID int

// Closed set of scout skills, each bounded to [1, 20].
const (
	SkillJudgingAbility SkillID = iota
	SkillJudgingPotential
	SkillNetworking
	SkillNegotiation
	SkillAdaptability
	SkillEndurance
)

// SkillIDs lists every skill in a fixed order.
var SkillIDs = []SkillID{
	SkillJudgingAbility,
	SkillJudgingPotential,
	SkillNetworking,
	SkillNegotiation,
	SkillAdaptability,
	SkillEndurance,
}

func (s SkillID) String() string {
	switch s {
	case SkillJudgingAbility:
		return "judging ability"
	case SkillJudgingPotential:
		return "judging potential"
	case SkillNetworking:
		return "networking"
	case SkillNegotiation:
		return "negotiation"
	case SkillAdaptability:
		return "adaptability"
	case SkillEndurance:
		return "endurance"
	default:
		return "unknown"
	}
}

// Skills holds the scout's closed skill set.
type Skills struct {
	JudgingAbility   int
	JudgingPotential int
	Networking       int
	Negotiation      int
	Adaptability     int
	Endurance        int
}

// Get returns the value of the identified skill.
func (s Skills) Get(id SkillID) int {
	switch id {
	case SkillJudgingAbility:
		return s.JudgingAbility
	case SkillJudgingPotential:
		return s.JudgingPotential
	case SkillNetworking:
		return s.Networking
	case SkillNegotiation:
		return s.Negotiation
	case SkillAdaptability:
		return s.Adaptability
	case SkillEndurance:
		return s.Endurance
	default:
		return 10
	}
}

// Set returns a copy of s with the identified skill clamped into [1, 20]
// and replaced.
func (s Skills) Set(id SkillID, value int) Skills {
	return s.set(id, ClampAttribute(value))
}

// set writes without clamping, for progress counters.
func (s Skills) set(id SkillID, value int) Skills {
	switch id {
	case SkillJudgingAbility:
		s.JudgingAbility = value
	case SkillJudgingPotential:
		s.JudgingPotential = value
	case SkillNetworking:
		s.Networking = value
	case SkillNegotiation:
		s.Negotiation = value
	case SkillAdaptability:
		s.Adaptability = value
	case SkillEndurance:
		s.Endurance = value
	}
	return s
}

// Focus is the scout's declared specialization.
type Focus int

// Closed set of focuses.
const (
	FocusFirstTeam Focus = iota
	FocusYouth
	FocusRegional
)

func (f Focus) String() string {
	switch f {
	case FocusFirstTeam:
		return "first team"
	case FocusYouth:
		return "youth"
	case FocusRegional:
		return "regional"
	default:
		return "unknown"
	}
}

// Scout is the player character.
type Scout struct {
	Name    string
	Skills  Skills
	Fatigue float64
	// Progress holds experience accrued toward the next point of each
	// skill; a skill gains a point whenever its progress reaches
	// SkillXPPerPoint.
	Progress       Skills
	Reputation     float64
	XP             int
	CurrentCountry string
	Focus          Focus
	EquipmentBonus float64
}

// SkillXPPerPoint is the accrued skill experience that converts into one
// skill point.
const SkillXPPerPoint = 100

// ApplySkillXP folds earned skill experience into the scout's progress
// counters, converting every full SkillXPPerPoint into a skill point.
// Points past the skill cap are discarded.
func (s Scout) ApplySkillXP(earned map[SkillID]int) Scout {
	for _, id := range SkillIDs {
		xp := earned[id]
		if xp <= 0 {
			continue
		}
		total := s.Progress.Get(id) + xp
		points := total / SkillXPPerPoint
		s.Progress = s.Progress.set(id, total%SkillXPPerPoint)
		if points > 0 {
			s.Skills = s.Skills.Set(id, s.Skills.Get(id)+points)
		}
	}
	return s
}

// HighFatigueThreshold is the fatigue level beyond which schedule XP is
// reduced.
const HighFatigueThreshold = 70.0
