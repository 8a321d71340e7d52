package domain

// InjuryType identifies one of the closed set of injury kinds.
type InjuryType int

// Closed set of injury types.
const (
	InjuryKnock InjuryType = iota
	InjuryMuscle
	InjuryFatigue
	InjuryLigament
	InjuryFracture
	InjuryConcussion
)

func (t InjuryType) String() string {
	switch t {
	case InjuryKnock:
		return "knock"
	case InjuryMuscle:
		return "muscle strain"
	case InjuryFatigue:
		return "fatigue injury"
	case InjuryLigament:
		return "ligament damage"
	case InjuryFracture:
		return "fracture"
	case InjuryConcussion:
		return "concussion"
	default:
		return "unknown injury"
	}
}

// RecoveryRange returns the inclusive [min, max] recovery weeks for the
// injury type.
func (t InjuryType) RecoveryRange() (int, int) {
	switch t {
	case InjuryKnock:
		return 1, 2
	case InjuryMuscle:
		return 2, 6
	case InjuryFatigue:
		return 1, 3
	case InjuryLigament:
		return 6, 16
	case InjuryFracture:
		return 8, 20
	case InjuryConcussion:
		return 2, 8
	default:
		return 1, 2
	}
}

// Severity grades an injury by its total recovery length.
type Severity int

// Severity bands derived from recovery weeks.
const (
	SeverityMinor    Severity = iota // <= 2 weeks
	SeverityModerate                 // <= 5 weeks
	SeveritySerious                  // <= 10 weeks
	SeverityCareer                   // longer
)

func (s Severity) String() string {
	switch s {
	case SeverityMinor:
		return "minor"
	case SeverityModerate:
		return "moderate"
	case SeveritySerious:
		return "serious"
	case SeverityCareer:
		return "career-threatening"
	default:
		return "unknown"
	}
}

// SeverityForWeeks derives the severity band from a total recovery-week
// count.
func SeverityForWeeks(weeks int) Severity {
	switch {
	case weeks <= 2:
		return SeverityMinor
	case weeks <= 5:
		return SeverityModerate
	case weeks <= 10:
		return SeveritySerious
	default:
		return SeverityCareer
	}
}

// Injury is a single diagnosed injury.
type Injury struct {
	ID            string
	Type          InjuryType
	Severity      Severity
	RecoveryWeeks int
	WeeksLeft     int
}

// Proneness accumulation constants.
const (
	PronenessPerInjury = 0.03
	PronenessCap       = 0.5
	ReinjuryWindow     = 4
)

// InjuryHistory accumulates a player's long-term injury risk.
type InjuryHistory struct {
	Count               int
	Proneness           float64
	ReinjuryWeeksLeft   int
	TotalWeeksRecovered int
}

// Record returns the history after one more injury, with proneness
// accrued and capped.
func (h InjuryHistory) Record(recoveryWeeks int) InjuryHistory {
	h.Count++
	h.Proneness += PronenessPerInjury
	if h.Proneness > PronenessCap {
		h.Proneness = PronenessCap
	}
	h.TotalWeeksRecovered += recoveryWeeks
	return h
}

// OpenReinjuryWindow returns the history with a fresh post-recovery
// reinjury window.
func (h InjuryHistory) OpenReinjuryWindow() InjuryHistory {
	h.ReinjuryWeeksLeft = ReinjuryWindow
	return h
}

// InReinjuryWindow reports whether the elevated-risk window is active.
func (h InjuryHistory) InReinjuryWindow() bool {
	return h.ReinjuryWeeksLeft > 0
}
