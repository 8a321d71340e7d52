package domain

// Position identifies where on the pitch a player plays.
type Position int

// Closed set of playing positions.
const (
	PositionGoalkeeper Position = iota
	PositionCentreBack
	PositionFullBack
	PositionDefensiveMid
	PositionCentralMid
	PositionAttackingMid
	PositionWinger
	PositionStriker
)

// Positions lists every position in a fixed order.
var Positions = []Position{
	PositionGoalkeeper,
	PositionCentreBack,
	PositionFullBack,
	PositionDefensiveMid,
	PositionCentralMid,
	PositionAttackingMid,
	PositionWinger,
	PositionStriker,
}

func (p Position) String() string {
	switch p {
	case PositionGoalkeeper:
		return "GK"
	case PositionCentreBack:
		return "CB"
	case PositionFullBack:
		return "FB"
	case PositionDefensiveMid:
		return "DM"
	case PositionCentralMid:
		return "CM"
	case PositionAttackingMid:
		return "AM"
	case PositionWinger:
		return "WG"
	case PositionStriker:
		return "ST"
	default:
		return "Unknown"
	}
}

// Defensive reports whether the position carries defensive duties for card
// probability scaling.
func (p Position) Defensive() bool {
	switch p {
	case PositionCentreBack, PositionFullBack, PositionDefensiveMid:
		return true
	default:
		return false
	}
}

// AttributeID identifies one of the closed set of player attributes.
type AttributeID int

// Closed set of player attributes, each bounded to [1, 20].
const (
	AttrPace AttributeID = iota
	AttrStamina
	AttrStrength
	AttrTechnique
	AttrPassing
	AttrFinishing
	AttrDefending
	AttrAwareness
	AttrComposure
	AttrInjuryProneness
)

// AttributeIDs lists every attribute in a fixed order. Random attribute
// selection iterates this slice so draws are reproducible.
var AttributeIDs = []AttributeID{
	AttrPace,
	AttrStamina,
	AttrStrength,
	AttrTechnique,
	AttrPassing,
	AttrFinishing,
	AttrDefending,
	AttrAwareness,
	AttrComposure,
	AttrInjuryProneness,
}

// PhysicalAttributeIDs lists the attributes eligible for injury setback
// drops.
var PhysicalAttributeIDs = []AttributeID{AttrPace, AttrStamina, AttrStrength}

func (a AttributeID) String() string {
	switch a {
	case AttrPace:
		return "pace"
	case AttrStamina:
		return "stamina"
	case AttrStrength:
		return "strength"
	case AttrTechnique:
		return "technique"
	case AttrPassing:
		return "passing"
	case AttrFinishing:
		return "finishing"
	case AttrDefending:
		return "defending"
	case AttrAwareness:
		return "awareness"
	case AttrComposure:
		return "composure"
	case AttrInjuryProneness:
		return "injury proneness"
	default:
		return "unknown"
	}
}

// Attributes holds the closed set of 1-20 bounded player attributes.
type Attributes struct {
	Pace            int
	Stamina         int
	Strength        int
	Technique       int
	Passing         int
	Finishing       int
	Defending       int
	Awareness       int
	Composure       int
	InjuryProneness int
}

// Get returns the value of the identified attribute.
func (a Attributes) Get(id AttributeID) int {
	switch id {
	case AttrPace:
		return a.Pace
	case AttrStamina:
		return a.Stamina
	case AttrStrength:
		return a.Strength
	case AttrTechnique:
		return a.Technique
	case AttrPassing:
		return a.Passing
	case AttrFinishing:
		return a.Finishing
	case AttrDefending:
		return a.Defending
	case AttrAwareness:
		return a.Awareness
	case AttrComposure:
		return a.Composure
	case AttrInjuryProneness:
		return a.InjuryProneness
	default:
		return AttributeMin
	}
}

// Set returns a copy of a with the identified attribute clamped into
// [1, 20] and replaced.
func (a Attributes) Set(id AttributeID, value int) Attributes {
	value = ClampAttribute(value)
	switch id {
	case AttrPace:
		a.Pace = value
	case AttrStamina:
		a.Stamina = value
	case AttrStrength:
		a.Strength = value
	case AttrTechnique:
		a.Technique = value
	case AttrPassing:
		a.Passing = value
	case AttrFinishing:
		a.Finishing = value
	case AttrDefending:
		a.Defending = value
	case AttrAwareness:
		a.Awareness = value
	case AttrComposure:
		a.Composure = value
	case AttrInjuryProneness:
		a.InjuryProneness = value
	}
	return a
}

// DevelopmentProfile parametrizes a player's age-based growth and decline
// curve.
type DevelopmentProfile int

// Closed set of development profiles.
const (
	ProfileEarlyBloomer DevelopmentProfile = iota
	ProfileSteady
	ProfileLateBloomer
	ProfileVolatile
)

// DevelopmentProfiles lists every profile in a fixed order.
var DevelopmentProfiles = []DevelopmentProfile{
	ProfileEarlyBloomer,
	ProfileSteady,
	ProfileLateBloomer,
	ProfileVolatile,
}

func (p DevelopmentProfile) String() string {
	switch p {
	case ProfileEarlyBloomer:
		return "early bloomer"
	case ProfileSteady:
		return "steady"
	case ProfileLateBloomer:
		return "late bloomer"
	case ProfileVolatile:
		return "volatile"
	default:
		return "unknown"
	}
}

// Personality influences disciplinary behavior.
type Personality int

// Closed set of personalities.
const (
	PersonalityProfessional Personality = iota
	PersonalityTemperamental
	PersonalityAmbitious
	PersonalityLoyal
)

// Personalities lists every personality in a fixed order.
var Personalities = []Personality{
	PersonalityProfessional,
	PersonalityTemperamental,
	PersonalityAmbitious,
	PersonalityLoyal,
}

// FormTrend describes the direction of a player's recent form swings.
type FormTrend int

// Form trend states used by the momentum lock.
const (
	TrendNone FormTrend = iota
	TrendRising
	TrendFalling
)

// Momentum tracks a player's form streak. Entering a strong streak locks
// the trend for a few weeks so a single bad result does not erase it; two
// consecutive opposite results break the lock early.
type Momentum struct {
	Trend       FormTrend
	LockWeeks   int
	CounterRuns int
}

// Player is a simulated footballer.
type Player struct {
	ID          string
	Name        string
	Age         int
	Nationality string
	ClubID      string
	Position    Position

	CurrentAbility   int
	PotentialAbility int
	Attributes       Attributes
	Profile          DevelopmentProfile
	Personality      Personality

	Form     int
	Momentum Momentum

	Injured       bool
	InjuryWeeks   int
	CurrentInjury *Injury
	InjuryHistory InjuryHistory

	SeasonGoals       int
	SeasonAppearances int
}

// Available reports whether the player can take part in a fixture given
// the suspension weeks effective for the current week.
func (p Player) Available(suspensionWeeks int) bool {
	return !p.Injured && suspensionWeeks <= 0
}

// AttributeCeiling returns the per-attribute ceiling derived from
// potential ability. Routine development never pushes an attribute past
// it; breakthroughs may.
func (p Player) AttributeCeiling() int {
	return ClampAttribute((p.PotentialAbility + 5) / 10)
}

// LongTermInjured reports whether the player is ruled out for longer than
// a serious-injury threshold, which suspends development.
func (p Player) LongTermInjured() bool {
	return p.Injured && p.InjuryWeeks > 4
}
