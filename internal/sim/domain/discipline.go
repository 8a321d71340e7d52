package domain

// CardColor distinguishes bookings from dismissals.
type CardColor int

// Card colors.
const (
	CardYellow CardColor = iota
	CardRed
)

func (c CardColor) String() string {
	switch c {
	case CardYellow:
		return "yellow"
	case CardRed:
		return "red"
	default:
		return "unknown"
	}
}

// CardReason identifies why a card was shown.
type CardReason int

// Closed set of card reasons. Violent conduct carries the longest ban.
const (
	ReasonRecklessTackle CardReason = iota
	ReasonDissent
	ReasonTimeWasting
	ReasonHandball
	ReasonSecondYellow
	ReasonLastMan
	ReasonViolentConduct
)

func (r CardReason) String() string {
	switch r {
	case ReasonRecklessTackle:
		return "reckless tackle"
	case ReasonDissent:
		return "dissent"
	case ReasonTimeWasting:
		return "time wasting"
	case ReasonHandball:
		return "deliberate handball"
	case ReasonSecondYellow:
		return "second yellow"
	case ReasonLastMan:
		return "denying a goalscoring opportunity"
	case ReasonViolentConduct:
		return "violent conduct"
	default:
		return "unknown"
	}
}

// BanMatches returns the suspension length earned by a red card with this
// reason.
func (r CardReason) BanMatches() int {
	if r == ReasonViolentConduct {
		return 3
	}
	return 1
}

// Card records one booking or dismissal.
type Card struct {
	Color  CardColor
	Reason CardReason
	Week   int
	Minute int
}

// Yellow-card accumulation thresholds.
const (
	YellowBanThreshold       = 5  // 1-match ban
	YellowSecondBanThreshold = 10 // 2 further matches
)

// DisciplinaryRecord tracks one player's cards and suspension for the
// current season. Records are created lazily on the first card.
type DisciplinaryRecord struct {
	PlayerID        string
	Yellows         int
	Reds            int
	History         []Card
	SuspensionWeeks int
}

// ResetForSeason clears seasonal counts while keeping an active
// suspension. The caller drops the record entirely when no suspension
// remains.
func (d DisciplinaryRecord) ResetForSeason() DisciplinaryRecord {
	return DisciplinaryRecord{
		PlayerID:        d.PlayerID,
		SuspensionWeeks: d.SuspensionWeeks,
	}
}
