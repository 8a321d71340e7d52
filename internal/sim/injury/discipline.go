package injury

import (
	"github.com/louisbranch/touchline/internal/sim/domain"
	"github.com/louisbranch/touchline/internal/sim/rng"
)

// Card probability model constants.
const (
	BaseYellowChance = 0.14
	BaseRedChance    = 0.002

	TemperamentalYellowFactor = 1.8
	TemperamentalRedFactor    = 2.0

	DefensiveYellowFactor = 1.3
	DefensiveRedFactor    = 1.5

	YellowChanceCap = 0.85
	RedChanceCap    = 0.15
)

// YellowChance returns the per-match booking probability for a player in a
// simulated fixture.
func YellowChance(p domain.Player) float64 {
	chance := BaseYellowChance
	if p.Personality == domain.PersonalityTemperamental {
		chance *= TemperamentalYellowFactor
	}
	chance *= awarenessFactor(p.Attributes.Awareness)
	if p.Position.Defensive() {
		chance *= DefensiveYellowFactor
	}
	if chance > YellowChanceCap {
		chance = YellowChanceCap
	}
	return chance
}

// RedChance returns the per-match straight-red probability.
func RedChance(p domain.Player) float64 {
	chance := BaseRedChance
	if p.Personality == domain.PersonalityTemperamental {
		chance *= TemperamentalRedFactor
	}
	chance *= awarenessFactor(p.Attributes.Awareness)
	if p.Position.Defensive() {
		chance *= DefensiveRedFactor
	}
	if chance > RedChanceCap {
		chance = RedChanceCap
	}
	return chance
}

// awarenessFactor raises card risk for players with low defensive
// awareness; 10 and above is neutral.
func awarenessFactor(awareness int) float64 {
	awareness = domain.ClampAttribute(awareness)
	if awareness >= 10 {
		return 1.0
	}
	return 1 + 0.04*float64(10-awareness)
}

// yellowReasons weights the bookable offences.
var yellowReasons = []rng.Weighted[domain.CardReason]{
	{Value: domain.ReasonRecklessTackle, Weight: 55},
	{Value: domain.ReasonDissent, Weight: 20},
	{Value: domain.ReasonTimeWasting, Weight: 15},
	{Value: domain.ReasonHandball, Weight: 10},
}

// redReasons weights straight-red offences. Violent conduct carries the
// 3-match ban.
var redReasons = []rng.Weighted[domain.CardReason]{
	{Value: domain.ReasonLastMan, Weight: 55},
	{Value: domain.ReasonViolentConduct, Weight: 30},
	{Value: domain.ReasonRecklessTackle, Weight: 15},
}

// RollMatchCards draws the cards one player picks up in one simulated
// match. A second yellow in the same match converts to a red with the
// secondYellow reason.
func RollMatchCards(r *rng.Rand, p domain.Player, week int) []domain.Card {
	var cards []domain.Card

	if r.Chance(YellowChance(p)) {
		cards = append(cards, domain.Card{
			Color:  domain.CardYellow,
			Reason: rng.PickWeighted(r, yellowReasons),
			Week:   week,
			Minute: r.IntBetween(1, 90),
		})
		// A booked player pushing his luck: an independent second draw at
		// the same odds converts to a dismissal.
		if r.Chance(YellowChance(p) * 0.5) {
			cards = append(cards, domain.Card{
				Color:  domain.CardRed,
				Reason: domain.ReasonSecondYellow,
				Week:   week,
				Minute: r.IntBetween(cards[0].Minute, 90),
			})
			return cards
		}
	}

	if r.Chance(RedChance(p)) {
		cards = append(cards, domain.Card{
			Color:  domain.CardRed,
			Reason: rng.PickWeighted(r, redReasons),
			Week:   week,
			Minute: r.IntBetween(1, 90),
		})
	}
	return cards
}

// SuspensionForCards returns the additional suspension weeks earned by a
// record that just absorbed the given cards. Yellow accumulation bans
// stack additively on top of red-card bans.
func SuspensionForCards(before domain.DisciplinaryRecord, cards []domain.Card) int {
	weeks := 0
	yellows := before.Yellows
	for _, card := range cards {
		switch card.Color {
		case domain.CardYellow:
			yellows++
			if yellows == domain.YellowBanThreshold {
				weeks++
			}
			if yellows == domain.YellowSecondBanThreshold {
				weeks += 2
			}
		case domain.CardRed:
			weeks += card.Reason.BanMatches()
		}
	}
	return weeks
}
