// Package narrative holds the flavour-text banks for activity outcomes.
// Content here is pure data: the tick only selects lines, never interprets
// them.
package narrative

import (
	"github.com/louisbranch/touchline/internal/sim/domain"
	"github.com/louisbranch/touchline/internal/sim/rng"
)

// tiers indexes the banks: 0 poor .. 4 exceptional.
const tiers = 5

var defaultBank = [tiers][]string{
	{
		"A week to forget. Little of what you saw will make it into a report.",
		"Rain, delays and closed doors. You came away with almost nothing.",
	},
	{
		"A routine week. A few names noted, nothing that demands a second look.",
		"Solid if unspectacular work; the notebook gained a page or two.",
	},
	{
		"A productive week. Your notes are full and a couple of leads look live.",
		"Good viewing conditions and better company; worthwhile throughout.",
	},
	{
		"An excellent week. One observation alone justified the trip.",
		"Everything clicked; your reports this week carry real weight.",
	},
	{
		"A week you will talk about for years. Lightning in a bottle.",
		"Career-defining work. Whatever you saw, nobody else has seen it yet.",
	},
}

var banks = map[domain.ActivityType][tiers][]string{
	domain.ActivityMatchScouting: {
		{
			"A dire match on a waterlogged pitch. Neither side showed anything.",
			"You left at half time. Sometimes the fixture list lies to you.",
		},
		{
			"A watchable game with a handful of honest performances.",
			"Ninety minutes, three names underlined, none circled.",
		},
		{
			"A lively match; two players kept dragging your eye back.",
			"Good tempo, good angles from your seat, solid notes.",
		},
		{
			"One midfielder ran the game from start to finish. You have a name.",
			"The kind of match that reminds you why you do this job.",
		},
		{
			"You may have just watched a future international nobody has heard of.",
			"The stand was empty and the performance was priceless.",
		},
	},
	domain.ActivityYouthTournament: {
		{
			"A disorganized tournament; half the listed sides never arrived.",
			"Too many games on too few pitches. You saw fragments of everything.",
		},
		{
			"A normal youth weekend: raw talent, rawer decision-making.",
			"A few bright sparks among the usual chaos.",
		},
		{
			"Two academy sides stood out; their coaches knew what they had.",
			"Plenty of notes on plenty of kids. The filtering starts now.",
		},
		{
			"A 16-year-old did things that made the touchline go quiet.",
			"You were not the only scout scribbling, but you were the first.",
		},
		{
			"A generational afternoon. You watched the tape back twice on the bus.",
			"One boy, one half, one decision: follow him anywhere.",
		},
	},
	domain.ActivityNetworking: {
		{
			"Rounds were bought and nothing was learned.",
			"Your contact cancelled twice, then stopped answering.",
		},
		{
			"Pleasant conversations, thin information.",
			"A few rumours worth cross-checking, nothing more.",
		},
		{
			"A useful evening; one name came up three separate times.",
			"An agent talked more than he meant to.",
		},
		{
			"A club insider walked you through their entire academy intake.",
			"Exactly the introduction you had been angling for all season.",
		},
		{
			"A sporting director slid a shortlist across the table. Theirs.",
			"One handshake tonight will matter for a decade.",
		},
	},
}

// Line picks one narrative line for the activity and tier. Activities
// without a dedicated bank fall back to the default bank; tier indices are
// clamped into range.
func Line(r *rng.Rand, activity domain.ActivityType, tier int) string {
	if tier < 0 {
		tier = 0
	}
	if tier >= tiers {
		tier = tiers - 1
	}
	bank, ok := banks[activity]
	if !ok || len(bank[tier]) == 0 {
		return rng.Pick(r, defaultBank[tier])
	}
	return rng.Pick(r, bank[tier])
}
