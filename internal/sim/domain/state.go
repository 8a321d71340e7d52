package domain

// WeeksPerSeason is the length of a season; the final tick of a season
// triggers the rollover.
const WeeksPerSeason = 38

// GameState is the aggregate root: one immutable snapshot of the world.
// Subsystems read it and return change-sets; only the tick commit builds a
// new snapshot. Foreign keys may dangle (a fixture whose club was removed,
// a record for a retired player); consumers skip such references instead
// of failing.
type GameState struct {
	Players       map[string]Player
	Clubs         map[string]Club
	Leagues       map[string]League
	Fixtures      []Fixture
	Scout         Scout
	Discipline    map[string]DisciplinaryRecord
	Knowledge     map[string]RegionalKnowledge
	UnsignedYouth []Player
	Inbox         []Message
	Week          int
	Season        int
	Schedule      Schedule
}

// Clone returns a deep copy of the snapshot. Commit works on a clone so
// the input state is never aliased by the output.
func (s GameState) Clone() GameState {
	out := s

	out.Players = make(map[string]Player, len(s.Players))
	for id, p := range s.Players {
		out.Players[id] = p.clone()
	}
	out.Clubs = make(map[string]Club, len(s.Clubs))
	for id, c := range s.Clubs {
		out.Clubs[id] = c
	}
	out.Leagues = make(map[string]League, len(s.Leagues))
	for id, l := range s.Leagues {
		l.Standings = append([]Standing(nil), l.Standings...)
		out.Leagues[id] = l
	}
	out.Fixtures = make([]Fixture, len(s.Fixtures))
	for i, f := range s.Fixtures {
		out.Fixtures[i] = f.clone()
	}
	out.Discipline = make(map[string]DisciplinaryRecord, len(s.Discipline))
	for id, d := range s.Discipline {
		d.History = append([]Card(nil), d.History...)
		out.Discipline[id] = d
	}
	out.Knowledge = make(map[string]RegionalKnowledge, len(s.Knowledge))
	for country, k := range s.Knowledge {
		k.Insights = append([]string(nil), k.Insights...)
		k.Contacts = append([]string(nil), k.Contacts...)
		k.HiddenLeagues = append([]string(nil), k.HiddenLeagues...)
		k.InsightCrossed = append([]float64(nil), k.InsightCrossed...)
		k.ContactCrossed = append([]float64(nil), k.ContactCrossed...)
		out.Knowledge[country] = k
	}
	out.UnsignedYouth = make([]Player, len(s.UnsignedYouth))
	for i, p := range s.UnsignedYouth {
		out.UnsignedYouth[i] = p.clone()
	}
	out.Inbox = append([]Message(nil), s.Inbox...)
	out.Schedule = s.Schedule.clone()
	return out
}

func (p Player) clone() Player {
	if p.CurrentInjury != nil {
		injury := *p.CurrentInjury
		p.CurrentInjury = &injury
	}
	return p
}

func (f Fixture) clone() Fixture {
	if f.Result == nil {
		return f
	}
	result := *f.Result
	result.Scorers = append([]Goal(nil), f.Result.Scorers...)
	result.Cards = append([]CardEvent(nil), f.Result.Cards...)
	if f.Result.Ratings != nil {
		result.Ratings = make(map[string]float64, len(f.Result.Ratings))
		for id, v := range f.Result.Ratings {
			result.Ratings[id] = v
		}
	}
	f.Result = &result
	return f
}

func (s Schedule) clone() Schedule {
	for i, slot := range s.Slots {
		if slot != nil {
			activity := *slot
			s.Slots[i] = &activity
		}
	}
	return s
}
