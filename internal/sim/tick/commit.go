package tick

import (
	"github.com/louisbranch/touchline/internal/sim/domain"
	"github.com/louisbranch/touchline/internal/sim/knowledge"
)

// Form thresholds from a single match rating.
const (
	formRaiseRating = 7.5
	formDropRating  = 5.5
	momentumLock    = 3
	momentumEnter   = 2
)

// CommitTick folds a computed result into a fresh snapshot. It draws no
// randomness, clamps every numeric write at the write site, and skips
// deltas that reference entities no longer present. The input state is
// never mutated.
func CommitTick(state domain.GameState, result Result) domain.GameState {
	next := state.Clone()

	// Suspensions served this week.
	for id, weeks := range result.SuspensionDecrements {
		rec, ok := next.Discipline[id]
		if !ok {
			continue
		}
		if weeks < 0 {
			weeks = 0
		}
		rec.SuspensionWeeks = weeks
		next.Discipline[id] = rec
	}

	// Momentum locks age one week before this week's results touch them.
	for id, p := range next.Players {
		if p.Momentum.LockWeeks > 0 {
			p.Momentum.LockWeeks--
			next.Players[id] = p
		}
	}

	// Schedule effects on the scout.
	next.Schedule = result.Schedule
	next.Scout.Fatigue = domain.ClampPercent(next.Scout.Fatigue + result.ScheduleEffect.FatigueDelta)
	next.Scout.XP += result.ScoutXP
	next.Scout = next.Scout.ApplySkillXP(result.SkillXP)
	next.Scout.Reputation = domain.ClampPercent(next.Scout.Reputation + result.ReputationDelta)
	for _, act := range result.ScheduleEffect.Activities {
		if act.Type != domain.ActivityTravel || act.Target == "" {
			continue
		}
		if _, ok := next.Knowledge[act.Target]; ok {
			next.Scout.CurrentCountry = act.Target
		}
	}

	// Fixture results: record, fold into the table, update stats and form.
	for _, played := range result.PlayedFixtures {
		next = commitFixture(next, played)
	}

	// Cards and fresh suspensions.
	for _, ev := range result.Suspensions {
		rec, ok := next.Discipline[ev.PlayerID]
		if !ok {
			rec = domain.DisciplinaryRecord{PlayerID: ev.PlayerID}
		}
		for _, card := range ev.Cards {
			rec.History = append(rec.History, card)
			if card.Color == domain.CardYellow {
				rec.Yellows++
			} else {
				rec.Reds++
			}
		}
		rec.SuspensionWeeks += ev.AddedWeeks
		next.Discipline[ev.PlayerID] = rec
	}

	// Injury countdown and recoveries, then this week's new injuries.
	// Recovery comes from the change-set; the countdown alone never
	// clears an injury.
	recovered := make(map[string]bool, len(result.Recoveries))
	for _, id := range result.Recoveries {
		recovered[id] = true
	}
	for id, p := range next.Players {
		switch {
		case p.Injured && recovered[id]:
			p.Injured = false
			p.InjuryWeeks = 0
			p.CurrentInjury = nil
			p.InjuryHistory = p.InjuryHistory.OpenReinjuryWindow()
		case p.Injured:
			p.InjuryWeeks--
			if p.InjuryWeeks < 1 {
				p.InjuryWeeks = 1
			}
			if p.CurrentInjury != nil {
				inj := *p.CurrentInjury
				inj.WeeksLeft = p.InjuryWeeks
				p.CurrentInjury = &inj
			}
		case p.InjuryHistory.ReinjuryWeeksLeft > 0:
			p.InjuryHistory.ReinjuryWeeksLeft--
		}
		next.Players[id] = p
	}
	for _, ev := range result.Injuries {
		p, ok := next.Players[ev.PlayerID]
		if !ok {
			continue
		}
		inj := ev.Injury
		p.Injured = true
		p.InjuryWeeks = inj.RecoveryWeeks
		p.CurrentInjury = &inj
		p.InjuryHistory = p.InjuryHistory.Record(inj.RecoveryWeeks)
		next.Players[ev.PlayerID] = p
	}

	// Development deltas and injury setbacks.
	for _, delta := range result.Development {
		p, ok := next.Players[delta.PlayerID]
		if !ok {
			continue
		}
		for _, ch := range delta.Attributes {
			p.Attributes = p.Attributes.Set(ch.ID, p.Attributes.Get(ch.ID)+ch.Delta)
		}
		p.CurrentAbility = domain.ClampAbility(p.CurrentAbility + delta.AbilityDelta)
		if p.CurrentAbility > p.PotentialAbility {
			p.CurrentAbility = p.PotentialAbility
		}
		next.Players[delta.PlayerID] = p
	}
	for _, ev := range result.Setbacks {
		p, ok := next.Players[ev.PlayerID]
		if !ok {
			continue
		}
		for _, ch := range ev.Changes {
			p.Attributes = p.Attributes.Set(ch.ID, p.Attributes.Get(ch.ID)+ch.Delta)
		}
		next.Players[ev.PlayerID] = p
	}

	// Completed transfers move players and money.
	for _, t := range result.Transfers {
		p, ok := next.Players[t.PlayerID]
		if !ok {
			continue
		}
		to, ok := next.Clubs[t.ToClubID]
		if !ok {
			continue
		}
		p.ClubID = t.ToClubID
		next.Players[t.PlayerID] = p
		to.Budget -= t.Fee
		next.Clubs[t.ToClubID] = to
		if from, ok := next.Clubs[t.FromClubID]; ok {
			from.Budget += t.Fee
			next.Clubs[t.FromClubID] = from
		}
	}

	// Regional knowledge.
	for _, delta := range result.Knowledge {
		cur, ok := next.Knowledge[delta.Country]
		if !ok {
			continue
		}
		next.Knowledge[delta.Country] = knowledge.Apply(cur, delta)
	}

	if result.Youth != nil {
		next.UnsignedYouth = append(next.UnsignedYouth, *result.Youth)
	}

	next.Inbox = append(next.Inbox, result.Messages...)

	if result.Rollover != nil {
		next = applyRollover(next, *result.Rollover)
	} else {
		next.Week++
	}
	return next
}

// commitFixture records one played fixture, folds it into its league
// table and updates the involved players' seasonal stats and form.
func commitFixture(next domain.GameState, played domain.Fixture) domain.GameState {
	for i := range next.Fixtures {
		if next.Fixtures[i].ID == played.ID {
			next.Fixtures[i] = played
			break
		}
	}
	if league, ok := next.Leagues[played.LeagueID]; ok {
		league.Standings = foldFixture(league.Standings, played)
		sortTable(league.Standings)
		next.Leagues[played.LeagueID] = league
	}
	if played.Result == nil {
		return next
	}
	for _, goal := range played.Result.Scorers {
		if p, ok := next.Players[goal.PlayerID]; ok {
			p.SeasonGoals++
			next.Players[goal.PlayerID] = p
		}
	}
	for playerID, rating := range played.Result.Ratings {
		p, ok := next.Players[playerID]
		if !ok {
			continue
		}
		p.SeasonAppearances++
		p = updateForm(p, rating)
		next.Players[playerID] = p
	}
	return next
}

// updateForm shifts a player's form from one match rating. Strong streaks
// lock the trend for a few weeks so a single opposite result does not
// erase it; two consecutive opposite results break the lock early.
func updateForm(p domain.Player, rating float64) domain.Player {
	var dir domain.FormTrend
	switch {
	case rating >= formRaiseRating:
		dir = domain.TrendRising
	case rating <= formDropRating:
		dir = domain.TrendFalling
	}

	m := p.Momentum
	if dir == domain.TrendNone {
		m.CounterRuns = 0
		p.Momentum = m
		return p
	}

	step := 1
	if dir == domain.TrendFalling {
		step = -1
	}

	if m.LockWeeks > 0 && m.Trend != domain.TrendNone && m.Trend != dir {
		m.CounterRuns++
		if m.CounterRuns < 2 {
			p.Momentum = m
			return p
		}
		// Two straight results against the streak break the lock.
		p.Form = domain.ClampForm(p.Form + step)
		p.Momentum = domain.Momentum{Trend: dir}
		return p
	}

	m.CounterRuns = 0
	p.Form = domain.ClampForm(p.Form + step)
	entered := (dir == domain.TrendRising && p.Form >= momentumEnter) ||
		(dir == domain.TrendFalling && p.Form <= -momentumEnter)
	if entered && (m.Trend != dir || m.LockWeeks == 0) {
		m = domain.Momentum{Trend: dir, LockWeeks: momentumLock}
	}
	p.Momentum = m
	return p
}

// applyRollover folds the end-of-season summary: aging, retirements,
// stat and discipline resets, a fresh fixture list and a cleared
// schedule for week 1 of the new season.
func applyRollover(next domain.GameState, summary SeasonSummary) domain.GameState {
	for _, id := range summary.Retirements {
		delete(next.Players, id)
		delete(next.Discipline, id)
	}
	for id, p := range next.Players {
		p.Age++
		p.SeasonGoals = 0
		p.SeasonAppearances = 0
		next.Players[id] = p
	}
	for i := range next.UnsignedYouth {
		next.UnsignedYouth[i].Age++
	}

	for id, rec := range next.Discipline {
		rec = rec.ResetForSeason()
		if rec.SuspensionWeeks <= 0 {
			delete(next.Discipline, id)
			continue
		}
		next.Discipline[id] = rec
	}

	for id, league := range next.Leagues {
		fresh := make([]domain.Standing, 0, len(league.Standings))
		for _, row := range league.Standings {
			fresh = append(fresh, domain.Standing{ClubID: row.ClubID})
		}
		league.Standings = fresh
		next.Leagues[id] = league
	}

	next.Fixtures = summary.NextFixtures
	next.Schedule = domain.Schedule{}
	next.Week = 1
	next.Season++
	return next
}
