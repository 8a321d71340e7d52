//go:build scenario

package sim

import (
	"fmt"
	"path/filepath"
	"reflect"
	"sort"
	"testing"

	"github.com/louisbranch/touchline/internal/sim/calendar"
	"github.com/louisbranch/touchline/internal/sim/domain"
	"github.com/louisbranch/touchline/internal/sim/rng"
	"github.com/louisbranch/touchline/internal/sim/tick"
	"github.com/louisbranch/touchline/internal/worldgen"
)

// scenarioRun carries the simulation state while a script executes.
type scenarioRun struct {
	seed  int64
	state domain.GameState
	plan  []domain.ActivityType
	// weeksRun counts advanced weeks so per-week tick seeds never repeat.
	weeksRun int
}

func TestScenarioScripts(t *testing.T) {
	paths, err := filepath.Glob(filepath.Join("scenarios", "*.lua"))
	if err != nil {
		t.Fatalf("glob scenarios: %v", err)
	}
	if len(paths) == 0 {
		t.Fatal("no scenario scripts found")
	}
	sort.Strings(paths)

	for _, path := range paths {
		scenario, err := loadScenarioFromFile(path)
		if err != nil {
			t.Fatalf("load %s: %v", path, err)
		}
		t.Run(scenario.Name, func(t *testing.T) {
			run := &scenarioRun{}
			for i, step := range scenario.Steps {
				if err := run.execute(step); err != nil {
					t.Fatalf("step %d (%s): %v", i+1, step.Kind, err)
				}
			}
		})
	}
}

func (run *scenarioRun) execute(step Step) error {
	switch step.Kind {
	case "world":
		return run.buildWorld(step.Args)
	case "plan":
		return run.setPlan(step.Args)
	case "suspend":
		return run.suspend(step.Args)
	case "injure":
		return run.injure(step.Args)
	case "advance":
		return run.advance(intArg(step.Args, "weeks", 1))
	case "assert_week":
		if got, want := run.state.Week, intArg(step.Args, "week", 0); got != want {
			return fmt.Errorf("week = %d, want %d", got, want)
		}
		return nil
	case "assert_season":
		if got, want := run.state.Season, intArg(step.Args, "season", 0); got != want {
			return fmt.Errorf("season = %d, want %d", got, want)
		}
		return nil
	case "assert_bounds":
		return run.assertBounds()
	case "assert_determinism":
		return run.assertDeterminism(intArg(step.Args, "weeks", 1))
	case "assert_suspension":
		return run.assertSuspension(step.Args)
	default:
		return fmt.Errorf("unknown step kind %q", step.Kind)
	}
}

func (run *scenarioRun) buildWorld(args map[string]any) error {
	run.seed = int64(intArg(args, "seed", 1))
	run.state = worldgen.Build(rng.New(run.seed), worldgen.Options{
		Countries:      intArg(args, "countries", 0),
		ClubsPerLeague: intArg(args, "clubs", 0),
		PlayersPerClub: intArg(args, "players", 0),
	})
	run.weeksRun = 0
	return nil
}

var activityNames = map[string]domain.ActivityType{
	"match_scouting":   domain.ActivityMatchScouting,
	"youth_tournament": domain.ActivityYouthTournament,
	"regional_survey":  domain.ActivityRegionalSurvey,
	"networking":       domain.ActivityNetworking,
	"training":         domain.ActivityTraining,
	"travel":           domain.ActivityTravel,
	"rest":             domain.ActivityRest,
}

func (run *scenarioRun) setPlan(args map[string]any) error {
	names, ok := args["activities"].([]any)
	if !ok {
		return fmt.Errorf("plan expects a list of activity names")
	}
	run.plan = nil
	for _, raw := range names {
		name, ok := raw.(string)
		if !ok {
			return fmt.Errorf("activity name must be a string, got %T", raw)
		}
		activityType, ok := activityNames[name]
		if !ok {
			return fmt.Errorf("unknown activity %q", name)
		}
		run.plan = append(run.plan, activityType)
	}
	return nil
}

func (run *scenarioRun) suspend(args map[string]any) error {
	id, err := run.playerAt(intArg(args, "player", 1))
	if err != nil {
		return err
	}
	run.state.Discipline[id] = domain.DisciplinaryRecord{
		PlayerID:        id,
		SuspensionWeeks: intArg(args, "weeks", 1),
	}
	return nil
}

func (run *scenarioRun) injure(args map[string]any) error {
	id, err := run.playerAt(intArg(args, "player", 1))
	if err != nil {
		return err
	}
	weeks := intArg(args, "weeks", 1)
	p := run.state.Players[id]
	injury := domain.Injury{
		ID:            fmt.Sprintf("%s-scripted", id),
		Type:          domain.InjuryMuscle,
		Severity:      domain.SeverityForWeeks(weeks),
		RecoveryWeeks: weeks,
		WeeksLeft:     weeks,
	}
	p.Injured = true
	p.InjuryWeeks = weeks
	p.CurrentInjury = &injury
	run.state.Players[id] = p
	return nil
}

func (run *scenarioRun) advance(weeks int) error {
	for i := 0; i < weeks; i++ {
		state, err := run.tickOnce(run.state, run.weeksRun)
		if err != nil {
			return err
		}
		run.state = state
		run.weeksRun++
	}
	return nil
}

func (run *scenarioRun) tickOnce(state domain.GameState, weekOffset int) (domain.GameState, error) {
	sched, err := run.buildSchedule()
	if err != nil {
		return state, err
	}
	state.Schedule = sched

	r := rng.New(run.seed + int64(weekOffset)*7919)
	result, err := tick.ComputeTick(state, r)
	if err != nil {
		return state, err
	}
	return tick.CommitTick(state, result), nil
}

func (run *scenarioRun) buildSchedule() (domain.Schedule, error) {
	var sched domain.Schedule
	slot := 0
	for _, activityType := range run.plan {
		act := domain.Activity{Type: activityType}
		var err error
		sched, err = calendar.Add(sched, act, slot)
		if err != nil {
			return sched, fmt.Errorf("plan slot %d: %w", slot, err)
		}
		slot += activityType.SlotCost()
	}
	return calendar.Finalize(sched), nil
}

func (run *scenarioRun) assertBounds() error {
	for id, p := range run.state.Players {
		if p.CurrentAbility < domain.AbilityMin || p.CurrentAbility > domain.AbilityMax {
			return fmt.Errorf("player %s ability %d out of range", id, p.CurrentAbility)
		}
		for _, attrID := range domain.AttributeIDs {
			if v := p.Attributes.Get(attrID); v < domain.AttributeMin || v > domain.AttributeMax {
				return fmt.Errorf("player %s attribute %v = %d out of range", id, attrID, v)
			}
		}
		if p.Form < domain.FormMin || p.Form > domain.FormMax {
			return fmt.Errorf("player %s form %d out of range", id, p.Form)
		}
	}
	if f := run.state.Scout.Fatigue; f < 0 || f > 100 {
		return fmt.Errorf("scout fatigue %f out of range", f)
	}
	if r := run.state.Scout.Reputation; r < 0 || r > 100 {
		return fmt.Errorf("scout reputation %f out of range", r)
	}
	for country, k := range run.state.Knowledge {
		if k.Level < 0 || k.Level > 100 {
			return fmt.Errorf("knowledge for %s = %f out of range", country, k.Level)
		}
	}
	return nil
}

// assertDeterminism runs the next stretch of weeks twice from the same
// snapshot and requires identical outcomes, then leaves the run advanced.
func (run *scenarioRun) assertDeterminism(weeks int) error {
	first := run.state.Clone()
	second := run.state.Clone()
	offset := run.weeksRun

	var err error
	for i := 0; i < weeks; i++ {
		first, err = run.tickOnce(first, offset+i)
		if err != nil {
			return fmt.Errorf("first pass: %w", err)
		}
	}
	for i := 0; i < weeks; i++ {
		second, err = run.tickOnce(second, offset+i)
		if err != nil {
			return fmt.Errorf("second pass: %w", err)
		}
	}
	if !reflect.DeepEqual(first, second) {
		return fmt.Errorf("identical seeds diverged over %d weeks", weeks)
	}

	run.state = first
	run.weeksRun += weeks
	return nil
}

func (run *scenarioRun) assertSuspension(args map[string]any) error {
	id, err := run.playerAt(intArg(args, "player", 1))
	if err != nil {
		return err
	}
	want := intArg(args, "weeks", 0)
	if got := run.state.Discipline[id].SuspensionWeeks; got != want {
		return fmt.Errorf("player %s suspension = %d, want %d", id, got, want)
	}
	return nil
}

// playerAt resolves a stable 1-based index into the sorted player ids.
func (run *scenarioRun) playerAt(index int) (string, error) {
	ids := make([]string, 0, len(run.state.Players))
	for id := range run.state.Players {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	if index < 1 || index > len(ids) {
		return "", fmt.Errorf("player index %d out of range 1..%d", index, len(ids))
	}
	return ids[index-1], nil
}

func intArg(args map[string]any, key string, fallback int) int {
	if args == nil {
		return fallback
	}
	switch v := args[key].(type) {
	case int:
		return v
	case float64:
		return int(v)
	default:
		return fallback
	}
}
