package calendar

import (
	"errors"
	"testing"

	"github.com/louisbranch/touchline/internal/sim/domain"
)

func scouting(target string) domain.Activity {
	return domain.Activity{Type: domain.ActivityMatchScouting, Target: target}
}

// TestCanAddRejections covers every failing rule.
func TestCanAddRejections(t *testing.T) {
	var sched domain.Schedule

	if err := CanAdd(sched, scouting("BR"), -1); !errors.Is(err, ErrSlotOutOfRange) {
		t.Fatalf("slot -1: err = %v, want %v", err, ErrSlotOutOfRange)
	}
	if err := CanAdd(sched, scouting("BR"), 7); !errors.Is(err, ErrSlotOutOfRange) {
		t.Fatalf("slot 7: err = %v, want %v", err, ErrSlotOutOfRange)
	}

	final := Finalize(sched)
	if err := CanAdd(final, scouting("BR"), 0); !errors.Is(err, ErrScheduleFinalized) {
		t.Fatalf("finalized: err = %v, want %v", err, ErrScheduleFinalized)
	}

	tournament := domain.Activity{Type: domain.ActivityYouthTournament, Target: "AR"}
	if err := CanAdd(sched, tournament, 6); !errors.Is(err, ErrActivityOverflows) {
		t.Fatalf("overflow: err = %v, want %v", err, ErrActivityOverflows)
	}

	withOne, err := Add(sched, scouting("BR"), 2)
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if err := CanAdd(withOne, scouting("DE"), 2); !errors.Is(err, ErrSlotOccupied) {
		t.Fatalf("occupied: err = %v, want %v", err, ErrSlotOccupied)
	}
	if err := CanAdd(withOne, tournament, 1); !errors.Is(err, ErrSlotOccupied) {
		t.Fatalf("partial overlap: err = %v, want %v", err, ErrSlotOccupied)
	}
}

// TestAddIsPure ensures Add never mutates its input.
func TestAddIsPure(t *testing.T) {
	var sched domain.Schedule
	out, err := Add(sched, scouting("BR"), 0)
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if sched.Slots[0] != nil {
		t.Fatal("Add mutated input schedule")
	}
	if out.Slots[0] == nil || out.Slots[0].Target != "BR" {
		t.Fatalf("Add did not place activity: %+v", out.Slots[0])
	}
}

// TestMultiSlotPlacement ensures a 2-slot activity occupies both slots.
func TestMultiSlotPlacement(t *testing.T) {
	tournament := domain.Activity{Type: domain.ActivityYouthTournament, Target: "AR"}
	out, err := Add(domain.Schedule{}, tournament, 3)
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if out.Slots[3] == nil || out.Slots[4] == nil {
		t.Fatalf("tournament not spanning slots 3-4: %+v", out.Slots)
	}
}

// TestRemoveClearsLogicallyEqual ensures removal clears every slot holding
// a value-equal activity, including reconstructed instances.
func TestRemoveClearsLogicallyEqual(t *testing.T) {
	tournament := domain.Activity{Type: domain.ActivityYouthTournament, Target: "AR"}
	sched, err := Add(domain.Schedule{}, tournament, 0)
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	// Simulate a reload: slot values are distinct instances with equal
	// content.
	rebuilt := tournament
	sched.Slots[1] = &rebuilt

	out, err := Remove(sched, 0)
	if err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if out.Slots[0] != nil || out.Slots[1] != nil {
		t.Fatalf("Remove left slots occupied: %+v", out.Slots)
	}
	if sched.Slots[0] == nil {
		t.Fatal("Remove mutated input schedule")
	}
}

// TestRemoveEmptySlot ensures removing from an empty slot is a no-op.
func TestRemoveEmptySlot(t *testing.T) {
	out, err := Remove(domain.Schedule{}, 3)
	if err != nil {
		t.Fatalf("Remove: %v", err)
	}
	for i, slot := range out.Slots {
		if slot != nil {
			t.Fatalf("slot %d unexpectedly occupied", i)
		}
	}
}

// TestProcessCountsSpanningActivityOnce ensures a multi-slot activity
// contributes fatigue and XP exactly once.
func TestProcessCountsSpanningActivityOnce(t *testing.T) {
	tournament := domain.Activity{Type: domain.ActivityYouthTournament, Target: "AR"}
	sched, err := Add(domain.Schedule{}, tournament, 0)
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	sched = Finalize(sched)

	scout := domain.Scout{Skills: domain.Skills{Endurance: 10}}
	effect, done := Process(sched, scout)
	if len(effect.Activities) != 1 {
		t.Fatalf("processed %d activities, want 1", len(effect.Activities))
	}
	if effect.XP != tournament.Type.XPYield() {
		t.Fatalf("XP = %d, want %d", effect.XP, tournament.Type.XPYield())
	}
	if effect.FatigueDelta != tournament.Type.FatigueCost() {
		t.Fatalf("FatigueDelta = %v, want %v", effect.FatigueDelta, tournament.Type.FatigueCost())
	}
	if !done.Completed {
		t.Fatal("Process did not mark schedule completed")
	}
}

// TestProcessIdempotentOnCompleted ensures re-processing yields a zero
// effect.
func TestProcessIdempotentOnCompleted(t *testing.T) {
	sched, err := Add(domain.Schedule{}, scouting("BR"), 0)
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	sched = Finalize(sched)
	scout := domain.Scout{Skills: domain.Skills{Endurance: 10}}

	first, done := Process(sched, scout)
	if first.XP == 0 {
		t.Fatal("first processing had no effect")
	}
	second, _ := Process(done, scout)
	if second.XP != 0 || second.FatigueDelta != 0 || len(second.Activities) != 0 {
		t.Fatalf("second processing had effect: %+v", second)
	}
}

// TestProcessHighFatigueReducesXP ensures the 30% reduction applies above
// the threshold.
func TestProcessHighFatigueReducesXP(t *testing.T) {
	sched, err := Add(domain.Schedule{}, scouting("BR"), 0)
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	sched = Finalize(sched)

	fresh := domain.Scout{Fatigue: 10, Skills: domain.Skills{Endurance: 10}}
	tired := domain.Scout{Fatigue: 80, Skills: domain.Skills{Endurance: 10}}

	freshEffect, _ := Process(sched, fresh)
	tiredEffect, _ := Process(sched, tired)
	want := (freshEffect.XP * 7) / 10
	if tiredEffect.XP != want {
		t.Fatalf("tired XP = %d, want %d", tiredEffect.XP, want)
	}
}

// TestEnduranceDiscountsFatigue ensures higher endurance lowers positive
// fatigue costs but never discounts rest.
func TestEnduranceDiscountsFatigue(t *testing.T) {
	sched, err := Add(domain.Schedule{}, scouting("BR"), 0)
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	sched = Finalize(sched)

	weak := domain.Scout{Skills: domain.Skills{Endurance: 5}}
	strong := domain.Scout{Skills: domain.Skills{Endurance: 18}}
	weakEffect, _ := Process(sched, weak)
	strongEffect, _ := Process(sched, strong)
	if strongEffect.FatigueDelta >= weakEffect.FatigueDelta {
		t.Fatalf("endurance discount absent: strong %v >= weak %v",
			strongEffect.FatigueDelta, weakEffect.FatigueDelta)
	}

	rest, err := Add(domain.Schedule{}, domain.Activity{Type: domain.ActivityRest}, 0)
	if err != nil {
		t.Fatalf("Add rest: %v", err)
	}
	rest = Finalize(rest)
	restEffect, _ := Process(rest, strong)
	if restEffect.FatigueDelta != domain.ActivityRest.FatigueCost() {
		t.Fatalf("rest recovery was discounted: %v", restEffect.FatigueDelta)
	}
}
