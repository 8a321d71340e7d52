// Package calendar implements the scout's 7-slot weekly activity plan:
// pure add/remove operations over a schedule value and the one-shot
// conversion of a finalized plan into fatigue and experience effects.
package calendar

import (
	"errors"

	"github.com/louisbranch/touchline/internal/sim/domain"
)

var (
	// ErrSlotOutOfRange indicates a slot index outside [0, 6].
	ErrSlotOutOfRange = errors.New("slot index must be in range 0..6")
	// ErrScheduleFinalized indicates the schedule no longer accepts edits.
	ErrScheduleFinalized = errors.New("schedule is finalized")
	// ErrActivityOverflows indicates the activity's slot cost runs past the
	// end of the week.
	ErrActivityOverflows = errors.New("activity does not fit before the end of the week")
	// ErrSlotOccupied indicates one of the required slots already holds an
	// activity.
	ErrSlotOccupied = errors.New("slot already occupied")
)

// CanAdd reports whether the activity can be placed at the slot index.
// The returned error explains the first failing rule.
func CanAdd(sched domain.Schedule, activity domain.Activity, slot int) error {
	if slot < 0 || slot >= domain.SlotsPerWeek {
		return ErrSlotOutOfRange
	}
	if sched.Finalized {
		return ErrScheduleFinalized
	}
	cost := activity.Type.SlotCost()
	if slot+cost > domain.SlotsPerWeek {
		return ErrActivityOverflows
	}
	for i := slot; i < slot+cost; i++ {
		if sched.Slots[i] != nil {
			return ErrSlotOccupied
		}
	}
	return nil
}

// Add returns a new schedule with the activity occupying its slots. The
// input schedule is unchanged. An invalid slot index is a caller contract
// violation; other failures mirror CanAdd.
func Add(sched domain.Schedule, activity domain.Activity, slot int) (domain.Schedule, error) {
	if err := CanAdd(sched, activity, slot); err != nil {
		return domain.Schedule{}, err
	}
	out := sched
	for i := slot; i < slot+activity.Type.SlotCost(); i++ {
		entry := activity
		out.Slots[i] = &entry
	}
	return out, nil
}

// Remove returns a new schedule with every slot cleared whose activity is
// logically equal to the one at the given index. Reloaded schedules are
// rebuilt as distinct instances, so matching is by value, not identity.
func Remove(sched domain.Schedule, slot int) (domain.Schedule, error) {
	if slot < 0 || slot >= domain.SlotsPerWeek {
		return domain.Schedule{}, ErrSlotOutOfRange
	}
	if sched.Finalized {
		return domain.Schedule{}, ErrScheduleFinalized
	}
	target := sched.Slots[slot]
	if target == nil {
		return sched, nil
	}
	out := sched
	for i, entry := range out.Slots {
		if entry != nil && entry.Equal(*target) {
			out.Slots[i] = nil
		}
	}
	return out, nil
}

// Finalize returns the schedule locked against further edits.
func Finalize(sched domain.Schedule) domain.Schedule {
	sched.Finalized = true
	return sched
}

// Effect is the aggregate outcome of processing one weekly schedule.
type Effect struct {
	FatigueDelta float64
	XP           int
	SkillXP      map[domain.SkillID]int
	Activities   []domain.Activity
}

// enduranceDiscount converts the scout's endurance skill into a fatigue
// cost factor. Endurance 10 is neutral; each point shaves 1.5%, floored so
// even iron scouts pay most of the cost.
func enduranceDiscount(endurance int) float64 {
	factor := 1.0 - float64(endurance-10)*0.015
	if factor < 0.7 {
		return 0.7
	}
	if factor > 1.15 {
		return 1.15
	}
	return factor
}

// Process converts a finalized schedule into its fatigue and XP effect,
// counting each activity exactly once even when it spans several slots.
// XP is reduced by 30% when the scout enters the week above the
// high-fatigue threshold. Processing a schedule already marked completed
// returns a zero effect and the schedule unchanged: the guard that makes
// re-processing a documented no-op.
func Process(sched domain.Schedule, scout domain.Scout) (Effect, domain.Schedule) {
	if sched.Completed {
		return Effect{}, sched
	}

	effect := Effect{SkillXP: make(map[domain.SkillID]int)}
	discount := enduranceDiscount(scout.Skills.Get(domain.SkillEndurance))
	tired := scout.Fatigue > domain.HighFatigueThreshold

	var prev *domain.Activity
	for _, entry := range sched.Slots {
		if entry == nil {
			prev = nil
			continue
		}
		// A multi-slot activity repeats its value across contiguous slots;
		// only the first slot contributes.
		if prev != nil && prev.Equal(*entry) {
			continue
		}
		prev = entry

		cost := entry.Type.FatigueCost()
		if cost > 0 {
			cost *= discount
		}
		effect.FatigueDelta += cost

		xp := entry.Type.XPYield()
		if tired {
			xp = (xp * 7) / 10
		}
		effect.XP += xp
		if xp > 0 {
			effect.SkillXP[entry.Type.Skill()] += xp
		}
		effect.Activities = append(effect.Activities, *entry)
	}

	sched.Completed = true
	return effect, sched
}
