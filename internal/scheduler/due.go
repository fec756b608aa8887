package scheduler

import (
	"fmt"
	"time"

	"github.com/andrisyafri/facilops/internal/domain"
)

// DueInput is the per-object snapshot the due engine decides on. All time
// values are UTC instants; Now is injected so decisions stay deterministic.
type DueInput struct {
	FrequencyLabel string
	// Frequency is the resolved label, nil when the label is absent.
	Frequency *Frequency
	// Anchor is the resolved service anchor. Nil means the object has no
	// usable start data at all; the engine then treats Now as the anchor,
	// which yields "due, never completed" rather than hiding the object.
	Anchor *time.Time
	// ContractEnd is the effective window end, already adjusted to end of
	// day when a sibling object uses an hourly frequency.
	ContractEnd     *time.Time
	LastCompletedAt *time.Time
	Processing      bool
	Now             time.Time
}

// DueDecision is the engine's computed, never-persisted verdict.
type DueDecision struct {
	Due                bool
	Status             domain.DueStatus
	Reason             string
	CurrentCycle       int
	LastCompletedCycle int
	// NextDue is the completion-relative next due time when a completion
	// exists, otherwise the anchor-relative one.
	NextDue *time.Time
}

// Decide classifies one service object. Rules are evaluated in order:
// hourly same-day window, one-time handling, in-progress, the
// completion-relative suppression gate, then due with anchor-relative cycle
// metadata.
func Decide(in DueInput) DueDecision {
	anchor := in.Now
	if in.Anchor != nil {
		anchor = *in.Anchor
	}

	// Hourly schedules are same-day, multi-slot tasks: outside the anchor's
	// calendar day the object is never due, whatever else holds.
	if in.Frequency != nil && in.Frequency.Unit == UnitHour {
		if in.Now.Before(DayStart(anchor)) {
			return DueDecision{Status: domain.StatusUpcoming, LastCompletedCycle: -1}
		}
		if in.Now.After(DayEnd(anchor)) {
			return DueDecision{Status: domain.StatusOverdue, LastCompletedCycle: -1}
		}
	}

	if in.Frequency == nil || in.Frequency.IsOneTime() {
		return decideOneTime(in)
	}

	if in.Processing {
		cur, last := cycleMeta(anchor, in)
		return DueDecision{
			Due:                true,
			Status:             domain.StatusProcessing,
			Reason:             fmt.Sprintf("%s service in progress", in.FrequencyLabel),
			CurrentCycle:       cur,
			LastCompletedCycle: last,
		}
	}

	// A completed job stays hidden until one full interval has passed since
	// the completion itself, not since the anchor.
	if in.LastCompletedAt != nil {
		next := NextDueAfterCompletion(*in.LastCompletedAt, *in.Frequency)
		if in.Now.Before(next) {
			cur, last := cycleMeta(anchor, in)
			return DueDecision{
				Status:             domain.StatusCompleted,
				Reason:             fmt.Sprintf("completed %s ago", FormatElapsed(*in.LastCompletedAt, in.Now, in.Frequency.Unit)),
				CurrentCycle:       cur,
				LastCompletedCycle: last,
				NextDue:            &next,
			}
		}
	}

	cur, last := cycleMeta(anchor, in)

	status := domain.StatusPending
	if in.ContractEnd != nil && in.Now.After(*in.ContractEnd) {
		status = domain.StatusOverdue
	}

	reason := fmt.Sprintf("%s service due (never completed)", in.FrequencyLabel)
	var next time.Time
	if in.LastCompletedAt != nil {
		reason = fmt.Sprintf("%s service due (completed %s ago)",
			in.FrequencyLabel, FormatElapsed(*in.LastCompletedAt, in.Now, in.Frequency.Unit))
		next = NextDueAfterCompletion(*in.LastCompletedAt, *in.Frequency)
	} else {
		next = NextDueFromAnchor(DayStart(anchor), in.Now, *in.Frequency)
	}

	return DueDecision{
		Due:                true,
		Status:             status,
		Reason:             reason,
		CurrentCycle:       cur,
		LastCompletedCycle: last,
		NextDue:            &next,
	}
}

func decideOneTime(in DueInput) DueDecision {
	if in.LastCompletedAt != nil {
		return DueDecision{
			Status:             domain.StatusCompleted,
			Reason:             "One-time service already completed",
			LastCompletedCycle: 0,
		}
	}
	reason := "One-time service pending"
	if in.Frequency == nil {
		reason = "One-time service due (never completed)"
	}
	return DueDecision{
		Due:                true,
		Status:             domain.StatusOneTimePending,
		Reason:             reason,
		LastCompletedCycle: -1,
	}
}

// cycleMeta computes display/audit cycle numbers against the day-start
// anchor. The anchor-relative strategy is metadata only; it never gates the
// due decision.
func cycleMeta(anchor time.Time, in DueInput) (current, lastCompleted int) {
	if in.Frequency == nil {
		return 0, -1
	}
	base := DayStart(anchor)
	current = CycleIndex(base, in.Now, *in.Frequency)
	lastCompleted = -1
	if in.LastCompletedAt != nil {
		lastCompleted = CycleIndex(base, *in.LastCompletedAt, *in.Frequency)
	}
	return current, lastCompleted
}

// ResolveAnchor picks the date cycles are counted from, by priority:
// explicit per-object service start, contract start, object creation time,
// company creation time, then now.
func ResolveAnchor(obj domain.ServiceObject, comp *domain.Company, now time.Time) time.Time {
	switch {
	case obj.ServiceStartDate != nil:
		return *obj.ServiceStartDate
	case comp != nil && comp.ContractStartDate != nil:
		return *comp.ContractStartDate
	case !obj.CreatedAt.IsZero():
		return obj.CreatedAt
	case comp != nil && !comp.CreatedAt.IsZero():
		return comp.CreatedAt
	}
	return now
}

// EffectiveContractEnd adjusts a company's contract end to the end of its
// calendar day when any object in the company is on an hourly frequency.
func EffectiveContractEnd(comp *domain.Company) *time.Time {
	if comp.ContractEndDate == nil {
		return nil
	}
	if comp.ContractStartDate != nil && comp.HasHourlyObject() {
		adj := DayEnd(*comp.ContractEndDate)
		return &adj
	}
	return comp.ContractEndDate
}
