package solver

import (
	"fmt"

	"github.com/slotworks/shift-solver/pkg/core/roster"
)

// Rule names reported by VerifySchedule
const (
	RuleExclusion         = "Exclusion"
	RuleCoverageEquality  = "CoverageEquality"
	RulePerDayExclusivity = "PerDayExclusivity"
	RuleWorkloadCap       = "WorkloadCap"
	RuleReference         = "Reference"
)

// RuleViolation represents one constraint breach found in a schedule
type RuleViolation struct {
	Rule        string
	Day         roster.Day
	Slot        roster.Slot
	Worker      roster.WorkerID
	Description string
}

// VerifySchedule checks an assignment against every constraint family of the
// problem and returns the violations found. An empty slice means the schedule
// is sound. The solver's own output must always verify clean; the check also
// serves schedules loaded from outside.
func VerifySchedule(p *roster.Problem, a roster.Assignment) []RuleViolation {
	violations := []RuleViolation{}

	workerSet := make(map[roster.WorkerID]bool, len(p.Workers))
	for _, w := range p.Workers {
		workerSet[w] = true
	}
	daySet := make(map[roster.Day]bool, len(p.Days))
	for _, d := range p.Days {
		daySet[d] = true
	}
	slotSet := make(map[roster.Slot]bool, len(p.Slots))
	for _, s := range p.Slots {
		slotSet[s] = true
	}

	// Unknown references and duplicate triples
	seen := make(map[roster.ShiftAssignment]bool, len(a))
	for _, sa := range a {
		if !workerSet[sa.Worker] || !daySet[sa.Day] || !slotSet[sa.Slot] {
			violations = append(violations, RuleViolation{
				Rule:        RuleReference,
				Day:         sa.Day,
				Slot:        sa.Slot,
				Worker:      sa.Worker,
				Description: fmt.Sprintf("assignment (%s, %s, %s) references an unknown worker, day or slot", sa.Worker, sa.Day, sa.Slot),
			})
			continue
		}
		if seen[sa] {
			violations = append(violations, RuleViolation{
				Rule:        RuleReference,
				Day:         sa.Day,
				Slot:        sa.Slot,
				Worker:      sa.Worker,
				Description: fmt.Sprintf("assignment (%s, %s, %s) appears more than once", sa.Worker, sa.Day, sa.Slot),
			})
			continue
		}
		seen[sa] = true
	}

	// Exclusion: no assigned triple may appear in the unavailability list
	for _, u := range p.Unavailable {
		if seen[roster.ShiftAssignment{Worker: u.Worker, Day: u.Day, Slot: u.Slot}] {
			violations = append(violations, RuleViolation{
				Rule:        RuleExclusion,
				Day:         u.Day,
				Slot:        u.Slot,
				Worker:      u.Worker,
				Description: fmt.Sprintf("worker %s is assigned to (%s, %s) despite being unavailable", u.Worker, u.Day, u.Slot),
			})
		}
	}

	// Coverage equality: realized headcount must match exactly, both ways
	realized := a.RealizedCoverage()
	for _, d := range p.Days {
		for _, s := range p.Slots {
			key := roster.SlotKey{Day: d, Slot: s}
			if realized[key] != p.Coverage[key] {
				violations = append(violations, RuleViolation{
					Rule:        RuleCoverageEquality,
					Day:         d,
					Slot:        s,
					Description: fmt.Sprintf("cell (%s, %s) has %d assigned workers, requires exactly %d", d, s, realized[key], p.Coverage[key]),
				})
			}
		}
	}

	// Per-day exclusivity: at most one slot per worker per day
	perDay := make(map[roster.WorkerID]map[roster.Day]int)
	for sa := range seen {
		if perDay[sa.Worker] == nil {
			perDay[sa.Worker] = make(map[roster.Day]int)
		}
		perDay[sa.Worker][sa.Day]++
	}
	for _, w := range p.Workers {
		for _, d := range p.Days {
			if perDay[w][d] > 1 {
				violations = append(violations, RuleViolation{
					Rule:        RulePerDayExclusivity,
					Day:         d,
					Worker:      w,
					Description: fmt.Sprintf("worker %s holds %d slots on %s, at most one allowed", w, perDay[w][d], d),
				})
			}
		}
	}

	// Workload cap: total assignments per worker within budget
	totals := a.WorkerTotals()
	for _, w := range p.Workers {
		if totals[w] > p.Caps[w] {
			violations = append(violations, RuleViolation{
				Rule:        RuleWorkloadCap,
				Worker:      w,
				Description: fmt.Sprintf("worker %s holds %d shifts, cap is %d", w, totals[w], p.Caps[w]),
			})
		}
	}

	return violations
}
