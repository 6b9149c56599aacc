package roster

// WorkerID uniquely identifies a schedulable worker within one solving run
type WorkerID string

// Day is an ordered calendar day label (e.g. "Mon" or "2024-01-01").
// The order of days in a Problem defines tie-breaking and output ordering.
type Day string

// Slot is an ordered time-of-day label (e.g. "Morning", "Evening").
// The slot set varies per deployment and is always supplied by the caller.
type Slot string

// SlotKey identifies a single day × slot cell in the calendar grid
type SlotKey struct {
	Day  Day
	Slot Slot
}

// Unavailability marks a (worker, day, slot) the worker cannot work.
// Duplicate entries are idempotent - they force the same exclusion.
type Unavailability struct {
	Worker WorkerID
	Day    Day
	Slot   Slot
}

// Problem is the full input to one solving run.
// It is a pure value: the solver never mutates it and holds no state between runs.
type Problem struct {
	// Workers is the roster, in a fixed caller-supplied order
	Workers []WorkerID

	// Days is the ordered set of calendar days in the scheduling period
	Days []Day

	// Slots is the ordered set of time-of-day categories within a day
	Slots []Slot

	// Unavailable lists every (worker, day, slot) that must stay unassigned
	Unavailable []Unavailability

	// Coverage is the exact required headcount per day × slot cell.
	// Every cell must have an entry; a requirement of 0 forces the cell empty.
	Coverage map[SlotKey]int

	// Caps is the maximum total assignments per worker across the whole period.
	// Every worker must have an entry.
	Caps map[WorkerID]int
}

// ShiftAssignment is one (worker, day, slot) the worker is scheduled to work
type ShiftAssignment struct {
	Worker WorkerID
	Day    Day
	Slot   Slot
}

// Assignment is a full schedule: every shift every worker is assigned to.
// It is produced once per solve and owned by the caller thereafter.
type Assignment []ShiftAssignment

// CellCount returns the number of day × slot cells in the calendar grid
func (p *Problem) CellCount() int {
	return len(p.Days) * len(p.Slots)
}

// VariableCount returns the size of the boolean decision space,
// one variable per worker × day × slot combination
func (p *Problem) VariableCount() int {
	return len(p.Workers) * len(p.Days) * len(p.Slots)
}

// RealizedCoverage counts the assigned workers per day × slot cell
func (a Assignment) RealizedCoverage() map[SlotKey]int {
	counts := make(map[SlotKey]int)
	for _, sa := range a {
		counts[SlotKey{Day: sa.Day, Slot: sa.Slot}]++
	}
	return counts
}

// WorkerTotals counts the assignments per worker across the whole period
func (a Assignment) WorkerTotals() map[WorkerID]int {
	totals := make(map[WorkerID]int)
	for _, sa := range a {
		totals[sa.Worker]++
	}
	return totals
}
