package roster

// Validate checks the problem for malformed or inconsistent input.
// It returns an *InvalidInputError describing the first defect found, or nil.
//
// Validation covers structural defects only:
//   - empty worker roster, day set or slot set
//   - duplicate worker identifiers, day labels or slot labels
//   - missing or negative coverage entry for any day × slot cell
//   - missing or negative workload cap for any worker
//   - unavailability entries referencing unknown workers, days or slots
//
// Feasibility is not a validation concern: a cell whose requirement exceeds
// its eligible workers is a well-formed problem that the solver reports as
// infeasible.
func (p *Problem) Validate() error {
	if len(p.Workers) == 0 {
		return invalidInputf("worker roster is empty")
	}
	if len(p.Days) == 0 {
		return invalidInputf("day set is empty")
	}
	if len(p.Slots) == 0 {
		return invalidInputf("slot set is empty")
	}

	workerSet := make(map[WorkerID]bool, len(p.Workers))
	for _, w := range p.Workers {
		if workerSet[w] {
			return invalidInputf("duplicate worker %q", w)
		}
		workerSet[w] = true
	}

	daySet := make(map[Day]bool, len(p.Days))
	for _, d := range p.Days {
		if daySet[d] {
			return invalidInputf("duplicate day %q", d)
		}
		daySet[d] = true
	}

	slotSet := make(map[Slot]bool, len(p.Slots))
	for _, s := range p.Slots {
		if slotSet[s] {
			return invalidInputf("duplicate slot %q", s)
		}
		slotSet[s] = true
	}

	// Coverage must be total over the grid, no defaulting
	for _, d := range p.Days {
		for _, s := range p.Slots {
			required, ok := p.Coverage[SlotKey{Day: d, Slot: s}]
			if !ok {
				return invalidInputf("missing coverage entry for (%s, %s)", d, s)
			}
			if required < 0 {
				return invalidInputf("negative coverage %d for (%s, %s)", required, d, s)
			}
		}
	}

	for _, w := range p.Workers {
		workloadCap, ok := p.Caps[w]
		if !ok {
			return invalidInputf("missing workload cap for worker %q", w)
		}
		if workloadCap < 0 {
			return invalidInputf("negative workload cap %d for worker %q", workloadCap, w)
		}
	}

	for _, u := range p.Unavailable {
		if !workerSet[u.Worker] {
			return invalidInputf("unavailability references unknown worker %q", u.Worker)
		}
		if !daySet[u.Day] {
			return invalidInputf("unavailability references unknown day %q", u.Day)
		}
		if !slotSet[u.Slot] {
			return invalidInputf("unavailability references unknown slot %q", u.Slot)
		}
	}

	return nil
}
