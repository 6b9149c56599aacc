package roster

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validProblem() *Problem {
	return &Problem{
		Workers: []WorkerID{"alice", "bob"},
		Days:    []Day{"Mon", "Tue"},
		Slots:   []Slot{"Morning", "Evening"},
		Coverage: map[SlotKey]int{
			{Day: "Mon", Slot: "Morning"}: 1,
			{Day: "Mon", Slot: "Evening"}: 1,
			{Day: "Tue", Slot: "Morning"}: 1,
			{Day: "Tue", Slot: "Evening"}: 0,
		},
		Caps: map[WorkerID]int{"alice": 2, "bob": 2},
	}
}

func TestValidate_ValidProblem(t *testing.T) {
	p := validProblem()
	assert.NoError(t, p.Validate())
}

func TestValidate_EmptyWorkers(t *testing.T) {
	p := validProblem()
	p.Workers = nil

	err := p.Validate()
	require.Error(t, err)

	var invalid *InvalidInputError
	assert.True(t, errors.As(err, &invalid), "Should be an InvalidInputError")
	assert.Contains(t, err.Error(), "roster is empty")
}

func TestValidate_EmptyDays(t *testing.T) {
	p := validProblem()
	p.Days = nil

	var invalid *InvalidInputError
	assert.True(t, errors.As(p.Validate(), &invalid))
}

func TestValidate_EmptySlots(t *testing.T) {
	p := validProblem()
	p.Slots = nil

	var invalid *InvalidInputError
	assert.True(t, errors.As(p.Validate(), &invalid))
}

func TestValidate_DuplicateWorker(t *testing.T) {
	p := validProblem()
	p.Workers = append(p.Workers, "alice")

	err := p.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), `duplicate worker "alice"`)
}

func TestValidate_DuplicateDay(t *testing.T) {
	p := validProblem()
	p.Days = append(p.Days, "Mon")

	err := p.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), `duplicate day "Mon"`)
}

func TestValidate_MissingCoverageEntry(t *testing.T) {
	p := validProblem()
	delete(p.Coverage, SlotKey{Day: "Tue", Slot: "Evening"})

	err := p.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing coverage entry for (Tue, Evening)")
}

func TestValidate_NegativeCoverage(t *testing.T) {
	p := validProblem()
	p.Coverage[SlotKey{Day: "Mon", Slot: "Morning"}] = -1

	err := p.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "negative coverage")
}

func TestValidate_MissingCap(t *testing.T) {
	p := validProblem()
	delete(p.Caps, "bob")

	err := p.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), `missing workload cap for worker "bob"`)
}

func TestValidate_NegativeCap(t *testing.T) {
	p := validProblem()
	p.Caps["bob"] = -3

	err := p.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "negative workload cap")
}

func TestValidate_UnavailabilityUnknownWorker(t *testing.T) {
	p := validProblem()
	p.Unavailable = []Unavailability{{Worker: "mallory", Day: "Mon", Slot: "Morning"}}

	err := p.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown worker "mallory"`)
}

func TestValidate_UnavailabilityUnknownDay(t *testing.T) {
	p := validProblem()
	p.Unavailable = []Unavailability{{Worker: "alice", Day: "Sun", Slot: "Morning"}}

	err := p.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown day "Sun"`)
}

func TestValidate_DuplicateUnavailabilityIsIdempotent(t *testing.T) {
	p := validProblem()
	p.Unavailable = []Unavailability{
		{Worker: "alice", Day: "Mon", Slot: "Morning"},
		{Worker: "alice", Day: "Mon", Slot: "Morning"},
	}

	// Duplicates force the same exclusion and are not a defect
	assert.NoError(t, p.Validate())
}

func TestValidate_ExcessCoverageIsNotAValidationError(t *testing.T) {
	p := validProblem()
	p.Coverage[SlotKey{Day: "Mon", Slot: "Morning"}] = 10

	// Requirement above the eligible worker count is a feasibility
	// question for the solver, not malformed input
	assert.NoError(t, p.Validate())
}

func TestRealizedCoverage(t *testing.T) {
	a := Assignment{
		{Worker: "alice", Day: "Mon", Slot: "Morning"},
		{Worker: "bob", Day: "Mon", Slot: "Morning"},
		{Worker: "alice", Day: "Tue", Slot: "Evening"},
	}

	counts := a.RealizedCoverage()
	assert.Equal(t, 2, counts[SlotKey{Day: "Mon", Slot: "Morning"}])
	assert.Equal(t, 1, counts[SlotKey{Day: "Tue", Slot: "Evening"}])
	assert.Equal(t, 0, counts[SlotKey{Day: "Mon", Slot: "Evening"}])
}

func TestWorkerTotals(t *testing.T) {
	a := Assignment{
		{Worker: "alice", Day: "Mon", Slot: "Morning"},
		{Worker: "alice", Day: "Tue", Slot: "Evening"},
		{Worker: "bob", Day: "Mon", Slot: "Morning"},
	}

	totals := a.WorkerTotals()
	assert.Equal(t, 2, totals["alice"])
	assert.Equal(t, 1, totals["bob"])
}
