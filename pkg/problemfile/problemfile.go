// Package problemfile reads and writes the YAML files the CLI exchanges with
// the solver core: problem definitions in, generated schedules out.
//
// The file format carries caller-side conveniences (default coverage, default
// caps, recurrence-based calendars) that are expanded here into the complete,
// explicit Problem the core demands. The core itself never defaults anything.
package problemfile

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/slotworks/shift-solver/pkg/core/roster"
)

// WorkerSpec declares one schedulable worker
type WorkerSpec struct {
	ID string `yaml:"id" validate:"required"`

	// MaxShifts caps this worker's total assignments for the period.
	// Falls back to the file's defaultMaxShifts when omitted.
	MaxShifts *int `yaml:"maxShifts,omitempty" validate:"omitempty,min=0"`
}

// CoverageSpec sets the exact headcount for one day × slot cell
type CoverageSpec struct {
	Day      string `yaml:"day" validate:"required"`
	Slot     string `yaml:"slot" validate:"required"`
	Required int    `yaml:"required" validate:"min=0"`
}

// UnavailableSpec marks one (worker, day, slot) the worker cannot work
type UnavailableSpec struct {
	Worker string `yaml:"worker" validate:"required"`
	Day    string `yaml:"day" validate:"required"`
	Slot   string `yaml:"slot" validate:"required"`
}

// CalendarSpec derives the day list from a recurrence rule instead of an
// explicit days list
type CalendarSpec struct {
	// RRule is an RFC 5545 recurrence rule (e.g. "FREQ=DAILY")
	RRule string `yaml:"rrule" validate:"required"`

	// Start is the first candidate date, formatted 2006-01-02
	Start string `yaml:"start" validate:"required"`

	// Count is the number of days to generate
	Count int `yaml:"count" validate:"min=1"`
}

// File is the YAML problem definition
type File struct {
	// Days lists the ordered calendar days. Mutually exclusive with Calendar.
	Days []string `yaml:"days,omitempty"`

	// Calendar expands a recurrence rule into the day list
	Calendar *CalendarSpec `yaml:"calendar,omitempty"`

	// Slots lists the ordered time-of-day categories
	Slots []string `yaml:"slots" validate:"required,min=1"`

	Workers []WorkerSpec `yaml:"workers" validate:"required,min=1,dive"`

	// DefaultMaxShifts applies to workers without an explicit maxShifts
	DefaultMaxShifts *int `yaml:"defaultMaxShifts,omitempty" validate:"omitempty,min=0"`

	// DefaultRequired seeds every cell's coverage before Coverage overrides
	DefaultRequired *int `yaml:"defaultRequired,omitempty" validate:"omitempty,min=0"`

	Coverage []CoverageSpec `yaml:"coverage,omitempty" validate:"dive"`

	Unavailable []UnavailableSpec `yaml:"unavailable,omitempty" validate:"dive"`
}

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// Load reads, validates and expands a problem file into a core Problem
func Load(path string) (*roster.Problem, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read problem file: %w", err)
	}
	return Parse(data)
}

// Parse validates and expands raw YAML into a core Problem
func Parse(data []byte) (*roster.Problem, error) {
	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse problem file: %w", err)
	}

	if err := validate.Struct(&file); err != nil {
		return nil, fmt.Errorf("problem file validation failed: %w", err)
	}

	days, err := resolveDays(&file)
	if err != nil {
		return nil, err
	}

	problem := &roster.Problem{
		Workers:  make([]roster.WorkerID, 0, len(file.Workers)),
		Days:     make([]roster.Day, 0, len(days)),
		Slots:    make([]roster.Slot, 0, len(file.Slots)),
		Coverage: make(map[roster.SlotKey]int, len(days)*len(file.Slots)),
		Caps:     make(map[roster.WorkerID]int, len(file.Workers)),
	}

	for _, d := range days {
		problem.Days = append(problem.Days, roster.Day(d))
	}
	for _, s := range file.Slots {
		problem.Slots = append(problem.Slots, roster.Slot(s))
	}

	for _, w := range file.Workers {
		id := roster.WorkerID(w.ID)
		problem.Workers = append(problem.Workers, id)
		switch {
		case w.MaxShifts != nil:
			problem.Caps[id] = *w.MaxShifts
		case file.DefaultMaxShifts != nil:
			problem.Caps[id] = *file.DefaultMaxShifts
		default:
			return nil, fmt.Errorf("worker %q has no maxShifts and the file sets no defaultMaxShifts", w.ID)
		}
	}

	// Seed the full grid from the default, then apply explicit overrides.
	// The expansion happens here so the core still receives a total table.
	if file.DefaultRequired != nil {
		for _, d := range problem.Days {
			for _, s := range problem.Slots {
				problem.Coverage[roster.SlotKey{Day: d, Slot: s}] = *file.DefaultRequired
			}
		}
	}
	for _, c := range file.Coverage {
		problem.Coverage[roster.SlotKey{Day: roster.Day(c.Day), Slot: roster.Slot(c.Slot)}] = c.Required
	}

	for _, u := range file.Unavailable {
		problem.Unavailable = append(problem.Unavailable, roster.Unavailability{
			Worker: roster.WorkerID(u.Worker),
			Day:    roster.Day(u.Day),
			Slot:   roster.Slot(u.Slot),
		})
	}

	if err := problem.Validate(); err != nil {
		return nil, err
	}

	return problem, nil
}

// resolveDays returns the explicit day list or the expanded calendar
func resolveDays(file *File) ([]string, error) {
	switch {
	case len(file.Days) > 0 && file.Calendar != nil:
		return nil, fmt.Errorf("problem file sets both days and calendar, pick one")
	case len(file.Days) > 0:
		return file.Days, nil
	case file.Calendar != nil:
		return ExpandCalendar(file.Calendar)
	default:
		return nil, fmt.Errorf("problem file sets neither days nor calendar")
	}
}
