package problemfile

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/slotworks/shift-solver/pkg/core/roster"
)

// ScheduleEntry is one assignment triple in a schedule file
type ScheduleEntry struct {
	Worker string `yaml:"worker" validate:"required"`
	Day    string `yaml:"day" validate:"required"`
	Slot   string `yaml:"slot" validate:"required"`
}

// ScheduleFile is the YAML representation of a generated schedule
type ScheduleFile struct {
	Entries []ScheduleEntry `yaml:"entries" validate:"dive"`
}

// LoadSchedule reads an assignment from a schedule file
func LoadSchedule(path string) (roster.Assignment, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read schedule file: %w", err)
	}

	var file ScheduleFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse schedule file: %w", err)
	}
	if err := validate.Struct(&file); err != nil {
		return nil, fmt.Errorf("schedule file validation failed: %w", err)
	}

	assignment := make(roster.Assignment, 0, len(file.Entries))
	for _, e := range file.Entries {
		assignment = append(assignment, roster.ShiftAssignment{
			Worker: roster.WorkerID(e.Worker),
			Day:    roster.Day(e.Day),
			Slot:   roster.Slot(e.Slot),
		})
	}
	return assignment, nil
}

// SaveSchedule writes an assignment to a schedule file, preserving the
// solver's day/slot/worker ordering
func SaveSchedule(path string, a roster.Assignment) error {
	file := ScheduleFile{Entries: make([]ScheduleEntry, 0, len(a))}
	for _, sa := range a {
		file.Entries = append(file.Entries, ScheduleEntry{
			Worker: string(sa.Worker),
			Day:    string(sa.Day),
			Slot:   string(sa.Slot),
		})
	}

	data, err := yaml.Marshal(&file)
	if err != nil {
		return fmt.Errorf("failed to marshal schedule: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write schedule file: %w", err)
	}
	return nil
}
