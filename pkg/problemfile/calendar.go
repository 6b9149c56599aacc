package problemfile

import (
	"fmt"
	"time"

	"github.com/teambition/rrule-go"
)

// dateLayout is the day-label format used for expanded calendars
const dateLayout = "2006-01-02"

// expansionHorizon bounds how far past the start date occurrences are
// collected, so open-ended rules cannot expand forever
const expansionHorizon = 366 * 24 * time.Hour

// ExpandCalendar expands a recurrence-rule calendar into ordered day labels
func ExpandCalendar(cal *CalendarSpec) ([]string, error) {
	rule, err := rrule.StrToRRule(cal.RRule)
	if err != nil {
		return nil, fmt.Errorf("failed to parse calendar rrule: %w", err)
	}

	start, err := time.Parse(dateLayout, cal.Start)
	if err != nil {
		return nil, fmt.Errorf("failed to parse calendar start date: %w", err)
	}

	rule.DTStart(start)
	occurrences := rule.Between(start, start.Add(expansionHorizon), true)
	if len(occurrences) < cal.Count {
		return nil, fmt.Errorf("calendar rrule yields %d days within a year, %d requested", len(occurrences), cal.Count)
	}

	days := make([]string, cal.Count)
	for i := 0; i < cal.Count; i++ {
		days[i] = occurrences[i].Format(dateLayout)
	}
	return days, nil
}
