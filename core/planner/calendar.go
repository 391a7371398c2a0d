package planner

import (
	"time"

	"github.com/classtrack/classtrack/core"
	"github.com/classtrack/classtrack/core/gradebook"
)

type EventKind string

const (
	EventLesson     EventKind = "lesson"
	EventAssignment EventKind = "assignment"
)

// DefaultLessonTime is displayed for lessons whose class carries no
// scheduled time.
const DefaultLessonTime = "9:00 AM"

// Event is a calendar-displayable occurrence derived from a lesson
// plan or an assignment due date.
type Event struct {
	ID    string    `json:"id"`
	Title string    `json:"title"`
	Kind  EventKind `json:"kind"`
	Time  string    `json:"time"` // display label; "Due" for assignments
	Date  time.Time `json:"date"`
}

// EventsOnDate collects the events falling on the given calendar day:
// one lesson event per matching lesson plan, then one assignment event
// per assignment due that day. Lessons always list before assignments.
func EventsOnDate(date time.Time, plans []LessonPlan, assignments []gradebook.Assignment) []Event {
	events := make([]Event, 0)
	for _, p := range plans {
		if core.SameDay(p.Date, date) {
			events = append(events, Event{
				ID:    p.ID,
				Title: p.Title,
				Kind:  EventLesson,
				Time:  DefaultLessonTime,
				Date:  core.DateOnly(date),
			})
		}
	}
	for _, a := range assignments {
		if core.SameDay(a.DueDate, date) {
			events = append(events, Event{
				ID:    a.ID,
				Title: a.Title,
				Kind:  EventAssignment,
				Time:  "Due",
				Date:  core.DateOnly(date),
			})
		}
	}
	return events
}

// MonthGrid builds the month's display cells: one nil cell per weekday
// preceding the 1st (weeks start on Sunday), then one cell per day.
// No trailing padding.
func MonthGrid(year int, month time.Month) []*time.Time {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	daysInMonth := first.AddDate(0, 1, -1).Day()

	cells := make([]*time.Time, 0, int(first.Weekday())+daysInMonth)
	for i := 0; i < int(first.Weekday()); i++ {
		cells = append(cells, nil)
	}
	for day := 1; day <= daysInMonth; day++ {
		d := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
		cells = append(cells, &d)
	}
	return cells
}

// AddMonths offsets (year, month) by delta months, rolling over year
// boundaries in both directions.
func AddMonths(year int, month time.Month, delta int) (int, time.Month) {
	t := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).AddDate(0, delta, 0)
	return t.Year(), t.Month()
}

// WeekDates returns the calendar days of t's week, Sunday through
// Saturday.
func WeekDates(t time.Time) []time.Time {
	start := core.DateOnly(t).AddDate(0, 0, -int(t.Weekday()))
	week := make([]time.Time, 7)
	for i := range week {
		week[i] = start.AddDate(0, 0, i)
	}
	return week
}

// Upcoming flattens the events of the 7-day window starting today into
// date order and truncates to max entries. Within a day the order is
// whatever EventsOnDate produced.
func Upcoming(today time.Time, plans []LessonPlan, assignments []gradebook.Assignment, max int) []Event {
	events := make([]Event, 0)
	for i := 0; i < 7; i++ {
		day := core.DateOnly(today).AddDate(0, 0, i)
		events = append(events, EventsOnDate(day, plans, assignments)...)
	}
	if max >= 0 && len(events) > max {
		events = events[:max]
	}
	return events
}
