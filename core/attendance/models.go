package attendance

import (
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/classtrack/classtrack/core"
)

// Status is a single day's attendance mark.
type Status string

const (
	StatusPresent Status = "present"
	StatusAbsent  Status = "absent"
	StatusLate    Status = "late"
	StatusExcused Status = "excused"
)

var Statuses = []Status{StatusPresent, StatusAbsent, StatusLate, StatusExcused}

func (s Status) Valid() bool {
	for _, known := range Statuses {
		if s == known {
			return true
		}
	}
	return false
}

type Record struct {
	ID        string    `json:"id"`
	StudentID string    `json:"student_id"`
	Date      time.Time `json:"date"` // calendar day
	Status    Status    `json:"status"`
}

// Rate is the student's attendance rate as a percentage of records
// marked present. A student with no records rates 0, not "undefined",
// the opposite of gradebook.StudentAverage's empty policy. The two
// pages have always displayed it that way ("0%" vs a dash), so the
// asymmetry is kept on purpose; see DESIGN.md.
func Rate(studentID string, records []Record) float64 {
	var present, total int
	for _, r := range records {
		if r.StudentID != studentID {
			continue
		}
		total++
		if r.Status == StatusPresent {
			present++
		}
	}
	if total == 0 {
		return 0
	}
	return float64(present) / float64(total) * 100
}

// DaySummary is one calendar day's attendance across all students.
type DaySummary struct {
	Present int     `json:"present"`
	Total   int     `json:"total"`
	Rate    float64 `json:"rate"`
}

// SummarizeDay computes the attendance summary for one calendar day.
// Rate is 0 when the day has no records.
func SummarizeDay(day time.Time, records []Record) DaySummary {
	var s DaySummary
	for _, r := range records {
		if !core.SameDay(r.Date, day) {
			continue
		}
		s.Total++
		if r.Status == StatusPresent {
			s.Present++
		}
	}
	if s.Total > 0 {
		s.Rate = float64(s.Present) / float64(s.Total) * 100
	}
	return s
}

// NewRecord contains information needed to record attendance.
type NewRecord struct {
	StudentID string    `json:"student_id" validate:"required"`
	Date      time.Time `json:"date" validate:"required"`
	Status    Status    `json:"status" validate:"required,oneof=present absent late excused"`
}

func (nr *NewRecord) Validate(validate *validator.Validate) error {
	return validate.Struct(nr)
}

// UpdateRecord defines what information may be provided to modify an
// existing attendance record. Nil fields are left untouched.
type UpdateRecord struct {
	Date   *time.Time `json:"date"`
	Status *Status    `json:"status" validate:"omitempty,oneof=present absent late excused"`
}

func (ur *UpdateRecord) Validate(validate *validator.Validate) error {
	return validate.Struct(ur)
}
