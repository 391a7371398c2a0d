// Package report composes parent-facing progress report emails from a
// student's gradebook standing and attendance rate.
package report

import (
	"context"
	"fmt"
	"net/mail"
	"strings"

	"github.com/classtrack/classtrack/core"
	"github.com/classtrack/classtrack/core/attendance"
	"github.com/classtrack/classtrack/core/gradebook"
	"github.com/classtrack/classtrack/core/roster"
)

type Service struct {
	students  roster.StudentRepository
	gradebook *gradebook.Service
	atts      *attendance.Service
	mail      core.EmailService
}

func NewService(
	students roster.StudentRepository,
	gb *gradebook.Service,
	atts *attendance.Service,
	mailSvc core.EmailService,
) *Service {
	return &Service{students: students, gradebook: gb, atts: atts, mail: mailSvc}
}

// ProgressReport is the composed report, returned to the caller as
// well as emailed so the page can preview what was sent.
type ProgressReport struct {
	Student        roster.Student           `json:"student"`
	Averages       []gradebook.ClassAverage `json:"averages"`
	AttendanceRate float64                  `json:"attendance_rate"`
	SentTo         string                   `json:"sent_to"`
}

// Send composes the student's progress report and emails it to the
// parent contact on file.
func (svc *Service) Send(ctx context.Context, studentID string) (ProgressReport, error) {
	student, err := svc.students.GetStudentByID(ctx, studentID)
	if err != nil {
		return ProgressReport{}, err
	}
	if !student.ParentContact.Valid {
		return ProgressReport{}, core.NewValidationError(nil, core.FieldError{
			Field: "parent_contact",
			Error: "student has no parent contact on file",
		})
	}

	averages, err := svc.gradebook.StudentAverages(ctx, studentID)
	if err != nil {
		return ProgressReport{}, err
	}
	rate, err := svc.atts.StudentRate(ctx, studentID)
	if err != nil {
		return ProgressReport{}, err
	}

	report := ProgressReport{
		Student:        student,
		Averages:       averages,
		AttendanceRate: rate,
		SentTo:         student.ParentContact.String,
	}
	svc.mail.SendMessages(&core.EmailMessage{
		To:          []mail.Address{{Address: student.ParentContact.String}},
		Subject:     fmt.Sprintf("Progress Report: %s", student.FullName()),
		TextContent: composeBody(report),
	})
	return report, nil
}

func composeBody(r ProgressReport) string {
	b := new(strings.Builder)
	fmt.Fprintf(b, "Progress report for %s\n\n", r.Student.FullName())

	if len(r.Averages) == 0 {
		b.WriteString("No class enrollments on record.\n")
	}
	for _, ca := range r.Averages {
		if ca.Average.Valid {
			fmt.Fprintf(b, "%s: %.1f%% (%s)\n", ca.ClassName, ca.Average.Float64, ca.Band)
		} else {
			fmt.Fprintf(b, "%s: no grades recorded yet\n", ca.ClassName)
		}
	}

	fmt.Fprintf(b, "\nAttendance rate: %.1f%%\n", r.AttendanceRate)
	return b.String()
}
