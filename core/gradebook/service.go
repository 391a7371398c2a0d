package gradebook

import (
	"context"
	"fmt"
	"time"

	"github.com/pkg/errors"
	"github.com/volatiletech/null/v8"
	"golang.org/x/sync/errgroup"

	"github.com/classtrack/classtrack/core"
	"github.com/classtrack/classtrack/core/roster"
)

var (
	// errors
	ErrAssignmentNotFound = errors.New("assignment not found")
	ErrGradeNotFound      = errors.New("grade not found")
)

type (
	AssignmentRepository interface {
		CreateAssignment(ctx context.Context, na NewAssignment) (Assignment, error)
		QueryAllAssignments(ctx context.Context) ([]Assignment, error)
		GetAssignmentByID(ctx context.Context, id string) (Assignment, error)
		UpdateAssignment(ctx context.Context, id string, ua UpdateAssignment) (Assignment, error)
		DeleteAssignment(ctx context.Context, id string) error
	}

	GradeRepository interface {
		CreateGrade(ctx context.Context, ng NewGrade) (Grade, error)
		QueryAllGrades(ctx context.Context) ([]Grade, error)
		GetGradeByID(ctx context.Context, id string) (Grade, error)
		UpdateGrade(ctx context.Context, id string, ug UpdateGrade) (Grade, error)
		DeleteGrade(ctx context.Context, id string) error
	}

	Service struct {
		assignments AssignmentRepository
		grades      GradeRepository
		students    roster.StudentRepository
		classes     roster.ClassRepository
	}
)

func NewService(
	assignments AssignmentRepository,
	grades GradeRepository,
	students roster.StudentRepository,
	classes roster.ClassRepository,
) *Service {
	return &Service{
		assignments: assignments,
		grades:      grades,
		students:    students,
		classes:     classes,
	}
}

func (svc *Service) CreateAssignment(ctx context.Context, na NewAssignment) (Assignment, error) {
	return svc.assignments.CreateAssignment(ctx, na)
}

func (svc *Service) QueryAllAssignments(ctx context.Context) ([]Assignment, error) {
	return svc.assignments.QueryAllAssignments(ctx)
}

func (svc *Service) GetAssignment(ctx context.Context, id string) (Assignment, error) {
	return svc.assignments.GetAssignmentByID(ctx, id)
}

func (svc *Service) UpdateAssignment(ctx context.Context, id string, ua UpdateAssignment) (Assignment, error) {
	return svc.assignments.UpdateAssignment(ctx, id, ua)
}

// DeleteAssignment does not cascade: grades referencing the assignment
// become orphans and are skipped by the aggregation functions.
func (svc *Service) DeleteAssignment(ctx context.Context, id string) error {
	return svc.assignments.DeleteAssignment(ctx, id)
}

func (svc *Service) CreateGrade(ctx context.Context, ng NewGrade) (Grade, error) {
	return svc.grades.CreateGrade(ctx, ng)
}

func (svc *Service) QueryAllGrades(ctx context.Context) ([]Grade, error) {
	return svc.grades.QueryAllGrades(ctx)
}

func (svc *Service) GetGrade(ctx context.Context, id string) (Grade, error) {
	return svc.grades.GetGradeByID(ctx, id)
}

func (svc *Service) UpdateGrade(ctx context.Context, id string, ug UpdateGrade) (Grade, error) {
	return svc.grades.UpdateGrade(ctx, id, ug)
}

func (svc *Service) DeleteGrade(ctx context.Context, id string) error {
	return svc.grades.DeleteGrade(ctx, id)
}

// RecordScore records or overwrites a student's score on an assignment.
// The score must fall within [0, assignment.Points]. If a grade already
// exists for the (student, assignment) pair the first one is updated,
// otherwise a new grade is created with the current submission date.
func (svc *Service) RecordScore(ctx context.Context, in ScoreInput) (Grade, error) {
	a, err := svc.assignments.GetAssignmentByID(ctx, in.AssignmentID)
	if err != nil {
		return Grade{}, err
	}
	if in.Score < 0 || in.Score > a.Points {
		return Grade{}, core.NewValidationError(nil, core.FieldError{
			Field: "score",
			Error: fmt.Sprintf("score must be between 0 and %g", a.Points),
		})
	}

	grades, err := svc.grades.QueryAllGrades(ctx)
	if err != nil {
		return Grade{}, errors.Wrap(err, "querying grades")
	}

	now := time.Now().UTC()
	if g, ok := FindGrade(in.StudentID, in.AssignmentID, grades); ok {
		return svc.grades.UpdateGrade(ctx, g.ID, UpdateGrade{
			Score:         &in.Score,
			SubmittedDate: &now,
		})
	}
	return svc.grades.CreateGrade(ctx, NewGrade{
		StudentID:     in.StudentID,
		AssignmentID:  in.AssignmentID,
		Score:         in.Score,
		SubmittedDate: now,
	})
}

type (
	// GridCell is one (student, assignment) gradebook cell.
	GridCell struct {
		AssignmentID string       `json:"assignment_id"`
		Grade        *Grade       `json:"grade,omitempty"`
		Percent      null.Float64 `json:"percent"`
		Band         Band         `json:"band,omitempty"`
	}

	GridRow struct {
		Student roster.Student `json:"student"`
		Cells   []GridCell     `json:"cells"`
		Average null.Float64   `json:"average"`
		Band    Band           `json:"band,omitempty"`
	}

	Grid struct {
		Class       roster.Class `json:"class"`
		Assignments []Assignment `json:"assignments"`
		Rows        []GridRow    `json:"rows"`
	}
)

// BuildGrid joins one class's roster, assignments and grades into the
// gradebook grid. Pure; inputs are full snapshots.
func BuildGrid(cls roster.Class, students []roster.Student, assignments []Assignment, grades []Grade) Grid {
	classAssignments := ClassAssignments(cls.ID, assignments)
	enrolled := roster.ResolveRoster(cls, students)

	rows := make([]GridRow, 0, len(enrolled))
	for _, s := range enrolled {
		row := GridRow{Student: s, Cells: make([]GridCell, 0, len(classAssignments))}
		for _, a := range classAssignments {
			cell := GridCell{AssignmentID: a.ID}
			if g, ok := FindGrade(s.ID, a.ID, grades); ok {
				g := g
				pct := g.Score / a.Points * 100
				cell.Grade = &g
				cell.Percent = null.Float64From(pct)
				cell.Band = ClassifyPercentage(pct)
			}
			row.Cells = append(row.Cells, cell)
		}
		if avg, ok := StudentAverage(s.ID, classAssignments, grades); ok {
			row.Average = null.Float64From(avg)
			row.Band = ClassifyPercentage(avg)
		}
		rows = append(rows, row)
	}

	return Grid{Class: cls, Assignments: classAssignments, Rows: rows}
}

// Grid loads the snapshots for one class in parallel and joins them.
// The fetches fail as a unit: any error surfaces as the page error.
func (svc *Service) Grid(ctx context.Context, classID string) (Grid, error) {
	var (
		cls         roster.Class
		students    []roster.Student
		assignments []Assignment
		grades      []Grade
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		cls, err = svc.classes.GetClassByID(ctx, classID)
		return err
	})
	g.Go(func() (err error) {
		students, err = svc.students.QueryAllStudents(ctx)
		return err
	})
	g.Go(func() (err error) {
		assignments, err = svc.assignments.QueryAllAssignments(ctx)
		return err
	})
	g.Go(func() (err error) {
		grades, err = svc.grades.QueryAllGrades(ctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return Grid{}, err
	}

	return BuildGrid(cls, students, assignments, grades), nil
}

// ClassAverage is one class's standing for a single student.
type ClassAverage struct {
	ClassID   string       `json:"class_id"`
	ClassName string       `json:"class_name"`
	Average   null.Float64 `json:"average"`
	Band      Band         `json:"band,omitempty"`
}

// StudentAverages computes the student's average in every class they
// are enrolled in. Classes where the student has no recorded grades
// report a null average, not zero.
func (svc *Service) StudentAverages(ctx context.Context, studentID string) ([]ClassAverage, error) {
	var (
		classes     []roster.Class
		assignments []Assignment
		grades      []Grade
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		classes, err = svc.classes.QueryAllClasses(ctx)
		return err
	})
	g.Go(func() (err error) {
		assignments, err = svc.assignments.QueryAllAssignments(ctx)
		return err
	})
	g.Go(func() (err error) {
		grades, err = svc.grades.QueryAllGrades(ctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make([]ClassAverage, 0, len(classes))
	for _, cls := range classes {
		enrolled := false
		for _, id := range cls.StudentIDs {
			if id == studentID {
				enrolled = true
				break
			}
		}
		if !enrolled {
			continue
		}
		ca := ClassAverage{ClassID: cls.ID, ClassName: cls.Name}
		if avg, ok := StudentAverage(studentID, ClassAssignments(cls.ID, assignments), grades); ok {
			ca.Average = null.Float64From(avg)
			ca.Band = ClassifyPercentage(avg)
		}
		out = append(out, ca)
	}
	return out, nil
}
