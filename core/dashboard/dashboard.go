// Package dashboard assembles the landing-page overview: every entity
// snapshot is fetched in parallel and reduced to today's headline
// numbers. The fetches fail as a unit: the page shows one error state
// rather than partial data.
package dashboard

import (
	"context"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/classtrack/classtrack/core"
	"github.com/classtrack/classtrack/core/attendance"
	"github.com/classtrack/classtrack/core/gradebook"
	"github.com/classtrack/classtrack/core/planner"
	"github.com/classtrack/classtrack/core/roster"
)

// Snapshot is a point-in-time copy of every entity collection. It is
// not kept in sync with the store; views re-merge their own mutations.
type Snapshot struct {
	Students    []roster.Student
	Classes     []roster.Class
	Assignments []gradebook.Assignment
	Grades      []gradebook.Grade
	Attendance  []attendance.Record
	LessonPlans []planner.LessonPlan
}

type Service struct {
	students    roster.StudentRepository
	classes     roster.ClassRepository
	assignments gradebook.AssignmentRepository
	grades      gradebook.GradeRepository
	attendance  attendance.Repository
	lessonPlans planner.Repository
}

func NewService(
	students roster.StudentRepository,
	classes roster.ClassRepository,
	assignments gradebook.AssignmentRepository,
	grades gradebook.GradeRepository,
	att attendance.Repository,
	lessonPlans planner.Repository,
) *Service {
	return &Service{
		students:    students,
		classes:     classes,
		assignments: assignments,
		grades:      grades,
		attendance:  att,
		lessonPlans: lessonPlans,
	}
}

// Load fetches all six collections in parallel.
func (svc *Service) Load(ctx context.Context) (Snapshot, error) {
	var snap Snapshot

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		snap.Students, err = svc.students.QueryAllStudents(ctx)
		return err
	})
	g.Go(func() (err error) {
		snap.Classes, err = svc.classes.QueryAllClasses(ctx)
		return err
	})
	g.Go(func() (err error) {
		snap.Assignments, err = svc.assignments.QueryAllAssignments(ctx)
		return err
	})
	g.Go(func() (err error) {
		snap.Grades, err = svc.grades.QueryAllGrades(ctx)
		return err
	})
	g.Go(func() (err error) {
		snap.Attendance, err = svc.attendance.QueryAllRecords(ctx)
		return err
	})
	g.Go(func() (err error) {
		snap.LessonPlans, err = svc.lessonPlans.QueryAllLessonPlans(ctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return Snapshot{}, err
	}
	return snap, nil
}

type Overview struct {
	TodayClasses        []roster.Class         `json:"today_classes"`
	UpcomingAssignments []gradebook.Assignment `json:"upcoming_assignments"`
	RecentGrades        []gradebook.Grade      `json:"recent_grades"`
	Attendance          attendance.DaySummary  `json:"attendance"`
	TotalStudents       int                    `json:"total_students"`
}

const overviewListMax = 5

// BuildOverview reduces a snapshot to the dashboard numbers for the
// given moment. Pure. TotalStudents counts enrollments, so a student
// in two classes counts twice; it is a seats metric, not a headcount.
func BuildOverview(now time.Time, snap Snapshot) Overview {
	today := now.Weekday()
	todayClasses := make([]roster.Class, 0)
	for _, cls := range snap.Classes {
		if cls.MeetsOn(today) {
			todayClasses = append(todayClasses, cls)
		}
	}

	upcoming := make([]gradebook.Assignment, 0)
	for _, a := range snap.Assignments {
		if !a.DueDate.Before(core.DateOnly(now)) {
			upcoming = append(upcoming, a)
		}
	}
	sort.SliceStable(upcoming, func(i, j int) bool {
		return upcoming[i].DueDate.Before(upcoming[j].DueDate)
	})
	if len(upcoming) > overviewListMax {
		upcoming = upcoming[:overviewListMax]
	}

	var totalStudents int
	for _, cls := range snap.Classes {
		totalStudents += len(cls.StudentIDs)
	}

	return Overview{
		TodayClasses:        todayClasses,
		UpcomingAssignments: upcoming,
		RecentGrades:        gradebook.RecentGrades(snap.Grades, overviewListMax),
		Attendance:          attendance.SummarizeDay(now, snap.Attendance),
		TotalStudents:       totalStudents,
	}
}

// Overview loads a fresh snapshot and builds the overview for now.
func (svc *Service) Overview(ctx context.Context) (Overview, error) {
	snap, err := svc.Load(ctx)
	if err != nil {
		return Overview{}, err
	}
	return BuildOverview(time.Now(), snap), nil
}
