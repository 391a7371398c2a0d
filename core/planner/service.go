package planner

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/classtrack/classtrack/core"
	"github.com/classtrack/classtrack/core/gradebook"
)

var ErrNotFound = errors.New("lesson plan not found")

type (
	Repository interface {
		CreateLessonPlan(ctx context.Context, np NewLessonPlan) (LessonPlan, error)
		QueryAllLessonPlans(ctx context.Context) ([]LessonPlan, error)
		GetLessonPlanByID(ctx context.Context, id string) (LessonPlan, error)
		UpdateLessonPlan(ctx context.Context, id string, up UpdateLessonPlan) (LessonPlan, error)
		DeleteLessonPlan(ctx context.Context, id string) error
	}

	Service struct {
		repo        Repository
		assignments gradebook.AssignmentRepository
	}
)

func NewService(repo Repository, assignments gradebook.AssignmentRepository) *Service {
	return &Service{repo: repo, assignments: assignments}
}

func (svc *Service) Create(ctx context.Context, np NewLessonPlan) (LessonPlan, error) {
	return svc.repo.CreateLessonPlan(ctx, np)
}

func (svc *Service) QueryAll(ctx context.Context) ([]LessonPlan, error) {
	return svc.repo.QueryAllLessonPlans(ctx)
}

func (svc *Service) GetByID(ctx context.Context, id string) (LessonPlan, error) {
	return svc.repo.GetLessonPlanByID(ctx, id)
}

func (svc *Service) Update(ctx context.Context, id string, up UpdateLessonPlan) (LessonPlan, error) {
	return svc.repo.UpdateLessonPlan(ctx, id, up)
}

func (svc *Service) Delete(ctx context.Context, id string) error {
	return svc.repo.DeleteLessonPlan(ctx, id)
}

// Reschedule moves a lesson plan to another calendar day (the planner's
// drag-and-drop).
func (svc *Service) Reschedule(ctx context.Context, id string, date time.Time) (LessonPlan, error) {
	day := core.DateOnly(date)
	return svc.repo.UpdateLessonPlan(ctx, id, UpdateLessonPlan{Date: &day})
}

// Week returns the lesson plans of t's week bucketed per day, Sunday
// through Saturday.
func (svc *Service) Week(ctx context.Context, t time.Time) ([][]LessonPlan, []time.Time, error) {
	plans, err := svc.repo.QueryAllLessonPlans(ctx)
	if err != nil {
		return nil, nil, err
	}

	days := WeekDates(t)
	buckets := make([][]LessonPlan, len(days))
	for i, day := range days {
		buckets[i] = make([]LessonPlan, 0)
		for _, p := range plans {
			if core.SameDay(p.Date, day) {
				buckets[i] = append(buckets[i], p)
			}
		}
	}
	return buckets, days, nil
}

func (svc *Service) load(ctx context.Context) ([]LessonPlan, []gradebook.Assignment, error) {
	var (
		plans       []LessonPlan
		assignments []gradebook.Assignment
	)
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		plans, err = svc.repo.QueryAllLessonPlans(ctx)
		return err
	})
	g.Go(func() (err error) {
		assignments, err = svc.assignments.QueryAllAssignments(ctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return plans, assignments, nil
}

// MonthCell is one calendar grid cell with its day's events. Blank
// cells pad the first week up to the month's starting weekday.
type MonthCell struct {
	Date   *time.Time `json:"date"`
	Events []Event    `json:"events,omitempty"`
}

// Month builds the month view: the full display grid with each day's
// events attached.
func (svc *Service) Month(ctx context.Context, year int, month time.Month) ([]MonthCell, error) {
	plans, assignments, err := svc.load(ctx)
	if err != nil {
		return nil, err
	}

	grid := MonthGrid(year, month)
	cells := make([]MonthCell, len(grid))
	for i, d := range grid {
		cells[i] = MonthCell{Date: d}
		if d != nil {
			cells[i].Events = EventsOnDate(*d, plans, assignments)
		}
	}
	return cells, nil
}

// Upcoming returns up to max events from the 7-day window starting
// today.
func (svc *Service) Upcoming(ctx context.Context, today time.Time, max int) ([]Event, error) {
	plans, assignments, err := svc.load(ctx)
	if err != nil {
		return nil, err
	}
	return Upcoming(today, plans, assignments, max), nil
}
