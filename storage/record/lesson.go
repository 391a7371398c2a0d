package record

import (
	"context"
	"time"

	"github.com/classtrack/classtrack/core/planner"
)

type LessonPlanRepository struct {
	store Store
}

var _ planner.Repository = (*LessonPlanRepository)(nil)

func NewLessonPlanRepository(store Store) *LessonPlanRepository {
	return &LessonPlanRepository{store: store}
}

func decodeLessonPlan(rec Record) planner.LessonPlan {
	return planner.LessonPlan{
		ID:         fieldString(rec, "id"),
		ClassID:    fieldString(rec, "class_id"),
		Date:       fieldTime(rec, "date"),
		Title:      fieldString(rec, "title"),
		Objectives: fieldStrings(rec, "objectives"),
		Activities: fieldStrings(rec, "activities"),
		Materials:  fieldStrings(rec, "materials"),
		Homework:   fieldNullString(rec, "homework"),
		CreatedAt:  fieldTime(rec, "created_at"),
		UpdatedAt:  fieldTime(rec, "updated_at"),
	}
}

func (repo *LessonPlanRepository) CreateLessonPlan(ctx context.Context, np planner.NewLessonPlan) (planner.LessonPlan, error) {
	now := encodeTime(time.Now())
	rec := Record{
		"class_id":   np.ClassID,
		"date":       encodeDay(np.Date),
		"title":      np.Title,
		"objectives": encodeStrings(np.Objectives),
		"activities": encodeStrings(np.Activities),
		"materials":  encodeStrings(np.Materials),
		"created_at": now,
		"updated_at": now,
	}
	if np.Homework.Valid {
		rec["homework"] = np.Homework.String
	}

	out, err := repo.store.Create(ctx, TableLessonPlans, rec)
	if err != nil {
		return planner.LessonPlan{}, err
	}
	return decodeLessonPlan(out), nil
}

func (repo *LessonPlanRepository) QueryAllLessonPlans(ctx context.Context) ([]planner.LessonPlan, error) {
	recs, err := repo.store.List(ctx, TableLessonPlans)
	if err != nil {
		return nil, err
	}
	plans := make([]planner.LessonPlan, len(recs))
	for i, rec := range recs {
		plans[i] = decodeLessonPlan(rec)
	}
	return plans, nil
}

func (repo *LessonPlanRepository) GetLessonPlanByID(ctx context.Context, id string) (planner.LessonPlan, error) {
	rec, err := repo.store.Get(ctx, TableLessonPlans, id)
	if err == ErrNotFound {
		return planner.LessonPlan{}, planner.ErrNotFound
	} else if err != nil {
		return planner.LessonPlan{}, err
	}
	return decodeLessonPlan(rec), nil
}

func (repo *LessonPlanRepository) UpdateLessonPlan(ctx context.Context, id string, up planner.UpdateLessonPlan) (planner.LessonPlan, error) {
	rec := Record{"updated_at": encodeTime(time.Now())}
	if up.Date != nil {
		rec["date"] = encodeDay(*up.Date)
	}
	if up.Title != nil {
		rec["title"] = *up.Title
	}
	if up.Objectives != nil {
		rec["objectives"] = encodeStrings(*up.Objectives)
	}
	if up.Activities != nil {
		rec["activities"] = encodeStrings(*up.Activities)
	}
	if up.Materials != nil {
		rec["materials"] = encodeStrings(*up.Materials)
	}
	if up.Homework.Valid {
		rec["homework"] = up.Homework.String
	}

	out, err := repo.store.Update(ctx, TableLessonPlans, id, rec)
	if err == ErrNotFound {
		return planner.LessonPlan{}, planner.ErrNotFound
	} else if err != nil {
		return planner.LessonPlan{}, err
	}
	return decodeLessonPlan(out), nil
}

func (repo *LessonPlanRepository) DeleteLessonPlan(ctx context.Context, id string) error {
	if err := repo.store.Delete(ctx, TableLessonPlans, id); err == ErrNotFound {
		return planner.ErrNotFound
	} else if err != nil {
		return err
	}
	return nil
}
