package record

import (
	"context"
	"time"

	"github.com/classtrack/classtrack/core/roster"
)

type ClassRepository struct {
	store Store
}

var _ roster.ClassRepository = (*ClassRepository)(nil)

func NewClassRepository(store Store) *ClassRepository {
	return &ClassRepository{store: store}
}

func decodeClass(rec Record) roster.Class {
	sched := fieldRecord(rec, "schedule")
	return roster.Class{
		ID:      fieldString(rec, "id"),
		Name:    fieldString(rec, "name"),
		Subject: fieldString(rec, "subject"),
		Period:  fieldString(rec, "period"),
		Room:    fieldString(rec, "room"),
		Schedule: roster.Schedule{
			Time: fieldString(sched, "time"),
			Days: fieldWeekdays(sched, "days"),
		},
		StudentIDs: fieldStrings(rec, "student_ids"),
		CreatedAt:  fieldTime(rec, "created_at"),
		UpdatedAt:  fieldTime(rec, "updated_at"),
	}
}

func encodeSchedule(t string, days []time.Weekday) Record {
	return Record{
		"time": t,
		"days": encodeWeekdays(days),
	}
}

func (repo *ClassRepository) CreateClass(ctx context.Context, nc roster.NewClass) (roster.Class, error) {
	now := encodeTime(time.Now())
	rec := Record{
		"name":        nc.Name,
		"subject":     nc.Subject,
		"period":      nc.Period,
		"room":        nc.Room,
		"schedule":    encodeSchedule(nc.Time, nc.Days),
		"student_ids": encodeStrings(nc.StudentIDs),
		"created_at":  now,
		"updated_at":  now,
	}

	out, err := repo.store.Create(ctx, TableClasses, rec)
	if err != nil {
		return roster.Class{}, err
	}
	return decodeClass(out), nil
}

func (repo *ClassRepository) QueryAllClasses(ctx context.Context) ([]roster.Class, error) {
	recs, err := repo.store.List(ctx, TableClasses)
	if err != nil {
		return nil, err
	}
	classes := make([]roster.Class, len(recs))
	for i, rec := range recs {
		classes[i] = decodeClass(rec)
	}
	return classes, nil
}

func (repo *ClassRepository) GetClassByID(ctx context.Context, id string) (roster.Class, error) {
	rec, err := repo.store.Get(ctx, TableClasses, id)
	if err == ErrNotFound {
		return roster.Class{}, roster.ErrClassNotFound
	} else if err != nil {
		return roster.Class{}, err
	}
	return decodeClass(rec), nil
}

func (repo *ClassRepository) UpdateClass(ctx context.Context, id string, uc roster.UpdateClass) (roster.Class, error) {
	rec := Record{"updated_at": encodeTime(time.Now())}
	if uc.Name != nil {
		rec["name"] = *uc.Name
	}
	if uc.Subject != nil {
		rec["subject"] = *uc.Subject
	}
	if uc.Period != nil {
		rec["period"] = *uc.Period
	}
	if uc.Room != nil {
		rec["room"] = *uc.Room
	}
	if uc.StudentIDs != nil {
		rec["student_ids"] = encodeStrings(*uc.StudentIDs)
	}

	// The schedule document is replaced as a whole; a partial change
	// needs the current value for the half left unset.
	if uc.Time != nil || uc.Days != nil {
		cur, err := repo.GetClassByID(ctx, id)
		if err != nil {
			return roster.Class{}, err
		}
		t, days := cur.Schedule.Time, cur.Schedule.Days
		if uc.Time != nil {
			t = *uc.Time
		}
		if uc.Days != nil {
			days = *uc.Days
		}
		rec["schedule"] = encodeSchedule(t, days)
	}

	out, err := repo.store.Update(ctx, TableClasses, id, rec)
	if err == ErrNotFound {
		return roster.Class{}, roster.ErrClassNotFound
	} else if err != nil {
		return roster.Class{}, err
	}
	return decodeClass(out), nil
}

func (repo *ClassRepository) DeleteClass(ctx context.Context, id string) error {
	if err := repo.store.Delete(ctx, TableClasses, id); err == ErrNotFound {
		return roster.ErrClassNotFound
	} else if err != nil {
		return err
	}
	return nil
}
