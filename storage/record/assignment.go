package record

import (
	"context"
	"time"

	"github.com/classtrack/classtrack/core/gradebook"
)

type AssignmentRepository struct {
	store Store
}

var _ gradebook.AssignmentRepository = (*AssignmentRepository)(nil)

func NewAssignmentRepository(store Store) *AssignmentRepository {
	return &AssignmentRepository{store: store}
}

func decodeAssignment(rec Record) gradebook.Assignment {
	return gradebook.Assignment{
		ID:        fieldString(rec, "id"),
		ClassID:   fieldString(rec, "class_id"),
		Title:     fieldString(rec, "title"),
		Category:  fieldString(rec, "category"),
		Points:    fieldFloat(rec, "points"),
		DueDate:   fieldTime(rec, "due_date"),
		CreatedAt: fieldTime(rec, "created_at"),
		UpdatedAt: fieldTime(rec, "updated_at"),
	}
}

func (repo *AssignmentRepository) CreateAssignment(ctx context.Context, na gradebook.NewAssignment) (gradebook.Assignment, error) {
	now := encodeTime(time.Now())
	rec := Record{
		"class_id":   na.ClassID,
		"title":      na.Title,
		"category":   na.Category,
		"points":     na.Points,
		"due_date":   encodeDay(na.DueDate),
		"created_at": now,
		"updated_at": now,
	}

	out, err := repo.store.Create(ctx, TableAssignments, rec)
	if err != nil {
		return gradebook.Assignment{}, err
	}
	return decodeAssignment(out), nil
}

func (repo *AssignmentRepository) QueryAllAssignments(ctx context.Context) ([]gradebook.Assignment, error) {
	recs, err := repo.store.List(ctx, TableAssignments)
	if err != nil {
		return nil, err
	}
	assignments := make([]gradebook.Assignment, len(recs))
	for i, rec := range recs {
		assignments[i] = decodeAssignment(rec)
	}
	return assignments, nil
}

func (repo *AssignmentRepository) GetAssignmentByID(ctx context.Context, id string) (gradebook.Assignment, error) {
	rec, err := repo.store.Get(ctx, TableAssignments, id)
	if err == ErrNotFound {
		return gradebook.Assignment{}, gradebook.ErrAssignmentNotFound
	} else if err != nil {
		return gradebook.Assignment{}, err
	}
	return decodeAssignment(rec), nil
}

func (repo *AssignmentRepository) UpdateAssignment(ctx context.Context, id string, ua gradebook.UpdateAssignment) (gradebook.Assignment, error) {
	rec := Record{"updated_at": encodeTime(time.Now())}
	if ua.Title != nil {
		rec["title"] = *ua.Title
	}
	if ua.Category != nil {
		rec["category"] = *ua.Category
	}
	if ua.Points != nil {
		rec["points"] = *ua.Points
	}
	if ua.DueDate != nil {
		rec["due_date"] = encodeDay(*ua.DueDate)
	}

	out, err := repo.store.Update(ctx, TableAssignments, id, rec)
	if err == ErrNotFound {
		return gradebook.Assignment{}, gradebook.ErrAssignmentNotFound
	} else if err != nil {
		return gradebook.Assignment{}, err
	}
	return decodeAssignment(out), nil
}

func (repo *AssignmentRepository) DeleteAssignment(ctx context.Context, id string) error {
	if err := repo.store.Delete(ctx, TableAssignments, id); err == ErrNotFound {
		return gradebook.ErrAssignmentNotFound
	} else if err != nil {
		return err
	}
	return nil
}
