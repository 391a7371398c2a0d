package record

import (
	"context"
	"time"

	"github.com/classtrack/classtrack/core/roster"
)

type StudentRepository struct {
	store Store
}

var _ roster.StudentRepository = (*StudentRepository)(nil)

func NewStudentRepository(store Store) *StudentRepository {
	return &StudentRepository{store: store}
}

func decodeStudent(rec Record) roster.Student {
	return roster.Student{
		ID:            fieldString(rec, "id"),
		FirstName:     fieldString(rec, "first_name"),
		LastName:      fieldString(rec, "last_name"),
		Email:         fieldString(rec, "email"),
		ParentContact: fieldNullString(rec, "parent_contact"),
		Notes:         fieldNullString(rec, "notes"),
		PhotoURL:      fieldString(rec, "photo_url"),
		CreatedAt:     fieldTime(rec, "created_at"),
		UpdatedAt:     fieldTime(rec, "updated_at"),
	}
}

func (repo *StudentRepository) CreateStudent(ctx context.Context, ns roster.NewStudent) (roster.Student, error) {
	now := encodeTime(time.Now())
	rec := Record{
		"first_name": ns.FirstName,
		"last_name":  ns.LastName,
		"email":      ns.Email,
		"photo_url":  ns.PhotoURL,
		"created_at": now,
		"updated_at": now,
	}
	if ns.ParentContact.Valid {
		rec["parent_contact"] = ns.ParentContact.String
	}
	if ns.Notes.Valid {
		rec["notes"] = ns.Notes.String
	}

	out, err := repo.store.Create(ctx, TableStudents, rec)
	if err != nil {
		return roster.Student{}, err
	}
	return decodeStudent(out), nil
}

func (repo *StudentRepository) QueryAllStudents(ctx context.Context) ([]roster.Student, error) {
	recs, err := repo.store.List(ctx, TableStudents)
	if err != nil {
		return nil, err
	}
	students := make([]roster.Student, len(recs))
	for i, rec := range recs {
		students[i] = decodeStudent(rec)
	}
	return students, nil
}

func (repo *StudentRepository) GetStudentByID(ctx context.Context, id string) (roster.Student, error) {
	rec, err := repo.store.Get(ctx, TableStudents, id)
	if err == ErrNotFound {
		return roster.Student{}, roster.ErrStudentNotFound
	} else if err != nil {
		return roster.Student{}, err
	}
	return decodeStudent(rec), nil
}

func (repo *StudentRepository) UpdateStudent(ctx context.Context, id string, us roster.UpdateStudent) (roster.Student, error) {
	rec := Record{"updated_at": encodeTime(time.Now())}
	if us.FirstName != nil {
		rec["first_name"] = *us.FirstName
	}
	if us.LastName != nil {
		rec["last_name"] = *us.LastName
	}
	if us.Email != nil {
		rec["email"] = *us.Email
	}
	if us.ParentContact.Valid {
		rec["parent_contact"] = us.ParentContact.String
	}
	if us.Notes.Valid {
		rec["notes"] = us.Notes.String
	}
	if us.PhotoURL != nil {
		rec["photo_url"] = *us.PhotoURL
	}

	out, err := repo.store.Update(ctx, TableStudents, id, rec)
	if err == ErrNotFound {
		return roster.Student{}, roster.ErrStudentNotFound
	} else if err != nil {
		return roster.Student{}, err
	}
	return decodeStudent(out), nil
}

func (repo *StudentRepository) DeleteStudent(ctx context.Context, id string) error {
	if err := repo.store.Delete(ctx, TableStudents, id); err == ErrNotFound {
		return roster.ErrStudentNotFound
	} else if err != nil {
		return err
	}
	return nil
}
