package record

import (
	"context"

	"github.com/classtrack/classtrack/core/gradebook"
)

type GradeRepository struct {
	store Store
}

var _ gradebook.GradeRepository = (*GradeRepository)(nil)

func NewGradeRepository(store Store) *GradeRepository {
	return &GradeRepository{store: store}
}

func decodeGrade(rec Record) gradebook.Grade {
	return gradebook.Grade{
		ID:            fieldString(rec, "id"),
		StudentID:     fieldString(rec, "student_id"),
		AssignmentID:  fieldString(rec, "assignment_id"),
		Score:         fieldFloat(rec, "score"),
		SubmittedDate: fieldTime(rec, "submitted_date"),
		Feedback:      fieldNullString(rec, "feedback"),
	}
}

func (repo *GradeRepository) CreateGrade(ctx context.Context, ng gradebook.NewGrade) (gradebook.Grade, error) {
	rec := Record{
		"student_id":     ng.StudentID,
		"assignment_id":  ng.AssignmentID,
		"score":          ng.Score,
		"submitted_date": encodeDay(ng.SubmittedDate),
	}
	if ng.Feedback.Valid {
		rec["feedback"] = ng.Feedback.String
	}

	out, err := repo.store.Create(ctx, TableGrades, rec)
	if err != nil {
		return gradebook.Grade{}, err
	}
	return decodeGrade(out), nil
}

func (repo *GradeRepository) QueryAllGrades(ctx context.Context) ([]gradebook.Grade, error) {
	recs, err := repo.store.List(ctx, TableGrades)
	if err != nil {
		return nil, err
	}
	grades := make([]gradebook.Grade, len(recs))
	for i, rec := range recs {
		grades[i] = decodeGrade(rec)
	}
	return grades, nil
}

func (repo *GradeRepository) GetGradeByID(ctx context.Context, id string) (gradebook.Grade, error) {
	rec, err := repo.store.Get(ctx, TableGrades, id)
	if err == ErrNotFound {
		return gradebook.Grade{}, gradebook.ErrGradeNotFound
	} else if err != nil {
		return gradebook.Grade{}, err
	}
	return decodeGrade(rec), nil
}

func (repo *GradeRepository) UpdateGrade(ctx context.Context, id string, ug gradebook.UpdateGrade) (gradebook.Grade, error) {
	rec := Record{}
	if ug.Score != nil {
		rec["score"] = *ug.Score
	}
	if ug.SubmittedDate != nil {
		rec["submitted_date"] = encodeDay(*ug.SubmittedDate)
	}
	if ug.Feedback.Valid {
		rec["feedback"] = ug.Feedback.String
	}

	out, err := repo.store.Update(ctx, TableGrades, id, rec)
	if err == ErrNotFound {
		return gradebook.Grade{}, gradebook.ErrGradeNotFound
	} else if err != nil {
		return gradebook.Grade{}, err
	}
	return decodeGrade(out), nil
}

func (repo *GradeRepository) DeleteGrade(ctx context.Context, id string) error {
	if err := repo.store.Delete(ctx, TableGrades, id); err == ErrNotFound {
		return gradebook.ErrGradeNotFound
	} else if err != nil {
		return err
	}
	return nil
}
