package record

import (
	"context"

	"github.com/classtrack/classtrack/core/attendance"
)

type AttendanceRepository struct {
	store Store
}

var _ attendance.Repository = (*AttendanceRepository)(nil)

func NewAttendanceRepository(store Store) *AttendanceRepository {
	return &AttendanceRepository{store: store}
}

func decodeAttendance(rec Record) attendance.Record {
	return attendance.Record{
		ID:        fieldString(rec, "id"),
		StudentID: fieldString(rec, "student_id"),
		Date:      fieldTime(rec, "date"),
		Status:    attendance.Status(fieldString(rec, "status")),
	}
}

func (repo *AttendanceRepository) CreateRecord(ctx context.Context, nr attendance.NewRecord) (attendance.Record, error) {
	rec := Record{
		"student_id": nr.StudentID,
		"date":       encodeDay(nr.Date),
		"status":     string(nr.Status),
	}

	out, err := repo.store.Create(ctx, TableAttendance, rec)
	if err != nil {
		return attendance.Record{}, err
	}
	return decodeAttendance(out), nil
}

func (repo *AttendanceRepository) QueryAllRecords(ctx context.Context) ([]attendance.Record, error) {
	recs, err := repo.store.List(ctx, TableAttendance)
	if err != nil {
		return nil, err
	}
	records := make([]attendance.Record, len(recs))
	for i, rec := range recs {
		records[i] = decodeAttendance(rec)
	}
	return records, nil
}

func (repo *AttendanceRepository) GetRecordByID(ctx context.Context, id string) (attendance.Record, error) {
	rec, err := repo.store.Get(ctx, TableAttendance, id)
	if err == ErrNotFound {
		return attendance.Record{}, attendance.ErrNotFound
	} else if err != nil {
		return attendance.Record{}, err
	}
	return decodeAttendance(rec), nil
}

func (repo *AttendanceRepository) UpdateRecord(ctx context.Context, id string, ur attendance.UpdateRecord) (attendance.Record, error) {
	rec := Record{}
	if ur.Date != nil {
		rec["date"] = encodeDay(*ur.Date)
	}
	if ur.Status != nil {
		rec["status"] = string(*ur.Status)
	}

	out, err := repo.store.Update(ctx, TableAttendance, id, rec)
	if err == ErrNotFound {
		return attendance.Record{}, attendance.ErrNotFound
	} else if err != nil {
		return attendance.Record{}, err
	}
	return decodeAttendance(out), nil
}

func (repo *AttendanceRepository) DeleteRecord(ctx context.Context, id string) error {
	if err := repo.store.Delete(ctx, TableAttendance, id); err == ErrNotFound {
		return attendance.ErrNotFound
	} else if err != nil {
		return err
	}
	return nil
}
