package attendance

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("attendance record not found")

type (
	Repository interface {
		CreateRecord(ctx context.Context, nr NewRecord) (Record, error)
		QueryAllRecords(ctx context.Context) ([]Record, error)
		GetRecordByID(ctx context.Context, id string) (Record, error)
		UpdateRecord(ctx context.Context, id string, ur UpdateRecord) (Record, error)
		DeleteRecord(ctx context.Context, id string) error
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) Create(ctx context.Context, nr NewRecord) (Record, error) {
	return svc.repo.CreateRecord(ctx, nr)
}

func (svc *Service) QueryAll(ctx context.Context) ([]Record, error) {
	return svc.repo.QueryAllRecords(ctx)
}

func (svc *Service) GetByID(ctx context.Context, id string) (Record, error) {
	return svc.repo.GetRecordByID(ctx, id)
}

func (svc *Service) Update(ctx context.Context, id string, ur UpdateRecord) (Record, error) {
	return svc.repo.UpdateRecord(ctx, id, ur)
}

func (svc *Service) Delete(ctx context.Context, id string) error {
	return svc.repo.DeleteRecord(ctx, id)
}

// StudentRate computes the student's overall attendance rate.
func (svc *Service) StudentRate(ctx context.Context, studentID string) (float64, error) {
	records, err := svc.repo.QueryAllRecords(ctx)
	if err != nil {
		return 0, err
	}
	return Rate(studentID, records), nil
}
