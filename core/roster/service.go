package roster

import (
	"context"
	"errors"
)

var (
	// errors
	ErrStudentNotFound = errors.New("student not found")
	ErrClassNotFound   = errors.New("class not found")
)

type (
	StudentRepository interface {
		CreateStudent(ctx context.Context, ns NewStudent) (Student, error)
		QueryAllStudents(ctx context.Context) ([]Student, error)
		GetStudentByID(ctx context.Context, id string) (Student, error)
		UpdateStudent(ctx context.Context, id string, us UpdateStudent) (Student, error)
		DeleteStudent(ctx context.Context, id string) error
	}

	ClassRepository interface {
		CreateClass(ctx context.Context, nc NewClass) (Class, error)
		QueryAllClasses(ctx context.Context) ([]Class, error)
		GetClassByID(ctx context.Context, id string) (Class, error)
		UpdateClass(ctx context.Context, id string, uc UpdateClass) (Class, error)
		DeleteClass(ctx context.Context, id string) error
	}

	Service struct {
		students StudentRepository
		classes  ClassRepository
	}
)

func NewService(students StudentRepository, classes ClassRepository) *Service {
	return &Service{students: students, classes: classes}
}

func (svc *Service) CreateStudent(ctx context.Context, ns NewStudent) (Student, error) {
	return svc.students.CreateStudent(ctx, ns)
}

func (svc *Service) QueryAllStudents(ctx context.Context) ([]Student, error) {
	return svc.students.QueryAllStudents(ctx)
}

func (svc *Service) GetStudent(ctx context.Context, id string) (Student, error) {
	return svc.students.GetStudentByID(ctx, id)
}

func (svc *Service) UpdateStudent(ctx context.Context, id string, us UpdateStudent) (Student, error) {
	return svc.students.UpdateStudent(ctx, id, us)
}

// DeleteStudent removes the student record only. Enrollments, grades
// and attendance referencing the id stay behind; readers drop them.
func (svc *Service) DeleteStudent(ctx context.Context, id string) error {
	return svc.students.DeleteStudent(ctx, id)
}

func (svc *Service) CreateClass(ctx context.Context, nc NewClass) (Class, error) {
	return svc.classes.CreateClass(ctx, nc)
}

func (svc *Service) QueryAllClasses(ctx context.Context) ([]Class, error) {
	return svc.classes.QueryAllClasses(ctx)
}

func (svc *Service) GetClass(ctx context.Context, id string) (Class, error) {
	return svc.classes.GetClassByID(ctx, id)
}

func (svc *Service) UpdateClass(ctx context.Context, id string, uc UpdateClass) (Class, error) {
	return svc.classes.UpdateClass(ctx, id, uc)
}

// DeleteClass removes the section only; its assignments, lesson plans
// and grades are deliberately left in place.
func (svc *Service) DeleteClass(ctx context.Context, id string) error {
	return svc.classes.DeleteClass(ctx, id)
}

// Roster returns the class's enrolled students in enrollment order.
func (svc *Service) Roster(ctx context.Context, classID string) ([]Student, error) {
	cls, err := svc.classes.GetClassByID(ctx, classID)
	if err != nil {
		return nil, err
	}
	students, err := svc.students.QueryAllStudents(ctx)
	if err != nil {
		return nil, err
	}
	return ResolveRoster(cls, students), nil
}
