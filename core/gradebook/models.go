package gradebook

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/volatiletech/null/v8"

	"github.com/classtrack/classtrack/core"
)

type Assignment struct {
	ID        string    `json:"id"`
	ClassID   string    `json:"class_id"`
	Title     string    `json:"title"`
	Category  string    `json:"category"`
	Points    float64   `json:"points"`
	DueDate   time.Time `json:"due_date"` // calendar day; time of day is not meaningful
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Grade struct {
	ID            string      `json:"id"`
	StudentID     string      `json:"student_id"`
	AssignmentID  string      `json:"assignment_id"`
	Score         float64     `json:"score"`
	SubmittedDate time.Time   `json:"submitted_date"`
	Feedback      null.String `json:"feedback"`
}

// NewAssignment contains information needed to create a new Assignment.
// Points is validated >= 1 here so the percentage math downstream never
// divides by zero.
type NewAssignment struct {
	ClassID  string    `json:"class_id" validate:"required"`
	Title    string    `json:"title" validate:"required"`
	Category string    `json:"category"`
	Points   float64   `json:"points" validate:"required,gte=1"`
	DueDate  time.Time `json:"due_date" validate:"required"`
}

func (na *NewAssignment) Validate(validate *validator.Validate) error {
	na.Title = core.CleanString(na.Title)
	na.Category = core.CleanString(na.Category)
	return validate.Struct(na)
}

// UpdateAssignment defines what information may be provided to modify
// an existing Assignment. Nil fields are left untouched.
type UpdateAssignment struct {
	Title    *string    `json:"title" validate:"omitempty,min=1"`
	Category *string    `json:"category"`
	Points   *float64   `json:"points" validate:"omitempty,gte=1"`
	DueDate  *time.Time `json:"due_date"`
}

func (ua *UpdateAssignment) Validate(validate *validator.Validate) error {
	return validate.Struct(ua)
}

// NewGrade contains information needed to record a new Grade.
// The score upper bound depends on the owning assignment and is
// enforced by Service.RecordScore, not here.
type NewGrade struct {
	StudentID     string      `json:"student_id" validate:"required"`
	AssignmentID  string      `json:"assignment_id" validate:"required"`
	Score         float64     `json:"score" validate:"gte=0"`
	SubmittedDate time.Time   `json:"submitted_date"`
	Feedback      null.String `json:"feedback"`
}

func (ng *NewGrade) Validate(validate *validator.Validate) error {
	return validate.Struct(ng)
}

// UpdateGrade defines what information may be provided to modify an
// existing Grade. Nil fields are left untouched.
type UpdateGrade struct {
	Score         *float64    `json:"score" validate:"omitempty,gte=0"`
	SubmittedDate *time.Time  `json:"submitted_date"`
	Feedback      null.String `json:"feedback"`
}

func (ug *UpdateGrade) Validate(validate *validator.Validate) error {
	return validate.Struct(ug)
}

// ScoreInput records or overwrites one student's score on one
// assignment (the gradebook cell edit).
type ScoreInput struct {
	StudentID    string  `json:"student_id" validate:"required"`
	AssignmentID string  `json:"assignment_id" validate:"required"`
	Score        float64 `json:"score" validate:"gte=0"`
}

func (si *ScoreInput) Validate(validate *validator.Validate) error {
	return validate.Struct(si)
}
