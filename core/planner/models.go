package planner

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/volatiletech/null/v8"

	"github.com/classtrack/classtrack/core"
)

type LessonPlan struct {
	ID         string      `json:"id"`
	ClassID    string      `json:"class_id"`
	Date       time.Time   `json:"date"` // calendar day
	Title      string      `json:"title"`
	Objectives []string    `json:"objectives"`
	Activities []string    `json:"activities"`
	Materials  []string    `json:"materials"`
	Homework   null.String `json:"homework"`
	CreatedAt  time.Time   `json:"created_at"`
	UpdatedAt  time.Time   `json:"updated_at"`
}

// NewLessonPlan contains information needed to create a new LessonPlan.
type NewLessonPlan struct {
	ClassID    string      `json:"class_id" validate:"required"`
	Date       time.Time   `json:"date" validate:"required"`
	Title      string      `json:"title" validate:"required"`
	Objectives []string    `json:"objectives"`
	Activities []string    `json:"activities"`
	Materials  []string    `json:"materials"`
	Homework   null.String `json:"homework"`
}

func (np *NewLessonPlan) Validate(validate *validator.Validate) error {
	np.Title = core.CleanString(np.Title)
	return validate.Struct(np)
}

// UpdateLessonPlan defines what information may be provided to modify
// an existing LessonPlan. Nil fields are left untouched; the list
// fields replace the whole list when set.
type UpdateLessonPlan struct {
	Date       *time.Time  `json:"date"`
	Title      *string     `json:"title" validate:"omitempty,min=1"`
	Objectives *[]string   `json:"objectives"`
	Activities *[]string   `json:"activities"`
	Materials  *[]string   `json:"materials"`
	Homework   null.String `json:"homework"`
}

func (up *UpdateLessonPlan) Validate(validate *validator.Validate) error {
	return validate.Struct(up)
}
