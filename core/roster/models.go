package roster

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/volatiletech/null/v8"

	"github.com/classtrack/classtrack/core"
)

type Student struct {
	ID            string      `json:"id"`
	FirstName     string      `json:"first_name"`
	LastName      string      `json:"last_name"`
	Email         string      `json:"email"`
	ParentContact null.String `json:"parent_contact"`
	Notes         null.String `json:"notes"`
	PhotoURL      string      `json:"photo_url"`
	CreatedAt     time.Time   `json:"created_at"` // UTC
	UpdatedAt     time.Time   `json:"updated_at"` // UTC
}

func (s Student) FullName() string {
	return s.FirstName + " " + s.LastName
}

// Schedule is a class section's weekly meeting pattern.
// Days uses time.Weekday numbering (0 = Sunday).
type Schedule struct {
	Time string         `json:"time"`
	Days []time.Weekday `json:"days"`
}

// Class is a class section: a named group of enrolled students meeting
// on a weekly schedule. StudentIDs is ordered; the roster preserves it.
type Class struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Subject    string    `json:"subject"`
	Period     string    `json:"period"`
	Room       string    `json:"room"`
	Schedule   Schedule  `json:"schedule"`
	StudentIDs []string  `json:"student_ids"`
	CreatedAt  time.Time `json:"created_at"` // UTC
	UpdatedAt  time.Time `json:"updated_at"` // UTC
}

// MeetsOn reports whether the section meets on the given weekday.
func (c Class) MeetsOn(day time.Weekday) bool {
	for _, d := range c.Schedule.Days {
		if d == day {
			return true
		}
	}
	return false
}

// ResolveRoster resolves a class's StudentIDs against a student
// snapshot, in StudentIDs order. Ids with no matching student are
// dropped: a stale enrollment must not break the page it appears on.
func ResolveRoster(cls Class, students []Student) []Student {
	byID := make(map[string]Student, len(students))
	for _, s := range students {
		byID[s.ID] = s
	}

	out := make([]Student, 0, len(cls.StudentIDs))
	for _, id := range cls.StudentIDs {
		if s, ok := byID[id]; ok {
			out = append(out, s)
		}
	}
	return out
}

// NewStudent contains information needed to enroll a new Student.
type NewStudent struct {
	FirstName     string      `json:"first_name" validate:"required"`
	LastName      string      `json:"last_name" validate:"required"`
	Email         string      `json:"email" validate:"omitempty,email"`
	ParentContact null.String `json:"parent_contact" validate:"omitempty"`
	Notes         null.String `json:"notes"`
	PhotoURL      string      `json:"photo_url" validate:"omitempty,url"`
}

func (ns *NewStudent) Validate(validate *validator.Validate) error {
	ns.FirstName = core.CleanString(ns.FirstName)
	ns.LastName = core.CleanString(ns.LastName)
	ns.Email = core.CleanString(ns.Email, true /* lower */)
	return validate.Struct(ns)
}

// UpdateStudent defines what information may be provided to modify an
// existing Student. Nil fields are left untouched.
type UpdateStudent struct {
	FirstName     *string     `json:"first_name" validate:"omitempty,min=1"`
	LastName      *string     `json:"last_name" validate:"omitempty,min=1"`
	Email         *string     `json:"email" validate:"omitempty,email"`
	ParentContact null.String `json:"parent_contact"`
	Notes         null.String `json:"notes"`
	PhotoURL      *string     `json:"photo_url" validate:"omitempty,url"`
}

func (us *UpdateStudent) Validate(validate *validator.Validate) error {
	if us.Email != nil {
		*us.Email = core.CleanString(*us.Email, true /* lower */)
	}
	return validate.Struct(us)
}

// NewClass contains information needed to create a new Class section.
type NewClass struct {
	Name       string         `json:"name" validate:"required"`
	Subject    string         `json:"subject" validate:"required"`
	Period     string         `json:"period"`
	Room       string         `json:"room"`
	Time       string         `json:"time"`
	Days       []time.Weekday `json:"days" validate:"omitempty,dive,gte=0,lte=6"`
	StudentIDs []string       `json:"student_ids"`
}

func (nc *NewClass) Validate(validate *validator.Validate) error {
	nc.Name = core.CleanString(nc.Name)
	nc.Subject = core.CleanString(nc.Subject)
	return validate.Struct(nc)
}

// UpdateClass defines what information may be provided to modify an
// existing Class. Nil fields are left untouched; StudentIDs replaces
// the whole enrollment list when set.
type UpdateClass struct {
	Name       *string         `json:"name" validate:"omitempty,min=1"`
	Subject    *string         `json:"subject" validate:"omitempty,min=1"`
	Period     *string         `json:"period"`
	Room       *string         `json:"room"`
	Time       *string         `json:"time"`
	Days       *[]time.Weekday `json:"days" validate:"omitempty,dive,gte=0,lte=6"`
	StudentIDs *[]string       `json:"student_ids"`
}

func (uc *UpdateClass) Validate(validate *validator.Validate) error {
	return validate.Struct(uc)
}
