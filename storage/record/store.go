// Package record provides access to the record store: a schemaless
// collection of named tables holding JSON documents. The Store
// interface has three implementations (the remote HTTP client in this
// package, the in-memory inmem store and the PostgreSQL-backed
// sqlstore) and the typed repositories here work against any of them.
package record

import "context"

// Record is one entity's fields, keyed by the canonical (snake_case)
// field names.
type Record = map[string]interface{}

type Store interface {
	// List returns all records of a table.
	List(ctx context.Context, table string) ([]Record, error)
	// Get returns one record or ErrNotFound.
	Get(ctx context.Context, table, id string) (Record, error)
	// Create inserts a record; the store assigns the id.
	Create(ctx context.Context, table string, fields Record) (Record, error)
	// Update merges the given fields into an existing record and
	// returns the result, or ErrNotFound.
	Update(ctx context.Context, table, id string, fields Record) (Record, error)
	// Delete removes a record, or returns ErrNotFound.
	Delete(ctx context.Context, table, id string) error
}

// Entity tables.
const (
	TableStudents    = "students"
	TableClasses     = "classes"
	TableAssignments = "assignments"
	TableGrades      = "grades"
	TableAttendance  = "attendance"
	TableLessonPlans = "lesson_plans"
)
