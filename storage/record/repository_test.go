package record_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/volatiletech/null/v8"

	"github.com/classtrack/classtrack/core/gradebook"
	"github.com/classtrack/classtrack/core/roster"
	"github.com/classtrack/classtrack/storage/record"
	inmemdb "github.com/classtrack/classtrack/storage/record/inmem"
)

func TestStudentRepository(t *testing.T) {
	ctx := context.Background()
	repo := record.NewStudentRepository(inmemdb.Open())

	created, err := repo.CreateStudent(ctx, roster.NewStudent{
		FirstName:     "Emma",
		LastName:      "Johnson",
		Email:         "emma@example.com",
		ParentContact: null.StringFrom("parent@example.com"),
	})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	assert.Equal(t, "Emma Johnson", created.FullName())
	assert.False(t, created.CreatedAt.IsZero())

	got, err := repo.GetStudentByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)

	newName := "Emily"
	updated, err := repo.UpdateStudent(ctx, created.ID, roster.UpdateStudent{FirstName: &newName})
	require.NoError(t, err)
	assert.Equal(t, "Emily", updated.FirstName)
	assert.Equal(t, "Johnson", updated.LastName) // untouched
	assert.Equal(t, "parent@example.com", updated.ParentContact.String)

	all, err := repo.QueryAllStudents(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	require.NoError(t, repo.DeleteStudent(ctx, created.ID))
	_, err = repo.GetStudentByID(ctx, created.ID)
	assert.Equal(t, roster.ErrStudentNotFound, err)
}

func TestStudentRepositoryNotFound(t *testing.T) {
	ctx := context.Background()
	repo := record.NewStudentRepository(inmemdb.Open())

	_, err := repo.GetStudentByID(ctx, "nope")
	assert.Equal(t, roster.ErrStudentNotFound, err)
	_, err = repo.UpdateStudent(ctx, "nope", roster.UpdateStudent{})
	assert.Equal(t, roster.ErrStudentNotFound, err)
	assert.Equal(t, roster.ErrStudentNotFound, repo.DeleteStudent(ctx, "nope"))
}

func TestClassRepositorySchedule(t *testing.T) {
	ctx := context.Background()
	repo := record.NewClassRepository(inmemdb.Open())

	created, err := repo.CreateClass(ctx, roster.NewClass{
		Name:       "Math 101",
		Subject:    "Mathematics",
		Period:     "1st Period",
		Time:       "9:00 AM",
		Days:       []time.Weekday{time.Monday, time.Wednesday, time.Friday},
		StudentIDs: []string{"s1", "s2"},
	})
	require.NoError(t, err)

	got, err := repo.GetClassByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "9:00 AM", got.Schedule.Time)
	assert.Equal(t, []time.Weekday{time.Monday, time.Wednesday, time.Friday}, got.Schedule.Days)
	assert.Equal(t, []string{"s1", "s2"}, got.StudentIDs)
	assert.True(t, got.MeetsOn(time.Wednesday))

	// changing the time alone keeps the meeting days
	newTime := "10:30 AM"
	updated, err := repo.UpdateClass(ctx, created.ID, roster.UpdateClass{Time: &newTime})
	require.NoError(t, err)
	assert.Equal(t, "10:30 AM", updated.Schedule.Time)
	assert.Equal(t, got.Schedule.Days, updated.Schedule.Days)
}

func TestAssignmentRepositoryDates(t *testing.T) {
	ctx := context.Background()
	repo := record.NewAssignmentRepository(inmemdb.Open())

	due := time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)
	created, err := repo.CreateAssignment(ctx, gradebook.NewAssignment{
		ClassID: "c1",
		Title:   "Chapter 5 Quiz",
		Points:  50,
		DueDate: due,
	})
	require.NoError(t, err)
	assert.True(t, created.DueDate.Equal(due))
	assert.Equal(t, float64(50), created.Points)
}

func TestGradeRepositoryList(t *testing.T) {
	ctx := context.Background()
	repo := record.NewGradeRepository(inmemdb.Open())

	for _, sid := range []string{"s1", "s2", "s3"} {
		_, err := repo.CreateGrade(ctx, gradebook.NewGrade{
			StudentID:     sid,
			AssignmentID:  "a1",
			Score:         42,
			SubmittedDate: time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC),
		})
		require.NoError(t, err)
	}

	all, err := repo.QueryAllGrades(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	// insertion order is preserved
	assert.Equal(t, "s1", all[0].StudentID)
	assert.Equal(t, "s3", all[2].StudentID)
}
