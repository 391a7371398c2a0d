package echoapi

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/classtrack/classtrack/core/gradebook"
	"github.com/classtrack/classtrack/core/roster"
)

func seedClass(t *testing.T, repos testRepos) (roster.Class, roster.Student, gradebook.Assignment) {
	t.Helper()
	ctx := context.Background()

	student, err := repos.Students.CreateStudent(ctx, roster.NewStudent{FirstName: "Emma", LastName: "Johnson"})
	require.NoError(t, err)
	cls, err := repos.Classes.CreateClass(ctx, roster.NewClass{
		Name:       "Math 101",
		Subject:    "Mathematics",
		StudentIDs: []string{student.ID},
	})
	require.NoError(t, err)
	a, err := repos.Assignments.CreateAssignment(ctx, gradebook.NewAssignment{
		ClassID: cls.ID,
		Title:   "Quiz 1",
		Points:  50,
		DueDate: time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	return cls, student, a
}

func TestAssignmentCreateRejectsZeroPoints(t *testing.T) {
	app, repos, _ := newTestServer(t)
	cls, _, _ := seedClass(t, repos)

	req, rec := newRequest(http.MethodPost, "/v1/assignments", jsonBody(t, map[string]interface{}{
		"class_id": cls.ID,
		"title":    "Broken",
		"points":   0,
		"due_date": "2024-03-20T00:00:00Z",
	}))
	app.ServeHTTP(rec, req)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var fldErrs map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &fldErrs))
	assert.Contains(t, fldErrs, "points")
}

func TestRecordScore(t *testing.T) {
	app, repos, _ := newTestServer(t)
	_, student, a := seedClass(t, repos)

	req, rec := newRequest(http.MethodPost, "/v1/grades/score", jsonBody(t, map[string]interface{}{
		"student_id":    student.ID,
		"assignment_id": a.ID,
		"score":         45,
	}))
	app.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var grade gradebook.Grade
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &grade))
	assert.Equal(t, 45.0, grade.Score)

	// scoring again overwrites the same grade
	req, rec = newRequest(http.MethodPost, "/v1/grades/score", jsonBody(t, map[string]interface{}{
		"student_id":    student.ID,
		"assignment_id": a.ID,
		"score":         48,
	}))
	app.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var updated gradebook.Grade
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &updated))
	assert.Equal(t, grade.ID, updated.ID)
	assert.Equal(t, 48.0, updated.Score)
}

func TestRecordScoreOverMax(t *testing.T) {
	app, repos, _ := newTestServer(t)
	_, student, a := seedClass(t, repos)

	req, rec := newRequest(http.MethodPost, "/v1/grades/score", jsonBody(t, map[string]interface{}{
		"student_id":    student.ID,
		"assignment_id": a.ID,
		"score":         51,
	}))
	app.ServeHTTP(rec, req)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var fldErrs map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &fldErrs))
	assert.Equal(t, "score must be between 0 and 50", fldErrs["score"])
}

func TestClassGrid(t *testing.T) {
	app, repos, _ := newTestServer(t)
	cls, student, a := seedClass(t, repos)

	_, err := repos.Grades.CreateGrade(context.Background(), gradebook.NewGrade{
		StudentID:     student.ID,
		AssignmentID:  a.ID,
		Score:         45,
		SubmittedDate: time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	req, rec := newRequest(http.MethodGet, "/v1/classes/"+cls.ID+"/gradebook")
	app.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var grid gradebook.Grid
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &grid))
	require.Len(t, grid.Rows, 1)
	require.Len(t, grid.Rows[0].Cells, 1)
	assert.Equal(t, 90.0, grid.Rows[0].Cells[0].Percent.Float64)
	assert.Equal(t, gradebook.BandExcellent, grid.Rows[0].Band)
}

func TestClassGridUnknownClass(t *testing.T) {
	app, _, _ := newTestServer(t)

	req, rec := newRequest(http.MethodGet, "/v1/classes/nope/gradebook")
	app.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestStudentAverages(t *testing.T) {
	app, repos, _ := newTestServer(t)
	cls, student, a := seedClass(t, repos)

	_, err := repos.Grades.CreateGrade(context.Background(), gradebook.NewGrade{
		StudentID:     student.ID,
		AssignmentID:  a.ID,
		Score:         40,
		SubmittedDate: time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	req, rec := newRequest(http.MethodGet, "/v1/students/"+student.ID+"/averages")
	app.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var averages []gradebook.ClassAverage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &averages))
	require.Len(t, averages, 1)
	assert.Equal(t, cls.ID, averages[0].ClassID)
	assert.Equal(t, 80.0, averages[0].Average.Float64)
	assert.Equal(t, gradebook.BandGood, averages[0].Band)
}
