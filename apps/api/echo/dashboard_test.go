package echoapi

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/volatiletech/null/v8"
	"github.com/xuri/excelize/v2"

	"github.com/classtrack/classtrack/core/attendance"
	"github.com/classtrack/classtrack/core/dashboard"
	"github.com/classtrack/classtrack/core/gradebook"
	"github.com/classtrack/classtrack/core/report"
	"github.com/classtrack/classtrack/core/roster"
	exportsvc "github.com/classtrack/classtrack/services/export"
)

func TestDashboardOverview(t *testing.T) {
	app, repos, _ := newTestServer(t)
	ctx := context.Background()

	s1, err := repos.Students.CreateStudent(ctx, roster.NewStudent{FirstName: "Emma", LastName: "Johnson"})
	require.NoError(t, err)
	_, err = repos.Classes.CreateClass(ctx, roster.NewClass{
		Name:       "Math 101",
		Subject:    "Mathematics",
		Days:       []time.Weekday{time.Now().Weekday()},
		StudentIDs: []string{s1.ID, "ghost"},
	})
	require.NoError(t, err)
	_, err = repos.Attendance.CreateRecord(ctx, attendance.NewRecord{
		StudentID: s1.ID,
		Date:      time.Now(),
		Status:    attendance.StatusPresent,
	})
	require.NoError(t, err)

	req, rec := newRequest(http.MethodGet, "/v1/dashboard")
	app.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var overview dashboard.Overview
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &overview))
	require.Len(t, overview.TodayClasses, 1)
	assert.Equal(t, "Math 101", overview.TodayClasses[0].Name)
	assert.Equal(t, 2, overview.TotalStudents) // seats, not headcount
	assert.Equal(t, 1, overview.Attendance.Present)
	assert.Equal(t, 100.0, overview.Attendance.Rate)
}

func TestProgressReportEndpoint(t *testing.T) {
	app, repos, mailSvc := newTestServer(t)
	ctx := context.Background()

	student, err := repos.Students.CreateStudent(ctx, roster.NewStudent{
		FirstName:     "Emma",
		LastName:      "Johnson",
		ParentContact: null.StringFrom("parent@example.com"),
	})
	require.NoError(t, err)

	req, rec := newRequest(http.MethodPost, "/v1/students/"+student.ID+"/progress-report")
	app.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var rpt report.ProgressReport
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &rpt))
	assert.Equal(t, "parent@example.com", rpt.SentTo)
	require.Len(t, mailSvc.sent, 1)
}

func TestGradebookExport(t *testing.T) {
	app, repos, _ := newTestServer(t)
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
	_, err = repos.Grades.CreateGrade(ctx, gradebook.NewGrade{
		StudentID:     student.ID,
		AssignmentID:  a.ID,
		Score:         45,
		SubmittedDate: time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	req, rec := newRequest(http.MethodGet, "/v1/classes/"+cls.ID+"/gradebook/export")
	app.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, exportsvc.XlsxContentType, rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), ".xlsx")

	f, err := excelize.OpenReader(rec.Body)
	require.NoError(t, err)
	name, err := f.GetCellValue("Gradebook", "A2")
	require.NoError(t, err)
	assert.Equal(t, "Emma Johnson", name)
}
