package exportsvc

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/classtrack/classtrack/core/attendance"
	"github.com/classtrack/classtrack/core/gradebook"
	"github.com/classtrack/classtrack/core/roster"
)

func TestGradebookWorkbook(t *testing.T) {
	cls := roster.Class{ID: "c1", Name: "Math 101", StudentIDs: []string{"s1"}}
	students := []roster.Student{{ID: "s1", FirstName: "Emma", LastName: "Johnson"}}
	assignments := []gradebook.Assignment{
		{ID: "a1", ClassID: "c1", Title: "Quiz 1", Points: 50},
	}
	grades := []gradebook.Grade{
		{ID: "g1", StudentID: "s1", AssignmentID: "a1", Score: 45},
	}
	grid := gradebook.BuildGrid(cls, students, assignments, grades)

	buf, err := NewService().GradebookWorkbook(grid)
	require.NoError(t, err)

	f, err := excelize.OpenReader(buf)
	require.NoError(t, err)

	get := func(cell string) string {
		v, err := f.GetCellValue("Gradebook", cell)
		require.NoError(t, err)
		return v
	}
	assert.Equal(t, "Student", get("A1"))
	assert.Equal(t, "Quiz 1 (50 pts)", get("B1"))
	assert.Equal(t, "Average (%)", get("C1"))
	assert.Equal(t, "Emma Johnson", get("A2"))
	assert.Equal(t, "45", get("B2"))
	assert.Equal(t, "90", get("C2"))
}

func TestAttendanceWorkbook(t *testing.T) {
	students := []roster.Student{{ID: "s1", FirstName: "Emma", LastName: "Johnson"}}
	records := []attendance.Record{
		{ID: "r2", StudentID: "s1", Date: time.Date(2024, time.March, 7, 0, 0, 0, 0, time.UTC), Status: attendance.StatusAbsent},
		{ID: "r1", StudentID: "s1", Date: time.Date(2024, time.March, 6, 0, 0, 0, 0, time.UTC), Status: attendance.StatusPresent},
		{ID: "r3", StudentID: "ghost", Date: time.Date(2024, time.March, 8, 0, 0, 0, 0, time.UTC), Status: attendance.StatusLate},
	}

	buf, err := NewService().AttendanceWorkbook(records, students)
	require.NoError(t, err)

	f, err := excelize.OpenReader(buf)
	require.NoError(t, err)

	get := func(cell string) string {
		v, err := f.GetCellValue("Attendance", cell)
		require.NoError(t, err)
		return v
	}
	// rows come out date-ordered
	assert.Equal(t, "2024-03-06", get("A2"))
	assert.Equal(t, "present", get("C2"))
	assert.Equal(t, "2024-03-07", get("A3"))
	// unknown student ids fall back to the raw id
	assert.Equal(t, "ghost", get("B4"))
}
