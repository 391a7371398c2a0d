package dashboard

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/classtrack/classtrack/core/attendance"
	"github.com/classtrack/classtrack/core/gradebook"
	"github.com/classtrack/classtrack/core/roster"
)

func TestBuildOverview(t *testing.T) {
	// Wed Mar 6 2024, mid-morning.
	now := time.Date(2024, time.March, 6, 10, 30, 0, 0, time.UTC)
	day := func(d int) time.Time { return time.Date(2024, time.March, d, 0, 0, 0, 0, time.UTC) }

	snap := Snapshot{
		Classes: []roster.Class{
			{ID: "c1", StudentIDs: []string{"s1", "s2"}, Schedule: roster.Schedule{Days: []time.Weekday{time.Monday, time.Wednesday}}},
			{ID: "c2", StudentIDs: []string{"s2"}, Schedule: roster.Schedule{Days: []time.Weekday{time.Tuesday}}},
		},
		Assignments: []gradebook.Assignment{
			{ID: "a1", DueDate: day(5)},  // overdue, excluded
			{ID: "a2", DueDate: day(6)},  // due today counts
			{ID: "a3", DueDate: day(20)},
			{ID: "a4", DueDate: day(8)},
		},
		Grades: []gradebook.Grade{
			{ID: "g1", SubmittedDate: day(1)},
			{ID: "g2", SubmittedDate: day(4)},
		},
		Attendance: []attendance.Record{
			{StudentID: "s1", Date: day(6), Status: attendance.StatusPresent},
			{StudentID: "s2", Date: day(6), Status: attendance.StatusAbsent},
			{StudentID: "s1", Date: day(5), Status: attendance.StatusAbsent}, // other day
		},
	}

	ov := BuildOverview(now, snap)

	require.Len(t, ov.TodayClasses, 1)
	assert.Equal(t, "c1", ov.TodayClasses[0].ID)

	require.Len(t, ov.UpcomingAssignments, 3)
	assert.Equal(t, "a2", ov.UpcomingAssignments[0].ID)
	assert.Equal(t, "a4", ov.UpcomingAssignments[1].ID)
	assert.Equal(t, "a3", ov.UpcomingAssignments[2].ID)

	require.Len(t, ov.RecentGrades, 2)
	assert.Equal(t, "g2", ov.RecentGrades[0].ID)

	assert.Equal(t, attendance.DaySummary{Present: 1, Total: 2, Rate: 50}, ov.Attendance)
	assert.Equal(t, 3, ov.TotalStudents, "enrollment seats, not unique students")
}

func TestBuildOverviewEmptySnapshot(t *testing.T) {
	ov := BuildOverview(time.Now(), Snapshot{})

	assert.Empty(t, ov.TodayClasses)
	assert.Empty(t, ov.UpcomingAssignments)
	assert.Empty(t, ov.RecentGrades)
	assert.Zero(t, ov.TotalStudents)
	// empty attendance reports 0%, never NaN
	assert.Equal(t, attendance.DaySummary{}, ov.Attendance)
}

func TestBuildOverviewTruncatesLists(t *testing.T) {
	now := time.Date(2024, time.March, 6, 10, 0, 0, 0, time.UTC)
	snap := Snapshot{}
	for i := 0; i < 8; i++ {
		snap.Assignments = append(snap.Assignments, gradebook.Assignment{
			DueDate: now.AddDate(0, 0, i),
		})
		snap.Grades = append(snap.Grades, gradebook.Grade{
			SubmittedDate: now.AddDate(0, 0, -i),
		})
	}

	ov := BuildOverview(now, snap)
	assert.Len(t, ov.UpcomingAssignments, 5)
	assert.Len(t, ov.RecentGrades, 5)
}
