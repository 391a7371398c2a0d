package gradebook

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/classtrack/classtrack/core/roster"
)

func TestClassifyPercentage(t *testing.T) {
	tests := []struct {
		pct  float64
		want Band
	}{
		{90, BandExcellent}, // lower boundary is inclusive
		{89.999, BandGood},
		{80, BandGood},
		{79.999, BandFair},
		{70, BandFair},
		{69.999, BandPoor},
		{0, BandPoor},
		{-5, BandPoor}, // out of range still classifies
		{110, BandExcellent},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ClassifyPercentage(tt.pct), "ClassifyPercentage(%v)", tt.pct)
	}
}

func TestFindGrade(t *testing.T) {
	grades := []Grade{
		{ID: "g1", StudentID: "s1", AssignmentID: "a1", Score: 10},
		{ID: "g2", StudentID: "s1", AssignmentID: "a2", Score: 20},
		{ID: "g3", StudentID: "s1", AssignmentID: "a1", Score: 99}, // duplicate pair
	}

	g, ok := FindGrade("s1", "a1", grades)
	assert.True(t, ok)
	assert.Equal(t, "g1", g.ID, "earliest-indexed duplicate wins")

	_, ok = FindGrade("s2", "a1", grades)
	assert.False(t, ok)
	_, ok = FindGrade("s1", "a1", nil)
	assert.False(t, ok)
}

func TestStudentAverage(t *testing.T) {
	assignments := []Assignment{
		{ID: "a1", ClassID: "c1", Points: 100},
		{ID: "a2", ClassID: "c1", Points: 50},
		{ID: "a3", ClassID: "c1", Points: 10},
	}

	t.Run("equal weight per assignment", func(t *testing.T) {
		grades := []Grade{
			{StudentID: "s1", AssignmentID: "a1", Score: 85}, // 85%
			{StudentID: "s1", AssignmentID: "a2", Score: 25}, // 50%
		}
		avg, ok := StudentAverage("s1", assignments, grades)
		assert.True(t, ok)
		// a2 is worth half the points of a1 but counts the same
		assert.InDelta(t, 67.5, avg, 1e-9)
	})

	t.Run("single 85/100 grade is exactly 85", func(t *testing.T) {
		grades := []Grade{{StudentID: "s1", AssignmentID: "a1", Score: 85}}
		avg, ok := StudentAverage("s1", assignments[:1], grades)
		assert.True(t, ok)
		assert.Equal(t, 85.0, avg)
	})

	t.Run("no grades is undefined, not zero", func(t *testing.T) {
		avg, ok := StudentAverage("s1", assignments, nil)
		assert.False(t, ok)
		assert.Equal(t, 0.0, avg)
		assert.False(t, math.IsNaN(avg))
	})

	t.Run("orphan grade for deleted assignment is skipped", func(t *testing.T) {
		grades := []Grade{
			{StudentID: "s1", AssignmentID: "deleted", Score: 5},
		}
		_, ok := StudentAverage("s1", assignments, grades)
		assert.False(t, ok)
	})

	t.Run("other students' grades do not count", func(t *testing.T) {
		grades := []Grade{
			{StudentID: "s1", AssignmentID: "a1", Score: 100},
			{StudentID: "s2", AssignmentID: "a1", Score: 0},
		}
		avg, ok := StudentAverage("s1", assignments, grades)
		assert.True(t, ok)
		assert.Equal(t, 100.0, avg)
	})
}

func TestRecentGrades(t *testing.T) {
	day := func(d int) time.Time { return time.Date(2024, time.March, d, 12, 0, 0, 0, time.UTC) }
	grades := []Grade{
		{ID: "g1", SubmittedDate: day(1)},
		{ID: "g2", SubmittedDate: day(5)},
		{ID: "g3", SubmittedDate: day(3)},
	}

	got := RecentGrades(grades, 2)
	assert.Len(t, got, 2)
	assert.Equal(t, "g2", got[0].ID)
	assert.Equal(t, "g3", got[1].ID)
	// input order untouched
	assert.Equal(t, "g1", grades[0].ID)
}

func TestBuildGrid(t *testing.T) {
	cls := roster.Class{ID: "c1", Name: "Algebra", StudentIDs: []string{"s2", "s1", "ghost"}}
	students := []roster.Student{
		{ID: "s1", FirstName: "Ada"},
		{ID: "s2", FirstName: "Grace"},
	}
	assignments := []Assignment{
		{ID: "a1", ClassID: "c1", Points: 100},
		{ID: "a2", ClassID: "other", Points: 10}, // other class, excluded
	}
	grades := []Grade{
		{ID: "g1", StudentID: "s1", AssignmentID: "a1", Score: 92},
	}

	grid := BuildGrid(cls, students, assignments, grades)

	assert.Len(t, grid.Assignments, 1)
	assert.Len(t, grid.Rows, 2, "dangling enrollment dropped")
	assert.Equal(t, "s2", grid.Rows[0].Student.ID, "enrollment order preserved")

	graceRow := grid.Rows[0]
	assert.False(t, graceRow.Average.Valid, "no grades -> null average")
	assert.Empty(t, graceRow.Band)
	assert.Nil(t, graceRow.Cells[0].Grade)

	adaRow := grid.Rows[1]
	assert.True(t, adaRow.Average.Valid)
	assert.Equal(t, 92.0, adaRow.Average.Float64)
	assert.Equal(t, BandExcellent, adaRow.Band)
	assert.Equal(t, BandExcellent, adaRow.Cells[0].Band)
}
