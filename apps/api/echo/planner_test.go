package echoapi

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/classtrack/classtrack/core/planner"
)

func TestPlanReschedule(t *testing.T) {
	app, repos, _ := newTestServer(t)
	ctx := context.Background()

	plan, err := repos.LessonPlans.CreateLessonPlan(ctx, planner.NewLessonPlan{
		ClassID: "c1",
		Date:    time.Date(2024, time.March, 6, 0, 0, 0, 0, time.UTC),
		Title:   "Fractions",
	})
	require.NoError(t, err)

	req, rec := newRequest(http.MethodPut, "/v1/lesson-plans/"+plan.ID+"/reschedule", jsonBody(t, map[string]interface{}{
		"date": "2024-03-08T00:00:00Z",
	}))
	app.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var moved planner.LessonPlan
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &moved))
	assert.Equal(t, 8, moved.Date.Day())
	assert.Equal(t, "Fractions", moved.Title)
}

func TestPlannerMonth(t *testing.T) {
	app, repos, _ := newTestServer(t)
	ctx := context.Background()

	_, err := repos.LessonPlans.CreateLessonPlan(ctx, planner.NewLessonPlan{
		ClassID: "c1",
		Date:    time.Date(2024, time.February, 14, 0, 0, 0, 0, time.UTC),
		Title:   "Fractions",
	})
	require.NoError(t, err)

	req, rec := newRequest(http.MethodGet, "/v1/planner/month?year=2024&month=2")
	app.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var cells []planner.MonthCell
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &cells))
	// Feb 2024 starts on a Thursday: 4 blanks then 29 days
	require.Len(t, cells, 33)
	assert.Nil(t, cells[0].Date)
	require.NotNil(t, cells[4].Date)
	assert.Equal(t, 1, cells[4].Date.Day())

	// the 14th carries the lesson event
	day14 := cells[4+13]
	require.Len(t, day14.Events, 1)
	assert.Equal(t, planner.EventLesson, day14.Events[0].Kind)
	assert.Equal(t, "Fractions", day14.Events[0].Title)
}

func TestPlannerMonthRejectsBadMonth(t *testing.T) {
	app, _, _ := newTestServer(t)

	req, rec := newRequest(http.MethodGet, "/v1/planner/month?year=2024&month=13")
	app.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPlannerWeek(t *testing.T) {
	app, repos, _ := newTestServer(t)
	ctx := context.Background()

	// Wed Mar 6 2024; its week runs Sun Mar 3 through Sat Mar 9
	_, err := repos.LessonPlans.CreateLessonPlan(ctx, planner.NewLessonPlan{
		ClassID: "c1",
		Date:    time.Date(2024, time.March, 6, 0, 0, 0, 0, time.UTC),
		Title:   "Fractions",
	})
	require.NoError(t, err)

	req, rec := newRequest(http.MethodGet, "/v1/planner/week?date=2024-03-04")
	app.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Days  []time.Time            `json:"days"`
		Plans [][]planner.LessonPlan `json:"plans"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Days, 7)
	assert.Equal(t, time.Sunday, resp.Days[0].Weekday())
	require.Len(t, resp.Plans, 7)
	require.Len(t, resp.Plans[3], 1) // Wednesday bucket
	assert.Equal(t, "Fractions", resp.Plans[3][0].Title)
}
