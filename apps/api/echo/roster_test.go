package echoapi

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/classtrack/classtrack/core/roster"
)

func TestStudentCreate(t *testing.T) {
	app, _, _ := newTestServer(t)

	req, rec := newRequest(http.MethodPost, "/v1/students", jsonBody(t, map[string]interface{}{
		"first_name": "Emma",
		"last_name":  "Johnson",
		"email":      "Emma@Example.com",
	}))
	app.ServeHTTP(rec, req)
	require.Equal(t, http.StatusCreated, rec.Code)

	var student roster.Student
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &student))
	assert.NotEmpty(t, student.ID)
	assert.Equal(t, "Emma", student.FirstName)
	assert.Equal(t, "emma@example.com", student.Email) // lowered
}

func TestStudentCreateValidation(t *testing.T) {
	app, _, _ := newTestServer(t)

	req, rec := newRequest(http.MethodPost, "/v1/students", jsonBody(t, map[string]interface{}{
		"last_name": "Johnson",
		"email":     "not-an-email",
	}))
	app.ServeHTTP(rec, req)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var fldErrs map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &fldErrs))
	assert.Equal(t, "this field is required", fldErrs["first_name"])
	assert.Contains(t, fldErrs, "email")
}

func TestStudentRetrieveNotFound(t *testing.T) {
	app, _, _ := newTestServer(t)

	req, rec := newRequest(http.MethodGet, "/v1/students/nope")
	app.ServeHTTP(rec, req)
	require.Equal(t, http.StatusNotFound, rec.Code)

	var body httpErr
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "student not found", body.Error)
}

func TestStudentUpdate(t *testing.T) {
	app, repos, _ := newTestServer(t)
	ctx := context.Background()

	student, err := repos.Students.CreateStudent(ctx, roster.NewStudent{FirstName: "Emma", LastName: "Johnson"})
	require.NoError(t, err)

	req, rec := newRequest(http.MethodPut, "/v1/students/"+student.ID, jsonBody(t, map[string]interface{}{
		"last_name": "Smith",
	}))
	app.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var updated roster.Student
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &updated))
	assert.Equal(t, "Emma", updated.FirstName) // untouched
	assert.Equal(t, "Smith", updated.LastName)
}

func TestClassRoster(t *testing.T) {
	app, repos, _ := newTestServer(t)
	ctx := context.Background()

	s1, err := repos.Students.CreateStudent(ctx, roster.NewStudent{FirstName: "Emma", LastName: "Johnson"})
	require.NoError(t, err)
	s2, err := repos.Students.CreateStudent(ctx, roster.NewStudent{FirstName: "Liam", LastName: "Brown"})
	require.NoError(t, err)

	// s2 enrolled first; "ghost" never existed
	cls, err := repos.Classes.CreateClass(ctx, roster.NewClass{
		Name:       "Math 101",
		Subject:    "Mathematics",
		StudentIDs: []string{s2.ID, "ghost", s1.ID},
	})
	require.NoError(t, err)

	req, rec := newRequest(http.MethodGet, "/v1/classes/"+cls.ID+"/roster")
	app.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var students []roster.Student
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &students))
	require.Len(t, students, 2)
	assert.Equal(t, s2.ID, students[0].ID)
	assert.Equal(t, s1.ID, students[1].ID)
}

func TestClassDestroy(t *testing.T) {
	app, repos, _ := newTestServer(t)
	ctx := context.Background()

	cls, err := repos.Classes.CreateClass(ctx, roster.NewClass{Name: "Math 101", Subject: "Mathematics"})
	require.NoError(t, err)

	req, rec := newRequest(http.MethodDelete, "/v1/classes/"+cls.ID)
	app.ServeHTTP(rec, req)
	require.Equal(t, http.StatusNoContent, rec.Code)

	req, rec = newRequest(http.MethodGet, "/v1/classes/"+cls.ID)
	app.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
