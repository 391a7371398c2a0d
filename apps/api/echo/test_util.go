package echoapi

import (
	"bytes"
	"encoding/json"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/classtrack/classtrack/core"
	"github.com/classtrack/classtrack/core/attendance"
	"github.com/classtrack/classtrack/core/dashboard"
	"github.com/classtrack/classtrack/core/gradebook"
	"github.com/classtrack/classtrack/core/planner"
	"github.com/classtrack/classtrack/core/report"
	"github.com/classtrack/classtrack/core/roster"
	exportsvc "github.com/classtrack/classtrack/services/export"
	"github.com/classtrack/classtrack/storage/record"
	inmemdb "github.com/classtrack/classtrack/storage/record/inmem"
)

type httpErr struct {
	Error string `json:"error"`
}

type testLogger struct {
	std *log.Logger
}

var _ core.Logger = (*testLogger)(nil)

func newTestLogger() *testLogger {
	return &testLogger{std: log.New(os.Stderr, "test ", log.LstdFlags)}
}

func (l testLogger) log(msg string, args []interface{}) {
	l.std.Println(append([]interface{}{msg}, args...)...)
}

func (l testLogger) Debug(msg string, args ...interface{}) { l.log(msg, args) }
func (l testLogger) Info(msg string, args ...interface{})  { l.log(msg, args) }
func (l testLogger) Warn(msg string, args ...interface{})  { l.log(msg, args) }
func (l testLogger) Error(msg string, args ...interface{}) { l.log(msg, args) }
func (l testLogger) Fatal(msg string, args ...interface{}) { l.log(msg, args); os.Exit(1) }

type testRepos struct {
	Students    *record.StudentRepository
	Classes     *record.ClassRepository
	Assignments *record.AssignmentRepository
	Grades      *record.GradeRepository
	Attendance  *record.AttendanceRepository
	LessonPlans *record.LessonPlanRepository
}

type captureMail struct {
	sent []*core.EmailMessage
}

func (m *captureMail) SendMessages(messages ...*core.EmailMessage) {
	m.sent = append(m.sent, messages...)
}

func newTestServer(t *testing.T) (Server, testRepos, *captureMail) {
	t.Helper()

	// predictable error payloads
	core.Conf.Debug = false
	core.Conf.TestMode = true

	db := inmemdb.Open()
	repos := testRepos{
		Students:    record.NewStudentRepository(db),
		Classes:     record.NewClassRepository(db),
		Assignments: record.NewAssignmentRepository(db),
		Grades:      record.NewGradeRepository(db),
		Attendance:  record.NewAttendanceRepository(db),
		LessonPlans: record.NewLessonPlanRepository(db),
	}

	mailSvc := &captureMail{}
	gbSvc := gradebook.NewService(repos.Assignments, repos.Grades, repos.Students, repos.Classes)
	attSvc := attendance.NewService(repos.Attendance)

	app := NewServer(&Options{
		Address:        ":0",
		DisableReqLogs: true,
		Logger:         newTestLogger(),
		RosterSvc:      roster.NewService(repos.Students, repos.Classes),
		GradebookSvc:   gbSvc,
		AttendanceSvc:  attSvc,
		PlannerSvc:     planner.NewService(repos.LessonPlans, repos.Assignments),
		DashboardSvc: dashboard.NewService(
			repos.Students, repos.Classes, repos.Assignments,
			repos.Grades, repos.Attendance, repos.LessonPlans,
		),
		ReportSvc: report.NewService(repos.Students, gbSvc, attSvc, mailSvc),
		ExportSvc: exportsvc.NewService(),
	})
	return app, repos, mailSvc
}

func newRequest(method, path string, data ...[]byte) (*http.Request, *httptest.ResponseRecorder) {
	var body bytes.Buffer
	if len(data) > 0 {
		body.Write(data[0])
	}
	req := httptest.NewRequest(method, path, &body)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	return req, rec
}

func jsonBody(t *testing.T, v interface{}) []byte {
	t.Helper()
	data, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshaling body: %v", err)
	}
	return data
}
