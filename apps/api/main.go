package main

import (
	"context"
	"fmt"
	"log"
	"os"

	echoapi "github.com/classtrack/classtrack/apps/api/echo"
	"github.com/classtrack/classtrack/core"
	"github.com/classtrack/classtrack/core/attendance"
	"github.com/classtrack/classtrack/core/dashboard"
	"github.com/classtrack/classtrack/core/gradebook"
	"github.com/classtrack/classtrack/core/planner"
	"github.com/classtrack/classtrack/core/report"
	"github.com/classtrack/classtrack/core/roster"
	emailsvc "github.com/classtrack/classtrack/services/email"
	exportsvc "github.com/classtrack/classtrack/services/export"
	logsvc "github.com/classtrack/classtrack/services/logger"
	"github.com/classtrack/classtrack/storage/record"
	inmemdb "github.com/classtrack/classtrack/storage/record/inmem"
	"github.com/classtrack/classtrack/storage/record/sqlstore"
)

func main() {
	std := log.New(os.Stdout, "API : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile)
	logger := logsvc.NewRollbarLogger(std, &core.Conf)
	logger.Enable(!(core.Conf.Debug || core.Conf.TestMode))

	// set up the record store
	store, cleanup, err := openStore()
	if err != nil {
		logger.Fatal(fmt.Sprintf("opening record store: %v", err), err)
	}
	defer cleanup()

	// set up services
	var mailSvc core.EmailService
	if core.Conf.Debug {
		mailSvc = emailsvc.NewConsoleService()
	} else {
		mailSvc = emailsvc.NewSendgridService(logger)
	}

	students := record.NewStudentRepository(store)
	classes := record.NewClassRepository(store)
	assignments := record.NewAssignmentRepository(store)
	grades := record.NewGradeRepository(store)
	attRepo := record.NewAttendanceRepository(store)
	lessonPlans := record.NewLessonPlanRepository(store)

	gbSvc := gradebook.NewService(assignments, grades, students, classes)
	attSvc := attendance.NewService(attRepo)

	// start API server
	app := echoapi.NewServer(&echoapi.Options{
		Address:       core.Conf.Server.Address,
		Logger:        logger,
		RosterSvc:     roster.NewService(students, classes),
		GradebookSvc:  gbSvc,
		AttendanceSvc: attSvc,
		PlannerSvc:    planner.NewService(lessonPlans, assignments),
		DashboardSvc:  dashboard.NewService(students, classes, assignments, grades, attRepo, lessonPlans),
		ReportSvc:     report.NewService(students, gbSvc, attSvc, mailSvc),
		ExportSvc:     exportsvc.NewService(),
	})
	go app.Start()

	// graceful shutdown on OS signal or an internal integrity failure
	sig := <-app.ShutdownSignal()
	logger.Info(fmt.Sprintf("%v: shutting down...", sig))

	ctx, cancel := context.WithTimeout(context.Background(), core.Conf.Server.ShutdownTimeout)
	defer cancel()
	if err := app.Stop(ctx); err != nil {
		logger.Error(fmt.Sprintf("stopping server: %v", err), err)
	}
}

func openStore() (record.Store, func(), error) {
	noop := func() {}
	switch backend := core.Conf.Store.Backend; backend {
	case "http":
		return record.NewClient(core.Conf.Store), noop, nil
	case "postgres":
		st, err := sqlstore.Open(&core.Conf)
		if err != nil {
			return nil, nil, err
		}
		return st, func() { _ = st.Close() }, nil
	case "inmem":
		return inmemdb.Open(), noop, nil
	default:
		return nil, nil, fmt.Errorf("unknown store backend %q", backend)
	}
}
