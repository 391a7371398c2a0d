package echoapi

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"

	"github.com/classtrack/classtrack/core"
	"github.com/classtrack/classtrack/core/attendance"
	"github.com/classtrack/classtrack/core/dashboard"
	"github.com/classtrack/classtrack/core/gradebook"
	"github.com/classtrack/classtrack/core/planner"
	"github.com/classtrack/classtrack/core/report"
	"github.com/classtrack/classtrack/core/roster"
	exportsvc "github.com/classtrack/classtrack/services/export"
)

type (
	Options struct {
		Address        string
		DisableReqLogs bool
		Logger         core.Logger

		RosterSvc     *roster.Service
		GradebookSvc  *gradebook.Service
		AttendanceSvc *attendance.Service
		PlannerSvc    *planner.Service
		DashboardSvc  *dashboard.Service
		ReportSvc     *report.Service
		ExportSvc     *exportsvc.Service
	}

	Server interface {
		http.Handler
		Start()
		Stop(context.Context) error
		ShutdownSignal() <-chan os.Signal
	}

	server struct {
		opts       *Options
		app        *echo.Echo
		validate   *validator.Validate
		translator ut.Translator
		shutdown   chan os.Signal
	}
)

var _ Server = (*server)(nil)

func NewServer(opts *Options) Server {
	validate, translator := newValidator()
	s := &server{
		opts:       opts,
		app:        echo.New(),
		validate:   validate,
		translator: translator,
		shutdown:   make(chan os.Signal, 1),
	}
	signal.Notify(s.shutdown, os.Interrupt, syscall.SIGTERM)
	s.setup()
	return s
}

func newValidator() (*validator.Validate, ut.Translator) {
	english := en.New()
	translator, _ := ut.New(english, english).GetTranslator("en")
	validate := validator.New()
	core.InitValidators(validate, translator)
	return validate, translator
}

func (s *server) setup() {
	s.app.Pre(middleware.RemoveTrailingSlash())
	if !s.opts.DisableReqLogs {
		s.app.Use(middleware.Logger())
	}
	// do not recover in DEV|TEST mode
	if !(core.Conf.Debug || core.Conf.TestMode) {
		s.app.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{LogLevel: log.ERROR}))
	}

	s.app.HTTPErrorHandler = newAppHTTPErrorHandler(s.opts.Logger, s.translator, s.signalShutdown)
	s.app.Debug = core.Conf.Debug

	s.app.GET("/", home)

	v1 := s.app.Group("/v1")
	registerRosterAPI(v1, s.opts.RosterSvc, s.validate)
	registerGradebookAPI(v1, s.opts.GradebookSvc, s.validate)
	registerAttendanceAPI(v1, s.opts.AttendanceSvc, s.validate)
	registerPlannerAPI(v1, s.opts.PlannerSvc, s.validate)
	registerDashboardAPI(v1, s.opts.DashboardSvc)
	registerReportAPI(v1, s.opts.ReportSvc)
	registerExportAPI(v1, s.opts.ExportSvc, s.opts.GradebookSvc, s.opts.AttendanceSvc, s.opts.RosterSvc)
}

func (s *server) Start() {
	s.app.Logger.Fatal(s.app.Start(s.opts.Address))
}

func (s *server) Stop(ctx context.Context) error {
	return s.app.Shutdown(ctx)
}

// ShutdownSignal reports OS interrupts and internal integrity failures
// that require the app to stop.
func (s *server) ShutdownSignal() <-chan os.Signal {
	return s.shutdown
}

func (s *server) signalShutdown() {
	s.shutdown <- syscall.SIGTERM
}

func (s *server) ServeHTTP(w http.ResponseWriter, r *http.Request) { // for tests
	s.app.ServeHTTP(w, r)
}

func home(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Welcome to ClassTrack API!")
}
