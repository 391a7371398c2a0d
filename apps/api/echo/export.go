package echoapi

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/classtrack/classtrack/core/attendance"
	"github.com/classtrack/classtrack/core/gradebook"
	"github.com/classtrack/classtrack/core/roster"
	exportsvc "github.com/classtrack/classtrack/services/export"
)

type exportApi struct {
	service    *exportsvc.Service
	gradebook  *gradebook.Service
	attendance *attendance.Service
	roster     *roster.Service
}

func registerExportAPI(
	g *echo.Group,
	svc *exportsvc.Service,
	gb *gradebook.Service,
	atts *attendance.Service,
	ros *roster.Service,
) {
	api := exportApi{service: svc, gradebook: gb, attendance: atts, roster: ros}

	g.GET("/classes/:id/gradebook/export", api.gradebookExport)
	g.GET("/attendance/export", api.attendanceExport)
}

func attachmentHeaders(ctx echo.Context, filename string) {
	ctx.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf("attachment; filename=%q", filename))
}

func (api *exportApi) gradebookExport(ctx echo.Context) error {
	grid, err := api.gradebook.Grid(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return err
	}
	buf, err := api.service.GradebookWorkbook(grid)
	if err != nil {
		return err
	}

	attachmentHeaders(ctx, fmt.Sprintf("gradebook-%s.xlsx", ctx.Param("id")))
	return ctx.Blob(http.StatusOK, exportsvc.XlsxContentType, buf.Bytes())
}

func (api *exportApi) attendanceExport(ctx echo.Context) error {
	records, err := api.attendance.QueryAll(ctx.Request().Context())
	if err != nil {
		return err
	}
	students, err := api.roster.QueryAllStudents(ctx.Request().Context())
	if err != nil {
		return err
	}
	buf, err := api.service.AttendanceWorkbook(records, students)
	if err != nil {
		return err
	}

	attachmentHeaders(ctx, "attendance.xlsx")
	return ctx.Blob(http.StatusOK, exportsvc.XlsxContentType, buf.Bytes())
}
