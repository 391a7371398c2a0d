package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/classtrack/classtrack/core/report"
)

type reportApi struct {
	service *report.Service
}

func registerReportAPI(g *echo.Group, svc *report.Service) {
	api := reportApi{service: svc}
	g.POST("/students/:id/progress-report", api.sendProgressReport)
}

func (api *reportApi) sendProgressReport(ctx echo.Context) error {
	rpt, err := api.service.Send(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, rpt)
}
