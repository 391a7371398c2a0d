package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/classtrack/classtrack/core/dashboard"
)

type dashboardApi struct {
	service *dashboard.Service
}

func registerDashboardAPI(g *echo.Group, svc *dashboard.Service) {
	api := dashboardApi{service: svc}
	g.GET("/dashboard", api.overview)
}

func (api *dashboardApi) overview(ctx echo.Context) error {
	overview, err := api.service.Overview(ctx.Request().Context())
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, overview)
}
