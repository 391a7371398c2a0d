package echoapi

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/classtrack/classtrack/core"
	"github.com/classtrack/classtrack/core/planner"
)

type plannerApi struct {
	service  *planner.Service
	validate *validator.Validate
}

func registerPlannerAPI(g *echo.Group, svc *planner.Service, validate *validator.Validate) {
	api := plannerApi{service: svc, validate: validate}

	lg := g.Group("/lesson-plans")
	lg.POST("", api.planCreate)
	lg.GET("", api.planQuery)
	lg.GET("/:id", api.planRetrieve)
	lg.PUT("/:id", api.planUpdate)
	lg.DELETE("/:id", api.planDestroy)
	lg.PUT("/:id/reschedule", api.planReschedule)

	pg := g.Group("/planner")
	pg.GET("/week", api.week)
	pg.GET("/month", api.month)
	pg.GET("/upcoming", api.upcoming)
}

// Handlers

func (api *plannerApi) planCreate(ctx echo.Context) error {
	data := new(planner.NewLessonPlan)
	if err := ctx.Bind(data); err != nil {
		return err
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	plan, err := api.service.Create(ctx.Request().Context(), *data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, plan)
}

func (api *plannerApi) planQuery(ctx echo.Context) error {
	plans, err := api.service.QueryAll(ctx.Request().Context())
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, plans)
}

func (api *plannerApi) planRetrieve(ctx echo.Context) error {
	plan, err := api.service.GetByID(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, plan)
}

func (api *plannerApi) planUpdate(ctx echo.Context) error {
	data := new(planner.UpdateLessonPlan)
	if err := ctx.Bind(data); err != nil {
		return err
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	plan, err := api.service.Update(ctx.Request().Context(), ctx.Param("id"), *data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, plan)
}

func (api *plannerApi) planDestroy(ctx echo.Context) error {
	if err := api.service.Delete(ctx.Request().Context(), ctx.Param("id")); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}

type rescheduleRequest struct {
	Date time.Time `json:"date" validate:"required"`
}

func (api *plannerApi) planReschedule(ctx echo.Context) error {
	data := new(rescheduleRequest)
	if err := ctx.Bind(data); err != nil {
		return err
	}
	if err := api.validate.Struct(data); err != nil {
		return err
	}

	plan, err := api.service.Reschedule(ctx.Request().Context(), ctx.Param("id"), data.Date)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, plan)
}

type weekResponse struct {
	Days  []time.Time            `json:"days"`
	Plans [][]planner.LessonPlan `json:"plans"`
}

func (api *plannerApi) week(ctx echo.Context) error {
	t, err := dateParam(ctx, "date", time.Now())
	if err != nil {
		return err
	}
	plans, days, err := api.service.Week(ctx.Request().Context(), t)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, weekResponse{Days: days, Plans: plans})
}

func (api *plannerApi) month(ctx echo.Context) error {
	now := time.Now()
	year, err := intParam(ctx, "year", now.Year())
	if err != nil {
		return err
	}
	month, err := intParam(ctx, "month", int(now.Month()))
	if err != nil {
		return err
	}
	if month < 1 || month > 12 {
		return core.NewValidationError(nil, core.FieldError{Field: "month", Error: "month must be between 1 and 12"})
	}

	cells, err := api.service.Month(ctx.Request().Context(), year, time.Month(month))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, cells)
}

func (api *plannerApi) upcoming(ctx echo.Context) error {
	max, err := intParam(ctx, "max", 5)
	if err != nil {
		return err
	}
	events, err := api.service.Upcoming(ctx.Request().Context(), time.Now(), max)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, events)
}

func intParam(ctx echo.Context, name string, fallback int) (int, error) {
	raw := ctx.QueryParam(name)
	if raw == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, core.NewValidationError(nil, core.FieldError{Field: name, Error: "invalid number"})
	}
	return n, nil
}
