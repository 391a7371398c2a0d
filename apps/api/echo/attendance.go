package echoapi

import (
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/classtrack/classtrack/core/attendance"
)

type attendanceApi struct {
	service  *attendance.Service
	validate *validator.Validate
}

func registerAttendanceAPI(g *echo.Group, svc *attendance.Service, validate *validator.Validate) {
	api := attendanceApi{service: svc, validate: validate}

	ag := g.Group("/attendance")
	ag.POST("", api.recordCreate)
	ag.GET("", api.recordQuery)
	ag.GET("/summary", api.daySummary)
	ag.GET("/:id", api.recordRetrieve)
	ag.PUT("/:id", api.recordUpdate)
	ag.DELETE("/:id", api.recordDestroy)

	g.GET("/students/:id/attendance-rate", api.studentRate)
}

// Handlers

func (api *attendanceApi) recordCreate(ctx echo.Context) error {
	data := new(attendance.NewRecord)
	if err := ctx.Bind(data); err != nil {
		return err
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	rec, err := api.service.Create(ctx.Request().Context(), *data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, rec)
}

func (api *attendanceApi) recordQuery(ctx echo.Context) error {
	records, err := api.service.QueryAll(ctx.Request().Context())
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, records)
}

func (api *attendanceApi) recordRetrieve(ctx echo.Context) error {
	rec, err := api.service.GetByID(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, rec)
}

func (api *attendanceApi) recordUpdate(ctx echo.Context) error {
	data := new(attendance.UpdateRecord)
	if err := ctx.Bind(data); err != nil {
		return err
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	rec, err := api.service.Update(ctx.Request().Context(), ctx.Param("id"), *data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, rec)
}

func (api *attendanceApi) recordDestroy(ctx echo.Context) error {
	if err := api.service.Delete(ctx.Request().Context(), ctx.Param("id")); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}

// daySummary reports one day's attendance across all students;
// defaults to today.
func (api *attendanceApi) daySummary(ctx echo.Context) error {
	day, err := dateParam(ctx, "date", time.Now())
	if err != nil {
		return err
	}
	records, err := api.service.QueryAll(ctx.Request().Context())
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, attendance.SummarizeDay(day, records))
}

func (api *attendanceApi) studentRate(ctx echo.Context) error {
	rate, err := api.service.StudentRate(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, echo.Map{"rate": rate})
}
