package echoapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/classtrack/classtrack/core/gradebook"
)

type gradebookApi struct {
	service  *gradebook.Service
	validate *validator.Validate
}

func registerGradebookAPI(g *echo.Group, svc *gradebook.Service, validate *validator.Validate) {
	api := gradebookApi{service: svc, validate: validate}

	ag := g.Group("/assignments")
	ag.POST("", api.assignmentCreate)
	ag.GET("", api.assignmentQuery)
	ag.GET("/:id", api.assignmentRetrieve)
	ag.PUT("/:id", api.assignmentUpdate)
	ag.DELETE("/:id", api.assignmentDestroy)

	gg := g.Group("/grades")
	gg.POST("", api.gradeCreate)
	gg.GET("", api.gradeQuery)
	gg.POST("/score", api.recordScore)
	gg.GET("/:id", api.gradeRetrieve)
	gg.PUT("/:id", api.gradeUpdate)
	gg.DELETE("/:id", api.gradeDestroy)

	g.GET("/classes/:id/gradebook", api.classGrid)
	g.GET("/students/:id/averages", api.studentAverages)
}

// Handlers

func (api *gradebookApi) assignmentCreate(ctx echo.Context) error {
	data := new(gradebook.NewAssignment)
	if err := ctx.Bind(data); err != nil {
		return err
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	a, err := api.service.CreateAssignment(ctx.Request().Context(), *data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, a)
}

func (api *gradebookApi) assignmentQuery(ctx echo.Context) error {
	assignments, err := api.service.QueryAllAssignments(ctx.Request().Context())
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, assignments)
}

func (api *gradebookApi) assignmentRetrieve(ctx echo.Context) error {
	a, err := api.service.GetAssignment(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, a)
}

func (api *gradebookApi) assignmentUpdate(ctx echo.Context) error {
	data := new(gradebook.UpdateAssignment)
	if err := ctx.Bind(data); err != nil {
		return err
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	a, err := api.service.UpdateAssignment(ctx.Request().Context(), ctx.Param("id"), *data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, a)
}

func (api *gradebookApi) assignmentDestroy(ctx echo.Context) error {
	if err := api.service.DeleteAssignment(ctx.Request().Context(), ctx.Param("id")); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (api *gradebookApi) gradeCreate(ctx echo.Context) error {
	data := new(gradebook.NewGrade)
	if err := ctx.Bind(data); err != nil {
		return err
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	grade, err := api.service.CreateGrade(ctx.Request().Context(), *data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, grade)
}

func (api *gradebookApi) gradeQuery(ctx echo.Context) error {
	grades, err := api.service.QueryAllGrades(ctx.Request().Context())
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, grades)
}

// recordScore is the gradebook cell edit: it creates or overwrites the
// (student, assignment) grade.
func (api *gradebookApi) recordScore(ctx echo.Context) error {
	data := new(gradebook.ScoreInput)
	if err := ctx.Bind(data); err != nil {
		return err
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	grade, err := api.service.RecordScore(ctx.Request().Context(), *data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, grade)
}

func (api *gradebookApi) gradeRetrieve(ctx echo.Context) error {
	grade, err := api.service.GetGrade(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, grade)
}

func (api *gradebookApi) gradeUpdate(ctx echo.Context) error {
	data := new(gradebook.UpdateGrade)
	if err := ctx.Bind(data); err != nil {
		return err
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	grade, err := api.service.UpdateGrade(ctx.Request().Context(), ctx.Param("id"), *data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, grade)
}

func (api *gradebookApi) gradeDestroy(ctx echo.Context) error {
	if err := api.service.DeleteGrade(ctx.Request().Context(), ctx.Param("id")); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (api *gradebookApi) classGrid(ctx echo.Context) error {
	grid, err := api.service.Grid(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, grid)
}

func (api *gradebookApi) studentAverages(ctx echo.Context) error {
	averages, err := api.service.StudentAverages(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, averages)
}
