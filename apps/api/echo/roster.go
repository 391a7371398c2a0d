package echoapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/classtrack/classtrack/core/roster"
)

type rosterApi struct {
	service  *roster.Service
	validate *validator.Validate
}

func registerRosterAPI(g *echo.Group, svc *roster.Service, validate *validator.Validate) {
	api := rosterApi{service: svc, validate: validate}

	sg := g.Group("/students")
	sg.POST("", api.studentCreate)
	sg.GET("", api.studentQuery)
	sg.GET("/:id", api.studentRetrieve)
	sg.PUT("/:id", api.studentUpdate)
	sg.DELETE("/:id", api.studentDestroy)

	cg := g.Group("/classes")
	cg.POST("", api.classCreate)
	cg.GET("", api.classQuery)
	cg.GET("/:id", api.classRetrieve)
	cg.PUT("/:id", api.classUpdate)
	cg.DELETE("/:id", api.classDestroy)
	cg.GET("/:id/roster", api.classRoster)
}

// Handlers

func (api *rosterApi) studentCreate(ctx echo.Context) error {
	data := new(roster.NewStudent)
	if err := ctx.Bind(data); err != nil {
		return err
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	student, err := api.service.CreateStudent(ctx.Request().Context(), *data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, student)
}

func (api *rosterApi) studentQuery(ctx echo.Context) error {
	students, err := api.service.QueryAllStudents(ctx.Request().Context())
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, students)
}

func (api *rosterApi) studentRetrieve(ctx echo.Context) error {
	student, err := api.service.GetStudent(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, student)
}

func (api *rosterApi) studentUpdate(ctx echo.Context) error {
	data := new(roster.UpdateStudent)
	if err := ctx.Bind(data); err != nil {
		return err
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	student, err := api.service.UpdateStudent(ctx.Request().Context(), ctx.Param("id"), *data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, student)
}

func (api *rosterApi) studentDestroy(ctx echo.Context) error {
	if err := api.service.DeleteStudent(ctx.Request().Context(), ctx.Param("id")); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (api *rosterApi) classCreate(ctx echo.Context) error {
	data := new(roster.NewClass)
	if err := ctx.Bind(data); err != nil {
		return err
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	cls, err := api.service.CreateClass(ctx.Request().Context(), *data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, cls)
}

func (api *rosterApi) classQuery(ctx echo.Context) error {
	classes, err := api.service.QueryAllClasses(ctx.Request().Context())
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, classes)
}

func (api *rosterApi) classRetrieve(ctx echo.Context) error {
	cls, err := api.service.GetClass(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, cls)
}

func (api *rosterApi) classUpdate(ctx echo.Context) error {
	data := new(roster.UpdateClass)
	if err := ctx.Bind(data); err != nil {
		return err
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	cls, err := api.service.UpdateClass(ctx.Request().Context(), ctx.Param("id"), *data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, cls)
}

func (api *rosterApi) classDestroy(ctx echo.Context) error {
	if err := api.service.DeleteClass(ctx.Request().Context(), ctx.Param("id")); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (api *rosterApi) classRoster(ctx echo.Context) error {
	students, err := api.service.Roster(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, students)
}
