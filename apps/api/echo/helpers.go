package echoapi

import (
	"time"

	"github.com/labstack/echo/v4"

	"github.com/classtrack/classtrack/core"
)

var dayFormat = "2006-01-02"

// dateParam parses an optional YYYY-MM-DD query param, falling back
// when absent.
func dateParam(ctx echo.Context, name string, fallback time.Time) (time.Time, error) {
	raw := ctx.QueryParam(name)
	if raw == "" {
		return fallback, nil
	}
	t, err := time.Parse(dayFormat, raw)
	if err != nil {
		return time.Time{}, core.NewValidationError(nil, core.FieldError{
			Field: name,
			Error: "invalid date, expected " + dayFormat,
		})
	}
	return t, nil
}
