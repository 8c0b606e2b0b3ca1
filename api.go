package blogengine

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
)

// jsonError writes the JSON error envelope used by every API endpoint.
func jsonError(c echo.Context, code int, msg string) error {
	return c.JSON(code, echo.Map{"error": msg})
}

// storeError maps store error sentinels onto the API status taxonomy:
// validation and conflicts are client errors, absence is 404, anything
// else bubbles to the central error handler as a 500.
func storeError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, ErrValidation), errors.Is(err, ErrConflict):
		return jsonError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrNotFound):
		return jsonError(c, http.StatusNotFound, err.Error())
	default:
		return err
	}
}

// httpErrorHandler is the boundary where unhandled errors become JSON
// responses. Server errors are logged with their cause; the client only
// sees a generic message.
func (a *App) httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	code := http.StatusInternalServerError
	msg := "Internal server error"
	var he *echo.HTTPError
	if errors.As(err, &he) {
		code = he.Code
		if s, ok := he.Message.(string); ok {
			msg = s
		}
	}
	if code >= 500 {
		c.Logger().Errorf("server error: %v", err)
		msg = "Internal server error"
	}
	_ = jsonError(c, code, msg)
}
