package presenter

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"persondir"
)

type errorResponse struct {
	Error string `json:"error"`
}

// OK wraps a successful response.
func OK(c echo.Context, payload any) error {
	return c.JSON(http.StatusOK, payload)
}

func BadRequestMessage(c echo.Context, msg string) error {
	return c.JSON(http.StatusBadRequest, errorResponse{Error: msg})
}

func NotFound(c echo.Context, msg string) error {
	return c.JSON(http.StatusNotFound, errorResponse{Error: msg})
}

func Conflict(c echo.Context, msg string) error {
	return c.JSON(http.StatusConflict, errorResponse{Error: msg})
}

func InternalError(c echo.Context, err error) error {
	fmt.Println("Internal error:", err)
	return c.JSON(http.StatusInternalServerError, errorResponse{Error: err.Error()})
}

// FromError maps a lookup error to its HTTP shape. Unknown person and unknown
// adviser map to 404, an ambiguous identifier to 409, anything else to 500.
func FromError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, persondir.ErrPersonNotFound):
		return NotFound(c, err.Error())
	case errors.Is(err, persondir.ErrAdviserNotFound):
		return NotFound(c, err.Error())
	case errors.Is(err, persondir.ErrAmbiguousIdentity):
		return Conflict(c, err.Error())
	default:
		return InternalError(c, err)
	}
}
