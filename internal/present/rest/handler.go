package rest

import (
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"persondir"
	"persondir/internal/present/rest/presenter"
)

// Handler exposes the directory contract over HTTP. It is backend-agnostic:
// any Client works, live or fixture.
type Handler struct {
	client persondir.Client
}

func NewHandler(client persondir.Client) *Handler {
	return &Handler{client: client}
}

func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.GET("/api/v1/persons", h.handlePersons)
	e.GET("/api/v1/persons/netid/:netid", h.handlePersonByNetID)
	e.GET("/api/v1/persons/regid/:regid", h.handlePersonByRegID)
	e.GET("/api/v1/persons/student-number/:number", h.handlePersonByStudentNumber)
	e.GET("/api/v1/persons/system-key/:key", h.handlePersonBySystemKey)
	e.GET("/api/v1/students/registered", h.handleRegisteredStudents)
	e.GET("/api/v1/students/active", h.handleActiveStudents)
	e.GET("/api/v1/employees/active", h.handleActiveEmployees)
	e.GET("/api/v1/advisers", h.handleAdvisers)
	e.GET("/api/v1/advisers/netid/:netid/caseload", h.handleCaseloadByNetID)
	e.GET("/api/v1/advisers/regid/:regid/caseload", h.handleCaseloadByRegID)
}

// parseQuery reads the shared list parameters. exclude is a comma-separated
// list of attribute names to leave out of the projection.
func parseQuery(c echo.Context) (persondir.Query, error) {
	q := persondir.Query{Include: parseInclude(c)}

	pageStr := c.QueryParam("page")
	if pageStr != "" {
		page, err := strconv.Atoi(pageStr)
		if err != nil || page < 1 {
			return q, echo.NewHTTPError(400, "invalid page parameter")
		}
		q.Page = page
	}
	sizeStr := c.QueryParam("page_size")
	if sizeStr != "" {
		size, err := strconv.Atoi(sizeStr)
		if err != nil || size < 1 {
			return q, echo.NewHTTPError(400, "invalid page_size parameter")
		}
		q.PageSize = size
	}
	return q, nil
}

func parseInclude(c echo.Context) persondir.Include {
	excluded := c.QueryParam("exclude")
	if excluded == "" {
		return nil
	}
	inc := persondir.Include{}
	for _, name := range strings.Split(excluded, ",") {
		name = strings.TrimSpace(name)
		if name != "" {
			inc[name] = false
		}
	}
	return inc
}

func (h *Handler) handlePersonByNetID(c echo.Context) error {
	ctx := c.Request().Context()
	p, err := h.client.GetPersonByNetID(ctx, c.Param("netid"), parseInclude(c))
	if err != nil {
		return presenter.FromError(c, err)
	}
	return presenter.OK(c, p)
}

func (h *Handler) handlePersonByRegID(c echo.Context) error {
	ctx := c.Request().Context()
	p, err := h.client.GetPersonByRegID(ctx, c.Param("regid"), parseInclude(c))
	if err != nil {
		return presenter.FromError(c, err)
	}
	return presenter.OK(c, p)
}

func (h *Handler) handlePersonByStudentNumber(c echo.Context) error {
	ctx := c.Request().Context()
	p, err := h.client.GetPersonByStudentNumber(ctx, c.Param("number"), parseInclude(c))
	if err != nil {
		return presenter.FromError(c, err)
	}
	return presenter.OK(c, p)
}

func (h *Handler) handlePersonBySystemKey(c echo.Context) error {
	ctx := c.Request().Context()
	p, err := h.client.GetPersonBySystemKey(ctx, c.Param("key"), parseInclude(c))
	if err != nil {
		return presenter.FromError(c, err)
	}
	return presenter.OK(c, p)
}

func (h *Handler) handlePersons(c echo.Context) error {
	ctx := c.Request().Context()
	q, err := parseQuery(c)
	if err != nil {
		return err
	}
	persons, err := h.client.GetPersons(ctx, q)
	if err != nil {
		return presenter.FromError(c, err)
	}
	return presenter.OK(c, persons)
}

func (h *Handler) handleRegisteredStudents(c echo.Context) error {
	ctx := c.Request().Context()
	q, err := parseQuery(c)
	if err != nil {
		return err
	}
	persons, err := h.client.GetRegisteredStudents(ctx, q)
	if err != nil {
		return presenter.FromError(c, err)
	}
	return presenter.OK(c, persons)
}

func (h *Handler) handleActiveStudents(c echo.Context) error {
	ctx := c.Request().Context()
	q, err := parseQuery(c)
	if err != nil {
		return err
	}
	persons, err := h.client.GetActiveStudents(ctx, q)
	if err != nil {
		return presenter.FromError(c, err)
	}
	return presenter.OK(c, persons)
}

func (h *Handler) handleActiveEmployees(c echo.Context) error {
	ctx := c.Request().Context()
	q, err := parseQuery(c)
	if err != nil {
		return err
	}
	persons, err := h.client.GetActiveEmployees(ctx, q)
	if err != nil {
		return presenter.FromError(c, err)
	}
	return presenter.OK(c, persons)
}

func (h *Handler) handleAdvisers(c echo.Context) error {
	ctx := c.Request().Context()
	q, err := parseQuery(c)
	if err != nil {
		return err
	}
	persons, err := h.client.GetAdvisers(ctx, c.QueryParam("program"), q)
	if err != nil {
		return presenter.FromError(c, err)
	}
	return presenter.OK(c, persons)
}

func (h *Handler) handleCaseloadByNetID(c echo.Context) error {
	ctx := c.Request().Context()
	q, err := parseQuery(c)
	if err != nil {
		return err
	}
	persons, err := h.client.GetPersonsByAdviserNetID(ctx, c.Param("netid"), q)
	if err != nil {
		return presenter.FromError(c, err)
	}
	return presenter.OK(c, persons)
}

func (h *Handler) handleCaseloadByRegID(c echo.Context) error {
	ctx := c.Request().Context()
	q, err := parseQuery(c)
	if err != nil {
		return err
	}
	persons, err := h.client.GetPersonsByAdviserRegID(ctx, c.Param("regid"), q)
	if err != nil {
		return presenter.FromError(c, err)
	}
	return presenter.OK(c, persons)
}
