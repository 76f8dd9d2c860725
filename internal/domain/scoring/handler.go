package scoring

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/maternity/records/pkg/respond"
)

// Handler serves scoring charts. Validation failures put the field map in
// "message", and an empty list answers 404 rather than an empty array.
type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.GET("/scoring-charts", h.List)
	api.POST("/scoring-charts", h.Create)
	api.GET("/scoring-charts/:id", h.Get)
	api.PUT("/scoring-charts/:id", h.Update)
	api.DELETE("/scoring-charts/:id", h.Delete)
}

func (h *Handler) List(c echo.Context) error {
	charts, err := h.svc.List(c.Request().Context())
	if err != nil {
		return respond.Error(c, http.StatusInternalServerError, err.Error())
	}
	if len(charts) == 0 {
		return respond.Error(c, http.StatusNotFound, "No scoring charts found")
	}
	return respond.Success(c, http.StatusOK, charts)
}

func (h *Handler) Get(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return respond.Error(c, http.StatusNotFound, "Scoring chart not found")
	}
	chart, err := h.svc.Get(c.Request().Context(), id)
	if errors.Is(err, ErrNotFound) {
		return respond.Error(c, http.StatusNotFound, "Scoring chart not found")
	}
	if err != nil {
		return respond.Error(c, http.StatusInternalServerError, err.Error())
	}
	return respond.Success(c, http.StatusOK, chart)
}

func (h *Handler) Create(c echo.Context) error {
	fields := map[string]interface{}{}
	if err := c.Bind(&fields); err != nil {
		return respond.Error(c, http.StatusBadRequest, "invalid request body")
	}

	chart, errs, err := h.svc.Create(c.Request().Context(), fields)
	if err != nil {
		return respond.Error(c, http.StatusInternalServerError, err.Error())
	}
	if len(errs) > 0 {
		return respond.ErrorPayload(c, http.StatusUnprocessableEntity, errs)
	}
	return respond.Success(c, http.StatusCreated, chart)
}

func (h *Handler) Update(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return respond.Error(c, http.StatusNotFound, "Scoring chart not found")
	}
	fields := map[string]interface{}{}
	if err := c.Bind(&fields); err != nil {
		return respond.Error(c, http.StatusBadRequest, "invalid request body")
	}

	chart, errs, err := h.svc.Update(c.Request().Context(), id, fields)
	if errors.Is(err, ErrNotFound) {
		return respond.Error(c, http.StatusNotFound, "Scoring chart not found")
	}
	if err != nil {
		return respond.Error(c, http.StatusInternalServerError, err.Error())
	}
	if len(errs) > 0 {
		return respond.ErrorPayload(c, http.StatusUnprocessableEntity, errs)
	}
	return respond.Success(c, http.StatusOK, chart)
}

func (h *Handler) Delete(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return respond.Error(c, http.StatusNotFound, "Scoring chart not found")
	}
	err = h.svc.Delete(c.Request().Context(), id)
	if errors.Is(err, ErrNotFound) {
		return respond.Error(c, http.StatusNotFound, "Scoring chart not found")
	}
	if err != nil {
		return respond.Error(c, http.StatusInternalServerError, err.Error())
	}
	return respond.Message(c, http.StatusOK, "Scoring chart deleted successfully")
}

func parseID(c echo.Context) (int64, error) {
	return strconv.ParseInt(c.Param("id"), 10, 64)
}
