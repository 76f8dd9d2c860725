package scheduling

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/maternity/records/pkg/respond"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.GET("/appointments", h.List)
	api.POST("/appointments", h.Create)
	api.GET("/appointments/:id", h.Get)
	api.PUT("/appointments/:id", h.Update)
	api.DELETE("/appointments/:id", h.Delete)
}

func (h *Handler) List(c echo.Context) error {
	appts, err := h.svc.List(c.Request().Context())
	if err != nil {
		return respond.Error(c, http.StatusInternalServerError, err.Error())
	}
	if appts == nil {
		appts = []*Appointment{}
	}
	return respond.Success(c, http.StatusOK, appts)
}

func (h *Handler) Get(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return respond.Error(c, http.StatusBadRequest, "invalid id")
	}
	appt, err := h.svc.Get(c.Request().Context(), id)
	if errors.Is(err, ErrNotFound) {
		return respond.Error(c, http.StatusNotFound, "Appointment not found")
	}
	if err != nil {
		return respond.Error(c, http.StatusInternalServerError, err.Error())
	}
	return respond.Success(c, http.StatusOK, appt)
}

func (h *Handler) Create(c echo.Context) error {
	fields := map[string]interface{}{}
	if err := c.Bind(&fields); err != nil {
		return respond.Error(c, http.StatusBadRequest, "invalid request body")
	}

	appt, errs, err := h.svc.Create(c.Request().Context(), fields)
	if err != nil {
		return respond.Error(c, http.StatusInternalServerError, err.Error())
	}
	if len(errs) > 0 {
		return respond.ValidationFailed(c, errs)
	}
	return respond.SuccessMessage(c, http.StatusCreated, "Appointment created successfully", appt)
}

func (h *Handler) Update(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return respond.Error(c, http.StatusBadRequest, "invalid id")
	}
	fields := map[string]interface{}{}
	if err := c.Bind(&fields); err != nil {
		return respond.Error(c, http.StatusBadRequest, "invalid request body")
	}

	appt, errs, err := h.svc.Update(c.Request().Context(), id, fields)
	if errors.Is(err, ErrNotFound) {
		return respond.Error(c, http.StatusNotFound, "Appointment not found")
	}
	if err != nil {
		return respond.Error(c, http.StatusInternalServerError, err.Error())
	}
	if len(errs) > 0 {
		// This endpoint reports validation failures with the field map in
		// "message", not "errors". Clients depend on the shape.
		return respond.ErrorPayload(c, http.StatusUnprocessableEntity, errs)
	}
	return respond.SuccessMessage(c, http.StatusOK, "Appointment updated successfully", appt)
}

func (h *Handler) Delete(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return respond.Error(c, http.StatusBadRequest, "invalid id")
	}
	err = h.svc.Delete(c.Request().Context(), id)
	if errors.Is(err, ErrNotFound) {
		return respond.Error(c, http.StatusNotFound, "Appointment not found")
	}
	if err != nil {
		return respond.Error(c, http.StatusInternalServerError, err.Error())
	}
	return respond.Message(c, http.StatusOK, "Appointment deleted successfully")
}

func parseID(c echo.Context) (int64, error) {
	return strconv.ParseInt(c.Param("id"), 10, 64)
}
