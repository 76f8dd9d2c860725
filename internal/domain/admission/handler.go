package admission

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
	api.GET("/patient-admissions", h.List)
	api.POST("/patient-admissions", h.Create)
	api.GET("/patient-admissions/:id", h.Get)
	api.PUT("/patient-admissions/:id", h.Update)
	api.DELETE("/patient-admissions/:id", h.Delete)
}

func (h *Handler) List(c echo.Context) error {
	adms, err := h.svc.List(c.Request().Context())
	if err != nil {
		return respond.Error(c, http.StatusInternalServerError, err.Error())
	}
	if adms == nil {
		adms = []*PatientAdmission{}
	}
	return respond.Success(c, http.StatusOK, adms)
}

func (h *Handler) Get(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return respond.Error(c, http.StatusBadRequest, "invalid id")
	}
	adm, err := h.svc.Get(c.Request().Context(), id)
	if errors.Is(err, ErrNotFound) {
		return respond.Error(c, http.StatusNotFound, "Patient admission not found")
	}
	if err != nil {
		return respond.Error(c, http.StatusInternalServerError, err.Error())
	}
	return respond.Success(c, http.StatusOK, adm)
}

func (h *Handler) Create(c echo.Context) error {
	fields := map[string]interface{}{}
	if err := c.Bind(&fields); err != nil {
		return respond.Error(c, http.StatusBadRequest, "invalid request body")
	}

	adm, errs, err := h.svc.Create(c.Request().Context(), fields)
	if err != nil {
		return respond.Error(c, http.StatusInternalServerError, err.Error())
	}
	if len(errs) > 0 {
		return respond.ValidationFailed(c, errs)
	}
	return respond.SuccessMessage(c, http.StatusCreated, "Patient admission created successfully", adm)
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

	adm, errs, err := h.svc.Update(c.Request().Context(), id, fields)
	if errors.Is(err, ErrNotFound) {
		return respond.Error(c, http.StatusNotFound, "Patient admission not found")
	}
	if err != nil {
		return respond.Error(c, http.StatusInternalServerError, err.Error())
	}
	if len(errs) > 0 {
		return respond.ValidationFailed(c, errs)
	}
	return respond.SuccessMessage(c, http.StatusOK, "Patient admission updated successfully", adm)
}

func (h *Handler) Delete(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return respond.Error(c, http.StatusBadRequest, "invalid id")
	}
	err = h.svc.SoftDelete(c.Request().Context(), id)
	if errors.Is(err, ErrNotFound) {
		return respond.Error(c, http.StatusNotFound, "Patient admission not found")
	}
	if err != nil {
		return respond.Error(c, http.StatusInternalServerError, err.Error())
	}
	return respond.Message(c, http.StatusOK, "Patient admission deleted successfully")
}

func parseID(c echo.Context) (int64, error) {
	return strconv.ParseInt(c.Param("id"), 10, 64)
}
