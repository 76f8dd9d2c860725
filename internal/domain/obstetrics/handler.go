package obstetrics

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/maternity/records/pkg/respond"
)

// Handler serves both resources. The two predate the shared envelope and
// keep their historical wire shapes: sheets report validation failures as
// a bare 400 {"errors": ...} and deletes answer 204 with a body;
// pregnancy records skip the envelope entirely.
type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.GET("/obstetric-sheets", h.ListSheets)
	api.POST("/obstetric-sheets", h.CreateSheet)
	api.GET("/obstetric-sheets/:id", h.GetSheet)
	api.PUT("/obstetric-sheets/:id", h.UpdateSheet)
	api.DELETE("/obstetric-sheets/:id", h.DeleteSheet)

	api.GET("/pregnancy-records", h.ListRecords)
	api.POST("/pregnancy-records", h.CreateRecord)
	api.GET("/pregnancy-records/:id", h.GetRecord)
	api.PUT("/pregnancy-records/:id", h.UpdateRecord)
	api.DELETE("/pregnancy-records/:id", h.DeleteRecord)
}

// -- Obstetric sheets --

func (h *Handler) ListSheets(c echo.Context) error {
	sheets, err := h.svc.ListSheets(c.Request().Context())
	if err != nil {
		return respond.Error(c, http.StatusInternalServerError, err.Error())
	}
	if sheets == nil {
		sheets = []*ObstetricSheet{}
	}
	return respond.Success(c, http.StatusOK, sheets)
}

func (h *Handler) GetSheet(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"message": "Not found"})
	}
	sheet, err := h.svc.GetSheet(c.Request().Context(), id)
	if errors.Is(err, ErrNotFound) {
		return c.JSON(http.StatusNotFound, map[string]string{"message": "Not found"})
	}
	if err != nil {
		return respond.Error(c, http.StatusInternalServerError, err.Error())
	}
	return respond.Success(c, http.StatusOK, sheet)
}

func (h *Handler) CreateSheet(c echo.Context) error {
	fields := map[string]interface{}{}
	if err := c.Bind(&fields); err != nil {
		return respond.Error(c, http.StatusBadRequest, "invalid request body")
	}

	sheet, errs, err := h.svc.CreateSheet(c.Request().Context(), fields)
	if err != nil {
		return respond.Error(c, http.StatusInternalServerError, err.Error())
	}
	if len(errs) > 0 {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{"errors": errs})
	}
	return respond.SuccessMessage(c, http.StatusCreated, "Obstetric sheet created successfully", sheet)
}

func (h *Handler) UpdateSheet(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"message": "Not found"})
	}
	fields := map[string]interface{}{}
	if err := c.Bind(&fields); err != nil {
		return respond.Error(c, http.StatusBadRequest, "invalid request body")
	}

	sheet, errs, err := h.svc.UpdateSheet(c.Request().Context(), id, fields)
	if errors.Is(err, ErrNotFound) {
		return c.JSON(http.StatusNotFound, map[string]string{"message": "Not found"})
	}
	if err != nil {
		return respond.Error(c, http.StatusInternalServerError, err.Error())
	}
	if len(errs) > 0 {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{"errors": errs})
	}
	return respond.SuccessMessage(c, http.StatusOK, "Sheet updated successfully", sheet)
}

func (h *Handler) DeleteSheet(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"message": "Not found"})
	}
	err = h.svc.DeleteSheet(c.Request().Context(), id)
	if errors.Is(err, ErrNotFound) {
		return c.JSON(http.StatusNotFound, map[string]string{"message": "Not found"})
	}
	if err != nil {
		return respond.Error(c, http.StatusInternalServerError, err.Error())
	}
	// Historical quirk: a 204 that carries a success envelope.
	return respond.Message(c, http.StatusNoContent, "Sheet deleted successfully.")
}

// -- Pregnancy records (raw JSON, no envelope) --

func (h *Handler) ListRecords(c echo.Context) error {
	recs, err := h.svc.ListRecords(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	if recs == nil {
		recs = []*PregnancyRecord{}
	}
	return c.JSON(http.StatusOK, recs)
}

func (h *Handler) GetRecord(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Not Found"})
	}
	rec, err := h.svc.GetRecord(c.Request().Context(), id)
	if errors.Is(err, ErrNotFound) {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Not Found"})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, rec)
}

func (h *Handler) CreateRecord(c echo.Context) error {
	fields := map[string]interface{}{}
	if err := c.Bind(&fields); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}

	rec, errs, err := h.svc.CreateRecord(c.Request().Context(), fields)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	if len(errs) > 0 {
		return c.JSON(http.StatusUnprocessableEntity, map[string]interface{}{"errors": errs})
	}
	return c.JSON(http.StatusCreated, rec)
}

func (h *Handler) UpdateRecord(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Not Found"})
	}
	fields := map[string]interface{}{}
	if err := c.Bind(&fields); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}

	rec, errs, err := h.svc.UpdateRecord(c.Request().Context(), id, fields)
	if errors.Is(err, ErrNotFound) {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Not Found"})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	if len(errs) > 0 {
		return c.JSON(http.StatusUnprocessableEntity, map[string]interface{}{"errors": errs})
	}
	return c.JSON(http.StatusOK, rec)
}

func (h *Handler) DeleteRecord(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Not Found"})
	}
	err = h.svc.DeleteRecord(c.Request().Context(), id)
	if errors.Is(err, ErrNotFound) {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Not Found"})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusNoContent, nil)
}

func parseID(c echo.Context) (int64, error) {
	return strconv.ParseInt(c.Param("id"), 10, 64)
}
