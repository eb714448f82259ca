package medicalrecord

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/hms/hms/internal/platform/apperr"
	"github.com/hms/hms/internal/platform/report"
	"github.com/hms/hms/pkg/pagination"
)

type Handler struct {
	svc      *Service
	hospital report.Hospital
}

func NewHandler(svc *Service, hospital report.Hospital) *Handler {
	return &Handler{svc: svc, hospital: hospital}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.POST("/medical-records", h.Create)
	api.GET("/medical-records", h.List)
	api.GET("/medical-records/report", h.Report)
	api.GET("/medical-records/analytics", h.Analytics)
	api.GET("/medical-records/:id", h.Get)
	api.PUT("/medical-records/:id", h.Update)
	api.DELETE("/medical-records/:id", h.Delete)
}

func (h *Handler) Create(c echo.Context) error {
	var m MedicalRecord
	if err := c.Bind(&m); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := h.svc.Create(c.Request().Context(), &m); err != nil {
		return echo.NewHTTPError(apperr.HTTPStatus(err), err.Error())
	}
	return c.JSON(http.StatusCreated, m)
}

// List filters by national_id (exact); without it every record is returned,
// newest visit first.
func (h *Handler) List(c echo.Context) error {
	items, err := h.svc.Search(c.Request().Context(), c.QueryParam("national_id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	pg := pagination.FromContext(c)
	lo, hi := pg.Window(len(items))
	return c.JSON(http.StatusOK, pagination.NewResponse(items[lo:hi], len(items), pg))
}

func (h *Handler) Get(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	m, err := h.svc.Get(c.Request().Context(), id)
	if err != nil {
		return echo.NewHTTPError(apperr.HTTPStatus(err), err.Error())
	}
	return c.JSON(http.StatusOK, m)
}

func (h *Handler) Update(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	var m MedicalRecord
	if err := c.Bind(&m); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	m.ID = id
	if err := h.svc.Update(c.Request().Context(), &m); err != nil {
		return echo.NewHTTPError(apperr.HTTPStatus(err), err.Error())
	}
	return c.JSON(http.StatusOK, m)
}

func (h *Handler) Delete(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	if err := h.svc.Delete(c.Request().Context(), id); err != nil {
		return echo.NewHTTPError(apperr.HTTPStatus(err), err.Error())
	}
	return c.NoContent(http.StatusNoContent)
}

// Report streams the patient's visit history as a PDF attachment.
func (h *Handler) Report(c echo.Context) error {
	nid := c.QueryParam("national_id")
	if nid == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "national_id is required")
	}
	pdf, filename, err := h.svc.Report(c.Request().Context(), nid, h.hospital)
	if err != nil {
		return echo.NewHTTPError(apperr.HTTPStatus(err), err.Error())
	}
	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename=%q`, filename))
	return c.Blob(http.StatusOK, "application/pdf", pdf)
}

// Analytics returns chart-ready series for the patient's history.
func (h *Handler) Analytics(c echo.Context) error {
	nid := c.QueryParam("national_id")
	if nid == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "national_id is required")
	}
	a, err := h.svc.Analytics(c.Request().Context(), nid)
	if err != nil {
		return echo.NewHTTPError(apperr.HTTPStatus(err), err.Error())
	}
	return c.JSON(http.StatusOK, a)
}
