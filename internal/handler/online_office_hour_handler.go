package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ucsb-cslas/cslas-api/internal/middleware"
	"github.com/ucsb-cslas/cslas-api/internal/models"
	"github.com/ucsb-cslas/cslas-api/internal/service"
	appErrors "github.com/ucsb-cslas/cslas-api/pkg/errors"
	"github.com/ucsb-cslas/cslas-api/pkg/response"
)

type officeHourService interface {
	List(ctx context.Context) ([]models.OnlineOfficeHour, error)
	Get(ctx context.Context, id int64) (*models.OnlineOfficeHour, error)
	Create(ctx context.Context, oh *models.OnlineOfficeHour) (*models.OnlineOfficeHour, error)
	Delete(ctx context.Context, id int64) error
}

type officeHourExporter interface {
	Export(ctx context.Context, format string) (*service.ExportResult, error)
}

// OnlineOfficeHourHandler exposes online office hour endpoints.
type OnlineOfficeHourHandler struct {
	service  officeHourService
	admins   service.AdminChecker
	exporter officeHourExporter
}

// NewOnlineOfficeHourHandler constructs the handler. exporter may be nil when exports are disabled.
func NewOnlineOfficeHourHandler(svc officeHourService, admins service.AdminChecker, exporter officeHourExporter) *OnlineOfficeHourHandler {
	return &OnlineOfficeHourHandler{service: svc, admins: admins, exporter: exporter}
}

// List godoc
// @Summary List online office hours
// @Tags Online Office Hours
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.OnlineOfficeHour
// @Router /api/public/officeHours [get]
func (h *OnlineOfficeHourHandler) List(c *gin.Context) {
	items, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, items)
}

// Get godoc
// @Summary Get an online office hour
// @Tags Online Office Hours
// @Produce json
// @Security BearerAuth
// @Param id path int true "Office hour ID"
// @Success 200 {object} models.OnlineOfficeHour
// @Failure 404 {object} response.Envelope
// @Router /api/public/officeHours/{id} [get]
func (h *OnlineOfficeHourHandler) Get(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	item, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, item)
}

// Create godoc
// @Summary Create an online office hour
// @Tags Online Office Hours
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body models.OnlineOfficeHour true "Office hour payload"
// @Success 200 {object} models.OnlineOfficeHour
// @Failure 401 {object} response.Envelope
// @Router /api/admin/officeHours [post]
func (h *OnlineOfficeHourHandler) Create(c *gin.Context) {
	if !h.requireAdmin(c) {
		return
	}
	var req models.OnlineOfficeHour
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid request body"))
		return
	}
	saved, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	middleware.SetResourceID(c, strconv.FormatInt(saved.ID, 10))
	response.JSON(c, http.StatusOK, saved)
}

// Delete godoc
// @Summary Delete an online office hour
// @Tags Online Office Hours
// @Security BearerAuth
// @Param id path int true "Office hour ID"
// @Success 204
// @Failure 401 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /api/public/officeHours/{id} [delete]
func (h *OnlineOfficeHourHandler) Delete(c *gin.Context) {
	if !h.requireAdmin(c) {
		return
	}
	id, err := idParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// DeleteWithoutID answers a collection DELETE. Admins get 404 since no
// office hour is named; everyone else is refused first.
func (h *OnlineOfficeHourHandler) DeleteWithoutID(c *gin.Context) {
	if !h.requireAdmin(c) {
		return
	}
	response.Error(c, appErrors.Clone(appErrors.ErrNotFound, "office hour id required"))
}

// Export godoc
// @Summary Export the office hour schedule
// @Tags Online Office Hours
// @Produce text/csv,application/pdf
// @Security BearerAuth
// @Param format query string false "csv or pdf" default(csv)
// @Success 200 {file} file
// @Failure 400 {object} response.Envelope
// @Router /api/public/officeHours/export [get]
func (h *OnlineOfficeHourHandler) Export(c *gin.Context) {
	if h.exporter == nil {
		response.Error(c, appErrors.Clone(appErrors.ErrNotFound, "exports are disabled"))
		return
	}
	result, err := h.exporter.Export(c.Request.Context(), c.DefaultQuery("format", "csv"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Attachment(c, result.Filename, result.ContentType, result.Body)
}

func (h *OnlineOfficeHourHandler) requireAdmin(c *gin.Context) bool {
	ok, err := h.admins.IsAdmin(c.Request.Context(), middleware.TokenFrom(c))
	if err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "admin check failed"))
		return false
	}
	if !ok {
		response.Error(c, appErrors.Clone(appErrors.ErrUnauthorized, "admin role required"))
		return false
	}
	return true
}
