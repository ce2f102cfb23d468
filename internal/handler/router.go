package handler

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"github.com/ucsb-cslas/cslas-api/internal/middleware"
	"github.com/ucsb-cslas/cslas-api/internal/models"
)

const officeHourResource = "online_office_hour"

// RouterOptions wires handlers and cross-cutting middleware into routes.
// Nil middleware fields are skipped.
type RouterOptions struct {
	OfficeHours   *OnlineOfficeHourHandler
	Metrics       *MetricsHandler
	Auth          gin.HandlerFunc
	RateLimit     gin.HandlerFunc
	AuditWriter   middleware.AuditWriter
	Logger        *zap.Logger
	EnableExports bool
	EnableDocs    bool
}

// RegisterRoutes attaches operational and office hour routes to r.
func RegisterRoutes(r *gin.Engine, opts RouterOptions) {
	r.GET("/health", opts.Metrics.Health)
	r.GET("/ready", opts.Metrics.Ready)
	r.GET("/metrics", opts.Metrics.Prometheus)
	if opts.EnableDocs {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group("/api")
	if opts.RateLimit != nil {
		api.Use(opts.RateLimit)
	}
	if opts.Auth != nil {
		api.Use(opts.Auth)
	}

	withAudit := func(action string, h gin.HandlerFunc) []gin.HandlerFunc {
		if opts.AuditWriter == nil {
			return []gin.HandlerFunc{h}
		}
		return []gin.HandlerFunc{middleware.Audit(opts.AuditWriter, opts.Logger, action, officeHourResource), h}
	}

	public := api.Group("/public/officeHours")
	public.GET("", opts.OfficeHours.List)
	if opts.EnableExports {
		public.GET("/export", opts.OfficeHours.Export)
	}
	public.GET("/:id", opts.OfficeHours.Get)
	public.DELETE("", opts.OfficeHours.DeleteWithoutID)
	public.DELETE("/:id", withAudit(models.AuditActionOfficeHourDelete, opts.OfficeHours.Delete)...)

	admin := api.Group("/admin/officeHours")
	admin.POST("", withAudit(models.AuditActionOfficeHourCreate, opts.OfficeHours.Create)...)
}
