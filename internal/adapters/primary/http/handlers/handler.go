package handlers

import (
	"model-export-service/internal/core/services"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	exportSvc  *services.ExportService
	catalogSvc *services.CatalogService
	jobSvc     *services.JobService
}

func New(
	exportSvc *services.ExportService,
	catalogSvc *services.CatalogService,
	jobSvc *services.JobService,
) *Handler {
	return &Handler{
		exportSvc:  exportSvc,
		catalogSvc: catalogSvc,
		jobSvc:     jobSvc,
	}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	// Pretrained Model Catalog
	r.GET("/models", h.ListModels)
	r.GET("/models/:id", h.GetModel)
	r.GET("/model", h.GetModelByName)
	r.POST("/models", h.RegisterModel)
	r.PATCH("/models/:id", h.UpdateModel)
	r.DELETE("/models/:id", h.DeleteModel)

	// Exports
	r.POST("/exports", h.StartExport)
	r.POST("/exports/batch", h.StartBatchExport)
	r.POST("/exports/finetuned", h.StartFinetunedExport)

	// Export Jobs
	r.GET("/export_jobs", h.ListExportJobs)
	r.GET("/export_jobs/:id", h.GetExportJob)
}
