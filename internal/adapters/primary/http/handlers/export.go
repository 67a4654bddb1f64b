package handlers

import (
	"net/http"
	"strconv"

	"model-export-service/internal/adapters/primary/http/dto"
	ports "model-export-service/internal/core/ports/output"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

// StartExport runs one export synchronously and returns the finished job.
// The export call blocks until the backend has written the artifact.
func (h *Handler) StartExport(c *gin.Context) {
	var req dto.StartExportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	job, err := h.exportSvc.Export(c.Request.Context(), req.ModelName, req.ToExportConfig())
	if err != nil {
		log.WithError(err).WithField("model", req.ModelName).Error("export failed")
		if job != nil {
			c.JSON(http.StatusBadGateway, dto.ToExportJobResponse(job))
			return
		}
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToExportJobResponse(job))
}

// StartBatchExport exports all five size variants in order, stopping at the
// first failure. Jobs for completed and failed variants are returned either way.
func (h *Handler) StartBatchExport(c *gin.Context) {
	jobs, err := h.exportSvc.ExportAll(c.Request.Context())

	items := make([]dto.ExportJobResponse, 0, len(jobs))
	for _, job := range jobs {
		items = append(items, dto.ToExportJobResponse(job))
	}

	if err != nil {
		log.WithError(err).Error("batch export aborted")
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error(), "jobs": items})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"jobs": items})
}

// StartFinetunedExport exports the fine-tuned checkpoint with the pinned
// input resolution.
func (h *Handler) StartFinetunedExport(c *gin.Context) {
	job, err := h.exportSvc.ExportFinetuned(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("finetuned export failed")
		if job != nil {
			c.JSON(http.StatusBadGateway, dto.ToExportJobResponse(job))
			return
		}
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToExportJobResponse(job))
}

func (h *Handler) ListExportJobs(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	filter := ports.JobListFilter{
		ModelName: c.Query("model_name"),
		Status:    c.Query("status"),
		SortBy:    c.Query("sort_by"),
		Order:     c.Query("order"),
		Limit:     limit,
		Offset:    offset,
	}

	jobs, total, err := h.jobSvc.List(c.Request.Context(), filter)
	if err != nil {
		log.WithError(err).Error("list export jobs failed")
		mapDomainError(c, err)
		return
	}

	items := make([]dto.ExportJobResponse, 0, len(jobs))
	for _, job := range jobs {
		items = append(items, dto.ToExportJobResponse(job))
	}

	c.JSON(http.StatusOK, dto.ListExportJobsResponse{
		Items:      items,
		Total:      total,
		PageSize:   limit,
		NextOffset: offset + len(items),
	})
}

func (h *Handler) GetExportJob(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid job id"})
		return
	}

	job, err := h.jobSvc.Get(c.Request.Context(), id)
	if err != nil {
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToExportJobResponse(job))
}
