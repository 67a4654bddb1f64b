package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"model-export-service/internal/core/domain"
	"model-export-service/internal/core/services"
	"model-export-service/internal/testutil"
)

func setupExportRouter() (*testutil.MockModelLoader, *testutil.MockModelHandle, *testutil.MockExportJobRepo, *gin.Engine) {
	gin.SetMode(gin.TestMode)
	loader := new(testutil.MockModelLoader)
	handle := new(testutil.MockModelHandle)
	jobRepo := new(testutil.MockExportJobRepo)
	modelRepo := new(testutil.MockPretrainedModelRepo)

	exportSvc := services.NewExportService(loader, jobRepo)
	catalogSvc := services.NewCatalogService(modelRepo)
	jobSvc := services.NewJobService(jobRepo)

	h := New(exportSvc, catalogSvc, jobSvc)
	r := gin.New()
	api := r.Group("/api/v1/model-export")
	h.RegisterRoutes(api)

	return loader, handle, jobRepo, r
}

func TestStartExport(t *testing.T) {
	loader, handle, jobRepo, r := setupExportRouter()

	loader.On("Load", mock.Anything, "yolo11s.pt").Return(handle, nil)
	handle.On("Export", mock.Anything, domain.CoreMLConfig()).Return("weights/yolo11s.mlpackage", nil)
	jobRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.ExportJob")).Return(nil)
	jobRepo.On("Update", mock.Anything, mock.AnythingOfType("*domain.ExportJob")).Return(nil)

	body, _ := json.Marshal(map[string]interface{}{"model_name": "yolo11s.pt"})
	req, _ := http.NewRequest("POST", "/api/v1/model-export/exports", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp map[string]interface{}
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Equal(t, "SUCCEEDED", resp["status"])
	assert.Equal(t, "weights/yolo11s.mlpackage", resp["artifact_path"])
}

func TestStartExport_MissingModelName(t *testing.T) {
	_, _, _, r := setupExportRouter()

	req, _ := http.NewRequest("POST", "/api/v1/model-export/exports", bytes.NewReader([]byte(`{}`)))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestStartBatchExport(t *testing.T) {
	loader, handle, jobRepo, r := setupExportRouter()

	for _, variant := range domain.AllVariants {
		loader.On("Load", mock.Anything, variant.WeightsName()).Return(handle, nil)
	}
	handle.On("Export", mock.Anything, domain.CoreMLConfig()).Return("out.mlpackage", nil)
	jobRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.ExportJob")).Return(nil)
	jobRepo.On("Update", mock.Anything, mock.AnythingOfType("*domain.ExportJob")).Return(nil)

	req, _ := http.NewRequest("POST", "/api/v1/model-export/exports/batch", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		Jobs []map[string]interface{} `json:"jobs"`
	}
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Len(t, resp.Jobs, 5)
	assert.Equal(t, "yolo11n.pt", resp.Jobs[0]["model_name"])
	assert.Equal(t, "yolo11x.pt", resp.Jobs[4]["model_name"])

	loader.AssertNumberOfCalls(t, "Load", 5)
	handle.AssertNumberOfCalls(t, "Export", 5)
}

func TestStartBatchExport_AbortsOnFailure(t *testing.T) {
	loader, handle, jobRepo, r := setupExportRouter()

	loader.On("Load", mock.Anything, "yolo11n.pt").Return(handle, nil)
	loader.On("Load", mock.Anything, "yolo11s.pt").Return(handle, nil)
	loader.On("Load", mock.Anything, "yolo11m.pt").Return(nil, domain.ErrWeightsNotFound)
	handle.On("Export", mock.Anything, domain.CoreMLConfig()).Return("out.mlpackage", nil)
	jobRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.ExportJob")).Return(nil)
	jobRepo.On("Update", mock.Anything, mock.AnythingOfType("*domain.ExportJob")).Return(nil)

	req, _ := http.NewRequest("POST", "/api/v1/model-export/exports/batch", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadGateway, w.Code)
	loader.AssertNotCalled(t, "Load", mock.Anything, "yolo11l.pt")
	loader.AssertNotCalled(t, "Load", mock.Anything, "yolo11x.pt")
}

func TestStartFinetunedExport(t *testing.T) {
	loader, handle, jobRepo, r := setupExportRouter()

	loader.On("Load", mock.Anything, "yolo11l.pt").Return(handle, nil)
	handle.On("Export", mock.Anything, domain.FinetunedCoreMLConfig()).Return("weights/yolo11l.mlpackage", nil)
	jobRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.ExportJob")).Return(nil)
	jobRepo.On("Update", mock.Anything, mock.AnythingOfType("*domain.ExportJob")).Return(nil)

	req, _ := http.NewRequest("POST", "/api/v1/model-export/exports/finetuned", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp map[string]interface{}
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Equal(t, "yolo11l.pt", resp["model_name"])
	assert.Equal(t, float64(640), resp["imgsz"])
}

func TestGetExportJob_NotFound(t *testing.T) {
	_, _, jobRepo, r := setupExportRouter()

	id := uuid.New()
	jobRepo.On("GetByID", mock.Anything, id).Return(nil, domain.ErrJobNotFound)

	req, _ := http.NewRequest("GET", "/api/v1/model-export/export_jobs/"+id.String(), nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListExportJobs(t *testing.T) {
	_, _, jobRepo, r := setupExportRouter()

	jobs := []*domain.ExportJob{
		{ID: uuid.New(), ModelName: "yolo11n.pt", Status: domain.JobStatusSucceeded, Config: domain.CoreMLConfig()},
	}
	jobRepo.On("List", mock.Anything, mock.AnythingOfType("ports.JobListFilter")).Return(jobs, 1, nil)

	req, _ := http.NewRequest("GET", "/api/v1/model-export/export_jobs?limit=10", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Equal(t, float64(1), resp["total"])
}
