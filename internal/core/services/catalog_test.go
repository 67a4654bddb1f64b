package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"model-export-service/internal/core/domain"
	ports "model-export-service/internal/core/ports/output"
	"model-export-service/internal/testutil"
)

func TestCatalogService_Register(t *testing.T) {
	repo := new(testutil.MockPretrainedModelRepo)
	svc := NewCatalogService(repo)

	returned := &domain.PretrainedModel{
		ID: uuid.New(), Name: "yolo11n.pt", Variant: domain.VariantNano,
	}
	repo.On("Create", mock.Anything, mock.AnythingOfType("*domain.PretrainedModel")).Return(nil)
	repo.On("GetByID", mock.Anything, mock.AnythingOfType("uuid.UUID")).Return(returned, nil)

	result, err := svc.Register(context.Background(), "yolo11n.pt", "n", "nano variant", "", false)
	assert.NoError(t, err)
	assert.Equal(t, "yolo11n.pt", result.Name)
}

func TestCatalogService_Register_InvalidName(t *testing.T) {
	svc := NewCatalogService(new(testutil.MockPretrainedModelRepo))

	_, err := svc.Register(context.Background(), "", "n", "", "", false)
	assert.ErrorIs(t, err, domain.ErrInvalidModelName)

	_, err = svc.Register(context.Background(), "yolo11n.onnx", "n", "", "", false)
	assert.ErrorIs(t, err, domain.ErrInvalidModelName)

	_, err = svc.Register(context.Background(), "custom.pt", "q", "", "", true)
	assert.ErrorIs(t, err, domain.ErrInvalidVariant)
}

func TestCatalogService_List_CapsLimit(t *testing.T) {
	repo := new(testutil.MockPretrainedModelRepo)
	svc := NewCatalogService(repo)

	repo.On("List", mock.Anything, mock.MatchedBy(func(f ports.ModelListFilter) bool {
		return f.Limit == 100
	})).Return([]*domain.PretrainedModel{}, 0, nil)

	_, _, err := svc.List(context.Background(), ports.ModelListFilter{Limit: 5000})
	assert.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestCatalogService_Delete_NotFound(t *testing.T) {
	repo := new(testutil.MockPretrainedModelRepo)
	svc := NewCatalogService(repo)

	id := uuid.New()
	repo.On("GetByID", mock.Anything, id).Return(nil, domain.ErrModelNotFound)

	err := svc.Delete(context.Background(), id)
	assert.ErrorIs(t, err, domain.ErrModelNotFound)
	repo.AssertNotCalled(t, "Delete", mock.Anything, id)
}

func TestCatalogService_Seed_SkipsExisting(t *testing.T) {
	repo := new(testutil.MockPretrainedModelRepo)
	svc := NewCatalogService(repo)

	existing := &domain.PretrainedModel{Name: "yolo11n.pt"}
	repo.On("GetByName", mock.Anything, "yolo11n.pt").Return(existing, nil)
	for _, name := range []string{"yolo11s.pt", "yolo11m.pt", "yolo11l.pt", "yolo11x.pt"} {
		repo.On("GetByName", mock.Anything, name).Return(nil, domain.ErrModelNotFound)
	}
	repo.On("Create", mock.Anything, mock.AnythingOfType("*domain.PretrainedModel")).Return(nil)

	err := svc.Seed(context.Background(), "https://example.com/assets")
	assert.NoError(t, err)
	repo.AssertNumberOfCalls(t, "Create", 4)
}
