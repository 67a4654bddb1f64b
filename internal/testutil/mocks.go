package testutil

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"model-export-service/internal/core/domain"
	ports "model-export-service/internal/core/ports/output"
)

// MockModelLoader is a mock of ModelLoader.
type MockModelLoader struct {
	mock.Mock
}

func (m *MockModelLoader) Load(ctx context.Context, name string) (ports.ModelHandle, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(ports.ModelHandle), args.Error(1)
}

// MockModelHandle is a mock of ModelHandle.
type MockModelHandle struct {
	mock.Mock
}

func (m *MockModelHandle) Name() string {
	args := m.Called()
	return args.String(0)
}

func (m *MockModelHandle) Export(ctx context.Context, cfg domain.ExportConfig) (string, error) {
	args := m.Called(ctx, cfg)
	return args.String(0), args.Error(1)
}

// MockWeightsFetcher is a mock of WeightsFetcher.
type MockWeightsFetcher struct {
	mock.Mock
}

func (m *MockWeightsFetcher) Ensure(ctx context.Context, name string) (string, error) {
	args := m.Called(ctx, name)
	return args.String(0), args.Error(1)
}

// MockExportJobRepo is a mock of ExportJobRepository.
type MockExportJobRepo struct {
	mock.Mock
}

func (m *MockExportJobRepo) Create(ctx context.Context, job *domain.ExportJob) error {
	args := m.Called(ctx, job)
	return args.Error(0)
}

func (m *MockExportJobRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.ExportJob, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExportJob), args.Error(1)
}

func (m *MockExportJobRepo) Update(ctx context.Context, job *domain.ExportJob) error {
	args := m.Called(ctx, job)
	return args.Error(0)
}

func (m *MockExportJobRepo) List(ctx context.Context, filter ports.JobListFilter) ([]*domain.ExportJob, int, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]*domain.ExportJob), args.Int(1), args.Error(2)
}

// MockPretrainedModelRepo is a mock of PretrainedModelRepository.
type MockPretrainedModelRepo struct {
	mock.Mock
}

func (m *MockPretrainedModelRepo) Create(ctx context.Context, model *domain.PretrainedModel) error {
	args := m.Called(ctx, model)
	return args.Error(0)
}

func (m *MockPretrainedModelRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.PretrainedModel, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PretrainedModel), args.Error(1)
}

func (m *MockPretrainedModelRepo) GetByName(ctx context.Context, name string) (*domain.PretrainedModel, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PretrainedModel), args.Error(1)
}

func (m *MockPretrainedModelRepo) Update(ctx context.Context, model *domain.PretrainedModel) error {
	args := m.Called(ctx, model)
	return args.Error(0)
}

func (m *MockPretrainedModelRepo) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockPretrainedModelRepo) List(ctx context.Context, filter ports.ModelListFilter) ([]*domain.PretrainedModel, int, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]*domain.PretrainedModel), args.Int(1), args.Error(2)
}
