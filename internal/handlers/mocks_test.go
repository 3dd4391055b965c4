package handlers_test

import (
	"context"

	"github.com/SscSPs/clinic_cash_app/internal/core/domain"
	portssvc "github.com/SscSPs/clinic_cash_app/internal/core/ports/services"
	"github.com/SscSPs/clinic_cash_app/internal/dto"
	"github.com/stretchr/testify/mock"
)

// --- Mock EntryService ---
type MockEntryService struct {
	mock.Mock
}

func (m *MockEntryService) entryResult(args mock.Arguments) (*domain.Entry, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Entry), args.Error(1)
}

func (m *MockEntryService) GetEntry(ctx context.Context, ownerID string, entryID string) (*domain.Entry, error) {
	return m.entryResult(m.Called(ctx, ownerID, entryID))
}
func (m *MockEntryService) ListEntries(ctx context.Context, ownerID string, params dto.ListEntriesParams) (*dto.ListEntriesResponse, error) {
	args := m.Called(ctx, ownerID, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ListEntriesResponse), args.Error(1)
}
func (m *MockEntryService) RegisterSummary(ctx context.Context, ownerID string, date string) (*domain.RegisterSummary, error) {
	args := m.Called(ctx, ownerID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RegisterSummary), args.Error(1)
}
func (m *MockEntryService) CreateEntry(ctx context.Context, ownerID string, req dto.CreateEntryRequest) (*domain.Entry, error) {
	return m.entryResult(m.Called(ctx, ownerID, req))
}
func (m *MockEntryService) CloseRegister(ctx context.Context, ownerID string, req dto.CloseRegisterRequest) ([]domain.Entry, error) {
	args := m.Called(ctx, ownerID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Entry), args.Error(1)
}
func (m *MockEntryService) CreateManualLiquidation(ctx context.Context, ownerID string, req dto.ManualLiquidationRequest) (*domain.Entry, error) {
	return m.entryResult(m.Called(ctx, ownerID, req))
}
func (m *MockEntryService) UpdateEntry(ctx context.Context, ownerID string, entryID string, req dto.UpdateEntryRequest) (*domain.Entry, error) {
	return m.entryResult(m.Called(ctx, ownerID, entryID, req))
}
func (m *MockEntryService) SetTransfer(ctx context.Context, ownerID string, entryID string, role domain.SlotRole, isTransfer bool) (*domain.Entry, error) {
	return m.entryResult(m.Called(ctx, ownerID, entryID, role, isTransfer))
}
func (m *MockEntryService) DeleteEntry(ctx context.Context, ownerID string, entryID string) error {
	args := m.Called(ctx, ownerID, entryID)
	return args.Error(0)
}
func (m *MockEntryService) PreviewEntry(ctx context.Context, ownerID string, req dto.CreateEntryRequest) (*domain.Entry, error) {
	return m.entryResult(m.Called(ctx, ownerID, req))
}

// Ensure mock implements the interface
var _ portssvc.EntrySvcFacade = (*MockEntryService)(nil)

// --- Mock DeductionService ---
type MockDeductionService struct {
	mock.Mock
}

func (m *MockDeductionService) AddDeduction(ctx context.Context, ownerID string, req dto.CreateDeductionRequest) (*domain.Deduction, error) {
	args := m.Called(ctx, ownerID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Deduction), args.Error(1)
}
func (m *MockDeductionService) RemoveDeduction(ctx context.Context, ownerID string, deductionID string) error {
	args := m.Called(ctx, ownerID, deductionID)
	return args.Error(0)
}
func (m *MockDeductionService) ListDeductions(ctx context.Context, ownerID string, params dto.ListDeductionsParams) ([]domain.Deduction, error) {
	args := m.Called(ctx, ownerID, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Deduction), args.Error(1)
}

var _ portssvc.DeductionSvcFacade = (*MockDeductionService)(nil)

// --- Mock ProfessionalService ---
type MockProfessionalService struct {
	mock.Mock
}

func (m *MockProfessionalService) GetProfessional(ctx context.Context, ownerID string, name string) (*domain.Professional, error) {
	args := m.Called(ctx, ownerID, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Professional), args.Error(1)
}
func (m *MockProfessionalService) ListProfessionals(ctx context.Context, ownerID string) ([]domain.Professional, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Professional), args.Error(1)
}
func (m *MockProfessionalService) CreateProfessional(ctx context.Context, ownerID string, req dto.CreateProfessionalRequest) (*domain.Professional, error) {
	args := m.Called(ctx, ownerID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Professional), args.Error(1)
}

var _ portssvc.ProfessionalSvcFacade = (*MockProfessionalService)(nil)

// --- Mock LiquidationService ---
type MockLiquidationService struct {
	mock.Mock
}

func (m *MockLiquidationService) BuildStatement(ctx context.Context, ownerID string, professional string, from string, to string) (*domain.Statement, error) {
	args := m.Called(ctx, ownerID, professional, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Statement), args.Error(1)
}
func (m *MockLiquidationService) BuildAllStatements(ctx context.Context, ownerID string, from string, to string) ([]domain.Statement, error) {
	args := m.Called(ctx, ownerID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Statement), args.Error(1)
}

var _ portssvc.LiquidationSvc = (*MockLiquidationService)(nil)
