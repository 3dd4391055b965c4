package services_test

import (
	"context"
	"time"

	"github.com/SscSPs/clinic_cash_app/internal/core/domain"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/mock"
)

// MockEntryRepository is a mock type for the EntryRepositoryWithTx interface
type MockEntryRepository struct {
	mock.Mock
}

func (m *MockEntryRepository) FindEntryByID(ctx context.Context, ownerID string, entryID string) (*domain.Entry, error) {
	args := m.Called(ctx, ownerID, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Entry), args.Error(1)
}

func (m *MockEntryRepository) ListEntriesByDateRange(ctx context.Context, ownerID string, from string, to string) ([]domain.Entry, error) {
	args := m.Called(ctx, ownerID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Entry), args.Error(1)
}

func (m *MockEntryRepository) ListEntries(ctx context.Context, ownerID string, from string, to string, limit int, nextToken *string) ([]domain.Entry, *string, error) {
	args := m.Called(ctx, ownerID, from, to, limit, nextToken)
	var entries []domain.Entry
	if args.Get(0) != nil {
		entries = args.Get(0).([]domain.Entry)
	}
	var token *string
	if args.Get(1) != nil {
		token = args.Get(1).(*string)
	}
	return entries, token, args.Error(2)
}

func (m *MockEntryRepository) SaveEntry(ctx context.Context, entry domain.Entry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockEntryRepository) UpdateEntry(ctx context.Context, entry domain.Entry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockEntryRepository) UpdateTransferFlag(ctx context.Context, ownerID string, entryID string, role domain.SlotRole, isTransfer bool, userID string, now time.Time) error {
	args := m.Called(ctx, ownerID, entryID, role, isTransfer, userID, now)
	return args.Error(0)
}

func (m *MockEntryRepository) DeleteEntry(ctx context.Context, ownerID string, entryID string) error {
	args := m.Called(ctx, ownerID, entryID)
	return args.Error(0)
}

func (m *MockEntryRepository) SaveEntriesInTx(ctx context.Context, tx pgx.Tx, entries []domain.Entry) error {
	args := m.Called(ctx, tx, entries)
	return args.Error(0)
}

func (m *MockEntryRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(pgx.Tx), args.Error(1)
}

func (m *MockEntryRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockEntryRepository) Rollback(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

// MockDeductionRepository is a mock type for the DeductionRepositoryFacade interface
type MockDeductionRepository struct {
	mock.Mock
}

func (m *MockDeductionRepository) FindDeductionByID(ctx context.Context, ownerID string, deductionID string) (*domain.Deduction, error) {
	args := m.Called(ctx, ownerID, deductionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Deduction), args.Error(1)
}

func (m *MockDeductionRepository) ListDeductions(ctx context.Context, ownerID string, professional string, from string, to string) ([]domain.Deduction, error) {
	args := m.Called(ctx, ownerID, professional, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Deduction), args.Error(1)
}

func (m *MockDeductionRepository) SaveDeduction(ctx context.Context, deduction domain.Deduction) error {
	args := m.Called(ctx, deduction)
	return args.Error(0)
}

func (m *MockDeductionRepository) DeleteDeduction(ctx context.Context, ownerID string, deductionID string) error {
	args := m.Called(ctx, ownerID, deductionID)
	return args.Error(0)
}

// MockProfessionalRepository is a mock type for the ProfessionalRepositoryFacade interface
type MockProfessionalRepository struct {
	mock.Mock
}

func (m *MockProfessionalRepository) FindProfessionalByName(ctx context.Context, ownerID string, name string) (*domain.Professional, error) {
	args := m.Called(ctx, ownerID, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Professional), args.Error(1)
}

func (m *MockProfessionalRepository) ListProfessionals(ctx context.Context, ownerID string) ([]domain.Professional, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Professional), args.Error(1)
}

func (m *MockProfessionalRepository) SaveProfessional(ctx context.Context, professional domain.Professional) error {
	args := m.Called(ctx, professional)
	return args.Error(0)
}
