package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/SscSPs/clinic_cash_app/internal/apperrors"
	"github.com/SscSPs/clinic_cash_app/internal/core/domain"
	"github.com/SscSPs/clinic_cash_app/internal/core/services"
	"github.com/SscSPs/clinic_cash_app/internal/core/settlement"
	portssvc "github.com/SscSPs/clinic_cash_app/internal/core/ports/services"
	"github.com/SscSPs/clinic_cash_app/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

const ownerID = "owner-1"

var fixedNow = time.Date(2024, 1, 5, 10, 0, 0, 0, time.UTC)

func amount(s string) dto.Amount {
	return dto.NewAmount(decimal.RequireFromString(s))
}

func amountPtr(s string) *dto.Amount {
	a := amount(s)
	return &a
}

func strPtr(s string) *string {
	return &s
}

func boolPtr(b bool) *bool {
	return &b
}

// storedEntry is a persisted 1000 ARS operation with Dr. X on prof_1 at 50%.
func storedEntry() *domain.Entry {
	entry := settlement.Apply(domain.Entry{
		EntryID:   "entry-1",
		OwnerID:   ownerID,
		Date:      "2024-01-05",
		Shares:    domain.NewShares(),
		CreatedAt: "2024-01-05T09:00:00.000Z",
	},
		settlement.SetPayment{ARS: decPtr("1000")},
		settlement.SetProfessional{Role: domain.SlotProf1, Name: "Dr. X"},
		settlement.SetSharePercent{Role: domain.SlotProf1, Percent: decimal.RequireFromString("50")},
	)
	return &entry
}

func decPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func createRequest(percent string) dto.CreateEntryRequest {
	return dto.CreateEntryRequest{
		Date: "2024-01-05",
		EntryInput: dto.EntryInput{
			PatientName: "  Jane Doe ",
			PaymentARS:  amount("1000"),
			PaymentUSD:  amount("100"),
			Shares: []dto.ShareInput{
				{Role: domain.SlotProf1, Professional: "Dr. X", SharePercent: amount(percent), Currency: "ARS"},
				{Role: domain.SlotAnestesista, Professional: "Dr. An", Amount: amount("40"), Currency: "USD"},
			},
		},
	}
}

type EntryServiceTestSuite struct {
	suite.Suite
	mockRepo *MockEntryRepository
	service  portssvc.EntrySvcFacade
	ctx      context.Context
}

func (suite *EntryServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockEntryRepository)
	suite.service = services.NewEntryService(suite.mockRepo, services.WithEntryClock(func() time.Time { return fixedNow }))
	suite.ctx = context.Background()
}

func (suite *EntryServiceTestSuite) TestCreateEntry_Success() {
	suite.mockRepo.On("SaveEntry", suite.ctx, mock.AnythingOfType("domain.Entry")).Return(nil).Once()

	entry, err := suite.service.CreateEntry(suite.ctx, ownerID, createRequest("60"))

	suite.Require().NoError(err)
	suite.Require().NotNil(entry)
	suite.NotEmpty(entry.EntryID)
	suite.Equal(ownerID, entry.OwnerID)
	suite.Equal("Jane Doe", entry.PatientName)
	suite.Equal("2024-01-05T10:00:00.000Z", entry.CreatedAt)
	suite.True(decimal.RequireFromString("600").Equal(entry.Shares[0].PrimaryAmount.Amount))
	suite.True(decimal.RequireFromString("40").Equal(entry.Shares[3].PrimaryAmount.Amount))
	suite.True(decimal.RequireFromString("400").Equal(entry.CoatARS))
	suite.True(decimal.RequireFromString("60").Equal(entry.CoatUSD))
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *EntryServiceTestSuite) TestCreateEntry_InvalidDate() {
	req := createRequest("60")
	req.Date = "05/01/2024"

	entry, err := suite.service.CreateEntry(suite.ctx, ownerID, req)

	suite.Require().Error(err)
	suite.Nil(entry)
	suite.True(errors.Is(err, apperrors.ErrValidation))
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveEntry", mock.Anything, mock.Anything)
}

func (suite *EntryServiceTestSuite) TestCreateEntry_PermissivePercentages() {
	suite.mockRepo.On("SaveEntry", suite.ctx, mock.AnythingOfType("domain.Entry")).Return(nil).Once()

	entry, err := suite.service.CreateEntry(suite.ctx, ownerID, createRequest("150"))

	suite.Require().NoError(err)
	suite.True(decimal.RequireFromString("-500").Equal(entry.CoatARS))
}

func (suite *EntryServiceTestSuite) TestCreateEntry_StrictPercentagesRejects() {
	svc := services.NewEntryService(suite.mockRepo, services.WithStrictPercentages(true))

	entry, err := svc.CreateEntry(suite.ctx, ownerID, createRequest("150"))

	suite.Require().Error(err)
	suite.Nil(entry)
	suite.True(errors.Is(err, apperrors.ErrValidation))
	suite.True(errors.Is(err, settlement.ErrPercentOutOfRange))
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveEntry", mock.Anything, mock.Anything)
}

func (suite *EntryServiceTestSuite) TestCreateEntry_SaveError() {
	repoErr := errors.New("db down")
	suite.mockRepo.On("SaveEntry", suite.ctx, mock.AnythingOfType("domain.Entry")).Return(repoErr).Once()

	entry, err := suite.service.CreateEntry(suite.ctx, ownerID, createRequest("60"))

	suite.Require().Error(err)
	suite.Nil(entry)
	suite.ErrorIs(err, repoErr)
}

func (suite *EntryServiceTestSuite) TestPreviewEntry_DoesNotPersist() {
	entry, err := suite.service.PreviewEntry(suite.ctx, ownerID, createRequest("60"))

	suite.Require().NoError(err)
	suite.Empty(entry.EntryID)
	suite.True(decimal.RequireFromString("400").Equal(entry.CoatARS))
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveEntry", mock.Anything, mock.Anything)
}

func (suite *EntryServiceTestSuite) TestCloseRegister_Success() {
	req := dto.CloseRegisterRequest{
		Date: "2024-01-05",
		Entries: []dto.EntryInput{
			createRequest("60").EntryInput,
			createRequest("20").EntryInput,
		},
	}
	suite.mockRepo.On("Begin", suite.ctx).Return(nil, nil).Once()
	suite.mockRepo.On("SaveEntriesInTx", suite.ctx, mock.Anything, mock.MatchedBy(func(entries []domain.Entry) bool {
		return len(entries) == 2 && entries[0].CreatedAt < entries[1].CreatedAt
	})).Return(nil).Once()
	suite.mockRepo.On("Commit", suite.ctx, mock.Anything).Return(nil).Once()
	suite.mockRepo.On("Rollback", suite.ctx, mock.Anything).Return(nil).Once()

	entries, err := suite.service.CloseRegister(suite.ctx, ownerID, req)

	suite.Require().NoError(err)
	suite.Require().Len(entries, 2)
	suite.Equal("2024-01-05T10:00:00.000Z", entries[0].CreatedAt)
	suite.Equal("2024-01-05T10:00:00.001Z", entries[1].CreatedAt)
	suite.NotEqual(entries[0].EntryID, entries[1].EntryID)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *EntryServiceTestSuite) TestCloseRegister_SaveErrorSkipsCommit() {
	req := dto.CloseRegisterRequest{Date: "2024-01-05", Entries: []dto.EntryInput{createRequest("60").EntryInput}}
	suite.mockRepo.On("Begin", suite.ctx).Return(nil, nil).Once()
	suite.mockRepo.On("SaveEntriesInTx", suite.ctx, mock.Anything, mock.Anything).Return(errors.New("constraint")).Once()
	suite.mockRepo.On("Rollback", suite.ctx, mock.Anything).Return(nil).Once()

	entries, err := suite.service.CloseRegister(suite.ctx, ownerID, req)

	suite.Require().Error(err)
	suite.Nil(entries)
	suite.mockRepo.AssertNotCalled(suite.T(), "Commit", mock.Anything, mock.Anything)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *EntryServiceTestSuite) TestCloseRegister_InvalidOperationSavesNothing() {
	req := dto.CloseRegisterRequest{Date: "not-a-date", Entries: []dto.EntryInput{createRequest("60").EntryInput}}

	_, err := suite.service.CloseRegister(suite.ctx, ownerID, req)

	suite.True(errors.Is(err, apperrors.ErrValidation))
	suite.mockRepo.AssertNotCalled(suite.T(), "Begin", mock.Anything)
}

func (suite *EntryServiceTestSuite) TestCreateManualLiquidation_DefaultsToFirstSlot() {
	req := dto.ManualLiquidationRequest{
		Date:         "2024-01-05",
		Professional: "Dr. Y",
		Amount:       amount("1000"),
		Currency:     "USD",
		Comment:      "bonus",
	}
	suite.mockRepo.On("SaveEntry", suite.ctx, mock.AnythingOfType("domain.Entry")).Return(nil).Once()

	entry, err := suite.service.CreateManualLiquidation(suite.ctx, ownerID, req)

	suite.Require().NoError(err)
	suite.True(entry.IsManualLiquidation)
	slot := entry.Shares[0]
	suite.Equal("Dr. Y", slot.ProfessionalName)
	suite.Equal(domain.USD, slot.PrimaryAmount.Currency)
	suite.True(decimal.RequireFromString("1000").Equal(slot.PrimaryAmount.Amount))
	suite.True(entry.Payment.ARS.IsZero())
	suite.True(entry.Payment.USD.IsZero())
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *EntryServiceTestSuite) TestCreateManualLiquidation_BlankProfessional() {
	req := dto.ManualLiquidationRequest{Date: "2024-01-05", Professional: "   ", Amount: amount("1"), Currency: "ARS"}

	_, err := suite.service.CreateManualLiquidation(suite.ctx, ownerID, req)

	suite.True(errors.Is(err, apperrors.ErrValidation))
}

func (suite *EntryServiceTestSuite) TestGetEntry_NotFound() {
	suite.mockRepo.On("FindEntryByID", suite.ctx, ownerID, "missing").Return(nil, apperrors.ErrNotFound).Once()

	entry, err := suite.service.GetEntry(suite.ctx, ownerID, "missing")

	suite.Nil(entry)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *EntryServiceTestSuite) TestListEntries_DefaultsBoundsAndLimit() {
	token := "next"
	suite.mockRepo.On("ListEntries", suite.ctx, ownerID, "0001-01-01", "9999-12-31", 50, (*string)(nil)).
		Return([]domain.Entry{*storedEntry()}, &token, nil).Once()

	resp, err := suite.service.ListEntries(suite.ctx, ownerID, dto.ListEntriesParams{})

	suite.Require().NoError(err)
	suite.Require().Len(resp.Entries, 1)
	suite.Equal("entry-1", resp.Entries[0].EntryID)
	suite.Equal(&token, resp.NextToken)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *EntryServiceTestSuite) TestListEntries_InvertedRange() {
	_, err := suite.service.ListEntries(suite.ctx, ownerID, dto.ListEntriesParams{From: "2024-02-01", To: "2024-01-01"})

	suite.True(errors.Is(err, apperrors.ErrValidation))
}

func (suite *EntryServiceTestSuite) TestUpdateEntry_RecomputesOnPaymentChange() {
	suite.mockRepo.On("FindEntryByID", suite.ctx, ownerID, "entry-1").Return(storedEntry(), nil).Once()
	suite.mockRepo.On("UpdateEntry", suite.ctx, mock.MatchedBy(func(e domain.Entry) bool {
		return e.EntryID == "entry-1" && e.CoatARS.Equal(decimal.RequireFromString("1000"))
	})).Return(nil).Once()

	updated, err := suite.service.UpdateEntry(suite.ctx, ownerID, "entry-1", dto.UpdateEntryRequest{
		PaymentARS: amountPtr("2000"),
		Comment:    strPtr("corrected"),
	})

	suite.Require().NoError(err)
	suite.Equal("corrected", updated.Comment)
	suite.True(decimal.RequireFromString("1000").Equal(updated.Shares[0].PrimaryAmount.Amount))
	suite.Equal(fixedNow, updated.LastUpdatedAt)
	suite.Equal(ownerID, updated.LastUpdatedBy)
	suite.Equal("2024-01-05T09:00:00.000Z", updated.CreatedAt)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *EntryServiceTestSuite) TestUpdateEntry_EnableSecondaryLeg() {
	stored := storedEntry()
	*stored = settlement.Apply(*stored, settlement.SetPayment{USD: decPtr("100")})
	suite.mockRepo.On("FindEntryByID", suite.ctx, ownerID, "entry-1").Return(stored, nil).Once()
	suite.mockRepo.On("UpdateEntry", suite.ctx, mock.AnythingOfType("domain.Entry")).Return(nil).Once()

	updated, err := suite.service.UpdateEntry(suite.ctx, ownerID, "entry-1", dto.UpdateEntryRequest{
		Shares: []dto.ShareUpdate{{Role: domain.SlotProf1, SecondaryEnabled: boolPtr(true)}},
	})

	suite.Require().NoError(err)
	suite.True(updated.Shares[0].SecondaryEnabled)
	suite.True(decimal.RequireFromString("50").Equal(updated.Shares[0].SecondaryAmount.Amount))
	suite.True(decimal.RequireFromString("50").Equal(updated.CoatUSD))
}

func (suite *EntryServiceTestSuite) TestUpdateEntry_UnknownRole() {
	_, err := suite.service.UpdateEntry(suite.ctx, ownerID, "entry-1", dto.UpdateEntryRequest{
		Shares: []dto.ShareUpdate{{Role: "prof_9"}},
	})

	suite.True(errors.Is(err, apperrors.ErrValidation))
	suite.True(errors.Is(err, services.ErrUnknownSlotRole))
	suite.mockRepo.AssertNotCalled(suite.T(), "FindEntryByID", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *EntryServiceTestSuite) TestSetTransfer_Success() {
	suite.mockRepo.On("FindEntryByID", suite.ctx, ownerID, "entry-1").Return(storedEntry(), nil).Once()
	suite.mockRepo.On("UpdateTransferFlag", suite.ctx, ownerID, "entry-1", domain.SlotProf1, true, ownerID, fixedNow).Return(nil).Once()

	updated, err := suite.service.SetTransfer(suite.ctx, ownerID, "entry-1", domain.SlotProf1, true)

	suite.Require().NoError(err)
	suite.True(updated.Shares[0].IsTransfer)
	// the flag never changes the residual
	suite.True(decimal.RequireFromString("500").Equal(updated.CoatARS))
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *EntryServiceTestSuite) TestSetTransfer_EmptySlot() {
	suite.mockRepo.On("FindEntryByID", suite.ctx, ownerID, "entry-1").Return(storedEntry(), nil).Once()

	_, err := suite.service.SetTransfer(suite.ctx, ownerID, "entry-1", domain.SlotProf2, true)

	suite.True(errors.Is(err, apperrors.ErrValidation))
	suite.True(errors.Is(err, services.ErrSlotEmpty))
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateTransferFlag", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *EntryServiceTestSuite) TestDeleteEntry() {
	suite.mockRepo.On("DeleteEntry", suite.ctx, ownerID, "entry-1").Return(nil).Once()

	suite.Require().NoError(suite.service.DeleteEntry(suite.ctx, ownerID, "entry-1"))
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *EntryServiceTestSuite) TestRegisterSummary() {
	suite.mockRepo.On("ListEntriesByDateRange", suite.ctx, ownerID, "2024-01-05", "2024-01-05").
		Return([]domain.Entry{*storedEntry()}, nil).Once()

	summary, err := suite.service.RegisterSummary(suite.ctx, ownerID, "2024-01-05")

	suite.Require().NoError(err)
	suite.Equal(1, summary.EntryCount)
	suite.True(decimal.RequireFromString("500").Equal(summary.CoatTotals.ARS))
}

func TestEntryServiceTestSuite(t *testing.T) {
	suite.Run(t, new(EntryServiceTestSuite))
}
