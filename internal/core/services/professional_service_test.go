package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/SscSPs/clinic_cash_app/internal/apperrors"
	"github.com/SscSPs/clinic_cash_app/internal/core/domain"
	"github.com/SscSPs/clinic_cash_app/internal/core/services"
	portssvc "github.com/SscSPs/clinic_cash_app/internal/core/ports/services"
	"github.com/SscSPs/clinic_cash_app/internal/dto"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type ProfessionalServiceTestSuite struct {
	suite.Suite
	mockRepo *MockProfessionalRepository
	service  portssvc.ProfessionalSvcFacade
	ctx      context.Context
}

func (suite *ProfessionalServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockProfessionalRepository)
	suite.service = services.NewProfessionalService(suite.mockRepo)
	suite.ctx = context.Background()
}

func (suite *ProfessionalServiceTestSuite) TestCreateProfessional_Success() {
	suite.mockRepo.On("FindProfessionalByName", suite.ctx, ownerID, "Dr. An").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("SaveProfessional", suite.ctx, mock.AnythingOfType("domain.Professional")).Return(nil).Once()

	professional, err := suite.service.CreateProfessional(suite.ctx, ownerID, dto.CreateProfessionalRequest{
		Name:     " Dr. An ",
		Category: domain.CategoryAnestesista,
	})

	suite.Require().NoError(err)
	suite.Equal("Dr. An", professional.Name)
	suite.Equal(domain.LayoutSimplified, professional.Category.Layout())
	suite.Equal(ownerID, professional.CreatedBy)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ProfessionalServiceTestSuite) TestCreateProfessional_Duplicate() {
	existing := &domain.Professional{Name: "Dr. X", Category: domain.CategoryORL}
	suite.mockRepo.On("FindProfessionalByName", suite.ctx, ownerID, "Dr. X").Return(existing, nil).Once()

	_, err := suite.service.CreateProfessional(suite.ctx, ownerID, dto.CreateProfessionalRequest{Name: "Dr. X", Category: domain.CategoryORL})

	suite.True(errors.Is(err, apperrors.ErrDuplicate))
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveProfessional", mock.Anything, mock.Anything)
}

func (suite *ProfessionalServiceTestSuite) TestCreateProfessional_LookupError() {
	repoErr := errors.New("db down")
	suite.mockRepo.On("FindProfessionalByName", suite.ctx, ownerID, "Dr. X").Return(nil, repoErr).Once()

	_, err := suite.service.CreateProfessional(suite.ctx, ownerID, dto.CreateProfessionalRequest{Name: "Dr. X", Category: domain.CategoryORL})

	suite.ErrorIs(err, repoErr)
}

func (suite *ProfessionalServiceTestSuite) TestCreateProfessional_BlankFields() {
	_, err := suite.service.CreateProfessional(suite.ctx, ownerID, dto.CreateProfessionalRequest{Name: "  ", Category: domain.CategoryORL})
	suite.True(errors.Is(err, apperrors.ErrValidation))

	_, err = suite.service.CreateProfessional(suite.ctx, ownerID, dto.CreateProfessionalRequest{Name: "Dr. X", Category: " "})
	suite.True(errors.Is(err, apperrors.ErrValidation))
}

func (suite *ProfessionalServiceTestSuite) TestListProfessionals_EmptyIsNonNil() {
	suite.mockRepo.On("ListProfessionals", suite.ctx, ownerID).Return(nil, nil).Once()

	got, err := suite.service.ListProfessionals(suite.ctx, ownerID)

	suite.Require().NoError(err)
	suite.NotNil(got)
}

func TestProfessionalServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ProfessionalServiceTestSuite))
}
