package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/sacco_ledger/internal/apperrors"
	"github.com/SscSPs/sacco_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/sacco_ledger/internal/core/ports/services"
	"github.com/SscSPs/sacco_ledger/internal/core/services"
	"github.com/SscSPs/sacco_ledger/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type AccountServiceTestSuite struct {
	suite.Suite
	mockRepo *MockAccountRepository
	service  portssvc.AccountSvcFacade
	ctx      context.Context
}

func (suite *AccountServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockAccountRepository)
	suite.service = services.NewAccountService(suite.mockRepo,
		services.WithAccountClock(func() time.Time { return fixedNow }))
	suite.ctx = context.Background()
}

func boolPtr(b bool) *bool { return &b }

func (suite *AccountServiceTestSuite) TestCreateAccount_Success() {
	req := dto.CreateAccountRequest{
		Code:        "1130",
		Name:        "Bank Clearing",
		AccountType: domain.Asset,
		Description: "Bank transfers in transit",
	}
	suite.mockRepo.On("ExistsByCode", suite.ctx, "1130").Return(false, nil).Once()
	suite.mockRepo.On("SaveAccount", suite.ctx, mock.AnythingOfType("domain.Account")).Return(nil).Once()

	created, err := suite.service.CreateAccount(suite.ctx, req, "admin-1")

	suite.Require().NoError(err)
	suite.NotEmpty(created.AccountID)
	suite.Equal("1130", created.Code)
	suite.Equal(domain.Asset, created.AccountType)
	suite.True(created.IsActive)
	suite.False(created.IsSystemAccount)
	suite.Nil(created.ParentAccountID)
	suite.Equal("admin-1", created.CreatedBy)
	suite.Equal(fixedNow, created.CreatedAt)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestCreateAccount_DuplicateCodePreCheck() {
	suite.mockRepo.On("ExistsByCode", suite.ctx, "1120").Return(true, nil).Once()

	_, err := suite.service.CreateAccount(suite.ctx, dto.CreateAccountRequest{
		Code: "1120", Name: "Again", AccountType: domain.Asset,
	}, "admin-1")

	suite.ErrorIs(err, apperrors.ErrDuplicateCode)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveAccount", mock.Anything, mock.Anything)
}

func (suite *AccountServiceTestSuite) TestCreateAccount_DuplicateCodeAtInsert() {
	suite.mockRepo.On("ExistsByCode", suite.ctx, "5100").Return(false, nil).Once()
	suite.mockRepo.On("SaveAccount", suite.ctx, mock.Anything).Return(apperrors.NewDuplicateCode("5100")).Once()

	_, err := suite.service.CreateAccount(suite.ctx, dto.CreateAccountRequest{
		Code: "5100", Name: "Stationery", AccountType: domain.Expense,
	}, "admin-1")

	suite.ErrorIs(err, apperrors.ErrDuplicateCode)
}

func (suite *AccountServiceTestSuite) TestCreateAccount_ParentNotFound() {
	suite.mockRepo.On("ExistsByCode", suite.ctx, "1131").Return(false, nil).Once()
	suite.mockRepo.On("FindAccountByID", suite.ctx, "missing").Return(nil, apperrors.NewNotFound("missing")).Once()

	_, err := suite.service.CreateAccount(suite.ctx, dto.CreateAccountRequest{
		Code: "1131", Name: "Child", AccountType: domain.Asset, ParentAccountID: strPtr("missing"),
	}, "admin-1")

	suite.ErrorIs(err, apperrors.ErrParentNotFound)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveAccount", mock.Anything, mock.Anything)
}

func (suite *AccountServiceTestSuite) TestCreateAccount_WithParent() {
	parent := activeAccount("1100", "Current Assets", domain.Asset)
	suite.mockRepo.On("ExistsByCode", suite.ctx, "1131").Return(false, nil).Once()
	suite.mockRepo.On("FindAccountByID", suite.ctx, parent.AccountID).Return(&parent, nil).Once()
	suite.mockRepo.On("SaveAccount", suite.ctx, mock.Anything).Return(nil).Once()

	created, err := suite.service.CreateAccount(suite.ctx, dto.CreateAccountRequest{
		Code: "1131", Name: "Child", AccountType: domain.Asset, ParentAccountID: strPtr(parent.AccountID),
	}, "admin-1")

	suite.Require().NoError(err)
	suite.Equal(strPtr(parent.AccountID), created.ParentAccountID)
}

func (suite *AccountServiceTestSuite) TestCreateAccount_InvalidInput() {
	cases := []dto.CreateAccountRequest{
		{Code: "11 20", Name: "Space", AccountType: domain.Asset},
		{Code: "", Name: "Blank", AccountType: domain.Asset},
		{Code: "1199", Name: "  ", AccountType: domain.Asset},
		{Code: "1199", Name: "Bad type", AccountType: "REVENUE"},
	}
	for _, req := range cases {
		_, err := suite.service.CreateAccount(suite.ctx, req, "admin-1")
		suite.ErrorIs(err, apperrors.ErrValidation, "request %+v", req)
	}
	suite.mockRepo.AssertNotCalled(suite.T(), "ExistsByCode", mock.Anything, mock.Anything)
}

func (suite *AccountServiceTestSuite) TestUpdateAccount_DeactivateSystemAccount() {
	system := activeAccount("1120", "M-Pesa Clearing", domain.Asset)
	system.IsSystemAccount = true
	suite.mockRepo.On("FindAccountByID", suite.ctx, system.AccountID).Return(&system, nil).Once()

	_, err := suite.service.UpdateAccount(suite.ctx, system.AccountID, dto.UpdateAccountRequest{
		Name: system.Name, IsActive: boolPtr(false),
	}, "admin-1")

	suite.ErrorIs(err, apperrors.ErrProtectedAccountViolation)
	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateAccount", mock.Anything, mock.Anything)
}

func (suite *AccountServiceTestSuite) TestUpdateAccount_RenameSystemAccountAllowed() {
	system := activeAccount("1120", "M-Pesa Clearing", domain.Asset)
	system.IsSystemAccount = true
	suite.mockRepo.On("FindAccountByID", suite.ctx, system.AccountID).Return(&system, nil).Once()
	suite.mockRepo.On("UpdateAccount", suite.ctx, mock.MatchedBy(func(a domain.Account) bool {
		return a.Name == "Mobile Money Clearing" && a.IsActive && a.Code == "1120"
	})).Return(nil).Once()

	updated, err := suite.service.UpdateAccount(suite.ctx, system.AccountID, dto.UpdateAccountRequest{
		Name: "Mobile Money Clearing", IsActive: boolPtr(true),
	}, "admin-2")

	suite.Require().NoError(err)
	suite.Equal("admin-2", updated.LastUpdatedBy)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestUpdateAccount_Deactivate() {
	acc := activeAccount("4210", "Registration Fees Income", domain.Income)
	suite.mockRepo.On("FindAccountByID", suite.ctx, acc.AccountID).Return(&acc, nil).Once()
	suite.mockRepo.On("UpdateAccount", suite.ctx, mock.MatchedBy(func(a domain.Account) bool { return !a.IsActive })).Return(nil).Once()

	updated, err := suite.service.UpdateAccount(suite.ctx, acc.AccountID, dto.UpdateAccountRequest{
		Name: acc.Name, IsActive: boolPtr(false),
	}, "admin-1")

	suite.Require().NoError(err)
	suite.False(updated.IsActive)
}

func (suite *AccountServiceTestSuite) TestUpdateAccount_NotFound() {
	suite.mockRepo.On("FindAccountByID", suite.ctx, "nope").Return(nil, apperrors.NewNotFound("nope")).Once()

	_, err := suite.service.UpdateAccount(suite.ctx, "nope", dto.UpdateAccountRequest{Name: "x", IsActive: boolPtr(true)}, "admin-1")

	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *AccountServiceTestSuite) TestUpdateAccount_NameRequired() {
	_, err := suite.service.UpdateAccount(suite.ctx, "id", dto.UpdateAccountRequest{Name: " ", IsActive: boolPtr(true)}, "admin-1")
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *AccountServiceTestSuite) TestListAccounts_NilBecomesEmpty() {
	suite.mockRepo.On("ListAccounts", suite.ctx).Return(nil, nil).Once()

	accounts, err := suite.service.ListAccounts(suite.ctx)

	suite.Require().NoError(err)
	suite.NotNil(accounts)
	suite.Empty(accounts)
}

func (suite *AccountServiceTestSuite) TestListAccounts_Error() {
	suite.mockRepo.On("ListActiveAccounts", suite.ctx).Return(nil, assert.AnError).Once()

	_, err := suite.service.ListActiveAccounts(suite.ctx)

	suite.ErrorIs(err, assert.AnError)
}

func (suite *AccountServiceTestSuite) TestListAccountsByType() {
	suite.mockRepo.On("ListAccountsByType", suite.ctx, domain.Liability).
		Return([]domain.Account{activeAccount("2210", "Savings", domain.Liability)}, nil).Once()

	accounts, err := suite.service.ListAccountsByType(suite.ctx, domain.Liability)

	suite.Require().NoError(err)
	suite.Len(accounts, 1)
}

func (suite *AccountServiceTestSuite) TestFindAccountsByCodes_Deduplicates() {
	suite.mockRepo.On("FindAccountsByCodes", suite.ctx, []string{"1120", "4210"}).
		Return(map[string]domain.Account{"1120": activeAccount("1120", "Clearing", domain.Asset)}, nil).Once()

	got, err := suite.service.FindAccountsByCodes(suite.ctx, []string{"1120", "4210", "1120"})

	suite.Require().NoError(err)
	suite.Len(got, 1)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestIsActive() {
	inactive := activeAccount("4210", "Income", domain.Income)
	inactive.IsActive = false
	suite.mockRepo.On("FindAccountsByCodes", suite.ctx, []string{"4210"}).
		Return(map[string]domain.Account{"4210": inactive}, nil).Once()
	suite.mockRepo.On("FindAccountsByCodes", suite.ctx, []string{"9999"}).
		Return(map[string]domain.Account{}, nil).Once()

	active, err := suite.service.IsActive(suite.ctx, "4210")
	suite.Require().NoError(err)
	suite.False(active)

	active, err = suite.service.IsActive(suite.ctx, "9999")
	suite.Require().NoError(err)
	suite.False(active)
}

func TestAccountServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AccountServiceTestSuite))
}
