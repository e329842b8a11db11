package services_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/bizbooks/bizbooks_backend/internal/apperrors"
	"github.com/bizbooks/bizbooks_backend/internal/core/domain"
	portssvc "github.com/bizbooks/bizbooks_backend/internal/core/ports/services"
	"github.com/bizbooks/bizbooks_backend/internal/core/services"
	"github.com/bizbooks/bizbooks_backend/internal/dto"
)

// --- Test Suite ---
type LedgerServiceTestSuite struct {
	suite.Suite
	mockLedgerRepo  *MockLedgerRepository
	mockVoucherRepo *MockVoucherRepository
	service         portssvc.LedgerSvcFacade
}

func (suite *LedgerServiceTestSuite) SetupTest() {
	suite.mockLedgerRepo = new(MockLedgerRepository)
	suite.mockVoucherRepo = new(MockVoucherRepository)
	suite.service = services.NewLedgerService(suite.mockLedgerRepo, suite.mockVoucherRepo)
}

// --- Test Cases ---

func (suite *LedgerServiceTestSuite) TestCreateLedger_Success() {
	ctx := context.Background()
	req := dto.CreateLedgerRequest{
		Name:           "Acme Traders",
		Group:          domain.GroupSundryDebtor,
		OpeningBalance: decimal.NewFromInt(12000),
		GSTNumber:      "27AAAAA0000A1Z5",
	}

	suite.mockLedgerRepo.On("SaveLedger", ctx, mock.MatchedBy(func(l domain.Ledger) bool {
		return l.Name == req.Name && l.Group == req.Group && l.OpeningBalance.Equal(req.OpeningBalance) && l.LedgerID != ""
	})).Return(nil).Once()

	ledger, err := suite.service.CreateLedger(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(ledger)
	suite.Equal(req.Name, ledger.Name)
	suite.Equal(req.Group, ledger.Group)
	suite.NotEmpty(ledger.LedgerID)

	suite.mockLedgerRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestCreateLedger_BlankNameFailsValidation() {
	ctx := context.Background()
	req := dto.CreateLedgerRequest{
		Name:  "   ",
		Group: domain.GroupAsset,
	}

	ledger, err := suite.service.CreateLedger(ctx, req)

	suite.Require().Error(err)
	suite.Nil(ledger)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockLedgerRepo.AssertNotCalled(suite.T(), "SaveLedger", mock.Anything, mock.Anything)
}

func (suite *LedgerServiceTestSuite) TestCreateLedger_UnknownGroupFailsValidation() {
	ctx := context.Background()
	req := dto.CreateLedgerRequest{
		Name:  "Mystery",
		Group: domain.LedgerGroup("EQUITY"),
	}

	ledger, err := suite.service.CreateLedger(ctx, req)

	suite.Require().Error(err)
	suite.Nil(ledger)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *LedgerServiceTestSuite) TestCreateLedger_DuplicateNamesAllowed() {
	ctx := context.Background()
	req := dto.CreateLedgerRequest{
		Name:  "Acme Traders",
		Group: domain.GroupSundryDebtor,
	}

	suite.mockLedgerRepo.On("SaveLedger", ctx, mock.AnythingOfType("domain.Ledger")).Return(nil).Twice()

	first, err := suite.service.CreateLedger(ctx, req)
	suite.Require().NoError(err)
	second, err := suite.service.CreateLedger(ctx, req)
	suite.Require().NoError(err)

	suite.NotEqual(first.LedgerID, second.LedgerID)
	suite.mockLedgerRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestGetLedgerByID_NotFound() {
	ctx := context.Background()

	suite.mockLedgerRepo.On("FindLedgerByID", ctx, "missing").Return(nil, apperrors.ErrNotFound).Once()

	ledger, err := suite.service.GetLedgerByID(ctx, "missing")

	suite.Require().Error(err)
	suite.Nil(ledger)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockLedgerRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestDeleteLedger_NeverCascades() {
	ctx := context.Background()

	suite.mockLedgerRepo.On("DeleteLedger", ctx, "L1").Return(nil).Once()

	err := suite.service.DeleteLedger(ctx, "L1")

	suite.Require().NoError(err)
	suite.mockVoucherRepo.AssertNotCalled(suite.T(), "DeleteVoucher", mock.Anything, mock.Anything)
	suite.mockLedgerRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestGetLedgerBalance() {
	ctx := context.Background()
	ledger := &domain.Ledger{
		LedgerID:       "L6",
		Name:           "Tech Solutions",
		Group:          domain.GroupSundryCreditor,
		OpeningBalance: decimal.Zero,
	}
	vouchers := []domain.Voucher{
		{VoucherID: "V002", Type: domain.Purchase, LedgerID: "L6", Amount: decimal.NewFromInt(25000)},
		{VoucherID: "V003", Type: domain.Sales, LedgerID: "L5", Amount: decimal.NewFromInt(45000)},
	}

	suite.mockLedgerRepo.On("FindLedgerByID", ctx, "L6").Return(ledger, nil).Once()
	suite.mockVoucherRepo.On("ListVouchers", ctx).Return(vouchers, nil).Once()

	balance, err := suite.service.GetLedgerBalance(ctx, "L6")

	suite.Require().NoError(err)
	suite.Require().NotNil(balance)
	suite.True(balance.Amount.Equal(decimal.NewFromInt(25000)), "got %s", balance.Amount)
	suite.Equal(domain.Credit, balance.Nature)

	suite.mockLedgerRepo.AssertExpectations(suite.T())
	suite.mockVoucherRepo.AssertExpectations(suite.T())
}

func TestLedgerServiceTestSuite(t *testing.T) {
	suite.Run(t, new(LedgerServiceTestSuite))
}
