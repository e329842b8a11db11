package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/bizbooks/bizbooks_backend/internal/apperrors"
	"github.com/bizbooks/bizbooks_backend/internal/core/domain"
	portssvc "github.com/bizbooks/bizbooks_backend/internal/core/ports/services"
	"github.com/bizbooks/bizbooks_backend/internal/dto"
	"github.com/bizbooks/bizbooks_backend/internal/handlers"
	"github.com/bizbooks/bizbooks_backend/internal/platform/config"
)

// --- Mock LedgerService ---
type MockLedgerService struct {
	mock.Mock
}

func (m *MockLedgerService) CreateLedger(ctx context.Context, req dto.CreateLedgerRequest) (*domain.Ledger, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Ledger), args.Error(1)
}

func (m *MockLedgerService) GetLedgerByID(ctx context.Context, ledgerID string) (*domain.Ledger, error) {
	args := m.Called(ctx, ledgerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Ledger), args.Error(1)
}

func (m *MockLedgerService) ListLedgers(ctx context.Context) ([]domain.Ledger, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Ledger), args.Error(1)
}

func (m *MockLedgerService) DeleteLedger(ctx context.Context, ledgerID string) error {
	args := m.Called(ctx, ledgerID)
	return args.Error(0)
}

func (m *MockLedgerService) GetLedgerBalance(ctx context.Context, ledgerID string) (*domain.LedgerBalance, error) {
	args := m.Called(ctx, ledgerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LedgerBalance), args.Error(1)
}

// --- Stub snapshot saver ---
type stubSaver struct {
	saves int
}

func (s *stubSaver) Save() error {
	s.saves++
	return nil
}

// --- Test Suite ---
type LedgerHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockService *MockLedgerService
	saver       *stubSaver
}

func (suite *LedgerHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	suite.mockService = new(MockLedgerService)
	suite.saver = &stubSaver{}

	cfg := &config.Config{IsProduction: true}
	container := &portssvc.ServiceContainer{Ledger: suite.mockService}

	suite.router = gin.New()
	handlers.RegisterRoutes(suite.router, cfg, container, suite.saver)
}

// --- Test Cases ---

func (suite *LedgerHandlerTestSuite) TestHealth() {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("OK", w.Body.String())
}

func (suite *LedgerHandlerTestSuite) TestCreateLedger_Success() {
	ledger := &domain.Ledger{
		LedgerID:       "L1",
		Name:           "Acme Traders",
		Group:          domain.GroupSundryDebtor,
		OpeningBalance: decimal.NewFromInt(12000),
	}

	suite.mockService.On("CreateLedger", mock.Anything, mock.AnythingOfType("dto.CreateLedgerRequest")).Return(ledger, nil).Once()

	body, _ := json.Marshal(map[string]any{
		"name":           "Acme Traders",
		"group":          "SUNDRY_DEBTOR",
		"openingBalance": 12000,
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/ledgers", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusCreated, w.Code)

	var resp dto.LedgerResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("L1", resp.LedgerID)
	suite.Equal(domain.Debit, resp.NaturalNature)

	suite.Equal(1, suite.saver.saves, "successful mutation triggers a snapshot save")
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *LedgerHandlerTestSuite) TestCreateLedger_ValidationErrorReturns400() {
	suite.mockService.On("CreateLedger", mock.Anything, mock.AnythingOfType("dto.CreateLedgerRequest")).
		Return(nil, apperrors.ErrValidation).Once()

	body, _ := json.Marshal(map[string]any{
		"name":  "   ",
		"group": "CASH",
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/ledgers", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Equal(0, suite.saver.saves, "failed mutation does not snapshot")
}

func (suite *LedgerHandlerTestSuite) TestCreateLedger_UnknownGroupRejectedByBinding() {
	body, _ := json.Marshal(map[string]any{
		"name":  "Mystery",
		"group": "EQUITY",
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/ledgers", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockService.AssertNotCalled(suite.T(), "CreateLedger", mock.Anything, mock.Anything)
}

func (suite *LedgerHandlerTestSuite) TestGetLedgerByID_NotFound() {
	suite.mockService.On("GetLedgerByID", mock.Anything, "missing").Return(nil, apperrors.ErrNotFound).Once()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/ledgers/missing", nil)
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *LedgerHandlerTestSuite) TestGetLedgerBalance() {
	balance := &domain.LedgerBalance{
		LedgerID: "L6",
		Amount:   decimal.NewFromInt(25000),
		Nature:   domain.Credit,
	}

	suite.mockService.On("GetLedgerBalance", mock.Anything, "L6").Return(balance, nil).Once()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/ledgers/L6/balance", nil)
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)

	var resp dto.LedgerBalanceResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(domain.Credit, resp.Nature)
	suite.True(resp.Amount.Equal(decimal.NewFromInt(25000)))

	suite.Equal(0, suite.saver.saves, "reads never snapshot")
}

func (suite *LedgerHandlerTestSuite) TestDeleteLedger_AbsentStillNoContent() {
	suite.mockService.On("DeleteLedger", mock.Anything, "gone").Return(nil).Once()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/v1/ledgers/gone", nil)
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusNoContent, w.Code)
	suite.Equal(1, suite.saver.saves)
}

func TestLedgerHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(LedgerHandlerTestSuite))
}
