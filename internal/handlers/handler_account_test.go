package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"encoding/xml"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/SscSPs/accounts_service/internal/apperrors"
	"github.com/SscSPs/accounts_service/internal/core/domain"
	portssvc "github.com/SscSPs/accounts_service/internal/core/ports/services"
	"github.com/SscSPs/accounts_service/internal/dto"
	"github.com/SscSPs/accounts_service/internal/handlers"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock AccountService ---
type MockAccountService struct {
	mock.Mock
}

func (m *MockAccountService) GetAccountByID(ctx context.Context, accountID int64) (*domain.Account, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountService) ListAccounts(ctx context.Context, name string) ([]domain.Account, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAccountService) CreateAccount(ctx context.Context, account domain.Account) (*domain.Account, error) {
	args := m.Called(ctx, account)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountService) UpdateAccount(ctx context.Context, accountID int64, account domain.Account) (*domain.Account, error) {
	args := m.Called(ctx, accountID, account)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountService) DeleteAccount(ctx context.Context, accountID int64) error {
	return m.Called(ctx, accountID).Error(0)
}

func (m *MockAccountService) DeleteAccountsByOwner(ctx context.Context, ownerID int64) (int64, error) {
	args := m.Called(ctx, ownerID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockAccountService) Deposit(ctx context.Context, accountID int64, amount int64, ownerID int64) (*domain.Account, error) {
	args := m.Called(ctx, accountID, amount, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountService) Withdraw(ctx context.Context, accountID int64, amount int64, ownerID int64) (*domain.Account, error) {
	args := m.Called(ctx, accountID, amount, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

// Ensure mock implements the interface
var _ portssvc.AccountSvcFacade = (*MockAccountService)(nil)

func int64Ptr(v int64) *int64 { return &v }

func sampleAccount() *domain.Account {
	return &domain.Account{
		AccountID:   1,
		AccountType: "savings",
		OpeningDate: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		Balance:     300,
		OwnerID:     int64Ptr(7),
	}
}

// --- Test Suite ---
type AccountHandlerTestSuite struct {
	suite.Suite
	router             *gin.Engine
	mockAccountService *MockAccountService
}

func (suite *AccountHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.mockAccountService = new(MockAccountService)

	v1 := suite.router.Group("/api/v1")
	handlers.RegisterAccountRoutes(v1, suite.mockAccountService)
}

func (suite *AccountHandlerTestSuite) do(method, url, contentType, accept, body string) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != "" {
		reader = bytes.NewReader([]byte(body))
	} else {
		reader = bytes.NewReader(nil)
	}
	req, _ := http.NewRequest(method, url, reader)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if accept != "" {
		req.Header.Set("Accept", accept)
	}
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *AccountHandlerTestSuite) decodeError(w *httptest.ResponseRecorder) dto.ErrorResponse {
	var body dto.ErrorResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

// --- Test Cases ---

func (suite *AccountHandlerTestSuite) TestListAccounts_PassesNameAndReturnsArray() {
	suite.mockAccountService.On("ListAccounts", mock.Anything, "alice").
		Return([]domain.Account{*sampleAccount()}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/accounts?name=alice", "", "application/json", "")

	suite.Equal(http.StatusOK, w.Code)
	var resp []dto.AccountResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Require().Len(resp, 1)
	suite.Equal(int64(1), resp[0].ID)
	suite.Equal("3.00", resp[0].BalanceDisplay)
	suite.mockAccountService.AssertExpectations(suite.T())
}

func (suite *AccountHandlerTestSuite) TestListAccounts_XML() {
	suite.mockAccountService.On("ListAccounts", mock.Anything, "").
		Return([]domain.Account{*sampleAccount()}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/accounts", "", "application/xml", "")

	suite.Equal(http.StatusOK, w.Code)
	suite.Contains(w.Header().Get("Content-Type"), "application/xml")
	var resp dto.ListAccountsResponse
	suite.Require().NoError(xml.Unmarshal(w.Body.Bytes(), &resp))
	suite.Require().Len(resp.Accounts, 1)
	suite.Equal("savings", resp.Accounts[0].Type)
}

func (suite *AccountHandlerTestSuite) TestGetAccount_Success() {
	suite.mockAccountService.On("GetAccountByID", mock.Anything, int64(1)).Return(sampleAccount(), nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/accounts/1", "", "", "")

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.AccountResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("2024-01-01", resp.OpeningDate)
	suite.Equal(int64(300), resp.Balance)
}

func (suite *AccountHandlerTestSuite) TestGetAccount_BadID() {
	for _, id := range []string{"abc", "0", "-3"} {
		w := suite.do(http.MethodGet, "/api/v1/accounts/"+id, "", "", "")
		suite.Equal(http.StatusBadRequest, w.Code, id)
		body := suite.decodeError(w)
		suite.Equal("validation_error", body.Kind)
		suite.Equal("id", body.Details["field"])
	}
	suite.mockAccountService.AssertNotCalled(suite.T(), "GetAccountByID", mock.Anything, mock.Anything)
}

func (suite *AccountHandlerTestSuite) TestGetAccount_NotFound() {
	suite.mockAccountService.On("GetAccountByID", mock.Anything, int64(42)).
		Return(nil, apperrors.NewNotFoundError("account", 42)).Once()

	w := suite.do(http.MethodGet, "/api/v1/accounts/42", "", "", "")

	suite.Equal(http.StatusNotFound, w.Code)
	body := suite.decodeError(w)
	suite.Equal("not_found", body.Kind)
	suite.EqualValues(42, body.Details["id"])
}

func (suite *AccountHandlerTestSuite) TestCreateAccount_JSON() {
	suite.mockAccountService.On("CreateAccount", mock.Anything, mock.MatchedBy(func(a domain.Account) bool {
		return a.AccountType == "savings" &&
			a.OpeningDate.Equal(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)) &&
			a.OwnerID != nil && *a.OwnerID == 7
	})).Return(sampleAccount(), nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/accounts", "application/json", "",
		`{"id": 55, "type":"savings","openingDate":"2024-01-01","balance":0,"ownerId":7}`)

	suite.Equal(http.StatusCreated, w.Code)
	suite.mockAccountService.AssertExpectations(suite.T())
}

func (suite *AccountHandlerTestSuite) TestCreateAccount_XML() {
	suite.mockAccountService.On("CreateAccount", mock.Anything, mock.MatchedBy(func(a domain.Account) bool {
		return a.AccountType == "checking" && a.OwnerID == nil
	})).Return(sampleAccount(), nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/accounts", "application/xml", "application/xml",
		`<account><type>checking</type><openingDate>2024-01-01</openingDate></account>`)

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.AccountResponse
	suite.Require().NoError(xml.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(int64(1), resp.ID)
}

func (suite *AccountHandlerTestSuite) TestCreateAccount_BindingErrors() {
	tests := []struct {
		name  string
		body  string
		field string
	}{
		{"missing type", `{"openingDate":"2024-01-01"}`, "type"},
		{"blank type", `{"type":"     ","openingDate":"2024-01-01"}`, "type"},
		{"short type", `{"type":"ab","openingDate":"2024-01-01"}`, "type"},
		{"long type", `{"type":"` + strings.Repeat("x", 51) + `","openingDate":"2024-01-01"}`, "type"},
		{"missing date", `{"type":"savings"}`, "openingDate"},
		{"bad date", `{"type":"savings","openingDate":"01/02/2024"}`, "openingDate"},
		{"malformed", `{"type":`, "body"},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			w := suite.do(http.MethodPost, "/api/v1/accounts", "application/json", "", tt.body)
			suite.Equal(http.StatusBadRequest, w.Code)
			body := suite.decodeError(w)
			suite.Equal("validation_error", body.Kind)
			suite.Equal(tt.field, body.Details["field"])
		})
	}
	suite.mockAccountService.AssertNotCalled(suite.T(), "CreateAccount", mock.Anything, mock.Anything)
}

func (suite *AccountHandlerTestSuite) TestUpdateAccount_Accepted() {
	suite.mockAccountService.On("UpdateAccount", mock.Anything, int64(1), mock.MatchedBy(func(a domain.Account) bool {
		return a.Balance == -20 && a.AccountType == "checking"
	})).Return(sampleAccount(), nil).Once()

	w := suite.do(http.MethodPut, "/api/v1/accounts/1", "application/json", "",
		`{"type":"checking","openingDate":"2024-02-01","balance":-20}`)

	suite.Equal(http.StatusAccepted, w.Code)
}

func (suite *AccountHandlerTestSuite) TestUpdateAccount_NotFound() {
	suite.mockAccountService.On("UpdateAccount", mock.Anything, int64(9), mock.Anything).
		Return(nil, apperrors.NewNotFoundError("account", 9)).Once()

	w := suite.do(http.MethodPut, "/api/v1/accounts/9", "application/json", "",
		`{"type":"checking","openingDate":"2024-02-01"}`)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *AccountHandlerTestSuite) TestDeleteAccount_NoContent() {
	suite.mockAccountService.On("DeleteAccount", mock.Anything, int64(1)).Return(nil).Once()

	w := suite.do(http.MethodDelete, "/api/v1/accounts/1", "", "", "")

	suite.Equal(http.StatusNoContent, w.Code)
	suite.Empty(w.Body.Bytes())
}

func (suite *AccountHandlerTestSuite) TestDeleteAccountsByOwner() {
	suite.mockAccountService.On("DeleteAccountsByOwner", mock.Anything, int64(7)).Return(int64(3), nil).Once()

	w := suite.do(http.MethodDelete, "/api/v1/accounts/owner/7", "", "", "")

	suite.Equal(http.StatusNoContent, w.Code)
	suite.Equal("3", w.Header().Get(handlers.RemovedCountHeader))

	w = suite.do(http.MethodDelete, "/api/v1/accounts/owner/x", "", "", "")
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *AccountHandlerTestSuite) TestDeposit_Success() {
	suite.mockAccountService.On("Deposit", mock.Anything, int64(1), int64(500), int64(7)).
		Return(sampleAccount(), nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/accounts/1/balance/deposit", "application/json", "",
		`{"amount":500,"ownerId":7}`)

	suite.Equal(http.StatusOK, w.Code)
	suite.mockAccountService.AssertExpectations(suite.T())
}

func (suite *AccountHandlerTestSuite) TestWithdraw_XMLBody() {
	suite.mockAccountService.On("Withdraw", mock.Anything, int64(1), int64(200), int64(7)).
		Return(sampleAccount(), nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/accounts/1/balance/withdraw", "application/xml", "application/json",
		`<balanceMutation><amount>200</amount><ownerId>7</ownerId></balanceMutation>`)

	suite.Equal(http.StatusOK, w.Code)
	suite.Contains(w.Header().Get("Content-Type"), "application/json")
}

func (suite *AccountHandlerTestSuite) TestBalanceMutation_MissingOwner() {
	w := suite.do(http.MethodPost, "/api/v1/accounts/1/balance/deposit", "application/json", "", `{"amount":500}`)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Equal("ownerId", suite.decodeError(w).Details["field"])
	suite.mockAccountService.AssertNotCalled(suite.T(), "Deposit", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *AccountHandlerTestSuite) TestBalanceMutation_ErrorMapping() {
	tests := []struct {
		name   string
		err    error
		status int
		kind   string
	}{
		{"not found", apperrors.NewNotFoundError("account", 1), http.StatusNotFound, "not_found"},
		{"ownership", &apperrors.OwnershipMismatchError{AccountID: 1, OwnerID: 9}, http.StatusForbidden, "ownership_mismatch"},
		{"invalid amount", &apperrors.InvalidAmountError{Amount: 0, Reason: "must be positive"}, http.StatusBadRequest, "invalid_amount"},
		{"insufficient", &apperrors.InsufficientFundsError{AccountID: 1, Balance: 300, Amount: 1000}, http.StatusConflict, "insufficient_funds"},
		{"timeout", apperrors.NewAppError(http.StatusGatewayTimeout, "failed to withdraw: timed out", context.DeadlineExceeded), http.StatusGatewayTimeout, "internal_error"},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			suite.mockAccountService.On("Withdraw", mock.Anything, int64(1), int64(1000), int64(9)).Return(nil, tt.err).Once()

			w := suite.do(http.MethodPost, "/api/v1/accounts/1/balance/withdraw", "application/json", "",
				`{"amount":1000,"ownerId":9}`)

			suite.Equal(tt.status, w.Code)
			suite.Equal(tt.kind, suite.decodeError(w).Kind)
		})
	}
}

func (suite *AccountHandlerTestSuite) TestInsufficientFunds_Details() {
	suite.mockAccountService.On("Withdraw", mock.Anything, int64(1), int64(1000), int64(7)).
		Return(nil, &apperrors.InsufficientFundsError{AccountID: 1, Balance: 300, Amount: 1000}).Once()

	w := suite.do(http.MethodPost, "/api/v1/accounts/1/balance/withdraw", "application/json", "",
		`{"amount":1000,"ownerId":7}`)

	body := suite.decodeError(w)
	suite.EqualValues(300, body.Details["balance"])
	suite.EqualValues(1000, body.Details["amount"])
}

func (suite *AccountHandlerTestSuite) TestInternalErrorHidesCause() {
	suite.mockAccountService.On("GetAccountByID", mock.Anything, int64(1)).
		Return(nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to find account", context.Canceled)).Once()

	w := suite.do(http.MethodGet, "/api/v1/accounts/1", "", "", "")

	suite.Equal(http.StatusInternalServerError, w.Code)
	suite.Equal("failed to find account", suite.decodeError(w).Error)
}

// --- Run Test Suite ---
func TestAccountHandler(t *testing.T) {
	suite.Run(t, new(AccountHandlerTestSuite))
}
