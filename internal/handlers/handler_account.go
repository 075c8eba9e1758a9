package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/SscSPs/accounts_service/internal/core/domain"
	portssvc "github.com/SscSPs/accounts_service/internal/core/ports/services"
	"github.com/SscSPs/accounts_service/internal/dto"
	"github.com/SscSPs/accounts_service/internal/middleware"
	"github.com/gin-gonic/gin"
)

// RemovedCountHeader carries the number of accounts a delete-by-owner removed.
const RemovedCountHeader = "X-Removed-Count"

// accountHandler handles HTTP requests related to accounts.
type accountHandler struct {
	accountService portssvc.AccountSvcFacade
}

// newAccountHandler creates a new accountHandler.
func newAccountHandler(as portssvc.AccountSvcFacade) *accountHandler {
	return &accountHandler{
		accountService: as,
	}
}

// RegisterAccountRoutes registers routes related to accounts.
func RegisterAccountRoutes(rg *gin.RouterGroup, accountService portssvc.AccountSvcFacade) {
	registerValidators()
	h := newAccountHandler(accountService)

	accounts := rg.Group("/accounts")
	{
		accounts.GET("", h.listAccounts)
		accounts.POST("", h.createAccount)
		accounts.GET("/:id", h.getAccount)
		accounts.PUT("/:id", h.updateAccount)
		accounts.DELETE("/:id", h.deleteAccount)
		accounts.DELETE("/owner/:ownerId", h.deleteAccountsByOwner)
		accounts.POST("/:id/balance/deposit", h.deposit)
		accounts.POST("/:id/balance/withdraw", h.withdraw)
	}
}

// listAccounts godoc
// @Summary List accounts
// @Description Returns every account. The name parameter is accepted but not applied.
// @Tags accounts
// @Produce  json,xml
// @Param   name query string false "Ignored name filter"
// @Success 200 {array} dto.AccountResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /accounts [get]
func (h *accountHandler) listAccounts(c *gin.Context) {
	name := c.Query("name")

	accounts, err := h.accountService.ListAccounts(c.Request.Context(), name)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	resp := dto.ToListAccountResponse(accounts)
	respondList(c, http.StatusOK, resp, dto.ListAccountsResponse{Accounts: resp})
}

// getAccount godoc
// @Summary Get an account by ID
// @Tags accounts
// @Produce  json,xml
// @Param   id path int true "Account ID"
// @Success 200 {object} dto.AccountResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid account id"
// @Failure 404 {object} dto.ErrorResponse "Account not found"
// @Failure 500 {object} dto.ErrorResponse
// @Router /accounts/{id} [get]
func (h *accountHandler) getAccount(c *gin.Context) {
	accountID, err := parseIDParam(c, "id")
	if err != nil {
		writeServiceError(c, err)
		return
	}

	account, err := h.accountService.GetAccountByID(c.Request.Context(), accountID)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	respond(c, http.StatusOK, dto.ToAccountResponse(account))
}

// createAccount godoc
// @Summary Create a new account
// @Description Any id in the body is ignored; the store assigns one.
// @Tags accounts
// @Accept  json,xml
// @Produce  json,xml
// @Param   account body dto.AccountRequest true "Account details"
// @Success 201 {object} dto.AccountResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input format or validation error"
// @Failure 500 {object} dto.ErrorResponse
// @Router /accounts [post]
func (h *accountHandler) createAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.AccountRequest
	if err := bindBody(c, &req); err != nil {
		writeServiceError(c, err)
		return
	}

	account, err := req.ToDomain()
	if err != nil {
		writeServiceError(c, toValidationError(err))
		return
	}

	logger.Info("Received request to create account", slog.String("account_type", req.Type))

	created, err := h.accountService.CreateAccount(c.Request.Context(), account)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	respond(c, http.StatusCreated, dto.ToAccountResponse(created))
}

// updateAccount godoc
// @Summary Replace an account
// @Description Replaces type, opening date, balance and owner. Omitted fields are cleared.
// @Tags accounts
// @Accept  json,xml
// @Produce  json,xml
// @Param   id path int true "Account ID"
// @Param   account body dto.AccountRequest true "Replacement account"
// @Success 202 {object} dto.AccountResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse "Account not found"
// @Failure 500 {object} dto.ErrorResponse
// @Router /accounts/{id} [put]
func (h *accountHandler) updateAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	accountID, err := parseIDParam(c, "id")
	if err != nil {
		writeServiceError(c, err)
		return
	}

	var req dto.AccountRequest
	if err := bindBody(c, &req); err != nil {
		writeServiceError(c, err)
		return
	}

	account, err := req.ToDomain()
	if err != nil {
		writeServiceError(c, toValidationError(err))
		return
	}

	logger.Info("Received request to update account", slog.Int64("account_id", accountID))

	updated, err := h.accountService.UpdateAccount(c.Request.Context(), accountID, account)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	respond(c, http.StatusAccepted, dto.ToAccountResponse(updated))
}

// deleteAccount godoc
// @Summary Delete an account
// @Description Idempotent: deleting a missing account also returns 204.
// @Tags accounts
// @Param   id path int true "Account ID"
// @Success 204 "No Content"
// @Failure 400 {object} dto.ErrorResponse "Invalid account id"
// @Failure 500 {object} dto.ErrorResponse
// @Router /accounts/{id} [delete]
func (h *accountHandler) deleteAccount(c *gin.Context) {
	accountID, err := parseIDParam(c, "id")
	if err != nil {
		writeServiceError(c, err)
		return
	}

	if err := h.accountService.DeleteAccount(c.Request.Context(), accountID); err != nil {
		writeServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// deleteAccountsByOwner godoc
// @Summary Delete every account of an owner
// @Description The number of removed accounts is returned in the X-Removed-Count header.
// @Tags accounts
// @Param   ownerId path int true "Owner ID"
// @Success 204 "No Content"
// @Header  204 {integer} X-Removed-Count "Accounts removed"
// @Failure 400 {object} dto.ErrorResponse "Invalid owner id"
// @Failure 500 {object} dto.ErrorResponse
// @Router /accounts/owner/{ownerId} [delete]
func (h *accountHandler) deleteAccountsByOwner(c *gin.Context) {
	ownerID, err := parseIDParam(c, "ownerId")
	if err != nil {
		writeServiceError(c, err)
		return
	}

	removed, err := h.accountService.DeleteAccountsByOwner(c.Request.Context(), ownerID)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.Header(RemovedCountHeader, strconv.FormatInt(removed, 10))
	c.Status(http.StatusNoContent)
}

// deposit godoc
// @Summary Deposit into an account
// @Tags balance
// @Accept  json,xml
// @Produce  json,xml
// @Param   id path int true "Account ID"
// @Param   mutation body dto.BalanceMutationRequest true "Amount and owner"
// @Success 200 {object} dto.AccountResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input or amount"
// @Failure 403 {object} dto.ErrorResponse "Owner does not match"
// @Failure 404 {object} dto.ErrorResponse "Account not found"
// @Failure 504 {object} dto.ErrorResponse "Mutation timed out"
// @Router /accounts/{id}/balance/deposit [post]
func (h *accountHandler) deposit(c *gin.Context) {
	h.mutateBalance(c, h.accountService.Deposit)
}

// withdraw godoc
// @Summary Withdraw from an account
// @Tags balance
// @Accept  json,xml
// @Produce  json,xml
// @Param   id path int true "Account ID"
// @Param   mutation body dto.BalanceMutationRequest true "Amount and owner"
// @Success 200 {object} dto.AccountResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input or amount"
// @Failure 403 {object} dto.ErrorResponse "Owner does not match"
// @Failure 404 {object} dto.ErrorResponse "Account not found"
// @Failure 409 {object} dto.ErrorResponse "Insufficient funds"
// @Failure 504 {object} dto.ErrorResponse "Mutation timed out"
// @Router /accounts/{id}/balance/withdraw [post]
func (h *accountHandler) withdraw(c *gin.Context) {
	h.mutateBalance(c, h.accountService.Withdraw)
}

type balanceOperation func(ctx context.Context, accountID, amount, ownerID int64) (*domain.Account, error)

func (h *accountHandler) mutateBalance(c *gin.Context, op balanceOperation) {
	accountID, err := parseIDParam(c, "id")
	if err != nil {
		writeServiceError(c, err)
		return
	}

	var req dto.BalanceMutationRequest
	if err := bindBody(c, &req); err != nil {
		writeServiceError(c, err)
		return
	}

	account, err := op(c.Request.Context(), accountID, req.Amount, *req.OwnerID)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	respond(c, http.StatusOK, dto.ToAccountResponse(account))
}
