package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/FinHubBR/finhub_backend/internal/apperrors"
	portssvc "github.com/FinHubBR/finhub_backend/internal/core/ports/services"
	"github.com/FinHubBR/finhub_backend/internal/dto"
	"github.com/FinHubBR/finhub_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// ledgerHandler handles the core ledger collections: transactions, accounts
// and categories.
type ledgerHandler struct {
	profileService portssvc.ProfileSvcFacade
}

func newLedgerHandler(ps portssvc.ProfileSvcFacade) *ledgerHandler {
	return &ledgerHandler{profileService: ps}
}

// registerLedgerRoutes registers routes for transactions, accounts and
// categories under the profile group.
func registerLedgerRoutes(rg *gin.RouterGroup, profileService portssvc.ProfileSvcFacade) {
	h := newLedgerHandler(profileService)

	transactions := rg.Group("/transactions")
	{
		transactions.GET("", h.listTransactions)
		transactions.POST("", h.createTransaction)
		transactions.DELETE("/:id", h.deleteTransaction)
	}

	accounts := rg.Group("/accounts")
	{
		accounts.POST("", h.createAccount)
		accounts.PUT("/:id", h.updateAccount)
		accounts.DELETE("/:id", h.deleteAccount)
	}

	categories := rg.Group("/categories")
	{
		categories.POST("", h.createCategory)
		categories.DELETE("/:id", h.deleteCategory)
	}
}

// respondMutationError maps service errors to HTTP statuses shared by every
// profile-tree mutation endpoint.
func respondMutationError(c *gin.Context, err error, action string) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Resource not found"})
	case errors.Is(err, apperrors.ErrForbidden):
		c.JSON(http.StatusForbidden, ErrorResponse{Error: err.Error()})
	case errors.Is(err, apperrors.ErrValidation):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case errors.Is(err, apperrors.ErrStaleWrite):
		c.JSON(http.StatusConflict, ErrorResponse{Error: "State was modified concurrently, retry"})
	default:
		logger.Error("Failed to "+action, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to " + action})
	}
}

// listTransactions godoc
// @Summary List transactions
// @Description Returns the profile's ledger sorted newest first with resolved names.
// @Tags transactions
// @Produce json
// @Param profile path string true "Profile (PJ or PF)"
// @Success 200 {array} domain.TransactionView
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /profiles/{profile}/transactions [get]
func (h *ledgerHandler) listTransactions(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}
	kind, ok := profileKindFromPath(c)
	if !ok {
		return
	}

	views, err := h.profileService.ListTransactions(c.Request.Context(), userID, kind)
	if err != nil {
		respondMutationError(c, err, "list transactions")
		return
	}
	c.JSON(http.StatusOK, views)
}

// createTransaction godoc
// @Summary Add transaction
// @Tags transactions
// @Accept json
// @Produce json
// @Param profile path string true "Profile (PJ or PF)"
// @Param transaction body dto.CreateTransactionRequest true "Transaction data"
// @Success 201 {object} domain.Transaction
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /profiles/{profile}/transactions [post]
func (h *ledgerHandler) createTransaction(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}
	kind, ok := profileKindFromPath(c)
	if !ok {
		return
	}

	var req dto.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	tx, err := h.profileService.AddTransaction(c.Request.Context(), userID, kind, req)
	if err != nil {
		respondMutationError(c, err, "add transaction")
		return
	}
	c.JSON(http.StatusCreated, tx)
}

// deleteTransaction godoc
// @Summary Delete transaction
// @Tags transactions
// @Param profile path string true "Profile (PJ or PF)"
// @Param id path string true "Transaction ID"
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /profiles/{profile}/transactions/{id} [delete]
func (h *ledgerHandler) deleteTransaction(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}
	kind, ok := profileKindFromPath(c)
	if !ok {
		return
	}

	if err := h.profileService.DeleteTransaction(c.Request.Context(), userID, kind, c.Param("id")); err != nil {
		respondMutationError(c, err, "delete transaction")
		return
	}
	c.Status(http.StatusNoContent)
}

// createAccount godoc
// @Summary Add account
// @Tags accounts
// @Accept json
// @Produce json
// @Param profile path string true "Profile (PJ or PF)"
// @Param account body dto.CreateAccountRequest true "Account data"
// @Success 201 {object} domain.Account
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /profiles/{profile}/accounts [post]
func (h *ledgerHandler) createAccount(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}
	kind, ok := profileKindFromPath(c)
	if !ok {
		return
	}

	var req dto.CreateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	account, err := h.profileService.AddAccount(c.Request.Context(), userID, kind, req)
	if err != nil {
		respondMutationError(c, err, "add account")
		return
	}
	c.JSON(http.StatusCreated, account)
}

// updateAccount godoc
// @Summary Update account
// @Tags accounts
// @Accept json
// @Produce json
// @Param profile path string true "Profile (PJ or PF)"
// @Param id path string true "Account ID"
// @Param account body dto.UpdateAccountRequest true "Account data"
// @Success 200 {object} domain.Account
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /profiles/{profile}/accounts/{id} [put]
func (h *ledgerHandler) updateAccount(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}
	kind, ok := profileKindFromPath(c)
	if !ok {
		return
	}

	var req dto.UpdateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	account, err := h.profileService.UpdateAccount(c.Request.Context(), userID, kind, c.Param("id"), req)
	if err != nil {
		respondMutationError(c, err, "update account")
		return
	}
	c.JSON(http.StatusOK, account)
}

// deleteAccount godoc
// @Summary Delete account
// @Description Removes the account; its transactions keep a dangling reference resolved as a removed-account placeholder.
// @Tags accounts
// @Param profile path string true "Profile (PJ or PF)"
// @Param id path string true "Account ID"
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /profiles/{profile}/accounts/{id} [delete]
func (h *ledgerHandler) deleteAccount(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}
	kind, ok := profileKindFromPath(c)
	if !ok {
		return
	}

	if err := h.profileService.DeleteAccount(c.Request.Context(), userID, kind, c.Param("id")); err != nil {
		respondMutationError(c, err, "delete account")
		return
	}
	c.Status(http.StatusNoContent)
}

// createCategory godoc
// @Summary Add category
// @Tags categories
// @Accept json
// @Produce json
// @Param profile path string true "Profile (PJ or PF)"
// @Param category body dto.CreateCategoryRequest true "Category data"
// @Success 201 {object} domain.Category
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /profiles/{profile}/categories [post]
func (h *ledgerHandler) createCategory(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}
	kind, ok := profileKindFromPath(c)
	if !ok {
		return
	}

	var req dto.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	category, err := h.profileService.AddCategory(c.Request.Context(), userID, kind, req)
	if err != nil {
		respondMutationError(c, err, "add category")
		return
	}
	c.JSON(http.StatusCreated, category)
}

// deleteCategory godoc
// @Summary Delete category
// @Description Removes the category. The reserved transfer category is rejected.
// @Tags categories
// @Param profile path string true "Profile (PJ or PF)"
// @Param id path string true "Category ID"
// @Success 204 "No Content"
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /profiles/{profile}/categories/{id} [delete]
func (h *ledgerHandler) deleteCategory(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}
	kind, ok := profileKindFromPath(c)
	if !ok {
		return
	}

	if err := h.profileService.DeleteCategory(c.Request.Context(), userID, kind, c.Param("id")); err != nil {
		respondMutationError(c, err, "delete category")
		return
	}
	c.Status(http.StatusNoContent)
}
