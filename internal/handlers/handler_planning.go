package handlers

import (
	"net/http"

	portssvc "github.com/FinHubBR/finhub_backend/internal/core/ports/services"
	"github.com/FinHubBR/finhub_backend/internal/dto"
	"github.com/FinHubBR/finhub_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// planningHandler handles budgets, goals, recurring templates and
// distribution rules.
type planningHandler struct {
	profileService portssvc.ProfileSvcFacade
}

func newPlanningHandler(ps portssvc.ProfileSvcFacade) *planningHandler {
	return &planningHandler{profileService: ps}
}

// registerPlanningRoutes registers routes for the planning collections under
// the profile group.
func registerPlanningRoutes(rg *gin.RouterGroup, profileService portssvc.ProfileSvcFacade) {
	h := newPlanningHandler(profileService)

	budgets := rg.Group("/budgets")
	{
		budgets.PUT("", h.upsertBudget)
		budgets.DELETE("/:id", h.deleteBudget)
	}

	goals := rg.Group("/goals")
	{
		goals.POST("", h.createGoal)
		goals.PUT("/:id", h.updateGoal)
		goals.DELETE("/:id", h.deleteGoal)
	}

	recurring := rg.Group("/recurring")
	{
		recurring.POST("", h.createRecurring)
		recurring.DELETE("/:id", h.deleteRecurring)
	}

	rules := rg.Group("/distribution-rules")
	{
		rules.POST("", h.createDistributionRule)
		rules.DELETE("/:id", h.deleteDistributionRule)
	}
}

// upsertBudget godoc
// @Summary Upsert budget
// @Description Sets the spending limit for a category, replacing any existing budget for it.
// @Tags budgets
// @Accept json
// @Produce json
// @Param profile path string true "Profile (PJ or PF)"
// @Param budget body dto.UpsertBudgetRequest true "Budget data"
// @Success 200 {object} domain.Budget
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /profiles/{profile}/budgets [put]
func (h *planningHandler) upsertBudget(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}
	kind, ok := profileKindFromPath(c)
	if !ok {
		return
	}

	var req dto.UpsertBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	budget, err := h.profileService.UpsertBudget(c.Request.Context(), userID, kind, req)
	if err != nil {
		respondMutationError(c, err, "upsert budget")
		return
	}
	c.JSON(http.StatusOK, budget)
}

// deleteBudget godoc
// @Summary Delete budget
// @Tags budgets
// @Param profile path string true "Profile (PJ or PF)"
// @Param id path string true "Budget ID"
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /profiles/{profile}/budgets/{id} [delete]
func (h *planningHandler) deleteBudget(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}
	kind, ok := profileKindFromPath(c)
	if !ok {
		return
	}

	if err := h.profileService.DeleteBudget(c.Request.Context(), userID, kind, c.Param("id")); err != nil {
		respondMutationError(c, err, "delete budget")
		return
	}
	c.Status(http.StatusNoContent)
}

// createGoal godoc
// @Summary Add goal
// @Tags goals
// @Accept json
// @Produce json
// @Param profile path string true "Profile (PJ or PF)"
// @Param goal body dto.CreateGoalRequest true "Goal data"
// @Success 201 {object} domain.Goal
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /profiles/{profile}/goals [post]
func (h *planningHandler) createGoal(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}
	kind, ok := profileKindFromPath(c)
	if !ok {
		return
	}

	var req dto.CreateGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	goal, err := h.profileService.AddGoal(c.Request.Context(), userID, kind, req)
	if err != nil {
		respondMutationError(c, err, "add goal")
		return
	}
	c.JSON(http.StatusCreated, goal)
}

// updateGoal godoc
// @Summary Update goal
// @Tags goals
// @Accept json
// @Produce json
// @Param profile path string true "Profile (PJ or PF)"
// @Param id path string true "Goal ID"
// @Param goal body dto.UpdateGoalRequest true "Goal data"
// @Success 200 {object} domain.Goal
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /profiles/{profile}/goals/{id} [put]
func (h *planningHandler) updateGoal(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}
	kind, ok := profileKindFromPath(c)
	if !ok {
		return
	}

	var req dto.UpdateGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	goal, err := h.profileService.UpdateGoal(c.Request.Context(), userID, kind, c.Param("id"), req)
	if err != nil {
		respondMutationError(c, err, "update goal")
		return
	}
	c.JSON(http.StatusOK, goal)
}

// deleteGoal godoc
// @Summary Delete goal
// @Tags goals
// @Param profile path string true "Profile (PJ or PF)"
// @Param id path string true "Goal ID"
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /profiles/{profile}/goals/{id} [delete]
func (h *planningHandler) deleteGoal(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}
	kind, ok := profileKindFromPath(c)
	if !ok {
		return
	}

	if err := h.profileService.DeleteGoal(c.Request.Context(), userID, kind, c.Param("id")); err != nil {
		respondMutationError(c, err, "delete goal")
		return
	}
	c.Status(http.StatusNoContent)
}

// createRecurring godoc
// @Summary Add recurring template
// @Description Adds a recurring transaction template. Templates are never materialized into the ledger.
// @Tags recurring
// @Accept json
// @Produce json
// @Param profile path string true "Profile (PJ or PF)"
// @Param recurring body dto.CreateRecurringRequest true "Template data"
// @Success 201 {object} domain.RecurringTransaction
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /profiles/{profile}/recurring [post]
func (h *planningHandler) createRecurring(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}
	kind, ok := profileKindFromPath(c)
	if !ok {
		return
	}

	var req dto.CreateRecurringRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	rec, err := h.profileService.AddRecurring(c.Request.Context(), userID, kind, req)
	if err != nil {
		respondMutationError(c, err, "add recurring")
		return
	}
	c.JSON(http.StatusCreated, rec)
}

// deleteRecurring godoc
// @Summary Delete recurring template
// @Tags recurring
// @Param profile path string true "Profile (PJ or PF)"
// @Param id path string true "Template ID"
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /profiles/{profile}/recurring/{id} [delete]
func (h *planningHandler) deleteRecurring(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}
	kind, ok := profileKindFromPath(c)
	if !ok {
		return
	}

	if err := h.profileService.DeleteRecurring(c.Request.Context(), userID, kind, c.Param("id")); err != nil {
		respondMutationError(c, err, "delete recurring")
		return
	}
	c.Status(http.StatusNoContent)
}

// createDistributionRule godoc
// @Summary Add distribution rule
// @Description Adds an income distribution rule. Total allocation above 100% is rejected.
// @Tags distribution
// @Accept json
// @Produce json
// @Param profile path string true "Profile (PJ or PF)"
// @Param rule body dto.CreateDistributionRuleRequest true "Rule data"
// @Success 201 {object} domain.DistributionRule
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /profiles/{profile}/distribution-rules [post]
func (h *planningHandler) createDistributionRule(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}
	kind, ok := profileKindFromPath(c)
	if !ok {
		return
	}

	var req dto.CreateDistributionRuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	rule, err := h.profileService.AddDistributionRule(c.Request.Context(), userID, kind, req)
	if err != nil {
		respondMutationError(c, err, "add distribution rule")
		return
	}
	c.JSON(http.StatusCreated, rule)
}

// deleteDistributionRule godoc
// @Summary Delete distribution rule
// @Tags distribution
// @Param profile path string true "Profile (PJ or PF)"
// @Param id path string true "Rule ID"
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /profiles/{profile}/distribution-rules/{id} [delete]
func (h *planningHandler) deleteDistributionRule(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}
	kind, ok := profileKindFromPath(c)
	if !ok {
		return
	}

	if err := h.profileService.DeleteDistributionRule(c.Request.Context(), userID, kind, c.Param("id")); err != nil {
		respondMutationError(c, err, "delete distribution rule")
		return
	}
	c.Status(http.StatusNoContent)
}
