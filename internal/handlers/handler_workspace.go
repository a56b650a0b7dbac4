package handlers

import (
	"net/http"

	portssvc "github.com/FinHubBR/finhub_backend/internal/core/ports/services"
	"github.com/FinHubBR/finhub_backend/internal/dto"
	"github.com/FinHubBR/finhub_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// workspaceHandler handles the auxiliary collections and profile settings.
type workspaceHandler struct {
	profileService portssvc.ProfileSvcFacade
}

func newWorkspaceHandler(ps portssvc.ProfileSvcFacade) *workspaceHandler {
	return &workspaceHandler{profileService: ps}
}

// registerWorkspaceRoutes registers routes for stack items, checklist items,
// digital tools, automations and settings under the profile group.
func registerWorkspaceRoutes(rg *gin.RouterGroup, profileService portssvc.ProfileSvcFacade) {
	h := newWorkspaceHandler(profileService)

	stack := rg.Group("/stack")
	{
		stack.POST("", h.createStackItem)
		stack.DELETE("/:id", h.deleteStackItem)
	}

	checklist := rg.Group("/checklist")
	{
		checklist.POST("", h.createChecklistItem)
		checklist.PATCH("/:id/toggle", h.toggleChecklistItem)
		checklist.DELETE("/:id", h.deleteChecklistItem)
	}

	tools := rg.Group("/digital-tools")
	{
		tools.POST("", h.createDigitalTool)
		tools.DELETE("/:id", h.deleteDigitalTool)
	}

	automations := rg.Group("/automations")
	{
		automations.POST("", h.createAutomation)
		automations.PATCH("/:id/toggle", h.toggleAutomation)
		automations.DELETE("/:id", h.deleteAutomation)
	}

	rg.PATCH("/settings", h.updateSettings)
}

// createStackItem godoc
// @Summary Add stack item
// @Tags stack
// @Accept json
// @Produce json
// @Param profile path string true "Profile (PJ or PF)"
// @Param item body dto.CreateStackItemRequest true "Stack item data"
// @Success 201 {object} domain.StackItem
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /profiles/{profile}/stack [post]
func (h *workspaceHandler) createStackItem(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}
	kind, ok := profileKindFromPath(c)
	if !ok {
		return
	}

	var req dto.CreateStackItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	item, err := h.profileService.AddStackItem(c.Request.Context(), userID, kind, req)
	if err != nil {
		respondMutationError(c, err, "add stack item")
		return
	}
	c.JSON(http.StatusCreated, item)
}

// deleteStackItem godoc
// @Summary Delete stack item
// @Tags stack
// @Param profile path string true "Profile (PJ or PF)"
// @Param id path string true "Item ID"
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /profiles/{profile}/stack/{id} [delete]
func (h *workspaceHandler) deleteStackItem(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}
	kind, ok := profileKindFromPath(c)
	if !ok {
		return
	}

	if err := h.profileService.DeleteStackItem(c.Request.Context(), userID, kind, c.Param("id")); err != nil {
		respondMutationError(c, err, "delete stack item")
		return
	}
	c.Status(http.StatusNoContent)
}

// createChecklistItem godoc
// @Summary Add checklist item
// @Tags checklist
// @Accept json
// @Produce json
// @Param profile path string true "Profile (PJ or PF)"
// @Param item body dto.CreateChecklistItemRequest true "Checklist item data"
// @Success 201 {object} domain.ChecklistItem
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /profiles/{profile}/checklist [post]
func (h *workspaceHandler) createChecklistItem(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}
	kind, ok := profileKindFromPath(c)
	if !ok {
		return
	}

	var req dto.CreateChecklistItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	item, err := h.profileService.AddChecklistItem(c.Request.Context(), userID, kind, req)
	if err != nil {
		respondMutationError(c, err, "add checklist item")
		return
	}
	c.JSON(http.StatusCreated, item)
}

// toggleChecklistItem godoc
// @Summary Toggle checklist item
// @Tags checklist
// @Produce json
// @Param profile path string true "Profile (PJ or PF)"
// @Param id path string true "Item ID"
// @Success 200 {object} domain.ChecklistItem
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /profiles/{profile}/checklist/{id}/toggle [patch]
func (h *workspaceHandler) toggleChecklistItem(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}
	kind, ok := profileKindFromPath(c)
	if !ok {
		return
	}

	item, err := h.profileService.ToggleChecklistItem(c.Request.Context(), userID, kind, c.Param("id"))
	if err != nil {
		respondMutationError(c, err, "toggle checklist item")
		return
	}
	c.JSON(http.StatusOK, item)
}

// deleteChecklistItem godoc
// @Summary Delete checklist item
// @Tags checklist
// @Param profile path string true "Profile (PJ or PF)"
// @Param id path string true "Item ID"
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /profiles/{profile}/checklist/{id} [delete]
func (h *workspaceHandler) deleteChecklistItem(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}
	kind, ok := profileKindFromPath(c)
	if !ok {
		return
	}

	if err := h.profileService.DeleteChecklistItem(c.Request.Context(), userID, kind, c.Param("id")); err != nil {
		respondMutationError(c, err, "delete checklist item")
		return
	}
	c.Status(http.StatusNoContent)
}

// createDigitalTool godoc
// @Summary Add digital tool
// @Tags digital-tools
// @Accept json
// @Produce json
// @Param profile path string true "Profile (PJ or PF)"
// @Param tool body dto.CreateDigitalToolRequest true "Tool data"
// @Success 201 {object} domain.DigitalTool
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /profiles/{profile}/digital-tools [post]
func (h *workspaceHandler) createDigitalTool(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}
	kind, ok := profileKindFromPath(c)
	if !ok {
		return
	}

	var req dto.CreateDigitalToolRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	tool, err := h.profileService.AddDigitalTool(c.Request.Context(), userID, kind, req)
	if err != nil {
		respondMutationError(c, err, "add digital tool")
		return
	}
	c.JSON(http.StatusCreated, tool)
}

// deleteDigitalTool godoc
// @Summary Delete digital tool
// @Tags digital-tools
// @Param profile path string true "Profile (PJ or PF)"
// @Param id path string true "Tool ID"
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /profiles/{profile}/digital-tools/{id} [delete]
func (h *workspaceHandler) deleteDigitalTool(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}
	kind, ok := profileKindFromPath(c)
	if !ok {
		return
	}

	if err := h.profileService.DeleteDigitalTool(c.Request.Context(), userID, kind, c.Param("id")); err != nil {
		respondMutationError(c, err, "delete digital tool")
		return
	}
	c.Status(http.StatusNoContent)
}

// createAutomation godoc
// @Summary Add automation
// @Tags automations
// @Accept json
// @Produce json
// @Param profile path string true "Profile (PJ or PF)"
// @Param automation body dto.CreateAutomationRequest true "Automation data"
// @Success 201 {object} domain.AutomationRule
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /profiles/{profile}/automations [post]
func (h *workspaceHandler) createAutomation(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}
	kind, ok := profileKindFromPath(c)
	if !ok {
		return
	}

	var req dto.CreateAutomationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	rule, err := h.profileService.AddAutomation(c.Request.Context(), userID, kind, req)
	if err != nil {
		respondMutationError(c, err, "add automation")
		return
	}
	c.JSON(http.StatusCreated, rule)
}

// toggleAutomation godoc
// @Summary Toggle automation
// @Tags automations
// @Produce json
// @Param profile path string true "Profile (PJ or PF)"
// @Param id path string true "Automation ID"
// @Success 200 {object} domain.AutomationRule
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /profiles/{profile}/automations/{id}/toggle [patch]
func (h *workspaceHandler) toggleAutomation(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}
	kind, ok := profileKindFromPath(c)
	if !ok {
		return
	}

	rule, err := h.profileService.ToggleAutomation(c.Request.Context(), userID, kind, c.Param("id"))
	if err != nil {
		respondMutationError(c, err, "toggle automation")
		return
	}
	c.JSON(http.StatusOK, rule)
}

// deleteAutomation godoc
// @Summary Delete automation
// @Tags automations
// @Param profile path string true "Profile (PJ or PF)"
// @Param id path string true "Automation ID"
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /profiles/{profile}/automations/{id} [delete]
func (h *workspaceHandler) deleteAutomation(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}
	kind, ok := profileKindFromPath(c)
	if !ok {
		return
	}

	if err := h.profileService.DeleteAutomation(c.Request.Context(), userID, kind, c.Param("id")); err != nil {
		respondMutationError(c, err, "delete automation")
		return
	}
	c.Status(http.StatusNoContent)
}

// updateSettings godoc
// @Summary Update profile settings
// @Description Patches the profile's provision rates and checklist month. Omitted fields are unchanged.
// @Tags settings
// @Accept json
// @Produce json
// @Param profile path string true "Profile (PJ or PF)"
// @Param settings body dto.UpdateSettingsRequest true "Settings patch"
// @Success 200 {object} domain.AppState
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /profiles/{profile}/settings [patch]
func (h *workspaceHandler) updateSettings(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}
	kind, ok := profileKindFromPath(c)
	if !ok {
		return
	}

	var req dto.UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	state, err := h.profileService.UpdateSettings(c.Request.Context(), userID, kind, req)
	if err != nil {
		respondMutationError(c, err, "update settings")
		return
	}
	c.JSON(http.StatusOK, state)
}
