package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/FinHubBR/finhub_backend/internal/core/domain"
	portssvc "github.com/FinHubBR/finhub_backend/internal/core/ports/services"
	"github.com/FinHubBR/finhub_backend/internal/dto"
	"github.com/FinHubBR/finhub_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// stateHandler serves the full persisted pair of profile trees.
type stateHandler struct {
	profileService portssvc.ProfileSvcFacade
}

func newStateHandler(ps portssvc.ProfileSvcFacade) *stateHandler {
	return &stateHandler{profileService: ps}
}

// registerStateRoutes registers the whole-state route.
func registerStateRoutes(rg *gin.RouterGroup, profileService portssvc.ProfileSvcFacade) {
	h := newStateHandler(profileService)
	rg.GET("/state", h.getState)
}

// profileKindFromPath resolves the :profile path parameter, writing a 400 and
// returning false on an unknown profile name.
func profileKindFromPath(c *gin.Context) (domain.ProfileKind, bool) {
	kind, ok := domain.ValidProfile(c.Param("profile"))
	if !ok {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Profile must be PJ or PF"})
		return "", false
	}
	return kind, true
}

// monthYearFromQuery parses the month and year query parameters, defaulting
// to the current calendar month. Month is 1-12.
func monthYearFromQuery(c *gin.Context) (int, int, bool) {
	now := time.Now()
	month := now.Month()
	year := now.Year()

	var query struct {
		Month int `form:"month" binding:"omitempty,min=1,max=12"`
		Year  int `form:"year" binding:"omitempty,min=1970,max=9999"`
	}
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid month or year"})
		return 0, 0, false
	}
	if query.Month != 0 {
		month = time.Month(query.Month)
	}
	if query.Year != 0 {
		year = query.Year
	}
	return int(month), year, true
}

// getState godoc
// @Summary Get full state
// @Description Returns both profile trees with their versions, seeding defaults on first access.
// @Tags state
// @Produce json
// @Success 200 {object} dto.StateResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /state [get]
func (h *stateHandler) getState(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	state, versions, err := h.profileService.GetState(c.Request.Context(), userID)
	if err != nil {
		logger.Error("Failed to load state", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to load state"})
		return
	}

	c.JSON(http.StatusOK, dto.ToStateResponse(state, versions))
}
