package handlers

import (
	"net/http"

	"teamquest-backend/internal/auth"
	"teamquest-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// OffSeasonHandler handles HTTP requests for off-season periods
type OffSeasonHandler struct {
	offSeasonService service.OffSeasonServiceInterface
}

// NewOffSeasonHandler creates a new off-season handler
func NewOffSeasonHandler(offSeasonService service.OffSeasonServiceInterface) *OffSeasonHandler {
	return &OffSeasonHandler{offSeasonService: offSeasonService}
}

// CreateOffSeason handles POST /api/off-seasons
// @Summary Create an off-season
// @Description Create an off-season period; the end date must be after the start date
// @Tags off-seasons
// @Accept json
// @Produce json
// @Param offSeason body service.CreateOffSeasonRequest true "Off-season data"
// @Success 201 {object} service.OffSeasonResponse "Created off-season"
// @Failure 400 {object} ErrorResponse "Invalid date range"
// @Failure 404 {object} ErrorResponse "Team not found"
// @Security BearerAuth
// @Router /off-seasons [post]
func (h *OffSeasonHandler) CreateOffSeason(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	var req service.CreateOffSeasonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	offSeason, err := h.offSeasonService.Create(&req, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, offSeason)
}

// GetTeamOffSeasons handles GET /api/teams/:id/off-seasons
// @Summary List a team's off-seasons
// @Tags off-seasons
// @Produce json
// @Param id path int true "Team ID"
// @Success 200 {array} service.OffSeasonResponse "Off-seasons, most recent first"
// @Failure 404 {object} ErrorResponse "Team not found"
// @Security BearerAuth
// @Router /teams/{id}/off-seasons [get]
func (h *OffSeasonHandler) GetTeamOffSeasons(c *gin.Context) {
	teamID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	offSeasons, err := h.offSeasonService.GetByTeam(teamID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, offSeasons)
}

// GetOffSeason handles GET /api/off-seasons/:id
// @Summary Get an off-season
// @Tags off-seasons
// @Produce json
// @Param id path int true "Off-season ID"
// @Success 200 {object} service.OffSeasonResponse "Off-season"
// @Failure 404 {object} ErrorResponse "Off-season not found"
// @Security BearerAuth
// @Router /off-seasons/{id} [get]
func (h *OffSeasonHandler) GetOffSeason(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	offSeason, err := h.offSeasonService.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, offSeason)
}

// UpdateOffSeason handles PUT /api/off-seasons/:id
// @Summary Update an off-season
// @Description Update the dates; the resulting range is re-validated
// @Tags off-seasons
// @Accept json
// @Produce json
// @Param id path int true "Off-season ID"
// @Param offSeason body service.UpdateOffSeasonRequest true "Fields to update"
// @Success 200 {object} service.OffSeasonResponse "Updated off-season"
// @Failure 400 {object} ErrorResponse "Invalid date range"
// @Failure 404 {object} ErrorResponse "Off-season not found"
// @Security BearerAuth
// @Router /off-seasons/{id} [put]
func (h *OffSeasonHandler) UpdateOffSeason(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req service.UpdateOffSeasonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	offSeason, err := h.offSeasonService.Update(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, offSeason)
}

// DeleteOffSeason handles DELETE /api/off-seasons/:id
// @Summary Delete an off-season
// @Tags off-seasons
// @Produce json
// @Param id path int true "Off-season ID"
// @Success 200 {object} MessageResponse "Off-season deleted"
// @Failure 404 {object} ErrorResponse "Off-season not found"
// @Security BearerAuth
// @Router /off-seasons/{id} [delete]
func (h *OffSeasonHandler) DeleteOffSeason(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.offSeasonService.Delete(id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "off-season deleted"})
}
