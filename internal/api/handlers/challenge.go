package handlers

import (
	"net/http"

	"teamquest-backend/internal/auth"
	"teamquest-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ChallengeHandler handles HTTP requests for challenge operations
type ChallengeHandler struct {
	challengeService service.ChallengeServiceInterface
}

// NewChallengeHandler creates a new challenge handler
func NewChallengeHandler(challengeService service.ChallengeServiceInterface) *ChallengeHandler {
	return &ChallengeHandler{challengeService: challengeService}
}

// CreateChallenge handles POST /api/challenges
// @Summary Create a challenge
// @Description Create a challenge on a team; the caller becomes its owner
// @Tags challenges
// @Accept json
// @Produce json
// @Param challenge body service.CreateChallengeRequest true "Challenge data"
// @Success 201 {object} service.ChallengeResponse "Created challenge"
// @Failure 403 {object} ErrorResponse "Caller is not a coach or admin"
// @Failure 404 {object} ErrorResponse "Team not found"
// @Security BearerAuth
// @Router /challenges [post]
func (h *ChallengeHandler) CreateChallenge(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	var req service.CreateChallengeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	challenge, err := h.challengeService.Create(&req, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, challenge)
}

// GetTeamChallenges handles GET /api/teams/:id/challenges
// @Summary List a team's challenges
// @Tags challenges
// @Produce json
// @Param id path int true "Team ID"
// @Success 200 {array} service.ChallengeResponse "Challenges with completion counts"
// @Failure 404 {object} ErrorResponse "Team not found"
// @Security BearerAuth
// @Router /teams/{id}/challenges [get]
func (h *ChallengeHandler) GetTeamChallenges(c *gin.Context) {
	teamID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	challenges, err := h.challengeService.GetByTeam(teamID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, challenges)
}

// GetChallenge handles GET /api/challenges/:id
// @Summary Get a challenge
// @Description Get a challenge; visible to its team's members and its creator only
// @Tags challenges
// @Produce json
// @Param id path int true "Challenge ID"
// @Success 200 {object} service.ChallengeResponse "Challenge"
// @Failure 404 {object} ErrorResponse "Challenge not found"
// @Security BearerAuth
// @Router /challenges/{id} [get]
func (h *ChallengeHandler) GetChallenge(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	challenge, err := h.challengeService.GetByID(id, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, challenge)
}

// UpdateChallenge handles PUT /api/challenges/:id
// @Summary Update a challenge
// @Description Update a challenge; only its creator may do so
// @Tags challenges
// @Accept json
// @Produce json
// @Param id path int true "Challenge ID"
// @Param challenge body service.UpdateChallengeRequest true "Fields to update"
// @Success 200 {object} service.ChallengeResponse "Updated challenge"
// @Failure 403 {object} ErrorResponse "Caller is not the creator"
// @Failure 404 {object} ErrorResponse "Challenge not found"
// @Security BearerAuth
// @Router /challenges/{id} [put]
func (h *ChallengeHandler) UpdateChallenge(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req service.UpdateChallengeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	challenge, err := h.challengeService.Update(id, &req, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, challenge)
}

// DeleteChallenge handles DELETE /api/challenges/:id
// @Summary Delete a challenge
// @Description Delete a challenge and its completion log; only its creator may do so
// @Tags challenges
// @Produce json
// @Param id path int true "Challenge ID"
// @Success 200 {object} MessageResponse "Challenge deleted"
// @Failure 403 {object} ErrorResponse "Caller is not the creator"
// @Failure 404 {object} ErrorResponse "Challenge not found"
// @Security BearerAuth
// @Router /challenges/{id} [delete]
func (h *ChallengeHandler) DeleteChallenge(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.challengeService.Delete(id, userID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "challenge deleted"})
}

// LogCompletion handles POST /api/challenges/:id/complete
// @Summary Log a challenge completion
// @Description Record one completion; repeated completions are separate log entries
// @Tags challenges
// @Accept json
// @Produce json
// @Param id path int true "Challenge ID"
// @Param completion body service.LogCompletionRequest true "Completion details"
// @Success 201 {object} service.CompletionResponse "Logged completion"
// @Failure 404 {object} ErrorResponse "Challenge not found"
// @Security BearerAuth
// @Router /challenges/{id}/complete [post]
func (h *ChallengeHandler) LogCompletion(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req service.LogCompletionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	completion, err := h.challengeService.LogCompletion(id, userID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, completion)
}

// GetMyChallenges handles GET /api/challenges/mine
// @Summary List challenges created by the caller
// @Tags challenges
// @Produce json
// @Success 200 {array} service.ChallengeResponse "Challenges across all teams"
// @Failure 403 {object} ErrorResponse "Caller is not a coach or admin"
// @Security BearerAuth
// @Router /challenges/mine [get]
func (h *ChallengeHandler) GetMyChallenges(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	challenges, err := h.challengeService.GetMine(userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, challenges)
}
