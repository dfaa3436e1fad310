package handlers

import (
	"net/http"

	"teamquest-backend/internal/auth"
	"teamquest-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// GoalHandler handles HTTP requests for team goals and personal goals
type GoalHandler struct {
	goalService service.GoalServiceInterface
}

// NewGoalHandler creates a new goal handler
func NewGoalHandler(goalService service.GoalServiceInterface) *GoalHandler {
	return &GoalHandler{goalService: goalService}
}

// CreateTeamGoal handles POST /api/goals/team
// @Summary Create a team goal
// @Description Create a goal shared by a team; the caller must be a member
// @Tags goals
// @Accept json
// @Produce json
// @Param goal body service.CreateTeamGoalRequest true "Goal data"
// @Success 201 {object} service.TeamGoalResponse "Created goal"
// @Failure 403 {object} ErrorResponse "Caller is not a member of the team"
// @Failure 404 {object} ErrorResponse "Team not found"
// @Security BearerAuth
// @Router /goals/team [post]
func (h *GoalHandler) CreateTeamGoal(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	var req service.CreateTeamGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	goal, err := h.goalService.CreateTeamGoal(&req, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, goal)
}

// GetTeamGoals handles GET /api/teams/:id/goals
// @Summary List a team's goals
// @Tags goals
// @Produce json
// @Param id path int true "Team ID"
// @Success 200 {array} service.TeamGoalResponse "Goals"
// @Failure 403 {object} ErrorResponse "Caller is not a member of the team"
// @Failure 404 {object} ErrorResponse "Team not found"
// @Security BearerAuth
// @Router /teams/{id}/goals [get]
func (h *GoalHandler) GetTeamGoals(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	teamID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	goals, err := h.goalService.GetTeamGoals(teamID, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, goals)
}

// GetTeamGoal handles GET /api/goals/team/:id
// @Summary Get a team goal
// @Tags goals
// @Produce json
// @Param id path int true "Goal ID"
// @Success 200 {object} service.TeamGoalResponse "Goal"
// @Failure 404 {object} ErrorResponse "Goal not found"
// @Security BearerAuth
// @Router /goals/team/{id} [get]
func (h *GoalHandler) GetTeamGoal(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	goal, err := h.goalService.GetTeamGoal(id, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, goal)
}

// UpdateTeamGoal handles PUT /api/goals/team/:id
// @Summary Update a team goal
// @Description Update a team goal; only its creator may do so
// @Tags goals
// @Accept json
// @Produce json
// @Param id path int true "Goal ID"
// @Param goal body service.UpdateGoalRequest true "Fields to update"
// @Success 200 {object} service.TeamGoalResponse "Updated goal"
// @Failure 403 {object} ErrorResponse "Caller is not the creator"
// @Failure 404 {object} ErrorResponse "Goal not found"
// @Security BearerAuth
// @Router /goals/team/{id} [put]
func (h *GoalHandler) UpdateTeamGoal(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req service.UpdateGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	goal, err := h.goalService.UpdateTeamGoal(id, &req, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, goal)
}

// DeleteTeamGoal handles DELETE /api/goals/team/:id
// @Summary Delete a team goal
// @Description Delete a team goal; only its creator may do so
// @Tags goals
// @Produce json
// @Param id path int true "Goal ID"
// @Success 200 {object} MessageResponse "Goal deleted"
// @Failure 403 {object} ErrorResponse "Caller is not the creator"
// @Failure 404 {object} ErrorResponse "Goal not found"
// @Security BearerAuth
// @Router /goals/team/{id} [delete]
func (h *GoalHandler) DeleteTeamGoal(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.goalService.DeleteTeamGoal(id, userID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "goal deleted"})
}

// CreateUserGoal handles POST /api/goals/my
// @Summary Create a personal goal
// @Tags goals
// @Accept json
// @Produce json
// @Param goal body service.CreateUserGoalRequest true "Goal data"
// @Success 201 {object} service.UserGoalResponse "Created goal"
// @Security BearerAuth
// @Router /goals/my [post]
func (h *GoalHandler) CreateUserGoal(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	var req service.CreateUserGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	goal, err := h.goalService.CreateUserGoal(&req, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, goal)
}

// GetUserGoals handles GET /api/goals/my
// @Summary List the caller's personal goals
// @Tags goals
// @Produce json
// @Success 200 {array} service.UserGoalResponse "Goals"
// @Security BearerAuth
// @Router /goals/my [get]
func (h *GoalHandler) GetUserGoals(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	goals, err := h.goalService.GetUserGoals(userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, goals)
}

// GetUserGoal handles GET /api/goals/my/:id
// @Summary Get a personal goal
// @Description Get a personal goal; goals of other users look like missing ones
// @Tags goals
// @Produce json
// @Param id path int true "Goal ID"
// @Success 200 {object} service.UserGoalResponse "Goal"
// @Failure 404 {object} ErrorResponse "Goal not found"
// @Security BearerAuth
// @Router /goals/my/{id} [get]
func (h *GoalHandler) GetUserGoal(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	goal, err := h.goalService.GetUserGoal(id, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, goal)
}

// UpdateUserGoal handles PUT /api/goals/my/:id
// @Summary Update a personal goal
// @Tags goals
// @Accept json
// @Produce json
// @Param id path int true "Goal ID"
// @Param goal body service.UpdateGoalRequest true "Fields to update"
// @Success 200 {object} service.UserGoalResponse "Updated goal"
// @Failure 404 {object} ErrorResponse "Goal not found"
// @Security BearerAuth
// @Router /goals/my/{id} [put]
func (h *GoalHandler) UpdateUserGoal(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req service.UpdateGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	goal, err := h.goalService.UpdateUserGoal(id, &req, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, goal)
}

// DeleteUserGoal handles DELETE /api/goals/my/:id
// @Summary Delete a personal goal
// @Tags goals
// @Produce json
// @Param id path int true "Goal ID"
// @Success 200 {object} MessageResponse "Goal deleted"
// @Failure 404 {object} ErrorResponse "Goal not found"
// @Security BearerAuth
// @Router /goals/my/{id} [delete]
func (h *GoalHandler) DeleteUserGoal(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.goalService.DeleteUserGoal(id, userID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "goal deleted"})
}
