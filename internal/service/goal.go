package service

import (
	"errors"
	"fmt"
	"time"

	"teamquest-backend/internal/database/models"
	apperrors "teamquest-backend/internal/errors"
	"teamquest-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// GoalService handles business logic for team goals and personal goals.
// The two kinds are disjoint: team goals are gated by membership, personal
// goals are visible to their owner only.
type GoalService struct {
	teamGoalRepo   repository.TeamGoalRepositoryInterface
	userGoalRepo   repository.UserGoalRepositoryInterface
	membershipRepo repository.MembershipRepositoryInterface
	teamRepo       repository.TeamRepositoryInterface
	validator      *validator.Validate
}

// NewGoalService creates a new goal service
func NewGoalService(teamGoalRepo repository.TeamGoalRepositoryInterface, userGoalRepo repository.UserGoalRepositoryInterface, membershipRepo repository.MembershipRepositoryInterface, teamRepo repository.TeamRepositoryInterface, validator *validator.Validate) *GoalService {
	return &GoalService{
		teamGoalRepo:   teamGoalRepo,
		userGoalRepo:   userGoalRepo,
		membershipRepo: membershipRepo,
		teamRepo:       teamRepo,
		validator:      validator,
	}
}

// CreateTeamGoalRequest represents the request to create a team goal
type CreateTeamGoalRequest struct {
	Title       string                `json:"title" validate:"required,min=1,max=100"`
	Description string                `json:"description" validate:"max=500"`
	Recurrence  models.GoalRecurrence `json:"recurrence,omitempty" validate:"omitempty,oneof=none daily weekly monthly season"`
	StartDate   time.Time             `json:"start_date"`
	EndDate     *time.Time            `json:"end_date,omitempty"`
	TeamID      uint                  `json:"team_id" validate:"required"`
}

// CreateUserGoalRequest represents the request to create a personal goal
type CreateUserGoalRequest struct {
	Title       string                `json:"title" validate:"required,min=1,max=100"`
	Description string                `json:"description" validate:"max=500"`
	Recurrence  models.GoalRecurrence `json:"recurrence,omitempty" validate:"omitempty,oneof=none daily weekly monthly season"`
	StartDate   time.Time             `json:"start_date"`
	EndDate     *time.Time            `json:"end_date,omitempty"`
}

// UpdateGoalRequest represents the request to update either kind of goal.
// Omitted fields keep their current value.
type UpdateGoalRequest struct {
	Title       *string                `json:"title,omitempty" validate:"omitempty,min=1,max=100"`
	Description *string                `json:"description,omitempty" validate:"omitempty,max=500"`
	Recurrence  *models.GoalRecurrence `json:"recurrence,omitempty" validate:"omitempty,oneof=none daily weekly monthly season"`
	StartDate   *time.Time             `json:"start_date,omitempty"`
	EndDate     *time.Time             `json:"end_date,omitempty"`
}

// TeamGoalResponse represents a team goal
type TeamGoalResponse struct {
	ID          uint                  `json:"id"`
	Title       string                `json:"title"`
	Description string                `json:"description"`
	Recurrence  models.GoalRecurrence `json:"recurrence"`
	StartDate   time.Time             `json:"start_date"`
	EndDate     *time.Time            `json:"end_date,omitempty"`
	TeamID      uint                  `json:"team_id"`
	CreatedByID uint                  `json:"created_by_id"`
	CreatedAt   time.Time             `json:"created_at"`
	UpdatedAt   time.Time             `json:"updated_at"`
}

// UserGoalResponse represents a personal goal
type UserGoalResponse struct {
	ID          uint                  `json:"id"`
	Title       string                `json:"title"`
	Description string                `json:"description"`
	Recurrence  models.GoalRecurrence `json:"recurrence"`
	StartDate   time.Time             `json:"start_date"`
	EndDate     *time.Time            `json:"end_date,omitempty"`
	UserID      uint                  `json:"user_id"`
	CreatedAt   time.Time             `json:"created_at"`
	UpdatedAt   time.Time             `json:"updated_at"`
}

// CreateTeamGoal creates a goal on a team. The caller must be a member of
// that team.
func (s *GoalService) CreateTeamGoal(req *CreateTeamGoalRequest, userID uint) (*TeamGoalResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	if _, err := s.teamRepo.GetByID(req.TeamID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to verify team: %w", err)
	}
	if err := s.requireMembership(req.TeamID, userID); err != nil {
		return nil, err
	}

	goal := &models.TeamGoal{
		Title:       req.Title,
		Description: req.Description,
		Recurrence:  goalRecurrenceOrDefault(req.Recurrence),
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		TeamID:      req.TeamID,
		CreatedByID: userID,
	}
	if err := s.teamGoalRepo.Create(goal); err != nil {
		return nil, fmt.Errorf("failed to create team goal: %w", err)
	}
	return toTeamGoalResponse(goal), nil
}

// GetTeamGoals returns all goals of a team. The caller must be a member.
func (s *GoalService) GetTeamGoals(teamID, userID uint) ([]TeamGoalResponse, error) {
	if _, err := s.teamRepo.GetByID(teamID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to verify team: %w", err)
	}
	if err := s.requireMembership(teamID, userID); err != nil {
		return nil, err
	}

	goals, err := s.teamGoalRepo.GetByTeamID(teamID)
	if err != nil {
		return nil, fmt.Errorf("failed to list team goals: %w", err)
	}
	responses := make([]TeamGoalResponse, 0, len(goals))
	for i := range goals {
		responses = append(responses, *toTeamGoalResponse(&goals[i]))
	}
	return responses, nil
}

// GetTeamGoal returns a single team goal. Non-members of the goal's team
// get the same error as for a missing goal.
func (s *GoalService) GetTeamGoal(id, userID uint) (*TeamGoalResponse, error) {
	goal, err := s.loadTeamGoal(id)
	if err != nil {
		return nil, err
	}
	isMember, err := s.membershipRepo.Exists(goal.TeamID, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to check membership: %w", err)
	}
	if !isMember && goal.CreatedByID != userID {
		return nil, apperrors.ErrTeamGoalNotFound
	}
	return toTeamGoalResponse(goal), nil
}

// UpdateTeamGoal updates a team goal. Only its creator may do so.
func (s *GoalService) UpdateTeamGoal(id uint, req *UpdateGoalRequest, userID uint) (*TeamGoalResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	goal, err := s.loadTeamGoal(id)
	if err != nil {
		return nil, err
	}
	if goal.CreatedByID != userID {
		return nil, apperrors.ErrNotOwner
	}

	applyGoalUpdate(req, &goal.Title, &goal.Description, &goal.Recurrence, &goal.StartDate, &goal.EndDate)
	if err := s.teamGoalRepo.Update(goal); err != nil {
		return nil, fmt.Errorf("failed to update team goal: %w", err)
	}
	return toTeamGoalResponse(goal), nil
}

// DeleteTeamGoal deletes a team goal. Only its creator may do so.
func (s *GoalService) DeleteTeamGoal(id, userID uint) error {
	goal, err := s.loadTeamGoal(id)
	if err != nil {
		return err
	}
	if goal.CreatedByID != userID {
		return apperrors.ErrNotOwner
	}
	if err := s.teamGoalRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete team goal: %w", err)
	}
	return nil
}

// CreateUserGoal creates a personal goal owned by the caller
func (s *GoalService) CreateUserGoal(req *CreateUserGoalRequest, userID uint) (*UserGoalResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	goal := &models.UserGoal{
		Title:       req.Title,
		Description: req.Description,
		Recurrence:  goalRecurrenceOrDefault(req.Recurrence),
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		UserID:      userID,
		CreatedByID: userID,
	}
	if err := s.userGoalRepo.Create(goal); err != nil {
		return nil, fmt.Errorf("failed to create user goal: %w", err)
	}
	return toUserGoalResponse(goal), nil
}

// GetUserGoals returns all personal goals of the caller
func (s *GoalService) GetUserGoals(userID uint) ([]UserGoalResponse, error) {
	goals, err := s.userGoalRepo.GetByUserID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list user goals: %w", err)
	}
	responses := make([]UserGoalResponse, 0, len(goals))
	for i := range goals {
		responses = append(responses, *toUserGoalResponse(&goals[i]))
	}
	return responses, nil
}

// GetUserGoal returns a single personal goal. Goals owned by other users
// behave exactly like missing ones.
func (s *GoalService) GetUserGoal(id, userID uint) (*UserGoalResponse, error) {
	goal, err := s.loadUserGoal(id, userID)
	if err != nil {
		return nil, err
	}
	return toUserGoalResponse(goal), nil
}

// UpdateUserGoal updates a personal goal of the caller
func (s *GoalService) UpdateUserGoal(id uint, req *UpdateGoalRequest, userID uint) (*UserGoalResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	goal, err := s.loadUserGoal(id, userID)
	if err != nil {
		return nil, err
	}

	applyGoalUpdate(req, &goal.Title, &goal.Description, &goal.Recurrence, &goal.StartDate, &goal.EndDate)
	if err := s.userGoalRepo.Update(goal); err != nil {
		return nil, fmt.Errorf("failed to update user goal: %w", err)
	}
	return toUserGoalResponse(goal), nil
}

// DeleteUserGoal deletes a personal goal of the caller
func (s *GoalService) DeleteUserGoal(id, userID uint) error {
	if _, err := s.loadUserGoal(id, userID); err != nil {
		return err
	}
	if err := s.userGoalRepo.Delete(id, userID); err != nil {
		return fmt.Errorf("failed to delete user goal: %w", err)
	}
	return nil
}

func (s *GoalService) loadTeamGoal(id uint) (*models.TeamGoal, error) {
	goal, err := s.teamGoalRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamGoalNotFound
		}
		return nil, fmt.Errorf("failed to load team goal: %w", err)
	}
	return goal, nil
}

func (s *GoalService) loadUserGoal(id, userID uint) (*models.UserGoal, error) {
	goal, err := s.userGoalRepo.GetByIDForUser(id, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserGoalNotFound
		}
		return nil, fmt.Errorf("failed to load user goal: %w", err)
	}
	return goal, nil
}

func (s *GoalService) requireMembership(teamID, userID uint) error {
	isMember, err := s.membershipRepo.Exists(teamID, userID)
	if err != nil {
		return fmt.Errorf("failed to check membership: %w", err)
	}
	if !isMember {
		return apperrors.ErrNotTeamMember
	}
	return nil
}

func toTeamGoalResponse(goal *models.TeamGoal) *TeamGoalResponse {
	return &TeamGoalResponse{
		ID:          goal.ID,
		Title:       goal.Title,
		Description: goal.Description,
		Recurrence:  goal.Recurrence,
		StartDate:   goal.StartDate,
		EndDate:     goal.EndDate,
		TeamID:      goal.TeamID,
		CreatedByID: goal.CreatedByID,
		CreatedAt:   goal.CreatedAt,
		UpdatedAt:   goal.UpdatedAt,
	}
}

func toUserGoalResponse(goal *models.UserGoal) *UserGoalResponse {
	return &UserGoalResponse{
		ID:          goal.ID,
		Title:       goal.Title,
		Description: goal.Description,
		Recurrence:  goal.Recurrence,
		StartDate:   goal.StartDate,
		EndDate:     goal.EndDate,
		UserID:      goal.UserID,
		CreatedAt:   goal.CreatedAt,
		UpdatedAt:   goal.UpdatedAt,
	}
}

func goalRecurrenceOrDefault(r models.GoalRecurrence) models.GoalRecurrence {
	if r == "" {
		return models.GoalRecurrenceNone
	}
	return r
}

func applyGoalUpdate(req *UpdateGoalRequest, title, description *string, recurrence *models.GoalRecurrence, startDate *time.Time, endDate **time.Time) {
	if req.Title != nil {
		*title = *req.Title
	}
	if req.Description != nil {
		*description = *req.Description
	}
	if req.Recurrence != nil {
		*recurrence = *req.Recurrence
	}
	if req.StartDate != nil {
		*startDate = *req.StartDate
	}
	if req.EndDate != nil {
		*endDate = req.EndDate
	}
}
