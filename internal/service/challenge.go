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

// ChallengeService handles business logic for challenges and their
// completion log
type ChallengeService struct {
	challengeRepo repository.ChallengeRepositoryInterface
	teamRepo      repository.TeamRepositoryInterface
	validator     *validator.Validate
}

// NewChallengeService creates a new challenge service
func NewChallengeService(challengeRepo repository.ChallengeRepositoryInterface, teamRepo repository.TeamRepositoryInterface, validator *validator.Validate) *ChallengeService {
	return &ChallengeService{
		challengeRepo: challengeRepo,
		teamRepo:      teamRepo,
		validator:     validator,
	}
}

// CreateChallengeRequest represents the request to create a challenge
type CreateChallengeRequest struct {
	Name        string                    `json:"name" validate:"required,min=1,max=100"`
	Description string                    `json:"description" validate:"max=500"`
	Type        models.ChallengeType      `json:"type" validate:"required,oneof=cardio strength skill_based other"`
	Frequency   models.ChallengeFrequency `json:"frequency" validate:"required,oneof=daily weekly custom"`
	StartDate   time.Time                 `json:"start_date"`
	EndDate     time.Time                 `json:"end_date"`
	TeamID      uint                      `json:"team_id" validate:"required"`
}

// UpdateChallengeRequest represents the request to update a challenge.
// Omitted fields keep their current value.
type UpdateChallengeRequest struct {
	Name        *string                    `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Description *string                    `json:"description,omitempty" validate:"omitempty,max=500"`
	Type        *models.ChallengeType      `json:"type,omitempty" validate:"omitempty,oneof=cardio strength skill_based other"`
	Frequency   *models.ChallengeFrequency `json:"frequency,omitempty" validate:"omitempty,oneof=daily weekly custom"`
	StartDate   *time.Time                 `json:"start_date,omitempty"`
	EndDate     *time.Time                 `json:"end_date,omitempty"`
}

// LogCompletionRequest represents the request to log a completion
type LogCompletionRequest struct {
	Notes       string     `json:"notes" validate:"max=500"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

// ChallengeResponse represents the response for challenge operations
type ChallengeResponse struct {
	ID              uint                      `json:"id"`
	Name            string                    `json:"name"`
	Description     string                    `json:"description"`
	Type            models.ChallengeType      `json:"type"`
	Frequency       models.ChallengeFrequency `json:"frequency"`
	StartDate       time.Time                 `json:"start_date"`
	EndDate         time.Time                 `json:"end_date"`
	TeamID          uint                      `json:"team_id"`
	CreatedByID     uint                      `json:"created_by_id"`
	CompletionCount int                       `json:"completion_count"`
	CreatedAt       time.Time                 `json:"created_at"`
	UpdatedAt       time.Time                 `json:"updated_at"`
}

// CompletionResponse represents one logged completion
type CompletionResponse struct {
	ID          uint      `json:"id"`
	ChallengeID uint      `json:"challenge_id"`
	UserID      uint      `json:"user_id"`
	CompletedAt time.Time `json:"completed_at"`
	Notes       string    `json:"notes"`
}

// Create creates a challenge on a team, owned by its creator
func (s *ChallengeService) Create(req *CreateChallengeRequest, creatorID uint) (*ChallengeResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	if _, err := s.teamRepo.GetByID(req.TeamID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to verify team: %w", err)
	}

	challenge := &models.Challenge{
		Name:        req.Name,
		Description: req.Description,
		Type:        req.Type,
		Frequency:   req.Frequency,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		TeamID:      req.TeamID,
		CreatedByID: creatorID,
	}
	if err := s.challengeRepo.Create(challenge); err != nil {
		return nil, fmt.Errorf("failed to create challenge: %w", err)
	}
	return toChallengeResponse(challenge), nil
}

// GetByTeam returns all challenges of a team
func (s *ChallengeService) GetByTeam(teamID uint) ([]ChallengeResponse, error) {
	if _, err := s.teamRepo.GetByID(teamID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to verify team: %w", err)
	}

	challenges, err := s.challengeRepo.GetByTeamID(teamID)
	if err != nil {
		return nil, fmt.Errorf("failed to list challenges: %w", err)
	}
	responses := make([]ChallengeResponse, 0, len(challenges))
	for i := range challenges {
		responses = append(responses, *toChallengeResponse(&challenges[i]))
	}
	return responses, nil
}

// GetByID returns a single challenge. Viewers who are neither a member of
// the challenge's team nor its creator get the same error as for a
// missing challenge, so foreign ids reveal nothing.
func (s *ChallengeService) GetByID(id, viewerID uint) (*ChallengeResponse, error) {
	challenge, err := s.challengeRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrChallengeNotFound
		}
		return nil, fmt.Errorf("failed to load challenge: %w", err)
	}
	if !s.canView(challenge, viewerID) {
		return nil, apperrors.ErrChallengeNotFound
	}
	return toChallengeResponse(challenge), nil
}

// Update updates a challenge. Only its creator may do so.
func (s *ChallengeService) Update(id uint, req *UpdateChallengeRequest, userID uint) (*ChallengeResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	challenge, err := s.challengeRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrChallengeNotFound
		}
		return nil, fmt.Errorf("failed to load challenge: %w", err)
	}
	if challenge.CreatedByID != userID {
		return nil, apperrors.ErrNotOwner
	}

	if req.Name != nil {
		challenge.Name = *req.Name
	}
	if req.Description != nil {
		challenge.Description = *req.Description
	}
	if req.Type != nil {
		challenge.Type = *req.Type
	}
	if req.Frequency != nil {
		challenge.Frequency = *req.Frequency
	}
	if req.StartDate != nil {
		challenge.StartDate = *req.StartDate
	}
	if req.EndDate != nil {
		challenge.EndDate = *req.EndDate
	}
	if err := s.challengeRepo.Update(challenge); err != nil {
		return nil, fmt.Errorf("failed to update challenge: %w", err)
	}
	return toChallengeResponse(challenge), nil
}

// Delete deletes a challenge and its completion log. Only its creator may
// do so.
func (s *ChallengeService) Delete(id, userID uint) error {
	challenge, err := s.challengeRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrChallengeNotFound
		}
		return fmt.Errorf("failed to load challenge: %w", err)
	}
	if challenge.CreatedByID != userID {
		return apperrors.ErrNotOwner
	}
	if err := s.challengeRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete challenge: %w", err)
	}
	return nil
}

// LogCompletion records one completion of a challenge by a user. Repeated
// completions are allowed and logged as separate entries.
func (s *ChallengeService) LogCompletion(id, userID uint, req *LogCompletionRequest) (*CompletionResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	if _, err := s.challengeRepo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrChallengeNotFound
		}
		return nil, fmt.Errorf("failed to load challenge: %w", err)
	}

	completedAt := time.Now().UTC()
	if req.CompletedAt != nil {
		completedAt = *req.CompletedAt
	}

	completion := &models.ChallengeCompletion{
		ChallengeID: id,
		UserID:      userID,
		CompletedAt: completedAt,
		Notes:       req.Notes,
	}
	if err := s.challengeRepo.AddCompletion(completion); err != nil {
		return nil, fmt.Errorf("failed to log completion: %w", err)
	}
	return &CompletionResponse{
		ID:          completion.ID,
		ChallengeID: completion.ChallengeID,
		UserID:      completion.UserID,
		CompletedAt: completion.CompletedAt,
		Notes:       completion.Notes,
	}, nil
}

// GetMine returns all challenges created by the user, across teams
func (s *ChallengeService) GetMine(userID uint) ([]ChallengeResponse, error) {
	challenges, err := s.challengeRepo.GetByCreator(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list challenges: %w", err)
	}
	responses := make([]ChallengeResponse, 0, len(challenges))
	for i := range challenges {
		responses = append(responses, *toChallengeResponse(&challenges[i]))
	}
	return responses, nil
}

func (s *ChallengeService) canView(challenge *models.Challenge, viewerID uint) bool {
	if challenge.CreatedByID == viewerID {
		return true
	}
	for _, tu := range challenge.Team.TeamUsers {
		if tu.UserID == viewerID {
			return true
		}
	}
	return false
}

func toChallengeResponse(challenge *models.Challenge) *ChallengeResponse {
	return &ChallengeResponse{
		ID:              challenge.ID,
		Name:            challenge.Name,
		Description:     challenge.Description,
		Type:            challenge.Type,
		Frequency:       challenge.Frequency,
		StartDate:       challenge.StartDate,
		EndDate:         challenge.EndDate,
		TeamID:          challenge.TeamID,
		CreatedByID:     challenge.CreatedByID,
		CompletionCount: len(challenge.Completions),
		CreatedAt:       challenge.CreatedAt,
		UpdatedAt:       challenge.UpdatedAt,
	}
}
