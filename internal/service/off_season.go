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

// OffSeasonService handles business logic for off-season periods
type OffSeasonService struct {
	offSeasonRepo repository.OffSeasonRepositoryInterface
	teamRepo      repository.TeamRepositoryInterface
	validator     *validator.Validate
}

// NewOffSeasonService creates a new off-season service
func NewOffSeasonService(offSeasonRepo repository.OffSeasonRepositoryInterface, teamRepo repository.TeamRepositoryInterface, validator *validator.Validate) *OffSeasonService {
	return &OffSeasonService{
		offSeasonRepo: offSeasonRepo,
		teamRepo:      teamRepo,
		validator:     validator,
	}
}

// CreateOffSeasonRequest represents the request to create an off-season
type CreateOffSeasonRequest struct {
	StartDate time.Time `json:"start_date" validate:"required"`
	EndDate   time.Time `json:"end_date" validate:"required"`
	TeamID    uint      `json:"team_id" validate:"required"`
}

// UpdateOffSeasonRequest represents the request to update an off-season.
// Omitted dates keep their current value; the resulting range is
// re-validated either way.
type UpdateOffSeasonRequest struct {
	StartDate *time.Time `json:"start_date,omitempty"`
	EndDate   *time.Time `json:"end_date,omitempty"`
}

// OffSeasonResponse represents an off-season period
type OffSeasonResponse struct {
	ID        uint      `json:"id"`
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
	TeamID    uint      `json:"team_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Create creates an off-season for a team. The end date must be strictly
// after the start date.
func (s *OffSeasonService) Create(req *CreateOffSeasonRequest, userID uint) (*OffSeasonResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}
	if !req.EndDate.After(req.StartDate) {
		return nil, apperrors.ErrInvalidDateRange
	}

	if _, err := s.teamRepo.GetByID(req.TeamID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to verify team: %w", err)
	}

	offSeason := &models.OffSeason{
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		TeamID:      req.TeamID,
		CreatedByID: userID,
	}
	if err := s.offSeasonRepo.Create(offSeason); err != nil {
		return nil, fmt.Errorf("failed to create off-season: %w", err)
	}
	return toOffSeasonResponse(offSeason), nil
}

// GetByTeam returns all off-seasons of a team, most recent first
func (s *OffSeasonService) GetByTeam(teamID uint) ([]OffSeasonResponse, error) {
	if _, err := s.teamRepo.GetByID(teamID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to verify team: %w", err)
	}

	offSeasons, err := s.offSeasonRepo.GetByTeamID(teamID)
	if err != nil {
		return nil, fmt.Errorf("failed to list off-seasons: %w", err)
	}
	responses := make([]OffSeasonResponse, 0, len(offSeasons))
	for i := range offSeasons {
		responses = append(responses, *toOffSeasonResponse(&offSeasons[i]))
	}
	return responses, nil
}

// GetByID returns a single off-season
func (s *OffSeasonService) GetByID(id uint) (*OffSeasonResponse, error) {
	offSeason, err := s.loadOffSeason(id)
	if err != nil {
		return nil, err
	}
	return toOffSeasonResponse(offSeason), nil
}

// Update updates an off-season's dates
func (s *OffSeasonService) Update(id uint, req *UpdateOffSeasonRequest) (*OffSeasonResponse, error) {
	offSeason, err := s.loadOffSeason(id)
	if err != nil {
		return nil, err
	}

	if req.StartDate != nil {
		offSeason.StartDate = *req.StartDate
	}
	if req.EndDate != nil {
		offSeason.EndDate = *req.EndDate
	}
	if !offSeason.EndDate.After(offSeason.StartDate) {
		return nil, apperrors.ErrInvalidDateRange
	}

	if err := s.offSeasonRepo.Update(offSeason); err != nil {
		return nil, fmt.Errorf("failed to update off-season: %w", err)
	}
	return toOffSeasonResponse(offSeason), nil
}

// Delete deletes an off-season
func (s *OffSeasonService) Delete(id uint) error {
	if _, err := s.loadOffSeason(id); err != nil {
		return err
	}
	if err := s.offSeasonRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete off-season: %w", err)
	}
	return nil
}

func (s *OffSeasonService) loadOffSeason(id uint) (*models.OffSeason, error) {
	offSeason, err := s.offSeasonRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrOffSeasonNotFound
		}
		return nil, fmt.Errorf("failed to load off-season: %w", err)
	}
	return offSeason, nil
}

func toOffSeasonResponse(offSeason *models.OffSeason) *OffSeasonResponse {
	return &OffSeasonResponse{
		ID:        offSeason.ID,
		StartDate: offSeason.StartDate,
		EndDate:   offSeason.EndDate,
		TeamID:    offSeason.TeamID,
		CreatedAt: offSeason.CreatedAt,
		UpdatedAt: offSeason.UpdatedAt,
	}
}
