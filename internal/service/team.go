package service

import (
	"errors"
	"fmt"
	"time"

	"teamquest-backend/internal/auth"
	"teamquest-backend/internal/database/models"
	apperrors "teamquest-backend/internal/errors"
	"teamquest-backend/internal/mailer"
	"teamquest-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// TeamService handles business logic for teams and their rosters
type TeamService struct {
	teamRepo       repository.TeamRepositoryInterface
	membershipRepo repository.MembershipRepositoryInterface
	userRepo       repository.UserRepositoryInterface
	mail           mailer.EmailSender
	validator      *validator.Validate
}

// NewTeamService creates a new team service
func NewTeamService(teamRepo repository.TeamRepositoryInterface, membershipRepo repository.MembershipRepositoryInterface, userRepo repository.UserRepositoryInterface, mail mailer.EmailSender, validator *validator.Validate) *TeamService {
	return &TeamService{
		teamRepo:       teamRepo,
		membershipRepo: membershipRepo,
		userRepo:       userRepo,
		mail:           mail,
		validator:      validator,
	}
}

// CreateTeamRequest represents the request to create a team
type CreateTeamRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=100"`
	Description string `json:"description" validate:"max=500"`
}

// UpdateTeamRequest represents the request to update a team
type UpdateTeamRequest struct {
	Name        *string `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=500"`
}

// AddMemberRequest invites a user onto a team by email. Unknown emails get
// a stub account plus an invitation link; known users are added directly.
type AddMemberRequest struct {
	Email string          `json:"email" validate:"required,email,max=255"`
	Role  models.TeamRole `json:"role,omitempty" validate:"omitempty,oneof=coach player"`
}

// TeamResponse represents the response for team operations
type TeamResponse struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TeamMemberResponse is one roster entry of a team
type TeamMemberResponse struct {
	UserID   uint            `json:"user_id"`
	Email    string          `json:"email"`
	Role     models.TeamRole `json:"role"`
	Invited  bool            `json:"invited"`
	JoinedAt time.Time       `json:"joined_at"`
}

// TeamCoachResponse is one coaching link of a team
type TeamCoachResponse struct {
	CoachID  uint      `json:"coach_id"`
	Email    string    `json:"email"`
	JoinedAt time.Time `json:"joined_at"`
}

// TeamDetailResponse is a team with its full roster
type TeamDetailResponse struct {
	TeamResponse
	Members []TeamMemberResponse `json:"members"`
	Coaches []TeamCoachResponse  `json:"coaches"`
}

// Create creates a team and records the creating coach in the same
// transaction.
func (s *TeamService) Create(req *CreateTeamRequest, coachID uint) (*TeamResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	team := &models.Team{
		Name:        req.Name,
		Description: req.Description,
	}
	if err := s.teamRepo.CreateWithCoach(team, coachID); err != nil {
		return nil, fmt.Errorf("failed to create team: %w", err)
	}
	return toTeamResponse(team), nil
}

// GetAll returns all teams
func (s *TeamService) GetAll() ([]TeamResponse, error) {
	teams, err := s.teamRepo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list teams: %w", err)
	}
	responses := make([]TeamResponse, 0, len(teams))
	for i := range teams {
		responses = append(responses, *toTeamResponse(&teams[i]))
	}
	return responses, nil
}

// GetByID returns a team with its roster
func (s *TeamService) GetByID(id uint) (*TeamDetailResponse, error) {
	team, err := s.teamRepo.GetWithMembers(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to load team: %w", err)
	}

	resp := &TeamDetailResponse{
		TeamResponse: *toTeamResponse(team),
		Members:      make([]TeamMemberResponse, 0, len(team.TeamUsers)),
		Coaches:      make([]TeamCoachResponse, 0, len(team.TeamCoaches)),
	}
	for _, tu := range team.TeamUsers {
		resp.Members = append(resp.Members, TeamMemberResponse{
			UserID:   tu.UserID,
			Email:    tu.User.Email,
			Role:     tu.Role,
			Invited:  tu.User.PendingSetup(),
			JoinedAt: tu.JoinedAt,
		})
	}
	for _, tc := range team.TeamCoaches {
		resp.Coaches = append(resp.Coaches, TeamCoachResponse{
			CoachID:  tc.CoachID,
			Email:    tc.Coach.Email,
			JoinedAt: tc.JoinedAt,
		})
	}
	return resp, nil
}

// Update updates a team's name and description
func (s *TeamService) Update(id uint, req *UpdateTeamRequest) (*TeamResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	team, err := s.teamRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to load team: %w", err)
	}

	if req.Name != nil {
		team.Name = *req.Name
	}
	if req.Description != nil {
		team.Description = *req.Description
	}
	if err := s.teamRepo.Update(team); err != nil {
		return nil, fmt.Errorf("failed to update team: %w", err)
	}
	return toTeamResponse(team), nil
}

// Delete deletes a team. Memberships, coaching links and challenges go
// with it; user accounts stay.
func (s *TeamService) Delete(id uint) error {
	if _, err := s.teamRepo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrTeamNotFound
		}
		return fmt.Errorf("failed to load team: %w", err)
	}
	if err := s.teamRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete team: %w", err)
	}
	return nil
}

// AddMember adds a user to a team by email. When the email is unknown a
// stub account is created with a 48-hour invitation token and the invite
// is emailed best-effort. The membership link is created immediately
// either way, so the roster reflects pending invitations.
func (s *TeamService) AddMember(teamID uint, req *AddMemberRequest, inviterID uint) (*TeamMemberResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	team, err := s.teamRepo.GetByID(teamID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to load team: %w", err)
	}

	role := req.Role
	if role == "" {
		role = models.TeamRolePlayer
	}

	user, err := s.userRepo.GetByEmail(req.Email)
	switch {
	case err == nil:
		user.Invited = true
		user.InvitedByID = &inviterID
		if err := s.userRepo.Update(user); err != nil {
			return nil, fmt.Errorf("failed to mark user invited: %w", err)
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		user, err = s.inviteNewUser(req.Email, team, inviterID)
		if err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	isMember, err := s.membershipRepo.Exists(teamID, user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to check membership: %w", err)
	}
	if isMember {
		return nil, &apperrors.AlreadyExistsError{Entity: "team membership"}
	}

	teamUser := &models.TeamUser{
		TeamID:   teamID,
		UserID:   user.ID,
		Role:     role,
		JoinedAt: time.Now().UTC(),
	}
	if err := s.membershipRepo.Add(teamUser); err != nil {
		return nil, fmt.Errorf("failed to add member: %w", err)
	}

	return &TeamMemberResponse{
		UserID:   user.ID,
		Email:    user.Email,
		Role:     role,
		Invited:  user.PendingSetup(),
		JoinedAt: teamUser.JoinedAt,
	}, nil
}

// RemoveMember removes a user from a team's roster
func (s *TeamService) RemoveMember(teamID, userID uint) error {
	if err := s.membershipRepo.Remove(teamID, userID); err != nil {
		if apperrors.IsNotFound(err) {
			return err
		}
		return fmt.Errorf("failed to remove member: %w", err)
	}
	return nil
}

func (s *TeamService) inviteNewUser(email string, team *models.Team, inviterID uint) (*models.User, error) {
	token, err := auth.NewSecureToken()
	if err != nil {
		return nil, fmt.Errorf("failed to generate invitation token: %w", err)
	}
	expires := auth.TokenExpiry(auth.InvitationTTL)

	user := &models.User{
		Email:        email,
		Role:         models.UserRolePlayer,
		Invited:      true,
		InvitedByID:  &inviterID,
		Token:        &token,
		TokenExpires: &expires,
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, fmt.Errorf("failed to create invited user: %w", err)
	}

	inviterName := ""
	if inviter, err := s.userRepo.GetByID(inviterID); err == nil {
		inviterName = inviter.Email
	}
	if err := s.mail.SendInvitation(email, token, team.Name, inviterName); err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"email":   email,
			"team_id": team.ID,
		}).Error("Failed to send invitation email")
	}
	return user, nil
}

func toTeamResponse(team *models.Team) *TeamResponse {
	return &TeamResponse{
		ID:          team.ID,
		Name:        team.Name,
		Description: team.Description,
		CreatedAt:   team.CreatedAt,
		UpdatedAt:   team.UpdatedAt,
	}
}
