package service_test

import (
	"testing"
	"time"

	"teamquest-backend/internal/database/models"
	apperrors "teamquest-backend/internal/errors"
	"teamquest-backend/internal/mocks"
	"teamquest-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

func newChallengeService(t *testing.T) (*service.ChallengeService, *mocks.MockChallengeRepositoryInterface, *mocks.MockTeamRepositoryInterface) {
	t.Helper()
	ctrl := gomock.NewController(t)
	challengeRepo := mocks.NewMockChallengeRepositoryInterface(ctrl)
	teamRepo := mocks.NewMockTeamRepositoryInterface(ctrl)
	svc := service.NewChallengeService(challengeRepo, teamRepo, validator.New())
	return svc, challengeRepo, teamRepo
}

func TestChallengeService_Create(t *testing.T) {
	svc, challengeRepo, teamRepo := newChallengeService(t)

	teamRepo.EXPECT().GetByID(uint(10)).Return(&models.Team{ID: 10}, nil)
	challengeRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(c *models.Challenge) error {
		assert.Equal(t, uint(2), c.CreatedByID)
		assert.Equal(t, models.ChallengeTypeCardio, c.Type)
		c.ID = 20
		return nil
	})

	resp, err := svc.Create(&service.CreateChallengeRequest{
		Name:      "Morning run",
		Type:      models.ChallengeTypeCardio,
		Frequency: models.ChallengeFrequencyDaily,
		TeamID:    10,
	}, 2)
	require.NoError(t, err)
	assert.Equal(t, uint(20), resp.ID)
	assert.Zero(t, resp.CompletionCount)
}

func TestChallengeService_Create_TeamNotFound(t *testing.T) {
	svc, _, teamRepo := newChallengeService(t)

	teamRepo.EXPECT().GetByID(uint(99)).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.Create(&service.CreateChallengeRequest{
		Name:      "Morning run",
		Type:      models.ChallengeTypeCardio,
		Frequency: models.ChallengeFrequencyDaily,
		TeamID:    99,
	}, 2)
	assert.ErrorIs(t, err, apperrors.ErrTeamNotFound)
}

func TestChallengeService_Create_InvalidType(t *testing.T) {
	svc, _, _ := newChallengeService(t)

	_, err := svc.Create(&service.CreateChallengeRequest{
		Name:      "Morning run",
		Type:      "swimming",
		Frequency: models.ChallengeFrequencyDaily,
		TeamID:    10,
	}, 2)
	assert.True(t, apperrors.IsValidation(err))
}

func TestChallengeService_GetByID_Visibility(t *testing.T) {
	challenge := &models.Challenge{
		ID:          20,
		TeamID:      10,
		CreatedByID: 2,
		Team: models.Team{
			ID: 10,
			TeamUsers: []models.TeamUser{
				{TeamID: 10, UserID: 4},
			},
		},
	}

	tests := []struct {
		name     string
		viewerID uint
		wantErr  error
	}{
		{name: "team member", viewerID: 4},
		{name: "creator outside roster", viewerID: 2},
		{name: "outsider is masked", viewerID: 7, wantErr: apperrors.ErrChallengeNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, challengeRepo, _ := newChallengeService(t)
			challengeRepo.EXPECT().GetByID(uint(20)).Return(challenge, nil)

			_, err := svc.GetByID(20, tt.viewerID)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestChallengeService_GetByTeam(t *testing.T) {
	svc, challengeRepo, teamRepo := newChallengeService(t)

	teamRepo.EXPECT().GetByID(uint(10)).Return(&models.Team{ID: 10}, nil)
	challengeRepo.EXPECT().GetByTeamID(uint(10)).Return([]models.Challenge{
		{ID: 20, TeamID: 10, Completions: []models.ChallengeCompletion{{ID: 1}, {ID: 2}}},
	}, nil)

	resp, err := svc.GetByTeam(10)
	require.NoError(t, err)
	require.Len(t, resp, 1)
	assert.Equal(t, 2, resp[0].CompletionCount)
}

func TestChallengeService_Update_NotOwner(t *testing.T) {
	svc, challengeRepo, _ := newChallengeService(t)

	challengeRepo.EXPECT().GetByID(uint(20)).Return(&models.Challenge{ID: 20, CreatedByID: 2}, nil)

	name := "Evening run"
	_, err := svc.Update(20, &service.UpdateChallengeRequest{Name: &name}, 7)
	assert.ErrorIs(t, err, apperrors.ErrNotOwner)
}

func TestChallengeService_Update(t *testing.T) {
	svc, challengeRepo, _ := newChallengeService(t)

	challengeRepo.EXPECT().GetByID(uint(20)).Return(&models.Challenge{
		ID:          20,
		Name:        "Morning run",
		Frequency:   models.ChallengeFrequencyDaily,
		CreatedByID: 2,
	}, nil)
	challengeRepo.EXPECT().Update(gomock.Any()).DoAndReturn(func(c *models.Challenge) error {
		assert.Equal(t, "Evening run", c.Name)
		assert.Equal(t, models.ChallengeFrequencyDaily, c.Frequency)
		return nil
	})

	name := "Evening run"
	resp, err := svc.Update(20, &service.UpdateChallengeRequest{Name: &name}, 2)
	require.NoError(t, err)
	assert.Equal(t, "Evening run", resp.Name)
}

func TestChallengeService_Delete_NotOwner(t *testing.T) {
	svc, challengeRepo, _ := newChallengeService(t)

	challengeRepo.EXPECT().GetByID(uint(20)).Return(&models.Challenge{ID: 20, CreatedByID: 2}, nil)

	err := svc.Delete(20, 7)
	assert.ErrorIs(t, err, apperrors.ErrNotOwner)
}

func TestChallengeService_Delete(t *testing.T) {
	svc, challengeRepo, _ := newChallengeService(t)

	challengeRepo.EXPECT().GetByID(uint(20)).Return(&models.Challenge{ID: 20, CreatedByID: 2}, nil)
	challengeRepo.EXPECT().Delete(uint(20)).Return(nil)

	assert.NoError(t, svc.Delete(20, 2))
}

func TestChallengeService_LogCompletion(t *testing.T) {
	svc, challengeRepo, _ := newChallengeService(t)

	challengeRepo.EXPECT().GetByID(uint(20)).Return(&models.Challenge{ID: 20}, nil)
	challengeRepo.EXPECT().AddCompletion(gomock.Any()).DoAndReturn(func(c *models.ChallengeCompletion) error {
		assert.Equal(t, uint(20), c.ChallengeID)
		assert.Equal(t, uint(4), c.UserID)
		assert.WithinDuration(t, time.Now().UTC(), c.CompletedAt, time.Minute)
		c.ID = 30
		return nil
	})

	resp, err := svc.LogCompletion(20, 4, &service.LogCompletionRequest{Notes: "5km in the rain"})
	require.NoError(t, err)
	assert.Equal(t, uint(30), resp.ID)
	assert.Equal(t, "5km in the rain", resp.Notes)
}

func TestChallengeService_LogCompletion_Repeated(t *testing.T) {
	svc, challengeRepo, _ := newChallengeService(t)

	challengeRepo.EXPECT().GetByID(uint(20)).Return(&models.Challenge{ID: 20}, nil).Times(2)
	challengeRepo.EXPECT().AddCompletion(gomock.Any()).Return(nil).Times(2)

	_, err := svc.LogCompletion(20, 4, &service.LogCompletionRequest{})
	require.NoError(t, err)
	_, err = svc.LogCompletion(20, 4, &service.LogCompletionRequest{})
	require.NoError(t, err)
}

func TestChallengeService_GetMine(t *testing.T) {
	svc, challengeRepo, _ := newChallengeService(t)

	challengeRepo.EXPECT().GetByCreator(uint(2)).Return([]models.Challenge{
		{ID: 20, TeamID: 10, CreatedByID: 2},
		{ID: 21, TeamID: 11, CreatedByID: 2},
	}, nil)

	resp, err := svc.GetMine(2)
	require.NoError(t, err)
	assert.Len(t, resp, 2)
}
