package service_test

import (
	"testing"

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

type goalServiceMocks struct {
	teamGoalRepo   *mocks.MockTeamGoalRepositoryInterface
	userGoalRepo   *mocks.MockUserGoalRepositoryInterface
	membershipRepo *mocks.MockMembershipRepositoryInterface
	teamRepo       *mocks.MockTeamRepositoryInterface
}

func newGoalService(t *testing.T) (*service.GoalService, goalServiceMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := goalServiceMocks{
		teamGoalRepo:   mocks.NewMockTeamGoalRepositoryInterface(ctrl),
		userGoalRepo:   mocks.NewMockUserGoalRepositoryInterface(ctrl),
		membershipRepo: mocks.NewMockMembershipRepositoryInterface(ctrl),
		teamRepo:       mocks.NewMockTeamRepositoryInterface(ctrl),
	}
	svc := service.NewGoalService(m.teamGoalRepo, m.userGoalRepo, m.membershipRepo, m.teamRepo, validator.New())
	return svc, m
}

func TestGoalService_CreateTeamGoal(t *testing.T) {
	svc, m := newGoalService(t)

	m.teamRepo.EXPECT().GetByID(uint(10)).Return(&models.Team{ID: 10}, nil)
	m.membershipRepo.EXPECT().Exists(uint(10), uint(4)).Return(true, nil)
	m.teamGoalRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(goal *models.TeamGoal) error {
		assert.Equal(t, uint(4), goal.CreatedByID)
		assert.Equal(t, models.GoalRecurrenceNone, goal.Recurrence)
		goal.ID = 40
		return nil
	})

	resp, err := svc.CreateTeamGoal(&service.CreateTeamGoalRequest{Title: "Win the season", TeamID: 10}, 4)
	require.NoError(t, err)
	assert.Equal(t, uint(40), resp.ID)
	assert.Equal(t, models.GoalRecurrenceNone, resp.Recurrence)
}

func TestGoalService_CreateTeamGoal_NotMember(t *testing.T) {
	svc, m := newGoalService(t)

	m.teamRepo.EXPECT().GetByID(uint(10)).Return(&models.Team{ID: 10}, nil)
	m.membershipRepo.EXPECT().Exists(uint(10), uint(7)).Return(false, nil)

	_, err := svc.CreateTeamGoal(&service.CreateTeamGoalRequest{Title: "Win the season", TeamID: 10}, 7)
	assert.ErrorIs(t, err, apperrors.ErrNotTeamMember)
}

func TestGoalService_GetTeamGoals_NotMember(t *testing.T) {
	svc, m := newGoalService(t)

	m.teamRepo.EXPECT().GetByID(uint(10)).Return(&models.Team{ID: 10}, nil)
	m.membershipRepo.EXPECT().Exists(uint(10), uint(7)).Return(false, nil)

	_, err := svc.GetTeamGoals(10, 7)
	assert.ErrorIs(t, err, apperrors.ErrNotTeamMember)
}

func TestGoalService_GetTeamGoal_OutsiderIsMasked(t *testing.T) {
	svc, m := newGoalService(t)

	m.teamGoalRepo.EXPECT().GetByID(uint(40)).Return(&models.TeamGoal{ID: 40, TeamID: 10, CreatedByID: 4}, nil)
	m.membershipRepo.EXPECT().Exists(uint(10), uint(7)).Return(false, nil)

	_, err := svc.GetTeamGoal(40, 7)
	assert.ErrorIs(t, err, apperrors.ErrTeamGoalNotFound)
}

func TestGoalService_UpdateTeamGoal_NotOwner(t *testing.T) {
	svc, m := newGoalService(t)

	m.teamGoalRepo.EXPECT().GetByID(uint(40)).Return(&models.TeamGoal{ID: 40, TeamID: 10, CreatedByID: 4}, nil)

	title := "New title"
	_, err := svc.UpdateTeamGoal(40, &service.UpdateGoalRequest{Title: &title}, 7)
	assert.ErrorIs(t, err, apperrors.ErrNotOwner)
}

func TestGoalService_UpdateTeamGoal(t *testing.T) {
	svc, m := newGoalService(t)

	m.teamGoalRepo.EXPECT().GetByID(uint(40)).Return(&models.TeamGoal{
		ID:          40,
		Title:       "Old title",
		Description: "keep me",
		TeamID:      10,
		CreatedByID: 4,
	}, nil)
	m.teamGoalRepo.EXPECT().Update(gomock.Any()).DoAndReturn(func(goal *models.TeamGoal) error {
		assert.Equal(t, "New title", goal.Title)
		assert.Equal(t, "keep me", goal.Description)
		return nil
	})

	title := "New title"
	resp, err := svc.UpdateTeamGoal(40, &service.UpdateGoalRequest{Title: &title}, 4)
	require.NoError(t, err)
	assert.Equal(t, "New title", resp.Title)
}

func TestGoalService_DeleteTeamGoal(t *testing.T) {
	svc, m := newGoalService(t)

	m.teamGoalRepo.EXPECT().GetByID(uint(40)).Return(&models.TeamGoal{ID: 40, CreatedByID: 4}, nil)
	m.teamGoalRepo.EXPECT().Delete(uint(40)).Return(nil)

	assert.NoError(t, svc.DeleteTeamGoal(40, 4))
}

func TestGoalService_CreateUserGoal(t *testing.T) {
	svc, m := newGoalService(t)

	m.userGoalRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(goal *models.UserGoal) error {
		assert.Equal(t, uint(4), goal.UserID)
		assert.Equal(t, uint(4), goal.CreatedByID)
		goal.ID = 50
		return nil
	})

	resp, err := svc.CreateUserGoal(&service.CreateUserGoalRequest{Title: "Run a marathon"}, 4)
	require.NoError(t, err)
	assert.Equal(t, uint(50), resp.ID)
	assert.Equal(t, uint(4), resp.UserID)
}

func TestGoalService_GetUserGoal_ForeignGoalIsMasked(t *testing.T) {
	svc, m := newGoalService(t)

	// The owner-scoped lookup treats foreign ids as missing rows.
	m.userGoalRepo.EXPECT().GetByIDForUser(uint(50), uint(7)).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.GetUserGoal(50, 7)
	assert.ErrorIs(t, err, apperrors.ErrUserGoalNotFound)
}

func TestGoalService_GetUserGoals(t *testing.T) {
	svc, m := newGoalService(t)

	m.userGoalRepo.EXPECT().GetByUserID(uint(4)).Return([]models.UserGoal{
		{ID: 50, UserID: 4, Title: "Run a marathon"},
	}, nil)

	resp, err := svc.GetUserGoals(4)
	require.NoError(t, err)
	require.Len(t, resp, 1)
	assert.Equal(t, "Run a marathon", resp[0].Title)
}

func TestGoalService_UpdateUserGoal(t *testing.T) {
	svc, m := newGoalService(t)

	m.userGoalRepo.EXPECT().GetByIDForUser(uint(50), uint(4)).Return(&models.UserGoal{
		ID:     50,
		UserID: 4,
		Title:  "Run a marathon",
	}, nil)
	m.userGoalRepo.EXPECT().Update(gomock.Any()).DoAndReturn(func(goal *models.UserGoal) error {
		assert.Equal(t, models.GoalRecurrenceWeekly, goal.Recurrence)
		return nil
	})

	recurrence := models.GoalRecurrenceWeekly
	resp, err := svc.UpdateUserGoal(50, &service.UpdateGoalRequest{Recurrence: &recurrence}, 4)
	require.NoError(t, err)
	assert.Equal(t, models.GoalRecurrenceWeekly, resp.Recurrence)
}

func TestGoalService_DeleteUserGoal(t *testing.T) {
	svc, m := newGoalService(t)

	m.userGoalRepo.EXPECT().GetByIDForUser(uint(50), uint(4)).Return(&models.UserGoal{ID: 50, UserID: 4}, nil)
	m.userGoalRepo.EXPECT().Delete(uint(50), uint(4)).Return(nil)

	assert.NoError(t, svc.DeleteUserGoal(50, 4))
}
