package service

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// AuthServiceInterface defines the interface for auth service
type AuthServiceInterface interface {
	Register(req *RegisterRequest) (*AuthResponse, error)
	Login(req *LoginRequest) (*AuthResponse, error)
	SetupFirstAdmin(req *CreateAdminRequest) (*AuthResponse, error)
	CreateAdmin(req *CreateAdminRequest) (*UserResponse, error)
	ForgotPassword(req *ForgotPasswordRequest) error
	SetPassword(req *SetPasswordRequest) (*AuthResponse, error)
	VerifyEmail(token string) (*UserResponse, error)
	Me(userID uint) (*UserResponse, error)
	DevLogin() (*AuthResponse, error)
}

// TeamServiceInterface defines the interface for team service
type TeamServiceInterface interface {
	Create(req *CreateTeamRequest, coachID uint) (*TeamResponse, error)
	GetAll() ([]TeamResponse, error)
	GetByID(id uint) (*TeamDetailResponse, error)
	Update(id uint, req *UpdateTeamRequest) (*TeamResponse, error)
	Delete(id uint) error
	AddMember(teamID uint, req *AddMemberRequest, inviterID uint) (*TeamMemberResponse, error)
	RemoveMember(teamID, userID uint) error
}

// ChallengeServiceInterface defines the interface for challenge service
type ChallengeServiceInterface interface {
	Create(req *CreateChallengeRequest, creatorID uint) (*ChallengeResponse, error)
	GetByTeam(teamID uint) ([]ChallengeResponse, error)
	GetByID(id, viewerID uint) (*ChallengeResponse, error)
	Update(id uint, req *UpdateChallengeRequest, userID uint) (*ChallengeResponse, error)
	Delete(id, userID uint) error
	LogCompletion(id, userID uint, req *LogCompletionRequest) (*CompletionResponse, error)
	GetMine(userID uint) ([]ChallengeResponse, error)
}

// GoalServiceInterface defines the interface for goal service
type GoalServiceInterface interface {
	CreateTeamGoal(req *CreateTeamGoalRequest, userID uint) (*TeamGoalResponse, error)
	GetTeamGoals(teamID, userID uint) ([]TeamGoalResponse, error)
	GetTeamGoal(id, userID uint) (*TeamGoalResponse, error)
	UpdateTeamGoal(id uint, req *UpdateGoalRequest, userID uint) (*TeamGoalResponse, error)
	DeleteTeamGoal(id, userID uint) error
	CreateUserGoal(req *CreateUserGoalRequest, userID uint) (*UserGoalResponse, error)
	GetUserGoals(userID uint) ([]UserGoalResponse, error)
	GetUserGoal(id, userID uint) (*UserGoalResponse, error)
	UpdateUserGoal(id uint, req *UpdateGoalRequest, userID uint) (*UserGoalResponse, error)
	DeleteUserGoal(id, userID uint) error
}

// OffSeasonServiceInterface defines the interface for off-season service
type OffSeasonServiceInterface interface {
	Create(req *CreateOffSeasonRequest, userID uint) (*OffSeasonResponse, error)
	GetByTeam(teamID uint) ([]OffSeasonResponse, error)
	GetByID(id uint) (*OffSeasonResponse, error)
	Update(id uint, req *UpdateOffSeasonRequest) (*OffSeasonResponse, error)
	Delete(id uint) error
}
