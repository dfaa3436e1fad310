package routes

import (
	"teamquest-backend/internal/api/handlers"
	"teamquest-backend/internal/api/middleware"
	"teamquest-backend/internal/auth"
	"teamquest-backend/internal/config"
	"teamquest-backend/internal/database/models"
	"teamquest-backend/internal/mailer"
	"teamquest-backend/internal/repository"
	"teamquest-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) (*gin.Engine, error) {
	router := gin.New()

	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))

	validate := validator.New()

	issuer, err := auth.NewTokenIssuer(cfg.JWTSecret, cfg.JWTIssuer, cfg.JWTAudience)
	if err != nil {
		return nil, err
	}
	authMiddleware := auth.NewMiddleware(issuer)
	mail := mailer.New(cfg)

	// Repositories
	userRepo := repository.NewUserRepository(db)
	teamRepo := repository.NewTeamRepository(db)
	membershipRepo := repository.NewMembershipRepository(db)
	challengeRepo := repository.NewChallengeRepository(db)
	teamGoalRepo := repository.NewTeamGoalRepository(db)
	userGoalRepo := repository.NewUserGoalRepository(db)
	offSeasonRepo := repository.NewOffSeasonRepository(db)

	// Services
	authService := service.NewAuthService(userRepo, issuer, mail, validate)
	teamService := service.NewTeamService(teamRepo, membershipRepo, userRepo, mail, validate)
	challengeService := service.NewChallengeService(challengeRepo, teamRepo, validate)
	goalService := service.NewGoalService(teamGoalRepo, userGoalRepo, membershipRepo, teamRepo, validate)
	offSeasonService := service.NewOffSeasonService(offSeasonRepo, teamRepo, validate)

	// Handlers
	healthHandler := handlers.NewHealthHandler(db)
	authHandler := handlers.NewAuthHandler(authService)
	teamHandler := handlers.NewTeamHandler(teamService)
	challengeHandler := handlers.NewChallengeHandler(challengeService)
	goalHandler := handlers.NewGoalHandler(goalService)
	offSeasonHandler := handlers.NewOffSeasonHandler(offSeasonService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	coachOrAdmin := authMiddleware.RequireRole(models.UserRoleCoach, models.UserRoleAdmin)

	api := router.Group("/api")
	{
		// Public auth routes
		authRoutes := api.Group("/auth")
		{
			authRoutes.POST("/register", authHandler.Register)
			authRoutes.POST("/login", authHandler.Login)
			authRoutes.POST("/setup-admin", authHandler.SetupFirstAdmin)
			authRoutes.POST("/forgot-password", authHandler.ForgotPassword)
			authRoutes.POST("/set-password", authHandler.SetPassword)
			authRoutes.POST("/verify-email", authHandler.VerifyEmail)

			// Long-lived token bypass; never present in production
			if !cfg.IsProduction() {
				authRoutes.POST("/dev-login", authHandler.DevLogin)
			}
		}

		// Everything below requires a valid session token
		protected := api.Group("")
		protected.Use(authMiddleware.RequireAuth())
		{
			protected.GET("/auth/me", authHandler.Me)
			protected.POST("/auth/admin", authMiddleware.RequireRole(models.UserRoleAdmin), authHandler.CreateAdmin)

			teams := protected.Group("/teams")
			{
				teams.GET("", teamHandler.GetAllTeams)
				teams.POST("", coachOrAdmin, teamHandler.CreateTeam)
				teams.GET("/:id", teamHandler.GetTeam)
				teams.PUT("/:id", coachOrAdmin, teamHandler.UpdateTeam)
				teams.DELETE("/:id", coachOrAdmin, teamHandler.DeleteTeam)
				teams.POST("/:id/members", coachOrAdmin, teamHandler.AddMember)
				teams.DELETE("/:id/members/:userId", coachOrAdmin, teamHandler.RemoveMember)
				teams.GET("/:id/challenges", challengeHandler.GetTeamChallenges)
				teams.GET("/:id/goals", goalHandler.GetTeamGoals)
				teams.GET("/:id/off-seasons", offSeasonHandler.GetTeamOffSeasons)
			}

			challenges := protected.Group("/challenges")
			{
				challenges.POST("", coachOrAdmin, challengeHandler.CreateChallenge)
				challenges.GET("/mine", coachOrAdmin, challengeHandler.GetMyChallenges)
				challenges.GET("/:id", challengeHandler.GetChallenge)
				challenges.PUT("/:id", challengeHandler.UpdateChallenge)
				challenges.DELETE("/:id", challengeHandler.DeleteChallenge)
				challenges.POST("/:id/complete", challengeHandler.LogCompletion)
			}

			goals := protected.Group("/goals")
			{
				goals.POST("/team", goalHandler.CreateTeamGoal)
				goals.GET("/team/:id", goalHandler.GetTeamGoal)
				goals.PUT("/team/:id", goalHandler.UpdateTeamGoal)
				goals.DELETE("/team/:id", goalHandler.DeleteTeamGoal)
				goals.POST("/my", goalHandler.CreateUserGoal)
				goals.GET("/my", goalHandler.GetUserGoals)
				goals.GET("/my/:id", goalHandler.GetUserGoal)
				goals.PUT("/my/:id", goalHandler.UpdateUserGoal)
				goals.DELETE("/my/:id", goalHandler.DeleteUserGoal)
			}

			offSeasons := protected.Group("/off-seasons")
			{
				offSeasons.POST("", coachOrAdmin, offSeasonHandler.CreateOffSeason)
				offSeasons.GET("/:id", offSeasonHandler.GetOffSeason)
				offSeasons.PUT("/:id", coachOrAdmin, offSeasonHandler.UpdateOffSeason)
				offSeasons.DELETE("/:id", coachOrAdmin, offSeasonHandler.DeleteOffSeason)
			}
		}
	}

	return router, nil
}
