package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/ucilnica/quiz-api/config"
	"github.com/ucilnica/quiz-api/database"
	_ "github.com/ucilnica/quiz-api/docs" // Swagger docs - auto-generated
	adminctrl "github.com/ucilnica/quiz-api/internal/controller/admin"
	userctrl "github.com/ucilnica/quiz-api/internal/controller/user"
	"github.com/ucilnica/quiz-api/internal/locale"
	"github.com/ucilnica/quiz-api/internal/logger"
	"github.com/ucilnica/quiz-api/internal/model"
	"github.com/ucilnica/quiz-api/internal/repository"
	"github.com/ucilnica/quiz-api/internal/service"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// @title Quiz Authoring & Grading API
// @version 1.0
// @description Multilingual quiz authoring, delivery and grading service.
// @host localhost:8080
// @BasePath /api/v1
// @schemes http https
func main() {
	logger.Init()

	app := fx.New(
		fx.Provide(
			config.NewConfig,
			database.NewDatabase,
			NewGinEngine,
		),

		fx.Provide(
			repository.NewQuizRepository,
			repository.NewSubmissionRepository,
		),

		fx.Provide(
			service.NewAuthoringService,
			service.NewQuizService,
			service.NewSubmissionService,
		),

		fx.Provide(
			adminctrl.NewAdminQuizController,
			userctrl.NewUserQuizController,
		),

		fx.Invoke(RegisterRoutesAndStartServer),
		fx.Invoke(AutoMigrateDB),
	)

	if err := app.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}

	<-app.Done()
	log.Info().Msg("Application shutting down gracefully...")
}

func NewGinEngine() *gin.Engine {
	r := gin.New()

	r.Use(gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		log.Info().
			Str("client_ip", param.ClientIP).
			Str("method", param.Method).
			Str("path", param.Path).
			Int("status_code", param.StatusCode).
			Dur("latency", param.Latency).
			Str("user_agent", param.Request.UserAgent()).
			Str("error_message", param.ErrorMessage).
			Msg("gin_request")
		return ""
	}))
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Accept-Language", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// RegisterRoutesAndStartServer configures API routes and manages server lifecycle.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	adminQuizCtrl *adminctrl.AdminQuizController,
	userQuizCtrl *userctrl.UserQuizController,
) {
	adminAPIGroup := router.Group("/api/v1/admin")
	{
		quizzesAdminGroup := adminAPIGroup.Group("/quizzes")
		quizzesAdminGroup.POST("", adminQuizCtrl.CreateQuiz)
		quizzesAdminGroup.GET("/:quiz_id", adminQuizCtrl.GetQuiz)
		quizzesAdminGroup.PUT("/:quiz_id", adminQuizCtrl.UpdateQuiz)
		quizzesAdminGroup.DELETE("/:quiz_id", adminQuizCtrl.DeleteQuiz)
	}

	userAPIGroup := router.Group("/api/v1")
	userAPIGroup.Use(locale.Middleware())
	{
		userAPIGroup.GET("/quizzes", userQuizCtrl.ListQuizzes)
		userAPIGroup.GET("/quizzes/:quiz_id", userQuizCtrl.GetQuiz)
		userAPIGroup.POST("/quizzes/:quiz_id/submissions", userQuizCtrl.SubmitQuiz)
		userAPIGroup.GET("/quizzes/:quiz_id/submissions", userQuizCtrl.ListSubmissions)
		userAPIGroup.GET("/submissions/:submission_id", userQuizCtrl.GetSubmission)
	}

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("Quiz API server starting on port %s", cfg.Server.Port)
			log.Info().Msgf("Swagger UI available at http://localhost:%s/swagger/index.html", cfg.Server.Port)
			go func() {
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal().Err(err).Msg("Server ListenAndServe failed")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Server shutting down...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		},
	})
}

func AutoMigrateDB(db *gorm.DB) error {
	log.Info().Msg("Running database migrations...")
	err := db.AutoMigrate(
		&model.Quiz{},
		&model.Question{},
		&model.Option{},
		&model.Submission{},
	)
	if err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}
	log.Info().Msg("Database migration completed successfully.")
	return nil
}
