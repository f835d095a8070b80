package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/htranq/quizforge/config"
	"github.com/htranq/quizforge/database"
	_ "github.com/htranq/quizforge/docs" // Swagger docs - auto-generated
	"github.com/htranq/quizforge/internal/controller"
	"github.com/htranq/quizforge/internal/logger"
	"github.com/htranq/quizforge/internal/middleware"
	"github.com/htranq/quizforge/internal/model"
	"github.com/htranq/quizforge/internal/repository"
	"github.com/htranq/quizforge/internal/service"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// @title QuizForge API
// @version 1.0
// @description Quiz management backend with AI quiz generation and per-user dashboard statistics.
// @contact.name API Support
// @contact.email support@example.com
// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html
// @host localhost:8080
// @BasePath /api
// @schemes http https
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the access token.
func main() {
	logger.Init()

	app := fx.New(
		// Core application components
		fx.Provide(
			config.NewConfig,
			database.NewDatabase,
			NewGinEngine,
		),

		// Repositories layer
		fx.Provide(
			repository.NewQuizRepository,
			repository.NewQuestionRepository,
			repository.NewChoiceRepository,
			repository.NewAttemptRepository,
			repository.NewUserAnswerRepository,
			repository.NewUserRepository,
		),

		// Services layer
		fx.Provide(
			service.NewQuizService,
			service.NewQuestionService,
			service.NewChoiceService,
			service.NewSubmissionService,
			service.NewStatsService,
			service.NewAuthService,
			service.NewGeminiClient,
			service.NewFencedJSONRepairer,
			// The generator persists through the same code path as manual creation.
			func(client service.GeminiClient, repairer service.ResponseRepairer, quizService service.QuizService) service.GeneratorService {
				return service.NewGeneratorService(client, repairer, quizService)
			},
		),

		// API controllers layer
		fx.Provide(
			controller.NewQuizController,
			controller.NewQuestionController,
			controller.NewChoiceController,
			controller.NewSubmissionController,
			controller.NewGeneratorController,
			controller.NewDashboardController,
			controller.NewAuthController,
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
	gin.SetMode(gin.ReleaseMode)

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
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// URL: http://localhost:PORT/swagger/index.html
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// RegisterRoutesAndStartServer configures API routes and manages server lifecycle.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	authService service.AuthService,
	quizCtrl *controller.QuizController,
	questionCtrl *controller.QuestionController,
	choiceCtrl *controller.ChoiceController,
	submissionCtrl *controller.SubmissionController,
	generatorCtrl *controller.GeneratorController,
	dashboardCtrl *controller.DashboardController,
	authCtrl *controller.AuthController,
) {
	api := router.Group("/api")
	auth := middleware.RequireAuth(authService)

	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", authCtrl.Register)
		authGroup.POST("/login", authCtrl.Login)
		authGroup.GET("/profile", auth, authCtrl.Profile)
	}

	quizzes := api.Group("/quizzes")
	{
		quizzes.GET("", quizCtrl.ListQuizzes)
		quizzes.POST("", auth, quizCtrl.CreateQuiz)
		quizzes.GET("/:id", quizCtrl.GetQuiz)
		quizzes.PUT("/:id", auth, quizCtrl.UpdateQuiz)
		quizzes.DELETE("/:id", auth, quizCtrl.DeleteQuiz)

		quizzes.GET("/:id/questions", questionCtrl.ListQuestions)
		quizzes.POST("/:id/questions", auth, questionCtrl.CreateQuestion)

		// :id is a question id here; the path shape is kept flat under /quizzes.
		quizzes.GET("/:id/choices", choiceCtrl.ListChoices)
		quizzes.POST("/:id/choices", auth, choiceCtrl.CreateChoice)

		quizzes.POST("/:id/submit", auth, submissionCtrl.SubmitQuiz)

		quizzes.POST("/generate-quiz", auth, generatorCtrl.GenerateQuiz)
		quizzes.GET("/dashboard/stats", auth, dashboardCtrl.DashboardStats)
	}

	questions := api.Group("/questions")
	{
		questions.GET("/:id", questionCtrl.GetQuestion)
		questions.PUT("/:id", auth, questionCtrl.UpdateQuestion)
		questions.DELETE("/:id", auth, questionCtrl.DeleteQuestion)
	}

	choices := api.Group("/choices")
	{
		choices.GET("/:id", choiceCtrl.GetChoice)
		choices.PUT("/:id", auth, choiceCtrl.UpdateChoice)
		choices.DELETE("/:id", auth, choiceCtrl.DeleteChoice)
	}

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("QuizForge API server starting on port %s", cfg.Server.Port)
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
		&model.User{},
		&model.UserProfile{},
		&model.Quiz{},
		&model.Question{},
		&model.Choice{},
		&model.QuizAttempt{},
		&model.UserAnswer{},
	)
	if err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}
	log.Info().Msg("Database migration completed successfully.")
	return nil
}
