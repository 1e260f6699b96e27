package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bimsrama/Relasi4warna-main/internal/config"
	"github.com/bimsrama/Relasi4warna-main/internal/controller"
	"github.com/bimsrama/Relasi4warna-main/internal/repository"
	"github.com/bimsrama/Relasi4warna-main/internal/service"
	"github.com/bimsrama/Relasi4warna-main/pkg/database"
	"github.com/bimsrama/Relasi4warna-main/pkg/logger"
	"github.com/bimsrama/Relasi4warna-main/pkg/monitoring"
	"github.com/bimsrama/Relasi4warna-main/pkg/security"
	"github.com/bimsrama/Relasi4warna-main/pkg/tracing"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config          *config.Config
	Router          *gin.Engine
	DB              *gorm.DB
	Redis           *redis.Client
	configCallbacks []func(*config.Config)
}

type repositories struct {
	user     *repository.UserRepository
	question *repository.QuestionRepository
	quiz     *repository.QuizRepository
	payment  *repository.PaymentRepository
	pack     *repository.PackRepository
}

type services struct {
	email   *service.EmailService
	ai      *service.AIService
	storage *service.StorageService
	auth    *service.AuthService
	quiz    *service.QuizService
	payment *service.PaymentService
	report  *service.ReportService
	share   *service.ShareService
	couples *service.CouplesService
	team    *service.TeamService
}

type controllers struct {
	auth          *controller.AuthController
	quiz          *controller.QuizController
	compatibility *controller.CompatibilityController
	payment       *controller.PaymentController
	report        *controller.ReportController
	share         *controller.ShareController
	couples       *controller.CouplesController
	team          *controller.TeamController
	admin         *controller.AdminController
	health        *controller.HealthController
}

func (a *App) RegisterConfigCallback(callback func(*config.Config)) {
	a.configCallbacks = append(a.configCallbacks, callback)
}

// ApplyConfig swaps in a hot-reloaded configuration and notifies the
// registered callbacks. Server port and database settings still require a
// restart.
func (a *App) ApplyConfig(cfg *config.Config) {
	a.Config = cfg
	for _, callback := range a.configCallbacks {
		callback(cfg)
	}
	logger.Log.Info("Configuration reloaded")
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		user:     repository.NewUserRepository(db),
		question: repository.NewQuestionRepository(db),
		quiz:     repository.NewQuizRepository(db),
		payment:  repository.NewPaymentRepository(db),
		pack:     repository.NewPackRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config, rdb *redis.Client) *services {
	s := &services{}

	s.email = service.NewEmailService(cfg.Email, cfg.App.URL)
	s.ai = service.NewAIService(cfg.AI)
	s.storage = service.NewStorageService(cfg)

	s.auth = service.NewAuthService(repos.user, rdb, s.email, cfg)
	s.quiz = service.NewQuizService(repos.quiz, repos.question, rdb)
	s.payment = service.NewPaymentService(repos.payment, repos.quiz, repos.user, cfg.Payment)
	s.report = service.NewReportService(repos.quiz, s.ai)
	s.share = service.NewShareService(repos.quiz, s.storage)
	s.couples = service.NewCouplesService(repos.pack, repos.quiz, s.email, s.ai)
	s.team = service.NewTeamService(repos.pack, repos.quiz, s.email)

	return s
}

func (a *App) initControllers(s *services, repos *repositories, db *gorm.DB, rdb *redis.Client) *controllers {
	return &controllers{
		auth:          controller.NewAuthController(s.auth),
		quiz:          controller.NewQuizController(s.quiz),
		compatibility: controller.NewCompatibilityController(),
		payment:       controller.NewPaymentController(s.payment, s.auth),
		report:        controller.NewReportController(s.report),
		share:         controller.NewShareController(s.share),
		couples:       controller.NewCouplesController(s.couples, s.auth),
		team:          controller.NewTeamController(s.team, s.auth),
		admin:         controller.NewAdminController(repos.user, repos.quiz, repos.payment, repos.question, s.quiz),
		health:        controller.NewHealthController(db, rdb),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())

	maxRequests := cfg.RateLimit.MaxRequests
	if maxRequests <= 0 {
		maxRequests = 1000
	}
	window := time.Duration(cfg.RateLimit.WindowMinutes) * time.Minute
	if window <= 0 {
		window = time.Minute
	}
	router.Use(security.RateLimiter(maxRequests, window))

	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)
	defer logger.Log.Sync()

	logger.Log.Info("Logger initialized successfully")

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
		log.Fatalf("Failed to initialize database: %v", err)
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		logger.Log.Fatal("Failed to initialize redis", zap.Error(err))
		log.Fatalf("Failed to initialize redis: %v", err)
	}

	app := &App{
		Config: cfg,
		DB:     db,
		Redis:  rdb,
	}

	repos := app.initRepositories(db)
	services := app.initServices(repos, cfg, rdb)
	controllers := app.initControllers(services, repos, db, rdb)

	monitoring.Init()

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		if _, err := tracing.InitTracer("relasi4warna", cfg.Tracing.CollectorEndpoint); err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
	}

	app.registerRoutes(router, controllers, cfg)

	if cfg.Storage.Type == "local" {
		router.Static("/uploads", cfg.Storage.LocalPath)
	}

	return app
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	go func() {
		log.Printf("Server running on port %s", a.Config.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exiting")
}
