package app

import (
	"context"
	"cyberwalk_backend/internal/config"
	"cyberwalk_backend/internal/controller"
	"cyberwalk_backend/internal/game"
	"cyberwalk_backend/internal/repository"
	"cyberwalk_backend/internal/service"
	"cyberwalk_backend/pkg/database"
	"cyberwalk_backend/pkg/logger"
	"cyberwalk_backend/pkg/monitoring"
	"cyberwalk_backend/pkg/security"
	"cyberwalk_backend/pkg/tracing"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

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
	user    *repository.UserRepository
	content *repository.ContentRepository
	room    *repository.RoomRepository
	story   *repository.StoryRepository
	session *repository.SessionRepository
}

type services struct {
	auth     *service.AuthService
	storage  *service.StorageService
	room     *service.RoomService
	gameplay *service.GamePlayService
	content  *service.ContentService
	editor   *service.EditorService
	story    *service.StoryService
	media    *service.MediaService
}

type controllers struct {
	auth     *controller.AuthController
	room     *controller.RoomController
	gameplay *controller.GamePlayController
	content  *controller.ContentController
	editor   *controller.EditorController
	story    *controller.StoryController
	media    *controller.MediaController
	health   *controller.HealthController
}

func (a *App) RegisterConfigCallback(callback func(*config.Config)) {
	a.configCallbacks = append(a.configCallbacks, callback)
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		user:    repository.NewUserRepository(db),
		content: repository.NewContentRepository(db),
		room:    repository.NewRoomRepository(db),
		story:   repository.NewStoryRepository(db),
		session: repository.NewSessionRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config, db *gorm.DB, rdb *redis.Client) *services {
	s := &services{}

	engine := game.NewEngine(repos.content)

	s.storage = service.NewStorageService(cfg)
	s.auth = service.NewAuthService(repos.user, cfg)
	s.room = service.NewRoomService(repos.room, engine, db)
	s.gameplay = service.NewGamePlayService(engine, repos.room, repos.content, db, rdb)
	s.content = service.NewContentService(repos.content)
	s.editor = service.NewEditorService(repos.content)
	s.story = service.NewStoryService(repos.story, repos.session)
	s.media = service.NewMediaService(s.storage, repos.story)

	return s
}

func (a *App) initControllers(s *services, db *gorm.DB) *controllers {
	return &controllers{
		auth:     controller.NewAuthController(s.auth),
		room:     controller.NewRoomController(s.room),
		gameplay: controller.NewGamePlayController(s.gameplay),
		content:  controller.NewContentController(s.content),
		editor:   controller.NewEditorController(s.editor),
		story:    controller.NewStoryController(s.story),
		media:    controller.NewMediaController(s.media),
		health:   controller.NewHealthController(db),
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

	if cfg.Game.SeedContent {
		if err := database.SeedGameContent(db); err != nil {
			logger.Log.Fatal("Failed to seed game content", zap.Error(err))
		}
	}

	app := &App{
		Config: cfg,
		DB:     db,
		Redis:  rdb,
	}

	repos := app.initRepositories(db)
	services := app.initServices(repos, cfg, db, rdb)
	controllers := app.initControllers(services, db)

	monitoring.Init()

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		tp, err := tracing.InitTracer("cyberwalk", cfg.Tracing.CollectorEndpoint)
		if err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
		defer func() {
			if err := tp.Shutdown(context.Background()); err != nil {
				logger.Log.Error("Failed to shutdown tracer provider", zap.Error(err))
			}
		}()
	}

	app.registerRoutes(router, controllers, cfg)

	if cfg.Storage.Type == "local" {
		router.Static("/video", cfg.Storage.LocalPath)
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
