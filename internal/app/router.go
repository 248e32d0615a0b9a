package app

import (
	"cyberwalk_backend/docs"
	"cyberwalk_backend/internal/config"
	"cyberwalk_backend/internal/middleware"
	"cyberwalk_backend/internal/model"
	"cyberwalk_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	// Rooms are claimed by session id, not by account, so gameplay stays
	// public. Authoring and uploads sit behind JWT.
	a.registerPublicRoutes(router, c)
	a.registerGameRoutes(router, c)
	a.registerStoryRoutes(router, c)
	a.registerEditorRoutes(router, c, cfg)
}

func (a *App) registerPublicRoutes(router *gin.Engine, c *controllers) {
	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)

		auth := public.Group("/auth")
		{
			auth.POST("/register", c.auth.Register)
			auth.POST("/login", c.auth.Login)
			auth.GET("/profile", middleware.AuthMiddleware(a.Config), c.auth.GetProfile)
		}
	}
}

func (a *App) registerGameRoutes(router *gin.Engine, c *controllers) {
	game := router.Group("/api/game")
	{
		game.POST("/rooms", c.room.CreateRoom)
		game.GET("/rooms/:roomCode", c.room.GetRoom)
		game.POST("/rooms/:roomCode/join", c.room.JoinRoom)

		game.GET("/rooms/:roomCode/state", c.gameplay.GetState)
		game.POST("/rooms/:roomCode/start", c.gameplay.StartGame)
		game.POST("/rooms/:roomCode/select-level", c.gameplay.SelectLevel)
		game.POST("/rooms/:roomCode/select-profile", c.gameplay.SelectProfile)
		game.POST("/rooms/:roomCode/select-attack-scenario", c.gameplay.SelectScenario)
		game.POST("/rooms/:roomCode/select-attack-option", c.gameplay.SelectOption)
		game.POST("/rooms/:roomCode/defender-choice", c.gameplay.MakeChoice)
		game.POST("/rooms/:roomCode/next-round", c.gameplay.NextRound)

		game.GET("/levels", c.content.GetLevels)
		game.GET("/levels/:levelId/defender-profiles", c.content.GetProfiles)
		game.GET("/levels/:levelId/attack-scenarios", c.content.GetScenarios)
		game.GET("/attack-scenarios/:scenarioId/options", c.content.GetOptions)
		game.GET("/attack-options/:optionId/choices", c.content.GetChoices)
	}
}

func (a *App) registerStoryRoutes(router *gin.Engine, c *controllers) {
	story := router.Group("/api/story")
	{
		story.POST("/sessions", c.story.StartSession)
		story.GET("/sessions/:sessionId", c.story.GetSession)
		story.POST("/sessions/:sessionId/choice", c.story.MakeChoice)
		story.POST("/sessions/:sessionId/complete", c.story.CompleteSession)

		story.GET("/scenes", c.story.ListScenes)
		story.GET("/scenes/:videoId", c.story.GetScene)
	}
}

func (a *App) registerEditorRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	editor := router.Group("/api/editor")
	editor.Use(middleware.AuthMiddleware(cfg), middleware.RoleMiddleware(model.Editor))
	{
		editor.GET("/levels", c.editor.ListLevels)
		editor.POST("/levels", c.editor.CreateLevel)
		editor.GET("/levels/:id", c.editor.GetLevel)
		editor.PUT("/levels/:id", c.editor.UpdateLevel)
		editor.DELETE("/levels/:id", c.editor.DeleteLevel)

		editor.POST("/levels/:id/defender-profiles", c.editor.CreateProfile)
		editor.PUT("/defender-profiles/:id", c.editor.UpdateProfile)
		editor.DELETE("/defender-profiles/:id", c.editor.DeleteProfile)

		editor.POST("/levels/:id/attack-scenarios", c.editor.CreateScenario)
		editor.PUT("/attack-scenarios/:id", c.editor.UpdateScenario)
		editor.DELETE("/attack-scenarios/:id", c.editor.DeleteScenario)

		editor.POST("/attack-scenarios/:id/options", c.editor.CreateOption)
		editor.PUT("/attack-options/:id", c.editor.UpdateOption)
		editor.DELETE("/attack-options/:id", c.editor.DeleteOption)

		editor.POST("/attack-options/:id/choices", c.editor.CreateChoice)
		editor.PUT("/defender-choices/:id", c.editor.UpdateChoice)
		editor.DELETE("/defender-choices/:id", c.editor.DeleteChoice)

		editor.POST("/scenes/:videoId/video", c.media.UploadSceneVideo)
		editor.POST("/avatars", c.media.UploadAvatar)
	}
}
