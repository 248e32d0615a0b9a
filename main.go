// @title CyberWalk Backend API
// @version 1.0
// @description Backend server for the CyberWalk social engineering awareness game.

// @host localhost:8080
// @BasePath /api
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization

package main

import (
	"cyberwalk_backend/internal/app"
	"cyberwalk_backend/internal/config"
	"cyberwalk_backend/pkg/configwatcher"
	"cyberwalk_backend/pkg/logger"
	"flag"
	"log"
)

func main() {
	seed := flag.Bool("seed", false, "load sample content on startup even if config disables it")
	watchConfig := flag.Bool("watch-config", false, "reload config file on change")
	flag.Parse()

	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if *seed {
		cfg.Game.SeedContent = true
	}

	application := app.NewApp(cfg)
	defer logger.Log.Sync()

	if *watchConfig {
		go configwatcher.WatchConfig("configs/config.yaml", cfg, func(newCfg interface{}) {
			logger.Log.Info("Configuration reloaded")
		})
	}

	application.Run()
}
