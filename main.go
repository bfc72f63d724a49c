// main.go
package main

import (
	"log"

	"vetrox-backend/cmd"
	"vetrox-backend/internal/data/repository"
	"vetrox-backend/internal/usecase"
	"vetrox-backend/internal/wire"
	"vetrox-backend/pkg/database"
	"vetrox-backend/pkg/notification"
	"vetrox-backend/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	// Load config
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.Bool("debug", config.App.Debug),
	)

	// Connect to database
	db, err := database.InitDB(config.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	logger.Info("Database connected successfully")

	// Initialize repositories and the OTP registry
	repos := repository.NewRepository(db, logger)

	// Notification transports (SMTP + Twilio)
	sender, err := notification.NewNotifier(config.Email, config.SMS, logger)
	if err != nil {
		logger.Fatal("Failed to init notifier", zap.Error(err))
	}

	// Services and routes
	service := usecase.NewService(repos, sender, config, logger)
	app := wire.Wiring(service, config, logger)

	// Start server
	logger.Info("Starting HTTP server", zap.String("port", config.App.Port))

	cmd.APIServer(app.Router, config.App.Port)
}
