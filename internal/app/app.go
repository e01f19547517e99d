package app

import (
	"time"

	"wisdomcircle/internal/config"
	"wisdomcircle/internal/db"
	"wisdomcircle/internal/handlers"
	"wisdomcircle/internal/logger"
	"wisdomcircle/internal/repository"
	"wisdomcircle/internal/routes"
	"wisdomcircle/internal/services"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

const defaultSessionTTL = 168 * time.Hour

func InitApp(cfg *config.Config) (*mux.Router, *db.Mongo, error) {
	conn, err := db.NewMongoConnection(cfg)
	if err != nil {
		return nil, nil, err
	}

	// Репозитории
	talkRepo := repository.NewTalkRepo(conn)
	articleRepo := repository.NewArticleRepo(conn)
	categoryRepo := repository.NewCategoryRepo(conn)
	videoRepo := repository.NewVideoRepo(conn)
	settingsRepo := repository.NewSettingsRepo(conn)
	announcementRepo := repository.NewAnnouncementRepo(conn)
	userRepo := repository.NewUserRepo(conn)

	// Сервисы
	talkService := services.NewTalkService(talkRepo)
	articleService := services.NewArticleService(articleRepo)
	catalogService := services.NewCatalogService(categoryRepo, videoRepo)
	siteService := services.NewSiteService(settingsRepo, announcementRepo)
	authService := services.NewAuthService(userRepo, cfg.AdminPassword)

	sessionTTL, err := time.ParseDuration(cfg.SessionTTL)
	if err != nil || sessionTTL <= 0 {
		logger.Log.Warn("Некорректный SESSION_TTL, используется значение по умолчанию",
			zap.String("session_ttl", cfg.SessionTTL))
		sessionTTL = defaultSessionTTL
	}

	// Хендлеры
	authHandler := handlers.NewAuthHandler(authService, cfg.JWTSecret, sessionTTL, cfg.Env == "prod")
	talkHandler := handlers.NewTalkHandler(talkService)
	articleHandler := handlers.NewArticleHandler(articleService)
	catalogHandler := handlers.NewCatalogHandler(catalogService)
	siteHandler := handlers.NewSiteHandler(siteService)

	// Маршруты
	router := mux.NewRouter()
	routes.InitRoutes(router, cfg.JWTSecret, authHandler, talkHandler, articleHandler, catalogHandler, siteHandler)

	return router, conn, nil
}
