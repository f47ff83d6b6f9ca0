package initialize

import (
	"fmt"
	"net/http"
	"time"

	"gemini-portal/app/controllers"
	"gemini-portal/app/db"
	"gemini-portal/app/gemini"
	"gemini-portal/app/middleware"
	"gemini-portal/app/models"
	"gemini-portal/app/repo"
	"gemini-portal/app/services"
	"gemini-portal/app/session"
	"gemini-portal/app/views"
	"gemini-portal/config"
	"gemini-portal/router"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

const sessionTTL = 7 * 24 * time.Hour

type App struct {
	Cfg      *config.Config
	DB       *gorm.DB
	Router   http.Handler
	Sessions *session.Manager
	Users    *services.UserService
}

// Build constructs the whole application from configuration: database,
// repositories, services, controllers, and the routed handler.
func Build(cfg *config.Config) (*App, error) {
	gdb, err := db.Connect(cfg.SQLitePath)
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}

	// Schema creation is best-effort: a failure here is logged and
	// startup proceeds, matching the eager-init behavior.
	if err := gdb.AutoMigrate(&models.User{}); err != nil {
		log.Warn().Err(err).Msg("database init warning")
	}

	userRepo := repo.NewUserRepository(gdb)
	userSvc := services.NewUserService(userRepo)
	sessions := session.NewManager([]byte(cfg.SecretKey), "gemini-portal", sessionTTL)

	renderer, err := views.New()
	if err != nil {
		return nil, fmt.Errorf("load templates: %w", err)
	}

	gen := gemini.NewClient(cfg.GoogleAPIKey, cfg.GeminiModel)

	pagesCtrl := controllers.NewPagesController(sessions, renderer)
	authCtrl := controllers.NewAuthController(userSvc, sessions, renderer)
	askCtrl := controllers.NewAskController(gen, sessions, renderer)
	usersCtrl := controllers.NewUsersController(userSvc, sessions, renderer)
	mw := &middleware.Auth{Sessions: sessions}

	h := router.New(pagesCtrl, authCtrl, askCtrl, usersCtrl, mw)

	return &App{Cfg: cfg, DB: gdb, Router: h, Sessions: sessions, Users: userSvc}, nil
}
