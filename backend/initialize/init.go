package initialize

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"news-app/backend/app/controllers"
	"news-app/backend/app/db"
	"news-app/backend/app/jobs"
	jwtutil "news-app/backend/app/jwt"
	"news-app/backend/app/middleware"
	"news-app/backend/app/repo"
	"news-app/backend/app/services"
	"news-app/backend/app/tokenstore"
	"news-app/backend/config"
	"news-app/backend/global"
	"news-app/backend/router"

	"gorm.io/gorm"
)

type App struct {
	Cfg     config.Config
	DB      *gorm.DB
	Router  http.Handler
	Sweeper *jobs.ExpirySweeper
	Users   *services.UserService
	Auth    *services.AuthService
	News    *services.NewsService
}

func Build(configPath string) (*App, error) {
	// Load config
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	global.Config = *cfg
	if err := SetupLogger(cfg.Log.Level, cfg.Log.Path); err != nil {
		return nil, fmt.Errorf("setup logger: %w", err)
	}
	return BuildFromConfig(*cfg)
}

// BuildFromConfig wires the application from an already loaded config.
func BuildFromConfig(cfg config.Config) (*App, error) {
	// Connect DB
	gdb, err := db.Connect(db.Config{
		Driver:   cfg.DB.Driver,
		Host:     cfg.DB.Host,
		Port:     cfg.DB.Port,
		User:     cfg.DB.User,
		Password: cfg.DB.Pass,
		DBName:   cfg.DB.Name,
		Path:     cfg.DB.Path,
	})
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}
	global.Mdb = gdb

	// Migrate
	if err := db.Migrate(gdb); err != nil {
		return nil, err
	}

	// Token revocation is optional
	var store tokenstore.Store = tokenstore.Noop{}
	if cfg.Redis.Addr != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		rdb, err := tokenstore.Connect(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		cancel()
		if err != nil {
			return nil, fmt.Errorf("connect redis: %w", err)
		}
		global.Rdb = rdb
		store = tokenstore.NewRedisStore(rdb)
		global.Logger.Info().Str("addr", cfg.Redis.Addr).Msg("token revocation enabled")
	}

	// Services
	userRepo := repo.NewUserRepository(gdb)
	roleRepo := repo.NewRoleRepository(gdb)
	newsRepo := repo.NewNewsRepository(gdb)
	userSvc := services.NewUserService(userRepo, roleRepo)
	newsSvc := services.NewNewsService(newsRepo)
	newsSvc.WriterOwnOnly = cfg.News.WriterDeleteOwnOnly
	if cfg.Admin.Username != "" {
		if err := userSvc.EnsureAdmin(cfg.Admin.Username, cfg.Admin.Email, cfg.Admin.Password); err != nil {
			return nil, fmt.Errorf("ensure admin: %w", err)
		}
	}
	signer := &jwtutil.Signer{
		Secret:        []byte(cfg.JWT.Secret),
		Issuer:        cfg.JWT.Issuer,
		ExpMin:        cfg.JWT.AccessExpMin,
		RefreshExpMin: cfg.JWT.RefreshExpHours * 60,
	}
	authSvc := services.NewAuthService(userSvc, signer, store)

	// Controllers
	httpCtrl := controllers.NewHTTPController()
	authCtrl := controllers.NewAuthController(authSvc)
	newsCtrl := controllers.NewNewsController(newsSvc, userSvc)
	userCtrl := controllers.NewUserController(userSvc)
	mw := &middleware.Auth{Signer: signer, Revoked: authSvc}

	// Router
	h := router.NewRouter(httpCtrl, authCtrl, newsCtrl, userCtrl, mw)
	// Wrap with logging middleware
	h = middleware.RequestID(middleware.Logging(h))

	return &App{
		Cfg:     cfg,
		DB:      gdb,
		Router:  h,
		Sweeper: &jobs.ExpirySweeper{News: newsSvc, Interval: cfg.News.SweepInterval},
		Users:   userSvc,
		Auth:    authSvc,
		News:    newsSvc,
	}, nil
}

// Close releases the database and redis connections.
func (a *App) Close() {
	if sqlDB, err := a.DB.DB(); err == nil {
		_ = sqlDB.Close()
	}
	if global.Rdb != nil {
		_ = global.Rdb.Close()
	}
}
