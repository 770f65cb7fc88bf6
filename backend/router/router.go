package router

import (
	"net/http"

	"news-app/backend/app/controllers"
	"news-app/backend/app/middleware"
	"news-app/backend/app/models"
)

var (
	writerOrAdmin = []string{string(models.RoleWriter), string(models.RoleAdmin)}
	normalOrAdmin = []string{string(models.RoleNormal), string(models.RoleAdmin)}
	adminOnly     = []string{string(models.RoleAdmin)}
)

func NewRouter(httpCtrl *controllers.HTTPController, authCtrl *controllers.AuthController, newsCtrl *controllers.NewsController, userCtrl *controllers.UserController, mw *middleware.Auth) http.Handler {
	mux := http.NewServeMux()
	guard := func(roles []string, h http.HandlerFunc) http.Handler {
		return mw.RequireRoles(roles...)(h)
	}

	// public
	mux.HandleFunc("GET /ping", httpCtrl.Ping)
	mux.HandleFunc("POST /api/auth/login", authCtrl.Login)
	mux.HandleFunc("POST /api/auth/signup", authCtrl.Signup)
	mux.HandleFunc("POST /api/auth/refresh", authCtrl.Refresh)
	mux.Handle("POST /api/auth/logout", mw.OptionalAuth(http.HandlerFunc(authCtrl.Logout)))

	// news
	mux.Handle("POST /api/news", guard(writerOrAdmin, newsCtrl.Create))
	mux.Handle("GET /api/news/all", guard(adminOnly, newsCtrl.All))
	mux.Handle("GET /api/news/approved", guard(normalOrAdmin, newsCtrl.Approved))
	mux.Handle("GET /api/news/pending", guard(adminOnly, newsCtrl.Pending))
	mux.Handle("PUT /api/news/{id}/approve", guard(adminOnly, newsCtrl.Approve))
	mux.Handle("PUT /api/news/{id}/reject", guard(adminOnly, newsCtrl.Reject))
	mux.Handle("DELETE /api/news/{id}", guard(writerOrAdmin, newsCtrl.Delete))

	// user management (admin only)
	mux.Handle("POST /api/user", guard(adminOnly, userCtrl.Create))
	mux.Handle("GET /api/user", guard(adminOnly, userCtrl.List))
	mux.Handle("GET /api/user/{id}", guard(adminOnly, userCtrl.Get))
	mux.Handle("GET /api/user/email/{email}", guard(adminOnly, userCtrl.GetByEmail))
	mux.Handle("PUT /api/user/{id}", guard(adminOnly, userCtrl.Update))
	mux.Handle("DELETE /api/user/{id}", guard(adminOnly, userCtrl.Delete))

	return mux
}
