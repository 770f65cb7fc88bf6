package controllers

import (
	"errors"
	"net/http"

	"news-app/backend/app/dto"
	"news-app/backend/app/middleware"
	"news-app/backend/app/models"
	"news-app/backend/app/services"
)

type NewsController struct {
	News  *services.NewsService
	Users *services.UserService
}

func NewNewsController(news *services.NewsService, users *services.UserService) *NewsController {
	return &NewsController{News: news, Users: users}
}

// actor loads the caller behind the access token. A token whose user has
// since been removed no longer authenticates anyone.
func (c *NewsController) actor(w http.ResponseWriter, r *http.Request) (*models.User, bool) {
	claims := middleware.GetClaims(r.Context())
	if claims == nil {
		writeJSONError(w, http.StatusUnauthorized, "Full authentication is required to access this resource")
		return nil, false
	}
	u, err := c.Users.CurrentUser(claims.Username)
	if errors.Is(err, services.ErrNotFound) {
		writeJSONError(w, http.StatusUnauthorized, "User not found")
		return nil, false
	}
	if err != nil {
		writeError(w, r, err, "load user")
		return nil, false
	}
	return u, true
}

// Create POST /api/news
func (c *NewsController) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.NewsRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err, "create news")
		return
	}
	u, ok := c.actor(w, r)
	if !ok {
		return
	}
	n, err := c.News.Create(req, u)
	if err != nil {
		writeError(w, r, err, "create news")
		return
	}
	writeJSON(w, http.StatusOK, n)
}

// All GET /api/news/all
func (c *NewsController) All(w http.ResponseWriter, r *http.Request) {
	c.list(w, r, c.News.ListAll)
}

// Approved GET /api/news/approved
func (c *NewsController) Approved(w http.ResponseWriter, r *http.Request) {
	c.list(w, r, c.News.ListApproved)
}

// Pending GET /api/news/pending
func (c *NewsController) Pending(w http.ResponseWriter, r *http.Request) {
	c.list(w, r, c.News.ListPending)
}

// list sweeps expired articles before reading so a listing never shows one.
func (c *NewsController) list(w http.ResponseWriter, r *http.Request, fetch func() ([]dto.NewsResponse, error)) {
	if _, err := c.News.SweepExpired(); err != nil {
		writeError(w, r, err, "sweep news")
		return
	}
	items, err := fetch()
	if err != nil {
		writeError(w, r, err, "list news")
		return
	}
	writeJSON(w, http.StatusOK, items)
}

// Approve PUT /api/news/{id}/approve
func (c *NewsController) Approve(w http.ResponseWriter, r *http.Request) {
	c.moderate(w, r, c.News.Approve)
}

// Reject PUT /api/news/{id}/reject
func (c *NewsController) Reject(w http.ResponseWriter, r *http.Request) {
	c.moderate(w, r, c.News.Reject)
}

func (c *NewsController) moderate(w http.ResponseWriter, r *http.Request, apply func(uint) (*dto.NewsResponse, error)) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err, "moderate news")
		return
	}
	n, err := apply(id)
	if err != nil {
		writeError(w, r, err, "moderate news")
		return
	}
	writeJSON(w, http.StatusOK, n)
}

// Delete DELETE /api/news/{id}
func (c *NewsController) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err, "delete news")
		return
	}
	u, ok := c.actor(w, r)
	if !ok {
		return
	}
	if err := c.News.Delete(id, u); err != nil {
		writeError(w, r, err, "delete news")
		return
	}
	writeText(w, http.StatusOK, "News deleted successfully.")
}
