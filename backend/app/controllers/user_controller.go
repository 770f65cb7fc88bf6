package controllers

import (
	"net/http"

	"news-app/backend/app/dto"
	"news-app/backend/app/services"
)

type UserController struct{ Users *services.UserService }

func NewUserController(users *services.UserService) *UserController {
	return &UserController{Users: users}
}

// Create POST /api/user
func (c *UserController) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.UserRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err, "create user")
		return
	}
	u, err := c.Users.CreateUser(req)
	if err != nil {
		writeError(w, r, err, "create user")
		return
	}
	writeJSON(w, http.StatusCreated, u)
}

// List GET /api/user
func (c *UserController) List(w http.ResponseWriter, r *http.Request) {
	users, err := c.Users.List()
	if err != nil {
		writeError(w, r, err, "list users")
		return
	}
	writeJSON(w, http.StatusOK, users)
}

// Get GET /api/user/{id}
func (c *UserController) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err, "get user")
		return
	}
	u, err := c.Users.GetByID(id)
	if err != nil {
		writeError(w, r, err, "get user")
		return
	}
	writeJSON(w, http.StatusOK, u)
}

// GetByEmail GET /api/user/email/{email}
func (c *UserController) GetByEmail(w http.ResponseWriter, r *http.Request) {
	u, err := c.Users.GetByEmail(r.PathValue("email"))
	if err != nil {
		writeError(w, r, err, "get user")
		return
	}
	writeJSON(w, http.StatusOK, u)
}

// Update PUT /api/user/{id}
func (c *UserController) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err, "update user")
		return
	}
	var req dto.UserRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err, "update user")
		return
	}
	u, err := c.Users.UpdateUser(id, req)
	if err != nil {
		writeError(w, r, err, "update user")
		return
	}
	writeJSON(w, http.StatusOK, u)
}

// Delete DELETE /api/user/{id}
func (c *UserController) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err, "delete user")
		return
	}
	if err := c.Users.DeleteUser(id); err != nil {
		writeError(w, r, err, "delete user")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
