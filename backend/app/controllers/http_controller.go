package controllers

import "net/http"

type HTTPController struct{}

func NewHTTPController() *HTTPController {
	return &HTTPController{}
}

func (c *HTTPController) Ping(w http.ResponseWriter, r *http.Request) {
	writeText(w, http.StatusOK, "pong")
}
