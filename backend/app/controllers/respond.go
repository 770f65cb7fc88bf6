package controllers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"news-app/backend/app/dto"
	"news-app/backend/app/services"
	"news-app/backend/global"
)

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeJSONError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, dto.MessageResponse{Message: msg})
}

func writeText(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	_, _ = io.WriteString(w, msg)
}

func statusOf(err error) int {
	switch {
	case errors.Is(err, services.ErrValidation), errors.Is(err, services.ErrDuplicate):
		return http.StatusBadRequest
	case errors.Is(err, services.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, services.ErrUnauthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, services.ErrForbidden):
		return http.StatusForbidden
	}
	return http.StatusInternalServerError
}

// writeError maps a service error onto its status code. Anything that is not
// one of the service error kinds is logged and reported as a 500.
func writeError(w http.ResponseWriter, r *http.Request, err error, op string) {
	writeErrorStatus(w, r, err, op, statusOf(err))
}

func writeErrorStatus(w http.ResponseWriter, r *http.Request, err error, op string, status int) {
	if status == http.StatusInternalServerError {
		global.Logger.Error().Err(err).Str("path", r.URL.Path).Msg(op + " failed")
		writeJSONError(w, status, op+" failed")
		return
	}
	var se *services.Error
	if errors.As(err, &se) {
		writeJSON(w, status, dto.MessageResponse{Message: se.Message, Fields: se.Fields})
		return
	}
	writeJSONError(w, status, err.Error())
}

// decodeJSON reads the body into v and runs the struct validation tags.
func decodeJSON(r *http.Request, v interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return &services.Error{Kind: services.ErrValidation, Message: "invalid payload"}
	}
	if fields := dto.Validate(v); fields != nil {
		return &services.Error{Kind: services.ErrValidation, Message: services.ErrValidation.Error(), Fields: fields}
	}
	return nil
}

func pathID(r *http.Request) (uint, error) {
	id, err := strconv.ParseUint(r.PathValue("id"), 10, 32)
	if err != nil {
		return 0, &services.Error{Kind: services.ErrValidation, Message: "invalid id"}
	}
	return uint(id), nil
}
