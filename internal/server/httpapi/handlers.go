package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/udesk/userdesk/internal/common"
	"github.com/udesk/userdesk/internal/logging"
	"github.com/udesk/userdesk/internal/server/users"
)

type Handler struct {
	users  *users.Service
	logger logging.Logger
}

func NewHandler(service *users.Service, logger logging.Logger) *Handler {
	return &Handler{users: service, logger: logger}
}

// NewRouter mounts the REST surface under /api and wraps it with the
// request-id/logging middleware.
func NewRouter(service *users.Service, logger logging.Logger) http.Handler {
	h := NewHandler(service, logger)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/users", h.list)
	mux.HandleFunc("GET /api/users/{id}", h.get)
	mux.HandleFunc("POST /api/users", h.create)
	mux.HandleFunc("PUT /api/users/{id}", h.update)
	mux.HandleFunc("DELETE /api/users/{id}", h.delete)

	return withRequestID(logger, mux)
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	all, err := h.users.GetAll(r.Context())
	if err != nil {
		h.internalError(w, r, "listing users", err)
		return
	}
	writeJSON(w, http.StatusOK, all)
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	user, err := h.users.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			h.notFound(w, id)
			return
		}
		h.internalError(w, r, "getting user", err)
		return
	}

	writeJSON(w, http.StatusOK, user)
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeBody(w, r)
	if !ok {
		return
	}
	if errs := validateUserRequest(req); errs != nil {
		writeValidationErrors(w, errs)
		return
	}

	created, err := h.users.Create(r.Context(), users.User{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
	})
	if err != nil {
		if errors.Is(err, common.ErrorEmailTaken) {
			h.conflict(w)
			return
		}
		h.internalError(w, r, "creating user", err)
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	req, ok := h.decodeBody(w, r)
	if !ok {
		return
	}
	if errs := validateUserRequest(req); errs != nil {
		writeValidationErrors(w, errs)
		return
	}

	updated, err := h.users.Update(r.Context(), id, users.User{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
	})
	if err != nil {
		switch {
		case errors.Is(err, common.ErrorNotFound):
			h.notFound(w, id)
		case errors.Is(err, common.ErrorEmailTaken):
			h.conflict(w)
		default:
			h.internalError(w, r, "updating user", err)
		}
		return
	}

	writeJSON(w, http.StatusOK, updated)
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	if err := h.users.Delete(r.Context(), id); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			h.notFound(w, id)
			return
		}
		h.internalError(w, r, "deleting user", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		writeError(w, http.StatusBadRequest, "Bad Request", "Invalid user id")
		return 0, false
	}
	return id, true
}

func (h *Handler) decodeBody(w http.ResponseWriter, r *http.Request) (userRequest, bool) {
	var req userRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Bad Request", "Malformed JSON request")
		return req, false
	}
	return req, true
}

func (h *Handler) notFound(w http.ResponseWriter, id int64) {
	writeError(w, http.StatusNotFound, "Not Found", fmt.Sprintf("User not found with id: %d", id))
}

func (h *Handler) conflict(w http.ResponseWriter) {
	writeError(w, http.StatusConflict, "Conflict", "A user with this email address already exists")
}

func (h *Handler) internalError(w http.ResponseWriter, r *http.Request, msg string, err error) {
	h.logger.Error(r.Context(), msg, "error", err)
	writeError(w, http.StatusInternalServerError, "Internal Server Error", "An unexpected error occurred")
}
