package auth

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/uemerson199/hospitalcare-meta/pkg/interfaces"
	"github.com/uemerson199/hospitalcare-meta/pkg/logger"
	"github.com/uemerson199/hospitalcare-meta/pkg/types"
)

// Handlers contains HTTP handlers for authentication operations
type Handlers struct {
	service interfaces.AuthService
	logger  *logger.Logger
}

// NewHandlers creates new auth HTTP handlers
func NewHandlers(service interfaces.AuthService, log *logger.Logger) *Handlers {
	return &Handlers{
		service: service,
		logger:  log,
	}
}

// RegisterRoutes registers auth routes with the router
func (h *Handlers) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/auth/register", h.registerHandler).Methods(http.MethodPost)
	router.HandleFunc("/auth/login", h.loginHandler).Methods(http.MethodPost)
}

// registerHandler handles user registration
func (h *Handlers) registerHandler(w http.ResponseWriter, r *http.Request) {
	var req types.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, types.NewValidationError("Invalid request body", nil))
		return
	}

	resp, err := h.service.Register(&req)
	if err != nil {
		h.logger.WithError(err).Warn("Registration failed")
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, resp)
}

// loginHandler handles user authentication
func (h *Handlers) loginHandler(w http.ResponseWriter, r *http.Request) {
	var credentials types.Credentials
	if err := json.NewDecoder(r.Body).Decode(&credentials); err != nil {
		writeError(w, types.NewValidationError("Invalid request body", nil))
		return
	}

	resp, err := h.service.Login(&credentials)
	if err != nil {
		h.logger.WithError(err).Warn("Login failed")
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// writeJSON writes a JSON response
func writeJSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

// writeError writes a structured error response
func writeError(w http.ResponseWriter, err error) {
	e := types.AsError(err)

	response := map[string]interface{}{
		"message": e.Message,
		"status":  e.HTTPStatus(),
	}
	if len(e.Fields) > 0 {
		response["fields"] = e.Fields
	}

	writeJSON(w, e.HTTPStatus(), response)
}
