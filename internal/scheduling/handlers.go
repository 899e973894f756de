package scheduling

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/uemerson199/hospitalcare-meta/pkg/interfaces"
	"github.com/uemerson199/hospitalcare-meta/pkg/logger"
	"github.com/uemerson199/hospitalcare-meta/pkg/types"
)

// Handlers contains HTTP handlers for appointment operations
type Handlers struct {
	service interfaces.SchedulingService
	logger  *logger.Logger
}

// NewHandlers creates new scheduling HTTP handlers
func NewHandlers(service interfaces.SchedulingService, log *logger.Logger) *Handlers {
	return &Handlers{
		service: service,
		logger:  log,
	}
}

// RegisterRoutes registers appointment routes with the router
func (h *Handlers) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/appointments", h.listHandler).Methods(http.MethodGet)
	router.HandleFunc("/appointments", h.createHandler).Methods(http.MethodPost)
	router.HandleFunc("/appointments/schedule", h.scheduleHandler).Methods(http.MethodGet)
	router.HandleFunc("/appointments/{id}", h.getHandler).Methods(http.MethodGet)
	router.HandleFunc("/appointments/{id}", h.updateHandler).Methods(http.MethodPut)
	router.HandleFunc("/appointments/{id}", h.deleteHandler).Methods(http.MethodDelete)
}

func (h *Handlers) createHandler(w http.ResponseWriter, r *http.Request) {
	var req types.CreateAppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, types.NewValidationError("Invalid request body", nil))
		return
	}

	apt, err := h.service.CreateAppointment(&req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, apt)
}

func (h *Handlers) getHandler(w http.ResponseWriter, r *http.Request) {
	apt, err := h.service.GetAppointment(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, apt)
}

func (h *Handlers) listHandler(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.ListAppointments(r.URL.Query().Get("search"))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

func (h *Handlers) scheduleHandler(w http.ResponseWriter, r *http.Request) {
	schedule, err := h.service.ListSchedule(r.URL.Query().Get("search"))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, schedule)
}

func (h *Handlers) updateHandler(w http.ResponseWriter, r *http.Request) {
	var req types.UpdateAppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, types.NewValidationError("Invalid request body", nil))
		return
	}

	apt, err := h.service.UpdateAppointment(mux.Vars(r)["id"], &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, apt)
}

func (h *Handlers) deleteHandler(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteAppointment(mux.Vars(r)["id"]); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
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
