package patients

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/uemerson199/hospitalcare-meta/pkg/interfaces"
	"github.com/uemerson199/hospitalcare-meta/pkg/logger"
	"github.com/uemerson199/hospitalcare-meta/pkg/types"
)

// Handlers contains HTTP handlers for patient operations
type Handlers struct {
	service interfaces.PatientService
	logger  *logger.Logger
}

// NewHandlers creates new patient HTTP handlers
func NewHandlers(service interfaces.PatientService, log *logger.Logger) *Handlers {
	return &Handlers{
		service: service,
		logger:  log,
	}
}

// RegisterRoutes registers patient routes with the router
func (h *Handlers) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/patients", h.listHandler).Methods(http.MethodGet)
	router.HandleFunc("/patients", h.createHandler).Methods(http.MethodPost)
	router.HandleFunc("/patients/{id}", h.getHandler).Methods(http.MethodGet)
	router.HandleFunc("/patients/{id}", h.updateHandler).Methods(http.MethodPut)
	router.HandleFunc("/patients/{id}", h.deleteHandler).Methods(http.MethodDelete)
}

func (h *Handlers) createHandler(w http.ResponseWriter, r *http.Request) {
	var req types.PatientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, types.NewValidationError("Invalid request body", nil))
		return
	}

	patient, err := h.service.CreatePatient(&req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, patient)
}

func (h *Handlers) getHandler(w http.ResponseWriter, r *http.Request) {
	patient, err := h.service.GetPatient(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, patient)
}

func (h *Handlers) listHandler(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.ListPatients(r.URL.Query().Get("search"))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

func (h *Handlers) updateHandler(w http.ResponseWriter, r *http.Request) {
	var req types.PatientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, types.NewValidationError("Invalid request body", nil))
		return
	}

	patient, err := h.service.UpdatePatient(mux.Vars(r)["id"], &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, patient)
}

func (h *Handlers) deleteHandler(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeletePatient(mux.Vars(r)["id"]); err != nil {
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
