package doctors

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/uemerson199/hospitalcare-meta/pkg/interfaces"
	"github.com/uemerson199/hospitalcare-meta/pkg/logger"
	"github.com/uemerson199/hospitalcare-meta/pkg/types"
)

// Handlers contains HTTP handlers for doctor operations
type Handlers struct {
	service interfaces.DoctorService
	logger  *logger.Logger
}

// NewHandlers creates new doctor HTTP handlers
func NewHandlers(service interfaces.DoctorService, log *logger.Logger) *Handlers {
	return &Handlers{
		service: service,
		logger:  log,
	}
}

// RegisterRoutes registers doctor routes with the router
func (h *Handlers) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/doctors", h.listHandler).Methods(http.MethodGet)
	router.HandleFunc("/doctors", h.createHandler).Methods(http.MethodPost)
	router.HandleFunc("/doctors/specialties", h.specialtiesHandler).Methods(http.MethodGet)
	router.HandleFunc("/doctors/by-specialty", h.bySpecialtyHandler).Methods(http.MethodGet)
	router.HandleFunc("/doctors/{id}", h.getHandler).Methods(http.MethodGet)
	router.HandleFunc("/doctors/{id}", h.updateHandler).Methods(http.MethodPut)
	router.HandleFunc("/doctors/{id}", h.deleteHandler).Methods(http.MethodDelete)
}

func (h *Handlers) createHandler(w http.ResponseWriter, r *http.Request) {
	var req types.DoctorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, types.NewValidationError("Invalid request body", nil))
		return
	}

	doctor, err := h.service.CreateDoctor(&req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, doctor)
}

func (h *Handlers) getHandler(w http.ResponseWriter, r *http.Request) {
	doctor, err := h.service.GetDoctor(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, doctor)
}

func (h *Handlers) listHandler(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.ListDoctors(r.URL.Query().Get("search"))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// specialtiesHandler returns the fixed specialty set
func (h *Handlers) specialtiesHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, types.Specialties)
}

func (h *Handlers) bySpecialtyHandler(w http.ResponseWriter, r *http.Request) {
	groups, err := h.service.ListDoctorsBySpecialty(r.URL.Query().Get("search"))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, groups)
}

func (h *Handlers) updateHandler(w http.ResponseWriter, r *http.Request) {
	var req types.DoctorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, types.NewValidationError("Invalid request body", nil))
		return
	}

	doctor, err := h.service.UpdateDoctor(mux.Vars(r)["id"], &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, doctor)
}

func (h *Handlers) deleteHandler(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteDoctor(mux.Vars(r)["id"]); err != nil {
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
