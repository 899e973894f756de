package inventory

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/uemerson199/hospitalcare-meta/pkg/interfaces"
	"github.com/uemerson199/hospitalcare-meta/pkg/logger"
	"github.com/uemerson199/hospitalcare-meta/pkg/types"
)

// Handlers contains HTTP handlers for medication operations
type Handlers struct {
	service interfaces.InventoryService
	logger  *logger.Logger
}

// NewHandlers creates new inventory HTTP handlers
func NewHandlers(service interfaces.InventoryService, log *logger.Logger) *Handlers {
	return &Handlers{
		service: service,
		logger:  log,
	}
}

// RegisterRoutes registers medication routes with the router
func (h *Handlers) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/medications", h.listHandler).Methods(http.MethodGet)
	router.HandleFunc("/medications", h.createHandler).Methods(http.MethodPost)
	router.HandleFunc("/medications/{id}", h.getHandler).Methods(http.MethodGet)
	router.HandleFunc("/medications/{id}", h.updateHandler).Methods(http.MethodPut)
	router.HandleFunc("/medications/{id}", h.deleteHandler).Methods(http.MethodDelete)
	router.HandleFunc("/medications/{id}/stock", h.adjustStockHandler).Methods(http.MethodPost)
}

func (h *Handlers) createHandler(w http.ResponseWriter, r *http.Request) {
	var req types.MedicationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, types.NewValidationError("Invalid request body", nil))
		return
	}

	med, err := h.service.CreateMedication(&req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, med)
}

func (h *Handlers) getHandler(w http.ResponseWriter, r *http.Request) {
	med, err := h.service.GetMedication(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, med)
}

func (h *Handlers) listHandler(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.ListMedications(r.URL.Query().Get("search"))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

func (h *Handlers) updateHandler(w http.ResponseWriter, r *http.Request) {
	var req types.MedicationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, types.NewValidationError("Invalid request body", nil))
		return
	}

	med, err := h.service.UpdateMedication(mux.Vars(r)["id"], &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, med)
}

func (h *Handlers) deleteHandler(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteMedication(mux.Vars(r)["id"]); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) adjustStockHandler(w http.ResponseWriter, r *http.Request) {
	var req types.StockAdjustmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, types.NewValidationError("Invalid request body", nil))
		return
	}

	med, err := h.service.AdjustStock(mux.Vars(r)["id"], req.Delta)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, med)
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
