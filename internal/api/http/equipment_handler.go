package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"ecorent-backend/internal/domain"
	"ecorent-backend/internal/service"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
)

// EquipmentHandler serves the /api/equipments resource
type EquipmentHandler struct {
	equipmentSvc service.EquipmentService
}

func NewEquipmentHandler(equipmentSvc service.EquipmentService) *EquipmentHandler {
	return &EquipmentHandler{equipmentSvc: equipmentSvc}
}

type equipmentRequest struct {
	Name         string          `json:"name"`
	Category     string          `json:"category"`
	InternalCode string          `json:"internal_code"`
	PricePerDay  decimal.Decimal `json:"price_per_day"`
	// Status is accepted but ignored on create; new equipment always starts
	// AVAILABLE.
	Status string `json:"status,omitempty"`
}

type equipmentStatusRequest struct {
	Status domain.EquipmentStatus `json:"status"`
}

func (h *EquipmentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req equipmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, invalidInput("malformed request body"))
		return
	}
	if req.Name == "" {
		writeError(w, r, invalidInput("name is required"))
		return
	}
	if req.InternalCode == "" {
		writeError(w, r, invalidInput("internal code is required"))
		return
	}
	if !req.PricePerDay.IsPositive() {
		writeError(w, r, invalidInput("price per day must be positive"))
		return
	}

	equipment, err := h.equipmentSvc.CreateEquipment(r.Context(), req.Name, req.Category, req.InternalCode, req.PricePerDay)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, equipment)
}

func (h *EquipmentHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req equipmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, invalidInput("malformed request body"))
		return
	}
	if req.Name == "" {
		writeError(w, r, invalidInput("name is required"))
		return
	}
	if !req.PricePerDay.IsPositive() {
		writeError(w, r, invalidInput("price per day must be positive"))
		return
	}

	equipment, err := h.equipmentSvc.UpdateEquipment(r.Context(), id, req.Name, req.Category, req.PricePerDay)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, equipment)
}

func (h *EquipmentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err := h.equipmentSvc.DeleteEquipment(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *EquipmentHandler) ChangeStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req equipmentStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, invalidInput("malformed request body"))
		return
	}
	if !req.Status.Valid() {
		writeError(w, r, invalidInput("unknown equipment status"))
		return
	}

	equipment, err := h.equipmentSvc.ChangeStatus(r.Context(), id, req.Status)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, equipment)
}

func (h *EquipmentHandler) List(w http.ResponseWriter, r *http.Request) {
	status := domain.EquipmentStatus(r.URL.Query().Get("status"))
	if status != "" && !status.Valid() {
		writeError(w, r, invalidInput("unknown equipment status"))
		return
	}

	items, err := h.equipmentSvc.ListEquipment(r.Context(), status)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if items == nil {
		items = []domain.Equipment{}
	}
	writeJSON(w, http.StatusOK, items)
}

// pathID extracts a positive numeric id from the route variables.
func pathID(r *http.Request, name string) (int64, error) {
	raw := mux.Vars(r)[name]
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, invalidInput("invalid " + name)
	}
	return id, nil
}
