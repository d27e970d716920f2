package http

import (
	"encoding/json"
	"net/http"
	"time"

	"ecorent-backend/internal/domain"
	"ecorent-backend/internal/service"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
)

const dateLayout = "2006-01-02"

// RentalHandler serves the /api/rentals resource
type RentalHandler struct {
	rentalSvc service.RentalService
}

func NewRentalHandler(rentalSvc service.RentalService) *RentalHandler {
	return &RentalHandler{rentalSvc: rentalSvc}
}

type rentalRequest struct {
	ClientDNI   string `json:"client_dni"`
	EquipmentID int64  `json:"equipment_id"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
}

type rentalResponse struct {
	ID          int64           `json:"id"`
	ClientID    int64           `json:"client_id"`
	EquipmentID int64           `json:"equipment_id"`
	StartDate   string          `json:"start_date"`
	EndDate     string          `json:"end_date"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	Returned    bool            `json:"returned"`
}

type rentalReturnResponse struct {
	ID              int64                  `json:"id"`
	Returned        bool                   `json:"returned"`
	EquipmentStatus domain.EquipmentStatus `json:"equipment_status"`
}

func toRentalResponse(rt *domain.Rental) rentalResponse {
	return rentalResponse{
		ID:          rt.ID,
		ClientID:    rt.ClientID,
		EquipmentID: rt.EquipmentID,
		StartDate:   rt.StartDate.Format(dateLayout),
		EndDate:     rt.EndDate.Format(dateLayout),
		TotalAmount: rt.TotalAmount,
		Returned:    rt.Returned,
	}
}

func toRentalResponses(rentals []domain.Rental) []rentalResponse {
	out := make([]rentalResponse, 0, len(rentals))
	for i := range rentals {
		out = append(out, toRentalResponse(&rentals[i]))
	}
	return out
}

func (h *RentalHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req rentalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, invalidInput("malformed request body"))
		return
	}
	if req.ClientDNI == "" {
		writeError(w, r, invalidInput("client dni is required"))
		return
	}
	if req.EquipmentID <= 0 {
		writeError(w, r, invalidInput("equipment id is required"))
		return
	}

	start, err := parseDate(req.StartDate, "start date")
	if err != nil {
		writeError(w, r, err)
		return
	}
	end, err := parseDate(req.EndDate, "end date")
	if err != nil {
		writeError(w, r, err)
		return
	}

	rental, err := h.rentalSvc.CreateRental(r.Context(), req.ClientDNI, req.EquipmentID, start, end)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toRentalResponse(rental))
}

func (h *RentalHandler) RegisterReturn(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	rental, equipment, err := h.rentalSvc.RegisterReturn(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, rentalReturnResponse{
		ID:              rental.ID,
		Returned:        rental.Returned,
		EquipmentStatus: equipment.Status,
	})
}

func (h *RentalHandler) ClientHistory(w http.ResponseWriter, r *http.Request) {
	dni := mux.Vars(r)["dni"]

	rentals, err := h.rentalSvc.GetClientHistory(r.Context(), dni)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toRentalResponses(rentals))
}

// parseDate parses a date-only value in UTC so day arithmetic stays exact.
func parseDate(value, field string) (time.Time, error) {
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, invalidInput(field + " must be a date in the form " + dateLayout)
	}
	return t, nil
}
