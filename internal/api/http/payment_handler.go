package http

import (
	"encoding/json"
	"net/http"

	"ecorent-backend/internal/domain"
	"ecorent-backend/internal/service"

	"github.com/shopspring/decimal"
)

// PaymentHandler serves the /api/payments resource
type PaymentHandler struct {
	paymentSvc service.PaymentService
}

func NewPaymentHandler(paymentSvc service.PaymentService) *PaymentHandler {
	return &PaymentHandler{paymentSvc: paymentSvc}
}

type paymentRequest struct {
	RentalID int64           `json:"rental_id"`
	Amount   decimal.Decimal `json:"amount"`
}

type paymentResponse struct {
	ID          int64           `json:"id"`
	RentalID    int64           `json:"rental_id"`
	Amount      decimal.Decimal `json:"amount"`
	PaymentDate string          `json:"payment_date"`
}

type paymentStatusResponse struct {
	RentalID int64                `json:"rental_id"`
	Status   domain.PaymentStatus `json:"status"`
}

func toPaymentResponse(p *domain.Payment) paymentResponse {
	return paymentResponse{
		ID:          p.ID,
		RentalID:    p.RentalID,
		Amount:      p.Amount,
		PaymentDate: p.PaymentDate.Format(dateLayout),
	}
}

func (h *PaymentHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req paymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, invalidInput("malformed request body"))
		return
	}
	if req.RentalID <= 0 {
		writeError(w, r, invalidInput("rental id is required"))
		return
	}
	if !req.Amount.IsPositive() {
		writeError(w, r, invalidInput("amount must be positive"))
		return
	}

	payment, err := h.paymentSvc.RegisterPayment(r.Context(), req.RentalID, req.Amount)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toPaymentResponse(payment))
}

func (h *PaymentHandler) Status(w http.ResponseWriter, r *http.Request) {
	rentalID, err := pathID(r, "rentalId")
	if err != nil {
		writeError(w, r, err)
		return
	}

	status, err := h.paymentSvc.GetPaymentStatus(r.Context(), rentalID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, paymentStatusResponse{RentalID: rentalID, Status: status})
}

func (h *PaymentHandler) List(w http.ResponseWriter, r *http.Request) {
	rentalID, err := pathID(r, "rentalId")
	if err != nil {
		writeError(w, r, err)
		return
	}

	payments, err := h.paymentSvc.ListPayments(r.Context(), rentalID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	out := make([]paymentResponse, 0, len(payments))
	for i := range payments {
		out = append(out, toPaymentResponse(&payments[i]))
	}
	writeJSON(w, http.StatusOK, out)
}
