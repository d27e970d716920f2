package http

import (
	"net/http"

	"ecorent-backend/internal/domain"
	"ecorent-backend/internal/service"

	"github.com/shopspring/decimal"
)

// ReportHandler serves the read-only /api/reports endpoints
type ReportHandler struct {
	reportSvc service.ReportService
}

func NewReportHandler(reportSvc service.ReportService) *ReportHandler {
	return &ReportHandler{reportSvc: reportSvc}
}

type incomeReportResponse struct {
	Start  string          `json:"start"`
	End    string          `json:"end"`
	Income decimal.Decimal `json:"income"`
}

// Income reports the sum of total amounts of rentals fully contained in the
// requested window. A rental merely overlapping the window does not count;
// this is containment, unlike the intersection test that blocks bookings.
func (h *ReportHandler) Income(w http.ResponseWriter, r *http.Request) {
	start, err := parseDate(r.URL.Query().Get("start"), "start")
	if err != nil {
		writeError(w, r, err)
		return
	}
	end, err := parseDate(r.URL.Query().Get("end"), "end")
	if err != nil {
		writeError(w, r, err)
		return
	}

	income, err := h.reportSvc.GetIncomeBetween(r.Context(), start, end)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, incomeReportResponse{
		Start:  start.Format(dateLayout),
		End:    end.Format(dateLayout),
		Income: income,
	})
}

func (h *ReportHandler) TopEquipment(w http.ResponseWriter, r *http.Request) {
	results, err := h.reportSvc.GetTopRentedEquipment(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	if results == nil {
		results = []domain.EquipmentRentalCount{}
	}
	writeJSON(w, http.StatusOK, results)
}

func (h *ReportHandler) TopClients(w http.ResponseWriter, r *http.Request) {
	results, err := h.reportSvc.GetTopClients(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	if results == nil {
		results = []domain.ClientRentalCount{}
	}
	writeJSON(w, http.StatusOK, results)
}

func (h *ReportHandler) ActiveRentals(w http.ResponseWriter, r *http.Request) {
	rentals, err := h.reportSvc.GetActiveRentals(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toRentalResponses(rentals))
}
