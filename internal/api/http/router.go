package http

import (
	"ecorent-backend/internal/service"

	"github.com/gorilla/mux"
)

// NewRouter wires every resource handler onto the /api tree.
func NewRouter(
	clientSvc service.ClientService,
	equipmentSvc service.EquipmentService,
	rentalSvc service.RentalService,
	paymentSvc service.PaymentService,
	reportSvc service.ReportService,
) *mux.Router {
	router := mux.NewRouter()
	router.Use(RequestIDMiddleware)

	clientHandler := NewClientHandler(clientSvc)
	equipmentHandler := NewEquipmentHandler(equipmentSvc)
	rentalHandler := NewRentalHandler(rentalSvc)
	paymentHandler := NewPaymentHandler(paymentSvc)
	reportHandler := NewReportHandler(reportSvc)

	api := router.PathPrefix("/api").Subrouter()

	api.HandleFunc("/clients", clientHandler.Create).Methods("POST")
	api.HandleFunc("/clients", clientHandler.List).Methods("GET")
	api.HandleFunc("/clients/{id:[0-9]+}", clientHandler.Update).Methods("PUT")
	api.HandleFunc("/clients/{id:[0-9]+}", clientHandler.Delete).Methods("DELETE")
	api.HandleFunc("/clients/{dni}", clientHandler.GetByDNI).Methods("GET")

	api.HandleFunc("/equipments", equipmentHandler.Create).Methods("POST")
	api.HandleFunc("/equipments", equipmentHandler.List).Methods("GET")
	api.HandleFunc("/equipments/{id:[0-9]+}", equipmentHandler.Update).Methods("PUT")
	api.HandleFunc("/equipments/{id:[0-9]+}", equipmentHandler.Delete).Methods("DELETE")
	api.HandleFunc("/equipments/{id:[0-9]+}/status", equipmentHandler.ChangeStatus).Methods("PATCH")

	api.HandleFunc("/rentals", rentalHandler.Create).Methods("POST")
	api.HandleFunc("/rentals/{id:[0-9]+}/return", rentalHandler.RegisterReturn).Methods("PUT")
	api.HandleFunc("/rentals/{dni}/rentals", rentalHandler.ClientHistory).Methods("GET")

	api.HandleFunc("/payments", paymentHandler.Register).Methods("POST")
	api.HandleFunc("/payments/{rentalId:[0-9]+}", paymentHandler.List).Methods("GET")
	api.HandleFunc("/payments/{rentalId:[0-9]+}/status", paymentHandler.Status).Methods("GET")

	api.HandleFunc("/reports/income", reportHandler.Income).Methods("GET")
	api.HandleFunc("/reports/top-equipments", reportHandler.TopEquipment).Methods("GET")
	api.HandleFunc("/reports/top-clients", reportHandler.TopClients).Methods("GET")
	api.HandleFunc("/reports/active-rentals", reportHandler.ActiveRentals).Methods("GET")

	return router
}
