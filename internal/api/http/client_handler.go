package http

import (
	"encoding/json"
	"net/http"

	"ecorent-backend/internal/domain"
	"ecorent-backend/internal/service"

	"github.com/gorilla/mux"
)

// ClientHandler serves the /api/clients resource
type ClientHandler struct {
	clientSvc service.ClientService
}

func NewClientHandler(clientSvc service.ClientService) *ClientHandler {
	return &ClientHandler{clientSvc: clientSvc}
}

type clientRequest struct {
	Name  string `json:"name"`
	DNI   string `json:"dni"`
	Phone string `json:"phone"`
	Email string `json:"email"`
}

func (h *ClientHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req clientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, invalidInput("malformed request body"))
		return
	}
	if req.Name == "" {
		writeError(w, r, invalidInput("name is required"))
		return
	}
	if req.DNI == "" {
		writeError(w, r, invalidInput("dni is required"))
		return
	}

	client, err := h.clientSvc.CreateClient(r.Context(), req.Name, req.DNI, req.Phone, req.Email)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, client)
}

func (h *ClientHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req clientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, invalidInput("malformed request body"))
		return
	}
	if req.Name == "" {
		writeError(w, r, invalidInput("name is required"))
		return
	}

	// A DNI in the body is ignored: it cannot be changed after creation.
	client, err := h.clientSvc.UpdateClient(r.Context(), id, req.Name, req.Phone, req.Email)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, client)
}

func (h *ClientHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err := h.clientSvc.DeleteClient(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *ClientHandler) GetByDNI(w http.ResponseWriter, r *http.Request) {
	dni := mux.Vars(r)["dni"]

	client, err := h.clientSvc.FindByDNI(r.Context(), dni)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, client)
}

func (h *ClientHandler) List(w http.ResponseWriter, r *http.Request) {
	clients, err := h.clientSvc.ListClients(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	if clients == nil {
		clients = []domain.Client{}
	}
	writeJSON(w, http.StatusOK, clients)
}
