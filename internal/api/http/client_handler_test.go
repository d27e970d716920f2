package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"ecorent-backend/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientHandler_Create(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		svcs := newStubServices()
		svcs.clients.createFn = func(ctx context.Context, name, dni, phone, email string) (*domain.Client, error) {
			return &domain.Client{ID: 1, Name: name, DNI: dni, Phone: phone, Email: email}, nil
		}

		body := `{"name":"Maria","dni":"12345678A","phone":"600111222","email":"maria@example.com"}`
		rec := doRequest(t, svcs.router(), http.MethodPost, "/api/clients", body)

		assert.Equal(t, http.StatusCreated, rec.Code)
		var resp map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "12345678A", resp["dni"])
	})

	t.Run("Missing dni", func(t *testing.T) {
		svcs := newStubServices()
		rec := doRequest(t, svcs.router(), http.MethodPost, "/api/clients", `{"name":"Maria"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "dni is required", decodeError(t, rec)["message"])
	})

	t.Run("Duplicate dni maps to 409", func(t *testing.T) {
		svcs := newStubServices()
		svcs.clients.createFn = func(ctx context.Context, name, dni, phone, email string) (*domain.Client, error) {
			return nil, conflict("a client with this dni already exists")
		}

		rec := doRequest(t, svcs.router(), http.MethodPost, "/api/clients", `{"name":"Maria","dni":"12345678A"}`)
		assert.Equal(t, http.StatusConflict, rec.Code)
	})
}

func TestClientHandler_GetByDNI(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		svcs := newStubServices()
		svcs.clients.findFn = func(ctx context.Context, dni string) (*domain.Client, error) {
			assert.Equal(t, "12345678A", dni)
			return &domain.Client{ID: 1, DNI: dni}, nil
		}

		rec := doRequest(t, svcs.router(), http.MethodGet, "/api/clients/12345678A", "")
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("Unknown dni maps to 404", func(t *testing.T) {
		svcs := newStubServices()
		svcs.clients.findFn = func(ctx context.Context, dni string) (*domain.Client, error) {
			return nil, notFound("client")
		}

		rec := doRequest(t, svcs.router(), http.MethodGet, "/api/clients/99999999Z", "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
		payload := decodeError(t, rec)
		assert.Equal(t, "Resource Not Found", payload["error"])
		assert.Equal(t, "client", payload["message"])
	})
}

func TestClientHandler_Update(t *testing.T) {
	svcs := newStubServices()
	svcs.clients.updateFn = func(ctx context.Context, id int64, name, phone, email string) (*domain.Client, error) {
		assert.Equal(t, int64(1), id)
		// The handler never forwards a dni from the body.
		return &domain.Client{ID: id, Name: name, DNI: "12345678A", Phone: phone, Email: email}, nil
	}

	body := `{"name":"Maria Lopez","dni":"00000000X","phone":"600999888"}`
	rec := doRequest(t, svcs.router(), http.MethodPut, "/api/clients/1", body)

	assert.Equal(t, http.StatusOK, rec.Code)
	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "12345678A", resp["dni"])
}

func TestClientHandler_Delete(t *testing.T) {
	t.Run("Rental history maps to 409", func(t *testing.T) {
		svcs := newStubServices()
		svcs.clients.deleteFn = func(ctx context.Context, id int64) error {
			return conflict("cannot delete client with rental history")
		}

		rec := doRequest(t, svcs.router(), http.MethodDelete, "/api/clients/1", "")
		assert.Equal(t, http.StatusConflict, rec.Code)
	})
}
