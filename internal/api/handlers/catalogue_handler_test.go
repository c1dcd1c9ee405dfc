package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zinyando/salon-booking-api/internal/api/handlers"
	"github.com/zinyando/salon-booking-api/internal/application/services"
	"github.com/zinyando/salon-booking-api/internal/domain/entities"
)

func TestCatalogueHandler_GetCatalogue(t *testing.T) {
	handler := handlers.NewCatalogueHandler(services.NewCatalogueService())

	req := httptest.NewRequest(http.MethodGet, "/services-catalogue", nil)
	w := httptest.NewRecorder()

	handler.GetCatalogue(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var payload struct {
		Catalogue []entities.ServiceCategory `json:"catalogue"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &payload))
	require.Len(t, payload.Catalogue, 4)
	assert.Equal(t, "Haircuts", payload.Catalogue[0].Category)
	assert.Equal(t, "Men's Haircut", payload.Catalogue[0].Services[0].Service)
}
