package handlers

import (
	"net/http"

	"github.com/zinyando/salon-booking-api/internal/application/services"
)

// CatalogueHandler serves the salon services catalogue
type CatalogueHandler struct {
	catalogueService *services.CatalogueService
}

// NewCatalogueHandler creates a new catalogue handler
func NewCatalogueHandler(catalogueService *services.CatalogueService) *CatalogueHandler {
	return &CatalogueHandler{
		catalogueService: catalogueService,
	}
}

// GetCatalogue handles GET /services-catalogue
func (h *CatalogueHandler) GetCatalogue(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"catalogue": h.catalogueService.GetCatalogue(),
	})
}
