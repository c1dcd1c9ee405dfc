package services

import (
	"github.com/zinyando/salon-booking-api/internal/domain/entities"
)

// CatalogueService serves the static salon services catalogue
type CatalogueService struct {
	catalogue []entities.ServiceCategory
}

// NewCatalogueService creates a new catalogue service
func NewCatalogueService() *CatalogueService {
	return &CatalogueService{
		catalogue: entities.DefaultCatalogue(),
	}
}

// GetCatalogue returns the services catalogue grouped by category
func (s *CatalogueService) GetCatalogue() []entities.ServiceCategory {
	return s.catalogue
}
