package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"barberflow/services/booking"
	"barberflow/utils"
)

// CatalogHandler serves the read-only services/barbers listings.
type CatalogHandler struct {
	Svc booking.CatalogService
}

// NewCatalogHandler returns a handler over the catalog service.
func NewCatalogHandler(svc booking.CatalogService) *CatalogHandler {
	return &CatalogHandler{Svc: svc}
}

// ListServicesHandler handles GET /api/catalog/services.
func (h *CatalogHandler) ListServicesHandler(c *gin.Context) {
	services, err := h.Svc.ListServices(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to list services", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"services": services})
}

// ListBarbersHandler handles GET /api/catalog/barbers.
func (h *CatalogHandler) ListBarbersHandler(c *gin.Context) {
	barbers, err := h.Svc.ListBarbers(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to list barbers", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"barbers": barbers})
}
