package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tazhibayda/tour-service/internal/domain"
)

func (h *Handler) AddPackage(c *gin.Context) {
	var p domain.Package
	if err := c.ShouldBindJSON(&p); err != nil || p.TripTitle == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "tripTitle required"})
		return
	}
	if err := h.Store.CreatePackage(c.Request.Context(), &p); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"insertedId": p.ID})
}

func (h *Handler) ListPackages(c *gin.Context) {
	packages, err := h.Store.ListPackages(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
		return
	}
	c.JSON(http.StatusOK, packages)
}

func (h *Handler) PackageDetails(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	p, err := h.Store.FindPackageByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *Handler) ListTourTypes(c *gin.Context) {
	types, err := h.Store.ListTourTypes(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
		return
	}
	c.JSON(http.StatusOK, types)
}

// PackagesByType filters packages by the tour type label in the path.
func (h *Handler) PackagesByType(c *gin.Context) {
	packages, err := h.Store.ListPackagesByType(c.Request.Context(), c.Param("tourType"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
		return
	}
	c.JSON(http.StatusOK, packages)
}
