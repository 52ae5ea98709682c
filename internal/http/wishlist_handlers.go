package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tazhibayda/tour-service/internal/domain"
)

func (h *Handler) AddWishlist(c *gin.Context) {
	var w domain.WishlistItem
	if err := c.ShouldBindJSON(&w); err != nil || w.UserEmail == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "userEmail required"})
		return
	}
	if err := h.Store.AddWishlist(c.Request.Context(), &w); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"insertedId": w.ID})
}

func (h *Handler) ListWishlist(c *gin.Context) {
	items, err := h.Store.ListWishlistByEmail(c.Request.Context(), c.Query("email"), parsePage(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *Handler) DeleteWishlist(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	n, err := h.Store.DeleteWishlist(c.Request.Context(), id)
	deleteResp(c, n, err)
}

func (h *Handler) WishlistCount(c *gin.Context) {
	n, err := h.Store.CountWishlist(c.Request.Context())
	countResp(c, n, err)
}
