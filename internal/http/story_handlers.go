package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tazhibayda/tour-service/internal/domain"
)

func (h *Handler) AddStory(c *gin.Context) {
	var st domain.Story
	if err := c.ShouldBindJSON(&st); err != nil || st.Text == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "text required"})
		return
	}
	if err := h.Store.CreateStory(c.Request.Context(), &st); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"insertedId": st.ID})
}

func (h *Handler) ListStories(c *gin.Context) {
	stories, err := h.Store.ListStories(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
		return
	}
	c.JSON(http.StatusOK, stories)
}

func (h *Handler) FindStory(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	st, err := h.Store.FindStoryByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
		return
	}
	c.JSON(http.StatusOK, st)
}
