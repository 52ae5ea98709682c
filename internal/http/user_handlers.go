package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tazhibayda/tour-service/internal/domain"
	"github.com/tazhibayda/tour-service/internal/log"
	"github.com/tazhibayda/tour-service/internal/metrics"
	"github.com/tazhibayda/tour-service/internal/queue"
	"github.com/tazhibayda/tour-service/internal/repo"
)

// ListUsers godoc
// @Summary List users (admin)
// @Tags users
// @Security BearerAuth
// @Produce json
// @Param page query int false "page number"
// @Param size query int false "page size"
// @Param filter query string false "exact role match"
// @Param search query string false "email substring, case-insensitive"
// @Success 200 {array} domain.User
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /users [get]
func (h *Handler) ListUsers(c *gin.Context) {
	users, err := h.Store.ListUsers(c.Request.Context(),
		c.Query("filter"), c.Query("search"), parsePage(c))
	if err != nil {
		log.Errorf("list users: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
		return
	}
	c.JSON(http.StatusOK, users)
}

// CheckAdmin reports whether the path email holds the admin role. The path
// email must be the verified caller's own email.
func (h *Handler) CheckAdmin(c *gin.Context) {
	email := c.Param("email")
	if email != c.GetString(emailKey) {
		c.JSON(http.StatusForbidden, gin.H{"message": "forbidden access"})
		return
	}
	u, err := h.Store.FindUserByEmail(c.Request.Context(), email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"admin": u != nil && u.Role == domain.RoleAdmin})
}

// CheckGuide is deliberately unauthenticated; the frontend probes it before
// rendering the guide dashboard.
func (h *Handler) CheckGuide(c *gin.Context) {
	u, err := h.Store.FindUserByEmail(c.Request.Context(), c.Param("email"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"TourGuide": u != nil && u.Role == domain.RoleTourGuide})
}

func (h *Handler) FindUser(c *gin.Context) {
	u, err := h.Store.FindUserByEmail(c.Request.Context(), c.Param("email"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
		return
	}
	c.JSON(http.StatusOK, u)
}

// SignUp godoc
// @Summary Create the user on first sign-in
// @Tags users
// @Accept json
// @Produce json
// @Param payload body domain.User true "user"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Router /users [post]
func (h *Handler) SignUp(c *gin.Context) {
	var u domain.User
	if err := c.ShouldBindJSON(&u); err != nil || u.Email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email required"})
		return
	}
	existing, err := h.Store.FindUserByEmail(c.Request.Context(), u.Email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
		return
	}
	if existing != nil {
		c.JSON(http.StatusOK, gin.H{"message": "user already exists", "insertedId": nil})
		return
	}
	if err := h.Store.CreateUser(c.Request.Context(), &u); err != nil {
		// the unique email index closes the find-then-insert race
		if err == repo.ErrEmailExists {
			c.JSON(http.StatusOK, gin.H{"message": "user already exists", "insertedId": nil})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
		return
	}
	metrics.UsersRegistered.Inc()
	_ = h.Events.Publish(c.Request.Context(), queue.Exchange, "user.registered",
		queue.UserRegistered{Email: u.Email, Name: u.Name})
	c.JSON(http.StatusOK, gin.H{"insertedId": u.ID})
}

func (h *Handler) MakeAdmin(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	res, err := h.Store.SetUserRole(c.Request.Context(), id, domain.RoleAdmin)
	updateResp(c, res, err)
}

func (h *Handler) MakeGuide(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	res, err := h.Store.SetUserRole(c.Request.Context(), id, domain.RoleTourGuide)
	updateResp(c, res, err)
}

func (h *Handler) UpdateProfile(c *gin.Context) {
	var p domain.Profile
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	res, err := h.Store.UpdateUserProfile(c.Request.Context(), c.Param("email"), p)
	updateResp(c, res, err)
}

func (h *Handler) DeleteUser(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	n, err := h.Store.DeleteUser(c.Request.Context(), id)
	deleteResp(c, n, err)
}

func (h *Handler) ListGuides(c *gin.Context) {
	guides, err := h.Store.ListGuides(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
		return
	}
	c.JSON(http.StatusOK, guides)
}

func (h *Handler) GuideProfile(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	u, err := h.Store.FindUserByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
		return
	}
	c.JSON(http.StatusOK, u)
}

func (h *Handler) UserCount(c *gin.Context) {
	n, err := h.Store.CountUsers(c.Request.Context())
	countResp(c, n, err)
}
