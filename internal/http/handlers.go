package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/tazhibayda/tour-service/internal/domain"
	"github.com/tazhibayda/tour-service/internal/queue"
	"github.com/tazhibayda/tour-service/internal/repo"
	"github.com/tazhibayda/tour-service/internal/security"
)

// Store is the slice of the repo layer the handlers consume. *repo.Store
// satisfies it; tests wire an in-memory double.
type Store interface {
	Ping(ctx context.Context) error

	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)
	FindUserByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error)
	CreateUser(ctx context.Context, u *domain.User) error
	ListUsers(ctx context.Context, role, search string, p *repo.Page) ([]domain.User, error)
	ListGuides(ctx context.Context) ([]domain.User, error)
	SetUserRole(ctx context.Context, id primitive.ObjectID, role string) (*mongo.UpdateResult, error)
	UpdateUserProfile(ctx context.Context, email string, p domain.Profile) (*mongo.UpdateResult, error)
	DeleteUser(ctx context.Context, id primitive.ObjectID) (int64, error)
	CountUsers(ctx context.Context) (int64, error)

	CreatePackage(ctx context.Context, p *domain.Package) error
	ListPackages(ctx context.Context) ([]domain.Package, error)
	ListPackagesByType(ctx context.Context, tourType string) ([]domain.Package, error)
	FindPackageByID(ctx context.Context, id primitive.ObjectID) (*domain.Package, error)
	ListTourTypes(ctx context.Context) ([]domain.TourType, error)

	CreateBooking(ctx context.Context, b *domain.Booking) error
	ListBookingsByEmail(ctx context.Context, email string, p *repo.Page) ([]domain.Booking, error)
	ListBookingsByGuide(ctx context.Context, name string, p *repo.Page) ([]domain.Booking, error)
	SetBookingStatus(ctx context.Context, id primitive.ObjectID, status string) (*mongo.UpdateResult, error)
	DeleteBooking(ctx context.Context, id primitive.ObjectID) (int64, error)
	CountBookings(ctx context.Context) (int64, error)

	AddWishlist(ctx context.Context, w *domain.WishlistItem) error
	ListWishlistByEmail(ctx context.Context, email string, p *repo.Page) ([]domain.WishlistItem, error)
	DeleteWishlist(ctx context.Context, id primitive.ObjectID) (int64, error)
	CountWishlist(ctx context.Context) (int64, error)

	CreateStory(ctx context.Context, st *domain.Story) error
	ListStories(ctx context.Context) ([]domain.Story, error)
	FindStoryByID(ctx context.Context, id primitive.ObjectID) (*domain.Story, error)
}

type Handler struct {
	Store     Store
	JWTSecret string
	Events    queue.Publisher
}

func NewHandler(store Store, jwtSecret string, pub queue.Publisher) *Handler {
	return &Handler{Store: store, JWTSecret: jwtSecret, Events: pub}
}

// Token godoc
// @Summary Issue an access token for the signed-in user payload
// @Tags auth
// @Accept json
// @Produce json
// @Param payload body map[string]interface{} true "user payload, at least {email}"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Router /jwt [post]
func (h *Handler) Token(c *gin.Context) {
	var payload map[string]any
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	tok, err := security.IssueToken(h.JWTSecret, payload, 24*time.Hour)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "token error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": tok})
}

func (h *Handler) Root(c *gin.Context) {
	c.String(http.StatusOK, "server is running")
}

func (h *Handler) Healthz(c *gin.Context) {
	if err := h.Store.Ping(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// updateResp mirrors the Node driver's UpdateResult fields so the existing
// frontend keeps working unchanged.
func updateResp(c *gin.Context, res *mongo.UpdateResult, err error) {
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"matchedCount": res.MatchedCount, "modifiedCount": res.ModifiedCount})
}

func deleteResp(c *gin.Context, n int64, err error) {
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"deletedCount": n})
}

func countResp(c *gin.Context, n int64, err error) {
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": n})
}
