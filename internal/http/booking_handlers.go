package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tazhibayda/tour-service/internal/domain"
	"github.com/tazhibayda/tour-service/internal/metrics"
	"github.com/tazhibayda/tour-service/internal/queue"
)

// CreateBooking godoc
// @Summary Request a booking
// @Tags bookings
// @Accept json
// @Produce json
// @Param payload body domain.Booking true "booking"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Router /booking [post]
func (h *Handler) CreateBooking(c *gin.Context) {
	var b domain.Booking
	if err := c.ShouldBindJSON(&b); err != nil || b.Email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email required"})
		return
	}
	if b.Status == "" {
		b.Status = domain.BookingPending
	}
	if err := h.Store.CreateBooking(c.Request.Context(), &b); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
		return
	}
	metrics.BookingsCreated.Inc()
	_ = h.Events.Publish(c.Request.Context(), queue.Exchange, "booking.created",
		queue.BookingCreated{Email: b.Email, TourGuide: b.TourGuide, TripTitle: b.TripTitle})
	c.JSON(http.StatusOK, gin.H{"insertedId": b.ID})
}

// ListBookings pages a traveler's bookings by the email query param.
func (h *Handler) ListBookings(c *gin.Context) {
	bookings, err := h.Store.ListBookingsByEmail(c.Request.Context(), c.Query("email"), parsePage(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// GuideBookings pages the bookings assigned to the guide named in the query.
func (h *Handler) GuideBookings(c *gin.Context) {
	bookings, err := h.Store.ListBookingsByGuide(c.Request.Context(), c.Query("name"), parsePage(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
		return
	}
	c.JSON(http.StatusOK, bookings)
}

func (h *Handler) AcceptBooking(c *gin.Context) {
	h.setBookingStatus(c, domain.BookingAccepted)
}

func (h *Handler) RejectBooking(c *gin.Context) {
	h.setBookingStatus(c, domain.BookingRejected)
}

func (h *Handler) setBookingStatus(c *gin.Context, status string) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	res, err := h.Store.SetBookingStatus(c.Request.Context(), id, status)
	if err == nil {
		metrics.BookingsDecided.WithLabelValues(status).Inc()
		_ = h.Events.Publish(c.Request.Context(), queue.Exchange, "booking.status",
			queue.BookingStatusChanged{BookingID: id.Hex(), Status: status})
	}
	updateResp(c, res, err)
}

func (h *Handler) DeleteBooking(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	n, err := h.Store.DeleteBooking(c.Request.Context(), id)
	deleteResp(c, n, err)
}

// BookingCount is a global estimated count, not per-user.
func (h *Handler) BookingCount(c *gin.Context) {
	n, err := h.Store.CountBookings(c.Request.Context())
	countResp(c, n, err)
}
