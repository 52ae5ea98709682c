package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/tazhibayda/tour-service/internal/repo"
)

// parsePage applies skip/limit only when both page and size are present,
// parse as integers, and size is positive. Anything else means "no
// pagination" and the store query goes out without skip/limit, returning the
// full matching set. size=0 falls in the latter bucket: the driver reads a
// zero limit as "no limit" anyway, so the query shape might as well say so.
func parsePage(c *gin.Context) *repo.Page {
	pageStr, okPage := c.GetQuery("page")
	sizeStr, okSize := c.GetQuery("size")
	if !okPage || !okSize {
		return nil
	}
	page, err := strconv.ParseInt(pageStr, 10, 64)
	if err != nil || page < 0 {
		return nil
	}
	size, err := strconv.ParseInt(sizeStr, 10, 64)
	if err != nil || size <= 0 {
		return nil
	}
	return &repo.Page{Skip: page * size, Limit: size}
}

// parseID turns the :id path param into an ObjectID, answering 400 instead of
// letting a malformed hex string travel to the store.
func parseID(c *gin.Context) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return primitive.NilObjectID, false
	}
	return id, true
}
