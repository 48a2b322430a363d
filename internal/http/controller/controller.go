package controller

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lookai-app/backend/internal/repository"
)

// StoreHealth verifies connectivity to the relational store.
type StoreHealth interface {
	Now(ctx context.Context) (time.Time, error)
}

// Controller handles service-level HTTP requests.
type Controller struct {
	health StoreHealth
}

// New creates a new Controller with the given store health checker.
func New(health StoreHealth) *Controller {
	return &Controller{
		health: health,
	}
}

// Health handles the HTTP GET request for the health check endpoint. It
// round-trips a trivial query and reports the store's current time.
func (con *Controller) Health(c *gin.Context) {
	storeTime, err := con.health.Now(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"time":   storeTime.Format(time.RFC3339),
	})
}

// Ping responds with the static service banner. Unlike Health it does not
// touch the store.
func (con *Controller) Ping(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": "LookAI backend",
	})
}

// writeError maps the repository error taxonomy to HTTP responses: missing
// caller input is a client error, everything else is a server error with the
// storage message passed through.
func writeError(c *gin.Context, err error) {
	var validationErr *repository.ValidationError
	if errors.As(err, &validationErr) {
		c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Error()})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}
