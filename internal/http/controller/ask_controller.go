package controller

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lookai-app/backend/internal/metrics"
)

// TextGenerator produces free-text answers for user prompts.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// AskController proxies natural-language questions to the text-generation provider.
type AskController struct {
	generator TextGenerator
}

// NewAskController creates a new AskController with the given generator.
func NewAskController(generator TextGenerator) *AskController {
	return &AskController{
		generator: generator,
	}
}

// AskRequest represents the request body for an AI question.
type AskRequest struct {
	Prompt string `json:"prompt"`
}

// Ask handles the HTTP POST request for the AI proxy endpoint.
func (ac *AskController) Ask(c *gin.Context) {
	var req AskRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Prompt == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "prompt is required"})
		return
	}

	answer, err := ac.generator.Generate(c.Request.Context(), req.Prompt)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	metrics.AIRequests.Inc()

	c.JSON(http.StatusOK, gin.H{"answer": answer})
}
