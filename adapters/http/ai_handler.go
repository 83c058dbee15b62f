package http

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	aiUC "github.com/khoahotran/portfolio-api/internal/application/usecase/ai"
	"github.com/khoahotran/portfolio-api/pkg/apperror"
)

type AIHandler struct {
	ai *aiUC.AIUseCase
}

func NewAIHandler(ai *aiUC.AIUseCase) *AIHandler {
	return &AIHandler{ai: ai}
}

func malformedBody(err error) error {
	return apperror.NewValidation("request body is not valid JSON", map[string]string{"body": err.Error()}, err)
}

func (h *AIHandler) Status(c *gin.Context) {
	c.JSON(http.StatusOK, h.ai.Status())
}

func (h *AIHandler) Chat(c *gin.Context) {
	var req aiUC.ChatInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(malformedBody(err))
		return
	}

	out, err := h.ai.Chat(c.Request.Context(), req, GetRequestID(c))
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *AIHandler) Recommendations(c *gin.Context) {
	recs, err := h.ai.Recommendations(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"recommendations": recs})
}

// Search takes {"query": ...} in the body. When the body carries no query,
// ?query= is used instead.
func (h *AIHandler) Search(c *gin.Context) {
	var req aiUC.SearchInput
	if err := c.ShouldBindJSON(&req); err != nil {
		if !errors.Is(err, io.EOF) {
			c.Error(malformedBody(err))
			return
		}
	}
	if req.Query == "" {
		req.Query = c.Query("query")
	}

	out, err := h.ai.Search(c.Request.Context(), req, GetRequestID(c))
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, out)
}
