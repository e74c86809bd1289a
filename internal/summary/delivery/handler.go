package delivery

import (
	"errors"
	"net/http"
	"strconv"

	summarydomain "aimeet-backend/internal/summary/domain"
	"aimeet-backend/internal/summary/dto"
	"aimeet-backend/internal/summary/repository"
	"aimeet-backend/internal/summary/usecase"

	"github.com/gin-gonic/gin"
)

// SummaryHandler handles the summary pipeline API endpoints
type SummaryHandler struct {
	summaryUsecase usecase.SummaryUsecase
}

// NewSummaryHandler creates a new SummaryHandler
func NewSummaryHandler(summaryUsecase usecase.SummaryUsecase) *SummaryHandler {
	return &SummaryHandler{
		summaryUsecase: summaryUsecase,
	}
}

// POST /api/summarize
// Summarize runs the uploaded transcript through the AI provider and returns
// the editable summary text.
func (h *SummaryHandler) Summarize(c *gin.Context) {
	var req dto.SummarizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	summary, err := h.summaryUsecase.Summarize(c.Request.Context(), req.Transcript, req.Prompt)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"summary": "Error generating summary.",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, dto.SummarizeResponse{Summary: summary})
}

// POST /api/send-email
// Distribute emails the edited summary to the recipient list and records it
// in the history.
func (h *SummaryHandler) Distribute(c *gin.Context) {
	var req dto.DistributeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	result, err := h.summaryUsecase.Distribute(c.Request.Context(), req.Summary, req.Recipients)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, summarydomain.ErrEmptySummary) || errors.Is(err, summarydomain.ErrNoRecipients) {
			status = http.StatusBadRequest
		}
		c.JSON(status, gin.H{"success": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, dto.DistributeResponse{
		Success:  true,
		Receipt:  result.Receipt,
		Recorded: result.Recorded,
	})
}

// GET /api/history
// History returns the most recently distributed summaries, newest first.
func (h *SummaryHandler) History(c *gin.Context) {
	limit := repository.DefaultHistoryLimit
	if raw := c.Query("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	records, err := h.summaryUsecase.FetchHistory(c.Request.Context(), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, dto.HistoryResponse{
		Success: true,
		History: records,
	})
}
