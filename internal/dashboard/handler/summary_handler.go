package handler

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	"github.com/ferreteria-cash-recon/internal/businessday"
	"github.com/ferreteria-cash-recon/internal/dashboard/service"
)

// SummaryHandler handles HTTP requests for the daily reconciliation summary
type SummaryHandler struct {
	summaryService service.SummaryService
	logger         *slog.Logger
}

// NewSummaryHandler creates a new summary handler
func NewSummaryHandler(logger *slog.Logger, summaryService service.SummaryService) *SummaryHandler {
	return &SummaryHandler{
		summaryService: summaryService,
		logger:         logger,
	}
}

// GetDaily computes the summary for the requested date, defaulting to the
// current operating day when no date is given.
func (h *SummaryHandler) GetDaily(c *gin.Context) {
	date := businessday.Today()
	if raw := c.Query("date"); raw != "" {
		parsed, err := businessday.ParseDate(raw)
		if err != nil {
			h.logger.Error("Invalid summary date", "date", raw, "error", err)
			RespondBadRequest(c, "Invalid date, expected YYYY-MM-DD")
			return
		}
		date = parsed
	}

	report, err := h.summaryService.GetDailySummary(c.Request.Context(), date)
	if err != nil {
		h.logger.Error("Failed to compute daily summary", "date", date.String(), "error", err)
		RespondInternalError(c)
		return
	}

	RespondOK(c, report)
}
