package handler

import (
	"errors"
	"log/slog"

	"github.com/gin-gonic/gin"

	"github.com/ferreteria-cash-recon/internal/businessday"
	"github.com/ferreteria-cash-recon/internal/dashboard/service"
	"github.com/ferreteria-cash-recon/internal/domain/cashday"
)

// CashDayHandler handles HTTP requests for opening and closing operations
type CashDayHandler struct {
	cashDayService service.CashDayService
	logger         *slog.Logger
}

// NewCashDayHandler creates a new cash day handler
func NewCashDayHandler(logger *slog.Logger, cashDayService service.CashDayService) *CashDayHandler {
	return &CashDayHandler{
		cashDayService: cashDayService,
		logger:         logger,
	}
}

// dateParam parses the :date path parameter, responding 400 on bad input.
func (h *CashDayHandler) dateParam(c *gin.Context) (businessday.Date, bool) {
	raw := c.Param("date")
	date, err := businessday.ParseDate(raw)
	if err != nil {
		h.logger.Error("Invalid date parameter", "date", raw, "error", err)
		RespondBadRequest(c, "Invalid date, expected YYYY-MM-DD")
		return businessday.Date{}, false
	}
	return date, true
}

// GetOpening retrieves the opening balance for a date, returning 404 if not declared
func (h *CashDayHandler) GetOpening(c *gin.Context) {
	date, ok := h.dateParam(c)
	if !ok {
		return
	}

	opening, err := h.cashDayService.GetOpening(c.Request.Context(), date)
	if err != nil {
		h.logger.Error("Failed to get opening balance", "date", date.String(), "error", err)
		RespondInternalError(c)
		return
	}
	if opening == nil {
		RespondNotFound(c, "No opening balance declared for this date")
		return
	}

	RespondOK(c, mapOpeningToResponse(opening))
}

// PutOpening declares or overwrites the opening balance for a date
func (h *CashDayHandler) PutOpening(c *gin.Context) {
	date, ok := h.dateParam(c)
	if !ok {
		return
	}

	var req RecordOpeningRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Invalid request body", "error", err)
		RespondBadRequest(c, "Invalid request body: "+err.Error())
		return
	}
	if req.Amount.IsNegative() {
		RespondBadRequest(c, "Opening amount cannot be negative")
		return
	}

	opening, err := h.cashDayService.RecordOpening(c.Request.Context(), date, service.OpeningInput{
		Amount: req.Amount,
		Notes:  req.Notes,
	})
	if err != nil {
		h.logger.Error("Failed to record opening balance", "date", date.String(), "error", err)
		RespondInternalError(c)
		return
	}

	RespondOK(c, mapOpeningToResponse(opening))
}

// GetClosing retrieves the closing record for a date, returning 404 if the day is open
func (h *CashDayHandler) GetClosing(c *gin.Context) {
	date, ok := h.dateParam(c)
	if !ok {
		return
	}

	closing, err := h.cashDayService.GetClosing(c.Request.Context(), date)
	if err != nil {
		h.logger.Error("Failed to get closing record", "date", date.String(), "error", err)
		RespondInternalError(c)
		return
	}
	if closing == nil {
		RespondNotFound(c, "No closing record for this date")
		return
	}

	RespondOK(c, mapClosingToResponse(closing))
}

// PostClosing closes the day: recomputes the summary and stores the snapshot
func (h *CashDayHandler) PostClosing(c *gin.Context) {
	date, ok := h.dateParam(c)
	if !ok {
		return
	}

	var req CloseDayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Invalid request body", "error", err)
		RespondBadRequest(c, "Invalid request body: "+err.Error())
		return
	}
	if req.PhysicalCashCounted.IsNegative() {
		RespondBadRequest(c, "Counted cash cannot be negative")
		return
	}

	closing, err := h.cashDayService.CloseDay(c.Request.Context(), date, service.ClosingInput{
		PhysicalCashCounted: req.PhysicalCashCounted,
		Notes:               req.Notes,
	})
	if err != nil {
		if errors.Is(err, cashday.ErrMissingOpeningLink) {
			RespondUnprocessable(c, "Declare an opening balance before closing the day")
			return
		}
		var existsErr cashday.ErrClosingExists
		if errors.As(err, &existsErr) {
			RespondConflict(c, "Day already closed: "+existsErr.Date.String())
			return
		}
		h.logger.Error("Failed to close day", "date", date.String(), "error", err)
		RespondInternalError(c)
		return
	}

	RespondCreated(c, mapClosingToResponse(closing))
}

// ListClosings retrieves closings in an inclusive date range, ascending by date
func (h *CashDayHandler) ListClosings(c *gin.Context) {
	from, err := businessday.ParseDate(c.Query("from"))
	if err != nil {
		RespondBadRequest(c, "Invalid 'from' date, expected YYYY-MM-DD")
		return
	}
	to, err := businessday.ParseDate(c.Query("to"))
	if err != nil {
		RespondBadRequest(c, "Invalid 'to' date, expected YYYY-MM-DD")
		return
	}
	if to.Before(from) {
		RespondBadRequest(c, "'to' date precedes 'from' date")
		return
	}

	closings, err := h.cashDayService.ListClosings(c.Request.Context(), from, to)
	if err != nil {
		h.logger.Error("Failed to list closing records", "from", from.String(), "to", to.String(), "error", err)
		RespondInternalError(c)
		return
	}

	response := ClosingListResponse{Closings: make([]ClosingRecordResponse, 0, len(closings))}
	for i := range closings {
		response.Closings = append(response.Closings, mapClosingToResponse(&closings[i]))
	}

	RespondOK(c, response)
}

// GetPriorClosing retrieves the most recent closing strictly before the date.
// The closing's counted drawer seeds the next day's suggested opening amount.
func (h *CashDayHandler) GetPriorClosing(c *gin.Context) {
	date, ok := h.dateParam(c)
	if !ok {
		return
	}

	closing, err := h.cashDayService.PriorClosing(c.Request.Context(), date)
	if err != nil {
		h.logger.Error("Failed to get prior closing", "date", date.String(), "error", err)
		RespondInternalError(c)
		return
	}
	if closing == nil {
		RespondNotFound(c, "No closing exists before this date")
		return
	}

	RespondOK(c, mapClosingToResponse(closing))
}
