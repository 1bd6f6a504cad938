package dashboard

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ferreteria-cash-recon/internal/dashboard/handler"
	"github.com/ferreteria-cash-recon/internal/dashboard/middleware"
)

// setupRouter configures API routes and middleware for the application
func setupRouter(
	logger *slog.Logger,
	r *gin.Engine,
	summaryHandler *handler.SummaryHandler,
	cashDayHandler *handler.CashDayHandler,
) {
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.CorrelationID())
	r.Use(middleware.Identity())
	r.Use(middleware.Logger(logger))

	// API v1 endpoints
	v1 := r.Group("/api/v1")
	{
		// Daily reconciliation summary
		summary := v1.Group("/summary")
		{
			summary.GET("/daily", summaryHandler.GetDaily)
		}

		// Opening and closing operations
		cashDays := v1.Group("/cash-days")
		{
			cashDays.GET("/closings", cashDayHandler.ListClosings)
			cashDays.GET("/:date/opening", cashDayHandler.GetOpening)
			cashDays.PUT("/:date/opening", cashDayHandler.PutOpening)
			cashDays.GET("/:date/closing", cashDayHandler.GetClosing)
			cashDays.POST("/:date/closing", cashDayHandler.PostClosing)
			cashDays.GET("/:date/prior-closing", cashDayHandler.GetPriorClosing)
		}
	}

	// Health check endpoint for monitoring
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "timestamp": time.Now().UTC()})
	})
}
