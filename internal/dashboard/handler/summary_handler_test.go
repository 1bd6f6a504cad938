package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/ferreteria-cash-recon/internal/businessday"
	"github.com/ferreteria-cash-recon/internal/dashboard/service"
	"github.com/ferreteria-cash-recon/internal/domain/records"
	"github.com/ferreteria-cash-recon/internal/reporting"
)

// MockSummaryService mocks service.SummaryService
type MockSummaryService struct{ mock.Mock }

func (m *MockSummaryService) GetDailySummary(ctx context.Context, date businessday.Date) (*service.DailySummaryReport, error) {
	args := m.Called(ctx, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.DailySummaryReport), args.Error(1)
}

func newSummaryRouter(svc service.SummaryService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	h := NewSummaryHandler(newTestLogger(), svc)
	router.GET("/api/v1/summary/daily", h.GetDaily)
	return router
}

func emptyReport(date businessday.Date) *service.DailySummaryReport {
	summary := reporting.BuildDailySummary(date, reporting.Inputs{
		Sales:              []records.Sale{},
		Credits:            []records.CreditGrant{},
		ReceivablePayments: []records.ReceivablePayment{},
		SupplierPayments:   []records.PayablePayment{},
		Expenses:           []records.Expense{},
		Transfers:          records.EmptyTransferSet(),
	})
	return &service.DailySummaryReport{
		Summary: summary,
		Alerts:  reporting.DetectDiscrepancies(summary),
	}
}

func TestSummaryHandler_GetDaily(t *testing.T) {
	t.Run("ExplicitDate", func(t *testing.T) {
		svc := new(MockSummaryService)
		router := newSummaryRouter(svc)
		date := mustDate(t, "2024-03-15")

		svc.On("GetDailySummary", mock.Anything, date).Return(emptyReport(date), nil)

		req, _ := http.NewRequest(http.MethodGet, "/api/v1/summary/daily?date=2024-03-15", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var resp Response
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		data := resp.Data.(map[string]interface{})
		summary := data["summary"].(map[string]interface{})
		period := summary["period"].(map[string]interface{})
		assert.Equal(t, "2024-03-15", period["date"])
		assert.NotNil(t, data["alerts"])
		svc.AssertExpectations(t)
	})

	t.Run("DefaultsToToday", func(t *testing.T) {
		svc := new(MockSummaryService)
		router := newSummaryRouter(svc)
		today := businessday.Today()

		svc.On("GetDailySummary", mock.Anything, today).Return(emptyReport(today), nil)

		req, _ := http.NewRequest(http.MethodGet, "/api/v1/summary/daily", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		svc.AssertExpectations(t)
	})

	t.Run("BadDate", func(t *testing.T) {
		svc := new(MockSummaryService)
		router := newSummaryRouter(svc)

		req, _ := http.NewRequest(http.MethodGet, "/api/v1/summary/daily?date=03/15/2024", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		svc.AssertNotCalled(t, "GetDailySummary")
	})
}
