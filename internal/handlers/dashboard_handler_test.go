package handlers

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"spendwise/internal/models"
	"spendwise/internal/services"
)

type mockDashboardService struct {
	summaryFn   func(userID string) (*services.DashboardSummary, error)
	analyticsFn func(userID string) (*services.DashboardAnalytics, error)
}

func (m *mockDashboardService) Summary(_ context.Context, userID string) (*services.DashboardSummary, error) {
	if m.summaryFn != nil {
		return m.summaryFn(userID)
	}
	return &services.DashboardSummary{}, nil
}

func (m *mockDashboardService) Analytics(_ context.Context, userID string) (*services.DashboardAnalytics, error) {
	if m.analyticsFn != nil {
		return m.analyticsFn(userID)
	}
	return &services.DashboardAnalytics{}, nil
}

var _ services.DashboardServicer = (*mockDashboardService)(nil)

func setupDashboardRouter(handler *DashboardHandler) *gin.Engine {
	r := gin.New()
	auth := r.Group("", injectUserID(testUserID))
	auth.GET("/dashboard", handler.Summary)
	auth.GET("/dashboard/analytics", handler.Analytics)
	return r
}

func TestDashboardHandler_Summary(t *testing.T) {
	t.Run("returns the summary for the authenticated user", func(t *testing.T) {
		var requested string
		svc := &mockDashboardService{
			summaryFn: func(userID string) (*services.DashboardSummary, error) {
				requested = userID
				return &services.DashboardSummary{
					TotalBalance:       decimal.RequireFromString("1500"),
					TotalIncome:        decimal.RequireFromString("2000"),
					TotalExpenses:      decimal.RequireFromString("500"),
					RecentTransactions: []models.Transaction{},
				}, nil
			},
		}
		rec := doRequest(setupDashboardRouter(NewDashboardHandler(svc)), "GET", "/dashboard", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if requested != testUserID {
			t.Errorf("expected summary for %s, got %s", testUserID, requested)
		}
		result := parseJSON(t, rec)
		if result["totalBalance"].(float64) != 1500 {
			t.Errorf("expected totalBalance 1500, got %v", result["totalBalance"])
		}
	})

	t.Run("hides unexpected errors", func(t *testing.T) {
		svc := &mockDashboardService{
			summaryFn: func(string) (*services.DashboardSummary, error) {
				return nil, errors.New("connection refused")
			},
		}
		rec := doRequest(setupDashboardRouter(NewDashboardHandler(svc)), "GET", "/dashboard", "")

		if rec.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INTERNAL_ERROR")
	})

	t.Run("returns 401 without auth", func(t *testing.T) {
		r := gin.New()
		r.GET("/dashboard", NewDashboardHandler(&mockDashboardService{}).Summary)

		rec := doRequest(r, "GET", "/dashboard", "")
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", rec.Code)
		}
	})
}

func TestDashboardHandler_Analytics(t *testing.T) {
	rec := doRequest(setupDashboardRouter(NewDashboardHandler(&mockDashboardService{})), "GET", "/dashboard/analytics", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if _, ok := parseJSON(t, rec)["spendingOverview"]; !ok {
		t.Error("expected spendingOverview in analytics payload")
	}
}
