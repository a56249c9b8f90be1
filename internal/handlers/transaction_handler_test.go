package handlers

import (
	"bytes"
	"context"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	apperrors "spendwise/internal/errors"
	"spendwise/internal/models"
	"spendwise/internal/services"
)

const testRecordID = "0190a1b2-c3d4-7e5f-8a9b-aaaaaaaaaaaa"

// --- mock transaction service ---

type mockTransactionService struct {
	kind        models.TransactionKind
	addFn       func(userID string, fields services.RecordFields) (*models.Transaction, error)
	listFn      func(userID string, filter services.RecordFilter) ([]models.Transaction, error)
	updateFn    func(userID, id string, fields services.RecordFields) (*models.Transaction, error)
	deleteFn    func(userID, id string) error
	breakdownFn func(userID string) ([]services.CategoryTotal, error)
}

func (m *mockTransactionService) Kind() models.TransactionKind {
	if m.kind == "" {
		return models.TransactionKindExpense
	}
	return m.kind
}

func (m *mockTransactionService) Add(_ context.Context, userID string, fields services.RecordFields) (*models.Transaction, error) {
	if m.addFn != nil {
		return m.addFn(userID, fields)
	}
	return recordFrom(testRecordID, userID, fields), nil
}

func (m *mockTransactionService) List(_ context.Context, userID string, filter services.RecordFilter) ([]models.Transaction, error) {
	if m.listFn != nil {
		return m.listFn(userID, filter)
	}
	return []models.Transaction{}, nil
}

func (m *mockTransactionService) Update(_ context.Context, userID, id string, fields services.RecordFields) (*models.Transaction, error) {
	if m.updateFn != nil {
		return m.updateFn(userID, id, fields)
	}
	return recordFrom(id, userID, fields), nil
}

func (m *mockTransactionService) Delete(_ context.Context, userID, id string) error {
	if m.deleteFn != nil {
		return m.deleteFn(userID, id)
	}
	return nil
}

func (m *mockTransactionService) Breakdown(_ context.Context, userID string) ([]services.CategoryTotal, error) {
	if m.breakdownFn != nil {
		return m.breakdownFn(userID)
	}
	return []services.CategoryTotal{}, nil
}

var _ services.TransactionServicer = (*mockTransactionService)(nil)

func recordFrom(id, userID string, fields services.RecordFields) *models.Transaction {
	return &models.Transaction{
		Base:     models.Base{ID: id},
		UserID:   userID,
		Icon:     fields.Icon,
		Category: fields.Category,
		Amount:   fields.Amount,
		Date:     fields.Date,
	}
}

func setupTransactionRouter(handler *TransactionHandler) *gin.Engine {
	r := gin.New()
	auth := r.Group("", injectUserID(testUserID))
	auth.POST("/records/add", handler.Add)
	auth.GET("/records/get", handler.List)
	auth.GET("/records/breakdown", handler.Breakdown)
	auth.GET("/records/downloadexcel", handler.DownloadExcel)
	auth.GET("/records/downloadpdf", handler.DownloadPDF)
	auth.PUT("/records/:id", handler.Update)
	auth.DELETE("/records/:id", handler.Delete)
	return r
}

func TestTransactionHandler_Add(t *testing.T) {
	t.Run("returns 201 with the created record", func(t *testing.T) {
		var got services.RecordFields
		svc := &mockTransactionService{
			addFn: func(userID string, fields services.RecordFields) (*models.Transaction, error) {
				got = fields
				return recordFrom(testRecordID, userID, fields), nil
			},
		}
		audit := &mockAuditService{}
		r := setupTransactionRouter(NewTransactionHandler(svc, audit))

		rec := doRequest(r, "POST", "/records/add",
			`{"icon":"🍔","category":"Food","amount":12.5,"date":"2024-06-10"}`)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		if got.Category != "Food" || !got.Amount.Equal(decimal.RequireFromString("12.5")) {
			t.Errorf("unexpected fields passed to service: %+v", got)
		}
		if !got.Date.Equal(time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)) {
			t.Errorf("expected date 2024-06-10, got %v", got.Date)
		}
		result := parseJSON(t, rec)
		if result["amount"].(float64) != 12.5 {
			t.Errorf("expected amount 12.5 as a JSON number, got %v", result["amount"])
		}
		if len(audit.entries) != 1 || audit.entries[0].action != "CREATE_EXPENSE" || audit.entries[0].resourceID != testRecordID {
			t.Errorf("unexpected audit entries: %+v", audit.entries)
		}
	})

	t.Run("income takes its label from source", func(t *testing.T) {
		var got services.RecordFields
		svc := &mockTransactionService{
			kind: models.TransactionKindIncome,
			addFn: func(userID string, fields services.RecordFields) (*models.Transaction, error) {
				got = fields
				return recordFrom(testRecordID, userID, fields), nil
			},
		}
		r := setupTransactionRouter(NewTransactionHandler(svc, &mockAuditService{}))

		rec := doRequest(r, "POST", "/records/add", `{"source":"Salary","amount":1000,"date":"2024-06-01"}`)
		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		if got.Category != "Salary" {
			t.Errorf("expected category Salary, got %q", got.Category)
		}
	})

	t.Run("expense ignores source", func(t *testing.T) {
		var got services.RecordFields
		svc := &mockTransactionService{
			addFn: func(userID string, fields services.RecordFields) (*models.Transaction, error) {
				got = fields
				return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "category is required")
			},
		}
		r := setupTransactionRouter(NewTransactionHandler(svc, &mockAuditService{}))

		rec := doRequest(r, "POST", "/records/add", `{"source":"Salary","amount":10,"date":"2024-06-01"}`)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		if got.Category != "" {
			t.Errorf("expense should not use source, got %q", got.Category)
		}
	})

	tests := []struct {
		name string
		body string
	}{
		{"zero amount", `{"category":"Food","amount":0,"date":"2024-06-10"}`},
		{"negative amount", `{"category":"Food","amount":-5,"date":"2024-06-10"}`},
		{"missing amount", `{"category":"Food","date":"2024-06-10"}`},
		{"non-numeric amount", `{"category":"Food","amount":"lots","date":"2024-06-10"}`},
		{"missing date", `{"category":"Food","amount":5}`},
		{"unparseable date", `{"category":"Food","amount":5,"date":"10/06/2024"}`},
	}
	for _, tt := range tests {
		t.Run("returns 400 on "+tt.name, func(t *testing.T) {
			called := false
			svc := &mockTransactionService{
				addFn: func(string, services.RecordFields) (*models.Transaction, error) {
					called = true
					return &models.Transaction{}, nil
				},
			}
			r := setupTransactionRouter(NewTransactionHandler(svc, &mockAuditService{}))

			rec := doRequest(r, "POST", "/records/add", tt.body)
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d", rec.Code)
			}
			assertErrorCode(t, parseJSON(t, rec), "INVALID_INPUT")
			if called {
				t.Error("service must not be called on invalid input")
			}
		})
	}

	t.Run("returns 401 without auth", func(t *testing.T) {
		handler := NewTransactionHandler(&mockTransactionService{}, &mockAuditService{})
		r := gin.New()
		r.POST("/records/add", handler.Add)

		rec := doRequest(r, "POST", "/records/add", `{"category":"Food","amount":5,"date":"2024-06-10"}`)
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", rec.Code)
		}
	})
}

func TestTransactionHandler_List(t *testing.T) {
	t.Run("returns an empty array, not null", func(t *testing.T) {
		r := setupTransactionRouter(NewTransactionHandler(&mockTransactionService{}, &mockAuditService{}))

		rec := doRequest(r, "GET", "/records/get", "")
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if strings.TrimSpace(rec.Body.String()) != "[]" {
			t.Errorf("expected [], got %s", rec.Body.String())
		}
	})

	t.Run("passes filters and paging to the service", func(t *testing.T) {
		var captured services.RecordFilter
		svc := &mockTransactionService{
			listFn: func(_ string, filter services.RecordFilter) ([]models.Transaction, error) {
				captured = filter
				return []models.Transaction{}, nil
			},
		}
		r := setupTransactionRouter(NewTransactionHandler(svc, &mockAuditService{}))

		rec := doRequest(r, "GET", "/records/get?from_date=2024-01-01&to_date=2024-03-31&category=Food&page=2&page_size=10", "")
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if captured.StartDate == nil || !captured.StartDate.Equal(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)) {
			t.Errorf("unexpected start date %v", captured.StartDate)
		}
		if captured.EndDate == nil || !captured.EndDate.Equal(time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)) {
			t.Errorf("unexpected end date %v", captured.EndDate)
		}
		if captured.Category != "Food" || captured.Limit != 10 || captured.Offset != 10 {
			t.Errorf("unexpected filter %+v", captured)
		}
	})

	t.Run("no paging means no limit", func(t *testing.T) {
		var captured services.RecordFilter
		svc := &mockTransactionService{
			listFn: func(_ string, filter services.RecordFilter) ([]models.Transaction, error) {
				captured = filter
				return []models.Transaction{}, nil
			},
		}
		r := setupTransactionRouter(NewTransactionHandler(svc, &mockAuditService{}))

		doRequest(r, "GET", "/records/get", "")
		if captured.Limit > 0 || captured.Offset != 0 {
			t.Errorf("expected unbounded query, got %+v", captured)
		}
	})

	for _, query := range []string{
		"from_date=not-a-date",
		"to_date=2024-13-01",
		"from_date=2024-05-01&to_date=2024-04-01",
		"page_size=-1",
		"page_size=1000",
	} {
		t.Run("returns 400 on "+query, func(t *testing.T) {
			r := setupTransactionRouter(NewTransactionHandler(&mockTransactionService{}, &mockAuditService{}))
			rec := doRequest(r, "GET", "/records/get?"+query, "")
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d", rec.Code)
			}
		})
	}
}

func TestTransactionHandler_Breakdown(t *testing.T) {
	svc := &mockTransactionService{
		breakdownFn: func(userID string) ([]services.CategoryTotal, error) {
			if userID != testUserID {
				t.Errorf("expected breakdown for %s, got %s", testUserID, userID)
			}
			return []services.CategoryTotal{
				{Category: "Rent", Total: decimal.RequireFromString("900"), Count: 1},
				{Category: "Food", Total: decimal.RequireFromString("150.5"), Count: 3},
			}, nil
		},
	}
	r := setupTransactionRouter(NewTransactionHandler(svc, &mockAuditService{}))

	rec := doRequest(r, "GET", "/records/breakdown", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if got := strings.TrimSpace(rec.Body.String()); got != `[{"category":"Rent","total":900,"count":1},{"category":"Food","total":150.5,"count":3}]` {
		t.Errorf("unexpected body %s", got)
	}
}

func TestTransactionHandler_Update(t *testing.T) {
	t.Run("returns 200 with the updated record", func(t *testing.T) {
		audit := &mockAuditService{}
		r := setupTransactionRouter(NewTransactionHandler(&mockTransactionService{}, audit))

		rec := doRequest(r, "PUT", "/records/"+testRecordID, `{"category":"Rent","amount":900,"date":"2024-06-01"}`)
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if parseJSON(t, rec)["category"] != "Rent" {
			t.Error("expected updated category in response")
		}
		if len(audit.entries) != 1 || audit.entries[0].action != "UPDATE_EXPENSE" {
			t.Errorf("unexpected audit entries: %+v", audit.entries)
		}
	})

	t.Run("returns 403 for another user's record", func(t *testing.T) {
		svc := &mockTransactionService{
			updateFn: func(_, _ string, _ services.RecordFields) (*models.Transaction, error) {
				return nil, apperrors.ErrRecordNotOwned
			},
		}
		audit := &mockAuditService{}
		r := setupTransactionRouter(NewTransactionHandler(svc, audit))

		rec := doRequest(r, "PUT", "/records/"+testRecordID, `{"category":"Rent","amount":900,"date":"2024-06-01"}`)
		if rec.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "RECORD_NOT_OWNED")
		if len(audit.entries) != 0 {
			t.Error("failed update must not be audited")
		}
	})

	t.Run("returns 400 on invalid id", func(t *testing.T) {
		r := setupTransactionRouter(NewTransactionHandler(&mockTransactionService{}, &mockAuditService{}))
		rec := doRequest(r, "PUT", "/records/abc", `{"category":"Rent","amount":900,"date":"2024-06-01"}`)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}

func TestTransactionHandler_Delete(t *testing.T) {
	t.Run("returns 200 with a kind-specific message", func(t *testing.T) {
		svc := &mockTransactionService{kind: models.TransactionKindIncome}
		audit := &mockAuditService{}
		r := setupTransactionRouter(NewTransactionHandler(svc, audit))

		rec := doRequest(r, "DELETE", "/records/"+testRecordID, "")
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if msg := parseJSON(t, rec)["message"]; msg != "Income deleted successfully" {
			t.Errorf("unexpected message: %v", msg)
		}
		if len(audit.entries) != 1 || audit.entries[0].action != "DELETE_INCOME" || audit.entries[0].resourceType != "income" {
			t.Errorf("unexpected audit entries: %+v", audit.entries)
		}
	})

	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"not found", apperrors.ErrExpenseNotFound, http.StatusNotFound, "EXPENSE_NOT_FOUND"},
		{"not owner", apperrors.ErrRecordNotOwned, http.StatusForbidden, "RECORD_NOT_OWNED"},
	}
	for _, tt := range tests {
		t.Run("maps "+tt.name, func(t *testing.T) {
			svc := &mockTransactionService{deleteFn: func(_, _ string) error { return tt.err }}
			r := setupTransactionRouter(NewTransactionHandler(svc, &mockAuditService{}))

			rec := doRequest(r, "DELETE", "/records/"+testRecordID, "")
			if rec.Code != tt.status {
				t.Fatalf("expected %d, got %d", tt.status, rec.Code)
			}
			assertErrorCode(t, parseJSON(t, rec), tt.code)
		})
	}

	t.Run("hides internal errors", func(t *testing.T) {
		svc := &mockTransactionService{deleteFn: func(_, _ string) error {
			return apperrors.Wrap(apperrors.ErrInternalServer, context.DeadlineExceeded)
		}}
		r := setupTransactionRouter(NewTransactionHandler(svc, &mockAuditService{}))

		rec := doRequest(r, "DELETE", "/records/"+testRecordID, "")
		if rec.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", rec.Code)
		}
		if strings.Contains(rec.Body.String(), "deadline") {
			t.Errorf("internal error leaked: %s", rec.Body.String())
		}
	})
}

func TestTransactionHandler_Downloads(t *testing.T) {
	records := []models.Transaction{
		{Category: "Salary", Amount: decimal.RequireFromString("1000"), Date: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)},
		{Category: "Bonus", Amount: decimal.RequireFromString("250.50"), Date: time.Date(2024, 5, 15, 0, 0, 0, 0, time.UTC)},
	}
	svc := &mockTransactionService{
		kind: models.TransactionKindIncome,
		listFn: func(_ string, filter services.RecordFilter) ([]models.Transaction, error) {
			if filter.Limit > 0 || filter.StartDate != nil {
				t.Errorf("exports must cover every record, got filter %+v", filter)
			}
			return records, nil
		},
	}
	r := setupTransactionRouter(NewTransactionHandler(svc, &mockAuditService{}))

	t.Run("excel", func(t *testing.T) {
		rec := doRequest(r, "GET", "/records/downloadexcel", "")
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if cd := rec.Header().Get("Content-Disposition"); cd != `attachment; filename="income_details.xlsx"` {
			t.Errorf("unexpected Content-Disposition %q", cd)
		}
		f, err := excelize.OpenReader(bytes.NewReader(rec.Body.Bytes()))
		if err != nil {
			t.Fatalf("open workbook: %v", err)
		}
		defer f.Close()
		rows, err := f.GetRows("Income Data")
		if err != nil {
			t.Fatalf("GetRows: %v", err)
		}
		if len(rows) != 3 || rows[0][0] != "Source" || rows[1][0] != "Salary" || rows[2][2] != "2024-05-15" {
			t.Errorf("unexpected rows %v", rows)
		}
	})

	t.Run("pdf", func(t *testing.T) {
		rec := doRequest(r, "GET", "/records/downloadpdf", "")
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if ct := rec.Header().Get("Content-Type"); ct != "application/pdf" {
			t.Errorf("unexpected Content-Type %q", ct)
		}
		if !bytes.HasPrefix(rec.Body.Bytes(), []byte("%PDF-")) {
			t.Error("body is not a PDF")
		}
	})
}
