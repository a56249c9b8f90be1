package services

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"spendwise/internal/models"
	"spendwise/internal/testutil"
)

func TestTransactionService_Add(t *testing.T) {
	ctx := context.Background()
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewTransactionService(models.TransactionKindExpense, NewRecordStore(db))
	user := testutil.CreateTestUser(t, db)

	t.Run("valid", func(t *testing.T) {
		record, err := svc.Add(ctx, user.ID, RecordFields{
			Icon:     " 🍕 ",
			Category: " Food ",
			Amount:   decimal.RequireFromString("19.99"),
			Date:     mustDate(t, "2024-04-01"),
		})
		testutil.AssertNoError(t, err)
		if record.UserID != user.ID {
			t.Errorf("expected owner %s, got %s", user.ID, record.UserID)
		}
		if record.Category != "Food" || record.Icon != "🍕" {
			t.Errorf("expected trimmed fields, got %q / %q", record.Category, record.Icon)
		}
	})

	tests := []struct {
		name   string
		fields RecordFields
	}{
		{"blank_category", RecordFields{Category: "  ", Amount: decimal.NewFromInt(1), Date: time.Now()}},
		{"zero_amount", RecordFields{Category: "Food", Amount: decimal.Zero, Date: time.Now()}},
		{"negative_amount", RecordFields{Category: "Food", Amount: decimal.NewFromInt(-3), Date: time.Now()}},
		{"sub_cent_amount", RecordFields{Category: "Food", Amount: decimal.RequireFromString("1.005"), Date: time.Now()}},
		{"missing_date", RecordFields{Category: "Food", Amount: decimal.NewFromInt(1)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Add(ctx, user.ID, tt.fields)
			testutil.AssertAppError(t, err, "INVALID_INPUT")
		})
	}
}

func TestTransactionService_Update(t *testing.T) {
	ctx := context.Background()
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewTransactionService(models.TransactionKindIncome, NewRecordStore(db))

	owner := testutil.CreateTestUser(t, db)
	intruder := testutil.CreateTestUser(t, db)
	record := testutil.CreateTestIncome(t, db, owner.ID, "Salary", "1000", "2024-01-31")
	fields := RecordFields{Category: "Bonus", Amount: decimal.NewFromInt(5), Date: mustDate(t, "2024-02-01")}

	t.Run("owner", func(t *testing.T) {
		updated, err := svc.Update(ctx, owner.ID, record.ID, fields)
		testutil.AssertNoError(t, err)
		if updated.Category != "Bonus" {
			t.Errorf("expected Bonus, got %s", updated.Category)
		}
	})

	t.Run("not_owner", func(t *testing.T) {
		_, err := svc.Update(ctx, intruder.ID, record.ID, RecordFields{Category: "Stolen", Amount: decimal.NewFromInt(1), Date: time.Now()})
		testutil.AssertAppError(t, err, "RECORD_NOT_OWNED")
	})

	t.Run("absent", func(t *testing.T) {
		_, err := svc.Update(ctx, owner.ID, "0190a1b2-0000-7000-8000-000000000000", fields)
		testutil.AssertAppError(t, err, "INCOME_NOT_FOUND")
	})
}

func TestTransactionService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("not_owner_leaves_storage_unchanged", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTransactionService(models.TransactionKindExpense, NewRecordStore(db))

		owner := testutil.CreateTestUser(t, db)
		intruder := testutil.CreateTestUser(t, db)
		record := testutil.CreateTestExpense(t, db, owner.ID, "Food", "42", "2024-01-10")

		err := svc.Delete(ctx, intruder.ID, record.ID)
		testutil.AssertAppError(t, err, "RECORD_NOT_OWNED")

		var stored models.Transaction
		if err := db.Table("expenses").Where("id = ?", record.ID).First(&stored).Error; err != nil {
			t.Fatalf("record should still exist: %v", err)
		}
		testutil.AssertDecimal(t, stored.Amount, "42")
		if stored.Category != "Food" || stored.UserID != owner.ID {
			t.Errorf("record was modified: %+v", stored)
		}
	})

	t.Run("owner_then_second_delete_not_found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTransactionService(models.TransactionKindExpense, NewRecordStore(db))

		owner := testutil.CreateTestUser(t, db)
		record := testutil.CreateTestExpense(t, db, owner.ID, "Food", "42", "2024-01-10")

		testutil.AssertNoError(t, svc.Delete(ctx, owner.ID, record.ID))
		err := svc.Delete(ctx, owner.ID, record.ID)
		testutil.AssertAppError(t, err, "EXPENSE_NOT_FOUND")
	})
}

func TestTransactionService_ListAndBreakdown(t *testing.T) {
	ctx := context.Background()
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewTransactionService(models.TransactionKindExpense, NewRecordStore(db))

	user := testutil.CreateTestUser(t, db)
	testutil.CreateTestExpense(t, db, user.ID, "Food", "100", "2024-01-05")
	testutil.CreateTestExpense(t, db, user.ID, "Transport", "50", "2024-01-10")
	testutil.CreateTestExpense(t, db, user.ID, "Food", "50", "2024-01-20")

	records, err := svc.List(ctx, user.ID, RecordFilter{})
	testutil.AssertNoError(t, err)
	if len(records) != 3 {
		t.Fatalf("expected 3 records, got %d", len(records))
	}

	groups, err := svc.Breakdown(ctx, user.ID)
	testutil.AssertNoError(t, err)
	if len(groups) != 2 || groups[0].Category != "Food" {
		t.Fatalf("unexpected groups %+v", groups)
	}
	testutil.AssertDecimal(t, groups[0].Total, "150")

	if svc.Kind() != models.TransactionKindExpense {
		t.Errorf("expected expense kind, got %s", svc.Kind())
	}
}
