package testutil_test

import (
	"testing"

	"spendwise/internal/errors"
	"spendwise/internal/models"
	"spendwise/internal/testutil"
)

func TestSetupTestDB(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	// Verify all tables exist by doing a simple count query on each table.
	var count int64
	for _, table := range []string{"users", "income", "expenses", "audit_logs"} {
		if err := db.Table(table).Count(&count).Error; err != nil {
			t.Errorf("table %q should exist after migration: %v", table, err)
		}
	}
}

func TestSetupTestDB_Isolated(t *testing.T) {
	first := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, first)
	second := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, second)

	testutil.CreateTestUser(t, first)

	var count int64
	second.Model(&models.User{}).Count(&count)
	if count != 0 {
		t.Errorf("expected an empty second database, found %d users", count)
	}
}

func TestFixtures(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	user := testutil.CreateTestUser(t, db)
	if user.ID == "" {
		t.Fatal("user should have an ID")
	}

	income := testutil.CreateTestIncome(t, db, user.ID, "Salary", "2000", "2024-01-31")
	testutil.AssertDecimal(t, income.Amount, "2000")
	if income.Kind != models.TransactionKindIncome {
		t.Errorf("expected income kind, got %s", income.Kind)
	}

	expense := testutil.CreateTestExpense(t, db, user.ID, "Food", "12.50", "2024-02-01")
	if expense.ID == "" || expense.ID == income.ID {
		t.Errorf("expected distinct record IDs, got %q and %q", income.ID, expense.ID)
	}

	var stored int64
	db.Table("expenses").Where("user_id = ?", user.ID).Count(&stored)
	if stored != 1 {
		t.Errorf("expected 1 stored expense, got %d", stored)
	}
}

func TestAssertAppError(t *testing.T) {
	err := errors.WithMessage(errors.ErrExpenseNotFound, "custom message")
	testutil.AssertAppError(t, err, "EXPENSE_NOT_FOUND")
}

func TestAssertNoError(t *testing.T) {
	testutil.AssertNoError(t, nil)
}
