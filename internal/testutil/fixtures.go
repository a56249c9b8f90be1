package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"spendwise/internal/models"
)

// TestPassword is the plain-text password of every fixture user.
const TestPassword = "password123"

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestUser creates a user with a hashed password and unique email.
func CreateTestUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()
	email := fmt.Sprintf("user%d@test.com", nextID())
	return CreateTestUserWithEmail(t, db, email)
}

// CreateTestUserWithEmail creates a user with the given email.
func CreateTestUserWithEmail(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(TestPassword), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &models.User{
		Name:     fmt.Sprintf("Test User %d", nextID()),
		Email:    email,
		Password: string(hash),
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CreateTestIncome stores an income record. date uses the YYYY-MM-DD layout.
func CreateTestIncome(t *testing.T, db *gorm.DB, userID, source, amount, date string) *models.Transaction {
	t.Helper()
	return createTestRecord(t, db, models.TransactionKindIncome, userID, source, amount, date)
}

// CreateTestExpense stores an expense record. date uses the YYYY-MM-DD layout.
func CreateTestExpense(t *testing.T, db *gorm.DB, userID, category, amount, date string) *models.Transaction {
	t.Helper()
	return createTestRecord(t, db, models.TransactionKindExpense, userID, category, amount, date)
}

func createTestRecord(t *testing.T, db *gorm.DB, kind models.TransactionKind, userID, category, amount, date string) *models.Transaction {
	t.Helper()

	value, err := decimal.NewFromString(amount)
	if err != nil {
		t.Fatalf("invalid fixture amount %q: %v", amount, err)
	}
	day, err := time.Parse(models.DateLayout, date)
	if err != nil {
		t.Fatalf("invalid fixture date %q: %v", date, err)
	}

	record := &models.Transaction{
		UserID:   userID,
		Category: category,
		Amount:   value,
		Date:     day,
	}
	if err := db.Table(kind.Table()).Create(record).Error; err != nil {
		t.Fatalf("failed to create test %s: %v", kind, err)
	}
	record.Kind = kind
	return record
}

// DaysAgo returns the YYYY-MM-DD date n days before now.
func DaysAgo(n int) string {
	return time.Now().UTC().AddDate(0, 0, -n).Format(models.DateLayout)
}
