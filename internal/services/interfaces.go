package services

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"spendwise/internal/models"
)

// UserServicer defines the contract for user-related business logic.
type UserServicer interface {
	CreateUser(ctx context.Context, name, email, password string, profilePhoto *string) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUserByID(ctx context.Context, id string) (*models.User, error)
	VerifyPassword(user *models.User, password string) bool
	AttemptLogin(ctx context.Context, email, password string) (*models.User, error)
	UpdateProfile(ctx context.Context, userID string, update ProfileUpdate) (*models.User, error)
}

// ProfileUpdate holds the optional profile fields. An empty Name keeps the
// current name; a nil ProfilePhoto keeps the current photo and a pointer to
// "" clears it.
type ProfileUpdate struct {
	Name         string
	ProfilePhoto *string
}

// RecordFilter narrows record queries. Zero values mean "no constraint";
// a non-positive Limit returns every match.
type RecordFilter struct {
	StartDate *time.Time
	EndDate   *time.Time
	Category  string
	Limit     int
	Offset    int
}

// RecordFields are the mutable fields of a record.
type RecordFields struct {
	Icon     string
	Category string
	Amount   decimal.Decimal
	Date     time.Time
}

// CategoryTotal is a storage-side group of records sharing a category.
type CategoryTotal struct {
	Category string          `json:"category"`
	Total    decimal.Decimal `json:"total"`
	Count    int64           `json:"count"`
}

// RecordStore persists income and expense records. Both ledgers share one
// shape and are selected by kind. The store does not check ownership.
type RecordStore interface {
	Create(ctx context.Context, kind models.TransactionKind, record *models.Transaction) error
	FindByUser(ctx context.Context, kind models.TransactionKind, userID string, filter RecordFilter) ([]models.Transaction, error)
	FindByID(ctx context.Context, kind models.TransactionKind, id string) (*models.Transaction, error)
	Update(ctx context.Context, kind models.TransactionKind, id string, fields RecordFields) (*models.Transaction, error)
	Delete(ctx context.Context, kind models.TransactionKind, id string) error
	SumByUser(ctx context.Context, kind models.TransactionKind, userID string, filter RecordFilter) (decimal.Decimal, error)
	GroupByCategory(ctx context.Context, kind models.TransactionKind, userID string, filter RecordFilter) ([]CategoryTotal, error)
}

// TransactionServicer defines the owner-scoped operations on one ledger.
type TransactionServicer interface {
	Kind() models.TransactionKind
	Add(ctx context.Context, userID string, fields RecordFields) (*models.Transaction, error)
	List(ctx context.Context, userID string, filter RecordFilter) ([]models.Transaction, error)
	Update(ctx context.Context, userID, id string, fields RecordFields) (*models.Transaction, error)
	Delete(ctx context.Context, userID, id string) error
	Breakdown(ctx context.Context, userID string) ([]CategoryTotal, error)
}

// DashboardServicer assembles the reporting payloads.
type DashboardServicer interface {
	Summary(ctx context.Context, userID string) (*DashboardSummary, error)
	Analytics(ctx context.Context, userID string) (*DashboardAnalytics, error)
}

// AuditServicer defines the contract for audit logging.
type AuditServicer interface {
	Log(ctx context.Context, userID, action, resourceType, resourceID, ipAddress string, changes map[string]interface{})
}
