package services

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	apperrors "spendwise/internal/errors"
	"spendwise/internal/models"
	"spendwise/internal/pagination"
)

// gormRecordStore keeps each ledger in its own table behind one model.
type gormRecordStore struct {
	db *gorm.DB
}

// NewRecordStore creates a RecordStore backed by db.
func NewRecordStore(db *gorm.DB) RecordStore {
	return &gormRecordStore{db: db}
}

func (s *gormRecordStore) table(ctx context.Context, kind models.TransactionKind) *gorm.DB {
	return s.db.WithContext(ctx).Table(kind.Table())
}

// NotFoundFor returns the kind-specific not-found error.
func NotFoundFor(kind models.TransactionKind) *apperrors.AppError {
	if kind == models.TransactionKindIncome {
		return apperrors.ErrIncomeNotFound
	}
	return apperrors.ErrExpenseNotFound
}

// Create inserts record into the ledger of kind, assigning id and timestamps.
func (s *gormRecordStore) Create(ctx context.Context, kind models.TransactionKind, record *models.Transaction) error {
	if record.UserID == "" || record.Category == "" || record.Date.IsZero() {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "All fields are required")
	}
	record.Date = models.CalendarDate(record.Date)
	if err := s.table(ctx, kind).Create(record).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	record.Kind = kind
	return nil
}

// FindByUser lists a user's records, newest date first and, within a date,
// most recently created first.
func (s *gormRecordStore) FindByUser(ctx context.Context, kind models.TransactionKind, userID string, filter RecordFilter) ([]models.Transaction, error) {
	records := make([]models.Transaction, 0)
	err := s.scoped(ctx, kind, userID, filter).
		Order("date DESC").
		Order("created_at DESC").
		Scopes(pagination.Window(filter.Limit, filter.Offset)).
		Find(&records).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return records, nil
}

// FindByID returns the record with id regardless of its owner.
func (s *gormRecordStore) FindByID(ctx context.Context, kind models.TransactionKind, id string) (*models.Transaction, error) {
	var record models.Transaction
	if err := s.table(ctx, kind).Where("id = ?", id).First(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NotFoundFor(kind)
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &record, nil
}

// Update replaces every mutable field of the record and refreshes updated_at.
func (s *gormRecordStore) Update(ctx context.Context, kind models.TransactionKind, id string, fields RecordFields) (*models.Transaction, error) {
	record, err := s.FindByID(ctx, kind, id)
	if err != nil {
		return nil, err
	}

	record.Icon = fields.Icon
	record.Category = fields.Category
	record.Amount = fields.Amount
	record.Date = models.CalendarDate(fields.Date)

	if err := s.table(ctx, kind).Where("id = ?", id).
		Select("icon", "category", "amount", "date", "updated_at").
		Updates(record).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return record, nil
}

// Delete removes the record. Deleting an absent id reports not found.
func (s *gormRecordStore) Delete(ctx context.Context, kind models.TransactionKind, id string) error {
	result := s.table(ctx, kind).Where("id = ?", id).Delete(&models.Transaction{})
	if result.Error != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, result.Error)
	}
	if result.RowsAffected == 0 {
		return NotFoundFor(kind)
	}
	return nil
}

// SumByUser totals the amounts of the matching records; no match sums to zero.
func (s *gormRecordStore) SumByUser(ctx context.Context, kind models.TransactionKind, userID string, filter RecordFilter) (decimal.Decimal, error) {
	var total decimal.Decimal
	row := s.scoped(ctx, kind, userID, filter).Select("COALESCE(SUM(amount), 0)").Row()
	if err := row.Scan(&total); err != nil {
		return decimal.Zero, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return total, nil
}

// GroupByCategory totals the matching records per category, largest first.
func (s *gormRecordStore) GroupByCategory(ctx context.Context, kind models.TransactionKind, userID string, filter RecordFilter) ([]CategoryTotal, error) {
	groups := make([]CategoryTotal, 0)
	err := s.scoped(ctx, kind, userID, filter).
		Select("category, SUM(amount) AS total, COUNT(*) AS count").
		Group("category").
		Order("total DESC").
		Order("category").
		Scan(&groups).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return groups, nil
}

// scoped applies the owner and the optional filters of f.
func (s *gormRecordStore) scoped(ctx context.Context, kind models.TransactionKind, userID string, f RecordFilter) *gorm.DB {
	q := s.table(ctx, kind).Where("user_id = ?", userID)
	if f.StartDate != nil {
		q = q.Where("date >= ?", f.StartDate.UTC())
	}
	if f.EndDate != nil {
		q = q.Where("date <= ?", f.EndDate.UTC())
	}
	if f.Category != "" {
		q = q.Where("category = ?", f.Category)
	}
	return q
}
