package services

import (
	"context"
	"strings"

	apperrors "spendwise/internal/errors"
	"spendwise/internal/models"
)

// transactionService applies ownership and validation rules on top of the
// record store for a single ledger.
type transactionService struct {
	kind  models.TransactionKind
	store RecordStore
}

// NewTransactionService creates a TransactionServicer for the ledger of kind.
func NewTransactionService(kind models.TransactionKind, store RecordStore) TransactionServicer {
	return &transactionService{kind: kind, store: store}
}

// Kind reports the ledger this service manages.
func (s *transactionService) Kind() models.TransactionKind {
	return s.kind
}

// Add creates a record owned by userID.
func (s *transactionService) Add(ctx context.Context, userID string, fields RecordFields) (*models.Transaction, error) {
	fields, err := validateFields(s.kind, fields)
	if err != nil {
		return nil, err
	}

	record := &models.Transaction{
		UserID:   userID,
		Icon:     fields.Icon,
		Category: fields.Category,
		Amount:   fields.Amount,
		Date:     fields.Date,
	}
	if err := s.store.Create(ctx, s.kind, record); err != nil {
		return nil, err
	}
	return record, nil
}

// List returns the user's records matching filter.
func (s *transactionService) List(ctx context.Context, userID string, filter RecordFilter) ([]models.Transaction, error) {
	return s.store.FindByUser(ctx, s.kind, userID, filter)
}

// Update replaces the mutable fields of a record the user owns.
func (s *transactionService) Update(ctx context.Context, userID, id string, fields RecordFields) (*models.Transaction, error) {
	if _, err := s.owned(ctx, userID, id); err != nil {
		return nil, err
	}
	fields, err := validateFields(s.kind, fields)
	if err != nil {
		return nil, err
	}
	return s.store.Update(ctx, s.kind, id, fields)
}

// Delete removes a record the user owns. Another user's record is reported
// as forbidden and left untouched.
func (s *transactionService) Delete(ctx context.Context, userID, id string) error {
	if _, err := s.owned(ctx, userID, id); err != nil {
		return err
	}
	return s.store.Delete(ctx, s.kind, id)
}

// Breakdown returns the user's totals per category, largest first.
func (s *transactionService) Breakdown(ctx context.Context, userID string) ([]CategoryTotal, error) {
	return s.store.GroupByCategory(ctx, s.kind, userID, RecordFilter{})
}

func (s *transactionService) owned(ctx context.Context, userID, id string) (*models.Transaction, error) {
	record, err := s.store.FindByID(ctx, s.kind, id)
	if err != nil {
		return nil, err
	}
	if record.UserID != userID {
		return nil, apperrors.ErrRecordNotOwned
	}
	return record, nil
}

func validateFields(kind models.TransactionKind, f RecordFields) (RecordFields, error) {
	f.Category = strings.TrimSpace(f.Category)
	f.Icon = strings.TrimSpace(f.Icon)

	if f.Category == "" {
		if kind == models.TransactionKindIncome {
			return f, apperrors.WithMessage(apperrors.ErrInvalidInput, "source is required")
		}
		return f, apperrors.WithMessage(apperrors.ErrInvalidInput, "category is required")
	}
	if !f.Amount.IsPositive() {
		return f, apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must be greater than zero")
	}
	if f.Amount.Exponent() < -2 {
		return f, apperrors.WithMessage(apperrors.ErrInvalidInput, "amount supports at most two decimal places")
	}
	if f.Date.IsZero() {
		return f, apperrors.WithMessage(apperrors.ErrInvalidInput, "date is required")
	}
	f.Date = models.CalendarDate(f.Date)
	return f, nil
}
