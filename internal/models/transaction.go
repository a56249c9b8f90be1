package models

import (
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// Amounts go over the wire as JSON numbers, not strings.
	decimal.MarshalJSONWithoutQuotes = true
}

// DateLayout is the calendar-date format accepted and exported for records.
const DateLayout = "2006-01-02"

// TransactionKind identifies which ledger a record belongs to.
type TransactionKind string

const (
	TransactionKindIncome  TransactionKind = "income"
	TransactionKindExpense TransactionKind = "expense"
)

// Table returns the table that stores records of this kind.
func (k TransactionKind) Table() string {
	if k == TransactionKindIncome {
		return "income"
	}
	return "expenses"
}

// Valid reports whether k is a known kind.
func (k TransactionKind) Valid() bool {
	return k == TransactionKindIncome || k == TransactionKindExpense
}

// Transaction is a single income or expense entry. Income and expenses share
// this shape and live in separate tables; for income, Category holds the source.
type Transaction struct {
	Base
	UserID   string          `gorm:"type:uuid;not null" json:"user_id"`
	Icon     string          `gorm:"size:32" json:"icon"`
	Category string          `gorm:"not null" json:"category"`
	Amount   decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"amount"`
	Date     time.Time       `gorm:"type:date;not null" json:"date"`

	// Kind is set on read paths that mix both ledgers; it is not persisted.
	Kind TransactionKind `gorm:"-" json:"type,omitempty"`
}

// CalendarDate truncates t to midnight UTC of its own calendar day.
func CalendarDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
