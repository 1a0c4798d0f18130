package model

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	TableName  = "expenses"
	EntityName = "expense"

	FieldID           = "id"
	FieldBusinessDate = "business_date"
	FieldCurrencyCode = "currency_code"
	FieldDeletedAt    = "deleted_at"
)

// Expense is booked against a business date, never a timestamp.
type Expense struct {
	ID           string          `db:"id"`
	BusinessDate time.Time       `db:"business_date"`
	CategoryID   string          `db:"category_id"`
	CategoryName string          `db:"category_name" table:"expense_categories" column:"name"`
	Amount       decimal.Decimal `db:"amount"`
	CurrencyCode string          `db:"currency_code"`
	Description  string          `db:"description"`
}

func (Expense) GetJoinQuery() string {
	return "INNER JOIN expense_categories ON expense_categories.id = expenses.category_id"
}

// Range is an inclusive business date range.
type Range struct {
	From     time.Time
	To       time.Time
	Currency string
}
