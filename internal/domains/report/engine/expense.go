package engine

import (
	"cmp"
	"hotelier/internal/domains/expense/model"
	"slices"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type ExpenseDay struct {
	Date   time.Time
	Amount decimal.Decimal
}

type ExpenseCategory struct {
	CategoryID   string
	CategoryName string
	Amount       decimal.Decimal
}

type ExpenseResult struct {
	From       time.Time
	To         time.Time
	Currency   string
	Total      decimal.Decimal
	Days       []ExpenseDay
	Categories []ExpenseCategory
}

// Expenses sums expenses dated From..To inclusive in currency, per day and per category.
// An empty currency matches every expense.
func Expenses(expenses []model.Expense, from, to time.Time, currency string) ExpenseResult {
	result := ExpenseResult{From: from, To: to, Currency: currency, Total: decimal.Zero}

	byDay := map[time.Time]decimal.Decimal{}
	byCategory := map[string]*ExpenseCategory{}

	for _, expense := range expenses {
		if expense.BusinessDate.Before(from) || expense.BusinessDate.After(to) {
			continue
		}

		if currency != "" && !strings.EqualFold(expense.CurrencyCode, currency) {
			continue
		}

		byDay[expense.BusinessDate] = byDay[expense.BusinessDate].Add(expense.Amount)

		category, ok := byCategory[expense.CategoryID]
		if !ok {
			category = &ExpenseCategory{CategoryID: expense.CategoryID, CategoryName: expense.CategoryName}
			byCategory[expense.CategoryID] = category
		}

		category.Amount = category.Amount.Add(expense.Amount)
		result.Total = result.Total.Add(expense.Amount)
	}

	for date, amount := range byDay {
		result.Days = append(result.Days, ExpenseDay{Date: date, Amount: amount.Round(moneyPlaces)})
	}

	slices.SortFunc(result.Days, func(a, b ExpenseDay) int { return a.Date.Compare(b.Date) })

	for _, category := range byCategory {
		category.Amount = category.Amount.Round(moneyPlaces)
		result.Categories = append(result.Categories, *category)
	}

	slices.SortFunc(result.Categories, func(a, b ExpenseCategory) int {
		return cmp.Or(b.Amount.Cmp(a.Amount), cmp.Compare(a.CategoryName, b.CategoryName))
	})

	result.Total = result.Total.Round(moneyPlaces)

	return result
}

// ByDate indexes daily expense totals by date.
func (r ExpenseResult) ByDate() map[time.Time]decimal.Decimal {
	index := make(map[time.Time]decimal.Decimal, len(r.Days))
	for _, day := range r.Days {
		index[day.Date] = day.Amount
	}

	return index
}
