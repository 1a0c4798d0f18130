package engine_test

import (
	expenseModel "hotelier/internal/domains/expense/model"
	"hotelier/internal/domains/report/engine"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpenses(t *testing.T) {
	expenses := []expenseModel.Expense{
		expense("e1", date(2026, 3, 2), "c-food", "Food", "12.345", "IDR"),
		expense("e2", date(2026, 3, 1), "c-util", "Utilities", "20", "IDR"),
		expense("e3", date(2026, 3, 2), "c-food", "Food", "7.655", "idr"),
		expense("e4", date(2026, 3, 3), "c-laundry", "Laundry", "20", "IDR"),
		expense("e5", date(2026, 3, 4), "c-util", "Utilities", "99", "IDR"),
		expense("e6", date(2026, 3, 1), "c-util", "Utilities", "99", "USD"),
	}

	result := engine.Expenses(expenses, date(2026, 3, 1), date(2026, 3, 3), "IDR")

	assertMoney(t, "60", result.Total)

	require.Len(t, result.Days, 3)
	assert.Equal(t, date(2026, 3, 1), result.Days[0].Date)
	assertMoney(t, "20", result.Days[0].Amount)
	assertMoney(t, "20", result.Days[1].Amount)
	assertMoney(t, "20", result.Days[2].Amount)

	require.Len(t, result.Categories, 3)
	assert.Equal(t, "Food", result.Categories[0].CategoryName, "ties break on name")
	assert.Equal(t, "Laundry", result.Categories[1].CategoryName)
	assert.Equal(t, "Utilities", result.Categories[2].CategoryName)
}

func TestExpenses_AnyCurrency(t *testing.T) {
	expenses := []expenseModel.Expense{
		expense("e1", date(2026, 3, 1), "c-util", "Utilities", "10", "IDR"),
		expense("e2", date(2026, 3, 1), "c-staff", "Staff", "15", "USD"),
	}

	result := engine.Expenses(expenses, date(2026, 3, 1), date(2026, 3, 1), "")

	assertMoney(t, "25", result.Total)
	require.Len(t, result.Categories, 2)
	assert.Equal(t, "c-staff", result.Categories[0].CategoryID)

	byDate := result.ByDate()
	assertMoney(t, "25", byDate[date(2026, 3, 1)])
}

func TestExpenses_Empty(t *testing.T) {
	result := engine.Expenses(nil, date(2026, 3, 1), date(2026, 3, 7), "USD")

	assert.True(t, result.Total.IsZero())
	assert.Empty(t, result.Days)
	assert.Empty(t, result.Categories)
}
