package dto_test

import (
	"bytes"
	"encoding/json"
	"hotelier/internal/domains/report/engine"
	"hotelier/internal/domains/report/model"
	"hotelier/internal/domains/report/model/dto"
	"hotelier/shared/failure"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func TestReportQuery_FromRequest(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet,
		"/v1/reports/revenue?from=2026-02-01&to=2026-02-08&mode=Forecast&group_by=roomType&currency=idr&include_room_types=true&include_expense_categories=1",
		nil)

	query := dto.ReportQuery{}
	query.FromRequest(req)

	assert.Equal(t, dto.ReportQuery{
		From:                     "2026-02-01",
		To:                       "2026-02-08",
		Mode:                     "forecast",
		GroupBy:                  "roomtype",
		Currency:                 "IDR",
		IncludeRoomTypes:         true,
		IncludeExpenseCategories: true,
	}, query)
}

func TestReportQuery_FromRequestIgnoresBadFlags(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/v1/reports/dashboard?include_room_types=maybe", nil)

	query := dto.ReportQuery{}
	query.FromRequest(req)

	assert.False(t, query.IncludeRoomTypes)
	assert.Empty(t, query.Mode)
}

func TestReportQuery_Criteria(t *testing.T) {
	tests := []struct {
		name    string
		query   dto.ReportQuery
		want    dto.Criteria
		wantMsg string
	}{
		{
			name:  "defaults",
			query: dto.ReportQuery{},
			want:  dto.Criteria{Mode: model.ModeActual, GroupBy: model.GroupByDay, Currency: "USD"},
		},
		{
			name:  "explicit values",
			query: dto.ReportQuery{From: "2026-02-01", To: "2026-02-05", Mode: "forecast", GroupBy: "room_type", Currency: "EUR", IncludeRoomTypes: true},
			want: dto.Criteria{
				From:             ptr(date(2026, 2, 1)),
				To:               ptr(date(2026, 2, 5)),
				Mode:             model.ModeForecast,
				GroupBy:          model.GroupByRoomType,
				Currency:         "EUR",
				IncludeRoomTypes: true,
			},
		},
		{
			name:  "camel case group",
			query: dto.ReportQuery{GroupBy: "roomtype"},
			want:  dto.Criteria{Mode: model.ModeActual, GroupBy: model.GroupByRoomType, Currency: "USD"},
		},
		{
			name:    "bad from",
			query:   dto.ReportQuery{From: "01/02/2026"},
			wantMsg: "From must be a date in yyyy-MM-dd format",
		},
		{
			name:    "bad mode",
			query:   dto.ReportQuery{Mode: "weekly"},
			wantMsg: "Mode must be one of actual forecast",
		},
		{
			name:    "bad group",
			query:   dto.ReportQuery{GroupBy: "week"},
			wantMsg: "GroupBy must be one of day room_type roomtype room branch hotel",
		},
		{
			name:    "bad currency",
			query:   dto.ReportQuery{Currency: "XYZ"},
			wantMsg: "Currency must be an ISO 4217 currency code",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			criteria, err := tt.query.Criteria("usd")

			if tt.wantMsg != "" {
				require.Error(t, err)
				assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
				assert.Equal(t, tt.wantMsg, err.Error())

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, criteria)
		})
	}
}

func ptr[T any](v T) *T {
	return &v
}

func TestMoneyAndRateJSON(t *testing.T) {
	payload := struct {
		Amount dto.Money `json:"amount"`
		Rate   dto.Rate  `json:"rate"`
		Zero   dto.Money `json:"zero"`
	}{
		Amount: dto.NewMoney(decimal.RequireFromString("100")),
		Rate:   dto.NewRate(decimal.RequireFromString("0.5")),
	}

	raw, err := json.Marshal(payload)
	require.NoError(t, err)
	assert.JSONEq(t, `{"amount":100.00,"rate":0.5000,"zero":0.00}`, string(raw))
	assert.Contains(t, string(raw), `"amount":100.00`)

	decoded := payload
	decoded.Amount = dto.Money{}

	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.True(t, decoded.Amount.Equal(decimal.NewFromInt(100)))
}

func sampleDashboard() engine.DashboardResult {
	return engine.DashboardResult{
		From:     date(2026, 2, 1),
		To:       date(2026, 2, 2),
		Mode:     model.ModeActual,
		Currency: "USD",
		Summary: engine.DashboardSummary{
			Nights:           2,
			TotalRooms:       2,
			SoldRoomNights:   2,
			SupplyRoomNights: 4,
			OccupancyRate:    decimal.RequireFromString("0.5"),
			TotalRevenue:     decimal.NewFromInt(200),
			TotalExpense:     decimal.RequireFromString("20.5"),
			NetProfit:        decimal.RequireFromString("179.5"),
			AvgADR:           decimal.NewFromInt(100),
			AvgRevPAR:        decimal.NewFromInt(50),
		},
		Days: []engine.DashboardDay{
			{
				Date: date(2026, 2, 1), OccupiedRooms: 2, TotalRooms: 2, OccupancyRate: decimal.NewFromInt(1),
				Revenue: decimal.NewFromInt(200), Expense: decimal.RequireFromString("20.5"), NetProfit: decimal.RequireFromString("179.5"),
				ADR: decimal.NewFromInt(100), RevPAR: decimal.NewFromInt(100),
			},
			{Date: date(2026, 2, 2), TotalRooms: 2},
		},
		ExpenseCategories: []engine.ExpenseCategory{
			{CategoryID: "c-util", CategoryName: "Utilities", Amount: decimal.RequireFromString("20.5")},
		},
	}
}

func TestDashboardResponse_FromResult(t *testing.T) {
	res := dto.DashboardResponse{}
	res.FromResult(sampleDashboard())

	assert.Equal(t, "2026-02-01", res.From)
	assert.Equal(t, "2026-02-02", res.To)
	assert.Equal(t, "actual", res.Mode)
	require.Len(t, res.Days, 2)
	assert.Equal(t, "2026-02-02", res.Days[1].Date)
	assert.Nil(t, res.RoomTypes)
	require.Len(t, res.ExpenseCategories, 1)

	raw, err := json.Marshal(res)
	require.NoError(t, err)

	body := string(raw)
	assert.Contains(t, body, `"avg_revpar":50.00`)
	assert.Contains(t, body, `"net_profit":179.50`)
	assert.Contains(t, body, `"occupancy_rate":0.5000`)
	assert.NotContains(t, body, "room_types")
}

func TestDashboardResponse_WriteCSV(t *testing.T) {
	res := dto.DashboardResponse{}
	res.FromResult(sampleDashboard())

	buf := &bytes.Buffer{}
	rows, err := res.WriteCSV(buf)

	require.NoError(t, err)
	assert.Equal(t, 2, rows)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "date,occupied_rooms,total_rooms,occupancy_rate,overbooked,revenue,expense,net_profit,adr,revpar", lines[0])
	assert.Equal(t, "2026-02-01,2,2,1.0000,false,200.00,20.50,179.50,100.00,100.00", lines[1])
	assert.Equal(t, "2026-02-02,0,2,0.0000,false,0.00,0.00,0.00,0.00,0.00", lines[2])
	assert.Equal(t, "total,2,4,0.5000,0,200.00,20.50,179.50,100.00,50.00", lines[3])
}

func TestRevenueResponse_FromResult(t *testing.T) {
	res := dto.RevenueResponse{}
	res.FromResult(engine.RevenueResult{
		From:        date(2026, 2, 1),
		ToExclusive: date(2026, 2, 3),
		Mode:        model.ModeForecast,
		GroupBy:     model.GroupByBranch,
		Total:       decimal.RequireFromString("150.5"),
		Nights:      3,
		Buckets: []engine.RevenueBucket{
			{Key: model.GroupKey{ID: "b-1", Name: "Downtown"}, Amount: decimal.RequireFromString("150.5"), Nights: 3},
		},
	}, "USD")

	assert.Equal(t, "2026-02-03", res.To)
	assert.Equal(t, "branch", res.GroupBy)
	require.Len(t, res.Buckets, 1)
	assert.Equal(t, "b-1", res.Buckets[0].Key)
	assert.Equal(t, "Downtown", res.Buckets[0].Name)

	raw, err := json.Marshal(res)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"total":150.50`)
}

func TestOccupancyResponse_FromResult(t *testing.T) {
	res := dto.OccupancyResponse{}
	res.FromResult(engine.OccupancyResult{
		From:             date(2026, 2, 1),
		To:               date(2026, 2, 1),
		Mode:             model.ModeActual,
		TotalRooms:       1,
		Nights:           1,
		SoldRoomNights:   2,
		SupplyRoomNights: 1,
		OccupancyRate:    decimal.NewFromInt(2),
		OverbookedNights: 1,
		Days: []engine.OccupancyDay{{
			Date: date(2026, 2, 1), OccupiedRooms: 2, TotalRooms: 1, OccupancyRate: decimal.NewFromInt(2), Overbooked: true,
			RoomTypes: []engine.RoomTypeOccupancy{{RoomTypeID: "std", RoomTypeName: "Standard", OccupiedRooms: 2, TotalRooms: 1, OccupancyRate: decimal.NewFromInt(2)}},
		}},
	})

	require.Len(t, res.Days, 1)
	assert.True(t, res.Days[0].Overbooked)
	require.Len(t, res.Days[0].RoomTypes, 1)
	assert.Equal(t, "std", res.Days[0].RoomTypes[0].RoomTypeID)
	assert.Nil(t, res.RoomTypes)
}
