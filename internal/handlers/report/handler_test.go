package report_test

import (
	"errors"
	"hotelier/infras/otel/mocks"
	reportMocks "hotelier/internal/domains/report/mocks"
	"hotelier/internal/domains/report/model/dto"
	"hotelier/internal/handlers/report"
	"hotelier/shared/failure"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newRouter(t *testing.T) (http.Handler, *reportMocks.MockReport) {
	t.Helper()

	ctrl := gomock.NewController(t)
	svc := reportMocks.NewMockReport(ctrl)

	handler := report.New(svc, mocks.NewOtel())
	router := chi.NewRouter()
	handler.Router(router)

	return router, svc
}

func TestHandler_GetOccupancy(t *testing.T) {
	router, svc := newRouter(t)

	svc.EXPECT().
		Occupancy(gomock.Any(), dto.ReportQuery{From: "2026-02-01", To: "2026-02-02", Mode: "actual", IncludeRoomTypes: true}).
		Return(dto.OccupancyResponse{
			From:           "2026-02-01",
			To:             "2026-02-02",
			Mode:           "actual",
			SoldRoomNights: 2,
			OccupancyRate:  dto.NewRate(decimal.RequireFromString("0.5")),
			Days:           []dto.OccupancyDay{},
		}, nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/reports/occupancy?from=2026-02-01&to=2026-02-02&mode=ACTUAL&include_room_types=true", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"data":{
		"from":"2026-02-01","to":"2026-02-02","mode":"actual",
		"total_rooms":0,"nights":0,"sold_room_nights":2,"supply_room_nights":0,
		"occupancy_rate":0.5000,"overbooked_nights":0,"days":[]
	}}`, rec.Body.String())
}

func TestHandler_GetRevenue(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{name: "ok", wantCode: http.StatusOK},
		{name: "bad query", err: failure.BadRequestFromString("GroupBy must be one of day room_type roomtype room branch hotel"), wantCode: http.StatusBadRequest},
		{name: "upstream failure", err: errors.New("failed to fetch reservations"), wantCode: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, svc := newRouter(t)

			svc.EXPECT().
				Revenue(gomock.Any(), dto.ReportQuery{GroupBy: "room_type", Currency: "EUR"}).
				Return(dto.RevenueResponse{GroupBy: "room_type", Currency: "EUR"}, tt.err)

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/reports/revenue?group_by=room_type&currency=eur", nil))

			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}

func TestHandler_GetDashboard(t *testing.T) {
	router, svc := newRouter(t)

	svc.EXPECT().
		Dashboard(gomock.Any(), dto.ReportQuery{Mode: "forecast", IncludeExpenseCategories: true}).
		Return(dto.DashboardResponse{
			From: "2026-02-10",
			To:   "2026-02-17",
			Mode: "forecast",
			Summary: dto.DashboardSummary{
				TotalRevenue: dto.NewMoney(decimal.NewFromInt(200)),
				AvgRevPAR:    dto.NewMoney(decimal.NewFromInt(50)),
			},
		}, nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/reports/dashboard?mode=forecast&include_expense_categories=true", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"total_revenue":200.00`)
	assert.Contains(t, rec.Body.String(), `"avg_revpar":50.00`)
}

func TestHandler_ExportDashboard(t *testing.T) {
	router, svc := newRouter(t)

	svc.EXPECT().
		ExportDashboard(gomock.Any(), dto.ReportQuery{From: "2026-02-01"}).
		Return(dto.ExportResponse{URL: "https://cdn.example.com/reports/d.csv", ObjectKey: "reports/d.csv", Rows: 7}, nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/reports/dashboard/export?from=2026-02-01", nil))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"data":{"url":"https://cdn.example.com/reports/d.csv","object_key":"reports/d.csv","rows":7}}`, rec.Body.String())
}

func TestHandler_ExportMethodNotAllowed(t *testing.T) {
	router, _ := newRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/reports/dashboard/export", nil))

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
