package service_test

import (
	"context"
	"errors"
	"hotelier/config"
	"hotelier/infras/metrics"
	otelMocks "hotelier/infras/otel/mocks"
	"hotelier/infras/s3"
	s3Mocks "hotelier/infras/s3/mocks"
	expenseMocks "hotelier/internal/domains/expense/mocks"
	expenseModel "hotelier/internal/domains/expense/model"
	"hotelier/internal/domains/report/model/dto"
	"hotelier/internal/domains/report/service"
	reservationMocks "hotelier/internal/domains/reservation/mocks"
	reservationModel "hotelier/internal/domains/reservation/model"
	roomMocks "hotelier/internal/domains/room/mocks"
	roomModel "hotelier/internal/domains/room/model"
	"hotelier/shared/cache"
	cacheMocks "hotelier/shared/cache/mocks"
	"hotelier/shared/failure"
	"hotelier/shared/timezone"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	svc          service.Report
	rooms        *roomMocks.MockRoom
	reservations *reservationMocks.MockReservation
	expenses     *expenseMocks.MockExpense
	storage      *s3Mocks.MockS3
	redis        *miniredis.Miniredis
	cfg          *config.Config
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func newConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Hotel.DefaultCurrency = "usd"
	cfg.Hotel.DashboardDefaultDays = 7
	cfg.Report.CacheTTL = 300
	cfg.Report.ExportBucket = "exports"
	cfg.Report.ExportDirectory = "reports"
	cfg.Metrics.Enable = true

	return cfg
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	srv := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: srv.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	f := fixture{
		rooms:        roomMocks.NewMockRoom(ctrl),
		reservations: reservationMocks.NewMockReservation(ctrl),
		expenses:     expenseMocks.NewMockExpense(ctrl),
		storage:      s3Mocks.NewMockS3(ctrl),
		redis:        srv,
		cfg:          newConfig(),
	}

	f.svc = service.New(
		f.rooms,
		f.reservations,
		f.expenses,
		f.cfg,
		cache.NewRedisCache(client, otelMocks.NewOtel()),
		f.storage,
		timezone.NewFixedClock(time.Date(2026, 2, 10, 15, 30, 0, 0, time.UTC)),
		metrics.New(f.cfg),
		otelMocks.NewOtel(),
	)

	return f
}

func (f fixture) waitForCachedKeys(t *testing.T, prefix string, count int) {
	t.Helper()

	require.Eventually(t, func() bool {
		matched := 0

		for _, key := range f.redis.Keys() {
			if strings.HasPrefix(key, prefix) {
				matched++
			}
		}

		return matched == count
	}, time.Second, 10*time.Millisecond)
}

func standardRooms() []roomModel.Room {
	return []roomModel.Room{
		{ID: "room-1", RoomNumber: "101", RoomTypeID: "std", RoomTypeName: "Standard", IsActive: true, Status: roomModel.StatusAvailable},
		{ID: "room-2", RoomNumber: "102", RoomTypeID: "std", RoomTypeName: "Standard", IsActive: true, Status: roomModel.StatusOccupied},
		{ID: "room-3", RoomNumber: "103", RoomTypeID: "std", RoomTypeName: "Standard", IsActive: true, Status: roomModel.StatusOutOfService},
	}
}

func reservation(status reservationModel.Status, checkIn, checkOut time.Time, total string, roomIDs ...string) reservationModel.Reservation {
	hotel := "Grand"
	res := reservationModel.Reservation{
		ID:           "res-" + checkIn.Format("0102") + "-" + string(status),
		CheckInDate:  checkIn,
		CheckOutDate: checkOut,
		Status:       status,
		TotalAmount:  decimal.RequireFromString(total),
		CurrencyCode: "USD",
		HotelName:    &hotel,
	}

	for _, roomID := range roomIDs {
		res.Lines = append(res.Lines, reservationModel.Line{
			ID:           "line-" + roomID,
			RoomID:       roomID,
			RoomTypeID:   "std",
			RoomTypeName: "Standard",
			RatePerNight: decimal.NewFromInt(100),
		})
	}

	return res
}

func TestReportService_Occupancy(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	query := dto.ReportQuery{From: "2026-02-01", To: "2026-02-02"}

	f.rooms.EXPECT().ListActive(gomock.Any()).Return(standardRooms()[:2], nil).Times(1)
	f.reservations.EXPECT().
		FetchInWindow(gomock.Any(), reservationModel.Window{
			From:        date(2026, 2, 1),
			ToExclusive: date(2026, 2, 3),
			Statuses:    []reservationModel.Status{reservationModel.StatusCheckedIn, reservationModel.StatusCheckedOut},
		}).
		Return([]reservationModel.Reservation{
			reservation(reservationModel.StatusCheckedOut, date(2026, 2, 1), date(2026, 2, 3), "200", "room-1"),
		}, nil).
		Times(1)

	res, err := f.svc.Occupancy(ctx, query)
	require.NoError(t, err)

	assert.Equal(t, "2026-02-01", res.From)
	assert.Equal(t, "2026-02-02", res.To)
	assert.Equal(t, "actual", res.Mode)
	assert.Equal(t, 2, res.TotalRooms)
	assert.Equal(t, 4, res.SupplyRoomNights)
	assert.Equal(t, 2, res.SoldRoomNights)
	assert.True(t, res.OccupancyRate.Equal(decimal.RequireFromString("0.5")))

	f.waitForCachedKeys(t, "report:occupancy:2026-02-10:", 1)

	cached, err := f.svc.Occupancy(ctx, query)
	require.NoError(t, err)
	assert.Equal(t, res.SoldRoomNights, cached.SoldRoomNights)
	assert.True(t, res.OccupancyRate.Equal(cached.OccupancyRate.Decimal))
}

func TestReportService_OccupancyCollapsesBackwardsRange(t *testing.T) {
	f := newFixture(t)

	f.rooms.EXPECT().ListActive(gomock.Any()).Return(standardRooms(), nil)
	f.reservations.EXPECT().
		FetchInWindow(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, window reservationModel.Window) ([]reservationModel.Reservation, error) {
			assert.Equal(t, date(2026, 2, 5), window.From)
			assert.Equal(t, date(2026, 2, 6), window.ToExclusive)
			assert.Equal(t, []reservationModel.Status{reservationModel.StatusConfirmed, reservationModel.StatusDraft}, window.Statuses)

			return nil, nil
		})

	res, err := f.svc.Occupancy(context.Background(), dto.ReportQuery{From: "2026-02-05", To: "2026-02-01", Mode: "forecast"})
	require.NoError(t, err)

	assert.Equal(t, 1, res.Nights)
	assert.Equal(t, 2, res.TotalRooms, "out of service rooms are not supply")
	assert.Equal(t, "2026-02-05", res.To)
}

func TestReportService_InvalidQuery(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.svc.Occupancy(ctx, dto.ReportQuery{From: "yesterday"})
	assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))

	_, err = f.svc.Revenue(ctx, dto.ReportQuery{GroupBy: "week"})
	assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))

	_, err = f.svc.Dashboard(ctx, dto.ReportQuery{Mode: "budget"})
	assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
}

func TestReportService_Revenue(t *testing.T) {
	f := newFixture(t)

	f.reservations.EXPECT().
		FetchInWindow(gomock.Any(), reservationModel.Window{
			From:        date(2026, 2, 1),
			ToExclusive: date(2026, 2, 3),
			Statuses:    []reservationModel.Status{reservationModel.StatusConfirmed, reservationModel.StatusCheckedIn, reservationModel.StatusCheckedOut},
			Currency:    "USD",
		}).
		Return([]reservationModel.Reservation{
			reservation(reservationModel.StatusCheckedOut, date(2026, 2, 1), date(2026, 2, 3), "200", "room-1"),
			reservation(reservationModel.StatusConfirmed, date(2026, 2, 2), date(2026, 2, 4), "300", "room-2"),
		}, nil)

	res, err := f.svc.Revenue(context.Background(), dto.ReportQuery{From: "2026-02-01", To: "2026-02-03", GroupBy: "hotel"})
	require.NoError(t, err)

	assert.Equal(t, "hotel", res.GroupBy)
	assert.Equal(t, "USD", res.Currency)
	assert.Equal(t, "2026-02-03", res.To)
	assert.True(t, res.Total.Equal(decimal.NewFromInt(200)), "confirmed stays are forecast only")
	require.Len(t, res.Buckets, 1)
	assert.Equal(t, "Grand", res.Buckets[0].Name)
	assert.Equal(t, 2, res.Buckets[0].Nights)
}

func TestReportService_RevenueFetchError(t *testing.T) {
	f := newFixture(t)
	boom := errors.New("connection refused")

	f.reservations.EXPECT().FetchInWindow(gomock.Any(), gomock.Any()).Return(nil, boom)

	_, err := f.svc.Revenue(context.Background(), dto.ReportQuery{})

	require.ErrorIs(t, err, boom)
	assert.Equal(t, http.StatusInternalServerError, failure.GetCode(err))
	assert.Empty(t, f.redis.Keys())
}

func expectDashboardFetches(f fixture, expenses []expenseModel.Expense, expenseErr error) {
	f.rooms.EXPECT().ListActive(gomock.Any()).Return(standardRooms()[:2], nil)
	f.reservations.EXPECT().
		FetchInWindow(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, window reservationModel.Window) ([]reservationModel.Reservation, error) {
			stay := reservation(reservationModel.StatusCheckedOut, date(2026, 2, 1), date(2026, 2, 2), "200", "room-1", "room-2")

			return []reservationModel.Reservation{stay}, nil
		}).
		Times(2)
	f.expenses.EXPECT().
		FetchInRange(gomock.Any(), expenseModel.Range{From: date(2026, 2, 1), To: date(2026, 2, 1), Currency: "USD"}).
		Return(expenses, expenseErr)
}

func TestReportService_Dashboard(t *testing.T) {
	f := newFixture(t)

	expectDashboardFetches(f, []expenseModel.Expense{
		{ID: "e1", BusinessDate: date(2026, 2, 1), CategoryID: "c-util", CategoryName: "Utilities", Amount: decimal.NewFromInt(30), CurrencyCode: "USD"},
	}, nil)

	res, err := f.svc.Dashboard(context.Background(), dto.ReportQuery{From: "2026-02-01", To: "2026-02-02", IncludeExpenseCategories: true})
	require.NoError(t, err)

	require.Len(t, res.Days, 2)
	assert.True(t, res.Days[0].ADR.Equal(decimal.NewFromInt(100)))
	assert.True(t, res.Days[0].RevPAR.Equal(decimal.NewFromInt(100)))
	assert.True(t, res.Days[0].NetProfit.Equal(decimal.NewFromInt(170)))
	assert.Equal(t, 2, res.Summary.SoldRoomNights)
	assert.Equal(t, 4, res.Summary.SupplyRoomNights)
	assert.True(t, res.Summary.AvgADR.Equal(decimal.NewFromInt(100)))
	assert.True(t, res.Summary.AvgRevPAR.Equal(decimal.NewFromInt(50)))
	require.Len(t, res.ExpenseCategories, 1)

	f.waitForCachedKeys(t, "report:dashboard:2026-02-10:", 1)
}

func TestReportService_DashboardFetchError(t *testing.T) {
	f := newFixture(t)
	boom := errors.New("timeout")

	expectDashboardFetches(f, nil, boom)

	_, err := f.svc.Dashboard(context.Background(), dto.ReportQuery{From: "2026-02-01", To: "2026-02-02"})

	require.ErrorIs(t, err, boom)
	assert.Equal(t, http.StatusInternalServerError, failure.GetCode(err))
}

func TestReportService_DashboardDefaults(t *testing.T) {
	f := newFixture(t)

	f.rooms.EXPECT().ListActive(gomock.Any()).Return(nil, nil)
	f.reservations.EXPECT().FetchInWindow(gomock.Any(), gomock.Any()).Return(nil, nil).Times(2)
	f.expenses.EXPECT().
		FetchInRange(gomock.Any(), expenseModel.Range{From: date(2026, 2, 10), To: date(2026, 2, 16), Currency: "EUR"}).
		Return(nil, nil)

	res, err := f.svc.Dashboard(context.Background(), dto.ReportQuery{Currency: "EUR", Mode: "forecast"})
	require.NoError(t, err)

	assert.Equal(t, "2026-02-10", res.From)
	assert.Equal(t, "2026-02-17", res.To)
	assert.Equal(t, "EUR", res.Currency)
	assert.Len(t, res.Days, 8)
	assert.True(t, res.Summary.TotalRevenue.IsZero())
}

func TestReportService_ExportDashboard(t *testing.T) {
	f := newFixture(t)

	expectDashboardFetches(f, nil, nil)

	var uploaded s3.Object

	f.storage.EXPECT().
		Upload(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, object s3.Object) (string, error) {
			uploaded = object

			return "https://cdn.example.com/" + object.Key(), nil
		})

	res, err := f.svc.ExportDashboard(context.Background(), dto.ReportQuery{From: "2026-02-01", To: "2026-02-02"})
	require.NoError(t, err)

	assert.Equal(t, "exports", uploaded.Bucket)
	assert.Equal(t, "reports", uploaded.Directory)
	assert.Equal(t, "text/csv", uploaded.ContentType)
	assert.True(t, strings.HasPrefix(uploaded.Name, "dashboard_2026-02-01_2026-02-02_"))
	assert.True(t, strings.HasSuffix(uploaded.Name, ".csv"))
	assert.True(t, strings.HasPrefix(string(uploaded.Body), "date,occupied_rooms"))

	assert.Equal(t, 2, res.Rows)
	assert.Equal(t, uploaded.Key(), res.ObjectKey)
	assert.Equal(t, "https://cdn.example.com/"+uploaded.Key(), res.URL)
}

func TestReportService_ExportUploadError(t *testing.T) {
	f := newFixture(t)
	boom := errors.New("access denied")

	expectDashboardFetches(f, nil, nil)
	f.storage.EXPECT().Upload(gomock.Any(), gomock.Any()).Return("", boom)

	_, err := f.svc.ExportDashboard(context.Background(), dto.ReportQuery{From: "2026-02-01", To: "2026-02-02"})
	assert.ErrorIs(t, err, boom)
}

func TestReportService_Invalidate(t *testing.T) {
	f := newFixture(t)

	require.NoError(t, f.redis.Set("report:dashboard:2026-02-10:abc", "{}"))
	require.NoError(t, f.redis.Set("report:revenue:2026-02-10:def", "{}"))
	require.NoError(t, f.redis.Set("limiter:127.0.0.1:curl", "3"))

	deleted, err := f.svc.Invalidate(context.Background(), "test")
	require.NoError(t, err)

	assert.Equal(t, 2, deleted)
	assert.Equal(t, []string{"limiter:127.0.0.1:curl"}, f.redis.Keys())
}

func TestReportService_InvalidateError(t *testing.T) {
	ctrl := gomock.NewController(t)
	redisCache := cacheMocks.NewMockRedisCache(ctrl)
	boom := errors.New("redis down")

	redisCache.EXPECT().Clear(gomock.Any(), "report:*").Return(0, boom)

	svc := service.New(nil, nil, nil, newConfig(), redisCache, nil, timezone.NewClock(), nil, otelMocks.NewOtel())

	_, err := svc.Invalidate(context.Background(), "kafka")
	assert.ErrorIs(t, err, boom)
}

func TestReportService_CacheReadFailureFallsThrough(t *testing.T) {
	ctrl := gomock.NewController(t)
	redisCache := cacheMocks.NewMockRedisCache(ctrl)
	rooms := roomMocks.NewMockRoom(ctrl)
	reservations := reservationMocks.NewMockReservation(ctrl)
	saved := make(chan struct{})

	redisCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("i/o timeout"))
	redisCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), 300).DoAndReturn(
		func(context.Context, string, any, int) error {
			close(saved)

			return nil
		})
	rooms.EXPECT().ListActive(gomock.Any()).Return(standardRooms(), nil)
	reservations.EXPECT().FetchInWindow(gomock.Any(), gomock.Any()).Return(nil, nil)

	svc := service.New(rooms, reservations, nil, newConfig(), redisCache, nil,
		timezone.NewFixedClock(date(2026, 2, 10)), nil, otelMocks.NewOtel())

	res, err := svc.Occupancy(context.Background(), dto.ReportQuery{})
	require.NoError(t, err)
	assert.Equal(t, 8, res.Nights)

	select {
	case <-saved:
	case <-time.After(time.Second):
		t.Fatal("report was not cached")
	}
}

func TestOccupancyWindow(t *testing.T) {
	today := date(2026, 2, 10)
	from := date(2026, 3, 1)
	before := date(2026, 2, 20)

	start, end := service.OccupancyWindow(nil, nil, today)
	assert.Equal(t, today, start)
	assert.Equal(t, date(2026, 2, 17), end)

	start, end = service.OccupancyWindow(&from, &before, today)
	assert.Equal(t, from, start)
	assert.Equal(t, from, end)

	start, end = service.OccupancyWindow(&from, &from, today)
	assert.Equal(t, from, start)
	assert.Equal(t, from, end)
}
