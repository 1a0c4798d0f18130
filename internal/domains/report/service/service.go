package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"bytes"
	"context"
	"fmt"
	"hotelier/config"
	"hotelier/infras/metrics"
	"hotelier/infras/otel"
	"hotelier/infras/s3"
	expenseModel "hotelier/internal/domains/expense/model"
	expenseRepo "hotelier/internal/domains/expense/repository"
	"hotelier/internal/domains/report/engine"
	"hotelier/internal/domains/report/model"
	"hotelier/internal/domains/report/model/dto"
	reservationModel "hotelier/internal/domains/reservation/model"
	reservationRepo "hotelier/internal/domains/reservation/repository"
	roomModel "hotelier/internal/domains/room/model"
	roomRepo "hotelier/internal/domains/room/repository"
	"hotelier/shared"
	"hotelier/shared/cache"
	"hotelier/shared/constant"
	"hotelier/shared/timezone"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
)

const (
	cacheReport    = "report"
	cacheOccupancy = cacheReport + ":" + model.KindOccupancy
	cacheRevenue   = cacheReport + ":" + model.KindRevenue
	cacheDashboard = cacheReport + ":" + model.KindDashboard

	defaultWindowDays = 7
	exportExtension   = ".csv"
)

type Report interface {
	Occupancy(ctx context.Context, query dto.ReportQuery) (dto.OccupancyResponse, error)
	Revenue(ctx context.Context, query dto.ReportQuery) (dto.RevenueResponse, error)
	Dashboard(ctx context.Context, query dto.ReportQuery) (dto.DashboardResponse, error)
	ExportDashboard(ctx context.Context, query dto.ReportQuery) (dto.ExportResponse, error)
	Invalidate(ctx context.Context, source string) (int, error)
}

type serviceImpl struct {
	roomRepo        roomRepo.Room
	reservationRepo reservationRepo.Reservation
	expenseRepo     expenseRepo.Expense
	cfg             *config.Config
	cache           cache.RedisCache
	storage         s3.S3
	clock           timezone.Clock
	metrics         *metrics.Metrics
	otel            otel.Otel
	dashboards      singleflight.Group
}

func New(
	roomRepo roomRepo.Room,
	reservationRepo reservationRepo.Reservation,
	expenseRepo expenseRepo.Expense,
	cfg *config.Config,
	cache cache.RedisCache,
	storage s3.S3,
	clock timezone.Clock,
	metrics *metrics.Metrics,
	otel otel.Otel,
) Report {
	return &serviceImpl{
		roomRepo:        roomRepo,
		reservationRepo: reservationRepo,
		expenseRepo:     expenseRepo,
		cfg:             cfg,
		cache:           cache,
		storage:         storage,
		clock:           clock,
		metrics:         metrics,
		otel:            otel,
	}
}

func (s *serviceImpl) Occupancy(ctx context.Context, query dto.ReportQuery) (res dto.OccupancyResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".report.Occupancy")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	criteria, err := query.Criteria(s.cfg.Hotel.DefaultCurrency)
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	today := s.clock.Today()
	from, to := OccupancyWindow(criteria.From, criteria.To, today)
	scope.SetAttributes(map[string]any{"report.from": from, "report.to": to, "report.mode": string(criteria.Mode)})

	cacheKey := reportCacheKey(cacheOccupancy, today, from, to, criteria)
	if s.fromCache(ctx, model.KindOccupancy, cacheKey, &res) {
		return res, nil
	}

	rooms, err := s.fetchRooms(ctx)
	if err != nil {
		return res, err
	}

	reservations, err := s.fetchReservations(ctx, reservationModel.Window{
		From:        from,
		ToExclusive: to.AddDate(0, 0, 1),
		Statuses:    engine.OccupancyStatuses(criteria.Mode),
	})
	if err != nil {
		return res, err
	}

	result := engine.Occupancy(engine.OccupancyInput{
		From:             from,
		To:               to,
		Mode:             criteria.Mode,
		Reservations:     reservations,
		Supply:           engine.Supply(rooms),
		IncludeRoomTypes: criteria.IncludeRoomTypes,
	})

	res.FromResult(result)

	s.metrics.ReportBuilt(model.KindOccupancy, string(criteria.Mode))
	s.saveCache(ctx, cacheKey, res)

	return res, nil
}

func (s *serviceImpl) Revenue(ctx context.Context, query dto.ReportQuery) (res dto.RevenueResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".report.Revenue")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	criteria, err := query.Criteria(s.cfg.Hotel.DefaultCurrency)
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	today := s.clock.Today()
	from, toExclusive := engine.ResolveWindow(criteria.From, criteria.To, today, defaultWindowDays)

	cacheKey := reportCacheKey(cacheRevenue, today, from, toExclusive, criteria)
	if s.fromCache(ctx, model.KindRevenue, cacheKey, &res) {
		return res, nil
	}

	reservations, err := s.fetchReservations(ctx, reservationModel.Window{
		From:        from,
		ToExclusive: toExclusive,
		Statuses:    engine.RevenueStatuses(),
		Currency:    criteria.Currency,
	})
	if err != nil {
		return res, err
	}

	result := engine.Revenue(engine.RevenueInput{
		From:         from,
		ToExclusive:  toExclusive,
		Today:        today,
		Mode:         criteria.Mode,
		GroupBy:      criteria.GroupBy,
		Reservations: reservations,
	})

	res.FromResult(result, criteria.Currency)

	s.metrics.ReportBuilt(model.KindRevenue, string(criteria.Mode))
	s.saveCache(ctx, cacheKey, res)

	return res, nil
}

func (s *serviceImpl) Dashboard(ctx context.Context, query dto.ReportQuery) (res dto.DashboardResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".report.Dashboard")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	criteria, err := query.Criteria(s.cfg.Hotel.DefaultCurrency)
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	today := s.clock.Today()
	from, to := engine.ResolveWindow(criteria.From, criteria.To, today, s.dashboardDays())

	cacheKey := reportCacheKey(cacheDashboard, today, from, to, criteria)
	if s.fromCache(ctx, model.KindDashboard, cacheKey, &res) {
		return res, nil
	}

	// Identical concurrent requests share one build; a caller that gives up does not cancel it.
	build := s.dashboards.DoChan(cacheKey, func() (any, error) {
		return s.buildDashboard(context.WithoutCancel(ctx), criteria, from, to, today)
	})

	select {
	case <-ctx.Done():
		return res, fmt.Errorf("dashboard build abandoned: %w", ctx.Err())
	case out := <-build:
		if out.Err != nil {
			return res, out.Err //nolint:wrapcheck
		}

		scope.SetAttribute("dashboard.shared", out.Shared)

		res, _ = out.Val.(dto.DashboardResponse)
	}

	s.saveCache(ctx, cacheKey, res)

	return res, nil
}

func (s *serviceImpl) buildDashboard(ctx context.Context, criteria dto.Criteria, from, to, today time.Time) (res dto.DashboardResponse, err error) {
	var (
		rooms                 []roomModel.Room
		occupancyReservations []reservationModel.Reservation
		revenueReservations   []reservationModel.Reservation
		expenses              []expenseModel.Expense
	)

	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() (err error) {
		rooms, err = s.fetchRooms(groupCtx)

		return err
	})

	group.Go(func() (err error) {
		occupancyReservations, err = s.fetchReservations(groupCtx, reservationModel.Window{
			From:        from,
			ToExclusive: to.AddDate(0, 0, 1),
			Statuses:    engine.OccupancyStatuses(criteria.Mode),
		})

		return err
	})

	group.Go(func() (err error) {
		revenueReservations, err = s.fetchReservations(groupCtx, reservationModel.Window{
			From:        from,
			ToExclusive: to,
			Statuses:    engine.RevenueStatuses(),
			Currency:    criteria.Currency,
		})

		return err
	})

	group.Go(func() error {
		fetched, err := s.expenseRepo.FetchInRange(groupCtx, expenseModel.Range{
			From:     from,
			To:       to.AddDate(0, 0, -1),
			Currency: criteria.Currency,
		})
		if err != nil {
			log.Error().Err(err).Msg("failed to fetch expenses")

			return fmt.Errorf("failed to fetch expenses: %w", err)
		}

		expenses = fetched

		return nil
	})

	if err = group.Wait(); err != nil {
		return res, err //nolint:wrapcheck
	}

	result := engine.Dashboard(engine.DashboardInput{
		From:                     from,
		To:                       to,
		Today:                    today,
		Mode:                     criteria.Mode,
		Currency:                 criteria.Currency,
		Supply:                   engine.Supply(rooms),
		OccupancyReservations:    occupancyReservations,
		RevenueReservations:      revenueReservations,
		Expenses:                 expenses,
		IncludeRoomTypes:         criteria.IncludeRoomTypes,
		IncludeExpenseCategories: criteria.IncludeExpenseCategories,
	})

	res.FromResult(result)

	s.metrics.ReportBuilt(model.KindDashboard, string(criteria.Mode))

	return res, nil
}

// ExportDashboard uploads the dashboard day series as CSV and returns where it landed.
func (s *serviceImpl) ExportDashboard(ctx context.Context, query dto.ReportQuery) (res dto.ExportResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".report.ExportDashboard")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	dashboard, err := s.Dashboard(ctx, query)
	if err != nil {
		return res, err
	}

	buf := &bytes.Buffer{}

	rows, err := dashboard.WriteCSV(buf)
	if err != nil {
		log.Error().Err(err).Msg("failed to render dashboard csv")

		return res, fmt.Errorf("failed to render dashboard csv: %w", err)
	}

	object := s3.Object{
		Bucket:      s.cfg.Report.ExportBucket,
		Directory:   s.cfg.Report.ExportDirectory,
		Name:        fmt.Sprintf("%s_%s_%s_%s%s", model.KindDashboard, dashboard.From, dashboard.To, uuid.NewString(), exportExtension),
		ContentType: constant.ContentTypeCSV,
		Body:        buf.Bytes(),
	}

	url, err := s.storage.Upload(ctx, object)
	if err != nil {
		log.Error().Err(err).Msg("failed to upload dashboard export")

		return res, fmt.Errorf("failed to upload dashboard export: %w", err)
	}

	return dto.ExportResponse{URL: url, ObjectKey: object.Key(), Rows: rows}, nil
}

// Invalidate drops every cached report.
func (s *serviceImpl) Invalidate(ctx context.Context, source string) (deleted int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".report.Invalidate")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	deleted, err = s.cache.Clear(ctx, shared.BuildCacheKey(cacheReport, constant.Asterix))
	if err != nil {
		log.Error().Err(err).Str("source", source).Msg("failed to invalidate report caches")

		return deleted, fmt.Errorf("failed to invalidate report caches: %w", err)
	}

	s.metrics.CacheInvalidated(source)

	log.Info().Str("source", source).Int("deleted", deleted).Msg("report caches invalidated")

	return deleted, nil
}

func (s *serviceImpl) fetchRooms(ctx context.Context) ([]roomModel.Room, error) {
	rooms, err := s.roomRepo.ListActive(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to fetch rooms")

		return nil, fmt.Errorf("failed to fetch rooms: %w", err)
	}

	return rooms, nil
}

func (s *serviceImpl) fetchReservations(ctx context.Context, window reservationModel.Window) ([]reservationModel.Reservation, error) {
	reservations, err := s.reservationRepo.FetchInWindow(ctx, window)
	if err != nil {
		log.Error().Err(err).Msg("failed to fetch reservations")

		return nil, fmt.Errorf("failed to fetch reservations: %w", err)
	}

	return reservations, nil
}

func (s *serviceImpl) fromCache(ctx context.Context, kind, cacheKey string, res any) bool {
	if err := s.cache.Get(ctx, cacheKey, res); err != nil {
		if !cache.IsMiss(err) {
			log.Warn().Err(err).Str("cacheKey", cacheKey).Msg("failed to read report from cache")
		}

		return false
	}

	log.Info().Str("cacheKey", cacheKey).Msg("cache hit for " + kind + " report")
	s.metrics.ReportCacheHit(kind)

	return true
}

func (s *serviceImpl) saveCache(ctx context.Context, cacheKey string, res any) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Report.CacheTTL); err != nil {
			log.Error().Err(err).Str("cacheKey", cacheKey).Msg("failed to save report to cache")
		}
	}()
}

func (s *serviceImpl) dashboardDays() int {
	if s.cfg.Hotel.DashboardDefaultDays > 0 {
		return s.cfg.Hotel.DashboardDefaultDays
	}

	return defaultWindowDays
}

// OccupancyWindow resolves an inclusive night range: from defaults to today, to to from+7,
// and a to before from collapses to a single night.
func OccupancyWindow(from, to *time.Time, today time.Time) (time.Time, time.Time) {
	start := today
	if from != nil {
		start = *from
	}

	end := start.AddDate(0, 0, defaultWindowDays)
	if to != nil {
		end = *to
	}

	if end.Before(start) {
		end = start
	}

	return start, end
}

// reportCacheKey scopes the key by hotel today since mode splits move with it.
func reportCacheKey(prefix string, today, from, to time.Time, criteria dto.Criteria) string {
	return shared.BuildCacheKeyWithQuery(
		shared.BuildCacheKey(prefix, today.Format(constant.DateOnlyFormat)),
		from.Format(constant.DateOnlyFormat),
		to.Format(constant.DateOnlyFormat),
		criteria,
	)
}
