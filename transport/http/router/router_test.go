package router_test

import (
	"context"
	"errors"
	"hotelier/config"
	"hotelier/infras/metrics"
	otelMocks "hotelier/infras/otel/mocks"
	reportMocks "hotelier/internal/domains/report/mocks"
	"hotelier/internal/domains/report/model/dto"
	"hotelier/internal/handlers/health"
	"hotelier/internal/handlers/report"
	"hotelier/shared/cache"
	"hotelier/shared/constant"
	"hotelier/shared/lifecycle"
	"hotelier/transport/http/middleware"
	"hotelier/transport/http/router"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alicebob/miniredis/v2"
	goRedis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newHandler(t *testing.T, dependencyErr error) (http.Handler, *reportMocks.MockReport) {
	t.Helper()

	cfg := &config.Config{}
	cfg.Metrics.Enable = true
	cfg.Metrics.Path = "/metrics"

	server := miniredis.RunT(t)
	client := goRedis.NewClient(&goRedis.Options{Addr: server.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	ot := otelMocks.NewOtel()
	svc := reportMocks.NewMockReport(gomock.NewController(t))

	state := lifecycle.New()
	state.Set(lifecycle.ServerStateReady)

	r := router.New(
		cfg,
		router.DomainHandlers{
			Report: report.New(svc, ot),
			Health: health.NewWithDependencies(state, ot, health.Dependency{
				Name: "postgres",
				Ping: func(context.Context) error { return dependencyErr },
			}),
		},
		middleware.NewAppMiddleware(ot, cfg, cache.NewRedisCache(client, ot)),
		metrics.New(cfg),
	)

	return r.Handler(), svc
}

func TestRouter_Health(t *testing.T) {
	handler, _ := newHandler(t, nil)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(constant.RequestHeaderRequestID))
}

func TestRouter_HealthDependencyDown(t *testing.T) {
	handler, _ := newHandler(t, errors.New("connection refused"))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestRouter_ReportsAreVersioned(t *testing.T) {
	handler, svc := newHandler(t, nil)

	svc.EXPECT().Revenue(gomock.Any(), gomock.Any()).Return(dto.RevenueResponse{GroupBy: "day"}, nil)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/reports/revenue", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/reports/revenue", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRouter_Metrics(t *testing.T) {
	handler, _ := newHandler(t, nil)

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/health", nil))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `hotelier_http_requests_total{route="/health",code="200"} 1`)
}
