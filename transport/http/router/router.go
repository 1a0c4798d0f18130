package router

import (
	"hotelier/config"
	"hotelier/infras/metrics"
	"hotelier/internal/handlers/health"
	"hotelier/internal/handlers/report"
	"hotelier/transport/http/middleware"
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	// registers the generated OpenAPI document with swag
	_ "hotelier/docs"
)

type DomainHandlers struct {
	Report report.Handler
	Health health.Handler
}

type Router struct {
	Config         *config.Config
	DomainHandlers DomainHandlers
	Middleware     middleware.AppMiddleware
	Metrics        *metrics.Metrics
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Use(
		chiMiddleware.Recoverer,
		r.Middleware.RequestID,
		r.Middleware.Tracing,
		r.Metrics.Middleware,
		r.Middleware.CORS(),
	)

	r.DomainHandlers.Health.Router(router)

	if r.Metrics.Enabled() {
		router.Method(http.MethodGet, r.Config.Metrics.Path, r.Metrics.Handler())
	}

	router.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	router.Route("/v1", func(routerGroup chi.Router) {
		routerGroup.Use(r.Middleware.RateLimit())

		r.DomainHandlers.Report.Router(routerGroup)
	})
}

// Handler builds a fresh chi mux with every route mounted.
func (r *Router) Handler() http.Handler {
	mux := chi.NewRouter()
	r.SetupRoutes(mux)

	return mux
}

func New(cfg *config.Config, domainHandlers DomainHandlers, appMiddleware middleware.AppMiddleware, metrics *metrics.Metrics) Router {
	return Router{
		Config:         cfg,
		DomainHandlers: domainHandlers,
		Middleware:     appMiddleware,
		Metrics:        metrics,
	}
}
