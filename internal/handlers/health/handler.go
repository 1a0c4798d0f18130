package health

import (
	"context"
	"hotelier/infras/otel"
	"hotelier/infras/postgres"
	"hotelier/shared/constant"
	"hotelier/shared/lifecycle"
	"hotelier/transport/http/response"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	goRedis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const (
	checkTimeout = 2 * time.Second

	statusOK   = "ok"
	statusDown = "down"
)

// Dependency is one backing service probed by the health check.
type Dependency struct {
	Name string
	Ping func(ctx context.Context) error
}

type Status struct {
	Status       string            `json:"status"`
	State        string            `json:"state"`
	Dependencies map[string]string `json:"dependencies"`
}

type Handler struct {
	state        *lifecycle.State
	otel         otel.Otel
	dependencies []Dependency
}

func New(db *postgres.Connection, redisClient *goRedis.Client, state *lifecycle.State, otel otel.Otel) Handler {
	return NewWithDependencies(state, otel,
		Dependency{Name: "postgres", Ping: db.Ping},
		Dependency{Name: "redis", Ping: func(ctx context.Context) error { return redisClient.Ping(ctx).Err() }},
	)
}

func NewWithDependencies(state *lifecycle.State, otel otel.Otel, dependencies ...Dependency) Handler {
	return Handler{
		state:        state,
		otel:         otel,
		dependencies: dependencies,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/health", handler.Check)
}

// Check reports readiness and the reachability of every dependency.
// @Summary Health check
// @Tags Health
// @Produce json
// @Success 200 {object} response.Data[Status]
// @Failure 503 {object} response.Data[Status]
// @Router /health [get]
func (handler *Handler) Check(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".HealthCheck")
	defer scope.End()

	if !handler.state.Ready() {
		response.WithPreparingShutdown(writer)

		return
	}

	ctx, cancel := context.WithTimeout(ctx, checkTimeout)
	defer cancel()

	status := Status{Status: statusOK, State: handler.state.Get().String(), Dependencies: map[string]string{}}

	for _, dependency := range handler.dependencies {
		if err := dependency.Ping(ctx); err != nil {
			log.Ctx(ctx).Error().Err(err).Str("dependency", dependency.Name).Msg("health check failed")
			scope.TraceError(err)

			status.Status = statusDown
			status.Dependencies[dependency.Name] = statusDown

			continue
		}

		status.Dependencies[dependency.Name] = statusOK
	}

	if status.Status != statusOK {
		response.WithUnhealthy(writer, status)

		return
	}

	response.WithJSON(writer, http.StatusOK, status)
}
