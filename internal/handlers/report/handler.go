package report

import (
	"hotelier/infras/otel"
	"hotelier/internal/domains/report/model/dto"
	"hotelier/internal/domains/report/service"
	"hotelier/shared/constant"
	"hotelier/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Report
	otel    otel.Otel
}

func New(service service.Report, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/reports", func(routerGroup chi.Router) {
		routerGroup.Get("/occupancy", handler.GetOccupancy)
		routerGroup.Get("/revenue", handler.GetRevenue)
		routerGroup.Get("/dashboard", handler.GetDashboard)
		routerGroup.Post("/dashboard/export", handler.ExportDashboard)
	})
}

func queryFromRequest(request *http.Request) dto.ReportQuery {
	query := dto.ReportQuery{}
	query.FromRequest(request)

	return query
}

// GetOccupancy returns night-by-night occupancy.
// @Summary Occupancy report
// @Description Distinct occupied rooms per night for from..to inclusive. Actual counts checked-in and checked-out stays, forecast counts confirmed and draft ones.
// @Tags Report
// @Produce json
// @Param from query string false "First night (yyyy-MM-dd), defaults to hotel today"
// @Param to query string false "Last night inclusive (yyyy-MM-dd), defaults to from + 7 days"
// @Param mode query string false "actual or forecast" Enums(actual, forecast)
// @Param currency query string false "ISO 4217 currency code"
// @Param include_room_types query bool false "Add a per room type breakdown"
// @Success 200 {object} response.Data[dto.OccupancyResponse]
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/reports/occupancy [get]
func (handler *Handler) GetOccupancy(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetOccupancy")
	defer scope.End()

	res, err := handler.service.Occupancy(ctx, queryFromRequest(request))
	if err != nil {
		scope.TraceError(err)
		log.Ctx(ctx).Error().Err(err).Msg("failed to build occupancy report")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// GetRevenue returns prorated revenue grouped by the requested key.
// @Summary Revenue report
// @Description Prorated nightly revenue for nights from..to-1, grouped by day, room_type, room, branch or hotel.
// @Tags Report
// @Produce json
// @Param from query string false "First night (yyyy-MM-dd), defaults to hotel today"
// @Param to query string false "End date exclusive (yyyy-MM-dd), defaults to from + 7 days"
// @Param mode query string false "actual or forecast" Enums(actual, forecast)
// @Param group_by query string false "Bucket key" Enums(day, room_type, room, branch, hotel)
// @Param currency query string false "ISO 4217 currency code, defaults to the hotel currency"
// @Success 200 {object} response.Data[dto.RevenueResponse]
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/reports/revenue [get]
func (handler *Handler) GetRevenue(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRevenue")
	defer scope.End()

	res, err := handler.service.Revenue(ctx, queryFromRequest(request))
	if err != nil {
		scope.TraceError(err)
		log.Ctx(ctx).Error().Err(err).Msg("failed to build revenue report")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// GetDashboard combines occupancy, revenue and expenses.
// @Summary Dashboard
// @Description Daily occupancy, revenue, expense, net profit, ADR and RevPAR with range totals.
// @Tags Report
// @Produce json
// @Param from query string false "First day (yyyy-MM-dd), defaults to hotel today"
// @Param to query string false "Last day (yyyy-MM-dd), defaults to from + the configured window"
// @Param mode query string false "actual or forecast" Enums(actual, forecast)
// @Param currency query string false "ISO 4217 currency code, defaults to the hotel currency"
// @Param include_room_types query bool false "Add a per room type breakdown"
// @Param include_expense_categories query bool false "Add expense totals per category"
// @Success 200 {object} response.Data[dto.DashboardResponse]
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/reports/dashboard [get]
func (handler *Handler) GetDashboard(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetDashboard")
	defer scope.End()

	res, err := handler.service.Dashboard(ctx, queryFromRequest(request))
	if err != nil {
		scope.TraceError(err)
		log.Ctx(ctx).Error().Err(err).Msg("failed to build dashboard")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// ExportDashboard stores the dashboard as CSV in object storage.
// @Summary Export dashboard
// @Description Renders the dashboard day series as CSV, uploads it and returns its URL.
// @Tags Report
// @Produce json
// @Param from query string false "First day (yyyy-MM-dd)"
// @Param to query string false "Last day (yyyy-MM-dd)"
// @Param mode query string false "actual or forecast" Enums(actual, forecast)
// @Param currency query string false "ISO 4217 currency code"
// @Success 201 {object} response.Data[dto.ExportResponse]
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/reports/dashboard/export [post]
func (handler *Handler) ExportDashboard(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ExportDashboard")
	defer scope.End()

	res, err := handler.service.ExportDashboard(ctx, queryFromRequest(request))
	if err != nil {
		scope.TraceError(err)
		log.Ctx(ctx).Error().Err(err).Msg("failed to export dashboard")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Dashboard exported to " + res.ObjectKey)

	response.WithJSON(writer, http.StatusCreated, res)
}
