package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"hotelier/infras/otel"
	"hotelier/infras/postgres"
	"hotelier/internal/domains/reservation/model"
	"hotelier/shared/constant"
	gDto "hotelier/shared/dto"
	gRepo "hotelier/shared/repository"
	"hotelier/shared/timezone"
	"slices"
)

const lineBatchSize = 500

type Reservation interface {
	FetchInWindow(ctx context.Context, window model.Window) ([]model.Reservation, error)
}

type repositoryImpl struct {
	reservations gRepo.Repository[model.Reservation]
	lines        gRepo.Repository[model.Line]
	otel         otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Reservation {
	return &repositoryImpl{
		reservations: gRepo.NewRepository[model.Reservation](model.EntityName, model.TableName, model.FieldID, db, otel),
		lines:        gRepo.NewRepository[model.Line](model.LineEntity, model.LineTableName, model.FieldID, db, otel),
		otel:         otel,
	}
}

// FetchInWindow loads non-deleted reservations whose stay overlaps the window, with their lines.
func (r *repositoryImpl) FetchInWindow(ctx context.Context, window model.Window) (res []model.Reservation, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".reservation.FetchInWindow")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttributes(map[string]any{
		"window.from":     window.From.Format(constant.DateOnlyFormat),
		"window.to":       window.ToExclusive.Format(constant.DateOnlyFormat),
		"window.currency": window.Currency,
	})

	res, err = r.reservations.GetAll(ctx, gDto.QueryParams{SortBy: model.TableName + "." + model.FieldCheckInDate}, WindowFilter(window))
	if err != nil {
		return nil, fmt.Errorf("fetch reservations in window: %w", err)
	}

	if len(res) == 0 {
		return res, nil
	}

	byID := make(map[string]int, len(res))
	ids := make([]string, 0, len(res))

	for idx := range res {
		res[idx].CheckInDate = timezone.TruncateDate(res[idx].CheckInDate)
		res[idx].CheckOutDate = timezone.TruncateDate(res[idx].CheckOutDate)
		byID[res[idx].ID] = idx
		ids = append(ids, res[idx].ID)
	}

	for batch := range slices.Chunk(ids, lineBatchSize) {
		lines, err := r.lines.GetAll(ctx, gDto.QueryParams{SortBy: model.LineTableName + "." + model.FieldSortOrder}, LinesFilter(batch))
		if err != nil {
			return nil, fmt.Errorf("fetch reservation lines: %w", err)
		}

		for _, line := range lines {
			if idx, ok := byID[line.ReservationID]; ok {
				res[idx].Lines = append(res[idx].Lines, line)
			}
		}
	}

	scope.SetAttribute("reservations.count", len(res))

	return res, nil
}

// WindowFilter matches check_in < ToExclusive AND check_out > From on live reservations.
func WindowFilter(window model.Window) gDto.FilterGroup {
	filters := []any{
		gDto.Filter{Field: model.FieldDeletedAt, Operator: gDto.FilterIsNull, Table: model.TableName},
		gDto.Filter{
			ArgName:  "window_end",
			Field:    model.FieldCheckInDate,
			Value:    window.ToExclusive.Format(constant.DateOnlyFormat),
			Operator: gDto.FilterOperatorLess,
			Table:    model.TableName,
		},
		gDto.Filter{
			ArgName:  "window_start",
			Field:    model.FieldCheckOutDate,
			Value:    window.From.Format(constant.DateOnlyFormat),
			Operator: gDto.FilterOperatorGreater,
			Table:    model.TableName,
		},
	}

	if len(window.Statuses) > 0 {
		statuses := make([]string, len(window.Statuses))
		for idx, status := range window.Statuses {
			statuses[idx] = string(status)
		}

		filters = append(filters, gDto.Filter{Field: model.FieldStatus, Value: statuses, Operator: gDto.FilterOperatorIn, Table: model.TableName})
	}

	if window.Currency != "" {
		filters = append(filters, gDto.Filter{Field: model.FieldCurrencyCode, Value: window.Currency, Operator: gDto.FilterOperatorEq, Table: model.TableName})
	}

	return gDto.FilterGroup{Operator: gDto.FilterGroupOperatorAnd, Filters: filters}
}

func LinesFilter(reservationIDs []string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: model.FieldReservationID, Value: reservationIDs, Operator: gDto.FilterOperatorIn, Table: model.LineTableName},
		},
	}
}
