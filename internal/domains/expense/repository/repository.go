package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"hotelier/infras/otel"
	"hotelier/infras/postgres"
	"hotelier/internal/domains/expense/model"
	"hotelier/shared/constant"
	gDto "hotelier/shared/dto"
	gRepo "hotelier/shared/repository"
	"hotelier/shared/timezone"
)

type Expense interface {
	FetchInRange(ctx context.Context, rng model.Range) ([]model.Expense, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Expense]
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Expense {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Expense](model.EntityName, model.TableName, model.FieldID, db, otel),
		otel:       otel,
	}
}

func (r *repositoryImpl) FetchInRange(ctx context.Context, rng model.Range) (res []model.Expense, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".expense.FetchInRange")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	res, err = r.GetAll(ctx, gDto.QueryParams{SortBy: model.TableName + "." + model.FieldBusinessDate}, RangeFilter(rng))
	if err != nil {
		return nil, fmt.Errorf("fetch expenses in range: %w", err)
	}

	for idx := range res {
		res[idx].BusinessDate = timezone.TruncateDate(res[idx].BusinessDate)
	}

	return res, nil
}

// RangeFilter matches live expenses with From <= business_date <= To.
func RangeFilter(rng model.Range) gDto.FilterGroup {
	filters := []any{
		gDto.Filter{Field: model.FieldDeletedAt, Operator: gDto.FilterIsNull, Table: model.TableName},
		gDto.Filter{
			ArgName:  "range_start",
			Field:    model.FieldBusinessDate,
			Value:    rng.From.Format(constant.DateOnlyFormat),
			Operator: gDto.FilterOperatorGreaterEq,
			Table:    model.TableName,
		},
		gDto.Filter{
			ArgName:  "range_end",
			Field:    model.FieldBusinessDate,
			Value:    rng.To.Format(constant.DateOnlyFormat),
			Operator: gDto.FilterOperatorLessEq,
			Table:    model.TableName,
		},
	}

	if rng.Currency != "" {
		filters = append(filters, gDto.Filter{Field: model.FieldCurrencyCode, Value: rng.Currency, Operator: gDto.FilterOperatorEq, Table: model.TableName})
	}

	return gDto.FilterGroup{Operator: gDto.FilterGroupOperatorAnd, Filters: filters}
}
