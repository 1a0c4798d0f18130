package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"hotelier/infras/otel"
	"hotelier/infras/postgres"
	"hotelier/internal/domains/room/model"
	"hotelier/shared/constant"
	gDto "hotelier/shared/dto"
	gRepo "hotelier/shared/repository"
)

type Room interface {
	ListActive(ctx context.Context) ([]model.Room, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Room]
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Room {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Room](model.EntityName, model.TableName, model.FieldID, db, otel),
		otel:       otel,
	}
}

// ListActive returns every non-deleted active room with its room type name.
// Out-of-service rooms are included; callers decide whether they count as supply.
func (r *repositoryImpl) ListActive(ctx context.Context) (res []model.Room, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".room.ListActive")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	res, err = r.GetAll(ctx, gDto.QueryParams{SortBy: model.TableName + "." + model.FieldRoomNumber}, ActiveFilter())
	if err != nil {
		return nil, fmt.Errorf("list active rooms: %w", err)
	}

	return res, nil
}

func ActiveFilter() gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: model.FieldIsActive, Value: true, Operator: gDto.FilterOperatorEq, Table: model.TableName},
			gDto.Filter{Field: model.FieldDeletedAt, Operator: gDto.FilterIsNull, Table: model.TableName},
		},
	}
}
