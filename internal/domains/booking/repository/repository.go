package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"cabwise/infras/otel"
	"cabwise/infras/postgres"
	"cabwise/internal/domains/booking/model"
	"cabwise/shared/constant"
	gDto "cabwise/shared/dto"
	gRepo "cabwise/shared/repository"
)

type Booking interface {
	Insert(ctx context.Context, model model.Booking) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Booking, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Booking, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Recent(ctx context.Context, limit int) ([]model.Booking, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Booking]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Booking {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Booking](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// Recent returns the newest rows, newest first, for the duplicate scan.
func (repo *repositoryImpl) Recent(ctx context.Context, limit int) ([]model.Booking, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.Recent")
	defer scope.End()

	params := gDto.QueryParams{
		Limit:   limit,
		SortBy:  model.FieldTimestamp,
		SortDir: constant.DefaultValueSortDir,
	}

	return repo.GetAll(ctx, params, gDto.FilterGroup{}) //nolint:wrapcheck
}
