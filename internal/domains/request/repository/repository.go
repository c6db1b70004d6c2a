package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"lend/infras/otel"
	"lend/infras/postgres"
	"lend/internal/domains/request/model"
	gDto "lend/shared/dto"
	gRepo "lend/shared/repository"
)

type Request interface {
	Create(ctx context.Context, request model.ItemRequest) (int64, error)
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.ItemRequest, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.ItemRequest, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.ItemRequest]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Request {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.ItemRequest](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

func (repo *repositoryImpl) Create(ctx context.Context, request model.ItemRequest) (int64, error) {
	return repo.InsertReturningID(ctx, request)
}
