package repository

//go:generate go run go.uber.org/mock/mockgen -source=./comment.go -destination=../mocks/comment_mock.go -package=mocks

import (
	"context"
	"fmt"

	"lend/infras/otel"
	"lend/infras/postgres"
	"lend/internal/domains/item/model"
	"lend/shared"
	gDto "lend/shared/dto"
	gRepo "lend/shared/repository"
)

type Comment interface {
	Create(ctx context.Context, comment model.Comment) (model.Comment, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Comment, error)
}

type commentRepositoryImpl struct {
	gRepo.Repository[model.Comment]
	db   *postgres.Connection
	otel otel.Otel
}

func NewComment(db *postgres.Connection, otel otel.Otel) Comment {
	return &commentRepositoryImpl{
		Repository: gRepo.NewRepository[model.Comment](model.CommentEntityName, model.CommentTableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// Create inserts the comment and reads it back with the author name resolved
// through the users join.
func (repo *commentRepositoryImpl) Create(ctx context.Context, comment model.Comment) (model.Comment, error) {
	id, err := repo.InsertReturningID(ctx, comment)
	if err != nil {
		return model.Comment{}, fmt.Errorf("failed to create comment: %w", err)
	}

	created, err := repo.Repository.Get(ctx, shared.FilterByID(id, model.FieldID, model.CommentTableName))
	if err != nil {
		return model.Comment{}, fmt.Errorf("failed to read created comment: %w", err)
	}

	return created, nil
}
