package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"lend/infras/otel"
	"lend/infras/postgres"
	"lend/internal/domains/booking/model"
	"lend/shared"
	"lend/shared/constant"
	gDto "lend/shared/dto"
	gRepo "lend/shared/repository"
	"lend/shared/timezone"
)

type Booking interface {
	Create(ctx context.Context, booking model.Booking) (model.Booking, error)
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Booking, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Booking, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	UpdateStatus(ctx context.Context, bookingID int64, decide func(model.Booking) (string, error)) (model.Booking, error)
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

// Create inserts the booking and reads it back so the response carries the
// assigned id and the owner id resolved through the items join.
func (repo *repositoryImpl) Create(ctx context.Context, booking model.Booking) (model.Booking, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.Create")
	defer scope.End()

	id, err := repo.InsertReturningID(ctx, booking)
	if err != nil {
		scope.TraceError(err)

		return model.Booking{}, fmt.Errorf("failed to create booking: %w", err)
	}

	created, err := repo.Repository.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		scope.TraceError(err)

		return model.Booking{}, fmt.Errorf("failed to read created booking: %w", err)
	}

	return created, nil
}

// UpdateStatus runs a read-check-write on a single booking row inside one
// transaction. The decide callback sees the current row and either returns
// the next status or an error that aborts the update untouched.
func (repo *repositoryImpl) UpdateStatus(ctx context.Context, bookingID int64, decide func(model.Booking) (string, error)) (model.Booking, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.UpdateStatus")
	defer scope.End()

	tx, err := repo.db.Write.BeginTxx(ctx, nil)
	if err != nil {
		scope.TraceError(err)

		return model.Booking{}, fmt.Errorf("failed to begin transaction: %w", err)
	}

	filter := shared.FilterByID(bookingID, model.FieldID, model.TableName)

	booking, err := repo.GetTx(ctx, tx, filter)
	if err != nil {
		rollback(tx)
		scope.TraceError(err)

		return model.Booking{}, fmt.Errorf("failed to get booking: %w", err)
	}

	status, err := decide(booking)
	if err != nil {
		rollback(tx)

		return booking, err
	}

	updated := map[string]any{
		model.FieldStatus:        status,
		constant.FieldModifiedAt: timezone.Now(),
	}

	if err = repo.UpdateTx(ctx, tx, updated, filter); err != nil {
		rollback(tx)
		scope.TraceError(err)

		return booking, fmt.Errorf("failed to update booking status: %w", err)
	}

	if err = tx.Commit(); err != nil {
		scope.TraceError(err)

		return booking, fmt.Errorf("failed to commit booking status: %w", err)
	}

	booking.Status = status

	return booking, nil
}

func rollback(tx interface{ Rollback() error }) {
	if err := tx.Rollback(); err != nil {
		log.Error().Err(err).Msg("failed to rollback booking transaction")
	}
}
