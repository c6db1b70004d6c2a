package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=User=MockUserService

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/lib/pq"
	"github.com/rs/zerolog/log"

	"lend/config"
	"lend/infras/otel"
	"lend/internal/domains/user/model"
	"lend/internal/domains/user/model/dto"
	"lend/internal/domains/user/repository"
	"lend/shared"
	"lend/shared/cache"
	"lend/shared/constant"
	gDto "lend/shared/dto"
	"lend/shared/failure"
	"lend/shared/timezone"
)

const (
	cacheGetUser    = "user:get"
	cacheGetAllUser = "user:gets"
)

type User interface {
	Create(ctx context.Context, req dto.CreateUserRequest) (dto.UserResponse, error)
	Update(ctx context.Context, id int64, req dto.UpdateUserRequest) (dto.UserResponse, error)
	Get(ctx context.Context, id int64) (dto.UserResponse, error)
	GetAll(ctx context.Context) ([]dto.UserResponse, error)
	Delete(ctx context.Context, id int64) error
}

type serviceImpl struct {
	repo  repository.User
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.User, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) User {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateUserRequest) (res dto.UserResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".user.Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user := req.ToModel()
	now := timezone.Now()
	user.CreatedAt = now
	user.ModifiedAt = now

	id, err := s.repo.Create(ctx, user)
	if err != nil {
		if isUniqueViolation(err) {
			return res, failure.Conflict("email already in use") //nolint:wrapcheck
		}

		return res, fmt.Errorf("failed to create user: %w", err)
	}

	user.ID = id

	s.invalidateLists(ctx)

	res.FromModel(user)

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, id int64, req dto.UpdateUserRequest) (res dto.UserResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".user.Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	user, err := s.repo.Get(ctx, filter)
	if err != nil {
		return res, fmt.Errorf("failed to get user: %w", err)
	}

	if user.ID == 0 {
		return res, failure.NotFound("user not found") //nolint:wrapcheck
	}

	updated := map[string]any{
		constant.FieldModifiedAt: timezone.Now(),
	}

	if req.Name != nil {
		user.Name = *req.Name
		updated[model.FieldName] = *req.Name
	}

	if req.Email != nil {
		user.Email = *req.Email
		updated[model.FieldEmail] = *req.Email
	}

	if err = s.repo.Update(ctx, updated, filter); err != nil {
		if isUniqueViolation(err) {
			return res, failure.Conflict("email already in use") //nolint:wrapcheck
		}

		return res, fmt.Errorf("failed to update user: %w", err)
	}

	s.invalidate(ctx, id)

	res.FromModel(user)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id int64) (res dto.UserResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".user.Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetUser, strconv.FormatInt(id, 10))

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for user")

		return res, nil
	}

	user, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		return res, fmt.Errorf("failed to get user: %w", err)
	}

	if user.ID == 0 {
		return res, failure.NotFound("user not found") //nolint:wrapcheck
	}

	res.FromModel(user)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save user to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context) (res []dto.UserResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".user.GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetAllUser)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for users")

		return res, nil
	}

	params := gDto.QueryParams{
		SortBy:  model.FieldID,
		SortDir: gDto.SortDirAsc,
	}

	users, err := s.repo.GetAll(ctx, params, gDto.FilterGroup{})
	if err != nil {
		return res, fmt.Errorf("failed to get users: %w", err)
	}

	res = dto.FromModels(users)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save users to cache")
		}
	}()

	return res, nil
}

// Delete removes the user row; bookings, items and requests referencing the
// user go with it through the schema's cascading constraints.
func (s *serviceImpl) Delete(ctx context.Context, id int64) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".user.Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exists, err := s.repo.Exist(ctx, filter)
	if err != nil {
		return fmt.Errorf("failed to check user: %w", err)
	}

	if !exists {
		return failure.NotFound("user not found") //nolint:wrapcheck
	}

	if err = s.repo.Delete(ctx, filter); err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}

	s.invalidate(ctx, id)

	return nil
}

func (s *serviceImpl) invalidate(ctx context.Context, id int64) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetUser, strconv.FormatInt(id, 10))); err != nil {
			log.Error().Err(err).Msg("failed to invalidate user cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllUser)
	}()
}

func (s *serviceImpl) invalidateLists(ctx context.Context) {
	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllUser)
	}()
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error

	return errors.As(err, &pqErr) && string(pqErr.Code) == constant.PqErrorCodeUniqueViolation
}
