package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Request=MockRequestService

import (
	"context"
	"fmt"

	"lend/infras/otel"
	itemModel "lend/internal/domains/item/model"
	itemDto "lend/internal/domains/item/model/dto"
	itemRepository "lend/internal/domains/item/repository"
	"lend/internal/domains/request/model"
	"lend/internal/domains/request/model/dto"
	"lend/internal/domains/request/repository"
	userModel "lend/internal/domains/user/model"
	userRepository "lend/internal/domains/user/repository"
	"lend/shared"
	"lend/shared/constant"
	gDto "lend/shared/dto"
	"lend/shared/failure"
	"lend/shared/timezone"
)

type Request interface {
	Create(ctx context.Context, requesterID int64, req dto.CreateRequestRequest) (dto.RequestResponse, error)
	ListOwn(ctx context.Context, requesterID int64) ([]dto.RequestResponse, error)
	ListOthers(ctx context.Context, userID int64, offset, limit int) ([]dto.RequestResponse, error)
	Get(ctx context.Context, userID, requestID int64) (dto.RequestResponse, error)
}

type serviceImpl struct {
	repo  repository.Request
	items itemRepository.Item
	users userRepository.User
	otel  otel.Otel
}

func New(repo repository.Request, items itemRepository.Item, users userRepository.User, otel otel.Otel) Request {
	return &serviceImpl{
		repo:  repo,
		items: items,
		users: users,
		otel:  otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, requesterID int64, req dto.CreateRequestRequest) (res dto.RequestResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".request.Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = s.requireUser(ctx, requesterID); err != nil {
		return res, err
	}

	request := model.ItemRequest{
		Description: req.Description,
		RequesterID: requesterID,
	}

	now := timezone.Now()
	request.CreatedAt = now
	request.ModifiedAt = now

	id, err := s.repo.Create(ctx, request)
	if err != nil {
		return res, fmt.Errorf("failed to create request: %w", err)
	}

	request.ID = id

	res.FromModel(request)

	return res, nil
}

// ListOwn returns the user's requests, newest first, each with the items
// listed in response to it.
func (s *serviceImpl) ListOwn(ctx context.Context, requesterID int64) (res []dto.RequestResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".request.ListOwn")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = s.requireUser(ctx, requesterID); err != nil {
		return nil, err
	}

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldRequesterID,
				Operator: gDto.FilterOperatorEq,
				Value:    requesterID,
				Table:    model.TableName,
			},
		},
	}

	requests, err := s.repo.GetAll(ctx, newestFirst(0, 0), filter)
	if err != nil {
		return nil, fmt.Errorf("failed to get requests: %w", err)
	}

	return s.withItems(ctx, requests)
}

// ListOthers pages through requests made by everyone but the user, newest
// first.
func (s *serviceImpl) ListOthers(ctx context.Context, userID int64, offset, limit int) (res []dto.RequestResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".request.ListOthers")
	defer scope.End()
	defer scope.TraceIfError(err)

	if offset < 0 || limit <= 0 {
		return nil, failure.InvalidPageParam
	}

	if err = s.requireUser(ctx, userID); err != nil {
		return nil, err
	}

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldRequesterID,
				Operator: gDto.FilterOperatorNotEq,
				Value:    userID,
				Table:    model.TableName,
			},
		},
	}

	requests, err := s.repo.GetAll(ctx, newestFirst(offset, limit), filter)
	if err != nil {
		return nil, fmt.Errorf("failed to get requests: %w", err)
	}

	return s.withItems(ctx, requests)
}

func (s *serviceImpl) Get(ctx context.Context, userID, requestID int64) (res dto.RequestResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".request.Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = s.requireUser(ctx, userID); err != nil {
		return res, err
	}

	request, err := s.repo.Get(ctx, shared.FilterByID(requestID, model.FieldID, model.TableName))
	if err != nil {
		return res, fmt.Errorf("failed to get request: %w", err)
	}

	if request.ID == 0 {
		return res, failure.NotFound("request not found") //nolint:wrapcheck
	}

	responses, err := s.withItems(ctx, []model.ItemRequest{request})
	if err != nil {
		return res, err
	}

	return responses[0], nil
}

func (s *serviceImpl) requireUser(ctx context.Context, userID int64) error {
	exists, err := s.users.Exist(ctx, shared.FilterByID(userID, userModel.FieldID, userModel.TableName))
	if err != nil {
		return fmt.Errorf("failed to check user: %w", err)
	}

	if !exists {
		return failure.NotFound("user not found") //nolint:wrapcheck
	}

	return nil
}

// withItems attaches the responding items to each request in one query.
func (s *serviceImpl) withItems(ctx context.Context, requests []model.ItemRequest) ([]dto.RequestResponse, error) {
	res := dto.FromModels(requests)
	if len(requests) == 0 {
		return res, nil
	}

	requestIDs := make([]int64, len(requests))
	for i, request := range requests {
		requestIDs[i] = request.ID
	}

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    itemModel.FieldRequestID,
				Operator: gDto.FilterOperatorIn,
				Value:    requestIDs,
				Table:    itemModel.TableName,
			},
		},
	}

	items, err := s.items.GetAll(ctx, gDto.QueryParams{}, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to get items: %w", err)
	}

	byRequest := make(map[int64][]itemDto.ItemResponse)
	for _, item := range items {
		if item.RequestID == nil {
			continue
		}

		var response itemDto.ItemResponse
		response.FromModel(item)

		byRequest[*item.RequestID] = append(byRequest[*item.RequestID], response)
	}

	for i, request := range requests {
		if responding, ok := byRequest[request.ID]; ok {
			res[i].Items = responding
		}
	}

	return res, nil
}

func newestFirst(offset, limit int) gDto.QueryParams {
	return gDto.QueryParams{
		Offset:  offset,
		Limit:   limit,
		SortBy:  model.TableName + "." + constant.FieldCreatedAt,
		SortDir: gDto.SortDirDesc,
	}
}
