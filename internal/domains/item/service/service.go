package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Item=MockItemService

import (
	"context"
	"fmt"
	"strings"

	bookingService "lend/internal/domains/booking/service"
	"lend/internal/domains/item/model"
	"lend/internal/domains/item/model/dto"
	"lend/internal/domains/item/repository"
	requestModel "lend/internal/domains/request/model"
	requestRepository "lend/internal/domains/request/repository"
	userModel "lend/internal/domains/user/model"
	userRepository "lend/internal/domains/user/repository"
	"lend/infras/otel"
	"lend/shared"
	"lend/shared/constant"
	gDto "lend/shared/dto"
	"lend/shared/failure"
	"lend/shared/timezone"
)

type Item interface {
	Add(ctx context.Context, ownerID int64, req dto.AddItemRequest) (dto.ItemResponse, error)
	Update(ctx context.Context, ownerID, itemID int64, req dto.UpdateItemRequest) (dto.ItemResponse, error)
	Get(ctx context.Context, viewerID, itemID int64) (dto.ItemDetailResponse, error)
	ListForOwner(ctx context.Context, ownerID int64, offset, limit int) ([]dto.ItemDetailResponse, error)
	Search(ctx context.Context, text string, offset, limit int) ([]dto.ItemResponse, error)
	AddComment(ctx context.Context, authorID, itemID int64, req dto.AddCommentRequest) (dto.CommentResponse, error)
}

type serviceImpl struct {
	repo     repository.Item
	comments repository.Comment
	users    userRepository.User
	requests requestRepository.Request
	bookings bookingService.Booking
	otel     otel.Otel
}

func New(
	repo repository.Item,
	comments repository.Comment,
	users userRepository.User,
	requests requestRepository.Request,
	bookings bookingService.Booking,
	otel otel.Otel,
) Item {
	return &serviceImpl{
		repo:     repo,
		comments: comments,
		users:    users,
		requests: requests,
		bookings: bookings,
		otel:     otel,
	}
}

func (s *serviceImpl) Add(ctx context.Context, ownerID int64, req dto.AddItemRequest) (res dto.ItemResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".item.Add")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = s.requireUser(ctx, ownerID); err != nil {
		return res, err
	}

	if req.RequestID != nil {
		exists, err := s.requests.Exist(ctx, shared.FilterByID(*req.RequestID, requestModel.FieldID, requestModel.TableName))
		if err != nil {
			return res, fmt.Errorf("failed to check request: %w", err)
		}

		if !exists {
			return res, failure.NotFound("request not found") //nolint:wrapcheck
		}
	}

	item := req.ToModel(ownerID)
	now := timezone.Now()
	item.CreatedAt = now
	item.ModifiedAt = now

	id, err := s.repo.Create(ctx, item)
	if err != nil {
		return res, fmt.Errorf("failed to create item: %w", err)
	}

	item.ID = id

	res.FromModel(item)

	return res, nil
}

// Update applies a partial edit to an item. Only the owner may edit; anyone
// else gets not found so the item's ownership is not revealed.
func (s *serviceImpl) Update(ctx context.Context, ownerID, itemID int64, req dto.UpdateItemRequest) (res dto.ItemResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".item.Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(itemID, model.FieldID, model.TableName)

	item, err := s.repo.Get(ctx, filter)
	if err != nil {
		return res, fmt.Errorf("failed to get item: %w", err)
	}

	if item.ID == 0 || item.OwnerID != ownerID {
		return res, failure.NotFound("item not found") //nolint:wrapcheck
	}

	updated := map[string]any{
		constant.FieldModifiedAt: timezone.Now(),
	}

	if req.Name != nil {
		item.Name = *req.Name
		updated[model.FieldName] = *req.Name
	}

	if req.Description != nil {
		item.Description = *req.Description
		updated[model.FieldDescription] = *req.Description
	}

	if req.Available != nil {
		item.Available = *req.Available
		updated[model.FieldAvailable] = *req.Available
	}

	if err = s.repo.Update(ctx, updated, filter); err != nil {
		return res, fmt.Errorf("failed to update item: %w", err)
	}

	res.FromModel(item)

	return res, nil
}

// Get returns an item with its comments. The booking schedule is attached
// only when the viewer owns the item.
func (s *serviceImpl) Get(ctx context.Context, viewerID, itemID int64) (res dto.ItemDetailResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".item.Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	item, err := s.repo.Get(ctx, shared.FilterByID(itemID, model.FieldID, model.TableName))
	if err != nil {
		return res, fmt.Errorf("failed to get item: %w", err)
	}

	if item.ID == 0 {
		return res, failure.NotFound("item not found") //nolint:wrapcheck
	}

	comments, err := s.commentsFor(ctx, []int64{itemID})
	if err != nil {
		return res, err
	}

	res.FromModel(item)
	res.Comments = dto.CommentsFromModels(comments[itemID])

	if res.Comments == nil {
		res.Comments = []dto.CommentResponse{}
	}

	if viewerID == item.OwnerID {
		schedules, err := s.bookings.ScheduleForItems(ctx, []int64{itemID})
		if err != nil {
			return res, fmt.Errorf("failed to get item schedule: %w", err)
		}

		res.Last = schedules[itemID].Last
		res.Next = schedules[itemID].Next
	}

	return res, nil
}

// ListForOwner pages through the owner's items in id order, each with its
// schedule and comments.
func (s *serviceImpl) ListForOwner(ctx context.Context, ownerID int64, offset, limit int) (res []dto.ItemDetailResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".item.ListForOwner")
	defer scope.End()
	defer scope.TraceIfError(err)

	params, err := listQuery(offset, limit)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}

	if err = s.requireUser(ctx, ownerID); err != nil {
		return nil, err
	}

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldOwnerID,
				Operator: gDto.FilterOperatorEq,
				Value:    ownerID,
				Table:    model.TableName,
			},
		},
	}

	items, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to get items: %w", err)
	}

	itemIDs := make([]int64, len(items))
	for i, item := range items {
		itemIDs[i] = item.ID
	}

	schedules, err := s.bookings.ScheduleForItems(ctx, itemIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to get item schedules: %w", err)
	}

	comments, err := s.commentsFor(ctx, itemIDs)
	if err != nil {
		return nil, err
	}

	res = make([]dto.ItemDetailResponse, len(items))
	for i, item := range items {
		res[i].FromModel(item)
		res[i].Last = schedules[item.ID].Last
		res[i].Next = schedules[item.ID].Next
		res[i].Comments = dto.CommentsFromModels(comments[item.ID])

		if res[i].Comments == nil {
			res[i].Comments = []dto.CommentResponse{}
		}
	}

	return res, nil
}

// Search finds available items whose name or description contains the text.
// Blank text short-circuits to an empty result without touching the store.
func (s *serviceImpl) Search(ctx context.Context, text string, offset, limit int) (res []dto.ItemResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".item.Search")
	defer scope.End()
	defer scope.TraceIfError(err)

	if strings.TrimSpace(text) == "" {
		return []dto.ItemResponse{}, nil
	}

	params, err := listQuery(offset, limit)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldAvailable,
				Operator: gDto.FilterOperatorEq,
				Value:    true,
				Table:    model.TableName,
			},
			gDto.FilterGroup{
				Operator: gDto.FilterGroupOperatorOr,
				Filters: []any{
					gDto.Filter{
						Field:    model.FieldName,
						Operator: gDto.FilterOperatorLike,
						Value:    text,
						Table:    model.TableName,
					},
					gDto.Filter{
						Field:    model.FieldDescription,
						Operator: gDto.FilterOperatorLike,
						Value:    text,
						Table:    model.TableName,
					},
				},
			},
		},
	}

	items, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to search items: %w", err)
	}

	return dto.FromModels(items), nil
}

// AddComment posts a review to an item. Only a user with a finished approved
// booking of the item may comment.
func (s *serviceImpl) AddComment(ctx context.Context, authorID, itemID int64, req dto.AddCommentRequest) (res dto.CommentResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".item.AddComment")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = s.requireUser(ctx, authorID); err != nil {
		return res, err
	}

	exists, err := s.repo.Exist(ctx, shared.FilterByID(itemID, model.FieldID, model.TableName))
	if err != nil {
		return res, fmt.Errorf("failed to check item: %w", err)
	}

	if !exists {
		return res, failure.NotFound("item not found") //nolint:wrapcheck
	}

	eligible, err := s.bookings.IsEligibleToComment(ctx, authorID, itemID)
	if err != nil {
		return res, fmt.Errorf("failed to check comment eligibility: %w", err)
	}

	if !eligible {
		return res, failure.BadRequestFromString("user has no finished booking of this item") //nolint:wrapcheck
	}

	comment := model.Comment{
		Text:     req.Text,
		ItemID:   itemID,
		AuthorID: authorID,
	}

	now := timezone.Now()
	comment.CreatedAt = now
	comment.ModifiedAt = now

	created, err := s.comments.Create(ctx, comment)
	if err != nil {
		return res, fmt.Errorf("failed to create comment: %w", err)
	}

	res.FromModel(created)

	return res, nil
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

// commentsFor loads the comments of the given items in one query, grouped by
// item, oldest first.
func (s *serviceImpl) commentsFor(ctx context.Context, itemIDs []int64) (map[int64][]model.Comment, error) {
	grouped := make(map[int64][]model.Comment, len(itemIDs))
	if len(itemIDs) == 0 {
		return grouped, nil
	}

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldItemID,
				Operator: gDto.FilterOperatorIn,
				Value:    itemIDs,
				Table:    model.CommentTableName,
			},
		},
	}

	params := gDto.QueryParams{
		SortBy:  model.CommentTableName + "." + constant.FieldCreatedAt,
		SortDir: gDto.SortDirAsc,
	}

	comments, err := s.comments.GetAll(ctx, params, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to get comments: %w", err)
	}

	for _, comment := range comments {
		grouped[comment.ItemID] = append(grouped[comment.ItemID], comment)
	}

	return grouped, nil
}

// listQuery validates the page window; item listings come back in id order.
func listQuery(offset, limit int) (gDto.QueryParams, error) {
	if offset < 0 || limit <= 0 {
		return gDto.QueryParams{}, failure.InvalidPageParam
	}

	return gDto.QueryParams{
		Offset:  offset,
		Limit:   limit,
		SortBy:  model.TableName + "." + model.FieldID,
		SortDir: gDto.SortDirAsc,
	}, nil
}
