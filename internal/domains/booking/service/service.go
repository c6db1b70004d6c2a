package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Booking=MockBookingService

import (
	"context"
	"fmt"
	"strconv"

	"github.com/rs/zerolog/log"

	"lend/config"
	"lend/infras/otel"
	"lend/internal/domains/booking/model"
	"lend/internal/domains/booking/model/dto"
	"lend/internal/domains/booking/repository"
	itemModel "lend/internal/domains/item/model"
	itemRepository "lend/internal/domains/item/repository"
	userModel "lend/internal/domains/user/model"
	userRepository "lend/internal/domains/user/repository"
	"lend/shared"
	"lend/shared/cache"
	"lend/shared/constant"
	gDto "lend/shared/dto"
	"lend/shared/failure"
	"lend/shared/timezone"
)

const (
	cacheGetBooking = "booking:get"
)

type Booking interface {
	Add(ctx context.Context, requesterID int64, req dto.AddBookingRequest) (dto.BookingResponse, error)
	SetApproval(ctx context.Context, ownerID, bookingID int64, approve bool) (dto.BookingResponse, error)
	FindByID(ctx context.Context, userID, bookingID int64) (dto.BookingResponse, error)
	ListForRequester(ctx context.Context, requesterID int64, state string, offset, limit int) ([]dto.BookingResponse, error)
	ListForOwner(ctx context.Context, ownerID int64, state string, offset, limit int) ([]dto.BookingResponse, error)
	LastAndNext(ctx context.Context, itemID int64) (dto.ItemSchedule, error)
	ScheduleForItems(ctx context.Context, itemIDs []int64) (map[int64]dto.ItemSchedule, error)
	IsEligibleToComment(ctx context.Context, userID, itemID int64) (bool, error)
}

type serviceImpl struct {
	repo  repository.Booking
	items itemRepository.Item
	users userRepository.User
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
	clock timezone.Clock
}

func New(
	repo repository.Booking,
	items itemRepository.Item,
	users userRepository.User,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
	clock timezone.Clock,
) Booking {
	return &serviceImpl{
		repo:  repo,
		items: items,
		users: users,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
		clock: clock,
	}
}

func (s *serviceImpl) Add(ctx context.Context, requesterID int64, req dto.AddBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Add")
	defer scope.End()
	defer scope.TraceIfError(err)

	start, end, err := req.Window()
	if err != nil {
		return res, failure.BadRequestFromString("invalid booking window: " + err.Error()) //nolint:wrapcheck
	}

	exists, err := s.users.Exist(ctx, shared.FilterByID(requesterID, userModel.FieldID, userModel.TableName))
	if err != nil {
		return res, fmt.Errorf("failed to check requester: %w", err)
	}

	if !exists {
		return res, failure.NotFound("user not found") //nolint:wrapcheck
	}

	item, err := s.items.Get(ctx, shared.FilterByID(req.ItemID, itemModel.FieldID, itemModel.TableName))
	if err != nil {
		return res, fmt.Errorf("failed to get item: %w", err)
	}

	if item.ID == 0 {
		return res, failure.NotFound("item not found") //nolint:wrapcheck
	}

	if err = validateNew(requesterID, item, start, end); err != nil {
		return res, err
	}

	now := s.clock.Now()
	booking := model.Booking{
		ItemID:      req.ItemID,
		RequesterID: requesterID,
		StartAt:     start,
		EndAt:       end,
		Status:      model.StatusWaiting,
	}
	booking.CreatedAt = now
	booking.ModifiedAt = now

	created, err := s.repo.Create(ctx, booking)
	if err != nil {
		return res, fmt.Errorf("failed to create booking: %w", err)
	}

	res.FromModel(created)

	return res, nil
}

// SetApproval moves a waiting booking to APPROVED or REJECTED on behalf of
// the item owner. The decision runs inside the repository transaction so two
// concurrent calls cannot both see WAITING.
func (s *serviceImpl) SetApproval(ctx context.Context, ownerID, bookingID int64, approve bool) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.SetApproval")
	defer scope.End()
	defer scope.TraceIfError(err)

	updated, err := s.repo.UpdateStatus(ctx, bookingID, func(current model.Booking) (string, error) {
		return transition(ownerID, current, approve)
	})
	if err != nil {
		return res, err
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetBooking, strconv.FormatInt(bookingID, 10))); err != nil {
			log.Error().Err(err).Msg("failed to invalidate booking cache")
		}
	}()

	res.FromModel(updated)

	return res, nil
}

func (s *serviceImpl) FindByID(ctx context.Context, userID, bookingID int64) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.FindByID")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, err := s.findBooking(ctx, bookingID)
	if err != nil {
		return res, err
	}

	if booking.ID == 0 {
		return res, failure.NotFound("booking not found") //nolint:wrapcheck
	}

	if err = authorize(policyRequesterOrOwner, userID, booking); err != nil {
		return res, err
	}

	res.FromModel(booking)

	return res, nil
}

// findBooking reads one booking through the cache. Authorization stays out
// here: the cached row is shared between every caller.
func (s *serviceImpl) findBooking(ctx context.Context, bookingID int64) (model.Booking, error) {
	cacheKey := shared.BuildCacheKey(cacheGetBooking, strconv.FormatInt(bookingID, 10))

	var booking model.Booking
	if err := s.cache.Get(ctx, cacheKey, &booking); err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for booking")

		return booking, nil
	}

	booking, err := s.repo.Get(ctx, shared.FilterByID(bookingID, model.FieldID, model.TableName))
	if err != nil {
		return booking, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID != 0 {
		go func() {
			c := context.WithoutCancel(ctx)

			if err := s.cache.Save(c, cacheKey, booking, s.cfg.Cache.TTL); err != nil {
				log.Error().Err(err).Msg("failed to save booking to cache")
			}
		}()
	}

	return booking, nil
}

func (s *serviceImpl) ListForRequester(ctx context.Context, requesterID int64, state string, offset, limit int) (res []dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.ListForRequester")
	defer scope.End()
	defer scope.TraceIfError(err)

	return s.list(ctx, requesterID, requesterSubject(requesterID), state, offset, limit)
}

func (s *serviceImpl) ListForOwner(ctx context.Context, ownerID int64, state string, offset, limit int) (res []dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.ListForOwner")
	defer scope.End()
	defer scope.TraceIfError(err)

	return s.list(ctx, ownerID, ownerSubject(ownerID), state, offset, limit)
}

// list runs one subject-side listing. Classification is evaluated against a
// single instant taken here, so every row in a page is judged by the same
// now. Listings are never cached: their results shift as time passes.
func (s *serviceImpl) list(ctx context.Context, subjectID int64, subject gDto.Filter, rawState string, offset, limit int) ([]dto.BookingResponse, error) {
	parsed, err := parseState(rawState)
	if err != nil {
		return nil, err
	}

	params, err := listQuery(offset, limit)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}

	exists, err := s.users.Exist(ctx, shared.FilterByID(subjectID, userModel.FieldID, userModel.TableName))
	if err != nil {
		return nil, fmt.Errorf("failed to check user: %w", err)
	}

	if !exists {
		return nil, failure.NotFound("user not found") //nolint:wrapcheck
	}

	filter := stateFilter(parsed, subject, s.clock.Now())

	bookings, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to get bookings: %w", err)
	}

	return dto.FromModels(bookings), nil
}

// LastAndNext derives one item's closest approved bookings around the
// current instant.
func (s *serviceImpl) LastAndNext(ctx context.Context, itemID int64) (res dto.ItemSchedule, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.LastAndNext")
	defer scope.End()
	defer scope.TraceIfError(err)

	schedules, err := s.ScheduleForItems(ctx, []int64{itemID})
	if err != nil {
		return res, err
	}

	return schedules[itemID], nil
}

// ScheduleForItems derives each item's closest approved bookings around the
// current instant in one query. Items without approved bookings map to an
// empty schedule.
func (s *serviceImpl) ScheduleForItems(ctx context.Context, itemIDs []int64) (res map[int64]dto.ItemSchedule, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.ScheduleForItems")
	defer scope.End()
	defer scope.TraceIfError(err)

	res = make(map[int64]dto.ItemSchedule, len(itemIDs))
	if len(itemIDs) == 0 {
		return res, nil
	}

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldItemID,
				Operator: gDto.FilterOperatorIn,
				Value:    itemIDs,
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldStatus,
				Operator: gDto.FilterOperatorEq,
				Value:    model.StatusApproved,
				Table:    model.TableName,
			},
		},
	}

	bookings, err := s.repo.GetAll(ctx, gDto.QueryParams{}, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to get bookings: %w", err)
	}

	byItem := make(map[int64][]model.Booking, len(itemIDs))
	for _, booking := range bookings {
		byItem[booking.ItemID] = append(byItem[booking.ItemID], booking)
	}

	now := s.clock.Now()
	for _, itemID := range itemIDs {
		res[itemID] = dto.ItemSchedule{
			Last: dto.SlimFromModel(lastBooking(byItem[itemID], now)),
			Next: dto.SlimFromModel(nextBooking(byItem[itemID], now)),
		}
	}

	return res, nil
}

// IsEligibleToComment reports whether the user has an approved booking of the
// item that ended before now. The boundary is strict: a booking ending
// exactly at the current instant does not yet qualify.
func (s *serviceImpl) IsEligibleToComment(ctx context.Context, userID, itemID int64) (eligible bool, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.IsEligibleToComment")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldRequesterID,
				Operator: gDto.FilterOperatorEq,
				Value:    userID,
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldItemID,
				Operator: gDto.FilterOperatorEq,
				Value:    itemID,
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldStatus,
				Operator: gDto.FilterOperatorEq,
				Value:    model.StatusApproved,
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldEndAt,
				Operator: gDto.FilterOperatorLess,
				Value:    s.clock.Now(),
				Table:    model.TableName,
			},
		},
	}

	eligible, err = s.repo.Exist(ctx, filter)
	if err != nil {
		return false, fmt.Errorf("failed to check booking eligibility: %w", err)
	}

	return eligible, nil
}
