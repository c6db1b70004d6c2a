package booking

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"lend/infras/otel"
	"lend/internal/domains/booking/model"
	"lend/internal/domains/booking/model/dto"
	"lend/internal/domains/booking/service"
	"lend/shared/constant"
	"lend/shared/failure"
	"lend/shared/validator"
	"lend/transport/http/middleware"
	"lend/transport/http/response"
)

type Handler struct {
	service service.Booking
	otel    otel.Otel
}

func New(service service.Booking, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/bookings", func(routerGroup chi.Router) {
		routerGroup.Use(middleware.Sharer)
		routerGroup.Post("/", handler.AddBooking)
		routerGroup.Get("/", handler.GetBookings)
		routerGroup.Get("/owner", handler.GetOwnerBookings)
		routerGroup.Get("/{id}", handler.GetBooking)
		routerGroup.Patch("/{id}", handler.SetApproval)
	})
}

// AddBooking creates a booking request for an item on behalf of the calling
// user. The new booking starts out WAITING.
func (handler *Handler) AddBooking(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".AddBooking")
	defer scope.End()

	req := dto.AddBookingRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Add(ctx, middleware.UserID(ctx), req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to add booking")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// SetApproval lets the item owner approve or reject a waiting booking.
func (handler *Handler) SetApproval(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SetApproval")
	defer scope.End()

	bookingID, err := pathID(request)
	if err != nil {
		response.WithError(writer, err)

		return
	}

	approved, err := strconv.ParseBool(request.URL.Query().Get(constant.RequestParamApprove))
	if err != nil {
		response.WithError(writer, failure.BadRequestFromString("approved must be true or false"))

		return
	}

	res, err := handler.service.SetApproval(ctx, middleware.UserID(ctx), bookingID, approved)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to set booking approval")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// GetBooking returns one booking to its requester or the item owner.
func (handler *Handler) GetBooking(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBooking")
	defer scope.End()

	bookingID, err := pathID(request)
	if err != nil {
		response.WithError(writer, err)

		return
	}

	res, err := handler.service.FindByID(ctx, middleware.UserID(ctx), bookingID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get booking")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// GetBookings lists the calling user's own booking requests filtered by
// state.
func (handler *Handler) GetBookings(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookings")
	defer scope.End()

	state, offset, limit := listParams(request)

	res, err := handler.service.ListForRequester(ctx, middleware.UserID(ctx), state, offset, limit)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get bookings")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// GetOwnerBookings lists bookings of the calling user's items filtered by
// state.
func (handler *Handler) GetOwnerBookings(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetOwnerBookings")
	defer scope.End()

	state, offset, limit := listParams(request)

	res, err := handler.service.ListForOwner(ctx, middleware.UserID(ctx), state, offset, limit)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get owner bookings")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

func pathID(request *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(request, constant.RequestParamID), 10, 64)
	if err != nil {
		return 0, failure.BadRequestFromString("invalid booking id") //nolint:wrapcheck
	}

	return id, nil
}

func listParams(request *http.Request) (state string, offset, limit int) {
	query := request.URL.Query()

	state = query.Get(constant.RequestParamState)
	if state == "" {
		state = string(model.StateAll)
	}

	offset = 0
	if from := query.Get(constant.RequestParamFrom); from != "" {
		if fromInt, err := strconv.Atoi(from); err == nil {
			offset = fromInt
		}
	}

	limit = constant.DefaultValueLimit
	if size := query.Get(constant.RequestParamSize); size != "" {
		if sizeInt, err := strconv.Atoi(size); err == nil {
			limit = sizeInt
		}
	}

	return state, offset, limit
}
