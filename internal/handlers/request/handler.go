package request

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"lend/infras/otel"
	"lend/internal/domains/request/model/dto"
	"lend/internal/domains/request/service"
	"lend/shared/constant"
	"lend/shared/failure"
	"lend/shared/validator"
	"lend/transport/http/middleware"
	"lend/transport/http/response"
)

type Handler struct {
	service service.Request
	otel    otel.Otel
}

func New(service service.Request, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/requests", func(routerGroup chi.Router) {
		routerGroup.Use(middleware.Sharer)
		routerGroup.Post("/", handler.CreateRequest)
		routerGroup.Get("/", handler.GetOwnRequests)
		routerGroup.Get("/all", handler.GetOtherRequests)
		routerGroup.Get("/{id}", handler.GetRequest)
	})
}

// CreateRequest files a free-text ask for an item nobody has listed yet.
func (handler *Handler) CreateRequest(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateRequest")
	defer scope.End()

	req := dto.CreateRequestRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Create(ctx, middleware.UserID(ctx), req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create item request")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// GetOwnRequests lists the calling user's requests with the items offered in
// response.
func (handler *Handler) GetOwnRequests(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetOwnRequests")
	defer scope.End()

	res, err := handler.service.ListOwn(ctx, middleware.UserID(ctx))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get item requests")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// GetOtherRequests pages through requests made by other users.
func (handler *Handler) GetOtherRequests(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetOtherRequests")
	defer scope.End()

	offset, limit := pageParams(request)

	res, err := handler.service.ListOthers(ctx, middleware.UserID(ctx), offset, limit)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get other item requests")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

func (handler *Handler) GetRequest(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRequest")
	defer scope.End()

	requestID, err := pathID(request)
	if err != nil {
		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Get(ctx, middleware.UserID(ctx), requestID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get item request")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

func pathID(request *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(request, constant.RequestParamID), 10, 64)
	if err != nil {
		return 0, failure.BadRequestFromString("invalid request id") //nolint:wrapcheck
	}

	return id, nil
}

func pageParams(request *http.Request) (offset, limit int) {
	query := request.URL.Query()

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

	return offset, limit
}
