package middleware

import (
	"context"
	"net/http"
	"strconv"

	"lend/shared/constant"
	"lend/shared/failure"
	"lend/transport/http/response"
)

// Sharer resolves the acting user from the X-Sharer-User-Id header and puts
// the id in the request context. The header is the only identity the API
// carries; requests without a parseable id are rejected before the handler
// runs.
func Sharer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		raw := request.Header.Get(constant.RequestHeaderSharerUserID)
		if raw == "" {
			response.WithError(writer, failure.BadRequestFromString("missing "+constant.RequestHeaderSharerUserID+" header"))

			return
		}

		userID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || userID <= 0 {
			response.WithError(writer, failure.BadRequestFromString("invalid "+constant.RequestHeaderSharerUserID+" header"))

			return
		}

		ctx := context.WithValue(request.Context(), constant.ContextKeyUserID, userID)

		next.ServeHTTP(writer, request.WithContext(ctx))
	})
}

// UserID returns the acting user id stored by Sharer, or zero when the
// request came through a route without it.
func UserID(ctx context.Context) int64 {
	userID, _ := ctx.Value(constant.ContextKeyUserID).(int64)

	return userID
}
