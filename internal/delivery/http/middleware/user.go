package middleware

import (
	"context"
	"net/http"
	"strconv"

	"driver-buddy/internal/delivery/http/response"
)

// UserHeader carries the caller's user id. The API trusts it as given.
const UserHeader = "X-User-ID"

type ctxKey struct{}

// UserRequired rejects requests without a positive numeric X-User-ID.
func UserRequired(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(r.Header.Get(UserHeader), 10, 64)
		if err != nil || id <= 0 {
			response.Unauthorized(w, "X-User-ID header is required")
			return
		}
		next.ServeHTTP(w, r.WithContext(WithUserID(r.Context(), id)))
	})
}

func WithUserID(ctx context.Context, id int64) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

// UserID returns the id stored by UserRequired, or 0.
func UserID(ctx context.Context) int64 {
	id, _ := ctx.Value(ctxKey{}).(int64)
	return id
}
