package app

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/anshika-1705/movieapp/internal/domain"
)

func (app *Application) recoverPanic(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				w.Header().Set("Connection", "close")

				app.serverErrorResponse(w, r, fmt.Errorf("%s", err))
			}
		}()

		next.ServeHTTP(w, r)
	})
}

// rateLimit enforces a fixed-window per-client limit backed by redis. Without
// a redis client the middleware passes everything through, so single-node dev
// setups work with no extra infrastructure.
func (app *Application) rateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if app.redis == nil || !app.config.Limiter.Enabled {
			next.ServeHTTP(w, r)
			return
		}

		window := time.Now().Unix() / 60
		key := fmt.Sprintf("ratelimit:%s:%d", r.RemoteAddr, window)

		count, err := app.redis.Incr(r.Context(), key).Result()
		if err != nil {
			// Rate limiting is best-effort; a redis outage should not take
			// the API down with it.
			app.logError(r, err)
			next.ServeHTTP(w, r)
			return
		}

		if count == 1 {
			app.redis.Expire(r.Context(), key, time.Minute)
		}

		if count > int64(app.config.Limiter.RequestsPerMinute) {
			app.rateLimitExceededResponse(w, r)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (app *Application) requireAuthentication(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Add("Vary", "Authorization")

		authorizationHeader := r.Header.Get("Authorization")

		token, ok := strings.CutPrefix(authorizationHeader, "Bearer ")
		if !ok || token == "" {
			app.unauthorizedResponse(w, r)
			return
		}

		claims, err := app.tokens.Verify(token)
		if err != nil {
			app.unauthorizedResponse(w, r)
			return
		}

		next.ServeHTTP(w, app.contextSetClaims(r, claims))
	})
}

func (app *Application) requireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims := app.contextGetClaims(r)

		if claims.Role != domain.RoleAdmin {
			app.forbiddenResponse(w, r, "Admin access required")
			return
		}

		next.ServeHTTP(w, r)
	})
}
