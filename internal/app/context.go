package app

import (
	"context"
	"net/http"

	"github.com/anshika-1705/movieapp/internal/auth"
)

type contextKey string

const claimsContextKey = contextKey("claims")

func (app *Application) contextSetClaims(r *http.Request, claims *auth.Claims) *http.Request {
	ctx := context.WithValue(r.Context(), claimsContextKey, claims)
	return r.WithContext(ctx)
}

// contextGetClaims expects authentication middleware to have run; calling it on
// an unauthenticated request is a programming error, hence the panic.
func (app *Application) contextGetClaims(r *http.Request) *auth.Claims {
	claims, ok := r.Context().Value(claimsContextKey).(*auth.Claims)
	if !ok {
		panic("missing claims in request context")
	}

	return claims
}
