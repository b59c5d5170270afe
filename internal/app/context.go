package app

import (
	"context"
	"net/http"

	"github.com/cinetix/theater-booking-api/internal/domain"
)

type contextKey string

const identityContextKey = contextKey("identity")

func (app *Application) contextSetIdentity(r *http.Request, identity domain.Identity) *http.Request {
	ctx := context.WithValue(r.Context(), identityContextKey, identity)
	return r.WithContext(ctx)
}

func (app *Application) contextGetIdentity(r *http.Request) domain.Identity {
	identity, ok := r.Context().Value(identityContextKey).(domain.Identity)
	if !ok {
		return domain.Identity{}
	}

	return identity
}
