package app

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/cinetix/theater-booking-api/internal/domain"
)

const (
	headerUserID    = "X-User-Id"
	headerUserEmail = "X-User-Email"
	headerUserRole  = "X-User-Role"
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

// identityFromGateway binds the caller identity asserted by the API gateway
// to the request context. Requests without identity headers proceed as
// anonymous; individual routes decide what they require.
func (app *Application) identityFromGateway(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var identity domain.Identity

		if rawID := r.Header.Get(headerUserID); rawID != "" {
			userID, err := strconv.Atoi(rawID)
			if err != nil || userID < 1 {
				app.badRequestResponse(w, r, fmt.Errorf("invalid %s header", headerUserID))
				return
			}

			identity = domain.Identity{
				UserID: userID,
				Email:  r.Header.Get(headerUserEmail),
				Role:   domain.Role(r.Header.Get(headerUserRole)),
			}
		}

		next.ServeHTTP(w, app.contextSetIdentity(r, identity))
	})
}

func (app *Application) requirePermission(op domain.Operation) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity := app.contextGetIdentity(r)

			if !domain.CanPerform(identity, op) {
				if identity.IsAnonymous() {
					app.unauthorizedAccessResponse(w, r)
					return
				}

				app.forbiddenResponse(w, r)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
