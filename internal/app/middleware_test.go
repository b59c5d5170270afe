package app

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cinetix/theater-booking-api/internal/domain"
)

func TestIdentityFromGateway(t *testing.T) {
	app := newTestApplication()

	tests := []struct {
		name         string
		headers      map[string]string
		wantStatus   int
		wantIdentity domain.Identity
	}{
		{
			name:       "no headers yields anonymous identity",
			wantStatus: http.StatusOK,
		},
		{
			name: "full headers yield authenticated identity",
			headers: map[string]string{
				headerUserID:    "42",
				headerUserEmail: "moviegoer@example.com",
				headerUserRole:  "USER",
			},
			wantStatus: http.StatusOK,
			wantIdentity: domain.Identity{
				UserID: 42,
				Email:  "moviegoer@example.com",
				Role:   domain.RoleUser,
			},
		},
		{
			name:       "malformed user id header is rejected",
			headers:    map[string]string{headerUserID: "not-a-number"},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "non-positive user id header is rejected",
			headers:    map[string]string{headerUserID: "0"},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got domain.Identity

			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				got = app.contextGetIdentity(r)
			})

			r := httptest.NewRequest(http.MethodGet, "/", nil)
			for key, value := range tt.headers {
				r.Header.Set(key, value)
			}
			w := httptest.NewRecorder()

			app.identityFromGateway(next).ServeHTTP(w, r)

			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", w.Code, tt.wantStatus)
			}

			if tt.wantStatus == http.StatusOK && got != tt.wantIdentity {
				t.Errorf("identity = %+v, want %+v", got, tt.wantIdentity)
			}
		})
	}
}

func TestRequirePermission(t *testing.T) {
	app := newTestApplication()

	tests := []struct {
		name       string
		identity   domain.Identity
		op         domain.Operation
		wantStatus int
	}{
		{
			name:       "anonymous caller gets 401 for catalog writes",
			op:         domain.OpManageCatalog,
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "regular user gets 403 for catalog writes",
			identity:   domain.Identity{UserID: 42, Role: domain.RoleUser},
			op:         domain.OpManageCatalog,
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "manager passes catalog writes",
			identity:   domain.Identity{UserID: 1, Role: domain.RoleManager},
			op:         domain.OpManageCatalog,
			wantStatus: http.StatusOK,
		},
		{
			name:       "owner passes catalog writes",
			identity:   domain.Identity{UserID: 1, Role: domain.RoleOwner},
			op:         domain.OpManageCatalog,
			wantStatus: http.StatusOK,
		},
		{
			name:       "anonymous caller gets 401 for booking",
			op:         domain.OpBookSeats,
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "regular user passes booking",
			identity:   domain.Identity{UserID: 42, Role: domain.RoleUser},
			op:         domain.OpBookSeats,
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			})

			r := httptest.NewRequest(http.MethodPost, "/", nil)
			r = app.contextSetIdentity(r, tt.identity)
			w := httptest.NewRecorder()

			app.requirePermission(tt.op)(next).ServeHTTP(w, r)

			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", w.Code, tt.wantStatus)
			}
		})
	}
}
