package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"news-app/backend/app/dto"
	jwtutil "news-app/backend/app/jwt"
	"news-app/backend/global"
)

type ctxKey int

const ClaimsKey ctxKey = 1

// RevocationChecker answers whether a token id was revoked by a logout.
type RevocationChecker interface {
	IsRevoked(ctx context.Context, jti string) (bool, error)
}

type Auth struct {
	Signer  *jwtutil.Signer
	Revoked RevocationChecker
}

func (a *Auth) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authz := r.Header.Get("Authorization")
		if !strings.HasPrefix(authz, "Bearer ") {
			deny(w, http.StatusUnauthorized, "Full authentication is required to access this resource")
			return
		}
		token := strings.TrimPrefix(authz, "Bearer ")
		claims, err := a.Signer.ParseType(token, jwtutil.TypeAccess)
		if err != nil {
			deny(w, http.StatusUnauthorized, "Invalid or expired token")
			return
		}
		if a.Revoked != nil {
			revoked, err := a.Revoked.IsRevoked(r.Context(), claims.ID)
			if err != nil {
				global.Logger.Error().Err(err).Msg("revocation lookup failed")
				deny(w, http.StatusInternalServerError, "internal error")
				return
			}
			if revoked {
				deny(w, http.StatusUnauthorized, "Invalid or expired token")
				return
			}
		}
		next.ServeHTTP(w, r.WithContext(WithClaims(r.Context(), claims)))
	})
}

// OptionalAuth attaches the claims of a valid, unrevoked access token when
// one is presented and otherwise lets the request through untouched.
func (a *Auth) OptionalAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authz := r.Header.Get("Authorization")
		if strings.HasPrefix(authz, "Bearer ") {
			claims, err := a.Signer.ParseType(strings.TrimPrefix(authz, "Bearer "), jwtutil.TypeAccess)
			if err == nil {
				r = r.WithContext(WithClaims(r.Context(), claims))
			}
		}
		next.ServeHTTP(w, r)
	})
}

// RequireRoles authenticates the request and lets it through only when the
// caller holds at least one of roles.
func (a *Auth) RequireRoles(roles ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return a.RequireAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims := GetClaims(r.Context())
			if claims == nil || !Allowed(claims.Roles, roles...) {
				deny(w, http.StatusForbidden, "Access Denied")
				return
			}
			next.ServeHTTP(w, r)
		}))
	}
}

func deny(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(dto.MessageResponse{Message: msg})
}
