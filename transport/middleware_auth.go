package transport

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	accountapp "github.com/muhammadheryan/marketplace/application/account"
	"github.com/muhammadheryan/marketplace/constant"
	utilsContext "github.com/muhammadheryan/marketplace/utils/context"
	"github.com/muhammadheryan/marketplace/utils/errors"
)

// AuthMiddleware returns a middleware that resolves the bearer token into the
// caller's identity. Public endpoints pass through without a token.
func AuthMiddleware(accountApp accountapp.AccountApp) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if isPublicPath(r.Method, r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}

			token, ok := bearerToken(r)
			if !ok {
				writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
				return
			}

			identity, err := accountApp.Authenticate(r.Context(), token)
			if err != nil {
				writeError(w, err)
				return
			}

			ctx := utilsContext.WithIdentity(r.Context(), identity)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAccountType rejects callers whose account type differs from t.
func RequireAccountType(t constant.AccountType) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			identity, ok := utilsContext.GetIdentity(r.Context())
			if !ok {
				writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
				return
			}
			if !identity.Is(t) {
				writeError(w, errors.SetCustomErrorf(constant.ErrForbidden, "Your account type is not %q.", string(t)))
				return
			}
			next(w, r)
		}
	}
}

func bearerToken(r *http.Request) (string, bool) {
	auth := r.Header.Get("Authorization")
	if auth == "" || !strings.HasPrefix(auth, "Bearer ") {
		return "", false
	}
	token := strings.TrimPrefix(auth, "Bearer ")
	return token, token != ""
}

var publicRoutes = map[string]bool{
	route(http.MethodPost, apiPrefix+"/account/register"): true,
	route(http.MethodPost, apiPrefix+"/account/confirm"):  true,
	route(http.MethodPost, apiPrefix+"/account/login"):    true,
	route(http.MethodGet, apiPrefix+"/shops"):             true,
	route(http.MethodGet, apiPrefix+"/categories"):        true,
	route(http.MethodGet, apiPrefix+"/products"):          true,
}

// isPublicPath reports whether the endpoint can be called without a token.
func isPublicPath(method, path string) bool {
	if strings.HasPrefix(path, "/swagger/") || strings.HasPrefix(path, "/internal/") {
		return true
	}
	return publicRoutes[route(method, strings.TrimSuffix(path, "/"))]
}

func route(method, path string) string {
	return fmt.Sprintf("%s %s", method, path)
}
