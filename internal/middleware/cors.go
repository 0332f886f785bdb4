package middleware

import (
	"net/http"
	"strings"

	"github.com/go-chi/cors"
)

// CORS admits cross-origin requests from exactly one origin, with any
// header and credentials. Allowed preflights are answered with 204 and
// preflights from other origins with 403.
func CORS(allowedOrigin string) func(http.Handler) http.Handler {
	allowedOrigin = strings.TrimRight(allowedOrigin, "/")

	policy := cors.Handler(cors.Options{
		AllowedOrigins: []string{allowedOrigin},
		AllowedMethods: []string{
			http.MethodGet, http.MethodHead, http.MethodPost, http.MethodPut,
			http.MethodPatch, http.MethodDelete, http.MethodOptions,
		},
		AllowedHeaders:     []string{"*"},
		ExposedHeaders:     []string{"X-Request-ID"},
		AllowCredentials:   true,
		MaxAge:             600,
		OptionsPassthrough: true,
	})

	preflight := policy(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	return func(next http.Handler) http.Handler {
		actual := policy(next)

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !isPreflight(r) {
				actual.ServeHTTP(w, r)
				return
			}

			if origin := r.Header.Get("Origin"); origin != "" && !strings.EqualFold(origin, allowedOrigin) {
				http.Error(w, "Disallowed CORS origin", http.StatusForbidden)
				return
			}
			preflight.ServeHTTP(w, r)
		})
	}
}

func isPreflight(r *http.Request) bool {
	return r.Method == http.MethodOptions && r.Header.Get("Access-Control-Request-Method") != ""
}
