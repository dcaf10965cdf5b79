package middleware

import (
	"net/http"

	"github.com/rs/cors"
)

// CORS wraps the engine so preflight requests are answered before routing.
func CORS(allowedOrigins []string, next http.Handler) http.Handler {
	return cors.New(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Authorization", "Content-Type", SessionHeader, RequestIDHeader},
		ExposedHeaders:   []string{SessionHeader, RequestIDHeader},
		AllowCredentials: false,
	}).Handler(next)
}
