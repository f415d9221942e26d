package middleware

import (
	"github.com/rs/cors"

	"github.com/heartmarshall/notes-backend/internal/config"
)

// CORS returns middleware that answers preflight requests and sets
// Access-Control headers for allowed origins. A "*" origin without
// credentials is sent as a literal wildcard.
func CORS(cfg config.CORSConfig) Middleware {
	c := cors.New(cors.Options{
		AllowedOrigins:   cfg.Origins(),
		AllowedMethods:   cfg.Methods(),
		AllowedHeaders:   cfg.Headers(),
		ExposedHeaders:   []string{"ETag", RequestIDHeader},
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           cfg.MaxAge,
	})
	return c.Handler
}
