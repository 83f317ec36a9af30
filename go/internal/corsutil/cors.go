package corsutil

import (
	"net/http"
	"strings"

	"github.com/rs/cors"
)

// Options is the YAML shape of the CORS policy
type Options struct {
	AllowedOrigins   []string `yaml:"allowed_origins"`
	AllowedMethods   []string `yaml:"allowed_methods"`
	AllowedHeaders   []string `yaml:"allowed_headers"`
	AllowCredentials bool     `yaml:"allow_credentials"`
	MaxAge           int      `yaml:"max_age"`
	// Disabled turns the policy off, for services that only run behind the gateway
	Disabled bool `yaml:"disabled"`
}

// Default is the policy for the Next.js frontend
func Default() Options {
	return Options{
		AllowedOrigins: []string{
			"http://localhost:3000",
			"http://my-next-app:3000",
			"http://127.0.0.1:3000",
		},
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodPut,
			http.MethodDelete,
			http.MethodOptions,
			http.MethodPatch,
		},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
		MaxAge:           3600,
	}
}

// withDefaults fills every unset field from Default
func (o Options) withDefaults() Options {
	d := Default()
	if len(o.AllowedOrigins) == 0 {
		o.AllowedOrigins = d.AllowedOrigins
	}
	if len(o.AllowedMethods) == 0 {
		o.AllowedMethods = d.AllowedMethods
	}
	if len(o.AllowedHeaders) == 0 {
		o.AllowedHeaders = d.AllowedHeaders
	}
	if o.MaxAge == 0 {
		o.MaxAge = d.MaxAge
	}
	return o
}

// New builds the rs/cors middleware for o
func New(o Options) *cors.Cors {
	o = o.withDefaults()
	return cors.New(cors.Options{
		AllowedOrigins:   o.AllowedOrigins,
		AllowedMethods:   o.AllowedMethods,
		AllowedHeaders:   o.AllowedHeaders,
		AllowCredentials: o.AllowCredentials,
		MaxAge:           o.MaxAge,
	})
}

// Handler wraps next with the CORS policy o. A disabled policy returns next as is.
func Handler(o Options, next http.Handler) http.Handler {
	if o.Disabled {
		return next
	}
	return New(o).Handler(next)
}

// StripHeaders removes every Access-Control-* header from h
func StripHeaders(h http.Header) {
	for key := range h {
		if strings.HasPrefix(key, "Access-Control-") {
			h.Del(key)
		}
	}
}
