package gateway

import (
	"net/http"
	"net/http/httputil"
	"net/url"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/labzang/soccer/go/internal/corsutil"
	"github.com/labzang/soccer/go/internal/httpapi"
	"github.com/labzang/soccer/go/internal/messenger"
)

type proxyRoute struct {
	Route
	proxy *httputil.ReverseProxy
}

// Gateway is the edge reverse proxy in front of the soccer service
type Gateway struct {
	routes []proxyRoute
	cors   corsutil.Options
}

// New creates a Gateway from a validated config
func New(config *Config) (*Gateway, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	g := &Gateway{cors: config.CORS}
	for _, route := range config.Routes {
		target, err := url.Parse(route.Target)
		if err != nil {
			return nil, err
		}
		g.routes = append(g.routes, proxyRoute{
			Route: route,
			proxy: newProxy(route, target),
		})
		log.Info().
			Str("route", route.ID).
			Str("prefix", route.Prefix).
			Str("target", route.Target).
			Msg("registered gateway route")
	}
	return g, nil
}

func newProxy(route Route, target *url.URL) *httputil.ReverseProxy {
	return &httputil.ReverseProxy{
		Rewrite: func(pr *httputil.ProxyRequest) {
			pr.Out.URL.Path = route.rewrite(pr.In.URL.Path)
			pr.Out.URL.RawPath = ""
			pr.SetURL(target)
			pr.SetXForwarded()
		},
		// the gateway owns the CORS headers; upstream copies would be appended to them
		ModifyResponse: func(resp *http.Response) error {
			corsutil.StripHeaders(resp.Header)
			return nil
		},
		ErrorHandler: func(w http.ResponseWriter, r *http.Request, err error) {
			log.Error().Err(err).
				Str("route", route.ID).
				Str("path", r.URL.Path).
				Msg("upstream request failed")
			messenger.Write(w, messenger.BadGateway("upstream unavailable: "+route.ID))
		},
	}
}

// Handler returns the gateway's HTTP handler, CORS included
func (g *Gateway) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(httpapi.RequestLogger)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			log.Error().Err(err).Msg("failed to write health check response")
		}
	})
	r.Handle("/*", http.HandlerFunc(g.forward))

	return corsutil.Handler(g.cors, r)
}

func (g *Gateway) forward(w http.ResponseWriter, r *http.Request) {
	for _, route := range g.routes {
		if route.matches(r.URL.Path) {
			route.proxy.ServeHTTP(w, r)
			return
		}
	}
	http.NotFound(w, r)
}
