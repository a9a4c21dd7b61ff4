package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/integrations/nrecho-v4"
	"github.com/newrelic/go-agent/v3/integrations/nrpkgerrors"
	"github.com/newrelic/go-agent/v3/newrelic"

	"github.com/deppfellow/travelog/internal/server"
)

// TracingMiddleware owns the New Relic echo integration. nrApp is nil when
// New Relic is disabled and every method degrades to a pass-through.
type TracingMiddleware struct {
	server *server.Server
	nrApp  *newrelic.Application
}

func NewTracingMiddleware(s *server.Server, nrApp *newrelic.Application) *TracingMiddleware {
	return &TracingMiddleware{server: s, nrApp: nrApp}
}

func passThrough(next echo.HandlerFunc) echo.HandlerFunc { return next }

// NewRelicMiddleware starts one transaction per request.
func (tm *TracingMiddleware) NewRelicMiddleware() echo.MiddlewareFunc {
	if tm.nrApp == nil {
		return passThrough
	}
	return nrecho.Middleware(tm.nrApp)
}

// EnhanceTracing tags the transaction with the matched journal route and the
// client, and notices server-side failures only. Validation and not-found
// responses are part of normal traffic and stay out of the error rate.
func (tm *TracingMiddleware) EnhanceTracing() echo.MiddlewareFunc {
	if tm.nrApp == nil {
		return passThrough
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			txn := newrelic.FromContext(c.Request().Context())
			if txn == nil {
				return next(c)
			}

			txn.AddAttribute("travelog.route", c.Path())
			txn.AddAttribute("http.real_ip", c.RealIP())
			if requestID := GetRequestID(c); requestID != "" {
				txn.AddAttribute("request.id", requestID)
			}

			err := next(c)

			status := c.Response().Status
			if err != nil {
				status = normalize(err).Status
				if status >= http.StatusInternalServerError {
					txn.NoticeError(nrpkgerrors.Wrap(err))
				}
			}
			txn.AddAttribute("http.status_code", status)

			return err
		}
	}
}
