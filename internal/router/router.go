// Package router builds the echo instance: the middleware chain, the
// global error handler and the route table.
package router

import (
	"net/http"
	"time"

	"github.com/deppfellow/travelog/internal/errs"
	"github.com/deppfellow/travelog/internal/handler"
	"github.com/deppfellow/travelog/internal/middleware"
	"github.com/deppfellow/travelog/internal/server"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"
)

// NewRouter wires middleware in the order the request passes through them.
func NewRouter(s *server.Server, h *handler.Handlers) *echo.Echo {
	middlewares := middleware.NewMiddlewares(s)

	router := echo.New()
	router.HideBanner = true
	router.HidePort = true
	router.HTTPErrorHandler = middlewares.Global.GlobalErrorHandler

	router.Use(
		rateLimiter(s, middlewares.RateLimit),
		middlewares.Global.CORS(),
		middlewares.Global.Secure(),
		middleware.RequestID(),
		middlewares.Tracing.NewRelicMiddleware(),
		middlewares.Tracing.EnhanceTracing(),
		middlewares.ContextEnhancer.EnhanceContext(),
		middlewares.Global.RequestLogger(),
		middlewares.Global.Recover(),
	)

	registerSystemRoutes(router, h)
	registerJournalRoutes(router, h)

	return router
}

// rateLimiter limits each client ip to server.rate_limit requests per
// second with an equal burst.
func rateLimiter(s *server.Server, telemetry *middleware.RateLimitMiddleware) echo.MiddlewareFunc {
	limit := s.Config.Server.EffectiveRateLimit()

	return echoMiddleware.RateLimiterWithConfig(echoMiddleware.RateLimiterConfig{
		Store: echoMiddleware.NewRateLimiterMemoryStoreWithConfig(
			echoMiddleware.RateLimiterMemoryStoreConfig{
				Rate:      rate.Limit(limit),
				Burst:     max(1, int(limit)),
				ExpiresIn: time.Minute,
			},
		),
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.RealIP(), nil
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return errs.NewBadRequestError(http.StatusText(http.StatusBadRequest), false, nil, nil, nil)
		},
		DenyHandler: func(c echo.Context, identifier string, err error) error {
			telemetry.RecordRateLimitHit(c.Path(), identifier)
			return errs.NewTooManyRequestsError("Rate limit exceeded")
		},
	})
}
