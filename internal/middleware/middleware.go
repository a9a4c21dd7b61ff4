// Package middleware holds the cross-cutting echo middleware: request ids,
// the request-scoped logger, New Relic tracing, request logging, CORS,
// rate limiting telemetry, panic recovery and the global error handler.
package middleware
