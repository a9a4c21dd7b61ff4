package handler

import (
	"time"

	"github.com/deppfellow/travelog/internal/middleware"
	"github.com/deppfellow/travelog/internal/server"
	"github.com/deppfellow/travelog/internal/service"
	"github.com/deppfellow/travelog/internal/validation"
	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/integrations/nrpkgerrors"
	"github.com/newrelic/go-agent/v3/newrelic"
)

// Handler holds the dependencies shared by every resource handler.
type Handler struct {
	server   *server.Server
	services *service.Services
}

func NewHandler(s *server.Server, services *service.Services) Handler {
	return Handler{server: s, services: services}
}

// Request is the constraint for typed payloads: Req is *T, so the pipeline
// can allocate a fresh T for every request and bind into it.
type Request[T any] interface {
	*T
	validation.Validatable
}

// HandlerFunc is a typed endpoint returning a body written with the
// route's fixed status.
type HandlerFunc[Req validation.Validatable, Res any] func(c echo.Context, req Req) (Res, error)

// HandlerFuncWithStatus is a typed endpoint that picks its own status.
type HandlerFuncWithStatus[Req validation.Validatable, Res any] func(c echo.Context, req Req) (Res, int, error)

// HandlerFuncNoContent is a typed endpoint without a response body.
type HandlerFuncNoContent[Req validation.Validatable] func(c echo.Context, req Req) error

// NoRequest is the payload of endpoints that read nothing from the request.
type NoRequest struct{}

func (NoRequest) Validate() error { return nil }

// ResponseHandler writes a successful handler result.
type ResponseHandler interface {
	Handle(c echo.Context, result any) error

	// GetOperation names the response type in logs.
	GetOperation() string

	AddAttributes(txn *newrelic.Transaction, result any)
}

// JSONResponseHandler writes JSON with a fixed status.
type JSONResponseHandler struct {
	status int
}

func (h JSONResponseHandler) Handle(c echo.Context, result any) error {
	return c.JSON(h.status, result)
}

func (h JSONResponseHandler) GetOperation() string {
	return "handler"
}

func (h JSONResponseHandler) AddAttributes(txn *newrelic.Transaction, result any) {
	// http.status_code is set by EnhanceTracing.
}

// statusResult pairs a body with the status chosen by the endpoint.
type statusResult struct {
	status int
	body   any
}

// StatusJSONResponseHandler writes JSON with the status returned by the endpoint.
type StatusJSONResponseHandler struct{}

func (h StatusJSONResponseHandler) Handle(c echo.Context, result any) error {
	r := result.(statusResult)
	return c.JSON(r.status, r.body)
}

func (h StatusJSONResponseHandler) GetOperation() string {
	return "handler_with_status"
}

func (h StatusJSONResponseHandler) AddAttributes(txn *newrelic.Transaction, result any) {
	if txn == nil {
		return
	}
	if r, ok := result.(statusResult); ok {
		txn.AddAttribute("handler.status_code", r.status)
	}
}

// NoContentResponseHandler writes an empty body.
type NoContentResponseHandler struct {
	status int
}

func (h NoContentResponseHandler) Handle(c echo.Context, result any) error {
	return c.NoContent(h.status)
}

func (h NoContentResponseHandler) GetOperation() string {
	return "handler_no_content"
}

func (h NoContentResponseHandler) AddAttributes(txn *newrelic.Transaction, result any) {
	// http.status_code is set by EnhanceTracing.
}

// handleRequest is the shared pipeline: bind and validate, run the
// endpoint, log and trace both phases, then write the response.
func handleRequest[Req validation.Validatable](
	c echo.Context,
	req Req,
	handler func(c echo.Context, req Req) (any, error),
	responseHandler ResponseHandler,
) error {
	start := time.Now()
	method := c.Request().Method
	path := c.Path()

	txn := newrelic.FromContext(c.Request().Context())
	if txn != nil {
		txn.AddAttribute("handler.name", path)
		responseHandler.AddAttributes(txn, nil)
	}

	logger := middleware.GetLogger(c).With().
		Str("operation", responseHandler.GetOperation()).
		Str("method", method).
		Str("path", path).
		Logger()

	logger.Info().Msg("handling request")

	validationStart := time.Now()
	if err := validation.BindAndValidate(c, req); err != nil {
		validationDuration := time.Since(validationStart)

		logger.Error().
			Err(err).
			Dur("validation_duration", validationDuration).
			Msg("request validation failed")

		if txn != nil {
			txn.NoticeError(nrpkgerrors.Wrap(err))
			txn.AddAttribute("validation.status", "failed")
			txn.AddAttribute("validation.duration_ms", validationDuration.Milliseconds())
		}

		return err
	}

	validationDuration := time.Since(validationStart)
	if txn != nil {
		txn.AddAttribute("validation.status", "success")
		txn.AddAttribute("validation.duration_ms", validationDuration.Milliseconds())
	}

	logger.Debug().
		Dur("validation_duration", validationDuration).
		Msg("request validation successful")

	handlerStart := time.Now()
	result, err := handler(c, req)
	handlerDuration := time.Since(handlerStart)

	if err != nil {
		totalDuration := time.Since(start)

		logger.Error().
			Err(err).
			Dur("handler_duration", handlerDuration).
			Dur("total_duration", totalDuration).
			Msg("handler execution failed")

		if txn != nil {
			txn.NoticeError(nrpkgerrors.Wrap(err))
			txn.AddAttribute("handler.status", "error")
			txn.AddAttribute("handler.duration_ms", handlerDuration.Milliseconds())
			txn.AddAttribute("total.duration_ms", totalDuration.Milliseconds())
		}
		return err
	}

	totalDuration := time.Since(start)

	if txn != nil {
		txn.AddAttribute("handler.status", "success")
		txn.AddAttribute("handler.duration_ms", handlerDuration.Milliseconds())
		txn.AddAttribute("total.duration_ms", totalDuration.Milliseconds())
		responseHandler.AddAttributes(txn, result)
	}

	logger.Info().
		Dur("handler_duration", handlerDuration).
		Dur("validation_duration", validationDuration).
		Dur("total_duration", totalDuration).
		Msg("request completed successfully")

	return responseHandler.Handle(c, result)
}

// Handle wraps a typed endpoint into an echo.HandlerFunc:
//
//	g.POST("/cities", handler.Handle(h.CreateCity, http.StatusCreated))
func Handle[T any, Req Request[T], Res any](handler HandlerFunc[Req, Res], status int) echo.HandlerFunc {
	return func(c echo.Context) error {
		return handleRequest(c, Req(new(T)), func(c echo.Context, req Req) (any, error) {
			return handler(c, req)
		}, JSONResponseHandler{status: status})
	}
}

// HandleWithStatus is Handle for endpoints whose success status depends on
// the outcome, e.g. 200 for an existing user and 201 for a new one.
func HandleWithStatus[T any, Req Request[T], Res any](handler HandlerFuncWithStatus[Req, Res]) echo.HandlerFunc {
	return func(c echo.Context) error {
		return handleRequest(c, Req(new(T)), func(c echo.Context, req Req) (any, error) {
			body, status, err := handler(c, req)
			if err != nil {
				return nil, err
			}
			return statusResult{status: status, body: body}, nil
		}, StatusJSONResponseHandler{})
	}
}

// HandleNoContent is Handle for endpoints without a response body, such as
// a DELETE answering 204.
func HandleNoContent[T any, Req Request[T]](handler HandlerFuncNoContent[Req], status int) echo.HandlerFunc {
	return func(c echo.Context) error {
		return handleRequest(c, Req(new(T)), func(c echo.Context, req Req) (any, error) {
			return nil, handler(c, req)
		}, NoContentResponseHandler{status: status})
	}
}
