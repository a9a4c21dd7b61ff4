// Package errs defines the error shape every travelog endpoint returns.
//
// Handlers, services and repositories return *HTTPError values; the global
// echo error handler renders them as JSON so clients always receive the
// same structure: a machine code, a message, the status and an optional
// list of per-field problems.
package errs
