// Package handler is the HTTP layer of the journal API.
//
// Each resource handler binds a typed request, calls the matching service
// and lets the shared pipeline in base.go write the response with the
// route's status. Errors are returned untouched; the global error handler
// renders them.
package handler
