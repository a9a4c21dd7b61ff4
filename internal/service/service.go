// Package service contains the business logic.
//
// It sits between the handler and repository layers.
// It receives validated data from the handler, performs
// business operations, and calls repository methods to interact
// with the data
package service

import (
	"errors"

	"github.com/deppfellow/travelog/internal/errs"
	"github.com/deppfellow/travelog/internal/model"
)

// invalid converts model violations into the 422 response; other errors
// pass through.
func invalid(err error) error {
	var v model.ValidationErrors
	if errors.As(err, &v) {
		return v.HTTPError()
	}
	return err
}

// readFailure keeps HTTP errors (404s) intact and turns anything else
// raised while listing or fetching into the 400 read failure.
func readFailure(err error) error {
	var httpErr *errs.HTTPError
	if errors.As(err, &httpErr) {
		return err
	}
	return errs.NewReadFailureError(err)
}

// emptyCollection is the 404 returned by list operations without rows.
func emptyCollection(entities string) *errs.HTTPError {
	return errs.NewNotFoundError("no "+entities+" exist", true, nil)
}
