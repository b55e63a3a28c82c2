// Package model holds request and response types shared between the
// handler and service layers.
package model

import "github.com/deppfellow/cats-api/internal/validation"

// EmptyRequest is used by routes that take no input. Any request body
// is ignored.
type EmptyRequest struct{}

func (r *EmptyRequest) Validate() error {
	return validation.Struct(r)
}
