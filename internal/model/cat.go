package model

import "github.com/deppfellow/cats-api/internal/validation"

// CatIDRequest binds the `:id` route parameter. Binding coerces it into
// an int; the positive_int rule rejects zero and negatives.
type CatIDRequest struct {
	ID int `param:"id" validate:"positive_int"`
}

func (r *CatIDRequest) Validate() error {
	return validation.Struct(r)
}

// CatListResponse is the stub payload of GET /cats.
type CatListResponse struct {
	Cats string `json:"cats"`
}
