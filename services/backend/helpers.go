package backend

import (
	"github.com/pkg/errors"

	"github.com/trezcool/lava/core"
)

// requireID guards path parameters before any network call is made.
func requireID(name, id string) error {
	if core.CleanString(id) == "" {
		return core.NewValidationError(
			errors.New(name+" is required"),
			core.FieldError{Field: name, Error: "this field is required"},
		)
	}
	return nil
}
