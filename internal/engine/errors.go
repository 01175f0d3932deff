package engine

import "errors"

var (
	// ErrValidation indicates an invalid request.
	ErrValidation = errors.New("validation failed")

	// ErrGenerate indicates the external code generator failed.
	ErrGenerate = errors.New("code generation failed")
)
