package planner

import "errors"

var (
	// ErrEmptyInput indicates no artifacts were supplied to plan.
	ErrEmptyInput = errors.New("no artifacts to plan")

	// ErrMalformedPackage indicates a package name with empty dot-segments.
	ErrMalformedPackage = errors.New("malformed package name")

	// ErrDuplicatePackage indicates two artifacts resolved to the same
	// module path.
	ErrDuplicatePackage = errors.New("duplicate package")
)
