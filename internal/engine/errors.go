package engine

import "errors"

// ErrInvalidInput classifies malformed or out-of-enumeration household
// fields. Non-retryable.
var ErrInvalidInput = errors.New("invalid input")

// ErrUndefinedRatio is returned by RelativeChange when the base of the
// ratio is zero. Process never surfaces it: the engine's zero-base policy
// is to report 0 for every percentage field and attach a warning instead.
var ErrUndefinedRatio = errors.New("undefined ratio: zero base")
