package operation

import "errors"

// ErrUnknownOperation signals that an operation tag has no registered variant
var ErrUnknownOperation = errors.New("unknown operation")

// ErrUnknownExtension signals that an operation extension tag has no registered variant
var ErrUnknownExtension = errors.New("unknown operation extension")

// ErrMalformedOperation signals that an operation payload could not be decoded
var ErrMalformedOperation = errors.New("malformed operation")
