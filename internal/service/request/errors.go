package request

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidRequestID      = errors.New("invalid request id")
	ErrInvalidDriverID       = errors.New("invalid driver id")
	ErrInvalidSortKey        = errors.New("invalid sort key")
)
