package driver

import "errors"

var (
	ErrInvalidDriverID = errors.New("invalid driver id")
	ErrInvalidStatus   = errors.New("invalid status")
)
