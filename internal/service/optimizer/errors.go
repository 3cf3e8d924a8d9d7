package optimizer

import "errors"

var (
	ErrUnknownDriverPosition = errors.New("unknown driver position")
	ErrNoRequestsSelected    = errors.New("no requests selected")
	ErrCapacityExceeded      = errors.New("driver capacity exceeded")
	ErrDuplicateRequest      = errors.New("duplicate request in selection")
)
