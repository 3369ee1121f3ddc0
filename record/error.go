package record

import (
	"errors"
)

// InvalidArgumentError is the single error kind raised by record
// construction. Field names the offending constructor argument.
type InvalidArgumentError struct {
	Field  string
	Reason string
}

func (e *InvalidArgumentError) Error() string {
	return "record: invalid " + e.Field + ": " + e.Reason
}

// AsInvalidArgument unwraps err into an *InvalidArgumentError.
func AsInvalidArgument(err error) (*InvalidArgumentError, bool) {
	var ie *InvalidArgumentError
	if errors.As(err, &ie) {
		return ie, true
	}

	return nil, false
}
