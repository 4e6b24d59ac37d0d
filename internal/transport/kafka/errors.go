package kafka

import "errors"

// PermanentError marks a publish failure no retry can fix, such as an
// envelope that does not marshal. The drainer parks these rows instead of
// burning attempts on them.
type PermanentError struct {
	Err error
}

func (e PermanentError) Error() string {
	if e.Err == nil {
		return "permanent error"
	}
	return e.Err.Error()
}

func (e PermanentError) Unwrap() error { return e.Err }

// Permanent wraps err as permanent.
func Permanent(err error) error {
	return PermanentError{Err: err}
}

// IsPermanent reports whether err is a permanent publish failure.
func IsPermanent(err error) bool {
	var pe PermanentError
	return errors.As(err, &pe)
}
