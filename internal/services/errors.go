package services

// ValidationError reports malformed, missing, or out-of-enum input. It is
// detected before any store call and is never logged as exceptional.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

// NotFoundError reports that the target id is absent or fails an operation's
// conditional match.
type NotFoundError struct {
	Msg string
}

func (e *NotFoundError) Error() string {
	return e.Msg
}

func validationErr(msg string) error {
	return &ValidationError{Msg: msg}
}

func notFoundErr(msg string) error {
	return &NotFoundError{Msg: msg}
}
