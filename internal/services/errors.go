package services

// ValidationError marks request problems the client can fix (missing or
// malformed fields). Handlers report these as 400 with the message as-is;
// everything else is treated as a store failure and hidden behind a 500.
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string { return e.msg }

func invalid(msg string) error { return &ValidationError{msg: msg} }
