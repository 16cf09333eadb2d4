package services

// ValidationError marks a request the client got wrong: a missing or unknown
// event kind, or metadata that does not fit the kind. Handlers map it to a
// 400; anything else coming out of the service is a storage failure and maps
// to a 500. A cap denial is neither — it is a normal business outcome and
// travels in the response body, never as an error.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}
