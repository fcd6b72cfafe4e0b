package models

import "fmt"

// ErrorKind classifies a failed completion call.
type ErrorKind string

const (
	KindAuthentication ErrorKind = "authentication"
	KindTimeout        ErrorKind = "timeout"
	KindConnectivity   ErrorKind = "connectivity"
	KindUnknown        ErrorKind = "unknown"
)

// Hint returns the remediation text shown next to the failure message.
func (k ErrorKind) Hint() string {
	switch k {
	case KindAuthentication:
		return "API Key Error: Please check your language model API key. The key might be invalid or missing."
	case KindTimeout:
		return "Timeout Error: The request took too long to complete. The AI model might be busy. Please try again in a few minutes."
	case KindConnectivity:
		return "Connection Error: There was a problem connecting to the language model servers. Please check your internet connection."
	default:
		return "An unexpected error occurred. Please try again or contact support if the issue persists."
	}
}

// CallFailure is a terminal failure of one completion call.
type CallFailure struct {
	Kind    ErrorKind
	Message string
}

func (f *CallFailure) Error() string {
	return fmt.Sprintf("%s error: %s", f.Kind, f.Message)
}

// InputError rejects a request before any network call is made.
type InputError struct {
	Field   string
	Message string
}

func (e *InputError) Error() string {
	return e.Message
}

// ParseErrorKind classifies a completion payload that failed validation.
type ParseErrorKind string

const (
	ParseMalformed       ParseErrorKind = "malformed"
	ParseMissingField    ParseErrorKind = "missing_field"
	ParseUnexpectedField ParseErrorKind = "unexpected_field"
	ParseInvalidField    ParseErrorKind = "invalid_field"
)

// ParseError means the call succeeded but its payload could not be interpreted.
type ParseError struct {
	Kind   ParseErrorKind
	Field  string
	Detail string
}

func (e *ParseError) Error() string {
	switch e.Kind {
	case ParseMissingField:
		return fmt.Sprintf("missing expected field %q in the result", e.Field)
	case ParseUnexpectedField:
		return fmt.Sprintf("unexpected field %q in the result", e.Field)
	case ParseInvalidField:
		return fmt.Sprintf("field %q has an invalid value: %s", e.Field, e.Detail)
	default:
		return fmt.Sprintf("result is not a valid JSON object: %s", e.Detail)
	}
}
