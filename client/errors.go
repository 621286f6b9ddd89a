package client

import "fmt"

// ErrorKind classifies API failures the way the UI consumes them.
type ErrorKind int

const (
	// ValidationError: missing or malformed request field.
	ValidationError ErrorKind = iota
	// AuthError: invalid credentials or an expired/absent session. The
	// message stays generic to avoid account enumeration.
	AuthError
	// NotFoundError: unknown product or order id.
	NotFoundError
	// ConflictError: duplicate email on signup.
	ConflictError
	// ServerError: the server answered 5xx; its message is forwarded verbatim.
	ServerError
	// NetworkError: the request failed before reaching the server, or no
	// response arrived. Never retried automatically.
	NetworkError
)

func (k ErrorKind) String() string {
	switch k {
	case ValidationError:
		return "validation"
	case AuthError:
		return "auth"
	case NotFoundError:
		return "not found"
	case ConflictError:
		return "conflict"
	case ServerError:
		return "server"
	default:
		return "network"
	}
}

// APIError is the typed failure surfaced to the stores.
type APIError struct {
	Kind    ErrorKind
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("request failed (%s)", e.Kind)
}

func kindForStatus(status int) ErrorKind {
	switch status {
	case 400:
		return ValidationError
	case 401, 403:
		return AuthError
	case 404:
		return NotFoundError
	case 409:
		return ConflictError
	default:
		return ServerError
	}
}

// IsKind reports whether err is an APIError of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	apiErr, ok := err.(*APIError)
	return ok && apiErr.Kind == kind
}
