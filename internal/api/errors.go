package api

// Kind classifies a failed call. Business failures come from a 2xx response
// whose envelope reports success=false; the rest are transport-level.
type Kind int

const (
	// KindBusiness: the operation itself failed although the transport succeeded.
	KindBusiness Kind = iota + 1
	// KindAuthExpired: HTTP 401; the pipeline has already logged the session out.
	KindAuthExpired
	// KindForbidden: HTTP 403.
	KindForbidden
	// KindNotFound: HTTP 404.
	KindNotFound
	// KindServer: HTTP 5xx.
	KindServer
	// KindHTTP: any other non-2xx status.
	KindHTTP
	// KindNetwork: the request was sent but no response arrived.
	KindNetwork
	// KindRequestConfig: the request could not be built or sent at all.
	KindRequestConfig
)

// String names the kind for logs.
func (k Kind) String() string {
	switch k {
	case KindBusiness:
		return "business"
	case KindAuthExpired:
		return "auth_expired"
	case KindForbidden:
		return "forbidden"
	case KindNotFound:
		return "not_found"
	case KindServer:
		return "server"
	case KindHTTP:
		return "http"
	case KindNetwork:
		return "network"
	case KindRequestConfig:
		return "request_config"
	default:
		return "unknown"
	}
}

// Fallback notification texts, used when the server supplies no message.
const (
	msgBusinessFallback = "operation failed"
	msgAuthExpired      = "session expired, please log in again"
	msgForbidden        = "access denied"
	msgNotFound         = "requested resource does not exist"
	msgServerFallback   = "internal server error"
	msgHTTPFallback     = "request failed"
	msgNetwork          = "network connection failed, check your network"
	msgRequestConfig    = "request configuration error"
)

// Error is the classified failure every unsuccessful call returns. By the time
// a caller sees one, the message has already been surfaced as a notification.
type Error struct {
	Kind    Kind
	Status  int    // HTTP status when a response was received, else 0
	Code    int    // envelope code when one was decoded, else 0
	Message string // human-readable, already shown to the user
	Err     error  // underlying transport error, when any
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Message
}

// Unwrap exposes the underlying transport error to errors.Is/As.
func (e *Error) Unwrap() error {
	return e.Err
}
