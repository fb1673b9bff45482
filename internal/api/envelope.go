package api

import (
	"encoding/json"

	"github.com/bytedance/sonic"
)

// envelope is the uniform wrapper every backend endpoint returns.
type envelope struct {
	Success bool            `json:"success"`
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// classify turns a completed HTTP exchange into either the raw data payload or
// a classified error. It is a pure function of status and body; the 401 side
// effects (logout, navigation) belong to the caller.
func classify(status int, body []byte) (json.RawMessage, *Error) {
	if status >= 200 && status < 300 {
		var env envelope
		if err := sonic.Unmarshal(body, &env); err != nil || !env.Success {
			// A 2xx body that is not a success envelope is a business failure,
			// matching how a missing success flag reads as falsy upstream.
			msg := env.Message
			if msg == "" {
				msg = msgBusinessFallback
			}
			return nil, &Error{Kind: KindBusiness, Status: status, Code: env.Code, Message: msg}
		}
		return env.Data, nil
	}

	// Non-2xx bodies usually still carry an envelope; mine it for the message.
	var env envelope
	_ = sonic.Unmarshal(body, &env)

	switch {
	case status == 401:
		return nil, &Error{Kind: KindAuthExpired, Status: status, Code: env.Code, Message: msgAuthExpired}
	case status == 403:
		return nil, &Error{Kind: KindForbidden, Status: status, Code: env.Code, Message: msgForbidden}
	case status == 404:
		return nil, &Error{Kind: KindNotFound, Status: status, Code: env.Code, Message: msgNotFound}
	case status >= 500:
		msg := env.Message
		if msg == "" {
			msg = msgServerFallback
		}
		return nil, &Error{Kind: KindServer, Status: status, Code: env.Code, Message: msg}
	default:
		msg := env.Message
		if msg == "" {
			msg = msgHTTPFallback
		}
		return nil, &Error{Kind: KindHTTP, Status: status, Code: env.Code, Message: msg}
	}
}
