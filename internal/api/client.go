// Package api is the request pipeline for the ScriptCraft backend: one
// configured HTTP client that attaches the bearer credential, unwraps the
// response envelope, and turns every failure into a classified, already
// notified error.
package api

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/rs/zerolog/log"
)

// DefaultTimeout bounds every call; on expiry the failure surfaces as a
// network error.
const DefaultTimeout = 60 * time.Second

// SessionState is the slice of the credential session the pipeline needs: it
// reads the token before each send and clears the session on HTTP 401.
type SessionState interface {
	Token() (string, error)
	Logout(ctx context.Context) error
}

// Notifier surfaces transient, human-readable messages to the user. The
// pipeline notifies on every failure, so callers never need their own
// notification logic.
type Notifier interface {
	Error(msg string)
}

// Navigator receives forced navigation requests; the pipeline sends the user
// to the login view whenever a 401 arrives.
type Navigator interface {
	ToLogin()
}

// Client is the single pipeline every backend call goes through.
type Client struct {
	http    *http.Client
	baseURL string
	session SessionState
	notify  Notifier
	nav     Navigator
}

// NewClient builds a pipeline against baseURL. A non-positive timeout falls
// back to DefaultTimeout.
func NewClient(baseURL string, timeout time.Duration, session SessionState, notifier Notifier, nav Navigator) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		http:    &http.Client{Timeout: timeout},
		baseURL: strings.TrimRight(baseURL, "/"),
		session: session,
		notify:  notifier,
		nav:     nav,
	}
}

// do runs one call end to end: build, authorize, send, classify. On success
// the envelope's data payload is decoded into out (when out is non-nil); on
// failure the user has been notified and the returned error is a *Error.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		raw, err := sonic.Marshal(body)
		if err != nil {
			return c.fail(&Error{Kind: KindRequestConfig, Message: msgRequestConfig, Err: err})
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return c.fail(&Error{Kind: KindRequestConfig, Message: msgRequestConfig, Err: err})
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	// Fail closed: an unreadable session must abort the send, not send bare.
	token, err := c.session.Token()
	if err != nil {
		return c.fail(&Error{Kind: KindRequestConfig, Message: msgRequestConfig, Err: err})
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return c.fail(&Error{Kind: KindNetwork, Message: msgNetwork, Err: err})
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return c.fail(&Error{Kind: KindNetwork, Message: msgNetwork, Err: err})
	}

	data, apiErr := classify(resp.StatusCode, raw)
	if apiErr != nil {
		if apiErr.Kind == KindAuthExpired {
			return c.failExpired(ctx, apiErr)
		}
		return c.fail(apiErr)
	}

	if out != nil && len(data) > 0 {
		if err := sonic.Unmarshal(data, out); err != nil {
			return c.fail(&Error{Kind: KindRequestConfig, Message: msgRequestConfig, Err: err})
		}
	}
	return nil
}

// fail notifies the user and returns the classified error.
func (c *Client) fail(e *Error) error {
	log.Error().
		Stringer("kind", e.Kind).
		Int("status", e.Status).
		Err(e.Err).
		Msg(e.Message)
	c.notify.Error(e.Message)
	return e
}

// failExpired handles 401: notify, force the logged-out state, then redirect
// to login. Concurrent 401s each run this; logout is idempotent so the end
// state matches a single occurrence.
func (c *Client) failExpired(ctx context.Context, e *Error) error {
	c.notify.Error(e.Message)
	if err := c.session.Logout(ctx); err != nil {
		log.Warn().Err(err).Msg("failed to clear session after 401")
	}
	c.nav.ToLogin()
	log.Error().Stringer("kind", e.Kind).Int("status", e.Status).Msg(e.Message)
	return e
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	return c.do(ctx, http.MethodGet, path, query, nil, out)
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, nil, body, out)
}

func (c *Client) put(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPut, path, nil, body, out)
}
