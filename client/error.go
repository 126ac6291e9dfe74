package client

import (
	"errors"
	"log/slog"
	"net/http"

	"starclip/internal/pkg/errs"
)

type ErrorKind string

// Client-side error kinds. Every failure of a round-trip is classified into
// one of these so callers can branch without string matching.
const (
	KindTransport    ErrorKind = "TRANSPORT"
	KindUnauthorized ErrorKind = "UNAUTHORIZED"
	KindNotFound     ErrorKind = "NOT_FOUND"
	KindRemote       ErrorKind = "REMOTE"
	KindDecode       ErrorKind = "DECODE"
	KindRateLimited  ErrorKind = "RATE_LIMITED"
)

// APIError wraps a failed API call with its kind and, when the server sent a
// structured envelope error, the remote error code.
type APIError struct {
	Kind ErrorKind
	Code string
	msg  string
	err  error // wrapped low-level error
}

func (e APIError) Error() string {
	s := string(e.Kind) + ": " + e.msg
	if e.Code != "" {
		s += " (" + e.Code + ")"
	}
	if e.err != nil {
		s += ": " + e.err.Error()
	}
	return s
}

func (e APIError) Unwrap() error {
	return e.err
}

// Message is the human-readable text suitable for a transient UI banner.
func (e APIError) Message() string {
	return e.msg
}

func wrapAPIErr(logger *slog.Logger, kind ErrorKind, code, msg string, err error) error {
	logger.Error("API error: "+msg,
		slog.String("kind", string(kind)),
		slog.String("code", code),
	)

	if err != nil {
		err = errs.Wrap(err, msg)
	}

	return APIError{Kind: kind, Code: code, msg: msg, err: err}
}

func IsKind(err error, kind ErrorKind) bool {
	var e APIError
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// ErrorMessage extracts a banner-friendly message from any error returned by
// the client, falling back to a generic one for non-API failures.
func ErrorMessage(err error) string {
	var e APIError
	if errors.As(err, &e) {
		return e.Message()
	}
	if err != nil {
		return "something went wrong, please try again"
	}
	return ""
}

func kindForHTTPStatus(status int) ErrorKind {
	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return KindUnauthorized
	case status == http.StatusNotFound:
		return KindNotFound
	case status == http.StatusTooManyRequests:
		return KindRateLimited
	default:
		return KindRemote
	}
}
