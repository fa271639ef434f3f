package relayerr

import (
	"errors"
	"fmt"
	"net/http"
)

type Kind string

const (
	KindParams    Kind = "params"
	KindFetch     Kind = "fetch"
	KindDecode    Kind = "decode"
	KindEncode    Kind = "encode"
	KindAuth      Kind = "auth"
	KindForbidden Kind = "forbidden"
	KindInternal  Kind = "internal"
)

type Error struct {
	Kind    Kind
	Op      string
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s:%s] %s: %v", e.Kind, e.Op, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s:%s] %s", e.Kind, e.Op, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Wrap returns nil for a nil err. An err that already carries a Kind keeps it.
func Wrap(kind Kind, op, message string, err error) error {
	if err == nil {
		return nil
	}

	var typed *Error
	if errors.As(err, &typed) {
		return err
	}

	return &Error{
		Kind:    kind,
		Op:      op,
		Message: message,
		Cause:   err,
	}
}

func New(kind Kind, op, message string) error {
	return &Error{
		Kind:    kind,
		Op:      op,
		Message: message,
	}
}

// KindOf returns the kind of the first typed error in the chain, or KindInternal.
func KindOf(err error) Kind {
	var typed *Error
	if errors.As(err, &typed) {
		return typed.Kind
	}
	return KindInternal
}

func IsKind(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}

func StatusCode(kind Kind) int {
	switch kind {
	case KindParams:
		return http.StatusBadRequest
	case KindAuth:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindFetch:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// PublicMessage is the only error text a client ever sees for a kind.
func PublicMessage(kind Kind) string {
	switch kind {
	case KindParams:
		return "bad request parameters"
	case KindAuth:
		return "access denied"
	case KindForbidden:
		return "source image domain not allowed"
	case KindFetch:
		return "failed to fetch remote image"
	case KindDecode:
		return "remote resource is not a decodable image"
	case KindEncode:
		return "failed to encode image"
	default:
		return "internal relay error"
	}
}
