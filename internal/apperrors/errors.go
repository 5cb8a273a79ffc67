package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind clasifica todo fallo del dominio/storage en una de seis categorías.
// El transporte mapea Kind -> status HTTP; nadie más conoce códigos HTTP.
type Kind string

const (
	KindNotFound        Kind = "not_found"
	KindConflict        Kind = "conflict"
	KindForbidden       Kind = "forbidden"
	KindUnauthenticated Kind = "unauthenticated"
	KindBadRequest      Kind = "bad_request"
	KindInternal        Kind = "internal"
)

// Error es el error tipado que viaja entre store, service y handler.
// Compatible con errors.Is/errors.As.
type Error struct {
	Kind Kind
	Msg  string
	Err  error // causa opcional
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Msg, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

func (e *Error) Unwrap() error { return e.Err }

// Is permite comparar por Kind con errores centinela tipo apperrors.New(Kind, "").
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return e.Kind == t.Kind && (t.Msg == "" || t.Msg == e.Msg)
}

func New(kind Kind, msg string) *Error {
	return &Error{Kind: kind, Msg: msg}
}

func Wrap(kind Kind, msg string, err error) *Error {
	return &Error{Kind: kind, Msg: msg, Err: err}
}

// KindOf devuelve el Kind del error, o KindInternal si no está clasificado.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// IsKind chequea si el error (o su cadena) pertenece al Kind dado.
func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}

// HTTPStatus mapea Kind a status code. Contrato fijo:
// NotFound->404, Conflict->409, Forbidden->403, Unauthenticated->401,
// BadRequest->400, Internal->500.
func HTTPStatus(kind Kind) int {
	switch kind {
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	case KindForbidden:
		return http.StatusForbidden
	case KindUnauthenticated:
		return http.StatusUnauthorized
	case KindBadRequest:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
