package httpx

import (
	"encoding/json"
	"errors"
	"net/http"

	"animal-shelter-api/internal/apperrors"
)

// Antes cada módulo duplicaba su writeJSON; con cinco módulos ya no tiene
// sentido, así que vive acá como helper común.

// ErrorResponse es el envelope de error que devuelve toda la API.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError clasifica el error (apperrors) y responde con el status del
// contrato. Errores no clasificados salen como internal/500 sin filtrar
// el mensaje original al cliente.
func WriteError(w http.ResponseWriter, err error) {
	kind := apperrors.KindOf(err)

	msg := "internal error"
	if kind != apperrors.KindInternal {
		msg = err.Error()
		var e *apperrors.Error
		if errors.As(err, &e) {
			msg = e.Msg
		}
	}

	WriteJSON(w, apperrors.HTTPStatus(kind), ErrorResponse{
		Error:   string(kind),
		Message: msg,
	})
}
