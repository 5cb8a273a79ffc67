package httpx

import (
	"encoding/json"
	"net/http"
	"strings"

	"animal-shelter-api/internal/apperrors"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// PathID valida que el segmento de path sea un UUID bien formado antes de
// tocar el store; un id malformado es BadRequest y nunca llega al repo.
func PathID(r *http.Request, param string) (string, error) {
	raw := strings.TrimSpace(chi.URLParam(r, param))
	if _, err := uuid.Parse(raw); err != nil {
		return "", apperrors.New(apperrors.KindBadRequest, "invalid id format")
	}
	return raw, nil
}

// DecodeStrict parsea el body JSON rechazando campos desconocidos.
func DecodeStrict(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return apperrors.New(apperrors.KindBadRequest, "invalid json")
	}
	return nil
}
