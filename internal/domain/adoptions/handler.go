package adoptions

import (
	"net/http"
	"time"

	"animal-shelter-api/internal/domain/authz"
	"animal-shelter-api/internal/middleware"
	"animal-shelter-api/internal/platform/httpx"
	"animal-shelter-api/internal/platform/metrics"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, m *metrics.Metrics) {
	r.Post("/adoptions", createAdoptionHandler(svc))
	r.Get("/user/adoptions", listMyAdoptionsHandler(svc))
	r.Put("/adoptions/{requestID}/status", updateAdoptionStatusHandler(svc, m))
}

type createAdoptionRequest struct {
	AnimalID string `json:"animal_id"`
	Message  string `json:"message"`
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

type adoptionResponse struct {
	ID        string    `json:"id"`
	AnimalID  string    `json:"animal_id"`
	UserID    string    `json:"user_id"`
	Message   string    `json:"message"`
	Status    Status    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// createAdoptionHandler godoc
// @Summary Solicitar adopción
// @Description Crea una solicitud de adopción a nombre del usuario autenticado. El animal debe existir.
// @Tags adoptions
// @Accept json
// @Produce json
// @Param payload body createAdoptionRequest true "Solicitud"
// @Success 201 {object} adoptionResponse
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 401 {object} httpx.ErrorResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Router /adoptions [post]
func createAdoptionHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if err := authz.Require(claims, ok, authz.OpAdoptionCreate); err != nil {
			httpx.WriteError(w, err)
			return
		}

		var req createAdoptionRequest
		if err := httpx.DecodeStrict(r, &req); err != nil {
			httpx.WriteError(w, err)
			return
		}

		// siempre a nombre propio; el user id sale de la sesión, no del body
		created, err := svc.Create(r.Context(), claims.UserID, CreateInput{
			AnimalID: req.AnimalID,
			Message:  req.Message,
		})
		if err != nil {
			httpx.WriteError(w, err)
			return
		}

		httpx.WriteJSON(w, http.StatusCreated, toAdoptionResponse(created))
	}
}

// listMyAdoptionsHandler godoc
// @Summary Mis solicitudes de adopción
// @Tags adoptions
// @Produce json
// @Success 200 {array} adoptionResponse
// @Failure 401 {object} httpx.ErrorResponse
// @Router /user/adoptions [get]
func listMyAdoptionsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if err := authz.Require(claims, ok, authz.OpAdoptionListOwn); err != nil {
			httpx.WriteError(w, err)
			return
		}

		items, err := svc.ListByUser(r.Context(), claims.UserID)
		if err != nil {
			httpx.WriteError(w, err)
			return
		}

		out := make([]adoptionResponse, 0, len(items))
		for _, req := range items {
			out = append(out, toAdoptionResponse(req))
		}
		httpx.WriteJSON(w, http.StatusOK, out)
	}
}

// updateAdoptionStatusHandler godoc
// @Summary Resolver solicitud de adopción
// @Description Aprueba o rechaza una solicitud (solo admin/vet). Aprobar pasa el animal referenciado a adopted.
// @Tags adoptions
// @Accept json
// @Produce json
// @Param requestID path string true "ID de la solicitud"
// @Param payload body updateStatusRequest true "approved o rejected"
// @Success 200 {object} adoptionResponse
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 401 {object} httpx.ErrorResponse
// @Failure 403 {object} httpx.ErrorResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Failure 409 {object} httpx.ErrorResponse
// @Router /adoptions/{requestID}/status [put]
func updateAdoptionStatusHandler(svc *Service, m *metrics.Metrics) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if err := authz.Require(claims, ok, authz.OpAdoptionSetStatus); err != nil {
			httpx.WriteError(w, err)
			return
		}

		id, err := httpx.PathID(r, "requestID")
		if err != nil {
			httpx.WriteError(w, err)
			return
		}

		var req updateStatusRequest
		if err := httpx.DecodeStrict(r, &req); err != nil {
			httpx.WriteError(w, err)
			return
		}

		updated, transitioned, err := svc.UpdateStatus(r.Context(), id, req.Status)
		if err != nil {
			httpx.WriteError(w, err)
			return
		}
		// solo la transición real cuenta; el no-op idempotente no suma
		if transitioned && updated.Status == StatusApproved {
			m.IncAdoptionsApproved()
		}

		httpx.WriteJSON(w, http.StatusOK, toAdoptionResponse(updated))
	}
}

func toAdoptionResponse(req AdoptionRequest) adoptionResponse {
	return adoptionResponse{
		ID:        req.ID,
		AnimalID:  req.AnimalID,
		UserID:    req.UserID,
		Message:   req.Message,
		Status:    req.Status,
		CreatedAt: req.CreatedAt,
	}
}
