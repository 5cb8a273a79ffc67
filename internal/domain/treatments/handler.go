package treatments

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
	r.Post("/treatments", createTreatmentHandler(svc, m))

	// lectura pública, anidada bajo el animal
	r.Get("/animals/{animalID}/treatments", listAnimalTreatmentsHandler(svc))
}

// createTreatmentRequest no tiene campo date a propósito: la fecha la
// pone el servidor y un valor del cliente se descarta en el decode
// estricto como campo desconocido.
type createTreatmentRequest struct {
	AnimalID  string `json:"animal_id"`
	Diagnosis string `json:"diagnosis"`
	Treatment string `json:"treatment"`
}

type treatmentResponse struct {
	ID        string    `json:"id"`
	AnimalID  string    `json:"animal_id"`
	VetID     string    `json:"vet_id"`
	Diagnosis string    `json:"diagnosis"`
	Treatment string    `json:"treatment"`
	Date      time.Time `json:"date"`
}

// createTreatmentHandler godoc
// @Summary Registrar tratamiento
// @Description Registra una atención veterinaria (solo admin/vet). La fecha la estampa el servidor.
// @Tags treatments
// @Accept json
// @Produce json
// @Param payload body createTreatmentRequest true "Datos del tratamiento"
// @Success 201 {object} treatmentResponse
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 401 {object} httpx.ErrorResponse
// @Failure 403 {object} httpx.ErrorResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Router /treatments [post]
func createTreatmentHandler(svc *Service, m *metrics.Metrics) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if err := authz.Require(claims, ok, authz.OpTreatmentCreate); err != nil {
			httpx.WriteError(w, err)
			return
		}

		var req createTreatmentRequest
		if err := httpx.DecodeStrict(r, &req); err != nil {
			httpx.WriteError(w, err)
			return
		}

		rec, err := svc.Create(r.Context(), claims.UserID, CreateInput{
			AnimalID:  req.AnimalID,
			Diagnosis: req.Diagnosis,
			Treatment: req.Treatment,
		})
		if err != nil {
			httpx.WriteError(w, err)
			return
		}
		m.IncTreatmentsRecorded()

		httpx.WriteJSON(w, http.StatusCreated, toTreatmentResponse(rec))
	}
}

// listAnimalTreatmentsHandler godoc
// @Summary Tratamientos de un animal
// @Tags treatments
// @Produce json
// @Param animalID path string true "ID del animal"
// @Success 200 {array} treatmentResponse
// @Failure 400 {object} httpx.ErrorResponse
// @Router /animals/{animalID}/treatments [get]
func listAnimalTreatmentsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		animalID, err := httpx.PathID(r, "animalID")
		if err != nil {
			httpx.WriteError(w, err)
			return
		}

		items, err := svc.ListByAnimal(r.Context(), animalID)
		if err != nil {
			httpx.WriteError(w, err)
			return
		}

		out := make([]treatmentResponse, 0, len(items))
		for _, rec := range items {
			out = append(out, toTreatmentResponse(rec))
		}
		httpx.WriteJSON(w, http.StatusOK, out)
	}
}

func toTreatmentResponse(rec TreatmentRecord) treatmentResponse {
	return treatmentResponse{
		ID:        rec.ID,
		AnimalID:  rec.AnimalID,
		VetID:     rec.VetID,
		Diagnosis: rec.Diagnosis,
		Treatment: rec.Treatment,
		Date:      rec.Date,
	}
}
