package reports

import (
	"net/http"
	"time"

	"animal-shelter-api/internal/domain/authz"
	"animal-shelter-api/internal/middleware"
	"animal-shelter-api/internal/platform/httpx"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Post("/reports", createReportHandler(svc))

	// lectura pública, anidada bajo el animal
	r.Get("/animals/{animalID}/reports", listAnimalReportsHandler(svc))
}

type createReportRequest struct {
	AnimalID    string `json:"animal_id"`
	Location    string `json:"location"`
	Description string `json:"description"`
}

type reportResponse struct {
	ID          string    `json:"id"`
	AnimalID    string    `json:"animal_id"`
	ReporterID  string    `json:"reporter_id"`
	Location    string    `json:"location"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

// createReportHandler godoc
// @Summary Crear reporte de rescate
// @Description Registra un reporte de rescate a nombre del usuario autenticado.
// @Tags reports
// @Accept json
// @Produce json
// @Param payload body createReportRequest true "Datos del reporte"
// @Success 201 {object} reportResponse
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 401 {object} httpx.ErrorResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Router /reports [post]
func createReportHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if err := authz.Require(claims, ok, authz.OpReportCreate); err != nil {
			httpx.WriteError(w, err)
			return
		}

		var req createReportRequest
		if err := httpx.DecodeStrict(r, &req); err != nil {
			httpx.WriteError(w, err)
			return
		}

		created, err := svc.Create(r.Context(), claims.UserID, CreateInput{
			AnimalID:    req.AnimalID,
			Location:    req.Location,
			Description: req.Description,
		})
		if err != nil {
			httpx.WriteError(w, err)
			return
		}

		httpx.WriteJSON(w, http.StatusCreated, toReportResponse(created))
	}
}

// listAnimalReportsHandler godoc
// @Summary Reportes de rescate de un animal
// @Tags reports
// @Produce json
// @Param animalID path string true "ID del animal"
// @Success 200 {array} reportResponse
// @Failure 400 {object} httpx.ErrorResponse
// @Router /animals/{animalID}/reports [get]
func listAnimalReportsHandler(svc *Service) http.HandlerFunc {
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

		out := make([]reportResponse, 0, len(items))
		for _, rep := range items {
			out = append(out, toReportResponse(rep))
		}
		httpx.WriteJSON(w, http.StatusOK, out)
	}
}

func toReportResponse(rep RescueReport) reportResponse {
	return reportResponse{
		ID:          rep.ID,
		AnimalID:    rep.AnimalID,
		ReporterID:  rep.ReporterID,
		Location:    rep.Location,
		Description: rep.Description,
		CreatedAt:   rep.CreatedAt,
	}
}
