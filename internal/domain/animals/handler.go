package animals

import (
	"net/http"
	"strings"
	"time"

	"animal-shelter-api/internal/domain/authz"
	"animal-shelter-api/internal/middleware"
	"animal-shelter-api/internal/platform/httpx"
	"animal-shelter-api/internal/platform/metrics"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, m *metrics.Metrics) {
	r.Route("/animals", func(ar chi.Router) {
		ar.Get("/", listAnimalsHandler(svc))
		ar.Post("/", createAnimalHandler(svc, m))

		ar.Get("/{animalID}", getAnimalHandler(svc))
		ar.Put("/{animalID}", updateAnimalHandler(svc))
		ar.Delete("/{animalID}", deleteAnimalHandler(svc))
		ar.Put("/{animalID}/status", updateAnimalStatusHandler(svc))
	})
}

type createAnimalRequest struct {
	Name        string `json:"name"`
	Species     string `json:"species"`
	Breed       string `json:"breed"`
	Age         int    `json:"age"`
	Description string `json:"description"`
	Status      string `json:"status"`
	Location    string `json:"location"`
	PhotoURL    string `json:"photo_url"`
}

type updateAnimalRequest struct {
	// Punteros: nil = no tocar ese campo.
	Name        *string `json:"name"`
	Species     *string `json:"species"`
	Breed       *string `json:"breed"`
	Age         *int    `json:"age"`
	Description *string `json:"description"`
	Status      *string `json:"status"`
	Location    *string `json:"location"`
	PhotoURL    *string `json:"photo_url"`
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

type animalResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Species     string    `json:"species"`
	Breed       string    `json:"breed"`
	Age         int       `json:"age"`
	Description string    `json:"description"`
	Status      Status    `json:"status"`
	Location    string    `json:"location"`
	PhotoURL    string    `json:"photo_url,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// listAnimalsHandler godoc
// @Summary Listar animales
// @Description Lista animales ordenados del más nuevo al más viejo. Acepta un solo filtro: search (substring literal case-insensitive sobre name/breed/description), species o status. Si se combinan, search tiene prioridad.
// @Tags animals
// @Produce json
// @Param species query string false "Filtrar por especie"
// @Param status query string false "Filtrar por estado"
// @Param search query string false "Búsqueda por texto"
// @Success 200 {array} animalResponse
// @Router /animals [get]
func listAnimalsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()

		var (
			items []Animal
			err   error
		)

		// Una sola dimensión por llamada; search gana si mandan varias.
		switch {
		case strings.TrimSpace(q.Get("search")) != "":
			items, err = svc.Search(r.Context(), q.Get("search"))
		case strings.TrimSpace(q.Get("species")) != "":
			items, err = svc.List(r.Context(), Filter{Species: q.Get("species")})
		case strings.TrimSpace(q.Get("status")) != "":
			items, err = svc.List(r.Context(), Filter{Status: q.Get("status")})
		default:
			items, err = svc.List(r.Context(), Filter{})
		}
		if err != nil {
			httpx.WriteError(w, err)
			return
		}

		out := make([]animalResponse, 0, len(items))
		for _, a := range items {
			out = append(out, toAnimalResponse(a))
		}
		httpx.WriteJSON(w, http.StatusOK, out)
	}
}

// getAnimalHandler godoc
// @Summary Detalle de animal
// @Tags animals
// @Produce json
// @Param animalID path string true "ID del animal"
// @Success 200 {object} animalResponse
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Router /animals/{animalID} [get]
func getAnimalHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := httpx.PathID(r, "animalID")
		if err != nil {
			httpx.WriteError(w, err)
			return
		}

		a, err := svc.GetByID(r.Context(), id)
		if err != nil {
			httpx.WriteError(w, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, toAnimalResponse(a))
	}
}

// createAnimalHandler godoc
// @Summary Crear animal
// @Description Da de alta un animal. El nombre debe ser único entre los animales existentes.
// @Tags animals
// @Accept json
// @Produce json
// @Param payload body createAnimalRequest true "Datos del animal"
// @Success 201 {object} animalResponse
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 401 {object} httpx.ErrorResponse
// @Failure 409 {object} httpx.ErrorResponse
// @Router /animals [post]
func createAnimalHandler(svc *Service, m *metrics.Metrics) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if err := authz.Require(claims, ok, authz.OpAnimalCreate); err != nil {
			httpx.WriteError(w, err)
			return
		}

		var req createAnimalRequest
		if err := httpx.DecodeStrict(r, &req); err != nil {
			httpx.WriteError(w, err)
			return
		}

		a, err := svc.Create(r.Context(), CreateInput{
			Name:        req.Name,
			Species:     req.Species,
			Breed:       req.Breed,
			Age:         req.Age,
			Description: req.Description,
			Status:      req.Status,
			Location:    req.Location,
			PhotoURL:    req.PhotoURL,
		})
		if err != nil {
			httpx.WriteError(w, err)
			return
		}
		m.IncAnimalsCreated()

		httpx.WriteJSON(w, http.StatusCreated, toAnimalResponse(a))
	}
}

// updateAnimalHandler godoc
// @Summary Actualizar animal
// @Description Actualiza campos del animal; los campos ausentes no se tocan. Renombrar a un nombre ya usado por otro animal devuelve 409.
// @Tags animals
// @Accept json
// @Produce json
// @Param animalID path string true "ID del animal"
// @Param payload body updateAnimalRequest true "Campos a actualizar"
// @Success 200 {object} animalResponse
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 401 {object} httpx.ErrorResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Failure 409 {object} httpx.ErrorResponse
// @Router /animals/{animalID} [put]
func updateAnimalHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if err := authz.Require(claims, ok, authz.OpAnimalUpdate); err != nil {
			httpx.WriteError(w, err)
			return
		}

		id, err := httpx.PathID(r, "animalID")
		if err != nil {
			httpx.WriteError(w, err)
			return
		}

		var req updateAnimalRequest
		if err := httpx.DecodeStrict(r, &req); err != nil {
			httpx.WriteError(w, err)
			return
		}

		a, err := svc.Update(r.Context(), id, UpdateInput{
			Name:        req.Name,
			Species:     req.Species,
			Breed:       req.Breed,
			Age:         req.Age,
			Description: req.Description,
			Status:      req.Status,
			Location:    req.Location,
			PhotoURL:    req.PhotoURL,
		})
		if err != nil {
			httpx.WriteError(w, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, toAnimalResponse(a))
	}
}

// deleteAnimalHandler godoc
// @Summary Borrar animal
// @Description Borrado físico, solo admin/vet. No cascadea sobre adopciones, reportes ni tratamientos.
// @Tags animals
// @Produce json
// @Param animalID path string true "ID del animal"
// @Success 200 {object} map[string]any
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 401 {object} httpx.ErrorResponse
// @Failure 403 {object} httpx.ErrorResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Router /animals/{animalID} [delete]
func deleteAnimalHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if err := authz.Require(claims, ok, authz.OpAnimalDelete); err != nil {
			httpx.WriteError(w, err)
			return
		}

		id, err := httpx.PathID(r, "animalID")
		if err != nil {
			httpx.WriteError(w, err)
			return
		}

		if err := svc.Delete(r.Context(), id); err != nil {
			httpx.WriteError(w, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, map[string]any{
			"success": true,
			"message": "animal deleted",
		})
	}
}

// updateAnimalStatusHandler godoc
// @Summary Cambiar estado del animal
// @Description Sobrescribe el estado sin validar transiciones, solo admin/vet.
// @Tags animals
// @Accept json
// @Produce json
// @Param animalID path string true "ID del animal"
// @Param payload body updateStatusRequest true "Nuevo estado"
// @Success 200 {object} animalResponse
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 401 {object} httpx.ErrorResponse
// @Failure 403 {object} httpx.ErrorResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Router /animals/{animalID}/status [put]
func updateAnimalStatusHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if err := authz.Require(claims, ok, authz.OpAnimalSetStatus); err != nil {
			httpx.WriteError(w, err)
			return
		}

		id, err := httpx.PathID(r, "animalID")
		if err != nil {
			httpx.WriteError(w, err)
			return
		}

		var req updateStatusRequest
		if err := httpx.DecodeStrict(r, &req); err != nil {
			httpx.WriteError(w, err)
			return
		}

		a, err := svc.UpdateStatus(r.Context(), id, req.Status)
		if err != nil {
			httpx.WriteError(w, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, toAnimalResponse(a))
	}
}

func toAnimalResponse(a Animal) animalResponse {
	return animalResponse{
		ID:          a.ID,
		Name:        a.Name,
		Species:     a.Species,
		Breed:       a.Breed,
		Age:         a.Age,
		Description: a.Description,
		Status:      a.Status,
		Location:    a.Location,
		PhotoURL:    a.PhotoURL,
		CreatedAt:   a.CreatedAt,
	}
}
