package animals

import (
	"context"
	"strings"
	"time"

	"animal-shelter-api/internal/apperrors"

	"github.com/google/uuid"
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

type CreateInput struct {
	Name        string
	Species     string
	Breed       string
	Age         int
	Description string
	Status      string
	Location    string
	PhotoURL    string
}

func (s *Service) Create(ctx context.Context, in CreateInput) (Animal, error) {
	name := strings.TrimSpace(in.Name)
	species := strings.TrimSpace(in.Species)
	breed := strings.TrimSpace(in.Breed)
	description := strings.TrimSpace(in.Description)
	status := strings.TrimSpace(in.Status)
	location := strings.TrimSpace(in.Location)

	if name == "" || species == "" || breed == "" || description == "" || status == "" || location == "" {
		return Animal{}, apperrors.New(apperrors.KindBadRequest, "name, species, breed, description, status and location are required")
	}
	if in.Age < 0 {
		return Animal{}, apperrors.New(apperrors.KindBadRequest, "age must be >= 0")
	}

	a := Animal{
		ID:          uuid.NewString(),
		Name:        name,
		Species:     species,
		Breed:       breed,
		Age:         in.Age,
		Description: description,
		Status:      Status(status),
		Location:    location,
		PhotoURL:    strings.TrimSpace(in.PhotoURL),
		CreatedAt:   s.now(),
	}

	// El repo devuelve Conflict si ya existe un animal con ese nombre.
	if err := s.repo.Create(ctx, a); err != nil {
		return Animal{}, err
	}
	return a, nil
}

// UpdateInput usa punteros para distinguir "no tocar" de "setear vacío",
// mismo idioma que el PATCH de perfiles del resto del sistema.
type UpdateInput struct {
	Name        *string
	Species     *string
	Breed       *string
	Age         *int
	Description *string
	Status      *string
	Location    *string
	PhotoURL    *string
}

func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (Animal, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Animal{}, apperrors.New(apperrors.KindBadRequest, "animal id required")
	}

	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Animal{}, err
	}

	if in.Name != nil {
		v := strings.TrimSpace(*in.Name)
		if v == "" {
			return Animal{}, apperrors.New(apperrors.KindBadRequest, "name cannot be empty")
		}
		current.Name = v
	}
	if in.Species != nil {
		v := strings.TrimSpace(*in.Species)
		if v == "" {
			return Animal{}, apperrors.New(apperrors.KindBadRequest, "species cannot be empty")
		}
		current.Species = v
	}
	if in.Breed != nil {
		v := strings.TrimSpace(*in.Breed)
		if v == "" {
			return Animal{}, apperrors.New(apperrors.KindBadRequest, "breed cannot be empty")
		}
		current.Breed = v
	}
	if in.Age != nil {
		if *in.Age < 0 {
			return Animal{}, apperrors.New(apperrors.KindBadRequest, "age must be >= 0")
		}
		current.Age = *in.Age
	}
	if in.Description != nil {
		current.Description = strings.TrimSpace(*in.Description)
	}
	if in.Status != nil {
		v := strings.TrimSpace(*in.Status)
		if v == "" {
			return Animal{}, apperrors.New(apperrors.KindBadRequest, "status cannot be empty")
		}
		current.Status = Status(v)
	}
	if in.Location != nil {
		current.Location = strings.TrimSpace(*in.Location)
	}
	if in.PhotoURL != nil {
		current.PhotoURL = strings.TrimSpace(*in.PhotoURL)
	}

	// El repo re-chequea unicidad de nombre excluyendo este id; renombrar
	// al propio nombre actual pasa sin conflicto.
	if err := s.repo.Update(ctx, current); err != nil {
		return Animal{}, err
	}
	return current, nil
}

// UpdateStatus sobreescribe el estado sin validar grafo de transiciones:
// cualquier estado puede pasar a cualquier otro. Permisivo a propósito.
func (s *Service) UpdateStatus(ctx context.Context, id, status string) (Animal, error) {
	id = strings.TrimSpace(id)
	status = strings.TrimSpace(status)
	if id == "" {
		return Animal{}, apperrors.New(apperrors.KindBadRequest, "animal id required")
	}
	if status == "" {
		return Animal{}, apperrors.New(apperrors.KindBadRequest, "status required")
	}

	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Animal{}, err
	}
	current.Status = Status(status)

	if err := s.repo.Update(ctx, current); err != nil {
		return Animal{}, err
	}
	return current, nil
}

// Delete borra de forma permanente. No cascadea sobre adopciones,
// reportes ni tratamientos: esas referencias quedan colgando a propósito
// (registros de auditoría que sobreviven al animal).
func (s *Service) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return apperrors.New(apperrors.KindBadRequest, "animal id required")
	}
	return s.repo.Delete(ctx, id)
}

func (s *Service) GetByID(ctx context.Context, id string) (Animal, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Animal{}, apperrors.New(apperrors.KindBadRequest, "animal id required")
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context, f Filter) ([]Animal, error) {
	return s.repo.List(ctx, f)
}

func (s *Service) Search(ctx context.Context, query string) ([]Animal, error) {
	return s.repo.Search(ctx, query)
}
