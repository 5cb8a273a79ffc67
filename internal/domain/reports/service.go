package reports

import (
	"context"
	"strings"
	"time"

	"animal-shelter-api/internal/apperrors"
	"animal-shelter-api/internal/domain/animals"

	"github.com/google/uuid"
)

// AnimalDirectory valida existencia del animal al momento de crear.
type AnimalDirectory interface {
	GetByID(ctx context.Context, id string) (animals.Animal, error)
}

type Service struct {
	repo       Repository
	animalsSvc AnimalDirectory
	now        func() time.Time
}

func NewService(repo Repository, animalsSvc AnimalDirectory) *Service {
	return &Service{
		repo:       repo,
		animalsSvc: animalsSvc,
		now:        time.Now,
	}
}

type CreateInput struct {
	AnimalID    string
	Location    string
	Description string
}

// Create registra el reporte a nombre del usuario autenticado. La
// referencia al animal se valida solo acá; si el animal se borra después,
// el reporte queda con la referencia colgando.
func (s *Service) Create(ctx context.Context, reporterID string, in CreateInput) (RescueReport, error) {
	reporterID = strings.TrimSpace(reporterID)
	animalID := strings.TrimSpace(in.AnimalID)
	location := strings.TrimSpace(in.Location)
	description := strings.TrimSpace(in.Description)

	if reporterID == "" {
		return RescueReport{}, apperrors.New(apperrors.KindBadRequest, "reporter id required")
	}
	if animalID == "" || location == "" || description == "" {
		return RescueReport{}, apperrors.New(apperrors.KindBadRequest, "animal_id, location and description are required")
	}

	if _, err := s.animalsSvc.GetByID(ctx, animalID); err != nil {
		return RescueReport{}, err
	}

	rep := RescueReport{
		ID:          uuid.NewString(),
		AnimalID:    animalID,
		ReporterID:  reporterID,
		Location:    location,
		Description: description,
		CreatedAt:   s.now(),
	}

	if err := s.repo.Create(ctx, rep); err != nil {
		return RescueReport{}, err
	}
	return rep, nil
}

func (s *Service) ListByAnimal(ctx context.Context, animalID string) ([]RescueReport, error) {
	animalID = strings.TrimSpace(animalID)
	if animalID == "" {
		return nil, apperrors.New(apperrors.KindBadRequest, "animal id required")
	}
	return s.repo.ListByAnimal(ctx, animalID)
}
