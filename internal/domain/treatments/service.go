package treatments

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
	AnimalID  string
	Diagnosis string
	Treatment string
}

// Create registra la atención. Date sale de s.now() incondicionalmente:
// el input ni siquiera tiene campo para mandarla. El animal tiene que
// existir al crear; la referencia no se vuelve a validar después.
func (s *Service) Create(ctx context.Context, vetID string, in CreateInput) (TreatmentRecord, error) {
	vetID = strings.TrimSpace(vetID)
	animalID := strings.TrimSpace(in.AnimalID)
	diagnosis := strings.TrimSpace(in.Diagnosis)
	treatment := strings.TrimSpace(in.Treatment)

	if vetID == "" {
		return TreatmentRecord{}, apperrors.New(apperrors.KindBadRequest, "vet id required")
	}
	if animalID == "" || diagnosis == "" || treatment == "" {
		return TreatmentRecord{}, apperrors.New(apperrors.KindBadRequest, "animal_id, diagnosis and treatment are required")
	}

	if _, err := s.animalsSvc.GetByID(ctx, animalID); err != nil {
		return TreatmentRecord{}, err
	}

	rec := TreatmentRecord{
		ID:        uuid.NewString(),
		AnimalID:  animalID,
		VetID:     vetID,
		Diagnosis: diagnosis,
		Treatment: treatment,
		Date:      s.now(),
	}

	if err := s.repo.Create(ctx, rec); err != nil {
		return TreatmentRecord{}, err
	}
	return rec, nil
}

func (s *Service) ListByAnimal(ctx context.Context, animalID string) ([]TreatmentRecord, error) {
	animalID = strings.TrimSpace(animalID)
	if animalID == "" {
		return nil, apperrors.New(apperrors.KindBadRequest, "animal id required")
	}
	return s.repo.ListByAnimal(ctx, animalID)
}
