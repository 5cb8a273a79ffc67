package adoptions

import (
	"context"
	"strings"
	"time"

	"animal-shelter-api/internal/apperrors"
	"animal-shelter-api/internal/domain/animals"

	"github.com/google/uuid"
)

// AnimalService es lo que adoptions necesita del módulo animals:
// existencia al crear y el side effect de estado al aprobar.
type AnimalService interface {
	GetByID(ctx context.Context, id string) (animals.Animal, error)
	UpdateStatus(ctx context.Context, id, status string) (animals.Animal, error)
}

type Service struct {
	repo       Repository
	animalsSvc AnimalService
	now        func() time.Time
}

func NewService(repo Repository, animalsSvc AnimalService) *Service {
	return &Service{
		repo:       repo,
		animalsSvc: animalsSvc,
		now:        time.Now,
	}
}

type CreateInput struct {
	AnimalID string
	Message  string
}

// Create registra la solicitud a nombre del usuario autenticado.
// El animal tiene que existir al momento de crear; después la referencia
// no se vuelve a validar (borrar el animal la deja colgando).
func (s *Service) Create(ctx context.Context, userID string, in CreateInput) (AdoptionRequest, error) {
	userID = strings.TrimSpace(userID)
	animalID := strings.TrimSpace(in.AnimalID)
	message := strings.TrimSpace(in.Message)

	if userID == "" {
		return AdoptionRequest{}, apperrors.New(apperrors.KindBadRequest, "user id required")
	}
	if animalID == "" || message == "" {
		return AdoptionRequest{}, apperrors.New(apperrors.KindBadRequest, "animal_id and message are required")
	}

	if _, err := s.animalsSvc.GetByID(ctx, animalID); err != nil {
		return AdoptionRequest{}, err
	}

	req := AdoptionRequest{
		ID:        uuid.NewString(),
		AnimalID:  animalID,
		UserID:    userID,
		Message:   message,
		Status:    StatusPending,
		CreatedAt: s.now(),
	}

	if err := s.repo.Create(ctx, req); err != nil {
		return AdoptionRequest{}, err
	}
	return req, nil
}

func (s *Service) ListByUser(ctx context.Context, userID string) ([]AdoptionRequest, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, apperrors.New(apperrors.KindBadRequest, "user id required")
	}
	return s.repo.ListByUser(ctx, userID)
}

// UpdateStatus resuelve la solicitud. Aprobar también pasa el animal a
// adopted como una sola unidad lógica, pero NO transaccional: si el
// animal ya no existe, el cambio de la solicitud queda igual (política de
// fallo parcial documentada, no se hace rollback). Repetir el estado
// terminal ya seteado es idempotente; cualquier otra transición desde un
// terminal es Conflict.
// El bool dice si hubo transición real: el no-op idempotente devuelve
// false para que el caller no cuente dos veces la misma resolución.
func (s *Service) UpdateStatus(ctx context.Context, id, newStatus string) (AdoptionRequest, bool, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return AdoptionRequest{}, false, apperrors.New(apperrors.KindBadRequest, "request id required")
	}

	status := Status(strings.TrimSpace(newStatus))
	if status != StatusApproved && status != StatusRejected {
		return AdoptionRequest{}, false, apperrors.New(apperrors.KindBadRequest, "status must be approved or rejected")
	}

	req, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return AdoptionRequest{}, false, err
	}

	if req.Status == status {
		// re-confirmar el mismo estado terminal: no-op
		return req, false, nil
	}
	if req.Status.IsTerminal() {
		return AdoptionRequest{}, false, apperrors.New(apperrors.KindConflict, "adoption request already resolved")
	}

	req.Status = status
	if err := s.repo.Update(ctx, req); err != nil {
		return AdoptionRequest{}, false, err
	}

	if status == StatusApproved {
		if _, err := s.animalsSvc.UpdateStatus(ctx, req.AnimalID, string(animals.StatusAdopted)); err != nil {
			// animal borrado entre medio: la aprobación ya comiteó y vale
			if !apperrors.IsKind(err, apperrors.KindNotFound) {
				return AdoptionRequest{}, false, err
			}
		}
	}

	return req, true, nil
}
