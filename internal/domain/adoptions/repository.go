package adoptions

import "context"

// Repository persiste solicitudes de adopción.
// ListByUser ordena por created_at descendente.
type Repository interface {
	Create(ctx context.Context, req AdoptionRequest) error
	GetByID(ctx context.Context, id string) (AdoptionRequest, error)
	ListByUser(ctx context.Context, userID string) ([]AdoptionRequest, error)
	Update(ctx context.Context, req AdoptionRequest) error
}
