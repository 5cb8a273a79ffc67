package treatments

import "context"

// Repository persiste registros de tratamiento. Append-only, sin update
// ni delete. ListByAnimal ordena por date descendente.
type Repository interface {
	Create(ctx context.Context, rec TreatmentRecord) error
	ListByAnimal(ctx context.Context, animalID string) ([]TreatmentRecord, error)
}
