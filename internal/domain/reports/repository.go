package reports

import "context"

// Repository persiste reportes de rescate. Sin update ni delete: son
// registros de auditoría. ListByAnimal ordena por created_at descendente.
type Repository interface {
	Create(ctx context.Context, rep RescueReport) error
	ListByAnimal(ctx context.Context, animalID string) ([]RescueReport, error)
}
