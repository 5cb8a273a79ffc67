package reports

import "time"

// RescueReport es un aviso de rescate sobre un animal. Append-only:
// después de creado no muta nunca.
type RescueReport struct {
	ID          string
	AnimalID    string
	ReporterID  string
	Location    string
	Description string

	CreatedAt time.Time
}
