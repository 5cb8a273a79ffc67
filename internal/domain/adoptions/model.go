package adoptions

import "time"

// Status solo avanza: pending -> approved | rejected.
// approved y rejected son terminales.
// @Enum pending, approved, rejected
type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// IsTerminal indica si ya no se admite otra transición.
func (s Status) IsTerminal() bool {
	return s == StatusApproved || s == StatusRejected
}

// AdoptionRequest es la solicitud de un usuario para adoptar un animal.
// Fuera del status, el registro es inmutable después de creado.
// AnimalID puede quedar colgando si el animal se borra; no se limpia.
type AdoptionRequest struct {
	ID       string
	AnimalID string
	UserID   string
	Message  string
	Status   Status

	CreatedAt time.Time
}
