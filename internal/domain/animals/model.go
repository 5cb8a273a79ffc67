package animals

import "time"

// Status es el estado de adopción/atención del animal. El set queda
// abierto a propósito: UpdateStatus acepta cualquier valor no vacío y
// estas constantes son solo las conocidas por la UI.
// @Enum available, pending, adopted, treatment
type Status string

const (
	StatusAvailable Status = "available"
	StatusPending   Status = "pending"
	StatusAdopted   Status = "adopted"
	StatusTreatment Status = "treatment"
)

// Animal representa un animal del refugio.
// Name es único entre los animales existentes (match exacto,
// case-sensitive, igual que la fuente original).
type Animal struct {
	ID          string
	Name        string
	Species     string
	Breed       string
	Age         int
	Description string
	Status      Status
	Location    string
	PhotoURL    string

	CreatedAt time.Time
}
