package treatments

import "time"

// TreatmentRecord es la atención veterinaria registrada sobre un animal.
// Append-only. Date la estampa SIEMPRE el servidor al crear; cualquier
// valor que mande el cliente se ignora.
type TreatmentRecord struct {
	ID        string
	AnimalID  string
	VetID     string
	Diagnosis string
	Treatment string

	Date time.Time
}
