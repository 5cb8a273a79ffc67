package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics agrupa los contadores Prometheus de la aplicación.
// Los métodos toleran receiver nil para que los tests puedan pasar nil
// sin registrar nada en el registry global.
type Metrics struct {
	UsersRegistered    prometheus.Counter
	AnimalsCreated     prometheus.Counter
	AdoptionsApproved  prometheus.Counter
	TreatmentsRecorded prometheus.Counter
}

func New() *Metrics {
	return &Metrics{
		UsersRegistered: promauto.NewCounter(prometheus.CounterOpts{
			Name: "shelter_users_registered_total",
			Help: "Total de usuarios registrados.",
		}),
		AnimalsCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "shelter_animals_created_total",
			Help: "Total de animales dados de alta.",
		}),
		AdoptionsApproved: promauto.NewCounter(prometheus.CounterOpts{
			Name: "shelter_adoptions_approved_total",
			Help: "Total de solicitudes de adopción aprobadas.",
		}),
		TreatmentsRecorded: promauto.NewCounter(prometheus.CounterOpts{
			Name: "shelter_treatments_recorded_total",
			Help: "Total de tratamientos registrados.",
		}),
	}
}

func (m *Metrics) IncUsersRegistered() {
	if m == nil {
		return
	}
	m.UsersRegistered.Inc()
}

func (m *Metrics) IncAnimalsCreated() {
	if m == nil {
		return
	}
	m.AnimalsCreated.Inc()
}

func (m *Metrics) IncAdoptionsApproved() {
	if m == nil {
		return
	}
	m.AdoptionsApproved.Inc()
}

func (m *Metrics) IncTreatmentsRecorded() {
	if m == nil {
		return
	}
	m.TreatmentsRecorded.Inc()
}
