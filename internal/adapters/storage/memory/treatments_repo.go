package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"animal-shelter-api/internal/apperrors"
	"animal-shelter-api/internal/domain/treatments"
)

type TreatmentRepo struct {
	mu   sync.RWMutex
	byID map[string]treatments.TreatmentRecord
}

func NewTreatmentRepo() *TreatmentRepo {
	return &TreatmentRepo{
		byID: make(map[string]treatments.TreatmentRecord),
	}
}

func (r *TreatmentRepo) Create(ctx context.Context, rec treatments.TreatmentRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(rec.ID) == "" {
		return apperrors.New(apperrors.KindBadRequest, "treatment id required")
	}
	if _, exists := r.byID[rec.ID]; exists {
		return apperrors.New(apperrors.KindConflict, "treatment already exists")
	}

	r.byID[rec.ID] = rec
	return nil
}

func (r *TreatmentRepo) ListByAnimal(ctx context.Context, animalID string) ([]treatments.TreatmentRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]treatments.TreatmentRecord, 0)
	for _, rec := range r.byID {
		if rec.AnimalID != animalID {
			continue
		}
		out = append(out, rec)
	}

	// Orden por date desc (la más reciente primero).
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.After(out[j].Date)
		}
		return out[i].ID < out[j].ID
	})

	return out, nil
}

func (r *TreatmentRepo) Snapshot() []treatments.TreatmentRecord {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]treatments.TreatmentRecord, 0, len(r.byID))
	for _, rec := range r.byID {
		out = append(out, rec)
	}
	return out
}

func (r *TreatmentRepo) Restore(items []treatments.TreatmentRecord) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.byID = make(map[string]treatments.TreatmentRecord, len(items))
	for _, rec := range items {
		r.byID[rec.ID] = rec
	}
}
