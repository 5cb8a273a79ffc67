package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"animal-shelter-api/internal/apperrors"
	"animal-shelter-api/internal/domain/reports"
)

type ReportRepo struct {
	mu   sync.RWMutex
	byID map[string]reports.RescueReport
}

func NewReportRepo() *ReportRepo {
	return &ReportRepo{
		byID: make(map[string]reports.RescueReport),
	}
}

func (r *ReportRepo) Create(ctx context.Context, rep reports.RescueReport) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(rep.ID) == "" {
		return apperrors.New(apperrors.KindBadRequest, "report id required")
	}
	if _, exists := r.byID[rep.ID]; exists {
		return apperrors.New(apperrors.KindConflict, "report already exists")
	}

	r.byID[rep.ID] = rep
	return nil
}

func (r *ReportRepo) ListByAnimal(ctx context.Context, animalID string) ([]reports.RescueReport, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]reports.RescueReport, 0)
	for _, rep := range r.byID {
		if rep.AnimalID != animalID {
			continue
		}
		out = append(out, rep)
	}

	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})

	return out, nil
}

func (r *ReportRepo) Snapshot() []reports.RescueReport {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]reports.RescueReport, 0, len(r.byID))
	for _, rep := range r.byID {
		out = append(out, rep)
	}
	return out
}

func (r *ReportRepo) Restore(items []reports.RescueReport) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.byID = make(map[string]reports.RescueReport, len(items))
	for _, rep := range items {
		r.byID[rep.ID] = rep
	}
}
