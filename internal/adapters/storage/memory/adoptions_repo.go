package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"animal-shelter-api/internal/apperrors"
	"animal-shelter-api/internal/domain/adoptions"
)

type AdoptionRepo struct {
	mu   sync.RWMutex
	byID map[string]adoptions.AdoptionRequest
}

func NewAdoptionRepo() *AdoptionRepo {
	return &AdoptionRepo{
		byID: make(map[string]adoptions.AdoptionRequest),
	}
}

func (r *AdoptionRepo) Create(ctx context.Context, req adoptions.AdoptionRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(req.ID) == "" {
		return apperrors.New(apperrors.KindBadRequest, "request id required")
	}
	if _, exists := r.byID[req.ID]; exists {
		return apperrors.New(apperrors.KindConflict, "request already exists")
	}

	r.byID[req.ID] = req
	return nil
}

func (r *AdoptionRepo) GetByID(ctx context.Context, id string) (adoptions.AdoptionRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	req, ok := r.byID[id]
	if !ok {
		return adoptions.AdoptionRequest{}, apperrors.New(apperrors.KindNotFound, "adoption request not found")
	}
	return req, nil
}

func (r *AdoptionRepo) ListByUser(ctx context.Context, userID string) ([]adoptions.AdoptionRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]adoptions.AdoptionRequest, 0)
	for _, req := range r.byID {
		if req.UserID != userID {
			continue
		}
		out = append(out, req)
	}

	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})

	return out, nil
}

func (r *AdoptionRepo) Update(ctx context.Context, req adoptions.AdoptionRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[req.ID]; !exists {
		return apperrors.New(apperrors.KindNotFound, "adoption request not found")
	}
	r.byID[req.ID] = req
	return nil
}

func (r *AdoptionRepo) Snapshot() []adoptions.AdoptionRequest {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]adoptions.AdoptionRequest, 0, len(r.byID))
	for _, req := range r.byID {
		out = append(out, req)
	}
	return out
}

func (r *AdoptionRepo) Restore(items []adoptions.AdoptionRequest) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.byID = make(map[string]adoptions.AdoptionRequest, len(items))
	for _, req := range items {
		r.byID[req.ID] = req
	}
}
