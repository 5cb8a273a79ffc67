package memory

import (
	"context"
	"strings"
	"sync"

	"animal-shelter-api/internal/apperrors"
	"animal-shelter-api/internal/domain/users"
)

type UserRepo struct {
	mu   sync.RWMutex
	byID map[string]users.User
}

func NewUserRepo() *UserRepo {
	return &UserRepo{
		byID: make(map[string]users.User),
	}
}

func (r *UserRepo) Create(ctx context.Context, u users.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(u.ID) == "" {
		return apperrors.New(apperrors.KindBadRequest, "user id required")
	}
	if _, exists := r.byID[u.ID]; exists {
		return apperrors.New(apperrors.KindConflict, "user already exists")
	}
	for _, other := range r.byID {
		if other.Username == u.Username {
			return apperrors.New(apperrors.KindConflict, "username already taken")
		}
		if other.Email == u.Email {
			return apperrors.New(apperrors.KindConflict, "email already registered")
		}
	}

	r.byID[u.ID] = u
	return nil
}

func (r *UserRepo) GetByID(ctx context.Context, id string) (users.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.byID[id]
	if !ok {
		return users.User{}, apperrors.New(apperrors.KindNotFound, "user not found")
	}
	return u, nil
}

func (r *UserRepo) GetByUsername(ctx context.Context, username string) (users.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.byID {
		if u.Username == username {
			return u, nil
		}
	}
	return users.User{}, apperrors.New(apperrors.KindNotFound, "user not found")
}

func (r *UserRepo) GetByEmail(ctx context.Context, email string) (users.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.byID {
		if u.Email == email {
			return u, nil
		}
	}
	return users.User{}, apperrors.New(apperrors.KindNotFound, "user not found")
}

func (r *UserRepo) Snapshot() []users.User {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]users.User, 0, len(r.byID))
	for _, u := range r.byID {
		out = append(out, u)
	}
	return out
}

func (r *UserRepo) Restore(items []users.User) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.byID = make(map[string]users.User, len(items))
	for _, u := range items {
		r.byID[u.ID] = u
	}
}
