package users

import "context"

// Repository persiste usuarios. Username y email son únicos globalmente;
// la implementación es responsable de la atomicidad del check
// (mutex en memoria, unique index en postgres).
type Repository interface {
	Create(ctx context.Context, u User) error
	GetByID(ctx context.Context, id string) (User, error)
	GetByUsername(ctx context.Context, username string) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
}
