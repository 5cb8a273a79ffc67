package postgres

import (
	"context"
	"database/sql"
	"strings"

	"animal-shelter-api/internal/apperrors"
	"animal-shelter-api/internal/domain/users"
)

type UsersRepo struct {
	db *sql.DB
}

func NewUsersRepo(db *sql.DB) *UsersRepo {
	return &UsersRepo{db: db}
}

func (r *UsersRepo) Create(ctx context.Context, u users.User) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO users (
			id, name, username, email, password_hash, role, created_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7)
	`,
		u.ID,
		u.Name,
		u.Username,
		u.Email,
		u.PasswordHash,
		string(u.Role),
		u.CreatedAt,
	)
	if isUniqueViolation(err) {
		// El service ya pre-chequea con mensaje específico; esto cubre
		// la carrera entre el check y el insert.
		return apperrors.New(apperrors.KindConflict, "username or email already in use")
	}
	if err != nil {
		return apperrors.Wrap(apperrors.KindInternal, "insert user", err)
	}
	return nil
}

func (r *UsersRepo) GetByID(ctx context.Context, id string) (users.User, error) {
	return r.getBy(ctx, "id", id)
}

func (r *UsersRepo) GetByUsername(ctx context.Context, username string) (users.User, error) {
	return r.getBy(ctx, "username", username)
}

func (r *UsersRepo) GetByEmail(ctx context.Context, email string) (users.User, error) {
	return r.getBy(ctx, "email", email)
}

func (r *UsersRepo) getBy(ctx context.Context, column, value string) (users.User, error) {
	if strings.TrimSpace(value) == "" {
		return users.User{}, apperrors.New(apperrors.KindNotFound, "user not found")
	}

	// column viene de los tres wrappers de arriba, nunca de input.
	row := r.db.QueryRowContext(ctx, `
		SELECT id, name, username, email, password_hash, role, created_at
		FROM users
		WHERE `+column+` = $1
	`, value)

	var u users.User
	var role string
	err := row.Scan(
		&u.ID,
		&u.Name,
		&u.Username,
		&u.Email,
		&u.PasswordHash,
		&role,
		&u.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return users.User{}, apperrors.New(apperrors.KindNotFound, "user not found")
	}
	if err != nil {
		return users.User{}, apperrors.Wrap(apperrors.KindInternal, "get user", err)
	}
	u.Role = users.Role(role)
	return u, nil
}
