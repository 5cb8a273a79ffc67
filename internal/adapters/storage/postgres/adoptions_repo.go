package postgres

import (
	"context"
	"database/sql"

	"animal-shelter-api/internal/apperrors"
	"animal-shelter-api/internal/domain/adoptions"
)

type AdoptionsRepo struct {
	db *sql.DB
}

func NewAdoptionsRepo(db *sql.DB) *AdoptionsRepo {
	return &AdoptionsRepo{db: db}
}

func (r *AdoptionsRepo) Create(ctx context.Context, req adoptions.AdoptionRequest) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO adoption_requests (
			id, animal_id, user_id, message, status, created_at
		) VALUES ($1,$2,$3,$4,$5,$6)
	`,
		req.ID,
		req.AnimalID,
		req.UserID,
		req.Message,
		string(req.Status),
		req.CreatedAt,
	)
	if err != nil {
		return apperrors.Wrap(apperrors.KindInternal, "insert adoption request", err)
	}
	return nil
}

func (r *AdoptionsRepo) GetByID(ctx context.Context, id string) (adoptions.AdoptionRequest, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, animal_id, user_id, message, status, created_at
		FROM adoption_requests
		WHERE id = $1
	`, id)

	var req adoptions.AdoptionRequest
	var status string
	err := row.Scan(
		&req.ID,
		&req.AnimalID,
		&req.UserID,
		&req.Message,
		&status,
		&req.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return adoptions.AdoptionRequest{}, apperrors.New(apperrors.KindNotFound, "adoption request not found")
	}
	if err != nil {
		return adoptions.AdoptionRequest{}, apperrors.Wrap(apperrors.KindInternal, "get adoption request", err)
	}
	req.Status = adoptions.Status(status)
	return req, nil
}

func (r *AdoptionsRepo) ListByUser(ctx context.Context, userID string) ([]adoptions.AdoptionRequest, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, animal_id, user_id, message, status, created_at
		FROM adoption_requests
		WHERE user_id = $1
		ORDER BY created_at DESC, id
	`, userID)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.KindInternal, "query adoption requests", err)
	}
	defer rows.Close()

	out := make([]adoptions.AdoptionRequest, 0)
	for rows.Next() {
		var req adoptions.AdoptionRequest
		var status string
		if err := rows.Scan(
			&req.ID,
			&req.AnimalID,
			&req.UserID,
			&req.Message,
			&status,
			&req.CreatedAt,
		); err != nil {
			return nil, apperrors.Wrap(apperrors.KindInternal, "scan adoption request", err)
		}
		req.Status = adoptions.Status(status)
		out = append(out, req)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(apperrors.KindInternal, "iterate adoption requests", err)
	}
	return out, nil
}

func (r *AdoptionsRepo) Update(ctx context.Context, req adoptions.AdoptionRequest) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE adoption_requests
		SET status = $2
		WHERE id = $1
	`, req.ID, string(req.Status))
	if err != nil {
		return apperrors.Wrap(apperrors.KindInternal, "update adoption request", err)
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return apperrors.New(apperrors.KindNotFound, "adoption request not found")
	}
	return nil
}
