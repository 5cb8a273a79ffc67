package postgres

import (
	"context"
	"database/sql"

	"animal-shelter-api/internal/apperrors"
	"animal-shelter-api/internal/domain/reports"
)

type ReportsRepo struct {
	db *sql.DB
}

func NewReportsRepo(db *sql.DB) *ReportsRepo {
	return &ReportsRepo{db: db}
}

func (r *ReportsRepo) Create(ctx context.Context, rep reports.RescueReport) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO rescue_reports (
			id, animal_id, reporter_id, location, description, created_at
		) VALUES ($1,$2,$3,$4,$5,$6)
	`,
		rep.ID,
		rep.AnimalID,
		rep.ReporterID,
		rep.Location,
		rep.Description,
		rep.CreatedAt,
	)
	if err != nil {
		return apperrors.Wrap(apperrors.KindInternal, "insert rescue report", err)
	}
	return nil
}

func (r *ReportsRepo) ListByAnimal(ctx context.Context, animalID string) ([]reports.RescueReport, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, animal_id, reporter_id, location, description, created_at
		FROM rescue_reports
		WHERE animal_id = $1
		ORDER BY created_at DESC, id
	`, animalID)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.KindInternal, "query rescue reports", err)
	}
	defer rows.Close()

	out := make([]reports.RescueReport, 0)
	for rows.Next() {
		var rep reports.RescueReport
		if err := rows.Scan(
			&rep.ID,
			&rep.AnimalID,
			&rep.ReporterID,
			&rep.Location,
			&rep.Description,
			&rep.CreatedAt,
		); err != nil {
			return nil, apperrors.Wrap(apperrors.KindInternal, "scan rescue report", err)
		}
		out = append(out, rep)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(apperrors.KindInternal, "iterate rescue reports", err)
	}
	return out, nil
}
