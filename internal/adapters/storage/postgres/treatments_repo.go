package postgres

import (
	"context"
	"database/sql"

	"animal-shelter-api/internal/apperrors"
	"animal-shelter-api/internal/domain/treatments"
)

type TreatmentsRepo struct {
	db *sql.DB
}

func NewTreatmentsRepo(db *sql.DB) *TreatmentsRepo {
	return &TreatmentsRepo{db: db}
}

func (r *TreatmentsRepo) Create(ctx context.Context, rec treatments.TreatmentRecord) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO treatment_records (
			id, animal_id, vet_id, diagnosis, treatment, date
		) VALUES ($1,$2,$3,$4,$5,$6)
	`,
		rec.ID,
		rec.AnimalID,
		rec.VetID,
		rec.Diagnosis,
		rec.Treatment,
		rec.Date,
	)
	if err != nil {
		return apperrors.Wrap(apperrors.KindInternal, "insert treatment record", err)
	}
	return nil
}

func (r *TreatmentsRepo) ListByAnimal(ctx context.Context, animalID string) ([]treatments.TreatmentRecord, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, animal_id, vet_id, diagnosis, treatment, date
		FROM treatment_records
		WHERE animal_id = $1
		ORDER BY date DESC, id
	`, animalID)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.KindInternal, "query treatment records", err)
	}
	defer rows.Close()

	out := make([]treatments.TreatmentRecord, 0)
	for rows.Next() {
		var rec treatments.TreatmentRecord
		if err := rows.Scan(
			&rec.ID,
			&rec.AnimalID,
			&rec.VetID,
			&rec.Diagnosis,
			&rec.Treatment,
			&rec.Date,
		); err != nil {
			return nil, apperrors.Wrap(apperrors.KindInternal, "scan treatment record", err)
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(apperrors.KindInternal, "iterate treatment records", err)
	}
	return out, nil
}
