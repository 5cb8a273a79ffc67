package postgres

import (
	"context"
	"database/sql"
	"strings"

	"animal-shelter-api/internal/apperrors"
	"animal-shelter-api/internal/domain/animals"
)

type AnimalsRepo struct {
	db *sql.DB
}

func NewAnimalsRepo(db *sql.DB) *AnimalsRepo {
	return &AnimalsRepo{db: db}
}

const animalColumns = `
	id, name, species, breed, age,
	description, status, location, photo_url,
	created_at
`

func (r *AnimalsRepo) Create(ctx context.Context, a animals.Animal) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO animals (
			id, name, species, breed, age,
			description, status, location, photo_url,
			created_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
	`,
		a.ID,
		a.Name,
		a.Species,
		a.Breed,
		a.Age,
		a.Description,
		string(a.Status),
		a.Location,
		a.PhotoURL,
		a.CreatedAt,
	)
	if isUniqueViolation(err) {
		return apperrors.New(apperrors.KindConflict, "an animal with that name already exists")
	}
	if err != nil {
		return apperrors.Wrap(apperrors.KindInternal, "insert animal", err)
	}
	return nil
}

func (r *AnimalsRepo) GetByID(ctx context.Context, id string) (animals.Animal, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+animalColumns+`
		FROM animals
		WHERE id = $1
	`, id)

	a, err := scanAnimal(row)
	if err == sql.ErrNoRows {
		return animals.Animal{}, apperrors.New(apperrors.KindNotFound, "animal not found")
	}
	if err != nil {
		return animals.Animal{}, apperrors.Wrap(apperrors.KindInternal, "get animal", err)
	}
	return a, nil
}

func (r *AnimalsRepo) List(ctx context.Context, f animals.Filter) ([]animals.Animal, error) {
	q := `
		SELECT ` + animalColumns + `
		FROM animals
	`
	args := []any{}

	switch {
	case f.Species != "":
		q += ` WHERE species = $1`
		args = append(args, f.Species)
	case f.Status != "":
		q += ` WHERE status = $1`
		args = append(args, f.Status)
	}
	q += ` ORDER BY created_at DESC, id`

	return r.queryAnimals(ctx, q, args...)
}

func (r *AnimalsRepo) Search(ctx context.Context, query string) ([]animals.Animal, error) {
	// Substring literal case-insensitive sobre name, breed o description.
	pattern := "%" + escapeLike(strings.TrimSpace(query)) + "%"

	return r.queryAnimals(ctx, `
		SELECT `+animalColumns+`
		FROM animals
		WHERE name ILIKE $1 ESCAPE '\'
		   OR breed ILIKE $1 ESCAPE '\'
		   OR description ILIKE $1 ESCAPE '\'
		ORDER BY created_at DESC, id
	`, pattern)
}

func (r *AnimalsRepo) Update(ctx context.Context, a animals.Animal) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE animals
		SET
			name = $2,
			species = $3,
			breed = $4,
			age = $5,
			description = $6,
			status = $7,
			location = $8,
			photo_url = $9
		WHERE id = $1
	`,
		a.ID,
		a.Name,
		a.Species,
		a.Breed,
		a.Age,
		a.Description,
		string(a.Status),
		a.Location,
		a.PhotoURL,
	)
	if isUniqueViolation(err) {
		return apperrors.New(apperrors.KindConflict, "an animal with that name already exists")
	}
	if err != nil {
		return apperrors.Wrap(apperrors.KindInternal, "update animal", err)
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return apperrors.New(apperrors.KindNotFound, "animal not found")
	}
	return nil
}

func (r *AnimalsRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM animals WHERE id = $1`, id)
	if err != nil {
		return apperrors.Wrap(apperrors.KindInternal, "delete animal", err)
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return apperrors.New(apperrors.KindNotFound, "animal not found")
	}
	return nil
}

func (r *AnimalsRepo) queryAnimals(ctx context.Context, query string, args ...any) ([]animals.Animal, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.KindInternal, "query animals", err)
	}
	defer rows.Close()

	out := make([]animals.Animal, 0)
	for rows.Next() {
		a, err := scanAnimal(rows)
		if err != nil {
			return nil, apperrors.Wrap(apperrors.KindInternal, "scan animal", err)
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(apperrors.KindInternal, "iterate animals", err)
	}
	return out, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAnimal(row rowScanner) (animals.Animal, error) {
	var a animals.Animal
	var status string
	err := row.Scan(
		&a.ID,
		&a.Name,
		&a.Species,
		&a.Breed,
		&a.Age,
		&a.Description,
		&status,
		&a.Location,
		&a.PhotoURL,
		&a.CreatedAt,
	)
	if err != nil {
		return animals.Animal{}, err
	}
	a.Status = animals.Status(status)
	return a, nil
}
