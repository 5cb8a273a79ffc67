package sqlite

import (
	"context"

	"animal-shelter-api/internal/domain/adoptions"
	"animal-shelter-api/internal/domain/animals"
	"animal-shelter-api/internal/domain/reports"
	"animal-shelter-api/internal/domain/treatments"
	"animal-shelter-api/internal/domain/users"
)

// Los wrappers delegan en el repo en memoria y, si la mutación salió
// bien, vuelcan el snapshot a disco. Las lecturas no tocan el archivo.

type usersRepo struct{ s *Store }

func (r *usersRepo) Create(ctx context.Context, u users.User) error {
	if err := r.s.users.Create(ctx, u); err != nil {
		return err
	}
	return r.s.persist()
}

func (r *usersRepo) GetByID(ctx context.Context, id string) (users.User, error) {
	return r.s.users.GetByID(ctx, id)
}

func (r *usersRepo) GetByUsername(ctx context.Context, username string) (users.User, error) {
	return r.s.users.GetByUsername(ctx, username)
}

func (r *usersRepo) GetByEmail(ctx context.Context, email string) (users.User, error) {
	return r.s.users.GetByEmail(ctx, email)
}

type animalsRepo struct{ s *Store }

func (r *animalsRepo) Create(ctx context.Context, a animals.Animal) error {
	if err := r.s.animals.Create(ctx, a); err != nil {
		return err
	}
	return r.s.persist()
}

func (r *animalsRepo) GetByID(ctx context.Context, id string) (animals.Animal, error) {
	return r.s.animals.GetByID(ctx, id)
}

func (r *animalsRepo) List(ctx context.Context, f animals.Filter) ([]animals.Animal, error) {
	return r.s.animals.List(ctx, f)
}

func (r *animalsRepo) Search(ctx context.Context, query string) ([]animals.Animal, error) {
	return r.s.animals.Search(ctx, query)
}

func (r *animalsRepo) Update(ctx context.Context, a animals.Animal) error {
	if err := r.s.animals.Update(ctx, a); err != nil {
		return err
	}
	return r.s.persist()
}

func (r *animalsRepo) Delete(ctx context.Context, id string) error {
	if err := r.s.animals.Delete(ctx, id); err != nil {
		return err
	}
	return r.s.persist()
}

type adoptionsRepo struct{ s *Store }

func (r *adoptionsRepo) Create(ctx context.Context, req adoptions.AdoptionRequest) error {
	if err := r.s.adoptions.Create(ctx, req); err != nil {
		return err
	}
	return r.s.persist()
}

func (r *adoptionsRepo) GetByID(ctx context.Context, id string) (adoptions.AdoptionRequest, error) {
	return r.s.adoptions.GetByID(ctx, id)
}

func (r *adoptionsRepo) ListByUser(ctx context.Context, userID string) ([]adoptions.AdoptionRequest, error) {
	return r.s.adoptions.ListByUser(ctx, userID)
}

func (r *adoptionsRepo) Update(ctx context.Context, req adoptions.AdoptionRequest) error {
	if err := r.s.adoptions.Update(ctx, req); err != nil {
		return err
	}
	return r.s.persist()
}

type reportsRepo struct{ s *Store }

func (r *reportsRepo) Create(ctx context.Context, rep reports.RescueReport) error {
	if err := r.s.reports.Create(ctx, rep); err != nil {
		return err
	}
	return r.s.persist()
}

func (r *reportsRepo) ListByAnimal(ctx context.Context, animalID string) ([]reports.RescueReport, error) {
	return r.s.reports.ListByAnimal(ctx, animalID)
}

type treatmentsRepo struct{ s *Store }

func (r *treatmentsRepo) Create(ctx context.Context, rec treatments.TreatmentRecord) error {
	if err := r.s.treatments.Create(ctx, rec); err != nil {
		return err
	}
	return r.s.persist()
}

func (r *treatmentsRepo) ListByAnimal(ctx context.Context, animalID string) ([]treatments.TreatmentRecord, error) {
	return r.s.treatments.ListByAnimal(ctx, animalID)
}
