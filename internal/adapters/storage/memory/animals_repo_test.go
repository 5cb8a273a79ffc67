package memory

import (
	"context"
	"testing"
	"time"

	"animal-shelter-api/internal/apperrors"
	"animal-shelter-api/internal/domain/animals"
)

func seedAnimal(id, name string, created time.Time) animals.Animal {
	return animals.Animal{
		ID:          id,
		Name:        name,
		Species:     "dog",
		Breed:       "mestizo",
		Description: "rescatado en la via",
		Status:      animals.StatusAvailable,
		Location:    "refugio central",
		CreatedAt:   created,
	}
}

func TestAnimalRepo_CreateRejectsDuplicateName(t *testing.T) {
	repo := NewAnimalRepo()
	ctx := context.Background()
	now := time.Now()

	if err := repo.Create(ctx, seedAnimal("a1", "Firulais", now)); err != nil {
		t.Fatalf("primer create: %v", err)
	}

	err := repo.Create(ctx, seedAnimal("a2", "Firulais", now))
	if !apperrors.IsKind(err, apperrors.KindConflict) {
		t.Fatalf("esperaba Conflict por nombre duplicado, got %v", err)
	}

	// El duplicado no debe quedar guardado.
	if _, err := repo.GetByID(ctx, "a2"); !apperrors.IsKind(err, apperrors.KindNotFound) {
		t.Fatalf("el duplicado no debía persistirse, got %v", err)
	}
}

func TestAnimalRepo_NameIsCaseSensitive(t *testing.T) {
	repo := NewAnimalRepo()
	ctx := context.Background()
	now := time.Now()

	if err := repo.Create(ctx, seedAnimal("a1", "Luna", now)); err != nil {
		t.Fatalf("create Luna: %v", err)
	}
	// "luna" es otro nombre: la unicidad es match exacto.
	if err := repo.Create(ctx, seedAnimal("a2", "luna", now)); err != nil {
		t.Fatalf("create luna: %v", err)
	}
}

func TestAnimalRepo_UpdateAllowsKeepingOwnName(t *testing.T) {
	repo := NewAnimalRepo()
	ctx := context.Background()
	now := time.Now()

	a := seedAnimal("a1", "Rocky", now)
	if err := repo.Create(ctx, a); err != nil {
		t.Fatalf("create: %v", err)
	}

	a.Age = 4
	if err := repo.Update(ctx, a); err != nil {
		t.Fatalf("update manteniendo nombre: %v", err)
	}

	if err := repo.Create(ctx, seedAnimal("a2", "Toby", now)); err != nil {
		t.Fatalf("create Toby: %v", err)
	}
	a.Name = "Toby"
	if err := repo.Update(ctx, a); !apperrors.IsKind(err, apperrors.KindConflict) {
		t.Fatalf("esperaba Conflict al renombrar a un nombre tomado, got %v", err)
	}
}

func TestAnimalRepo_ListOrdersNewestFirst(t *testing.T) {
	repo := NewAnimalRepo()
	ctx := context.Background()
	base := time.Now()

	repo.Create(ctx, seedAnimal("a1", "Uno", base.Add(-2*time.Hour)))
	repo.Create(ctx, seedAnimal("a2", "Dos", base.Add(-1*time.Hour)))
	repo.Create(ctx, seedAnimal("a3", "Tres", base))

	out, err := repo.List(ctx, animals.Filter{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(out) != 3 {
		t.Fatalf("esperaba 3, got %d", len(out))
	}
	if out[0].ID != "a3" || out[1].ID != "a2" || out[2].ID != "a1" {
		t.Fatalf("orden inesperado: %s %s %s", out[0].ID, out[1].ID, out[2].ID)
	}
}

func TestAnimalRepo_ListFiltersByStatus(t *testing.T) {
	repo := NewAnimalRepo()
	ctx := context.Background()
	now := time.Now()

	a := seedAnimal("a1", "Uno", now)
	repo.Create(ctx, a)

	b := seedAnimal("a2", "Dos", now)
	b.Status = animals.StatusAdopted
	repo.Create(ctx, b)

	out, err := repo.List(ctx, animals.Filter{Status: string(animals.StatusAdopted)})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(out) != 1 || out[0].ID != "a2" {
		t.Fatalf("esperaba solo a2, got %+v", out)
	}
}

func TestAnimalRepo_SearchIsLiteralSubstring(t *testing.T) {
	repo := NewAnimalRepo()
	ctx := context.Background()
	now := time.Now()

	a := seedAnimal("a1", "Misifu", now.Add(-time.Minute))
	a.Species = "cat"
	a.Breed = "siames"
	a.Description = "gato feliz (100%)"
	repo.Create(ctx, a)

	b := seedAnimal("a2", "Bobby", now)
	b.Description = "le falta una pata"
	repo.Create(ctx, b)

	// Match case-insensitive sobre name.
	out, err := repo.Search(ctx, "misi")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(out) != 1 || out[0].ID != "a1" {
		t.Fatalf("search misi: esperaba a1, got %+v", out)
	}

	// Metacaracteres de regex buscan literal, no rompen ni matchean todo.
	out, err = repo.Search(ctx, "(100%)")
	if err != nil {
		t.Fatalf("search literal: %v", err)
	}
	if len(out) != 1 || out[0].ID != "a1" {
		t.Fatalf("search (100%%): esperaba a1, got %+v", out)
	}

	out, err = repo.Search(ctx, ".*")
	if err != nil {
		t.Fatalf("search .*: %v", err)
	}
	if len(out) != 0 {
		t.Fatalf(".* no debe matchear como patrón, got %d resultados", len(out))
	}
}

func TestAnimalRepo_SearchDoesNotMatchAcrossFields(t *testing.T) {
	repo := NewAnimalRepo()
	ctx := context.Background()

	a := seedAnimal("a1", "Luna", time.Now())
	a.Breed = "siames"
	repo.Create(ctx, a)

	// El match es por campo (name O breed O description); un query que
	// solo existiría concatenando campos no encuentra nada.
	out, err := repo.Search(ctx, "luna siames")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(out) != 0 {
		t.Fatalf("query cruzando campos no debe matchear, got %d", len(out))
	}

	out, err = repo.Search(ctx, "siames")
	if err != nil {
		t.Fatalf("search breed: %v", err)
	}
	if len(out) != 1 || out[0].ID != "a1" {
		t.Fatalf("search por breed: esperaba a1, got %+v", out)
	}
}

func TestAnimalRepo_SnapshotRestoreRoundTrip(t *testing.T) {
	repo := NewAnimalRepo()
	ctx := context.Background()
	now := time.Now()

	repo.Create(ctx, seedAnimal("a1", "Uno", now))
	repo.Create(ctx, seedAnimal("a2", "Dos", now.Add(time.Minute)))

	other := NewAnimalRepo()
	other.Restore(repo.Snapshot())

	got, err := other.GetByID(ctx, "a1")
	if err != nil {
		t.Fatalf("get tras restore: %v", err)
	}
	if got.Name != "Uno" {
		t.Fatalf("snapshot perdió datos: %+v", got)
	}

	// La unicidad sigue vigente sobre el estado restaurado.
	if err := other.Create(ctx, seedAnimal("a3", "Dos", now)); !apperrors.IsKind(err, apperrors.KindConflict) {
		t.Fatalf("esperaba Conflict tras restore, got %v", err)
	}
}
