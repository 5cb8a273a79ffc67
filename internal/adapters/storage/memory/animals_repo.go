package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"animal-shelter-api/internal/apperrors"
	"animal-shelter-api/internal/domain/animals"
)

// AnimalRepo guarda animales en memoria. Exportado (no devuelve la
// interfaz) para que el adapter de sqlite pueda envolverlo y usar
// Snapshot/Restore.
type AnimalRepo struct {
	mu   sync.RWMutex
	byID map[string]animals.Animal
}

func NewAnimalRepo() *AnimalRepo {
	return &AnimalRepo{
		byID: make(map[string]animals.Animal),
	}
}

func (r *AnimalRepo) Create(ctx context.Context, a animals.Animal) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(a.ID) == "" {
		return apperrors.New(apperrors.KindBadRequest, "animal id required")
	}
	if _, exists := r.byID[a.ID]; exists {
		return apperrors.New(apperrors.KindConflict, "animal already exists")
	}
	// Check de nombre bajo el mismo lock que el write: sin ventana
	// para duplicados concurrentes.
	for _, other := range r.byID {
		if other.Name == a.Name {
			return apperrors.New(apperrors.KindConflict, "an animal with that name already exists")
		}
	}

	r.byID[a.ID] = a
	return nil
}

func (r *AnimalRepo) GetByID(ctx context.Context, id string) (animals.Animal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.byID[id]
	if !ok {
		return animals.Animal{}, apperrors.New(apperrors.KindNotFound, "animal not found")
	}
	return a, nil
}

func (r *AnimalRepo) List(ctx context.Context, f animals.Filter) ([]animals.Animal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]animals.Animal, 0)
	for _, a := range r.byID {
		if f.Species != "" && a.Species != f.Species {
			continue
		}
		if f.Status != "" && string(a.Status) != f.Status {
			continue
		}
		out = append(out, a)
	}

	sortNewestFirst(out)
	return out, nil
}

func (r *AnimalRepo) Search(ctx context.Context, query string) ([]animals.Animal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	q := strings.ToLower(strings.TrimSpace(query))

	out := make([]animals.Animal, 0)
	for _, a := range r.byID {
		// Substring literal case-insensitive, campo por campo (igual que
		// el OR de ILIKE en postgres). El query nunca se interpreta como
		// patrón ni matchea cruzando campos.
		if !strings.Contains(strings.ToLower(a.Name), q) &&
			!strings.Contains(strings.ToLower(a.Breed), q) &&
			!strings.Contains(strings.ToLower(a.Description), q) {
			continue
		}
		out = append(out, a)
	}

	sortNewestFirst(out)
	return out, nil
}

func (r *AnimalRepo) Update(ctx context.Context, a animals.Animal) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[a.ID]; !exists {
		return apperrors.New(apperrors.KindNotFound, "animal not found")
	}
	for id, other := range r.byID {
		if id != a.ID && other.Name == a.Name {
			return apperrors.New(apperrors.KindConflict, "an animal with that name already exists")
		}
	}

	r.byID[a.ID] = a
	return nil
}

func (r *AnimalRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[id]; !exists {
		return apperrors.New(apperrors.KindNotFound, "animal not found")
	}
	delete(r.byID, id)
	return nil
}

// Snapshot devuelve una copia del estado para persistir.
func (r *AnimalRepo) Snapshot() []animals.Animal {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]animals.Animal, 0, len(r.byID))
	for _, a := range r.byID {
		out = append(out, a)
	}
	sortNewestFirst(out)
	return out
}

// Restore reemplaza el estado completo (carga inicial desde disco).
func (r *AnimalRepo) Restore(items []animals.Animal) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.byID = make(map[string]animals.Animal, len(items))
	for _, a := range items {
		r.byID[a.ID] = a
	}
}

// Orden por created_at desc; el ID desempata para salida estable.
func sortNewestFirst(out []animals.Animal) {
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})
}
