package animals

import (
	"context"
	"strings"
	"testing"
	"time"

	"animal-shelter-api/internal/apperrors"
)

// -------------------------
// Test repo (in-memory)
// -------------------------

type testRepo struct {
	byID map[string]Animal
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[string]Animal{}}
}

func (r *testRepo) Create(ctx context.Context, a Animal) error {
	for _, existing := range r.byID {
		if existing.Name == a.Name {
			return apperrors.New(apperrors.KindConflict, "animal name already exists")
		}
	}
	r.byID[a.ID] = a
	return nil
}

func (r *testRepo) GetByID(ctx context.Context, id string) (Animal, error) {
	a, ok := r.byID[id]
	if !ok {
		return Animal{}, apperrors.New(apperrors.KindNotFound, "animal not found")
	}
	return a, nil
}

func (r *testRepo) List(ctx context.Context, f Filter) ([]Animal, error) {
	out := make([]Animal, 0)
	for _, a := range r.byID {
		if f.Species != "" && a.Species != f.Species {
			continue
		}
		if f.Status != "" && string(a.Status) != f.Status {
			continue
		}
		out = append(out, a)
	}
	return out, nil
}

func (r *testRepo) Search(ctx context.Context, query string) ([]Animal, error) {
	q := strings.ToLower(query)
	out := make([]Animal, 0)
	for _, a := range r.byID {
		if strings.Contains(strings.ToLower(a.Name), q) ||
			strings.Contains(strings.ToLower(a.Breed), q) ||
			strings.Contains(strings.ToLower(a.Description), q) {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *testRepo) Update(ctx context.Context, a Animal) error {
	if _, ok := r.byID[a.ID]; !ok {
		return apperrors.New(apperrors.KindNotFound, "animal not found")
	}
	for id, existing := range r.byID {
		if id != a.ID && existing.Name == a.Name {
			return apperrors.New(apperrors.KindConflict, "animal name already exists")
		}
	}
	r.byID[a.ID] = a
	return nil
}

func (r *testRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return apperrors.New(apperrors.KindNotFound, "animal not found")
	}
	delete(r.byID, id)
	return nil
}

func validInput(name string) CreateInput {
	return CreateInput{
		Name:        name,
		Species:     "cat",
		Breed:       "siamese",
		Age:         2,
		Description: "muy tranquilo",
		Status:      "available",
		Location:    "Main Shelter",
	}
}

// -------------------------
// Tests
// -------------------------

func TestService_Create_SetsIDStatusAndCreatedAt(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)

	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	a, err := svc.Create(context.Background(), validInput("Luna"))
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if a.ID == "" {
		t.Fatalf("expected generated id")
	}
	if a.CreatedAt != now {
		t.Fatalf("expected CreatedAt = now")
	}
	if a.Status != StatusAvailable {
		t.Fatalf("expected status available, got %s", a.Status)
	}
}

func TestService_Create_DuplicateName_Conflict(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)

	if _, err := svc.Create(context.Background(), validInput("Luna")); err != nil {
		t.Fatalf("Create #1 error: %v", err)
	}

	_, err := svc.Create(context.Background(), validInput("Luna"))
	if !apperrors.IsKind(err, apperrors.KindConflict) {
		t.Fatalf("expected conflict, got %v", err)
	}

	// el store retiene exactamente un registro con ese nombre
	count := 0
	for _, a := range repo.byID {
		if a.Name == "Luna" {
			count++
		}
	}
	if count != 1 {
		t.Fatalf("expected exactly 1 animal named Luna, got %d", count)
	}
}

func TestService_Create_MissingFields_BadRequest(t *testing.T) {
	svc := NewService(newTestRepo())

	in := validInput("Luna")
	in.Species = "  "
	if _, err := svc.Create(context.Background(), in); !apperrors.IsKind(err, apperrors.KindBadRequest) {
		t.Fatalf("expected bad request, got %v", err)
	}
}

func TestService_Update_RenameToExistingName_Conflict(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)

	luna, _ := svc.Create(context.Background(), validInput("Luna"))
	if _, err := svc.Create(context.Background(), validInput("Max")); err != nil {
		t.Fatalf("Create Max error: %v", err)
	}

	name := "Max"
	_, err := svc.Update(context.Background(), luna.ID, UpdateInput{Name: &name})
	if !apperrors.IsKind(err, apperrors.KindConflict) {
		t.Fatalf("expected conflict on rename collision, got %v", err)
	}
}

func TestService_Update_RenameToOwnName_OK(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)

	luna, _ := svc.Create(context.Background(), validInput("Luna"))

	name := "Luna"
	updated, err := svc.Update(context.Background(), luna.ID, UpdateInput{Name: &name})
	if err != nil {
		t.Fatalf("expected self-rename to succeed, got %v", err)
	}
	if updated.Name != "Luna" {
		t.Fatalf("unexpected name %s", updated.Name)
	}
}

func TestService_Update_PatchLeavesOtherFields(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)

	luna, _ := svc.Create(context.Background(), validInput("Luna"))

	loc := "Downtown Shelter"
	updated, err := svc.Update(context.Background(), luna.ID, UpdateInput{Location: &loc})
	if err != nil {
		t.Fatalf("Update error: %v", err)
	}
	if updated.Location != "Downtown Shelter" {
		t.Fatalf("expected location updated")
	}
	if updated.Name != "Luna" || updated.Breed != "siamese" || updated.Age != 2 {
		t.Fatalf("expected untouched fields to survive the patch: %#v", updated)
	}
}

func TestService_Update_MissingAnimal_NotFound(t *testing.T) {
	svc := NewService(newTestRepo())

	name := "Luna"
	_, err := svc.Update(context.Background(), "00000000-0000-0000-0000-000000000000", UpdateInput{Name: &name})
	if !apperrors.IsKind(err, apperrors.KindNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestService_UpdateStatus_AnyTransitionAllowed(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)

	luna, _ := svc.Create(context.Background(), validInput("Luna"))

	// adopted -> available: no hay grafo de transiciones, todo vale
	if _, err := svc.UpdateStatus(context.Background(), luna.ID, "adopted"); err != nil {
		t.Fatalf("UpdateStatus #1 error: %v", err)
	}
	a, err := svc.UpdateStatus(context.Background(), luna.ID, "available")
	if err != nil {
		t.Fatalf("UpdateStatus #2 error: %v", err)
	}
	if a.Status != StatusAvailable {
		t.Fatalf("expected available, got %s", a.Status)
	}
}

func TestService_UpdateStatus_EmptyStatus_BadRequest(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)
	luna, _ := svc.Create(context.Background(), validInput("Luna"))

	if _, err := svc.UpdateStatus(context.Background(), luna.ID, "  "); !apperrors.IsKind(err, apperrors.KindBadRequest) {
		t.Fatalf("expected bad request, got %v", err)
	}
}

func TestService_Delete_Missing_NotFound(t *testing.T) {
	svc := NewService(newTestRepo())

	err := svc.Delete(context.Background(), "00000000-0000-0000-0000-000000000000")
	if !apperrors.IsKind(err, apperrors.KindNotFound) {
		t.Fatalf("expected not found (never internal), got %v", err)
	}
}
