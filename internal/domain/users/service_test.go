package users

import (
	"context"
	"errors"
	"testing"

	"animal-shelter-api/internal/apperrors"

	"golang.org/x/crypto/bcrypt"
)


type testRepo struct {
	byID map[string]User
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[string]User{}}
}

func (r *testRepo) Create(ctx context.Context, u User) error {
	r.byID[u.ID] = u
	return nil
}

func (r *testRepo) GetByID(ctx context.Context, id string) (User, error) {
	u, ok := r.byID[id]
	if !ok {
		return User{}, apperrors.New(apperrors.KindNotFound, "user not found")
	}
	return u, nil
}

func (r *testRepo) GetByUsername(ctx context.Context, username string) (User, error) {
	for _, u := range r.byID {
		if u.Username == username {
			return u, nil
		}
	}
	return User{}, apperrors.New(apperrors.KindNotFound, "user not found")
}

func (r *testRepo) GetByEmail(ctx context.Context, email string) (User, error) {
	for _, u := range r.byID {
		if u.Email == email {
			return u, nil
		}
	}
	return User{}, apperrors.New(apperrors.KindNotFound, "user not found")
}

func validRegister() RegisterInput {
	return RegisterInput{
		Name:     "Ana García",
		Username: "anag",
		Email:    "ana@example.com",
		Password: "secreto123",
	}
}

func TestService_Register_HashesPassword(t *testing.T) {
	svc := NewService(newTestRepo())

	u, err := svc.Register(context.Background(), validRegister())
	if err != nil {
		t.Fatalf("Register error: %v", err)
	}
	if u.Role != RoleUser {
		t.Fatalf("expected default role user, got %s", u.Role)
	}
	if u.PasswordHash == "secreto123" || u.PasswordHash == "" {
		t.Fatalf("expected bcrypt hash, got %q", u.PasswordHash)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("secreto123")); err != nil {
		t.Fatalf("hash does not verify: %v", err)
	}
}

func TestService_Register_DuplicateUsername_ConflictNamesUsername(t *testing.T) {
	svc := NewService(newTestRepo())

	if _, err := svc.Register(context.Background(), validRegister()); err != nil {
		t.Fatalf("Register #1 error: %v", err)
	}

	// mismo username Y mismo email: el primer campo violado (username)
	// determina el detalle del conflict
	_, err := svc.Register(context.Background(), validRegister())
	if !apperrors.IsKind(err, apperrors.KindConflict) {
		t.Fatalf("expected conflict, got %v", err)
	}
	var e *apperrors.Error
	if !errors.As(err, &e) || e.Msg != "username already taken" {
		t.Fatalf("expected username conflict detail, got %v", err)
	}
}

func TestService_Register_DuplicateEmailOnly_ConflictNamesEmail(t *testing.T) {
	svc := NewService(newTestRepo())

	if _, err := svc.Register(context.Background(), validRegister()); err != nil {
		t.Fatalf("Register #1 error: %v", err)
	}

	in := validRegister()
	in.Username = "otra"
	_, err := svc.Register(context.Background(), in)
	if !apperrors.IsKind(err, apperrors.KindConflict) {
		t.Fatalf("expected conflict, got %v", err)
	}
	var e *apperrors.Error
	if !errors.As(err, &e) || e.Msg != "email already registered" {
		t.Fatalf("expected email conflict detail, got %v", err)
	}
}

func TestService_Register_ElevatedRoleIsHonored(t *testing.T) {
	svc := NewService(newTestRepo())

	// registro abierto: el rol pedido se respeta, admin/vet incluidos
	// (modelo de confianza documentado en DESIGN.md)
	in := validRegister()
	in.Role = RoleVet
	u, err := svc.Register(context.Background(), in)
	if err != nil {
		t.Fatalf("Register error: %v", err)
	}
	if u.Role != RoleVet {
		t.Fatalf("expected requested role vet, got %s", u.Role)
	}
}

func TestService_Register_UnknownRole_BadRequest(t *testing.T) {
	svc := NewService(newTestRepo())

	in := validRegister()
	in.Role = Role("superadmin")
	if _, err := svc.Register(context.Background(), in); !apperrors.IsKind(err, apperrors.KindBadRequest) {
		t.Fatalf("expected bad request, got %v", err)
	}
}

func TestService_Login_OK(t *testing.T) {
	svc := NewService(newTestRepo())

	created, _ := svc.Register(context.Background(), validRegister())

	u, err := svc.Login(context.Background(), "anag", "secreto123")
	if err != nil {
		t.Fatalf("Login error: %v", err)
	}
	if u.ID != created.ID {
		t.Fatalf("expected same user")
	}
}

func TestService_Login_WrongPassword_Unauthenticated(t *testing.T) {
	svc := NewService(newTestRepo())
	_, _ = svc.Register(context.Background(), validRegister())

	_, err := svc.Login(context.Background(), "anag", "incorrecto")
	if !apperrors.IsKind(err, apperrors.KindUnauthenticated) {
		t.Fatalf("expected unauthenticated, got %v", err)
	}
}

func TestService_Login_UnknownUser_Unauthenticated(t *testing.T) {
	svc := NewService(newTestRepo())

	_, err := svc.Login(context.Background(), "nadie", "loquesea")
	if !apperrors.IsKind(err, apperrors.KindUnauthenticated) {
		t.Fatalf("expected unauthenticated, got %v", err)
	}
}
