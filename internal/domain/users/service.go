package users

import (
	"context"
	"strings"
	"time"

	"animal-shelter-api/internal/apperrors"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

type RegisterInput struct {
	Name     string
	Username string
	Email    string
	Password string
	Role     Role // opcional; default user
}

// Register crea la cuenta con el password hasheado (bcrypt).
// Unicidad: primero username, después email; el primer campo violado
// determina el detalle del Conflict.
func (s *Service) Register(ctx context.Context, in RegisterInput) (User, error) {
	name := strings.TrimSpace(in.Name)
	username := strings.TrimSpace(in.Username)
	email := strings.TrimSpace(in.Email)

	if name == "" || username == "" || email == "" || in.Password == "" {
		return User{}, apperrors.New(apperrors.KindBadRequest, "name, username, email and password are required")
	}

	// El registro abierto acepta cualquier rol conocido, admin/vet
	// incluidos: es el modelo de confianza del deployment (instancia
	// interna del refugio, registro sin aprobación). Si eso cambia,
	// el alta de roles elevados tiene que moverse a una ruta de admin.
	role := in.Role
	if role == "" {
		role = RoleUser
	}
	if !role.IsValid() {
		return User{}, apperrors.New(apperrors.KindBadRequest, "unknown role")
	}

	if _, err := s.repo.GetByUsername(ctx, username); err == nil {
		return User{}, apperrors.New(apperrors.KindConflict, "username already taken")
	} else if !apperrors.IsKind(err, apperrors.KindNotFound) {
		return User{}, err
	}
	if _, err := s.repo.GetByEmail(ctx, email); err == nil {
		return User{}, apperrors.New(apperrors.KindConflict, "email already registered")
	} else if !apperrors.IsKind(err, apperrors.KindNotFound) {
		return User{}, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return User{}, apperrors.Wrap(apperrors.KindInternal, "hash password", err)
	}

	u := User{
		ID:           uuid.NewString(),
		Name:         name,
		Username:     username,
		Email:        email,
		PasswordHash: string(hashed),
		Role:         role,
		CreatedAt:    s.now(),
	}

	if err := s.repo.Create(ctx, u); err != nil {
		return User{}, err
	}
	return u, nil
}

// Login valida credenciales. Cualquier mismatch (usuario inexistente o
// password incorrecto) devuelve Unauthenticated sin distinguir cuál falló.
func (s *Service) Login(ctx context.Context, username, password string) (User, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return User{}, apperrors.New(apperrors.KindUnauthenticated, "invalid credentials")
	}

	u, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		if apperrors.IsKind(err, apperrors.KindNotFound) {
			return User{}, apperrors.New(apperrors.KindUnauthenticated, "invalid credentials")
		}
		return User{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return User{}, apperrors.New(apperrors.KindUnauthenticated, "invalid credentials")
	}
	return u, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (User, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return User{}, apperrors.New(apperrors.KindBadRequest, "user id required")
	}
	return s.repo.GetByID(ctx, id)
}
