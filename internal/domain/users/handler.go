package users

import (
	"encoding/json"
	"net/http"
	"time"

	"animal-shelter-api/internal/apperrors"
	"animal-shelter-api/internal/domain/authz"
	"animal-shelter-api/internal/middleware"
	"animal-shelter-api/internal/platform/httpx"
	"animal-shelter-api/internal/platform/metrics"
	portauth "animal-shelter-api/internal/ports/auth"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, issuer portauth.TokenIssuer, m *metrics.Metrics) {
	r.Route("/auth", func(ar chi.Router) {
		ar.Post("/register", registerHandler(svc, issuer, m))
		ar.Post("/login", loginHandler(svc, issuer))
	})

	r.Get("/user/profile", profileHandler(svc))
}

type registerRequest struct {
	Name     string `json:"name"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"` // opcional; default user
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type userResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

type sessionResponse struct {
	Token string       `json:"token"`
	User  userResponse `json:"user"`
}

// registerHandler godoc
// @Summary Registrar usuario
// @Description Crea una cuenta nueva y devuelve un token de sesión. Username y email deben ser únicos.
// @Tags auth
// @Accept json
// @Produce json
// @Param payload body registerRequest true "Datos de la cuenta"
// @Success 201 {object} sessionResponse
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 409 {object} httpx.ErrorResponse
// @Router /auth/register [post]
func registerHandler(svc *Service, issuer portauth.TokenIssuer, m *metrics.Metrics) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req registerRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httpx.WriteError(w, apperrors.New(apperrors.KindBadRequest, "invalid json"))
			return
		}

		u, err := svc.Register(r.Context(), RegisterInput{
			Name:     req.Name,
			Username: req.Username,
			Email:    req.Email,
			Password: req.Password,
			Role:     Role(req.Role),
		})
		if err != nil {
			httpx.WriteError(w, err)
			return
		}
		m.IncUsersRegistered()

		token, err := issueToken(r, issuer, u)
		if err != nil {
			httpx.WriteError(w, err)
			return
		}

		httpx.WriteJSON(w, http.StatusCreated, sessionResponse{
			Token: token,
			User:  toUserResponse(u),
		})
	}
}

// loginHandler godoc
// @Summary Iniciar sesión
// @Description Valida credenciales y devuelve un token de sesión.
// @Tags auth
// @Accept json
// @Produce json
// @Param payload body loginRequest true "Credenciales"
// @Success 200 {object} sessionResponse
// @Failure 401 {object} httpx.ErrorResponse
// @Router /auth/login [post]
func loginHandler(svc *Service, issuer portauth.TokenIssuer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req loginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httpx.WriteError(w, apperrors.New(apperrors.KindBadRequest, "invalid json"))
			return
		}

		u, err := svc.Login(r.Context(), req.Username, req.Password)
		if err != nil {
			httpx.WriteError(w, err)
			return
		}

		token, err := issueToken(r, issuer, u)
		if err != nil {
			httpx.WriteError(w, err)
			return
		}

		httpx.WriteJSON(w, http.StatusOK, sessionResponse{
			Token: token,
			User:  toUserResponse(u),
		})
	}
}

// profileHandler godoc
// @Summary Perfil propio
// @Description Devuelve el perfil del usuario autenticado, sin el hash de password.
// @Tags auth
// @Produce json
// @Success 200 {object} userResponse
// @Failure 401 {object} httpx.ErrorResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Router /user/profile [get]
func profileHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if err := authz.Require(claims, ok, authz.OpProfileRead); err != nil {
			httpx.WriteError(w, err)
			return
		}

		u, err := svc.GetByID(r.Context(), claims.UserID)
		if err != nil {
			httpx.WriteError(w, err)
			return
		}

		httpx.WriteJSON(w, http.StatusOK, toUserResponse(u))
	}
}

func issueToken(r *http.Request, issuer portauth.TokenIssuer, u User) (string, error) {
	if issuer == nil {
		// modo dev sin issuer: no hay token, el cliente usa headers de debug
		return "", nil
	}
	return issuer.Issue(r.Context(), portauth.Claims{UserID: u.ID, Role: string(u.Role)})
}

func toUserResponse(u User) userResponse {
	return userResponse{
		ID:        u.ID,
		Name:      u.Name,
		Username:  u.Username,
		Email:     u.Email,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}
}
