package auth

// Claims representa la identidad extraída del token de sesión.
// Role viaja en el token para no tener que consultar el store en cada request.
type Claims struct {
	UserID string
	Role   string
}
