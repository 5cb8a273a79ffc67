package auth

import "context"

// AuthVerifier verifica un token y devuelve claims o error.
type AuthVerifier interface {
	Verify(ctx context.Context, token string) (Claims, error)
}

// TokenIssuer emite un token de sesión para las claims dadas.
// Lo usan los handlers de register/login; la implementación vive en adapters.
type TokenIssuer interface {
	Issue(ctx context.Context, claims Claims) (string, error)
}
