package authz

import (
	"animal-shelter-api/internal/apperrors"
	"animal-shelter-api/internal/ports/auth"
)

// Operation identifica cada mutación/lectura protegida de la API.
type Operation string

const (
	OpAnimalCreate    Operation = "animal:create"
	OpAnimalUpdate    Operation = "animal:update"
	OpAnimalDelete    Operation = "animal:delete"
	OpAnimalSetStatus Operation = "animal:set_status"

	OpReportCreate Operation = "report:create"

	OpAdoptionCreate    Operation = "adoption:create"
	OpAdoptionListOwn   Operation = "adoption:list_own"
	OpAdoptionSetStatus Operation = "adoption:set_status"

	OpTreatmentCreate Operation = "treatment:create"

	OpProfileRead Operation = "profile:read"
)

// Los roles se comparan como strings: el rol viaja así dentro de
// auth.Claims y este paquete no depende del módulo users (los handlers
// de users dependen de acá, no al revés).
const (
	roleUser  = "user"
	roleAdmin = "admin"
	roleVet   = "vet"
)

// capabilities es la tabla estática rol -> operación. Una sola fuente de
// verdad en lugar de comparaciones de rol repartidas por cada ruta; se
// testea aislada del transporte. Lecturas públicas (listado, búsqueda,
// detalle, reports/treatments anidados) no pasan por acá.
var capabilities = map[Operation]map[string]bool{
	OpAnimalCreate:    anyAuthenticated(),
	OpAnimalUpdate:    anyAuthenticated(),
	OpAnimalDelete:    adminOrVet(),
	OpAnimalSetStatus: adminOrVet(),

	OpReportCreate: anyAuthenticated(),

	OpAdoptionCreate:    anyAuthenticated(),
	OpAdoptionListOwn:   anyAuthenticated(),
	OpAdoptionSetStatus: adminOrVet(),

	OpTreatmentCreate: adminOrVet(),

	OpProfileRead: anyAuthenticated(),
}

func anyAuthenticated() map[string]bool {
	return map[string]bool{roleUser: true, roleAdmin: true, roleVet: true}
}

func adminOrVet() map[string]bool {
	return map[string]bool{roleAdmin: true, roleVet: true}
}

// Can responde si el rol tiene la capacidad. Roles desconocidos no tienen
// ninguna.
func Can(role string, op Operation) bool {
	allowed, ok := capabilities[op]
	if !ok {
		return false
	}
	return allowed[role]
}

// Require aplica la política sobre las claims del request.
// Distingue sesión ausente (Unauthenticated, 401) de rol insuficiente
// (Forbidden, 403).
func Require(claims auth.Claims, hasSession bool, op Operation) error {
	if !hasSession || claims.UserID == "" {
		return apperrors.New(apperrors.KindUnauthenticated, "authentication required")
	}
	if !Can(claims.Role, op) {
		return apperrors.New(apperrors.KindForbidden, "insufficient role for "+string(op))
	}
	return nil
}
