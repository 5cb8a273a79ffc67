package animals

import "context"

// Filter acota List a una sola dimensión: species O status, nunca ambas.
// Vacío lista todo.
type Filter struct {
	Species string
	Status  string
}

// Repository persiste animales. La unicidad de Name la garantiza la
// implementación de forma atómica (mutex en memoria, unique index en
// postgres); el service no hace check-then-write propio.
// List y Search ordenan por created_at descendente (más nuevo primero).
type Repository interface {
	Create(ctx context.Context, a Animal) error
	GetByID(ctx context.Context, id string) (Animal, error)
	List(ctx context.Context, f Filter) ([]Animal, error)
	// Search hace substring match case-insensitive y LITERAL sobre
	// name, breed o description; el query nunca se interpreta como patrón.
	Search(ctx context.Context, query string) ([]Animal, error)
	Update(ctx context.Context, a Animal) error
	Delete(ctx context.Context, id string) error
}
