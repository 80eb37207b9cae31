package repository

import (
	"context"

	"github.com/tu-usuario/nevera-pro/internal/domain/entity"
)

// BatchRepository puerto de persistencia del inventario de un usuario.
// El motor nunca habla con el almacén directamente: opera sobre la lista que se
// le pasa y devuelve la lista a guardar (el host decide cómo y dónde).
type BatchRepository interface {
	// Load devuelve la lista cruda de lotes del usuario (vacía si no hay nada).
	Load(ctx context.Context, userID string) ([]entity.IngredientBatch, error)
	// Save reemplaza la lista completa del usuario de forma atómica.
	Save(ctx context.Context, userID string, records []entity.IngredientBatch) error
}

// TemplateRepository puerto del catálogo de templates personalizados del usuario.
type TemplateRepository interface {
	ListByUser(ctx context.Context, userID string) ([]entity.Template, error)
	Upsert(ctx context.Context, userID string, tpl entity.Template) error
	Delete(ctx context.Context, userID, name string) error
}
