package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tu-usuario/nevera-pro/internal/domain/entity"
	"github.com/tu-usuario/nevera-pro/internal/domain/repository"
)

var _ repository.BatchRepository = (*BatchRepo)(nil)
var _ repository.TemplateRepository = (*TemplateRepo)(nil)

// BatchRepo persistencia del inventario por usuario. El motor trabaja con la
// lista completa en memoria, así que Save reemplaza la lista entera en una
// transacción (delete + insert): mismo contrato que tenía el almacén
// clave/valor del navegador, pero atómico.
type BatchRepo struct {
	pool *pgxpool.Pool
}

// NewBatchRepository construye el adaptador de lotes.
func NewBatchRepository(pool *pgxpool.Pool) *BatchRepo {
	return &BatchRepo{pool: pool}
}

// Load devuelve la lista cruda del usuario, ya normalizada (enum de storage y
// defaults defensivos aplicados una sola vez en la frontera).
func (r *BatchRepo) Load(ctx context.Context, userID string) ([]entity.IngredientBatch, error) {
	query := `
		SELECT id, name, amount, unit, storage, purchase_date, shelf_life, base_shelf_life
		FROM ingredient_batches
		WHERE user_id = $1
		ORDER BY created_at, id`
	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("load batches: %w", err)
	}
	defer rows.Close()

	var out []entity.IngredientBatch
	for rows.Next() {
		var b entity.IngredientBatch
		var storage string
		if err := rows.Scan(
			&b.ID, &b.Name, &b.Amount, &b.Unit, &storage,
			&b.PurchaseDate, &b.ShelfLife, &b.BaseShelfLife,
		); err != nil {
			return nil, fmt.Errorf("scan batch: %w", err)
		}
		b.Storage = entity.Storage(storage)
		out = append(out, b.Normalized())
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("load batches: %w", err)
	}
	return out, nil
}

// Save reemplaza la lista completa del usuario de forma atómica.
func (r *BatchRepo) Save(ctx context.Context, userID string, records []entity.IngredientBatch) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin save batches: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, `DELETE FROM ingredient_batches WHERE user_id = $1`, userID); err != nil {
		return fmt.Errorf("clear batches: %w", err)
	}

	insert := `
		INSERT INTO ingredient_batches
			(user_id, id, name, amount, unit, storage, purchase_date, shelf_life, base_shelf_life, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, now())`
	for _, b := range records {
		if _, err := tx.Exec(ctx, insert,
			userID, b.ID, b.Name, b.Amount, b.Unit, string(b.Storage),
			b.PurchaseDate, b.ShelfLife, b.BaseShelfLife,
		); err != nil {
			return fmt.Errorf("insert batch %s: %w", b.ID, err)
		}
	}
	return tx.Commit(ctx)
}

// TemplateRepo catálogo de templates personalizados por usuario.
type TemplateRepo struct {
	pool *pgxpool.Pool
}

// NewTemplateRepository construye el adaptador del catálogo.
func NewTemplateRepository(pool *pgxpool.Pool) *TemplateRepo {
	return &TemplateRepo{pool: pool}
}

// ListByUser devuelve los templates personalizados del usuario.
func (r *TemplateRepo) ListByUser(ctx context.Context, userID string) ([]entity.Template, error) {
	query := `
		SELECT name, unit, shelf_life, storage
		FROM custom_templates
		WHERE user_id = $1
		ORDER BY name`
	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list templates: %w", err)
	}
	defer rows.Close()

	var out []entity.Template
	for rows.Next() {
		var t entity.Template
		var storage string
		if err := rows.Scan(&t.Name, &t.Unit, &t.ShelfLife, &storage); err != nil {
			return nil, fmt.Errorf("scan template: %w", err)
		}
		t.Storage = entity.NormalizeStorage(storage)
		t.Custom = true
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list templates: %w", err)
	}
	return out, nil
}

// Upsert inserta o actualiza un template personalizado (clave user_id + name).
func (r *TemplateRepo) Upsert(ctx context.Context, userID string, tpl entity.Template) error {
	query := `
		INSERT INTO custom_templates (user_id, name, unit, shelf_life, storage)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (user_id, name)
		DO UPDATE SET unit = EXCLUDED.unit, shelf_life = EXCLUDED.shelf_life, storage = EXCLUDED.storage`
	_, err := r.pool.Exec(ctx, query, userID, tpl.Name, tpl.Unit, tpl.ShelfLife, string(tpl.Storage))
	if err != nil {
		return fmt.Errorf("upsert template: %w", err)
	}
	return nil
}

// Delete elimina un template personalizado del catálogo.
func (r *TemplateRepo) Delete(ctx context.Context, userID, name string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM custom_templates WHERE user_id = $1 AND name = $2`, userID, name)
	if err != nil {
		return fmt.Errorf("delete template: %w", err)
	}
	return nil
}
