package pantry

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/nevera-pro/internal/domain/entity"
	"github.com/tu-usuario/nevera-pro/internal/domain/freshness"
)

var one = decimal.NewFromInt(1)

// Adjust aplica un delta de una unidad sobre una fila agregada y devuelve la
// lista cruda resultante (nueva; la entrada no se muta).
//
//   - delta > 0 (reponer): crea SIEMPRE un lote nuevo de amount=1 fechado hoy
//     con name/unit/storage de la fila y su shelfLife (FreezerShelfLife si la
//     ubicación es freezer). Cada "+" es "una unidad más comprada hoy" y debe
//     seguir distinguiéndose por caducidad del stock viejo del mismo artículo.
//   - delta < 0 (consumir): localiza los lotes crudos que casan con la fila y
//     descuenta una unidad del que caduca antes; si queda en cero se elimina de
//     la lista. Sin candidatos -> lista sin cambios (no-op, no es un error).
//   - delta == 0 -> lista sin cambios.
//
// Garantía: nunca produce un amount negativo ni deja residentes lotes en cero.
func Adjust(records []entity.IngredientBatch, row Row, delta int, today time.Time) []entity.IngredientBatch {
	switch {
	case delta > 0:
		return restock(records, row, today)
	case delta < 0:
		return consumeOne(records, row, today)
	}
	return records
}

// restock apila un lote nuevo de una unidad fechado hoy.
func restock(records []entity.IngredientBatch, row Row, today time.Time) []entity.IngredientBatch {
	shelfLife := row.ShelfLife
	if row.Storage == entity.StorageFreezer {
		shelfLife = entity.FreezerShelfLife
	} else if shelfLife <= 0 {
		shelfLife = entity.DefaultShelfLife
	}
	out := append([]entity.IngredientBatch(nil), records...)
	return append(out, entity.IngredientBatch{
		ID:           uuid.New().String(),
		Name:         row.Name,
		Amount:       one,
		Unit:         row.Unit,
		Storage:      row.Storage,
		PurchaseDate: today.Format(freshness.DateLayout),
		ShelfLife:    shelfLife,
	})
}

// consumeOne descuenta una unidad del candidato que caduca antes.
func consumeOne(records []entity.IngredientBatch, row Row, today time.Time) []entity.IngredientBatch {
	idx := -1
	best := 0
	for i, raw := range records {
		b := raw.Normalized()
		if !matchesRow(b, row) {
			continue
		}
		days := freshness.DaysLeft(b.PurchaseDate, b.ShelfLife, b.Storage, today)
		if idx == -1 || days < best {
			idx, best = i, days
		}
	}
	if idx == -1 {
		return records // nada que consumir
	}

	out := append([]entity.IngredientBatch(nil), records...)
	remaining := out[idx].Amount.Sub(one)
	if remaining.GreaterThan(decimal.Zero) {
		out[idx].Amount = remaining
		return out
	}
	return append(out[:idx], out[idx+1:]...)
}

// matchesRow decide si un lote crudo pertenece a la fila agregada:
// name/storage/unit siempre; para ubicaciones distintas de freezer también la
// caducidad exacta (en freezer todos los lotes del artículo son fungibles).
func matchesRow(b entity.IngredientBatch, row Row) bool {
	if b.Name != row.Name || b.Storage != row.Storage || b.Unit != row.Unit {
		return false
	}
	if b.Storage == entity.StorageFreezer {
		return true
	}
	return freshness.ExpiryDate(b.PurchaseDate, b.ShelfLife) == row.ExpiryDate
}
