package pantry

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/nevera-pro/internal/domain"
	"github.com/tu-usuario/nevera-pro/internal/domain/entity"
	"github.com/tu-usuario/nevera-pro/internal/domain/freshness"
)

// frozenShelfLifeOffset sumando este valor a la vida útil base se obtiene el
// placeholder de ShelfLife de un lote recién congelado; la vista nunca lo lee
// para caducidad (freezer va por el centinela de freshness).
const frozenShelfLifeOffset = 9999

// thawedDaysLeft ventana fija de seguridad tras descongelar: el lote destino
// nace con exactamente estos días restantes, dé igual cuánto estuvo congelado.
const thawedDaysLeft = 2

// TransferState estado del resolutor de traslados.
type TransferState string

const (
	TransferIdle            TransferState = "idle"
	TransferPendingQuantity TransferState = "pending_quantity"
)

// Transfer orquesta un traslado entre ubicaciones: Idle -> PendingQuantity ->
// (aplicar) -> Idle, o cancelación de vuelta a Idle sin efectos. PendingQuantity
// es un punto de suspensión de cara al usuario: no hay timeout, los datos no se
// tocan hasta confirmar o cancelar.
type Transfer struct {
	state      TransferState
	row        Row
	dest       entity.Storage
	maxMovable decimal.Decimal
}

// NewTransfer crea el resolutor en Idle.
func NewTransfer() *Transfer {
	return &Transfer{state: TransferIdle}
}

// State estado actual.
func (t *Transfer) State() TransferState { return t.state }

// MaxMovable cantidad máxima trasladable del traslado pendiente (0 si no hay).
func (t *Transfer) MaxMovable() decimal.Decimal {
	if t.state != TransferPendingQuantity {
		return decimal.Zero
	}
	return t.maxMovable
}

// Begin abre un traslado de la fila origen hacia dest y pasa a PendingQuantity.
// Un destino fuera del enum o igual al origen aborta antes de transicionar
// (gesto malformado: ErrInvalidInput, el caller lo trata como no-op silencioso).
func (t *Transfer) Begin(row Row, dest entity.Storage) error {
	if !dest.Valid() || dest == row.Storage {
		return domain.ErrInvalidInput
	}
	t.state = TransferPendingQuantity
	t.row = row
	t.dest = dest
	t.maxMovable = row.Amount
	return nil
}

// Cancel vuelve a Idle sin efectos secundarios. Idempotente: cancelar en Idle
// es un no-op.
func (t *Transfer) Cancel() {
	t.state = TransferIdle
	t.row = Row{}
	t.dest = ""
	t.maxMovable = decimal.Zero
}

// Confirm aplica el traslado pendiente con la cantidad q y devuelve la lista
// resultante (nueva). Reglas:
//
//   - q fuera de [1, maxMovable] o no entero: ErrInvalidInput, la lista no
//     cambia y el traslado sigue pendiente (el consumidor puede reintentar o
//     cancelar).
//   - Fase de consumo: drena los lotes origen que casan con la fila, primero
//     el que caduca antes, hasta cubrir q o agotar candidatos. Lo realmente
//     drenado puede ser menor que q si los datos cambiaron por debajo: se
//     continúa con lo drenado, nunca se fabrica cantidad inexistente.
//   - Fase de creación (si se drenó algo): un lote nuevo en el destino con la
//     semántica de caducidad propia de la ubicación (ver buildDestination).
//   - Vuelve a Idle.
func (t *Transfer) Confirm(records []entity.IngredientBatch, q decimal.Decimal, today time.Time) ([]entity.IngredientBatch, error) {
	if t.state != TransferPendingQuantity {
		return records, domain.ErrNoTransferPending
	}
	if !q.IsInteger() || q.LessThan(one) || q.GreaterThan(t.maxMovable) {
		return records, domain.ErrInvalidInput
	}

	out, removed, source := drainSource(records, t.row, q, today)
	if removed.GreaterThan(decimal.Zero) {
		out = append(out, t.buildDestination(removed, source, today))
	}
	t.Cancel() // de vuelta a Idle; reutiliza la limpieza de campos
	return out, nil
}

// drainSource retira hasta q unidades de los lotes que casan con la fila,
// drenando primero el más urgente. Devuelve la lista resultante, lo retirado y
// el primer lote drenado (representante para la fase de creación; nil si nada).
func drainSource(records []entity.IngredientBatch, row Row, q decimal.Decimal, today time.Time) ([]entity.IngredientBatch, decimal.Decimal, *entity.IngredientBatch) {
	type candidate struct {
		idx  int
		days int
	}
	var candidates []candidate
	for i, raw := range records {
		b := raw.Normalized()
		if !matchesRow(b, row) {
			continue
		}
		candidates = append(candidates, candidate{
			idx:  i,
			days: freshness.DaysLeft(b.PurchaseDate, b.ShelfLife, b.Storage, today),
		})
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].days < candidates[j].days
	})

	out := append([]entity.IngredientBatch(nil), records...)
	removed := decimal.Zero
	var source *entity.IngredientBatch
	drained := make(map[int]bool) // índices a eliminar (lotes vaciados)

	for _, c := range candidates {
		if !removed.LessThan(q) {
			break
		}
		b := out[c.idx]
		if source == nil {
			rep := b
			source = &rep
		}
		take := decimal.Min(q.Sub(removed), b.Amount)
		removed = removed.Add(take)
		rest := b.Amount.Sub(take)
		if rest.GreaterThan(decimal.Zero) {
			out[c.idx].Amount = rest
		} else {
			drained[c.idx] = true
		}
	}

	if len(drained) > 0 {
		kept := out[:0]
		for i, b := range out {
			if !drained[i] {
				kept = append(kept, b)
			}
		}
		out = kept
	}
	return out, removed, source
}

// buildDestination crea el lote destino según la ubicación:
//
//   - freezer: fechado hoy, BaseShelfLife heredada del lote drenado y
//     ShelfLife = base + offset grande (placeholder; freezer nunca lo lee).
//   - fridge viniendo de freezer (descongelar): ShelfLife = vida útil base y
//     fecha de compra retro-datada para que hoy queden exactamente 2 días.
//   - resto (pantry/condiment, o fridge desde origen no congelado): copia
//     ShelfLife y fecha de compra del lote drenado (hoy si no hubo
//     representante); es un registro genuinamente nuevo, su clave de
//     agrupación cambia y no se re-funde con stock ajeno del destino salvo
//     coincidencia total.
func (t *Transfer) buildDestination(amount decimal.Decimal, source *entity.IngredientBatch, today time.Time) entity.IngredientBatch {
	dest := entity.IngredientBatch{
		ID:      uuid.New().String(),
		Name:    t.row.Name,
		Amount:  amount,
		Unit:    t.row.Unit,
		Storage: t.dest,
	}

	base := entity.DefaultShelfLife
	if source != nil {
		base = source.EffectiveBaseShelfLife()
	}

	switch {
	case t.dest == entity.StorageFreezer:
		dest.PurchaseDate = today.Format(freshness.DateLayout)
		dest.ShelfLife = base + frozenShelfLifeOffset
		b := base
		dest.BaseShelfLife = &b

	case t.dest == entity.StorageFridge && t.row.Storage == entity.StorageFreezer:
		// Descongelar: ventana corta fija, dé igual el tiempo congelado.
		dest.ShelfLife = base
		dest.PurchaseDate = today.AddDate(0, 0, thawedDaysLeft-base).Format(freshness.DateLayout)
		b := base
		dest.BaseShelfLife = &b

	default:
		dest.PurchaseDate = today.Format(freshness.DateLayout)
		dest.ShelfLife = entity.DefaultShelfLife
		if source != nil {
			dest.ShelfLife = source.ShelfLife
			if source.PurchaseDate != "" {
				dest.PurchaseDate = source.PurchaseDate
			}
			if source.BaseShelfLife != nil {
				b := *source.BaseShelfLife
				dest.BaseShelfLife = &b
			}
		}
	}
	return dest
}
