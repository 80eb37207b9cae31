// Package pantry contiene el motor de inventario por lotes: agregación de la
// lista cruda en filas de presentación, libro de cantidades (reponer/consumir)
// y resolución de traslados entre ubicaciones. Todo el paquete opera sobre la
// lista cruda en memoria y devuelve listas nuevas (disciplina de actualización
// inmutable): el que llama decide cómo y dónde persistir.
package pantry

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/tu-usuario/nevera-pro/internal/domain/entity"
	"github.com/tu-usuario/nevera-pro/internal/domain/freshness"
)

// keySeparator separa los componentes de la clave de agrupación.
const keySeparator = "__"

// Row es una fila agregada derivada: agrupa lotes crudos por
// (name, storage, unit, caducidad) — para freezer la clave omite la caducidad,
// todo lote del mismo name+unit se funde en una sola fila. Es una vista de solo
// lectura, recalculada en cada consulta; nunca se escribe de vuelta a la lista cruda.
type Row struct {
	Key          string
	Name         string
	Unit         string
	Storage      entity.Storage
	Amount       decimal.Decimal // suma del grupo
	ExpiryDate   string          // "" para freezer y para fechas desconocidas
	PurchaseDate string          // del lote representante (el más urgente)
	ShelfLife    int
	DaysLeft     int
	Status       freshness.Status
}

// RowKey construye la clave de agrupación de una fila. La caducidad participa
// salvo en freezer (el congelador no rastrea caducidad por calendario).
func RowKey(name string, storage entity.Storage, unit, expiry string) string {
	if storage == entity.StorageFreezer {
		expiry = ""
	}
	return name + keySeparator + string(storage) + keySeparator + unit + keySeparator + expiry
}

// Aggregator deriva filas agregadas de la lista cruda. El collator hace la
// comparación de nombres sensible al locale para el orden del refrigerador.
type Aggregator struct {
	collator *collate.Collator
}

// NewAggregator construye el agregador con el locale indicado.
func NewAggregator(tag language.Tag) *Aggregator {
	return &Aggregator{collator: collate.New(tag)}
}

// Rows agrega la lista cruda completa, ordenada por ubicación
// (fridge, freezer, pantry, condiment) y dentro de cada una con su regla propia.
func (a *Aggregator) Rows(records []entity.IngredientBatch, today time.Time) []Row {
	var out []Row
	for _, storage := range []entity.Storage{
		entity.StorageFridge, entity.StorageFreezer, entity.StoragePantry, entity.StorageCondiment,
	} {
		out = append(out, a.RowsFor(records, storage, today)...)
	}
	return out
}

// RowsFor agrega los lotes de una sola ubicación.
//
// Orden de salida:
//   - fridge: nombre (locale) y caducidad ascendente como desempate — el uso
//     prioriza el barrido alfabético;
//   - freezer: solo nombre (no hay caducidad significativa);
//   - pantry/condiment: días restantes ascendente (urgencia primero).
func (a *Aggregator) RowsFor(records []entity.IngredientBatch, storage entity.Storage, today time.Time) []Row {
	groups := make(map[string]*Row)
	var order []string // orden de primera aparición, para una salida determinista antes del sort

	for _, raw := range records {
		b := raw.Normalized()
		if b.Storage != storage {
			continue
		}
		expiry := freshness.ExpiryDate(b.PurchaseDate, b.ShelfLife)
		days := freshness.DaysLeft(b.PurchaseDate, b.ShelfLife, b.Storage, today)
		key := RowKey(b.Name, b.Storage, b.Unit, expiry)

		row, ok := groups[key]
		if !ok {
			keyExpiry := expiry
			if b.Storage == entity.StorageFreezer {
				keyExpiry = ""
			}
			groups[key] = &Row{
				Key:          key,
				Name:         b.Name,
				Unit:         b.Unit,
				Storage:      b.Storage,
				Amount:       b.Amount,
				ExpiryDate:   keyExpiry,
				PurchaseDate: b.PurchaseDate,
				ShelfLife:    b.ShelfLife,
				DaysLeft:     days,
				Status:       freshness.StatusOf(days, b.Storage),
			}
			order = append(order, key)
			continue
		}

		row.Amount = row.Amount.Add(b.Amount)
		// El representante es el miembro más urgente (menos días restantes),
		// salvo en freezer: ahí se conserva la ShelfLife del primero visto
		// (el congelador nunca endurece la urgencia).
		if b.Storage != entity.StorageFreezer && days < row.DaysLeft {
			row.PurchaseDate = b.PurchaseDate
			row.ShelfLife = b.ShelfLife
			row.DaysLeft = days
			row.Status = freshness.StatusOf(days, b.Storage)
		}
	}

	rows := make([]Row, 0, len(groups))
	for _, key := range order {
		rows = append(rows, *groups[key])
	}
	a.sortRows(rows, storage)
	return rows
}

func (a *Aggregator) sortRows(rows []Row, storage entity.Storage) {
	switch storage {
	case entity.StorageFridge:
		sort.SliceStable(rows, func(i, j int) bool {
			if c := a.collator.CompareString(rows[i].Name, rows[j].Name); c != 0 {
				return c < 0
			}
			return rows[i].ExpiryDate < rows[j].ExpiryDate
		})
	case entity.StorageFreezer:
		sort.SliceStable(rows, func(i, j int) bool {
			return a.collator.CompareString(rows[i].Name, rows[j].Name) < 0
		})
	default:
		sort.SliceStable(rows, func(i, j int) bool {
			return rows[i].DaysLeft < rows[j].DaysLeft
		})
	}
}
