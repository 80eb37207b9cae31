package entity

import "github.com/shopspring/decimal"

// Storage ubicación física de un lote. Conjunto cerrado: cualquier valor
// desconocido se normaliza a fridge; el valor legado "room" se normaliza a pantry.
type Storage string

const (
	StorageFridge    Storage = "fridge"    // refrigerador
	StorageFreezer   Storage = "freezer"   // congelador
	StoragePantry    Storage = "pantry"    // despensa / temperatura ambiente
	StorageCondiment Storage = "condiment" // condimentos
)

// storageRoomLegacy valor antiguo que la app web guardaba para "temperatura ambiente".
const storageRoomLegacy = "room"

// DefaultShelfLife vida útil por defecto (días) cuando el dato viene vacío o inválido.
const DefaultShelfLife = 7

// FreezerShelfLife valor de vida útil asignado a lotes nuevos en congelador:
// codifica "no caduca por fecha"; el cálculo de frescura nunca lo lee para freezer.
const FreezerShelfLife = 9999

// NormalizeStorage aplica el enum cerrado: room -> pantry, desconocido -> fridge.
func NormalizeStorage(s string) Storage {
	switch Storage(s) {
	case StorageFridge, StorageFreezer, StoragePantry, StorageCondiment:
		return Storage(s)
	}
	if s == storageRoomLegacy {
		return StoragePantry
	}
	return StorageFridge
}

// Valid indica si el valor pertenece al enum cerrado (sin normalizar).
func (s Storage) Valid() bool {
	switch s {
	case StorageFridge, StorageFreezer, StoragePantry, StorageCondiment:
		return true
	}
	return false
}

// IngredientBatch es la unidad cruda persistida: una compra/entrada concreta con
// su propia fecha y vida útil. Dos lotes pueden compartir todos los campos
// (compras separadas); nunca se fusionan en la lista cruda, solo en la vista agregada.
type IngredientBatch struct {
	ID            string
	Name          string
	Amount        decimal.Decimal // > 0 siempre; un lote en cero se elimina, no se conserva
	Unit          string          // "piece", "g", "ml", ... participa en la identidad
	Storage       Storage
	PurchaseDate  string // "2006-01-02"; puede venir vacío o malformado desde fuentes externas
	ShelfLife     int    // días; para freezer es solo informativo
	BaseShelfLife *int   // vida útil a temperatura de nevera antes de congelar (opcional)
}

// Normalized devuelve una copia con los defaults defensivos aplicados:
// storage dentro del enum, shelfLife > 0 (default 7). Se aplica una sola vez
// en la frontera (al cargar) para que los invariantes internos se cumplan siempre.
func (b IngredientBatch) Normalized() IngredientBatch {
	b.Storage = NormalizeStorage(string(b.Storage))
	if b.ShelfLife <= 0 {
		b.ShelfLife = DefaultShelfLife
	}
	return b
}

// NormalizeBatches normaliza toda la lista (copia nueva, no muta la entrada).
func NormalizeBatches(list []IngredientBatch) []IngredientBatch {
	out := make([]IngredientBatch, 0, len(list))
	for _, b := range list {
		out = append(out, b.Normalized())
	}
	return out
}

// EffectiveBaseShelfLife vida útil base para congelar/descongelar:
// BaseShelfLife si existe, si no la ShelfLife propia, si no el default.
func (b IngredientBatch) EffectiveBaseShelfLife() int {
	if b.BaseShelfLife != nil && *b.BaseShelfLife > 0 {
		return *b.BaseShelfLife
	}
	if b.ShelfLife > 0 && b.ShelfLife < FreezerShelfLife {
		return b.ShelfLife
	}
	return DefaultShelfLife
}
