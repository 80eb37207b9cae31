package pantry_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/nevera-pro/internal/domain/entity"
	"github.com/tu-usuario/nevera-pro/internal/domain/pantry"
)

// rowFor agrega y devuelve la única fila de la ubicación (falla si no hay exactamente una).
func rowFor(t *testing.T, records []entity.IngredientBatch, storage entity.Storage) pantry.Row {
	t.Helper()
	rows := newAggregator().RowsFor(records, storage, today)
	require.Len(t, rows, 1)
	return rows[0]
}

// Escenario de reposición: desde lista vacía, dos "+1" del mismo día producen
// dos lotes crudos de amount=1 (no uno de amount=2) que agregan a una fila de 2.
func TestAdjust_ReponerApilaLotes(t *testing.T) {
	row := pantry.Row{
		Name: "Egg", Unit: "piece", Storage: entity.StorageFridge, ShelfLife: 21,
	}

	var records []entity.IngredientBatch
	records = pantry.Adjust(records, row, +1, today)
	records = pantry.Adjust(records, row, +1, today)

	require.Len(t, records, 2, "cada + es un lote propio, distinguible por fecha")
	for _, b := range records {
		assert.True(t, b.Amount.Equal(decimal.NewFromInt(1)))
		assert.Equal(t, "2025-03-10", b.PurchaseDate)
		assert.Equal(t, 21, b.ShelfLife)
		assert.NotEmpty(t, b.ID)
	}
	assert.NotEqual(t, records[0].ID, records[1].ID)

	agg := rowFor(t, records, entity.StorageFridge)
	assert.True(t, agg.Amount.Equal(decimal.NewFromInt(2)))
}

// Reponer en congelador codifica "no caduca": ShelfLife centinela.
func TestAdjust_ReponerEnFreezer(t *testing.T) {
	row := pantry.Row{
		Name: "Pork", Unit: "g", Storage: entity.StorageFreezer, ShelfLife: 30,
	}
	records := pantry.Adjust(nil, row, +1, today)

	require.Len(t, records, 1)
	assert.Equal(t, entity.FreezerShelfLife, records[0].ShelfLife)
}

// Escenario de consumo parcial: un lote de 3 baja a 2; agotar el resto elimina
// el lote de la lista (nunca queda amount <= 0 residente).
func TestAdjust_ConsumoParcialYAgotamiento(t *testing.T) {
	records := []entity.IngredientBatch{
		batch("Egg", 3, "piece", entity.StorageFridge, "2025-02-28", 21),
	}
	row := rowFor(t, records, entity.StorageFridge)

	records = pantry.Adjust(records, row, -1, today)
	require.Len(t, records, 1)
	assert.True(t, records[0].Amount.Equal(decimal.NewFromInt(2)))

	// Consumir 3 más cuando solo quedan 2: las dos primeras agotan el lote,
	// la tercera es un no-op (sin candidatos).
	for i := 0; i < 3; i++ {
		row = pantry.Row{
			Name: "Egg", Unit: "piece", Storage: entity.StorageFridge,
			ExpiryDate: "2025-03-21", ShelfLife: 21,
		}
		records = pantry.Adjust(records, row, -1, today)
	}
	assert.Empty(t, records, "sin lotes Egg; jamás amount=-1")
}

// En freezer los lotes del artículo son fungibles (la fila casa con todos);
// el descuento agota el primero y lo retira de la lista.
func TestAdjust_ConsumeEnFreezer(t *testing.T) {
	records := []entity.IngredientBatch{
		batch("Pork", 1, "g", entity.StorageFreezer, "2024-12-01", 30),
		batch("Pork", 2, "g", entity.StorageFreezer, "2025-03-01", 30),
	}
	row := rowFor(t, records, entity.StorageFreezer)

	records = pantry.Adjust(records, row, -1, today)

	require.Len(t, records, 1, "el lote agotado se elimina, no queda en cero")
	assert.Equal(t, "2025-03-01", records[0].PurchaseDate)
	assert.True(t, records[0].Amount.Equal(decimal.NewFromInt(2)))
}

// Sin candidatos que casen, la lista vuelve intacta (no-op, no error).
func TestAdjust_SinCandidatosEsNoOp(t *testing.T) {
	records := []entity.IngredientBatch{
		batch("Egg", 2, "piece", entity.StorageFridge, "2025-03-01", 21),
	}
	row := pantry.Row{
		Name: "Egg", Unit: "piece", Storage: entity.StoragePantry, // otra ubicación
		ExpiryDate: "2025-03-22", ShelfLife: 21,
	}
	out := pantry.Adjust(records, row, -1, today)
	assert.Equal(t, records, out)
}

// La caducidad de la fila discrimina: consumir una fila no toca lotes del mismo
// artículo con otra caducidad.
func TestAdjust_RespetaLaCaducidadDeLaFila(t *testing.T) {
	records := []entity.IngredientBatch{
		batch("Milk", 2, "box", entity.StorageFridge, "2025-03-06", 7),  // caduca 03-13
		batch("Milk", 1, "box", entity.StorageFridge, "2025-03-10", 7), // caduca 03-17
	}
	row := pantry.Row{
		Name: "Milk", Unit: "box", Storage: entity.StorageFridge,
		ExpiryDate: "2025-03-17", ShelfLife: 7,
	}
	records = pantry.Adjust(records, row, -1, today)

	require.Len(t, records, 1)
	assert.Equal(t, "2025-03-06", records[0].PurchaseDate, "el lote de la otra fila queda intacto")
	assert.True(t, records[0].Amount.Equal(decimal.NewFromInt(2)))
}

// Adjust devuelve una lista nueva: la de entrada no se muta.
func TestAdjust_NoMutaLaEntrada(t *testing.T) {
	records := []entity.IngredientBatch{
		batch("Egg", 3, "piece", entity.StorageFridge, "2025-02-28", 21),
	}
	row := rowFor(t, records, entity.StorageFridge)

	_ = pantry.Adjust(records, row, -1, today)
	assert.True(t, records[0].Amount.Equal(decimal.NewFromInt(3)))
}
