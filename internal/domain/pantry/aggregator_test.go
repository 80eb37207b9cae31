package pantry_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/tu-usuario/nevera-pro/internal/domain/entity"
	"github.com/tu-usuario/nevera-pro/internal/domain/freshness"
	"github.com/tu-usuario/nevera-pro/internal/domain/pantry"
)

var today = time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

func newAggregator() *pantry.Aggregator {
	return pantry.NewAggregator(language.Spanish)
}

func batch(name string, amount int64, unit string, storage entity.Storage, purchase string, shelfLife int) entity.IngredientBatch {
	return entity.IngredientBatch{
		ID:           name + "-" + purchase,
		Name:         name,
		Amount:       decimal.NewFromInt(amount),
		Unit:         unit,
		Storage:      storage,
		PurchaseDate: purchase,
		ShelfLife:    shelfLife,
	}
}

// Escenario de reposición del mismo día: dos lotes crudos de amount=1 se
// presentan como una sola fila con amount=2.
func TestRowsFor_MismoDiaSeFusiona(t *testing.T) {
	records := []entity.IngredientBatch{
		batch("Egg", 1, "piece", entity.StorageFridge, "2025-03-10", 21),
		batch("Egg", 1, "piece", entity.StorageFridge, "2025-03-10", 21),
	}
	rows := newAggregator().RowsFor(records, entity.StorageFridge, today)

	require.Len(t, rows, 1)
	assert.Equal(t, "Egg", rows[0].Name)
	assert.True(t, rows[0].Amount.Equal(decimal.NewFromInt(2)), "amount = %s", rows[0].Amount)
	assert.Equal(t, "2025-03-31", rows[0].ExpiryDate)
}

// Lotes del mismo artículo con caducidades distintas son filas distintas fuera
// del congelador.
func TestRowsFor_CaducidadDistintaNoSeFusiona(t *testing.T) {
	records := []entity.IngredientBatch{
		batch("Milk", 2, "box", entity.StorageFridge, "2025-03-07", 7),
		batch("Milk", 1, "box", entity.StorageFridge, "2025-03-10", 7),
	}
	rows := newAggregator().RowsFor(records, entity.StorageFridge, today)
	require.Len(t, rows, 2)
}

// En el congelador la clave omite la caducidad: todo lote del mismo name+unit
// se funde en una fila, y la ShelfLife del representante es la del primero visto.
func TestRowsFor_FreezerFusionaSinCaducidad(t *testing.T) {
	records := []entity.IngredientBatch{
		batch("Pork", 1, "g", entity.StorageFreezer, "2024-11-01", 30),
		batch("Pork", 3, "g", entity.StorageFreezer, "2025-03-01", 5),
	}
	rows := newAggregator().RowsFor(records, entity.StorageFreezer, today)

	require.Len(t, rows, 1)
	assert.True(t, rows[0].Amount.Equal(decimal.NewFromInt(4)))
	assert.Equal(t, "", rows[0].ExpiryDate, "freezer no lleva caducidad en la fila")
	assert.Equal(t, 30, rows[0].ShelfLife, "se conserva la ShelfLife del primero visto")
	assert.Equal(t, freshness.StatusFrozen, rows[0].Status)
	assert.Equal(t, freshness.FreezerDaysLeft, rows[0].DaysLeft)
}

// Unidades distintas nunca se fusionan aunque coincida todo lo demás.
func TestRowsFor_UnidadDistintaNoSeFusiona(t *testing.T) {
	records := []entity.IngredientBatch{
		batch("Rice", 500, "g", entity.StoragePantry, "2025-03-01", 180),
		batch("Rice", 1, "bag", entity.StoragePantry, "2025-03-01", 180),
	}
	rows := newAggregator().RowsFor(records, entity.StoragePantry, today)
	require.Len(t, rows, 2)
}

// Compra vieja + vida larga y compra nueva + vida corta con la misma caducidad
// caen en la misma fila y comparten urgencia.
func TestRowsFor_MismaCaducidadMismaFila(t *testing.T) {
	records := []entity.IngredientBatch{
		batch("Yogurt", 1, "piece", entity.StorageFridge, "2025-03-08", 7),
		batch("Yogurt", 1, "piece", entity.StorageFridge, "2025-03-10", 5),
	}
	rows := newAggregator().RowsFor(records, entity.StorageFridge, today)

	require.Len(t, rows, 1)
	assert.Equal(t, 5, rows[0].DaysLeft)
	assert.True(t, rows[0].Amount.Equal(decimal.NewFromInt(2)))
}

// Fechas imparseables agrupan entre sí (caducidad vacía = su propio cubo).
func TestRowsFor_FechaDesconocidaAgrupaJunta(t *testing.T) {
	records := []entity.IngredientBatch{
		batch("Salt", 1, "g", entity.StorageCondiment, "", 0),
		batch("Salt", 2, "g", entity.StorageCondiment, "no-es-fecha", 0),
		batch("Salt", 1, "g", entity.StorageCondiment, "2025-03-01", 0),
	}
	rows := newAggregator().RowsFor(records, entity.StorageCondiment, today)

	require.Len(t, rows, 2)
	var unknown *pantry.Row
	for i := range rows {
		if rows[i].ExpiryDate == "" {
			unknown = &rows[i]
		}
	}
	require.NotNil(t, unknown, "debe existir el cubo de fecha desconocida")
	assert.True(t, unknown.Amount.Equal(decimal.NewFromInt(3)))
}

// El valor legado "room" se normaliza a pantry antes de agrupar.
func TestRowsFor_RoomLegadoEsPantry(t *testing.T) {
	records := []entity.IngredientBatch{
		batch("Onion", 2, "piece", entity.Storage("room"), "2025-03-01", 14),
		batch("Onion", 1, "piece", entity.StoragePantry, "2025-03-01", 14),
	}
	rows := newAggregator().RowsFor(records, entity.StoragePantry, today)

	require.Len(t, rows, 1)
	assert.True(t, rows[0].Amount.Equal(decimal.NewFromInt(3)))
}

// fridge ordena por nombre (locale) y caducidad ascendente como desempate.
func TestRowsFor_OrdenFridge(t *testing.T) {
	records := []entity.IngredientBatch{
		batch("Milk", 1, "box", entity.StorageFridge, "2025-03-09", 7),
		batch("Egg", 1, "piece", entity.StorageFridge, "2025-03-10", 21),
		batch("Milk", 1, "box", entity.StorageFridge, "2025-03-05", 7),
	}
	rows := newAggregator().RowsFor(records, entity.StorageFridge, today)

	require.Len(t, rows, 3)
	assert.Equal(t, "Egg", rows[0].Name)
	assert.Equal(t, "Milk", rows[1].Name)
	assert.Equal(t, "2025-03-12", rows[1].ExpiryDate, "entre Milks, caducidad ascendente")
	assert.Equal(t, "2025-03-16", rows[2].ExpiryDate)
}

// pantry/condiment ordenan por urgencia (días restantes ascendente).
func TestRowsFor_OrdenPantryPorUrgencia(t *testing.T) {
	records := []entity.IngredientBatch{
		batch("Potato", 1, "piece", entity.StoragePantry, "2025-02-20", 30),
		batch("Bread", 1, "piece", entity.StoragePantry, "2025-03-09", 3),
	}
	rows := newAggregator().RowsFor(records, entity.StoragePantry, today)

	require.Len(t, rows, 2)
	assert.Equal(t, "Bread", rows[0].Name, "el que caduca antes va primero")
}

// Propiedad: agregar dos veces la misma lista da el mismo resultado
// (la agregación es una lectura pura, sin estado).
func TestRows_Idempotente(t *testing.T) {
	records := []entity.IngredientBatch{
		batch("Egg", 1, "piece", entity.StorageFridge, "2025-03-10", 21),
		batch("Pork", 2, "g", entity.StorageFreezer, "2025-01-01", 30),
		batch("Salt", 1, "g", entity.StorageCondiment, "", 0),
	}
	agg := newAggregator()

	first := agg.Rows(records, today)
	second := agg.Rows(records, today)
	assert.Equal(t, first, second)
}

// La agregación nunca muta la lista cruda.
func TestRows_NoMutaLaListaCruda(t *testing.T) {
	records := []entity.IngredientBatch{
		batch("Onion", 2, "piece", entity.Storage("room"), "2025-03-01", 0),
	}
	_ = newAggregator().Rows(records, today)

	assert.Equal(t, entity.Storage("room"), records[0].Storage, "la normalización no se escribe de vuelta")
	assert.Equal(t, 0, records[0].ShelfLife)
}
