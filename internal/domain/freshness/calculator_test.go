package freshness_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/tu-usuario/nevera-pro/internal/domain/entity"
	"github.com/tu-usuario/nevera-pro/internal/domain/freshness"
)

// today fijo para que los tests no dependan del reloj.
var today = time.Date(2025, 3, 10, 15, 30, 0, 0, time.UTC)

func TestExpiryDate_SumaVidaUtil(t *testing.T) {
	assert.Equal(t, "2025-03-31", freshness.ExpiryDate("2025-03-10", 21))
	assert.Equal(t, "2025-03-10", freshness.ExpiryDate("2025-03-10", 0))
}

func TestExpiryDate_FechaImparseable(t *testing.T) {
	assert.Equal(t, "", freshness.ExpiryDate("", 7), "fecha vacía -> centinela vacío")
	assert.Equal(t, "", freshness.ExpiryDate("ayer", 7), "basura -> centinela vacío")
	assert.Equal(t, "", freshness.ExpiryDate("10/03/2025", 7), "formato ajeno -> centinela vacío")
}

func TestDaysLeft_CasosBasicos(t *testing.T) {
	// Comprado hace 10 días con 21 de vida útil: quedan 11.
	assert.Equal(t, 11, freshness.DaysLeft("2025-02-28", 21, entity.StorageFridge, today))
	// Caduca hoy.
	assert.Equal(t, 0, freshness.DaysLeft("2025-03-03", 7, entity.StorageFridge, today))
	// Ya caducado: negativo.
	assert.Equal(t, -3, freshness.DaysLeft("2025-02-28", 7, entity.StoragePantry, today))
	// Caduca mañana.
	assert.Equal(t, 1, freshness.DaysLeft("2025-03-04", 7, entity.StorageCondiment, today))
}

// El congelador es atemporal: el centinela se devuelve independientemente de la
// fecha de compra y la vida útil.
func TestDaysLeft_FreezerSiempreCentinela(t *testing.T) {
	for _, purchase := range []string{"2020-01-01", "2025-03-10", "", "basura"} {
		got := freshness.DaysLeft(purchase, 3, entity.StorageFreezer, today)
		assert.Equal(t, freshness.FreezerDaysLeft, got, "purchase=%q", purchase)
	}
}

func TestDaysLeft_FechaDesconocida(t *testing.T) {
	got := freshness.DaysLeft("", 7, entity.StorageFridge, today)
	assert.Equal(t, freshness.UnknownDaysLeft, got, "sin fecha no hay urgencia: va al final")
}

func TestStatusOf_Umbrales(t *testing.T) {
	assert.Equal(t, freshness.StatusExpiring, freshness.StatusOf(-5, entity.StorageFridge))
	assert.Equal(t, freshness.StatusExpiring, freshness.StatusOf(0, entity.StorageFridge))
	assert.Equal(t, freshness.StatusExpiring, freshness.StatusOf(1, entity.StorageFridge))
	assert.Equal(t, freshness.StatusWarning, freshness.StatusOf(2, entity.StorageFridge))
	assert.Equal(t, freshness.StatusWarning, freshness.StatusOf(3, entity.StoragePantry))
	assert.Equal(t, freshness.StatusFresh, freshness.StatusOf(4, entity.StoragePantry))
}

func TestStatusOf_FreezerSiempreFrozen(t *testing.T) {
	for _, days := range []int{-10, 0, 1, 3, freshness.FreezerDaysLeft} {
		assert.Equal(t, freshness.StatusFrozen, freshness.StatusOf(days, entity.StorageFreezer))
	}
}

func TestNormalizeStorage(t *testing.T) {
	assert.Equal(t, entity.StoragePantry, entity.NormalizeStorage("room"), "valor legado")
	assert.Equal(t, entity.StorageFridge, entity.NormalizeStorage("cueva"), "desconocido -> fridge")
	assert.Equal(t, entity.StorageFreezer, entity.NormalizeStorage("freezer"))
	assert.Equal(t, entity.StorageCondiment, entity.NormalizeStorage("condiment"))
}
