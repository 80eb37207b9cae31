// Package freshness implementa el cálculo puro de caducidad y frescura de un
// lote: (fecha de compra, vida útil, ubicación) -> días restantes y clasificación.
// Todas las funciones reciben "today" explícito: sin reloj oculto, mismo input
// mismo output (servicio de dominio, hoja de dependencias del motor).
package freshness

import (
	"time"

	"github.com/tu-usuario/nevera-pro/internal/domain/entity"
)

// DateLayout formato de fecha calendario sin componente horario.
const DateLayout = "2006-01-02"

// FreezerDaysLeft centinela "no caduca nunca": lo devuelve DaysLeft para todo
// lote en congelador, independiente de fecha de compra y vida útil.
const FreezerDaysLeft = 99999

// UnknownDaysLeft centinela para fechas de compra vacías o imparseables:
// el lote no puede ordenarse por urgencia, así que queda al final y se
// clasifica como fresco (el dato viene de fuentes externas poco validadas).
const UnknownDaysLeft = 99999

// Status clasificación de frescura; gobierna color y desempates de orden.
type Status string

const (
	StatusFresh    Status = "fresh"    // más de 3 días
	StatusWarning  Status = "warning"  // 3 días o menos
	StatusExpiring Status = "expiring" // caduca hoy/mañana o ya caducó
	StatusFrozen   Status = "frozen"   // congelador, siempre
)

// ExpiryDate fecha de caducidad: compra + vida útil en días.
// Devuelve "" si la fecha de compra está vacía o no parsea (centinela:
// los lotes de fecha desconocida forman su propio grupo en la agregación).
func ExpiryDate(purchaseDate string, shelfLife int) string {
	d, err := time.Parse(DateLayout, purchaseDate)
	if err != nil {
		return ""
	}
	return d.AddDate(0, 0, shelfLife).Format(DateLayout)
}

// DaysLeft días hasta la caducidad respecto de today (truncado a fecha civil).
// freezer -> FreezerDaysLeft siempre. Para el resto: negativo = ya caducó,
// cero = caduca hoy, positivo = días restantes (equivale a
// ceil((caducidad - hoy) / 1 día) sobre fechas sin hora).
func DaysLeft(purchaseDate string, shelfLife int, storage entity.Storage, today time.Time) int {
	if storage == entity.StorageFreezer {
		return FreezerDaysLeft
	}
	purchase, err := time.Parse(DateLayout, purchaseDate)
	if err != nil {
		return UnknownDaysLeft
	}
	expiry := purchase.AddDate(0, 0, shelfLife)
	day := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	return int(expiry.Sub(day).Hours() / 24)
}

// StatusOf clasifica los días restantes. freezer siempre es frozen;
// para el resto: <= 1 expiring, <= 3 warning, si no fresh.
func StatusOf(daysLeft int, storage entity.Storage) Status {
	if storage == entity.StorageFreezer {
		return StatusFrozen
	}
	if daysLeft <= 1 {
		return StatusExpiring
	}
	if daysLeft <= 3 {
		return StatusWarning
	}
	return StatusFresh
}
