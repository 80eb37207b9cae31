package dto

import "github.com/shopspring/decimal"

// RowDTO fila agregada tal y como se muestra: lotes fundidos por
// (name, storage, unit, caducidad) con la suma de cantidades.
type RowDTO struct {
	Key          string          `json:"key"`
	Name         string          `json:"name"`
	Unit         string          `json:"unit"`
	Storage      string          `json:"storage"`
	Amount       decimal.Decimal `json:"amount"`
	ExpiryDate   string          `json:"expiry_date,omitempty"`
	PurchaseDate string          `json:"purchase_date,omitempty"`
	ShelfLife    int             `json:"shelf_life"`
	DaysLeft     int             `json:"days_left"`
	Status       string          `json:"status"`
}

// AdjustRequest body para POST /api/pantry/rows/adjust: identifica la fila
// agregada objetivo y el delta (+1 reponer / -1 consumir).
type AdjustRequest struct {
	Name       string `json:"name" validate:"required"`
	Unit       string `json:"unit"`
	Storage    string `json:"storage" validate:"required"`
	ExpiryDate string `json:"expiry_date"`
	ShelfLife  int    `json:"shelf_life"`
	Delta      int    `json:"delta" validate:"required"`
}

// CreateBatchRequest alta manual de un lote con cantidad y fecha explícitas.
type CreateBatchRequest struct {
	Name           string          `json:"name" validate:"required,min=1,max=200"`
	Amount         decimal.Decimal `json:"amount" validate:"required"`
	Unit           string          `json:"unit"`
	Storage        string          `json:"storage"`
	PurchaseDate   string          `json:"purchase_date"`
	ShelfLife      int             `json:"shelf_life"`
	SaveAsTemplate bool            `json:"save_as_template"` // además registra el artículo en el catálogo
}

// QuickAddRequest alta rápida desde el catálogo: un clic = un lote de 1 hoy.
type QuickAddRequest struct {
	Name string `json:"name" validate:"required"`
}

// TemplateDTO entrada del catálogo de alta rápida.
type TemplateDTO struct {
	Name      string `json:"name"`
	Unit      string `json:"unit"`
	ShelfLife int    `json:"shelf_life"`
	Storage   string `json:"storage"`
	Custom    bool   `json:"custom"`
}

// BeginTransferRequest abre un traslado: fila origen + ubicación destino.
type BeginTransferRequest struct {
	Name       string `json:"name" validate:"required"`
	Unit       string `json:"unit"`
	Storage    string `json:"storage" validate:"required"`
	ExpiryDate string `json:"expiry_date"`
	To         string `json:"to" validate:"required"`
}

// BeginTransferResponse respuesta al abrir: cantidad máxima trasladable.
type BeginTransferResponse struct {
	State      string          `json:"state"`
	MaxMovable decimal.Decimal `json:"max_movable"`
}

// ConfirmTransferRequest confirma el traslado pendiente con la cantidad elegida.
type ConfirmTransferRequest struct {
	Quantity decimal.Decimal `json:"quantity" validate:"required"`
}
