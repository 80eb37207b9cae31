package pantry

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/nevera-pro/internal/application/dto"
	"github.com/tu-usuario/nevera-pro/internal/domain"
	"github.com/tu-usuario/nevera-pro/internal/domain/entity"
	"github.com/tu-usuario/nevera-pro/internal/domain/freshness"
	dompantry "github.com/tu-usuario/nevera-pro/internal/domain/pantry"
	"github.com/tu-usuario/nevera-pro/internal/domain/repository"
)

// Clock inyección del reloj ("hoy"); en producción time.Now.
type Clock func() time.Time

// UseCase orquesta el motor de inventario por usuario: carga la lista cruda,
// aplica la mutación pura y guarda la lista resultante. Modelo de un solo
// escritor por inventario; el estado del traslado pendiente vive aquí hasta
// confirmar o cancelar (sin timeout).
type UseCase struct {
	batches   repository.BatchRepository
	templates repository.TemplateRepository
	agg       *dompantry.Aggregator
	now       Clock

	mu        sync.Mutex
	transfers map[string]*dompantry.Transfer // por usuario
}

// NewUseCase construye el caso de uso.
func NewUseCase(batches repository.BatchRepository, templates repository.TemplateRepository, agg *dompantry.Aggregator, now Clock) *UseCase {
	if now == nil {
		now = time.Now
	}
	return &UseCase{
		batches:   batches,
		templates: templates,
		agg:       agg,
		now:       now,
		transfers: make(map[string]*dompantry.Transfer),
	}
}

// ListRows devuelve las filas agregadas del usuario; storage vacío = todas las
// ubicaciones, cualquier otro valor se normaliza al enum cerrado.
func (uc *UseCase) ListRows(ctx context.Context, userID, storage string) ([]dto.RowDTO, error) {
	records, err := uc.batches.Load(ctx, userID)
	if err != nil {
		return nil, err
	}
	today := uc.now()

	var rows []dompantry.Row
	if storage == "" {
		rows = uc.agg.Rows(records, today)
	} else {
		rows = uc.agg.RowsFor(records, entity.NormalizeStorage(storage), today)
	}

	out := make([]dto.RowDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, toRowDTO(r))
	}
	return out, nil
}

// Adjust aplica +1/-1 sobre una fila agregada y persiste la lista resultante.
func (uc *UseCase) Adjust(ctx context.Context, userID string, in dto.AdjustRequest) error {
	if in.Name == "" || in.Delta == 0 {
		return domain.ErrInvalidInput
	}
	records, err := uc.batches.Load(ctx, userID)
	if err != nil {
		return err
	}
	row := rowFromRequest(in.Name, in.Unit, in.Storage, in.ExpiryDate, in.ShelfLife)
	updated := dompantry.Adjust(records, row, in.Delta, uc.now())
	return uc.batches.Save(ctx, userID, updated)
}

// AddBatch alta manual: crea un lote con cantidad y fecha explícitas y,
// opcionalmente, registra el artículo como template personalizado.
func (uc *UseCase) AddBatch(ctx context.Context, userID string, in dto.CreateBatchRequest) error {
	if in.Name == "" || !in.Amount.GreaterThan(decimal.Zero) {
		return domain.ErrInvalidInput
	}
	today := uc.now()
	b := entity.IngredientBatch{
		ID:           uuid.New().String(),
		Name:         in.Name,
		Amount:       in.Amount,
		Unit:         in.Unit,
		Storage:      entity.NormalizeStorage(in.Storage),
		PurchaseDate: in.PurchaseDate,
		ShelfLife:    in.ShelfLife,
	}
	if b.PurchaseDate == "" {
		b.PurchaseDate = today.Format(freshness.DateLayout)
	}
	b = b.Normalized()

	records, err := uc.batches.Load(ctx, userID)
	if err != nil {
		return err
	}
	if err := uc.batches.Save(ctx, userID, append(records, b)); err != nil {
		return err
	}

	if in.SaveAsTemplate {
		tpl := entity.Template{
			Name: b.Name, Unit: b.Unit, ShelfLife: b.ShelfLife, Storage: b.Storage, Custom: true,
		}
		if err := uc.templates.Upsert(ctx, userID, tpl); err != nil {
			return err
		}
	}
	return nil
}

// QuickAdd clic en el catálogo: un lote de amount=1 fechado hoy con los
// valores del template (personalizado pisa al integrado).
func (uc *UseCase) QuickAdd(ctx context.Context, userID, name string) error {
	if name == "" {
		return domain.ErrInvalidInput
	}
	tpl, err := uc.findTemplate(ctx, userID, name)
	if err != nil {
		return err
	}
	records, err := uc.batches.Load(ctx, userID)
	if err != nil {
		return err
	}
	row := dompantry.Row{
		Name:      tpl.Name,
		Unit:      tpl.Unit,
		Storage:   entity.NormalizeStorage(string(tpl.Storage)),
		ShelfLife: tpl.ShelfLife,
	}
	updated := dompantry.Adjust(records, row, +1, uc.now())
	return uc.batches.Save(ctx, userID, updated)
}

// Templates catálogo combinado: integrados + personalizados (el nombre
// desempata a favor del personalizado), ordenado por nombre.
func (uc *UseCase) Templates(ctx context.Context, userID string) ([]dto.TemplateDTO, error) {
	merged := make(map[string]entity.Template)
	for _, tpl := range entity.BuiltinTemplates() {
		merged[tpl.Name] = tpl
	}
	custom, err := uc.templates.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	for _, tpl := range custom {
		tpl.Custom = true
		merged[tpl.Name] = tpl
	}

	out := make([]dto.TemplateDTO, 0, len(merged))
	for _, tpl := range merged {
		out = append(out, dto.TemplateDTO{
			Name:      tpl.Name,
			Unit:      tpl.Unit,
			ShelfLife: tpl.ShelfLife,
			Storage:   string(entity.NormalizeStorage(string(tpl.Storage))),
			Custom:    tpl.Custom,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// RemoveTemplate quita un template personalizado del catálogo (los integrados
// no se tocan; el stock ya creado tampoco).
func (uc *UseCase) RemoveTemplate(ctx context.Context, userID, name string) error {
	if name == "" {
		return domain.ErrInvalidInput
	}
	return uc.templates.Delete(ctx, userID, name)
}

// ClearAll vacía el inventario del usuario.
func (uc *UseCase) ClearAll(ctx context.Context, userID string) error {
	return uc.batches.Save(ctx, userID, nil)
}

// BeginTransfer abre un traslado de la fila indicada hacia dest y devuelve la
// cantidad máxima trasladable. La fila se rebusca en los datos actuales (no se
// confía en cantidades que envíe el cliente).
func (uc *UseCase) BeginTransfer(ctx context.Context, userID string, in dto.BeginTransferRequest) (*dto.BeginTransferResponse, error) {
	records, err := uc.batches.Load(ctx, userID)
	if err != nil {
		return nil, err
	}
	source := entity.NormalizeStorage(in.Storage)
	key := dompantry.RowKey(in.Name, source, in.Unit, in.ExpiryDate)

	var row *dompantry.Row
	for _, r := range uc.agg.RowsFor(records, source, uc.now()) {
		if r.Key == key {
			rr := r
			row = &rr
			break
		}
	}
	if row == nil {
		return nil, domain.ErrNotFound
	}

	tr := uc.transferFor(userID)
	if err := tr.Begin(*row, entity.Storage(in.To)); err != nil {
		return nil, err
	}
	return &dto.BeginTransferResponse{
		State:      string(tr.State()),
		MaxMovable: tr.MaxMovable(),
	}, nil
}

// ConfirmTransfer aplica el traslado pendiente con la cantidad elegida y
// persiste el resultado. Una cantidad inválida deja el traslado pendiente.
func (uc *UseCase) ConfirmTransfer(ctx context.Context, userID string, quantity decimal.Decimal) error {
	records, err := uc.batches.Load(ctx, userID)
	if err != nil {
		return err
	}
	updated, err := uc.transferFor(userID).Confirm(records, quantity, uc.now())
	if err != nil {
		return err
	}
	return uc.batches.Save(ctx, userID, updated)
}

// CancelTransfer cancela el traslado pendiente; idempotente y sin efectos.
func (uc *UseCase) CancelTransfer(userID string) {
	uc.transferFor(userID).Cancel()
}

// TransferState estado del resolutor del usuario (para la UI).
func (uc *UseCase) TransferState(userID string) string {
	return string(uc.transferFor(userID).State())
}

func (uc *UseCase) transferFor(userID string) *dompantry.Transfer {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	tr, ok := uc.transfers[userID]
	if !ok {
		tr = dompantry.NewTransfer()
		uc.transfers[userID] = tr
	}
	return tr
}

func (uc *UseCase) findTemplate(ctx context.Context, userID, name string) (*entity.Template, error) {
	custom, err := uc.templates.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	for i := range custom {
		if custom[i].Name == name {
			return &custom[i], nil
		}
	}
	for _, tpl := range entity.BuiltinTemplates() {
		if tpl.Name == name {
			return &tpl, nil
		}
	}
	return nil, domain.ErrNotFound
}

// rowFromRequest reconstruye la identidad de la fila objetivo desde el request.
func rowFromRequest(name, unit, storage, expiry string, shelfLife int) dompantry.Row {
	st := entity.NormalizeStorage(storage)
	if st == entity.StorageFreezer {
		expiry = ""
	}
	return dompantry.Row{
		Key:        dompantry.RowKey(name, st, unit, expiry),
		Name:       name,
		Unit:       unit,
		Storage:    st,
		ExpiryDate: expiry,
		ShelfLife:  shelfLife,
	}
}

func toRowDTO(r dompantry.Row) dto.RowDTO {
	return dto.RowDTO{
		Key:          r.Key,
		Name:         r.Name,
		Unit:         r.Unit,
		Storage:      string(r.Storage),
		Amount:       r.Amount,
		ExpiryDate:   r.ExpiryDate,
		PurchaseDate: r.PurchaseDate,
		ShelfLife:    r.ShelfLife,
		DaysLeft:     r.DaysLeft,
		Status:       string(r.Status),
	}
}
