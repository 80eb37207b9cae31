package pantry_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/tu-usuario/nevera-pro/internal/application/dto"
	apppantry "github.com/tu-usuario/nevera-pro/internal/application/pantry"
	"github.com/tu-usuario/nevera-pro/internal/domain"
	"github.com/tu-usuario/nevera-pro/internal/domain/entity"
	dompantry "github.com/tu-usuario/nevera-pro/internal/domain/pantry"
)

const testUser = "00000000-0000-0000-0000-000000000001"

var fixedToday = time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

// memBatchRepo repositorio de lotes en memoria (reemplaza a PostgreSQL en tests).
type memBatchRepo struct {
	data map[string][]entity.IngredientBatch
}

func newMemBatchRepo() *memBatchRepo {
	return &memBatchRepo{data: make(map[string][]entity.IngredientBatch)}
}

func (r *memBatchRepo) Load(_ context.Context, userID string) ([]entity.IngredientBatch, error) {
	return append([]entity.IngredientBatch(nil), r.data[userID]...), nil
}

func (r *memBatchRepo) Save(_ context.Context, userID string, records []entity.IngredientBatch) error {
	r.data[userID] = append([]entity.IngredientBatch(nil), records...)
	return nil
}

// memTemplateRepo catálogo personalizado en memoria.
type memTemplateRepo struct {
	data map[string][]entity.Template
}

func newMemTemplateRepo() *memTemplateRepo {
	return &memTemplateRepo{data: make(map[string][]entity.Template)}
}

func (r *memTemplateRepo) ListByUser(_ context.Context, userID string) ([]entity.Template, error) {
	return append([]entity.Template(nil), r.data[userID]...), nil
}

func (r *memTemplateRepo) Upsert(_ context.Context, userID string, tpl entity.Template) error {
	list := r.data[userID]
	for i := range list {
		if list[i].Name == tpl.Name {
			list[i] = tpl
			return nil
		}
	}
	r.data[userID] = append(list, tpl)
	return nil
}

func (r *memTemplateRepo) Delete(_ context.Context, userID, name string) error {
	list := r.data[userID]
	for i := range list {
		if list[i].Name == name {
			r.data[userID] = append(list[:i], list[i+1:]...)
			return nil
		}
	}
	return nil
}

func newUseCase(t *testing.T) (*apppantry.UseCase, *memBatchRepo) {
	t.Helper()
	repo := newMemBatchRepo()
	uc := apppantry.NewUseCase(
		repo,
		newMemTemplateRepo(),
		dompantry.NewAggregator(language.Spanish),
		func() time.Time { return fixedToday },
	)
	return uc, repo
}

// Flujo de alta rápida: dos clics en el template Egg producen dos lotes crudos
// y una sola fila agregada con amount=2.
func TestQuickAdd_DosClicsUnaFila(t *testing.T) {
	uc, repo := newUseCase(t)
	ctx := context.Background()

	require.NoError(t, uc.QuickAdd(ctx, testUser, "Egg"))
	require.NoError(t, uc.QuickAdd(ctx, testUser, "Egg"))

	raw, _ := repo.Load(ctx, testUser)
	assert.Len(t, raw, 2)

	rows, err := uc.ListRows(ctx, testUser, "fridge")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.True(t, rows[0].Amount.Equal(decimal.NewFromInt(2)))
	assert.Equal(t, 21, rows[0].ShelfLife, "valores del template integrado")
}

func TestQuickAdd_TemplateInexistente(t *testing.T) {
	uc, _ := newUseCase(t)
	err := uc.QuickAdd(context.Background(), testUser, "Unicorn")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// El alta manual con save_as_template añade el artículo al catálogo y el
// personalizado pisa al integrado del mismo nombre.
func TestAddBatch_RegistraTemplatePersonalizado(t *testing.T) {
	uc, _ := newUseCase(t)
	ctx := context.Background()

	err := uc.AddBatch(ctx, testUser, dto.CreateBatchRequest{
		Name:           "Milk",
		Amount:         decimal.NewFromInt(2),
		Unit:           "bottle",
		Storage:        "fridge",
		ShelfLife:      10,
		SaveAsTemplate: true,
	})
	require.NoError(t, err)

	tpls, err := uc.Templates(ctx, testUser)
	require.NoError(t, err)
	var milk *dto.TemplateDTO
	for i := range tpls {
		if tpls[i].Name == "Milk" {
			milk = &tpls[i]
		}
	}
	require.NotNil(t, milk)
	assert.True(t, milk.Custom)
	assert.Equal(t, "bottle", milk.Unit, "el personalizado pisa al integrado")
	assert.Equal(t, 10, milk.ShelfLife)
}

func TestAddBatch_Invalido(t *testing.T) {
	uc, _ := newUseCase(t)
	ctx := context.Background()

	err := uc.AddBatch(ctx, testUser, dto.CreateBatchRequest{Name: "", Amount: decimal.NewFromInt(1)})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	err = uc.AddBatch(ctx, testUser, dto.CreateBatchRequest{Name: "Rice", Amount: decimal.Zero})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "amount debe ser > 0")
}

// Adjust de consumo contra la fila persistida.
func TestAdjust_ConsumePersistido(t *testing.T) {
	uc, repo := newUseCase(t)
	ctx := context.Background()
	require.NoError(t, uc.QuickAdd(ctx, testUser, "Egg"))

	rows, err := uc.ListRows(ctx, testUser, "fridge")
	require.NoError(t, err)
	require.Len(t, rows, 1)

	err = uc.Adjust(ctx, testUser, dto.AdjustRequest{
		Name:       rows[0].Name,
		Unit:       rows[0].Unit,
		Storage:    rows[0].Storage,
		ExpiryDate: rows[0].ExpiryDate,
		ShelfLife:  rows[0].ShelfLife,
		Delta:      -1,
	})
	require.NoError(t, err)

	raw, _ := repo.Load(ctx, testUser)
	assert.Empty(t, raw, "el lote agotado desaparece de la persistencia")
}

// Ciclo completo de traslado sobre la persistencia: begin -> confirm.
func TestTransfer_CicloCompleto(t *testing.T) {
	uc, repo := newUseCase(t)
	ctx := context.Background()
	require.NoError(t, uc.QuickAdd(ctx, testUser, "Chicken breast"))

	rows, err := uc.ListRows(ctx, testUser, "fridge")
	require.NoError(t, err)
	require.Len(t, rows, 1)

	resp, err := uc.BeginTransfer(ctx, testUser, dto.BeginTransferRequest{
		Name:       rows[0].Name,
		Unit:       rows[0].Unit,
		Storage:    rows[0].Storage,
		ExpiryDate: rows[0].ExpiryDate,
		To:         "freezer",
	})
	require.NoError(t, err)
	assert.Equal(t, "pending_quantity", resp.State)
	assert.True(t, resp.MaxMovable.Equal(decimal.NewFromInt(1)))

	require.NoError(t, uc.ConfirmTransfer(ctx, testUser, decimal.NewFromInt(1)))
	assert.Equal(t, "idle", uc.TransferState(testUser))

	raw, _ := repo.Load(ctx, testUser)
	require.Len(t, raw, 1)
	assert.Equal(t, entity.StorageFreezer, raw[0].Storage)
	require.NotNil(t, raw[0].BaseShelfLife)
	assert.Equal(t, 3, *raw[0].BaseShelfLife)
}

// Una fila inexistente no abre traslado.
func TestTransfer_FilaInexistente(t *testing.T) {
	uc, _ := newUseCase(t)
	_, err := uc.BeginTransfer(context.Background(), testUser, dto.BeginTransferRequest{
		Name: "Ghost", Storage: "fridge", To: "pantry",
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Confirmar sin traslado pendiente es un error de secuencia, no un pánico.
func TestTransfer_ConfirmarSinPendiente(t *testing.T) {
	uc, _ := newUseCase(t)
	err := uc.ConfirmTransfer(context.Background(), testUser, decimal.NewFromInt(1))
	assert.ErrorIs(t, err, domain.ErrNoTransferPending)
}

func TestClearAll(t *testing.T) {
	uc, repo := newUseCase(t)
	ctx := context.Background()
	require.NoError(t, uc.QuickAdd(ctx, testUser, "Egg"))
	require.NoError(t, uc.ClearAll(ctx, testUser))

	raw, _ := repo.Load(ctx, testUser)
	assert.Empty(t, raw)
}
