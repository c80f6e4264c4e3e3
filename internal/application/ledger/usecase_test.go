package ledger_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/invorya/warehouse-api/internal/application/dto"
	"github.com/invorya/warehouse-api/internal/application/ledger"
	"github.com/invorya/warehouse-api/internal/domain"
	"github.com/invorya/warehouse-api/internal/domain/authz"
	"github.com/invorya/warehouse-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeWarehouseRepo struct{ items map[string]*entity.Warehouse }

func (f *fakeWarehouseRepo) GetByID(_ context.Context, id string) (*entity.Warehouse, error) {
	w, ok := f.items[id]
	if !ok || w.Deleted {
		return nil, nil
	}
	return w, nil
}
func (f *fakeWarehouseRepo) ListNotDeleted(context.Context) ([]*entity.Warehouse, error) {
	return nil, nil
}
func (f *fakeWarehouseRepo) Trash(context.Context, string) (*entity.Warehouse, error) {
	return nil, nil
}
func (f *fakeWarehouseRepo) TrashBatch(context.Context, []string) ([]*entity.Warehouse, error) {
	return nil, nil
}
func (f *fakeWarehouseRepo) Create(context.Context, *entity.Warehouse) error { return nil }
func (f *fakeWarehouseRepo) Update(context.Context, *entity.Warehouse) error { return nil }

type fakeSupplierRepo struct{ items map[string]*entity.Supplier }

func (f *fakeSupplierRepo) GetByID(_ context.Context, id string) (*entity.Supplier, error) {
	s, ok := f.items[id]
	if !ok || s.Deleted {
		return nil, nil
	}
	return s, nil
}
func (f *fakeSupplierRepo) ListNotDeleted(context.Context) ([]*entity.Supplier, error) {
	return nil, nil
}
func (f *fakeSupplierRepo) Trash(context.Context, string) (*entity.Supplier, error) {
	return nil, nil
}
func (f *fakeSupplierRepo) TrashBatch(context.Context, []string) ([]*entity.Supplier, error) {
	return nil, nil
}
func (f *fakeSupplierRepo) Create(context.Context, *entity.Supplier) error { return nil }
func (f *fakeSupplierRepo) Update(context.Context, *entity.Supplier) error { return nil }

type fakeProductRepo struct{ items map[string]*entity.Product }

func (f *fakeProductRepo) GetByID(_ context.Context, id string) (*entity.Product, error) {
	p, ok := f.items[id]
	if !ok || p.Deleted {
		return nil, nil
	}
	return p, nil
}
func (f *fakeProductRepo) ListNotDeleted(context.Context) ([]*entity.Product, error) {
	return nil, nil
}
func (f *fakeProductRepo) Trash(context.Context, string) (*entity.Product, error) { return nil, nil }
func (f *fakeProductRepo) TrashBatch(context.Context, []string) ([]*entity.Product, error) {
	return nil, nil
}
func (f *fakeProductRepo) Create(context.Context, *entity.Product) error { return nil }
func (f *fakeProductRepo) Update(context.Context, *entity.Product) error { return nil }

type fakeTransactionRepo struct {
	items   map[string]*entity.Transaction
	nextNum int64
}

func (f *fakeTransactionRepo) GetByID(_ context.Context, id string) (*entity.Transaction, error) {
	t, ok := f.items[id]
	if !ok || t.Deleted {
		return nil, nil
	}
	return t, nil
}
func (f *fakeTransactionRepo) ListNotDeleted(context.Context) ([]*entity.Transaction, error) {
	return nil, nil
}
func (f *fakeTransactionRepo) Trash(context.Context, string) (*entity.Transaction, error) {
	return nil, nil
}
func (f *fakeTransactionRepo) TrashBatch(context.Context, []string) ([]*entity.Transaction, error) {
	return nil, nil
}
func (f *fakeTransactionRepo) Create(_ context.Context, t *entity.Transaction) error {
	f.nextNum++
	t.TransactionNumber = f.nextNum
	f.items[t.ID] = t
	return nil
}
func (f *fakeTransactionRepo) UpdateTotal(_ context.Context, id string, total decimal.Decimal) error {
	if t, ok := f.items[id]; ok {
		t.TotalAmount = total
	}
	return nil
}
func (f *fakeTransactionRepo) ListByType(_ context.Context, txType string) ([]*entity.Transaction, error) {
	var out []*entity.Transaction
	for _, t := range f.items {
		if t.Type == txType && !t.Deleted {
			out = append(out, t)
		}
	}
	return out, nil
}

type fakeItemRepo struct{ items map[string]*entity.TransactionItem }

func (f *fakeItemRepo) GetByID(_ context.Context, id string) (*entity.TransactionItem, error) {
	it, ok := f.items[id]
	if !ok || it.Deleted {
		return nil, nil
	}
	return it, nil
}
func (f *fakeItemRepo) ListNotDeleted(context.Context) ([]*entity.TransactionItem, error) {
	return nil, nil
}
func (f *fakeItemRepo) Trash(context.Context, string) (*entity.TransactionItem, error) {
	return nil, nil
}
func (f *fakeItemRepo) TrashBatch(context.Context, []string) ([]*entity.TransactionItem, error) {
	return nil, nil
}
func (f *fakeItemRepo) Create(_ context.Context, it *entity.TransactionItem) error {
	f.items[it.ID] = it
	return nil
}
func (f *fakeItemRepo) ListByTransaction(_ context.Context, transactionID string) ([]*entity.TransactionItem, error) {
	var out []*entity.TransactionItem
	for _, it := range f.items {
		if it.TransactionID == transactionID && !it.Deleted {
			out = append(out, it)
		}
	}
	return out, nil
}

// fakeRunner imita el rollback: si fn falla, restaura el estado previo.
type fakeRunner struct {
	txRepo      *fakeTransactionRepo
	itemRepo    *fakeItemRepo
	productRepo *fakeProductRepo
}

func (r *fakeRunner) Run(_ context.Context, fn func(ledger.Repos) error) error {
	txSnap := make(map[string]*entity.Transaction, len(r.txRepo.items))
	for k, v := range r.txRepo.items {
		txSnap[k] = v
	}
	itemSnap := make(map[string]*entity.TransactionItem, len(r.itemRepo.items))
	for k, v := range r.itemRepo.items {
		itemSnap[k] = v
	}
	err := fn(ledger.Repos{
		Transactions: r.txRepo,
		Items:        r.itemRepo,
		Products:     r.productRepo,
	})
	if err != nil {
		r.txRepo.items = txSnap
		r.itemRepo.items = itemSnap
	}
	return err
}

// ──────────────────────────────────────────────────────────────────────────────
// Setup
// ──────────────────────────────────────────────────────────────────────────────

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

func newFixture() (*ledger.TransactionUseCase, *fakeTransactionRepo, *fakeItemRepo) {
	warehouses := &fakeWarehouseRepo{items: map[string]*entity.Warehouse{
		"wh-1": {Base: entity.Base{ID: "wh-1"}, Name: "Central", Status: entity.StatusActive},
	}}
	suppliers := &fakeSupplierRepo{items: map[string]*entity.Supplier{
		"sup-1": {Base: entity.Base{ID: "sup-1"}, Name: "Proveedor Uno"},
	}}
	products := &fakeProductRepo{items: map[string]*entity.Product{
		"prod-1": {Base: entity.Base{ID: "prod-1"}, Name: "Arroz", ProductNumber: 1001},
		"prod-2": {Base: entity.Base{ID: "prod-2"}, Name: "Frijol", ProductNumber: 1002},
	}}
	txRepo := &fakeTransactionRepo{items: map[string]*entity.Transaction{}}
	itemRepo := &fakeItemRepo{items: map[string]*entity.TransactionItem{}}
	runner := &fakeRunner{txRepo: txRepo, itemRepo: itemRepo, productRepo: products}

	uc := ledger.NewTransactionUseCase(warehouses, suppliers, txRepo, itemRepo, runner)
	return uc, txRepo, itemRepo
}

func adminPrincipal() authz.Principal {
	return authz.Principal{EmployeeID: "emp-admin", EmployeeNumber: 1000, Role: authz.RoleAdmin}
}

func employeePrincipal() authz.Principal {
	return authz.Principal{EmployeeID: "emp-emp", EmployeeNumber: 1001, Role: authz.RoleEmployee}
}

func managerPrincipal() authz.Principal {
	return authz.Principal{EmployeeID: "emp-manager", EmployeeNumber: 999, Role: authz.RoleManager}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Create
// ──────────────────────────────────────────────────────────────────────────────

func TestCreate_StockIn_TotalDerivadoDeLineas(t *testing.T) {
	uc, _, _ := newFixture()

	// 2 × 5.00 + 3 × 5.00 = 25.00
	out, err := uc.Create(context.Background(), adminPrincipal(), dto.CreateTransactionRequest{
		Date:        time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC),
		WarehouseID: "wh-1",
		SupplierID:  "sup-1",
		Type:        entity.TransactionStockIn,
		Items: []dto.TransactionItemRequest{
			{ProductID: "prod-1", Quantity: dec("2"), PriceIn: decPtr("5.00")},
			{ProductID: "prod-2", Quantity: dec("3"), PriceIn: decPtr("5.00")},
		},
	})
	require.NoError(t, err)
	require.NotNil(t, out)

	assert.True(t, dec("25.00").Equal(out.TotalAmount), "total esperado 25.00, fue %s", out.TotalAmount)
	assert.Len(t, out.Items, 2)
	assert.NotZero(t, out.TransactionNumber, "la secuencia debe asignar número de transacción")
}

func TestCreate_StockIn_DescartaPriceOut(t *testing.T) {
	uc, _, _ := newFixture()

	out, err := uc.Create(context.Background(), adminPrincipal(), dto.CreateTransactionRequest{
		Date:        time.Now(),
		WarehouseID: "wh-1",
		Type:        entity.TransactionStockIn,
		Items: []dto.TransactionItemRequest{
			{ProductID: "prod-1", Quantity: dec("4"), PriceIn: decPtr("2.50"), PriceOut: decPtr("99.99")},
		},
	})
	require.NoError(t, err)

	require.Len(t, out.Items, 1)
	assert.Nil(t, out.Items[0].PriceOut, "en STOCK_IN el price_out del request se descarta")
	require.NotNil(t, out.Items[0].PriceIn)
	assert.True(t, dec("10.00").Equal(out.TotalAmount))
}

func TestCreate_LineaSinPrecioAportaCero(t *testing.T) {
	uc, _, _ := newFixture()

	out, err := uc.Create(context.Background(), adminPrincipal(), dto.CreateTransactionRequest{
		Date:        time.Now(),
		WarehouseID: "wh-1",
		Type:        entity.TransactionStockIn,
		Items: []dto.TransactionItemRequest{
			{ProductID: "prod-1", Quantity: dec("2"), PriceIn: decPtr("3.00")},
			{ProductID: "prod-2", Quantity: dec("7")}, // sin precio
		},
	})
	require.NoError(t, err)
	assert.True(t, dec("6.00").Equal(out.TotalAmount))
}

func TestCreate_StockOut_ExigeEmployee(t *testing.T) {
	uc, _, _ := newFixture()

	_, err := uc.Create(context.Background(), adminPrincipal(), dto.CreateTransactionRequest{
		Date:        time.Now(),
		WarehouseID: "wh-1",
		Type:        entity.TransactionStockOut,
		Items:       []dto.TransactionItemRequest{{ProductID: "prod-1", Quantity: dec("1")}},
	})
	assert.ErrorIs(t, err, domain.ErrTransactionAccessDenied, "ADMIN no registra salidas")

	out, err := uc.Create(context.Background(), employeePrincipal(), dto.CreateTransactionRequest{
		Date:        time.Now(),
		WarehouseID: "wh-1",
		Type:        entity.TransactionStockOut,
		Items: []dto.TransactionItemRequest{
			{ProductID: "prod-1", Quantity: dec("2"), PriceOut: decPtr("8.00")},
		},
	})
	require.NoError(t, err)
	assert.True(t, dec("16.00").Equal(out.TotalAmount))
	assert.Nil(t, out.Items[0].PriceIn, "en STOCK_OUT el price_in se descarta")
}

func TestCreate_ProductoInexistenteAbortaTodo(t *testing.T) {
	uc, txRepo, itemRepo := newFixture()

	_, err := uc.Create(context.Background(), adminPrincipal(), dto.CreateTransactionRequest{
		Date:        time.Now(),
		WarehouseID: "wh-1",
		Type:        entity.TransactionStockIn,
		Items: []dto.TransactionItemRequest{
			{ProductID: "prod-1", Quantity: dec("1"), PriceIn: decPtr("1.00")},
			{ProductID: "prod-nope", Quantity: dec("1"), PriceIn: decPtr("1.00")},
		},
	})
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
	assert.Empty(t, txRepo.items, "la cabecera debe deshacerse con el rollback")
	assert.Empty(t, itemRepo.items, "las líneas deben deshacerse con el rollback")
}

func TestCreate_AlmacenInexistente(t *testing.T) {
	uc, _, _ := newFixture()

	_, err := uc.Create(context.Background(), adminPrincipal(), dto.CreateTransactionRequest{
		Date:        time.Now(),
		WarehouseID: "wh-nope",
		Type:        entity.TransactionStockIn,
		Items:       []dto.TransactionItemRequest{{ProductID: "prod-1", Quantity: dec("1")}},
	})
	assert.ErrorIs(t, err, domain.ErrWarehouseNotFound)
}

func TestCreate_ProveedorInexistente(t *testing.T) {
	uc, _, _ := newFixture()

	_, err := uc.Create(context.Background(), adminPrincipal(), dto.CreateTransactionRequest{
		Date:        time.Now(),
		WarehouseID: "wh-1",
		SupplierID:  "sup-nope",
		Type:        entity.TransactionStockIn,
		Items:       []dto.TransactionItemRequest{{ProductID: "prod-1", Quantity: dec("1")}},
	})
	assert.ErrorIs(t, err, domain.ErrSupplierNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests GetAll / GetOne
// ──────────────────────────────────────────────────────────────────────────────

func TestGetAll_FiltraPorTipoSegunRol(t *testing.T) {
	uc, _, _ := newFixture()
	ctx := context.Background()

	_, err := uc.Create(ctx, adminPrincipal(), dto.CreateTransactionRequest{
		Date: time.Now(), WarehouseID: "wh-1", Type: entity.TransactionStockIn,
		Items: []dto.TransactionItemRequest{{ProductID: "prod-1", Quantity: dec("1"), PriceIn: decPtr("1.00")}},
	})
	require.NoError(t, err)
	_, err = uc.Create(ctx, employeePrincipal(), dto.CreateTransactionRequest{
		Date: time.Now(), WarehouseID: "wh-1", Type: entity.TransactionStockOut,
		Items: []dto.TransactionItemRequest{{ProductID: "prod-1", Quantity: dec("1"), PriceOut: decPtr("2.00")}},
	})
	require.NoError(t, err)

	asAdmin, err := uc.GetAll(ctx, adminPrincipal())
	require.NoError(t, err)
	require.Len(t, asAdmin, 1)
	assert.Equal(t, entity.TransactionStockIn, asAdmin[0].Type)

	asEmployee, err := uc.GetAll(ctx, employeePrincipal())
	require.NoError(t, err)
	require.Len(t, asEmployee, 1)
	assert.Equal(t, entity.TransactionStockOut, asEmployee[0].Type)
}

func TestGetAll_RolSinTiposEsDenegado(t *testing.T) {
	uc, _, _ := newFixture()

	// MANAGER no tiene acceso a ningún tipo: se rechaza de plano,
	// nunca con una lista vacía.
	_, err := uc.GetAll(context.Background(), managerPrincipal())
	assert.ErrorIs(t, err, domain.ErrTransactionAccessDenied)
}

func TestGetOne_TipoVedadoParaElRol(t *testing.T) {
	uc, _, _ := newFixture()
	ctx := context.Background()

	created, err := uc.Create(ctx, adminPrincipal(), dto.CreateTransactionRequest{
		Date: time.Now(), WarehouseID: "wh-1", Type: entity.TransactionStockIn,
		Items: []dto.TransactionItemRequest{{ProductID: "prod-1", Quantity: dec("1"), PriceIn: decPtr("1.00")}},
	})
	require.NoError(t, err)

	_, err = uc.GetOne(ctx, employeePrincipal(), created.ID)
	assert.ErrorIs(t, err, domain.ErrTransactionAccessDenied)

	out, err := uc.GetOne(ctx, adminPrincipal(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, out.ID)
	assert.Len(t, out.Items, 1)
}

func TestGetOne_NoEncontrada(t *testing.T) {
	uc, _, _ := newFixture()
	_, err := uc.GetOne(context.Background(), adminPrincipal(), "tx-nope")
	assert.ErrorIs(t, err, domain.ErrTransactionNotFound)
}
