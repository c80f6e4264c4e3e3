package usecase_test

import (
	"context"

	"github.com/invorya/warehouse-api/internal/domain/authz"
	"github.com/invorya/warehouse-api/internal/domain/entity"
)

// Fakes en memoria compartidos por los tests del paquete.

type fakeEmployeeRepo struct{ items map[string]*entity.Employee }

func (f *fakeEmployeeRepo) GetByID(_ context.Context, id string) (*entity.Employee, error) {
	e, ok := f.items[id]
	if !ok || e.Deleted {
		return nil, nil
	}
	return e, nil
}
func (f *fakeEmployeeRepo) ListNotDeleted(context.Context) ([]*entity.Employee, error) {
	var out []*entity.Employee
	for _, e := range f.items {
		if !e.Deleted {
			out = append(out, e)
		}
	}
	return out, nil
}
func (f *fakeEmployeeRepo) Trash(_ context.Context, id string) (*entity.Employee, error) {
	e, ok := f.items[id]
	if !ok {
		return nil, nil
	}
	e.Deleted = true
	return e, nil
}
func (f *fakeEmployeeRepo) TrashBatch(ctx context.Context, ids []string) ([]*entity.Employee, error) {
	var out []*entity.Employee
	for _, id := range ids {
		if e, _ := f.Trash(ctx, id); e != nil {
			out = append(out, e)
		}
	}
	return out, nil
}
func (f *fakeEmployeeRepo) Create(_ context.Context, e *entity.Employee) error {
	e.EmployeeNumber = int64(1000 + len(f.items))
	f.items[e.ID] = e
	return nil
}
func (f *fakeEmployeeRepo) Update(_ context.Context, e *entity.Employee) error {
	f.items[e.ID] = e
	return nil
}
func (f *fakeEmployeeRepo) GetByNumber(_ context.Context, n int64) (*entity.Employee, error) {
	for _, e := range f.items {
		if e.EmployeeNumber == n && !e.Deleted {
			return e, nil
		}
	}
	return nil, nil
}
func (f *fakeEmployeeRepo) ExistsByRole(_ context.Context, role authz.Role) (bool, error) {
	for _, e := range f.items {
		if e.Role == role && !e.Deleted {
			return true, nil
		}
	}
	return false, nil
}

type fakeWarehouseRepo struct{ items map[string]*entity.Warehouse }

func (f *fakeWarehouseRepo) GetByID(_ context.Context, id string) (*entity.Warehouse, error) {
	w, ok := f.items[id]
	if !ok || w.Deleted {
		return nil, nil
	}
	return w, nil
}
func (f *fakeWarehouseRepo) ListNotDeleted(context.Context) ([]*entity.Warehouse, error) {
	var out []*entity.Warehouse
	for _, w := range f.items {
		if !w.Deleted {
			out = append(out, w)
		}
	}
	return out, nil
}
func (f *fakeWarehouseRepo) Trash(_ context.Context, id string) (*entity.Warehouse, error) {
	w, ok := f.items[id]
	if !ok {
		return nil, nil
	}
	w.Deleted = true
	return w, nil
}
func (f *fakeWarehouseRepo) TrashBatch(ctx context.Context, ids []string) ([]*entity.Warehouse, error) {
	var out []*entity.Warehouse
	for _, id := range ids {
		if w, _ := f.Trash(ctx, id); w != nil {
			out = append(out, w)
		}
	}
	return out, nil
}
func (f *fakeWarehouseRepo) Create(_ context.Context, w *entity.Warehouse) error {
	f.items[w.ID] = w
	return nil
}
func (f *fakeWarehouseRepo) Update(_ context.Context, w *entity.Warehouse) error {
	f.items[w.ID] = w
	return nil
}

type fakeCategoryRepo struct{ items map[string]*entity.Category }

func (f *fakeCategoryRepo) GetByID(_ context.Context, id string) (*entity.Category, error) {
	c, ok := f.items[id]
	if !ok || c.Deleted {
		return nil, nil
	}
	return c, nil
}
func (f *fakeCategoryRepo) ListNotDeleted(context.Context) ([]*entity.Category, error) {
	var out []*entity.Category
	for _, c := range f.items {
		if !c.Deleted {
			out = append(out, c)
		}
	}
	return out, nil
}
func (f *fakeCategoryRepo) Trash(_ context.Context, id string) (*entity.Category, error) {
	c, ok := f.items[id]
	if !ok {
		return nil, nil
	}
	c.Deleted = true
	return c, nil
}
func (f *fakeCategoryRepo) TrashBatch(ctx context.Context, ids []string) ([]*entity.Category, error) {
	var out []*entity.Category
	for _, id := range ids {
		if c, _ := f.Trash(ctx, id); c != nil {
			out = append(out, c)
		}
	}
	return out, nil
}
func (f *fakeCategoryRepo) Create(_ context.Context, c *entity.Category) error {
	f.items[c.ID] = c
	return nil
}
func (f *fakeCategoryRepo) Update(_ context.Context, c *entity.Category) error {
	f.items[c.ID] = c
	return nil
}

type fakeProductRepo struct{ items map[string]*entity.Product }

func (f *fakeProductRepo) GetByID(_ context.Context, id string) (*entity.Product, error) {
	p, ok := f.items[id]
	if !ok || p.Deleted {
		return nil, nil
	}
	return p, nil
}
func (f *fakeProductRepo) ListNotDeleted(context.Context) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range f.items {
		if !p.Deleted {
			out = append(out, p)
		}
	}
	return out, nil
}
func (f *fakeProductRepo) Trash(_ context.Context, id string) (*entity.Product, error) {
	p, ok := f.items[id]
	if !ok {
		return nil, nil
	}
	p.Deleted = true
	return p, nil
}
func (f *fakeProductRepo) TrashBatch(ctx context.Context, ids []string) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, id := range ids {
		if p, _ := f.Trash(ctx, id); p != nil {
			out = append(out, p)
		}
	}
	return out, nil
}
func (f *fakeProductRepo) Create(_ context.Context, p *entity.Product) error {
	p.ProductNumber = int64(1000 + len(f.items))
	f.items[p.ID] = p
	return nil
}
func (f *fakeProductRepo) Update(_ context.Context, p *entity.Product) error {
	f.items[p.ID] = p
	return nil
}

type fakeMeasureRepo struct{ items map[string]*entity.Measure }

func (f *fakeMeasureRepo) GetByID(_ context.Context, id string) (*entity.Measure, error) {
	m, ok := f.items[id]
	if !ok || m.Deleted {
		return nil, nil
	}
	return m, nil
}
func (f *fakeMeasureRepo) ListNotDeleted(context.Context) ([]*entity.Measure, error) {
	var out []*entity.Measure
	for _, m := range f.items {
		if !m.Deleted {
			out = append(out, m)
		}
	}
	return out, nil
}
func (f *fakeMeasureRepo) Trash(_ context.Context, id string) (*entity.Measure, error) {
	m, ok := f.items[id]
	if !ok {
		return nil, nil
	}
	m.Deleted = true
	return m, nil
}
func (f *fakeMeasureRepo) TrashBatch(ctx context.Context, ids []string) ([]*entity.Measure, error) {
	var out []*entity.Measure
	for _, id := range ids {
		if m, _ := f.Trash(ctx, id); m != nil {
			out = append(out, m)
		}
	}
	return out, nil
}
func (f *fakeMeasureRepo) Create(_ context.Context, m *entity.Measure) error {
	f.items[m.ID] = m
	return nil
}
func (f *fakeMeasureRepo) Update(_ context.Context, m *entity.Measure) error {
	f.items[m.ID] = m
	return nil
}

type fakeSettingRepo struct{ items []*entity.NotificationSetting }

func (f *fakeSettingRepo) GetByID(_ context.Context, id string) (*entity.NotificationSetting, error) {
	for _, s := range f.items {
		if s.ID == id && !s.Deleted {
			return s, nil
		}
	}
	return nil, nil
}
func (f *fakeSettingRepo) ListNotDeleted(context.Context) ([]*entity.NotificationSetting, error) {
	var out []*entity.NotificationSetting
	for _, s := range f.items {
		if !s.Deleted {
			out = append(out, s)
		}
	}
	return out, nil
}
func (f *fakeSettingRepo) Trash(_ context.Context, id string) (*entity.NotificationSetting, error) {
	for _, s := range f.items {
		if s.ID == id {
			s.Deleted = true
			return s, nil
		}
	}
	return nil, nil
}
func (f *fakeSettingRepo) TrashBatch(ctx context.Context, ids []string) ([]*entity.NotificationSetting, error) {
	var out []*entity.NotificationSetting
	for _, id := range ids {
		if s, _ := f.Trash(ctx, id); s != nil {
			out = append(out, s)
		}
	}
	return out, nil
}
func (f *fakeSettingRepo) Create(_ context.Context, s *entity.NotificationSetting) error {
	f.items = append(f.items, s)
	return nil
}
func (f *fakeSettingRepo) Update(context.Context, *entity.NotificationSetting) error {
	return nil
}

func managerPrincipal() authz.Principal {
	return authz.Principal{EmployeeID: "emp-manager", EmployeeNumber: 1, Role: authz.RoleManager}
}

func adminPrincipal() authz.Principal {
	return authz.Principal{EmployeeID: "emp-admin", EmployeeNumber: 2, Role: authz.RoleAdmin}
}

func employeePrincipal() authz.Principal {
	return authz.Principal{EmployeeID: "emp-emp", EmployeeNumber: 3, Role: authz.RoleEmployee}
}
