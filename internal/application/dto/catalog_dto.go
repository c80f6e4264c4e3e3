package dto

import "github.com/invorya/warehouse-api/internal/domain/entity"

// CreateWarehouseRequest alta de almacén.
type CreateWarehouseRequest struct {
	Name string `json:"name" validate:"required"`
}

// UpdateWarehouseRequest parche parcial de almacén.
type UpdateWarehouseRequest struct {
	Name   *string `json:"name"`
	Status *string `json:"status"`
}

// WarehouseResponse representación pública de un almacén.
type WarehouseResponse struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Status string `json:"status"`
}

func ToWarehouseResponse(w *entity.Warehouse) *WarehouseResponse {
	if w == nil {
		return nil
	}
	return &WarehouseResponse{ID: w.ID, Name: w.Name, Status: w.Status}
}

// CreateCategoryRequest alta de categoría; el padre es opcional.
type CreateCategoryRequest struct {
	Name             string `json:"name" validate:"required"`
	ParentCategoryID string `json:"parent_category_id"`
}

// UpdateCategoryRequest parche parcial de categoría.
type UpdateCategoryRequest struct {
	Name             *string `json:"name"`
	ParentCategoryID *string `json:"parent_category_id"`
	Status           *string `json:"status"`
}

// CategoryResponse representación pública de una categoría.
type CategoryResponse struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	Status           string `json:"status"`
	ParentCategoryID string `json:"parent_category_id,omitempty"`
}

func ToCategoryResponse(c *entity.Category) *CategoryResponse {
	if c == nil {
		return nil
	}
	return &CategoryResponse{ID: c.ID, Name: c.Name, Status: c.Status, ParentCategoryID: c.ParentID}
}

// CreateMeasureRequest alta de unidad de medida.
type CreateMeasureRequest struct {
	Name string `json:"name" validate:"required"`
}

// UpdateMeasureRequest parche parcial de medida.
type UpdateMeasureRequest struct {
	Name   *string `json:"name"`
	Status *string `json:"status"`
}

// MeasureResponse representación pública de una medida.
type MeasureResponse struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Status string `json:"status"`
}

func ToMeasureResponse(m *entity.Measure) *MeasureResponse {
	if m == nil {
		return nil
	}
	return &MeasureResponse{ID: m.ID, Name: m.Name, Status: m.Status}
}

// CreateProductRequest alta de producto; categoría y medida son opcionales.
type CreateProductRequest struct {
	Name       string `json:"name" validate:"required"`
	CategoryID string `json:"category_id"`
	MeasureID  string `json:"measure_id"`
}

// UpdateProductRequest parche parcial de producto.
type UpdateProductRequest struct {
	Name       *string `json:"name"`
	CategoryID *string `json:"category_id"`
	MeasureID  *string `json:"measure_id"`
}

// ProductResponse representación pública de un producto.
type ProductResponse struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	ProductNumber int64  `json:"product_number"`
	CategoryID    string `json:"category_id,omitempty"`
	MeasureID     string `json:"measure_id,omitempty"`
}

func ToProductResponse(p *entity.Product) *ProductResponse {
	if p == nil {
		return nil
	}
	return &ProductResponse{
		ID:            p.ID,
		Name:          p.Name,
		ProductNumber: p.ProductNumber,
		CategoryID:    p.CategoryID,
		MeasureID:     p.MeasureID,
	}
}

// CreateSupplierRequest alta de proveedor.
type CreateSupplierRequest struct {
	Name        string `json:"name" validate:"required"`
	PhoneNumber string `json:"phone_number" validate:"required"`
}

// UpdateSupplierRequest parche parcial de proveedor.
type UpdateSupplierRequest struct {
	Name        *string `json:"name"`
	PhoneNumber *string `json:"phone_number"`
}

// SupplierResponse representación pública de un proveedor.
type SupplierResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	PhoneNumber string `json:"phone_number"`
}

func ToSupplierResponse(s *entity.Supplier) *SupplierResponse {
	if s == nil {
		return nil
	}
	return &SupplierResponse{ID: s.ID, Name: s.Name, PhoneNumber: s.PhoneNumber}
}
