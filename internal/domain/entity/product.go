package entity

// Product representa un producto del catálogo. ProductNumber es el identificador
// de negocio asignado por secuencia; categoría y medida son opcionales.
type Product struct {
	Base
	Name          string
	ProductNumber int64
	CategoryID    string
	MeasureID     string
}
