package entity

// Category representa una categoría de productos (árbol vía ParentID).
// El padre es una referencia no-propietaria por ID; no se valida la ausencia
// de ciclos, igual que en el comportamiento original del sistema.
type Category struct {
	Base
	Name     string
	Status   string // ACTIVE, INACTIVE
	ParentID string // vacío si es raíz
}
