package repository

import "context"

// SoftDeleteRepository contrato común de persistencia con borrado lógico.
// Todas las lecturas excluyen filas con deleted = true; nada se borra físicamente.
//
//   - GetByID devuelve (nil, nil) si la fila no existe o está borrada.
//   - Trash marca deleted = true y devuelve la fila actualizada, o (nil, nil)
//     si no existe. Es idempotente: repetirla mantiene deleted = true.
type SoftDeleteRepository[T any] interface {
	GetByID(ctx context.Context, id string) (*T, error)
	ListNotDeleted(ctx context.Context) ([]*T, error)
	Trash(ctx context.Context, id string) (*T, error)
	TrashBatch(ctx context.Context, ids []string) ([]*T, error)
}
