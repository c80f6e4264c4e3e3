package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
)

// softDeleteRepo implementación genérica del contrato de borrado lógico.
// Cada repositorio concreto la embebe con su tabla, su lista de columnas y su
// función de scan; toda lectura normal excluye filas con deleted = TRUE.
type softDeleteRepo[T any] struct {
	q       Querier
	table   string
	columns string // lista separada por comas, en el orden que espera scan
	scan    func(row pgx.Row) (*T, error)
}

// GetByID obtiene una fila viva por ID; (nil, nil) si no existe o está borrada.
func (r *softDeleteRepo[T]) GetByID(ctx context.Context, id string) (*T, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE id = $1 AND deleted = FALSE`, r.columns, r.table)
	out, err := r.scan(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get %s: %w", r.table, err)
	}
	return out, nil
}

// ListNotDeleted lista todas las filas vivas por orden de creación.
func (r *softDeleteRepo[T]) ListNotDeleted(ctx context.Context) ([]*T, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE deleted = FALSE ORDER BY created_at`, r.columns, r.table)
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", r.table, err)
	}
	defer rows.Close()
	var list []*T
	for rows.Next() {
		item, err := r.scan(rows)
		if err != nil {
			return nil, fmt.Errorf("scan %s: %w", r.table, err)
		}
		list = append(list, item)
	}
	return list, rows.Err()
}

// Trash marca la fila como borrada y la devuelve; (nil, nil) si no existe.
// Idempotente: sobre una fila ya borrada vuelve a devolverla sin cambios.
func (r *softDeleteRepo[T]) Trash(ctx context.Context, id string) (*T, error) {
	query := fmt.Sprintf(`UPDATE %s SET deleted = TRUE WHERE id = $1 RETURNING %s`, r.table, r.columns)
	out, err := r.scan(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("trash %s: %w", r.table, err)
	}
	return out, nil
}

// TrashBatch marca como borradas todas las filas cuyos IDs existan; los IDs
// inexistentes se ignoran.
func (r *softDeleteRepo[T]) TrashBatch(ctx context.Context, ids []string) ([]*T, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	query := fmt.Sprintf(`UPDATE %s SET deleted = TRUE WHERE id = ANY($1) RETURNING %s`, r.table, r.columns)
	rows, err := r.q.Query(ctx, query, ids)
	if err != nil {
		return nil, fmt.Errorf("trash batch %s: %w", r.table, err)
	}
	defer rows.Close()
	var list []*T
	for rows.Next() {
		item, err := r.scan(rows)
		if err != nil {
			return nil, fmt.Errorf("scan %s: %w", r.table, err)
		}
		list = append(list, item)
	}
	return list, rows.Err()
}
