package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/invorya/warehouse-api/internal/domain/entity"
	"github.com/invorya/warehouse-api/internal/domain/repository"
)

var _ repository.FileAssetRepository = (*FileAssetRepo)(nil)
var _ repository.ProductImageRepository = (*ProductImageRepo)(nil)
var _ repository.NotificationSettingRepository = (*NotificationSettingRepo)(nil)

const fileAssetColumns = `id, hash_id, file_name, content_type, size, path, created_at, created_by, deleted`

func scanFileAsset(row pgx.Row) (*entity.FileAsset, error) {
	var f entity.FileAsset
	err := row.Scan(
		&f.ID, &f.HashID, &f.FileName, &f.ContentType, &f.Size, &f.Path,
		&f.CreatedAt, &f.CreatedBy, &f.Deleted,
	)
	if err != nil {
		return nil, err
	}
	return &f, nil
}

// FileAssetRepo implementación del puerto FileAssetRepository sobre PostgreSQL.
type FileAssetRepo struct {
	softDeleteRepo[entity.FileAsset]
}

// NewFileAssetRepository construye el adaptador de persistencia para archivos.
func NewFileAssetRepository(q Querier) *FileAssetRepo {
	return &FileAssetRepo{softDeleteRepo[entity.FileAsset]{
		q:       q,
		table:   "file_assets",
		columns: fileAssetColumns,
		scan:    scanFileAsset,
	}}
}

// Create persiste un archivo; hash_id lo asigna la secuencia.
func (r *FileAssetRepo) Create(ctx context.Context, f *entity.FileAsset) error {
	query := `
		INSERT INTO file_assets (id, hash_id, file_name, content_type, size, path, created_at, created_by, deleted)
		VALUES ($1, nextval('file_hash_id_seq'), $2, $3, $4, $5, $6, $7, FALSE)
		RETURNING hash_id`
	err := r.q.QueryRow(ctx, query,
		f.ID, f.FileName, f.ContentType, f.Size, f.Path, f.CreatedAt, f.CreatedBy,
	).Scan(&f.HashID)
	if err != nil {
		return fmt.Errorf("insert file asset: %w", err)
	}
	return nil
}

// GetByHashID obtiene un archivo vivo por su identificador público.
func (r *FileAssetRepo) GetByHashID(ctx context.Context, hashID int64) (*entity.FileAsset, error) {
	query := fmt.Sprintf(`SELECT %s FROM file_assets WHERE hash_id = $1 AND deleted = FALSE`, fileAssetColumns)
	f, err := scanFileAsset(r.q.QueryRow(ctx, query, hashID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get file asset by hash: %w", err)
	}
	return f, nil
}

const productImageColumns = `id, product_id, file_asset_id, is_primary, created_at, created_by, deleted`

func scanProductImage(row pgx.Row) (*entity.ProductImage, error) {
	var img entity.ProductImage
	err := row.Scan(
		&img.ID, &img.ProductID, &img.FileAssetID, &img.IsPrimary,
		&img.CreatedAt, &img.CreatedBy, &img.Deleted,
	)
	if err != nil {
		return nil, err
	}
	return &img, nil
}

// ProductImageRepo implementación del puerto ProductImageRepository sobre PostgreSQL.
type ProductImageRepo struct {
	softDeleteRepo[entity.ProductImage]
}

// NewProductImageRepository construye el adaptador de persistencia para imágenes.
func NewProductImageRepository(q Querier) *ProductImageRepo {
	return &ProductImageRepo{softDeleteRepo[entity.ProductImage]{
		q:       q,
		table:   "product_images",
		columns: productImageColumns,
		scan:    scanProductImage,
	}}
}

// Create persiste la asociación imagen-producto.
func (r *ProductImageRepo) Create(ctx context.Context, img *entity.ProductImage) error {
	query := `
		INSERT INTO product_images (id, product_id, file_asset_id, is_primary, created_at, created_by, deleted)
		VALUES ($1, $2, $3, $4, $5, $6, FALSE)`
	_, err := r.q.Exec(ctx, query,
		img.ID, img.ProductID, img.FileAssetID, img.IsPrimary, img.CreatedAt, img.CreatedBy,
	)
	if err != nil {
		return fmt.Errorf("insert product image: %w", err)
	}
	return nil
}

// ListByProduct lista las imágenes vivas de un producto por orden de creación.
func (r *ProductImageRepo) ListByProduct(ctx context.Context, productID string) ([]*entity.ProductImage, error) {
	query := fmt.Sprintf(`SELECT %s FROM product_images WHERE product_id = $1 AND deleted = FALSE ORDER BY created_at`, productImageColumns)
	rows, err := r.q.Query(ctx, query, productID)
	if err != nil {
		return nil, fmt.Errorf("list product images: %w", err)
	}
	defer rows.Close()
	var list []*entity.ProductImage
	for rows.Next() {
		img, err := scanProductImage(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product image: %w", err)
		}
		list = append(list, img)
	}
	return list, rows.Err()
}

const notificationSettingColumns = `id, before_day, created_at, created_by, deleted`

func scanNotificationSetting(row pgx.Row) (*entity.NotificationSetting, error) {
	var s entity.NotificationSetting
	if err := row.Scan(&s.ID, &s.BeforeDay, &s.CreatedAt, &s.CreatedBy, &s.Deleted); err != nil {
		return nil, err
	}
	return &s, nil
}

// NotificationSettingRepo implementación del puerto NotificationSettingRepository.
type NotificationSettingRepo struct {
	softDeleteRepo[entity.NotificationSetting]
}

// NewNotificationSettingRepository construye el adaptador de persistencia para la configuración de alertas.
func NewNotificationSettingRepository(q Querier) *NotificationSettingRepo {
	return &NotificationSettingRepo{softDeleteRepo[entity.NotificationSetting]{
		q:       q,
		table:   "notification_settings",
		columns: notificationSettingColumns,
		scan:    scanNotificationSetting,
	}}
}

// Create persiste la configuración de alertas.
func (r *NotificationSettingRepo) Create(ctx context.Context, s *entity.NotificationSetting) error {
	query := `
		INSERT INTO notification_settings (id, before_day, created_at, created_by, deleted)
		VALUES ($1, $2, $3, $4, FALSE)`
	if _, err := r.q.Exec(ctx, query, s.ID, s.BeforeDay, s.CreatedAt, s.CreatedBy); err != nil {
		return fmt.Errorf("insert notification setting: %w", err)
	}
	return nil
}

// Update actualiza la antelación configurada.
func (r *NotificationSettingRepo) Update(ctx context.Context, s *entity.NotificationSetting) error {
	query := `UPDATE notification_settings SET before_day = $2 WHERE id = $1 AND deleted = FALSE`
	if _, err := r.q.Exec(ctx, query, s.ID, s.BeforeDay); err != nil {
		return fmt.Errorf("update notification setting: %w", err)
	}
	return nil
}
