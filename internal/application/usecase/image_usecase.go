package usecase

import (
	"context"
	"io"

	"github.com/invorya/warehouse-api/internal/application/dto"
	"github.com/invorya/warehouse-api/internal/domain"
	"github.com/invorya/warehouse-api/internal/domain/authz"
	"github.com/invorya/warehouse-api/internal/domain/entity"
	"github.com/invorya/warehouse-api/internal/domain/repository"
)

// FileStore abstrae el almacenamiento físico de archivos subidos.
type FileStore interface {
	Save(ctx context.Context, fileName string, r io.Reader) (path string, size int64, err error)
	Open(ctx context.Context, path string) (io.ReadCloser, error)
}

// ProductImageUseCase subida, descarga y listado de imágenes de producto.
// La subida exige rol ADMIN; la descarga solo requiere sesión.
type ProductImageUseCase struct {
	productRepo repository.ProductRepository
	fileRepo    repository.FileAssetRepository
	imageRepo   repository.ProductImageRepository
	store       FileStore
}

// NewProductImageUseCase construye el caso de uso.
func NewProductImageUseCase(productRepo repository.ProductRepository, fileRepo repository.FileAssetRepository, imageRepo repository.ProductImageRepository, store FileStore) *ProductImageUseCase {
	return &ProductImageUseCase{productRepo: productRepo, fileRepo: fileRepo, imageRepo: imageRepo, store: store}
}

// Upload guarda el archivo en disco, registra el FileAsset (HashID por
// secuencia) y lo asocia al producto. La primera imagen queda como principal.
func (uc *ProductImageUseCase) Upload(ctx context.Context, p authz.Principal, productID, fileName, contentType string, r io.Reader) (*dto.ProductImageResponse, error) {
	if !authz.Allowed(p.Role, authz.ActionImageUpload) {
		return nil, domain.ErrEmployeeAccessDenied
	}
	product, err := uc.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrProductNotFound
	}

	path, size, err := uc.store.Save(ctx, fileName, r)
	if err != nil {
		return nil, err
	}

	asset := &entity.FileAsset{
		Base:        entity.NewBase(p.EmployeeID),
		FileName:    fileName,
		ContentType: contentType,
		Size:        size,
		Path:        path,
	}
	if err := uc.fileRepo.Create(ctx, asset); err != nil {
		return nil, err
	}

	existing, err := uc.imageRepo.ListByProduct(ctx, product.ID)
	if err != nil {
		return nil, err
	}
	image := &entity.ProductImage{
		Base:        entity.NewBase(p.EmployeeID),
		ProductID:   product.ID,
		FileAssetID: asset.ID,
		IsPrimary:   len(existing) == 0,
	}
	if err := uc.imageRepo.Create(ctx, image); err != nil {
		return nil, err
	}
	return dto.ToProductImageResponse(image, asset), nil
}

// Download abre el archivo identificado por su HashID público.
func (uc *ProductImageUseCase) Download(ctx context.Context, hashID int64) (*entity.FileAsset, io.ReadCloser, error) {
	asset, err := uc.fileRepo.GetByHashID(ctx, hashID)
	if err != nil {
		return nil, nil, err
	}
	if asset == nil {
		return nil, nil, domain.ErrFileNotFound
	}
	rc, err := uc.store.Open(ctx, asset.Path)
	if err != nil {
		return nil, nil, domain.ErrFileNotFound
	}
	return asset, rc, nil
}

// ListByProduct lista las imágenes vivas de un producto con su archivo.
func (uc *ProductImageUseCase) ListByProduct(ctx context.Context, p authz.Principal, productID string) ([]dto.ProductImageResponse, error) {
	product, err := uc.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrProductNotFound
	}
	images, err := uc.imageRepo.ListByProduct(ctx, product.ID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductImageResponse, 0, len(images))
	for _, img := range images {
		asset, err := uc.fileRepo.GetByID(ctx, img.FileAssetID)
		if err != nil {
			return nil, err
		}
		if asset == nil {
			continue
		}
		out = append(out, *dto.ToProductImageResponse(img, asset))
	}
	return out, nil
}

// Delete borrado lógico de una imagen; el archivo físico no se toca.
func (uc *ProductImageUseCase) Delete(ctx context.Context, p authz.Principal, id string) error {
	if !authz.Allowed(p.Role, authz.ActionImageUpload) {
		return domain.ErrEmployeeAccessDenied
	}
	trashed, err := uc.imageRepo.Trash(ctx, id)
	if err != nil {
		return err
	}
	if trashed == nil {
		return domain.ErrImageNotFound
	}
	return nil
}
