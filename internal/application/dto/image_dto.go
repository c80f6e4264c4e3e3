package dto

import "github.com/invorya/warehouse-api/internal/domain/entity"

// ProductImageResponse imagen asociada a un producto; HashID es la llave de descarga.
type ProductImageResponse struct {
	ID          string `json:"id"`
	ProductID   string `json:"product_id"`
	FileHashID  int64  `json:"file_hash_id"`
	FileName    string `json:"file_name"`
	ContentType string `json:"content_type"`
	Size        int64  `json:"size"`
	IsPrimary   bool   `json:"is_primary"`
}

// ToProductImageResponse combina la imagen con su archivo.
func ToProductImageResponse(img *entity.ProductImage, asset *entity.FileAsset) *ProductImageResponse {
	if img == nil || asset == nil {
		return nil
	}
	return &ProductImageResponse{
		ID:          img.ID,
		ProductID:   img.ProductID,
		FileHashID:  asset.HashID,
		FileName:    asset.FileName,
		ContentType: asset.ContentType,
		Size:        asset.Size,
		IsPrimary:   img.IsPrimary,
	}
}

// NotificationSettingRequest ajusta la antelación de alertas de vencimiento.
type NotificationSettingRequest struct {
	BeforeDay int `json:"before_day" validate:"required,min=1"`
}

// NotificationSettingResponse configuración vigente.
type NotificationSettingResponse struct {
	ID        string `json:"id"`
	BeforeDay int    `json:"before_day"`
}
