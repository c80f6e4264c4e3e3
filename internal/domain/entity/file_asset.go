package entity

// FileAsset representa un archivo subido (imagen de producto). HashID es el
// identificador expuesto al cliente, asignado por secuencia; Path es la ruta
// real bajo el directorio de subida.
type FileAsset struct {
	Base
	HashID      int64
	FileName    string
	ContentType string
	Size        int64
	Path        string
}

// ProductImage asocia un FileAsset a un producto.
type ProductImage struct {
	Base
	ProductID   string
	FileAssetID string
	IsPrimary   bool
}
