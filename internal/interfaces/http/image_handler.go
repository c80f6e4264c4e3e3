package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/invorya/warehouse-api/internal/application/usecase"
	"github.com/invorya/warehouse-api/internal/domain"
	"github.com/invorya/warehouse-api/pkg/logger"
)

// ImageHandler imágenes de producto: subida multipart, descarga por hash y listado.
type ImageHandler struct {
	uc  *usecase.ProductImageUseCase
	log *logger.Logger
}

// NewImageHandler construye el handler.
func NewImageHandler(uc *usecase.ProductImageUseCase, log *logger.Logger) *ImageHandler {
	return &ImageHandler{uc: uc, log: log}
}

// Upload sube el campo multipart "file" y lo asocia al producto de la ruta.
func (h *ImageHandler) Upload(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return respondInvalidBody(c)
	}
	f, err := fileHeader.Open()
	if err != nil {
		return respondInvalidBody(c)
	}
	defer f.Close()

	out, err := h.uc.Upload(c.Context(), GetPrincipal(c),
		c.Params("id"), fileHeader.Filename, fileHeader.Header.Get("Content-Type"), f)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Download sirve el archivo por su identificador público.
func (h *ImageHandler) Download(c *fiber.Ctx) error {
	hashID, err := strconv.ParseInt(c.Params("hashId"), 10, 64)
	if err != nil {
		return respondError(c, h.log, domain.ErrFileNotFound)
	}
	asset, rc, err := h.uc.Download(c.Context(), hashID)
	if err != nil {
		return respondError(c, h.log, err)
	}
	c.Set(fiber.HeaderContentType, asset.ContentType)
	c.Set(fiber.HeaderContentDisposition, `inline; filename="`+asset.FileName+`"`)
	return c.SendStream(rc, int(asset.Size))
}

// List imágenes vivas del producto.
func (h *ImageHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.ListByProduct(c.Context(), GetPrincipal(c), c.Params("id"))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(out)
}

// Delete borrado lógico de una imagen.
func (h *ImageHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), GetPrincipal(c), c.Params("imageId")); err != nil {
		return respondError(c, h.log, err)
	}
	return respondOK(c)
}
