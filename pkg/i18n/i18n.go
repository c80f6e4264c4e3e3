package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Idiomas soportados; el primero es el default cuando el header `hl` falta o
// no se reconoce.
var matcher = language.NewMatcher([]language.Tag{
	language.Spanish,
	language.English,
})

var esMessages = map[string]string{
	"error.generic":                   "Ocurrió un error inesperado, contacte a soporte",
	"error.current_user_not_found":    "No se encontró el usuario de la sesión",
	"error.employee_access_denied":    "No tiene permiso para realizar esta operación",
	"error.warehouse_not_found":       "Almacén no encontrado",
	"error.employee_not_found":        "Empleado no encontrado",
	"error.category_not_found":        "Categoría no encontrada",
	"error.category_has_children":     "La categoría tiene subcategorías",
	"error.category_has_products":     "La categoría tiene productos",
	"error.category_non_active":       "La categoría no está activa",
	"error.measure_not_found":         "Medida no encontrada",
	"error.measure_non_active":        "La medida no está activa",
	"error.product_not_found":         "Producto no encontrado",
	"error.supplier_not_found":        "Proveedor no encontrado",
	"error.transaction_access_denied": "No tiene permiso sobre este tipo de transacción",
	"error.transaction_not_found":     "Transacción no encontrada",
	"error.file_not_found":            "Archivo no encontrado",
	"error.image_not_found":           "Imagen no encontrada",
	"error.wrong_password":            "Contraseña incorrecta",
	"error.employee_non_active":       "La cuenta del empleado no está activa",
}

var enMessages = map[string]string{
	"error.generic":                   "An unexpected error occurred, please contact support",
	"error.current_user_not_found":    "Session user not found",
	"error.employee_access_denied":    "You are not allowed to perform this operation",
	"error.warehouse_not_found":       "Warehouse not found",
	"error.employee_not_found":        "Employee not found",
	"error.category_not_found":        "Category not found",
	"error.category_has_children":     "Category has subcategories",
	"error.category_has_products":     "Category has products",
	"error.category_non_active":       "Category is not active",
	"error.measure_not_found":         "Measure not found",
	"error.measure_non_active":        "Measure is not active",
	"error.product_not_found":         "Product not found",
	"error.supplier_not_found":        "Supplier not found",
	"error.transaction_access_denied": "You are not allowed on this transaction type",
	"error.transaction_not_found":     "Transaction not found",
	"error.file_not_found":            "File not found",
	"error.image_not_found":           "Image not found",
	"error.wrong_password":            "Wrong password",
	"error.employee_non_active":       "Employee account is not active",
}

func init() {
	for key, txt := range esMessages {
		_ = message.SetString(language.Spanish, key, txt)
	}
	for key, txt := range enMessages {
		_ = message.SetString(language.English, key, txt)
	}
}

// Message devuelve el texto localizado de una llave según el locale pedido
// (valor del header `hl`). Locale vacío o desconocido cae al español.
func Message(locale, key string) string {
	tag, _ := language.MatchStrings(matcher, locale)
	return message.NewPrinter(tag).Sprintf(key)
}
