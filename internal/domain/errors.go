package domain

// Code código numérico de error expuesto en las respuestas HTTP.
type Code int

// Códigos de error del dominio. 100 es el genérico "contacte a soporte" para
// fallos no anticipados; el resto cubre la taxonomía completa de la aplicación.
const (
	CodeGeneric                 Code = 100
	CodeCurrentUserNotFound     Code = 101
	CodeEmployeeAccessDenied    Code = 102
	CodeWarehouseNotFound       Code = 103
	CodeEmployeeNotFound        Code = 104
	CodeCategoryNotFound        Code = 105
	CodeCategoryHasChildren     Code = 106
	CodeCategoryHasProducts     Code = 107
	CodeCategoryNonActive       Code = 108
	CodeMeasureNotFound         Code = 109
	CodeMeasureNonActive        Code = 110
	CodeProductNotFound         Code = 111
	CodeSupplierNotFound        Code = 112
	CodeTransactionAccessDenied Code = 113
	CodeTransactionNotFound     Code = 114
	CodeFileNotFound            Code = 115
	CodeImageNotFound           Code = 116
	CodeWrongPassword           Code = 117
	CodeEmployeeNonActive       Code = 118
)

// Error error de dominio con código numérico y llave de mensaje localizable.
// Son valores centinela: se comparan con errors.Is por identidad.
type Error struct {
	Code Code
	Key  string // llave del catálogo de mensajes (pkg/i18n)
}

func (e *Error) Error() string { return e.Key }

// Errores de dominio anticipados; la capa HTTP los mapea a {code, mensaje localizado}.
var (
	ErrCurrentUserNotFound     = &Error{CodeCurrentUserNotFound, "error.current_user_not_found"}
	ErrEmployeeAccessDenied    = &Error{CodeEmployeeAccessDenied, "error.employee_access_denied"}
	ErrWarehouseNotFound       = &Error{CodeWarehouseNotFound, "error.warehouse_not_found"}
	ErrEmployeeNotFound        = &Error{CodeEmployeeNotFound, "error.employee_not_found"}
	ErrCategoryNotFound        = &Error{CodeCategoryNotFound, "error.category_not_found"}
	ErrCategoryHasChildren     = &Error{CodeCategoryHasChildren, "error.category_has_children"}
	ErrCategoryHasProducts     = &Error{CodeCategoryHasProducts, "error.category_has_products"}
	ErrCategoryNonActive       = &Error{CodeCategoryNonActive, "error.category_non_active"}
	ErrMeasureNotFound         = &Error{CodeMeasureNotFound, "error.measure_not_found"}
	ErrMeasureNonActive        = &Error{CodeMeasureNonActive, "error.measure_non_active"}
	ErrProductNotFound         = &Error{CodeProductNotFound, "error.product_not_found"}
	ErrSupplierNotFound        = &Error{CodeSupplierNotFound, "error.supplier_not_found"}
	ErrTransactionAccessDenied = &Error{CodeTransactionAccessDenied, "error.transaction_access_denied"}
	ErrTransactionNotFound     = &Error{CodeTransactionNotFound, "error.transaction_not_found"}
	ErrFileNotFound            = &Error{CodeFileNotFound, "error.file_not_found"}
	ErrImageNotFound           = &Error{CodeImageNotFound, "error.image_not_found"}
	ErrWrongPassword           = &Error{CodeWrongPassword, "error.wrong_password"}
	ErrEmployeeNonActive       = &Error{CodeEmployeeNonActive, "error.employee_non_active"}
)
