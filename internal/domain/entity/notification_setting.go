package entity

// NotificationSetting configura la antelación (en días) de las alertas de
// vencimiento. Se usa la primera fila no borrada; si no existe, se crea.
type NotificationSetting struct {
	Base
	BeforeDay int
}
