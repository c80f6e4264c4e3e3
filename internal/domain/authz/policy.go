package authz

// Role rol de un empleado. La jerarquía MANAGER→ADMIN→EMPLOYEE solo aplica a la
// gestión de empleados; el resto de recursos se gobierna por la tabla de política.
type Role string

const (
	RoleManager  Role = "MANAGER"
	RoleAdmin    Role = "ADMIN"
	RoleEmployee Role = "EMPLOYEE"
)

// Valid indica si el rol es uno de los tres conocidos.
func (r Role) Valid() bool {
	switch r {
	case RoleManager, RoleAdmin, RoleEmployee:
		return true
	}
	return false
}

// Action capacidad protegida por la política de autorización.
type Action string

const (
	ActionEmployeeManage  Action = "employee:manage"
	ActionCatalogManage   Action = "catalog:manage" // almacenes, categorías, medidas, productos, proveedores
	ActionImageUpload     Action = "image:upload"
	ActionStatisticsView  Action = "statistics:view"
	ActionNotificationSet Action = "notification:set"
	ActionStockIn         Action = "transaction:stock-in"
	ActionStockOut        Action = "transaction:stock-out"
)

// policy tabla explícita (acción, rol) → permitido. Mantenerla plana la hace
// auditable; cualquier par ausente se niega.
var policy = map[Action]map[Role]bool{
	ActionEmployeeManage:  {RoleManager: true, RoleAdmin: true},
	ActionCatalogManage:   {RoleAdmin: true},
	ActionImageUpload:     {RoleAdmin: true},
	ActionStatisticsView:  {RoleAdmin: true},
	ActionNotificationSet: {RoleAdmin: true},
	ActionStockIn:         {RoleAdmin: true},
	ActionStockOut:        {RoleEmployee: true},
}

// Allowed consulta la tabla de política.
func Allowed(r Role, a Action) bool {
	return policy[a][r]
}

// ManagedRole rol que el actor puede crear y administrar: MANAGER gestiona
// cuentas ADMIN y ADMIN gestiona cuentas EMPLOYEE. EMPLOYEE no gestiona a nadie.
func ManagedRole(actor Role) (Role, bool) {
	switch actor {
	case RoleManager:
		return RoleAdmin, true
	case RoleAdmin:
		return RoleEmployee, true
	}
	return "", false
}

// VisibleRoles roles de empleado que el actor puede listar y consultar.
func VisibleRoles(actor Role) []Role {
	switch actor {
	case RoleManager:
		return []Role{RoleAdmin, RoleEmployee}
	case RoleAdmin:
		return []Role{RoleEmployee}
	}
	return nil
}

// TransactionAllowed política por dirección: STOCK_IN exige ADMIN y STOCK_OUT
// exige EMPLOYEE. Cualquier otro tipo queda sin restricción, preservando el
// fall-through del sistema original.
func TransactionAllowed(r Role, txType string) bool {
	switch txType {
	case "STOCK_IN":
		return Allowed(r, ActionStockIn)
	case "STOCK_OUT":
		return Allowed(r, ActionStockOut)
	}
	return true
}

// Principal identidad del empleado autenticado, resuelta una vez por request y
// pasada explícitamente a cada caso de uso.
type Principal struct {
	EmployeeID     string
	EmployeeNumber int64
	Role           Role
	WarehouseID    string
}
