package entities

import "time"

type User struct {
	ID        string
	Email     string
	Role      UserRole
	CreatedAt time.Time
}

type UserRole string

const (
	RoleSuperuser      UserRole = "superuser"
	RoleMillAdmin      UserRole = "admin_molino"
	RoleMillOperator   UserRole = "operario_molino"
	RoleBakeryOwner    UserRole = "dueno_panaderia"
	RoleBakeryEmployee UserRole = "empleado_panaderia"
)

func (r UserRole) String() string {
	return string(r)
}

func (r UserRole) IsValid() bool {
	switch r {
	case RoleSuperuser, RoleMillAdmin, RoleMillOperator, RoleBakeryOwner, RoleBakeryEmployee:
		return true
	default:
		return false
	}
}
