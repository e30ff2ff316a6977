package model

// Role is a capability tag a staff member may hold and a shift may require.
type Role string

const (
	RoleShiftLeader Role = "Shift Leader"
	RoleDriver      Role = "Driver"
	RoleCareStaff   Role = "Care Staff"
)

func (r Role) IsValid() bool {
	return r == RoleShiftLeader || r == RoleDriver || r == RoleCareStaff
}

// FillOrder returns roles in scheduling priority order. Specialist roles come
// first because fewer staff hold them.
func FillOrder() []Role {
	return []Role{RoleShiftLeader, RoleDriver, RoleCareStaff}
}
