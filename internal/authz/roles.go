package authz

import "turadmin/internal/models"

// Имена ролей, которые отдаёт /api/user.
const (
	RoleAdmin        = "Admin"
	RoleManager      = "Manager"
	RoleSaleOperator = "SaleOperator"
	RoleSpecialist   = "Specialist"
)

func hasRole(roles []models.Role, name string) bool {
	for _, r := range roles {
		if r.Name == name {
			return true
		}
	}
	return false
}

// IsAdminOrManager — этим ролям разрешено менять ответственного
// в режиме редактирования договора.
func IsAdminOrManager(u *models.User) bool {
	if u == nil {
		return false
	}
	return hasRole(u.Roles, RoleAdmin) || hasRole(u.Roles, RoleManager)
}
