package appointment

import (
	"github.com/ProtocolNetwork/shop-portal/internal/models"
	"github.com/ProtocolNetwork/shop-portal/internal/roles"
)

// The mechanic may touch any appointment, a customer only their own.
func canAccess(ap *models.Appointment, userID uint, role roles.Role) bool {
	if role == roles.RoleMechanic {
		return true
	}
	return role == roles.RoleCustomer && ap.UserID == userID
}
