package appointment

import (
	"context"

	domain "github.com/ProtocolNetwork/shop-portal/internal/domain/appointment"
	"github.com/ProtocolNetwork/shop-portal/internal/models"
	"github.com/ProtocolNetwork/shop-portal/internal/roles"
)

type ListAppointments struct {
	repo domain.Repository
}

func NewListAppointments(
	repo domain.Repository,
) *ListAppointments {
	return &ListAppointments{
		repo: repo,
	}
}

// The mechanic sees every appointment in the shop, a customer only
// their own.
func (uc *ListAppointments) Execute(
	ctx context.Context,
	userID uint,
	role roles.Role,
) ([]models.Appointment, error) {

	if role == roles.RoleMechanic {
		return uc.repo.ListAllAppointments(ctx)
	}

	return uc.repo.ListAppointmentsByUser(ctx, userID)
}
