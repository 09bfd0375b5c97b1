package appointment

import (
	"context"

	"github.com/ProtocolNetwork/shop-portal/internal/audit"
	domain "github.com/ProtocolNetwork/shop-portal/internal/domain/appointment"
	"github.com/ProtocolNetwork/shop-portal/internal/httperr"
	"github.com/ProtocolNetwork/shop-portal/internal/roles"
)

type DeleteAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewDeleteAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *DeleteAppointment {
	return &DeleteAppointment{
		repo:  repo,
		audit: audit,
	}
}

func (uc *DeleteAppointment) Execute(
	ctx context.Context,
	userID uint,
	role roles.Role,
	appointmentID uint,
) error {

	// Deletion is a mechanic-only mutation, enforced here so the
	// invariant holds for every caller, not just the router.
	if role != roles.RoleMechanic {
		return httperr.ErrBusiness("mechanic_only")
	}

	ap, err := uc.repo.GetAppointmentByID(ctx, appointmentID)
	if err != nil {
		return httperr.ErrBusiness("appointment_not_found")
	}

	if err := uc.repo.DeleteAppointment(ctx, ap.ID); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "appointment_deleted",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return nil
}
