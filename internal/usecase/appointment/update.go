package appointment

import (
	"context"
	"strings"
	"time"

	"github.com/ProtocolNetwork/shop-portal/internal/audit"
	domain "github.com/ProtocolNetwork/shop-portal/internal/domain/appointment"
	"github.com/ProtocolNetwork/shop-portal/internal/httperr"
	"github.com/ProtocolNetwork/shop-portal/internal/models"
	"github.com/ProtocolNetwork/shop-portal/internal/roles"
)

type UpdateAppointmentInput struct {
	UserID        uint
	Role          roles.Role
	AppointmentID uint

	// Partial edit: nil fields are left untouched. Last write wins.
	Date   *string
	Time   *string
	Reason *string
}

type UpdateAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUpdateAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *UpdateAppointment {
	return &UpdateAppointment{
		repo:  repo,
		audit: audit,
	}
}

func (uc *UpdateAppointment) Execute(
	ctx context.Context,
	in UpdateAppointmentInput,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointmentByID(ctx, in.AppointmentID)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	if !canAccess(ap, in.UserID, in.Role) {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	if in.Date != nil {
		if _, err := time.Parse("2006-01-02", *in.Date); err != nil {
			return nil, httperr.ErrBusiness("invalid_date_or_time")
		}
		ap.Date = *in.Date
	}

	if in.Time != nil {
		if _, err := time.Parse("15:04", *in.Time); err != nil {
			return nil, httperr.ErrBusiness("invalid_date_or_time")
		}
		ap.Time = *in.Time
	}

	if in.Reason != nil {
		// The reason may change but never go empty.
		if strings.TrimSpace(*in.Reason) == "" {
			return nil, httperr.ErrBusiness("empty_reason")
		}
		ap.Reason = *in.Reason
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.UserID,
		Action:   "appointment_updated",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
