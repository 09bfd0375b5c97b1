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
	"github.com/ProtocolNetwork/shop-portal/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	UserID uint
	Role   roles.Role

	Date   string
	Time   string
	Reason string
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	tz    string
}

func NewCreateAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
	tz string,
) *CreateAppointment {
	return &CreateAppointment{
		repo:  repo,
		audit: audit,
		tz:    tz,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	// Absent a role, no appointment may be created.
	if in.Role == roles.RoleNone {
		return nil, httperr.ErrBusiness("role_required")
	}

	// Reason must be non-empty before anything is persisted.
	if strings.TrimSpace(in.Reason) == "" {
		return nil, httperr.ErrBusiness("empty_reason")
	}

	if _, err := time.Parse("2006-01-02", in.Date); err != nil {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}
	if _, err := time.Parse("15:04", in.Time); err != nil {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}

	// Snapshot of the profile at creation time.
	user, err := uc.repo.GetUserByID(ctx, in.UserID)
	if err != nil {
		return nil, err
	}

	now := timezone.NowIn(uc.tz)

	ap := &models.Appointment{
		PublicID: domain.NewPublicID(in.UserID, now),
		UserID:   in.UserID,
		Name:     user.Name,
		Phone:    user.Phone,
		Vehicle:  user.Vehicle,
		Date:     in.Date,
		Time:     in.Time,
		Reason:   in.Reason,
		Status:   string(domain.InitialStatus()),
	}

	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.UserID,
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
