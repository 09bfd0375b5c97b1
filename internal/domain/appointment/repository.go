package appointment

import (
	"context"

	"github.com/ProtocolNetwork/shop-portal/internal/models"
)

type Repository interface {
	// -------- Profile --------
	GetUserByID(
		ctx context.Context,
		id uint,
	) (*models.User, error)

	SaveVehicleIssues(
		ctx context.Context,
		userID uint,
		issues string,
	) error

	// -------- Appointment (create / read) --------
	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	GetAppointmentByID(
		ctx context.Context,
		appointmentID uint,
	) (*models.Appointment, error)

	ListAppointmentsByUser(
		ctx context.Context,
		userID uint,
	) ([]models.Appointment, error)

	ListAllAppointments(
		ctx context.Context,
	) ([]models.Appointment, error)

	// -------- Appointment (state change) --------
	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	DeleteAppointment(
		ctx context.Context,
		appointmentID uint,
	) error
}
