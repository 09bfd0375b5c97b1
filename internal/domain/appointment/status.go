package appointment

import "github.com/ProtocolNetwork/shop-portal/internal/httperr"

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
)

// ===============================
// Validations
// ===============================

// CanComplete: only a pending appointment can be marked completed.
func CanComplete(current Status) error {
	if current != StatusPending {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

func InitialStatus() Status {
	return StatusPending
}
