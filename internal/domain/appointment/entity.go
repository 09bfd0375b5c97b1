package appointment

import (
	"fmt"
	"time"

	"github.com/ProtocolNetwork/shop-portal/internal/models"
)

// ===============================
// Domain Actions
// ===============================

// NewPublicID composes the externally visible id from the owning user
// and the creation instant, unique per creation event.
func NewPublicID(userID uint, now time.Time) string {
	return fmt.Sprintf("%d-%d", userID, now.UnixMilli())
}

func Complete(ap *models.Appointment, now time.Time) error {
	if err := CanComplete(Status(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusCompleted)
	ap.CompletedAt = &now
	return nil
}
