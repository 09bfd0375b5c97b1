package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ProtocolNetwork/shop-portal/internal/httperr"
	"github.com/ProtocolNetwork/shop-portal/internal/httpresp"
	"github.com/ProtocolNetwork/shop-portal/internal/middleware"
	"github.com/ProtocolNetwork/shop-portal/internal/roles"
	ucAppointment "github.com/ProtocolNetwork/shop-portal/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	createUC   *ucAppointment.CreateAppointment
	updateUC   *ucAppointment.UpdateAppointment
	completeUC *ucAppointment.CompleteAppointment
	deleteUC   *ucAppointment.DeleteAppointment
	listUC     *ucAppointment.ListAppointments
}

func NewAppointmentHandler(
	createUC *ucAppointment.CreateAppointment,
	updateUC *ucAppointment.UpdateAppointment,
	completeUC *ucAppointment.CompleteAppointment,
	deleteUC *ucAppointment.DeleteAppointment,
	listUC *ucAppointment.ListAppointments,
) *AppointmentHandler {
	return &AppointmentHandler{
		createUC:   createUC,
		updateUC:   updateUC,
		completeUC: completeUC,
		deleteUC:   deleteUC,
		listUC:     listUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAppointmentRequest struct {
	Date   string `json:"date" binding:"required"`
	Time   string `json:"time" binding:"required"`
	Reason string `json:"reason" binding:"required"`
}

type UpdateAppointmentRequest struct {
	Date   *string `json:"date"`
	Time   *string `json:"time"`
	Reason *string `json:"reason"`
}

// ======================================================
// HELPERS
// ======================================================

func principal(c *gin.Context) (uint, roles.Role) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	role := c.MustGet(middleware.ContextUserRole).(roles.Role)
	return userID, role
}

func writeBusinessError(c *gin.Context, err error) bool {
	code, ok := httperr.BusinessCode(err)
	if !ok {
		return false
	}

	switch code {
	case "appointment_not_found":
		httperr.NotFound(c, code, "Appointment not found.")
	case "mechanic_only", "role_required":
		httperr.Forbidden(c, code, "Not allowed for this role.")
	case "empty_reason":
		httperr.BadRequest(c, code, "An appointment needs a reason.")
	case "invalid_date_or_time":
		httperr.BadRequest(c, code, "Invalid date or time.")
	case "invalid_state":
		httperr.BadRequest(c, code, "Appointment cannot change state.")
	default:
		httperr.BadRequest(c, code, "Request refused.")
	}
	return true
}

// ======================================================
// CREATE
// ======================================================

// Create returns the complete persisted record so the client can append
// it to its list without a refetch.
func (h *AppointmentHandler) Create(c *gin.Context) {
	userID, role := principal(c)

	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid appointment data.")
		return
	}

	ap, err := h.createUC.Execute(c.Request.Context(), ucAppointment.CreateAppointmentInput{
		UserID: userID,
		Role:   role,
		Date:   req.Date,
		Time:   req.Time,
		Reason: req.Reason,
	})
	if err != nil {
		if writeBusinessError(c, err) {
			return
		}
		httperr.Internal(c, "failed_to_create_appointment", "Could not create the appointment.")
		return
	}

	c.JSON(201, ap)
}

// ======================================================
// LIST
// ======================================================

func (h *AppointmentHandler) List(c *gin.Context) {
	userID, role := principal(c)

	aps, err := h.listUC.Execute(c.Request.Context(), userID, role)
	if err != nil {
		httperr.Internal(c, "failed_to_list_appointments", "Could not list appointments.")
		return
	}

	httpresp.List(c, aps)
}

// ======================================================
// UPDATE
// ======================================================

func (h *AppointmentHandler) Update(c *gin.Context) {
	userID, role := principal(c)

	id, err := parseID(c)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid appointment id.")
		return
	}

	var req UpdateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid appointment data.")
		return
	}

	ap, err := h.updateUC.Execute(c.Request.Context(), ucAppointment.UpdateAppointmentInput{
		UserID:        userID,
		Role:          role,
		AppointmentID: id,
		Date:          req.Date,
		Time:          req.Time,
		Reason:        req.Reason,
	})
	if err != nil {
		if writeBusinessError(c, err) {
			return
		}
		httperr.Internal(c, "failed_to_update_appointment", "Could not update the appointment.")
		return
	}

	c.JSON(200, ap)
}

// ======================================================
// COMPLETE
// ======================================================

func (h *AppointmentHandler) Complete(c *gin.Context) {
	userID, role := principal(c)

	id, err := parseID(c)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid appointment id.")
		return
	}

	ap, err := h.completeUC.Execute(c.Request.Context(), userID, role, id)
	if err != nil {
		if writeBusinessError(c, err) {
			return
		}
		httperr.Internal(c, "failed_to_complete_appointment", "Could not complete the appointment.")
		return
	}

	c.JSON(200, ap)
}

// ======================================================
// DELETE
// ======================================================

func (h *AppointmentHandler) Delete(c *gin.Context) {
	userID, role := principal(c)

	id, err := parseID(c)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid appointment id.")
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), userID, role, id); err != nil {
		if writeBusinessError(c, err) {
			return
		}
		httperr.Internal(c, "failed_to_delete_appointment", "Could not delete the appointment.")
		return
	}

	c.JSON(200, gin.H{"deleted": true})
}

func parseID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
