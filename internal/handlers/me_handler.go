package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ProtocolNetwork/shop-portal/internal/middleware"
	"github.com/ProtocolNetwork/shop-portal/internal/models"
	"github.com/ProtocolNetwork/shop-portal/internal/roles"
)

type MeHandler struct {
	db *gorm.DB
}

func NewMeHandler(db *gorm.DB) *MeHandler {
	return &MeHandler{db: db}
}

func (h *MeHandler) GetMe(c *gin.Context) {
	userIDVal, exists := c.Get(middleware.ContextUserID)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user_not_in_context"})
		return
	}

	userID, ok := userIDVal.(uint)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid_user_id_type"})
		return
	}

	var user models.User
	if err := h.db.First(&user, userID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "user_not_found"})
		return
	}

	role := c.MustGet(middleware.ContextUserRole).(roles.Role)

	c.JSON(http.StatusOK, gin.H{
		"user": gin.H{
			"id":      user.ID,
			"email":   user.Email,
			"name":    user.Name,
			"phone":   user.Phone,
			"role":    role,
			"vehicle": user.Vehicle,
		},
	})
}

// --------- Merge patch ---------

type UpdateMeRequest struct {
	Name    *string               `json:"name"`
	Phone   *string               `json:"phone"`
	Vehicle *UpdateVehicleRequest `json:"vehicle"`
}

type UpdateVehicleRequest struct {
	Make    *string `json:"make"`
	Model   *string `json:"model"`
	Year    *string `json:"year"`
	VIN     *string `json:"vin"`
	Plate   *string `json:"plate"`
	Mileage *string `json:"mileage"`
	Issues  *string `json:"issues"`
}

// UpdateMe applies merge semantics: only fields present in the body are
// written, everything else keeps its prior value. Idempotent.
func (h *MeHandler) UpdateMe(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var req UpdateMeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	updates := map[string]any{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Phone != nil {
		updates["phone"] = *req.Phone
	}
	if req.Vehicle != nil {
		v := req.Vehicle
		if v.Make != nil {
			updates["vehicle_make"] = *v.Make
		}
		if v.Model != nil {
			updates["vehicle_model"] = *v.Model
		}
		if v.Year != nil {
			updates["vehicle_year"] = *v.Year
		}
		if v.VIN != nil {
			updates["vehicle_vin"] = *v.VIN
		}
		if v.Plate != nil {
			updates["vehicle_plate"] = *v.Plate
		}
		if v.Mileage != nil {
			updates["vehicle_mileage"] = *v.Mileage
		}
		if v.Issues != nil {
			updates["vehicle_issues"] = *v.Issues
		}
	}

	if len(updates) > 0 {
		if err := h.db.Model(&models.User{}).
			Where("id = ?", userID).
			Updates(updates).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_save_profile"})
			return
		}
	}

	var user models.User
	if err := h.db.First(&user, userID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "user_not_found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user": gin.H{
			"id":      user.ID,
			"email":   user.Email,
			"name":    user.Name,
			"phone":   user.Phone,
			"vehicle": user.Vehicle,
		},
	})
}
