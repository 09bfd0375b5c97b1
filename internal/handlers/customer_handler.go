package handlers

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ProtocolNetwork/shop-portal/internal/config"
	"github.com/ProtocolNetwork/shop-portal/internal/httperr"
	"github.com/ProtocolNetwork/shop-portal/internal/httpresp"
	"github.com/ProtocolNetwork/shop-portal/internal/models"
	"github.com/ProtocolNetwork/shop-portal/internal/roles"
)

// Mechanic-side view over customer profiles.
type CustomerHandler struct {
	db     *gorm.DB
	config *config.Config
}

func NewCustomerHandler(db *gorm.DB, cfg *config.Config) *CustomerHandler {
	return &CustomerHandler{db: db, config: cfg}
}

type CustomerListItem struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

func (h *CustomerHandler) List(c *gin.Context) {
	var users []models.User
	if err := h.db.Order("created_at ASC").Find(&users).Error; err != nil {
		httperr.Internal(c, "failed_to_list_customers", "Could not list customers.")
		return
	}

	out := make([]CustomerListItem, 0, len(users))
	for _, u := range users {
		if roles.Resolve(u.Email, h.config.MechanicEmail) == roles.RoleMechanic {
			continue
		}
		out = append(out, CustomerListItem{
			ID:    u.ID,
			Name:  u.Name,
			Email: u.Email,
			Phone: u.Phone,
		})
	}

	httpresp.List(c, out)
}

func (h *CustomerHandler) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid customer id.")
		return
	}

	var user models.User
	if err := h.db.First(&user, uint(id)).Error; err != nil {
		httperr.NotFound(c, "customer_not_found", "Customer not found.")
		return
	}

	var aps []models.Appointment
	if err := h.db.
		Where("user_id = ?", user.ID).
		Order("created_at ASC").
		Find(&aps).Error; err != nil {
		httperr.Internal(c, "failed_to_list_appointments", "Could not list appointments.")
		return
	}

	c.JSON(200, gin.H{
		"customer": gin.H{
			"id":      user.ID,
			"email":   user.Email,
			"name":    user.Name,
			"phone":   user.Phone,
			"vehicle": user.Vehicle,
		},
		"suggested_service": ServiceRecommendations(user.Vehicle.Mileage),
		"appointments":      aps,
	})
}

// ServiceRecommendations maps mileage to maintenance suggestions shown
// on the mechanic's customer view.
func ServiceRecommendations(mileage string) string {
	m, err := strconv.Atoi(strings.TrimSpace(mileage))
	if err != nil || m == 0 {
		return "Mileage unknown — no service suggestions available."
	}

	var tips []string
	if m >= 3000 && m < 10000 {
		tips = append(tips, "Oil change recommended.")
	}
	if m >= 15000 {
		tips = append(tips, "Check air filter and rotate tires.")
	}
	if m >= 30000 {
		tips = append(tips, "Inspect brake pads and flush transmission fluid.")
	}

	if len(tips) == 0 {
		return "No major services needed yet."
	}
	return strings.Join(tips, " ")
}
