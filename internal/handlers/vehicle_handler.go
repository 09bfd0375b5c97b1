package handlers

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/ProtocolNetwork/shop-portal/internal/httperr"
	"github.com/ProtocolNetwork/shop-portal/internal/vin"
)

type VehicleHandler struct {
	vin *vin.Client
}

func NewVehicleHandler(vinClient *vin.Client) *VehicleHandler {
	return &VehicleHandler{vin: vinClient}
}

type VinDecodeRequest struct {
	VIN string `json:"vin" binding:"required"`
}

// DecodeVin is best effort and read-only: a failed lookup returns blank
// fields and never touches the stored vehicle.
func (h *VehicleHandler) DecodeVin(c *gin.Context) {
	var req VinDecodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "A VIN is required.")
		return
	}

	decoded, err := h.vin.Decode(c.Request.Context(), req.VIN)
	if err != nil {
		log.Println("vin lookup failed:", err)
		c.JSON(200, vin.DecodedVehicle{})
		return
	}

	c.JSON(200, decoded)
}
