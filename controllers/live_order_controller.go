package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/kim-el/basic-pos/pkg/resp"
	"github.com/kim-el/basic-pos/ws"
)

// อ่านออเดอร์สดจาก hub (สำหรับจอที่ยังต่อ socket ไม่เสร็จ)
type LiveOrderController struct {
	Hub *ws.OrderHub
}

func NewLiveOrderController(hub *ws.OrderHub) *LiveOrderController {
	return &LiveOrderController{Hub: hub}
}

// GET /api/restaurants/:id/order
func (ctl *LiveOrderController) Current(c *gin.Context) {
	restaurantID := c.Param("id")
	if restaurantID == "" {
		resp.BadRequest(c, "missing restaurant id")
		return
	}
	resp.OK(c, gin.H{
		"restaurantId": restaurantID,
		"items":        ctl.Hub.Order(restaurantID),
		"members":      ctl.Hub.Members(restaurantID),
	})
}
