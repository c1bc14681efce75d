package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/kim-el/basic-pos/configs"
	"github.com/kim-el/basic-pos/controllers"
	"github.com/kim-el/basic-pos/middlewares"
	"github.com/kim-el/basic-pos/ws"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config, hub *ws.OrderHub) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Controllers
	authCtrl := controllers.NewAuthController(db, cfg)
	productCtrl := controllers.NewProductController(db)
	txnCtrl := controllers.NewTransactionController(db)
	salesCtrl := controllers.NewSalesController(db)
	liveCtrl := controllers.NewLiveOrderController(hub)

	// Order relay: จอทุกจอ (cashier/kitchen/customer) ต่อที่นี่
	// ไม่มี auth ตรงนี้ (demo): ห้องเลือกด้วย join-restaurant message
	r.GET("/ws/orders", hub.HandleWebSocket)

	// Auth (public)
	a := r.Group("/auth")
	{
		a.POST("/register", authCtrl.Register)
		a.POST("/login", authCtrl.Login)
	}

	// Auth (protected)
	aAuth := a.Group("", middlewares.AuthMiddleware(cfg.JWTSecret))
	{
		aAuth.GET("/me", authCtrl.Me)
	}

	api := r.Group("/api")
	{
		api.GET("/products", productCtrl.List)
		api.POST("/transactions", txnCtrl.Create)
		api.GET("/daily-sales", salesCtrl.Today)
		api.GET("/restaurants/:id/order", liveCtrl.Current)
	}

	// Admin (admin only)
	admin := api.Group("", middlewares.AuthMiddleware(cfg.JWTSecret, "admin"))
	{
		admin.POST("/products", productCtrl.Create)
		admin.GET("/transactions", txnCtrl.List)
	}
}
