package main

import (
	"fmt"
	"log"

	"github.com/gin-gonic/gin"

	"github.com/kim-el/basic-pos/configs"
	"github.com/kim-el/basic-pos/middlewares"
	"github.com/kim-el/basic-pos/routes"
	"github.com/kim-el/basic-pos/ws"
)

func main() {
	cfg := configs.LoadConfig()

	// DB
	configs.ConnectionDB(cfg.DBSource)
	db := configs.DB()

	// migrate
	configs.SetupDatabase()

	if err := configs.SeedAdmin(); err != nil {
		log.Fatalf("seed admin failed: %v", err)
	}
	if err := configs.SeedProducts(); err != nil {
		log.Fatalf("seed products failed: %v", err)
	}

	// Order relay (composition root เป็นเจ้าของ ไม่ใช่ global)
	hub := ws.NewOrderHub()
	go hub.Run()

	// HTTP
	r := gin.Default()

	// ✅ Enable CORS
	r.Use(middlewares.CORSMiddleware())

	// ✅ Register API + WS routes
	routes.RegisterRoutes(r, db, cfg, hub)

	// ✅ Start server
	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Println("🚀 POS server running at", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
