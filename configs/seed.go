package configs

import (
	"log"

	"golang.org/x/crypto/bcrypt"

	"github.com/kim-el/basic-pos/entity"
)

// สร้าง admin ครั้งแรก
func SeedAdmin() error {
	db := DB()
	email := getEnv("ADMIN_EMAIL", "")
	pass := getEnv("ADMIN_PASSWORD", "")
	if email == "" || pass == "" {
		log.Println("⚠️ skip seeding admin: missing ADMIN_EMAIL/ADMIN_PASSWORD")
		return nil
	}

	var count int64
	db.Model(&entity.User{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		log.Println("ℹ️ admin already exists:", email)
		return nil
	}

	hash, _ := bcrypt.GenerateFromPassword([]byte(pass), bcrypt.DefaultCost)
	admin := entity.User{
		Email:     email,
		Password:  string(hash),
		FirstName: "Admin",
		LastName:  "Seed",
		Role:      "admin",
	}
	return db.Create(&admin).Error
}

// Seed สินค้าตั้งต้นของหน้าร้าน
func SeedProducts() error {
	db := DB()

	products := []entity.Product{
		{Name: "Coffee", Price: 4.50, Category: "Beverages", Description: "Fresh brewed coffee", StockQuantity: 50, IsActive: true},
		{Name: "Croissant", Price: 3.25, Category: "Bakery", Description: "Buttery croissant", StockQuantity: 20, IsActive: true},
		{Name: "Caesar Salad", Price: 12.99, Category: "Food", Description: "Fresh caesar salad with croutons", StockQuantity: 15, IsActive: true},
		{Name: "Orange Juice", Price: 3.75, Category: "Beverages", Description: "Freshly squeezed orange juice", StockQuantity: 30, IsActive: true},
		{Name: "Chocolate Muffin", Price: 4.25, Category: "Bakery", Description: "Double chocolate chip muffin", StockQuantity: 25, IsActive: true},
		{Name: "Sandwich", Price: 8.50, Category: "Food", Description: "Turkey and cheese sandwich", StockQuantity: 12, IsActive: true},
		{Name: "Latte", Price: 5.25, Category: "Beverages", Description: "Espresso with steamed milk", StockQuantity: 40, IsActive: true},
		{Name: "Bagel", Price: 2.75, Category: "Bakery", Description: "Everything bagel with cream cheese", StockQuantity: 18, IsActive: true},
	}

	for _, p := range products {
		var existing entity.Product
		// ไม่ทับของที่แก้ไว้แล้ว: สร้างเฉพาะตอนยังไม่มี
		if err := db.Where(entity.Product{Name: p.Name}).Attrs(p).FirstOrCreate(&existing).Error; err != nil {
			return err
		}
	}

	log.Println("✅ Product catalogue seeded")
	return nil
}
