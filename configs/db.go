package configs

import (
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/kim-el/basic-pos/entity"
)

var db *gorm.DB

func DB() *gorm.DB {
	return db
}

func ConnectionDB(source string) {
	database, err := gorm.Open(sqlite.Open(source), &gorm.Config{})
	if err != nil {
		panic("failed to connect database")
	}
	db = database
}

func SetupDatabase() {

	// Migrate the schema
	db.AutoMigrate(
		&entity.User{},
		&entity.Product{},
		&entity.Transaction{}, &entity.TransactionItem{},
	)
}
