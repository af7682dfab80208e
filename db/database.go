package db

import (
	"fmt"
	"log"

	"github.com/ngodingskuyy/doctypes-go/config"
	"github.com/ngodingskuyy/doctypes-go/internal/domain/doctype"
	"github.com/ngodingskuyy/doctypes-go/internal/domain/document"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func Init() {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		config.DbHost,
		config.DbPort,
		config.DbUser,
		config.DbPassword,
		config.DbName,
	)

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to DB:", err)
	}

	if err := Migrate(DB); err != nil {
		log.Fatal("Failed to auto migrate:", err)
	}

	log.Println("Database connected and migrated")
}

func Migrate(gormDB *gorm.DB) error {
	return gormDB.AutoMigrate(
		&doctype.Doctype{},
		&doctype.DoctypeField{},
		&document.Document{},
	)
}

func InitWithGormDB(gormDB *gorm.DB) {
	DB = gormDB
}
