package main

import (
	"context"
	"log"

	"agrimatch/internal/config"
	"agrimatch/internal/db"
	"agrimatch/internal/model"
	"agrimatch/internal/repository"
	"agrimatch/internal/sample"
	"agrimatch/internal/service"
)

func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	// Run migrations to ensure schema is up to date
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Farmland{},
		&model.Favorite{},
	); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	userRepo := repository.NewUserRepository(gormDB)
	farmlandRepo := repository.NewFarmlandRepository(gormDB)
	farmlandService := service.NewFarmlandService(farmlandRepo, userRepo, sample.New())

	count, err := farmlandService.SeedSample(context.Background())
	if err != nil {
		log.Fatalf("Failed to seed farmlands: %v", err)
	}
	if count == 0 {
		log.Println("Listings already present, nothing to seed")
		return
	}
	log.Printf("Seeded %d farmlands", count)
}
