package main

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"

	auth "github.com/MedusCode/kupipodariday-backend/internal/authService"
	"github.com/MedusCode/kupipodariday-backend/internal/config"
	"github.com/MedusCode/kupipodariday-backend/internal/database"
	offers "github.com/MedusCode/kupipodariday-backend/internal/offerService"
	"github.com/MedusCode/kupipodariday-backend/internal/repository"
	"github.com/MedusCode/kupipodariday-backend/internal/server"
	users "github.com/MedusCode/kupipodariday-backend/internal/userService"
	wishes "github.com/MedusCode/kupipodariday-backend/internal/wishService"
	wishlists "github.com/MedusCode/kupipodariday-backend/internal/wishlistService"
	"github.com/MedusCode/kupipodariday-backend/utils"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		utils.Fatal("Failed to load configuration", map[string]any{"error": err.Error()})
	}

	utils.SetLevel(cfg.Log.Level)
	gin.SetMode(cfg.Server.Mode)

	db, err := database.Init(cfg.Database)
	if err != nil {
		utils.Fatal("Failed to initialize database", map[string]any{"error": err.Error()})
	}

	wishRepo := repository.NewWishRepo(db)
	offerRepo := repository.NewOfferRepo(db)
	wishlistRepo := repository.NewWishlistRepo(db)
	userRepo := repository.NewUserRepo(db)

	userSvc := users.NewService(userRepo, wishRepo)
	authSvc := auth.NewService(userSvc, cfg.JWT.Secret, time.Duration(cfg.JWT.TTLHours)*time.Hour)

	router := server.SetupRouter(server.Services{
		Auth:      authSvc,
		Users:     userSvc,
		Wishes:    wishes.NewService(wishRepo),
		Offers:    offers.NewService(offerRepo, wishRepo),
		Wishlists: wishlists.NewService(wishlistRepo),
	})

	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	utils.Info("Starting server", map[string]any{"addr": addr})
	if err := router.Run(addr); err != nil {
		utils.Fatal("Failed to start server", map[string]any{"error": err.Error()})
	}
}
