package server

import (
	"github.com/gin-gonic/gin"

	auth "github.com/MedusCode/kupipodariday-backend/internal/authService"
	offers "github.com/MedusCode/kupipodariday-backend/internal/offerService"
	users "github.com/MedusCode/kupipodariday-backend/internal/userService"
	wishes "github.com/MedusCode/kupipodariday-backend/internal/wishService"
	wishlists "github.com/MedusCode/kupipodariday-backend/internal/wishlistService"
	handler "github.com/MedusCode/kupipodariday-backend/services/app/handler"
)

// Services bundles everything the router wires into handlers.
type Services struct {
	Auth      *auth.Service
	Users     *users.Service
	Wishes    *wishes.Service
	Offers    *offers.Service
	Wishlists *wishlists.Service
}

// SetupRouter configures all Gin routes for the application
func SetupRouter(svc Services) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery())          // recover from panics
	router.Use(RequestIDMiddleware)     // correlation id per request
	router.Use(RequestLoggerMiddleware) // custom request logging

	authHandler := handler.NewAuthHandler(svc.Auth)
	usersHandler := handler.NewUsersHandler(svc.Users, svc.Wishes)
	wishesHandler := handler.NewWishesHandler(svc.Wishes)
	offersHandler := handler.NewOffersHandler(svc.Offers)
	wishlistsHandler := handler.NewWishlistsHandler(svc.Wishlists)

	// Public surface: registration, login and the two showcase feeds.
	router.POST("/signup", authHandler.SignupHandler)
	router.POST("/signin", authHandler.SigninHandler)
	router.GET("/wishes/last", wishesHandler.GetLastWishesHandler)
	router.GET("/wishes/top", wishesHandler.GetTopWishesHandler)

	authorized := router.Group("", AuthMiddleware(svc.Auth, svc.Users))

	userRoutes := authorized.Group("/users")
	{
		userRoutes.GET("/me", usersHandler.GetMeHandler)
		userRoutes.PATCH("/me", usersHandler.UpdateMeHandler)
		userRoutes.GET("/me/wishes", usersHandler.GetMyWishesHandler)
		userRoutes.GET("/:username", usersHandler.GetUserHandler)
		userRoutes.GET("/:username/wishes", usersHandler.GetUserWishesHandler)
		userRoutes.POST("/find", usersHandler.FindUsersHandler)
	}

	wishRoutes := authorized.Group("/wishes")
	{
		wishRoutes.POST("", wishesHandler.CreateWishHandler)
		wishRoutes.GET("/:id", wishesHandler.GetWishHandler)
		wishRoutes.PATCH("/:id", wishesHandler.UpdateWishHandler)
		wishRoutes.DELETE("/:id", wishesHandler.DeleteWishHandler)
		wishRoutes.POST("/:id/copy", wishesHandler.CopyWishHandler)
	}

	offerRoutes := authorized.Group("/offers")
	{
		offerRoutes.POST("", offersHandler.CreateOfferHandler)
		offerRoutes.GET("", offersHandler.GetOffersHandler)
		offerRoutes.GET("/:id", offersHandler.GetOfferHandler)
	}

	wishlistRoutes := authorized.Group("/wishlists")
	{
		wishlistRoutes.POST("", wishlistsHandler.CreateWishlistHandler)
		wishlistRoutes.GET("", wishlistsHandler.GetWishlistsHandler)
		wishlistRoutes.GET("/:id", wishlistsHandler.GetWishlistHandler)
		wishlistRoutes.PATCH("/:id", wishlistsHandler.UpdateWishlistHandler)
		wishlistRoutes.DELETE("/:id", wishlistsHandler.DeleteWishlistHandler)
	}

	return router
}
