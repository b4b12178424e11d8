package main

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"backend/internal/blob"
	"backend/internal/config"
	"backend/internal/database"
	"backend/internal/handlers"
	"backend/internal/middleware"
	"backend/internal/repository"
)

func main() {
	config.Load()

	client, err := database.Connect(config.AppEnv.MongoURI)
	if err != nil {
		log.Fatal(err)
	}

	db := client.Database(config.AppEnv.DBName)

	log.Println("MongoDB connected to:", db.Name())

	if err := database.EnsureCarIndexes(db); err != nil {
		log.Printf("car index warning: %v", err)
	}
	if err := database.EnsureShopPhotoIndexes(db); err != nil {
		log.Printf("shop photo index warning: %v", err)
	}

	uploader, err := blob.NewUploader(context.Background(), config.AppEnv)
	if err != nil {
		log.Fatal(err)
	}

	cars := repository.NewCarRepository(db)
	logos := repository.NewLogoRepository(db)
	photos := repository.NewShopPhotoRepository(db)

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{config.AppEnv.AllowedOrigin},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.POST("/auth/login", handlers.Login(
		config.AppEnv.AdminPassword,
		config.AppEnv.AdminPasswordHash,
		config.AppEnv.JWTSecret,
		config.AppEnv.SessionTTL,
		config.AppEnv.CookieSecure,
	))
	r.POST("/auth/logout", handlers.Logout(config.AppEnv.CookieSecure))
	r.GET("/auth/check", handlers.Check(config.AppEnv.JWTSecret))

	r.GET("/cars", handlers.GetCars(cars))
	r.GET("/cars/:id", handlers.GetCar(cars))
	r.GET("/logo", handlers.GetLogo(logos))
	r.GET("/shop-photos", handlers.GetShopPhotos(photos))

	admin := r.Group("/")
	admin.Use(middleware.AdminAuth(config.AppEnv.JWTSecret))
	{
		admin.POST("/cars", handlers.CreateCar(cars, uploader))
		admin.PUT("/cars/:id", handlers.UpdateCar(cars, uploader))
		admin.DELETE("/cars/:id", handlers.DeleteCar(cars))

		admin.POST("/logo", handlers.SetLogo(logos, uploader))
		admin.DELETE("/logo", handlers.DeleteLogo(logos))

		admin.POST("/shop-photos", handlers.AddShopPhoto(photos, uploader))
		admin.DELETE("/shop-photos/:id", handlers.DeleteShopPhoto(photos))
	}

	r.Run(":" + config.AppEnv.Port)
}
