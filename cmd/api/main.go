package main

import (
	"context"
	"log"
	"net/http"

	_ "github.com/Ahmed-Ezz-Eldin/mern-movie-app/docs" // swagger docs

	"github.com/Ahmed-Ezz-Eldin/mern-movie-app/internal/cache"
	"github.com/Ahmed-Ezz-Eldin/mern-movie-app/internal/config"
	"github.com/Ahmed-Ezz-Eldin/mern-movie-app/internal/db"
	"github.com/Ahmed-Ezz-Eldin/mern-movie-app/internal/handler"
	"github.com/Ahmed-Ezz-Eldin/mern-movie-app/internal/repository"
	"github.com/Ahmed-Ezz-Eldin/mern-movie-app/internal/service"
	"github.com/Ahmed-Ezz-Eldin/mern-movie-app/internal/storage"

	"github.com/rs/cors"
)

// @title Movie Catalog API
// @version 1.0
// @description Bilingual movie catalog with reviews and Cloudinary media
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.Load()

	db.InitMongo(cfg)
	if err := db.EnsureIndexes(context.Background()); err != nil {
		log.Fatalf("[mongo] indexes: %v", err)
	}
	cache.InitRedis(cfg)

	assets, err := storage.NewCloudinary(cfg.CloudinaryURL)
	if err != nil {
		log.Fatalf("[cloudinary] %v", err)
	}

	// repos
	userRepo := repository.NewUserRepository()
	movieRepo := repository.NewMovieRepository()
	reviewRepo := repository.NewReviewRepository()

	// services
	authSvc := service.NewAuthService(userRepo, cfg.JWTSecret)
	movieSvc := service.NewMovieService(movieRepo, reviewRepo, userRepo, assets)
	reviewSvc := service.NewReviewService(reviewRepo, movieRepo, userRepo)

	// handlers
	r := handler.NewRouter(handler.Deps{
		Auth:      handler.NewAuthHandler(authSvc, assets),
		Movies:    handler.NewMovieHandler(movieSvc, assets),
		Reviews:   handler.NewReviewHandler(reviewSvc),
		JWTSecret: cfg.JWTSecret,
	})

	c := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	})

	log.Printf("HTTP listening on :%s", cfg.HTTPPort)
	log.Fatal(http.ListenAndServe(":"+cfg.HTTPPort, c.Handler(r)))
}
