package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"moviweb/internal/config"
	"moviweb/internal/database"
	"moviweb/internal/middleware"
	"moviweb/internal/modules/admin"
	"moviweb/internal/modules/auth"
	"moviweb/internal/modules/catalog"
	"moviweb/internal/modules/contact"
	"moviweb/internal/modules/favorite"
	"moviweb/internal/omdb"
	jwtsvc "moviweb/internal/pkg/jwt"
	"moviweb/internal/repository"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal(err)
	}

	userRepo := repository.NewUserRepository(db)
	adminRepo := repository.NewAdminRepository(db)
	movieRepo := repository.NewMovieRepository(db)
	directorRepo := repository.NewDirectorRepository(db)
	genreRepo := repository.NewGenreRepository(db)
	favoriteRepo := repository.NewFavoriteRepository(db)
	contactRepo := repository.NewContactRepository(db)

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTTTL)
	metadata := omdb.New(cfg.OMDbAPIKey)

	authService := auth.NewService(userRepo, adminRepo, j)
	authHandler := auth.NewHandler(authService, cfg.UploadDir)

	catalogService := catalog.NewService(
		movieRepo,
		directorRepo,
		genreRepo,
		favoriteRepo,
		metadata,
		cfg.DefaultPoster,
	)
	catalogHandler := catalog.NewHandler(catalogService)

	favoriteService := favorite.NewService(favoriteRepo, movieRepo)
	favoriteHandler := favorite.NewHandler(favoriteService)

	adminService := admin.NewService(userRepo, movieRepo, favoriteRepo)
	adminHandler := admin.NewHandler(adminService)

	contactHandler := contact.NewHandler(contactRepo)

	r := gin.Default()
	r.Use(middleware.ErrorLogger())
	r.Static("/static", "./static")

	v1 := r.Group("/api/v1")
	{
		// public
		authHandler.RegisterPublicRoutes(v1)
		contactHandler.RegisterRoutes(v1)

		// any authenticated actor
		protected := v1.Group("/")
		protected.Use(middleware.JWTAuth(j))

		adminArea := protected.Group("/admin")
		adminArea.Use(middleware.AdminOnly())

		authHandler.RegisterProtectedRoutes(protected)
		catalogHandler.RegisterRoutes(protected, adminArea)
		adminHandler.RegisterRoutes(adminArea)

		// favorites belong to users only
		userArea := protected.Group("/")
		userArea.Use(middleware.UserOnly())
		{
			favoriteHandler.RegisterRoutes(userArea)
		}
	}

	log.Printf("listening on %s", cfg.ListenAddr)
	if err := r.Run(cfg.ListenAddr); err != nil {
		log.Fatal(err)
	}
}
