package main

import (
	"fmt"
	"log"
	"os"

	"golang.org/x/crypto/bcrypt"

	"moviweb/internal/database"
	"moviweb/internal/domain"
)

func main() {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "moviweb.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := database.Migrate(db); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	// Cleanup old data (in safe order to avoid foreign key errors)
	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM favorites")
	db.Exec("DELETE FROM movie_genres")
	db.Exec("DELETE FROM movies")
	db.Exec("DELETE FROM genres")
	db.Exec("DELETE FROM directors")
	db.Exec("DELETE FROM contacts")
	db.Exec("DELETE FROM users")
	db.Exec("DELETE FROM admins")

	// ================== ACCOUNTS ==================
	log.Println("Creating accounts...")

	adminHash, _ := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	admin := domain.Admin{
		Name:         "Site Admin",
		Email:        "admin@moviweb.local",
		PasswordHash: string(adminHash),
	}
	db.Create(&admin)
	log.Println("Admin created: admin@moviweb.local / admin123")

	users := make([]domain.User, 0, 3)
	for i, email := range []string{"alice@moviweb.local", "bob@moviweb.local", "carol@moviweb.local"} {
		hash, _ := bcrypt.GenerateFromPassword([]byte("user123"), bcrypt.DefaultCost)
		user := domain.User{
			Name:         fmt.Sprintf("User %d", i+1),
			Email:        email,
			PasswordHash: string(hash),
			AdminID:      &admin.ID,
		}
		db.Create(&user)
		users = append(users, user)
	}
	log.Printf("Created %d users (password user123)", len(users))

	// ================== CATALOG ==================
	log.Println("Creating directors and genres...")

	directors := map[string]*domain.Director{}
	for _, name := range []string{"Michael Mann", "Denis Villeneuve", "Greta Gerwig"} {
		d := &domain.Director{Name: name}
		db.Create(d)
		directors[name] = d
	}

	genres := map[string]*domain.Genre{}
	for _, name := range []string{"Action", "Crime", "Drama", "Sci-Fi", "Comedy"} {
		g := &domain.Genre{Name: name}
		db.Create(g)
		genres[name] = g
	}

	log.Println("Creating movies...")

	type seedMovie struct {
		title    string
		year     int
		rating   float64
		imdbID   string
		director string
		genres   []string
		owner    *domain.User
	}

	seeds := []seedMovie{
		{"Heat", 1995, 8.3, "tt0113277", "Michael Mann", []string{"Action", "Crime", "Drama"}, &users[0]},
		{"Collateral", 2004, 7.5, "tt0369339", "Michael Mann", []string{"Action", "Crime"}, &users[0]},
		{"Arrival", 2016, 7.9, "tt2543164", "Denis Villeneuve", []string{"Drama", "Sci-Fi"}, &users[1]},
		{"Dune", 2021, 8.0, "tt1160419", "Denis Villeneuve", []string{"Action", "Sci-Fi"}, &users[1]},
		{"Lady Bird", 2017, 7.4, "tt4925292", "Greta Gerwig", []string{"Comedy", "Drama"}, &users[2]},
	}

	movies := make([]domain.Movie, 0, len(seeds))
	for _, s := range seeds {
		movie := domain.Movie{
			Title:      s.title,
			Year:       s.year,
			Rating:     s.rating,
			ImdbID:     s.imdbID,
			Poster:     "/static/images/default_movie_poster.jpg",
			UserID:     &s.owner.ID,
			DirectorID: directors[s.director].ID,
		}
		db.Create(&movie)
		for _, g := range s.genres {
			db.Model(&movie).Association("Genres").Append(genres[g])
		}
		movies = append(movies, movie)
	}
	log.Printf("Created %d movies", len(movies))

	// One movie owned by the admin directly
	adminMovie := domain.Movie{
		Title:      "Blackhat",
		Year:       2015,
		Rating:     5.5,
		ImdbID:     "tt2717822",
		Poster:     "/static/images/default_movie_poster.jpg",
		AdminID:    &admin.ID,
		DirectorID: directors["Michael Mann"].ID,
	}
	db.Create(&adminMovie)

	// ================== FAVORITES ==================
	log.Println("Creating favorites...")
	db.Create(&domain.Favorite{UserID: users[0].ID, MovieID: movies[2].ID})
	db.Create(&domain.Favorite{UserID: users[1].ID, MovieID: movies[0].ID})
	db.Create(&domain.Favorite{UserID: users[2].ID, MovieID: movies[3].ID})

	log.Println("Seed complete.")
}
