package domain

import "time"

// Favorite marks a movie as a favorite of a user. It is a join row,
// not a copy of the movie data; the unique index keeps at most one
// row per (user, movie) pair.
type Favorite struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	UserID    int64     `json:"user_id" gorm:"not null;index;uniqueIndex:idx_user_movie"`
	MovieID   int64     `json:"movie_id" gorm:"not null;index;uniqueIndex:idx_user_movie"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`

	Movie *Movie `json:"movie,omitempty" gorm:"foreignKey:MovieID"`
}

func (Favorite) TableName() string { return "favorites" }
