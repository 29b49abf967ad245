package domain

type Movie struct {
	ID         int64   `json:"id" gorm:"primaryKey"`
	Title      string  `json:"title" gorm:"not null;index"`
	Year       int     `json:"year"`
	Rating     float64 `json:"rating"`
	Poster     string  `json:"poster"`
	Plot       string  `json:"plot" gorm:"type:text"`
	ImdbID     string  `json:"imdb_id" gorm:"column:imdb_id;index"`
	UserID     *int64  `json:"user_id,omitempty" gorm:"index"`
	AdminID    *int64  `json:"admin_id,omitempty" gorm:"index"`
	DirectorID int64   `json:"director_id" gorm:"not null"`

	Director *Director `json:"director,omitempty" gorm:"foreignKey:DirectorID"`
	Genres   []Genre   `json:"genres,omitempty" gorm:"many2many:movie_genres"`
}

func (Movie) TableName() string { return "movies" }

type Director struct {
	ID   int64  `json:"id" gorm:"primaryKey"`
	Name string `json:"name" gorm:"uniqueIndex;not null"`
}

func (Director) TableName() string { return "directors" }

type Genre struct {
	ID   int64  `json:"id" gorm:"primaryKey"`
	Name string `json:"name" gorm:"uniqueIndex;not null"`
}

func (Genre) TableName() string { return "genres" }
