package repository

import (
	"gorm.io/gorm"

	"moviweb/internal/domain"
)

// Scope narrows a query to the rows an actor may see. Scopes compose
// with gorm's Scopes(...) so listing queries stay declarative.
type Scope func(*gorm.DB) *gorm.DB

// Unscoped leaves the query unfiltered (an admin's "all" view).
func Unscoped() Scope {
	return func(db *gorm.DB) *gorm.DB { return db }
}

// MoviesOwnedBy filters movies down to the actor's own rows: admins
// match on admin_id, users on user_id.
func MoviesOwnedBy(actor domain.Actor) Scope {
	if actor.IsAdmin() {
		return func(db *gorm.DB) *gorm.DB {
			return db.Where("admin_id = ?", actor.ID)
		}
	}
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("user_id = ?", actor.ID)
	}
}

// MoviesAddedByUser filters movies to those a specific user added,
// regardless of which admin manages that user.
func MoviesAddedByUser(userID int64) Scope {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("user_id = ?", userID)
	}
}

// MoviesExcluding drops the given movie ids from the result. Used for
// the "my movies minus favorites" view; the subtraction happens before
// the listing engine ever sees the rows.
func MoviesExcluding(ids []int64) Scope {
	if len(ids) == 0 {
		return Unscoped()
	}
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("id NOT IN ?", ids)
	}
}

// UsersManagedBy filters users to those belonging to an admin.
func UsersManagedBy(adminID int64) Scope {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("admin_id = ?", adminID)
	}
}
