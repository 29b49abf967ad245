package domain

type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// Actor is the authenticated identity a request acts as. It is passed
// explicitly into services so that scoping never depends on ambient
// session state.
type Actor struct {
	ID   int64
	Role Role
}

func (a Actor) IsAdmin() bool { return a.Role == RoleAdmin }
