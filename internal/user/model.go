package user

type User struct {
	ID           int64
	Username     string
	PasswordHash string
	IsAdmin      bool
}

// Role is derived from the admin flag once, at login.
type Role string

const (
	RoleEmployee Role = "employee"
	RoleAdmin    Role = "admin"
)

func (u User) Role() Role {
	if u.IsAdmin {
		return RoleAdmin
	}
	return RoleEmployee
}
