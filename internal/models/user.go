package models

type Role = string

const (
	RoleAdmin        Role = "admin"
	RoleEventManager Role = "event_manager"
	RoleMedicalRep   Role = "medical_rep"
)

func Roles() []Role {
	return []Role{RoleAdmin, RoleEventManager, RoleMedicalRep}
}

type User struct {
	ID           int64  `json:"id"`
	Email        string `json:"email"`
	Role         Role   `json:"role"`
	PasswordHash string `json:"-"`
}

func (user User) IsAdmin() bool {
	return user.Role == RoleAdmin
}
