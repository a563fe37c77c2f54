package model

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

type User struct {
	UserID       uint    `gorm:"primaryKey" json:"id"`
	Username     string  `gorm:"unique;not null;type:varchar(80)" json:"username"`
	PasswordHash string  `gorm:"not null;type:varchar(120)" json:"-"`
	Role         string  `gorm:"not null;type:varchar(20);default:user" json:"role"`
	Orders       []Order `gorm:"foreignKey:UserID;references:Username" json:"-"`
	BaseModel
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// Caller is the identity resolved for one request. The role is looked up
// server side from the user store, never taken from the X-User-Role header.
type Caller struct {
	UserID string
	Role   string
}

func (c Caller) IsAdmin() bool {
	return c.Role == RoleAdmin
}
