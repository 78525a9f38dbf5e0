package models

// User is the authentication record. Password holds a bcrypt hash and is
// never serialised back to the shell.
type User struct {
	ID        string `gorm:"primaryKey" json:"id"`
	Username  string `json:"username"`
	Password  string `json:"-"`
	Role      string `json:"role"`
	CreatedAt string `json:"createdAt,omitempty"`
}

func (User) TableName() string { return "users" }
