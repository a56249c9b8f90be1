package models

// User represents an account holder. The password hash never leaves the server.
// Name and ProfilePhoto serialize under the same keys the auth requests accept.
type User struct {
	Base
	Name         string  `gorm:"not null" json:"fullName"`
	Email        string  `gorm:"uniqueIndex;not null" json:"email"`
	Password     string  `gorm:"not null" json:"-"`
	ProfilePhoto *string `json:"profileImageUrl"`
}
