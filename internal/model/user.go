package model

import (
	"golang.org/x/crypto/bcrypt"
)

type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
	RoleGuest Role = "guest"
)

// User represents an account that can log in.
type User struct {
	UserID   uint   `gorm:"primaryKey" json:"UserID"`
	Username string `gorm:"type:varchar(255);uniqueIndex;not null" json:"Username"`
	Fullname string `gorm:"type:varchar(255)" json:"Fullname"`
	Email    string `gorm:"type:varchar(255)" json:"Email"`
	Role     Role   `gorm:"type:varchar(10);not null;default:user" json:"Role"`
	Password string `gorm:"type:varchar(255);not null" json:"-"` // Hidden from JSON
	Timestamps
}

// SetPassword hashes and sets the user's password
func (u *User) SetPassword(password string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.Password = string(hashedPassword)
	return nil
}

// CheckPassword verifies if the provided password matches the stored hash
func (u *User) CheckPassword(password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password))
	return err == nil
}

// UserResponse is used for API responses (without sensitive data)
type UserResponse struct {
	UserID   uint   `json:"UserID"`
	Username string `json:"Username"`
	Fullname string `json:"Fullname"`
	Email    string `json:"Email"`
	Role     Role   `json:"Role"`
}

func (u *User) ToResponse() UserResponse {
	return UserResponse{
		UserID:   u.UserID,
		Username: u.Username,
		Fullname: u.Fullname,
		Email:    u.Email,
		Role:     u.Role,
	}
}
