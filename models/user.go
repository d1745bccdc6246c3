package models

import (
	"golang.org/x/crypto/bcrypt"
)

type User struct {
	ID       uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Username string `gorm:"size:32;uniqueIndex;not null" json:"username"`
	PassHash string `gorm:"size:512;not null" json:"-"`
	Name     string `gorm:"size:64" json:"name"`
	IsAdmin  bool   `gorm:"not null;default:false" json:"is_admin"`
}

// SetPassword replaces the stored hash with a bcrypt hash of the plaintext.
func (u *User) SetPassword(password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.PassHash = string(hash)
	return nil
}

func (u *User) CheckPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PassHash), []byte(password)) == nil
}
