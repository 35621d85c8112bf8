// Package model defines the persisted records of the prediction panel.
package model

// User is a registered account. Email is the natural identity key; the
// unique index makes concurrent duplicate registrations fail at write time.
type User struct {
	Id       int    `json:"id" gorm:"primaryKey;autoIncrement"`
	Name     string `json:"name" gorm:"not null"`
	Email    string `json:"email" gorm:"uniqueIndex;not null"`
	Password string `json:"-"` // bcrypt hash, never the plaintext
}

type Setting struct {
	Id    int    `json:"id" form:"id" gorm:"primaryKey;autoIncrement"`
	Key   string `json:"key" form:"key"`
	Value string `json:"value" form:"value"`
}
