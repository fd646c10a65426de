package models

import (
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// Monetary fields go over the wire as plain JSON numbers.
	decimal.MarshalJSONWithoutQuotes = true
}

// User is an identity record. Username is always aliased to the email and the
// email doubles as the login handle for both password and Google logins.
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Username  string    `gorm:"size:150" json:"username"`
	Email     string    `gorm:"size:254;uniqueIndex" json:"email"`
	Password  string    `gorm:"size:128" json:"-"`
	FirstName string    `gorm:"column:first_name;size:150" json:"first_name"`
	LastName  string    `gorm:"column:last_name;size:150" json:"last_name"`
	Country   string    `gorm:"size:100" json:"country"`
	City      string    `gorm:"size:100" json:"city"`
	Photo     string    `gorm:"size:255" json:"photo,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
