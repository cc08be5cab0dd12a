package models

import "time"

type User struct {
	ID        string    `json:"id" bson:"_id,omitempty" db:"id"`
	Name      string    `json:"name" bson:"name" db:"name"`
	Email     string    `json:"email" bson:"email" db:"email"`
	Password  string    `json:"-" bson:"password" db:"password_hash"`
	IsAdmin   bool      `json:"is_admin" bson:"isAdmin" db:"is_admin"`
	CreatedAt time.Time `json:"created_at" bson:"createdAt" db:"created_at"`
}
