package models

import "time"

type Post struct {
	ID          string    `json:"id" bson:"_id,omitempty" db:"id"`
	Image       string    `json:"image" bson:"image" db:"image"`
	Title       string    `json:"title" bson:"title" db:"title"`
	Description string    `json:"description" bson:"description" db:"description"`
	CreatedAt   time.Time `json:"created_at" bson:"createdAt" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" bson:"updatedAt" db:"updated_at"`
}
